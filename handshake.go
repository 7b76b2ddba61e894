package pluginx

import (
	"context"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
)

// CoreProtocolVersion is the version of the framework's own negotiation
// protocol, as distinct from the application protocol carried inside it.
// It is the first field of every handshake line.
const CoreProtocolVersion = 1

// Environment variables consumed by the plugin side of the negotiation
// protocol. The host sets the port range when it launches a plugin; the
// socket directory is an operator-facing override.
const (
	envMinPort       = "PLUGIN_MIN_PORT"
	envMaxPort       = "PLUGIN_MAX_PORT"
	envUnixSocketDir = "PLUGIN_UNIX_SOCKET_DIR"
)

// HandshakeConfig contains settings that the host and the plugin binary
// must both agree on in order for a plugin connection to be established.
type HandshakeConfig struct {
	// ProtocolVersion is the application protocol version. The plugin
	// echoes it in the handshake line so the host can confirm it is
	// talking to a compatible plugin build.
	ProtocolVersion uint32

	// MagicCookieKey and MagicCookieValue are used together to return a
	// friendly error if a plugin binary is run directly from the command
	// line rather than as a child process of its host.
	//
	// MagicCookieKey is used as an environment variable name and
	// MagicCookieValue as its value. The host sets the variable when it
	// launches plugin child processes, and the plugin binary checks for
	// the variable before doing anything else.
	//
	// This is not a security feature. It is just a heuristic so that a
	// user who launches a plugin binary by hand gets an explanation
	// instead of a bare handshake line.
	MagicCookieKey, MagicCookieValue string
}

// haveMagicCookie reports whether the configured cookie environment
// variable is present with the expected value for the current process.
//
// The environment is read via ctxenv so that tests can substitute a
// different environment through the context.
func haveMagicCookie(ctx context.Context, cfg *HandshakeConfig) bool {
	return ctxenv.Getenv(ctx, cfg.MagicCookieKey) == cfg.MagicCookieValue
}
