//go:build !windows

package pluginx

import (
	"context"
	"net"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
)

// serverListen selects the plugin's transport. On POSIX platforms plugins
// listen on a Unix socket, placed in PLUGIN_UNIX_SOCKET_DIR when set and
// in the system temporary directory otherwise.
func serverListen(ctx context.Context) (net.Listener, error) {
	dir := ctxenv.Getenv(ctx, envUnixSocketDir)
	return findUnixListener(unixSocketPrefix, dir)
}
