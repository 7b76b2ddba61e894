package pluginx

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the different ways a handshake can be malformed.
// They are usually returned wrapped in a HandshakeError that also carries
// the raw text received from the plugin.
var (
	ErrInvalidHandshakeMessage  = errors.New("invalid handshake message")
	ErrInvalidNetwork           = errors.New("invalid handshake network type")
	ErrInvalidTransportProtocol = errors.New("invalid transport protocol")
	ErrParseNumberFailed        = errors.New("parse number failed")

	// Reserved for stricter version checking.
	ErrUnsupportedCoreProtocolVersion = errors.New("unsupported core protocol version")
	ErrUnsupportedAppProtocolVersion  = errors.New("unsupported protocol version")

	// ErrStartupTimeout is returned by the host if the plugin process does
	// not produce a complete handshake line within the startup timeout.
	ErrStartupTimeout = errors.New("timeout waiting for plugin handshake")
)

// HandshakeError is the error type returned by the host when launching a
// plugin fails before the RPC channel is usable. It wraps one of the
// sentinel errors above and keeps the raw stdout captured so far, which
// is usually the most useful diagnostic for a misbehaving plugin binary.
type HandshakeError struct {
	Err error

	// Message is the raw text read from the plugin's stdout, if any.
	Message string
}

func (e *HandshakeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("handshake failed: %s", e.Err)
	}
	return fmt.Sprintf("handshake failed: %s, message: %q", e.Err, e.Message)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

// Protocol is the RPC protocol announced in a handshake line. Only gRPC
// is supported by this framework.
type Protocol string

// ProtocolGRPC is the only accepted value of the PROTOCOL handshake field.
const ProtocolGRPC Protocol = "grpc"

// parseProtocol validates the PROTOCOL handshake field.
func parseProtocol(s string) (Protocol, error) {
	if s != string(ProtocolGRPC) {
		return "", errors.Wrapf(ErrInvalidTransportProtocol, "%q", s)
	}
	return ProtocolGRPC, nil
}

// parseNetwork validates the NETWORK-TYPE and NETWORK-ADDR handshake
// fields and returns the corresponding address. TCP addresses must be
// literal socket addresses; Unix addresses are taken as filesystem paths.
func parseNetwork(netType, addr string) (net.Addr, error) {
	switch netType {
	case "tcp":
		ap, err := netip.ParseAddrPort(addr)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidNetwork, "tcp address %q", addr)
		}
		return net.TCPAddrFromAddrPort(ap), nil
	case "unix":
		if addr == "" {
			return nil, errors.Wrap(ErrInvalidNetwork, "empty unix socket path")
		}
		return &net.UnixAddr{Net: "unix", Name: addr}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidNetwork, "%q", netType)
	}
}

// HandshakeMessage is the single line a plugin prints on its stdout to
// announce where and how the host should connect, in the form
//
//	CORE-PROTOCOL-VERSION | APP-PROTOCOL-VERSION | NETWORK-TYPE | NETWORK-ADDR | PROTOCOL
//
// pipe-delimited without spaces. Older implementations append extra
// fields (TLS certificate, multiplexing flag) after PROTOCOL; those are
// accepted and ignored.
type HandshakeMessage struct {
	CoreProtocol uint32
	AppProtocol  uint32
	Addr         net.Addr
	Protocol     Protocol
}

// ParseHandshakeMessage parses one handshake line. Surrounding whitespace
// is trimmed from the line and from each field.
func ParseHandshakeMessage(s string) (HandshakeMessage, error) {
	parts := strings.Split(strings.TrimSpace(s), "|")
	if len(parts) < 5 {
		return HandshakeMessage{}, errors.WithStack(ErrInvalidHandshakeMessage)
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	core, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return HandshakeMessage{}, errors.Wrapf(ErrParseNumberFailed, "core protocol version %q", parts[0])
	}
	app, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return HandshakeMessage{}, errors.Wrapf(ErrParseNumberFailed, "app protocol version %q", parts[1])
	}
	addr, err := parseNetwork(parts[2], parts[3])
	if err != nil {
		return HandshakeMessage{}, err
	}
	proto, err := parseProtocol(parts[4])
	if err != nil {
		return HandshakeMessage{}, err
	}

	return HandshakeMessage{
		CoreProtocol: uint32(core),
		AppProtocol:  uint32(app),
		Addr:         addr,
		Protocol:     proto,
	}, nil
}

// String formats the message as the wire line, without a trailing newline.
func (m HandshakeMessage) String() string {
	return fmt.Sprintf("%d|%d|%s|%s|%s",
		m.CoreProtocol, m.AppProtocol, m.Addr.Network(), m.Addr.String(), m.Protocol)
}
