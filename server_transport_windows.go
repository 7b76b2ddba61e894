//go:build windows

package pluginx

import (
	"context"
	"net"
)

// serverListen selects the plugin's transport. Windows has no usable Unix
// sockets for this purpose, so plugins listen on a loopback TCP port from
// the range the host advertised.
func serverListen(ctx context.Context) (net.Listener, error) {
	return findTCPListener(portRangeFromEnv(ctx))
}
