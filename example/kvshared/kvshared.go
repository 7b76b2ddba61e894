// Package kvshared contains the pieces that the KV example host and the
// KV example plugin must agree on: the handshake settings and the plugin
// definition that binds the generated gRPC stubs into the framework.
package kvshared

import (
	"context"

	"github.com/zkonge/pluginx"
	"github.com/zkonge/pluginx/example/kvproto"
	"google.golang.org/grpc"
)

// HandshakeConfig is shared by the example host and plugin. The cookie
// value only needs to be unlikely to occur in a user's environment by
// accident; it is not a secret.
var HandshakeConfig = pluginx.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "BASIC_PLUGIN",
	MagicCookieValue: "hello",
}

// KvPlugin makes the generated KV client stub available through a
// pluginx Client.
type KvPlugin struct{}

var _ pluginx.PluginClient = KvPlugin{}

// ClientProxy implements pluginx.PluginClient.
func (KvPlugin) ClientProxy(ctx context.Context, conn *grpc.ClientConn) (any, error) {
	return kvproto.NewKvClient(conn), nil
}

// KvPluginServer registers a KV service implementation into a pluginx
// Server.
type KvPluginServer struct {
	Impl kvproto.KvServer
}

var _ pluginx.PluginServer = KvPluginServer{}

// RegisterServer implements pluginx.PluginServer.
func (p KvPluginServer) RegisterServer(srv *grpc.Server) error {
	kvproto.RegisterKvServer(srv, p.Impl)
	return nil
}
