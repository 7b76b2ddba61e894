// Package pluginx is a toolkit for running application plugins as child
// processes and communicating with them over gRPC, using the same wire
// protocol as HashiCorp's go-plugin so that hosts and plugins written
// against either implementation can interoperate.
//
// The host process uses NewClientBuilder to launch a plugin executable,
// complete the stdout handshake, and obtain a Client through which typed
// RPC stubs are dispensed. The plugin executable uses NewServer to
// validate that it was launched by a host, bind a listener, and serve its
// gRPC services until the host asks it to shut down.
package pluginx

import (
	"context"

	"google.golang.org/grpc"
)

// PluginClient is the interface an application implements once per plugin
// service to teach the host how to build a client stub for that service.
//
// The value returned from ClientProxy is stored in the Client's registry
// keyed by its concrete type, and is what Dispense returns later. There
// should be exactly one concrete type per plugin service so the caller
// knows what to ask Dispense for.
type PluginClient interface {
	ClientProxy(ctx context.Context, conn *grpc.ClientConn) (any, error)
}

// PluginClientFunc is a function type that implements interface PluginClient.
type PluginClientFunc func(ctx context.Context, conn *grpc.ClientConn) (any, error)

var _ PluginClient = PluginClientFunc(nil)

// ClientProxy implements interface PluginClient.
func (fn PluginClientFunc) ClientProxy(ctx context.Context, conn *grpc.ClientConn) (any, error) {
	return fn(ctx, conn)
}

// PluginServer is the interface an application implements once per plugin
// service to register that service's implementation into the plugin
// process's gRPC server.
type PluginServer interface {
	RegisterServer(*grpc.Server) error
}

// PluginServerFunc is a function type that implements interface PluginServer.
type PluginServerFunc func(*grpc.Server) error

var _ PluginServer = PluginServerFunc(nil)

// RegisterServer implements PluginServer.
func (fn PluginServerFunc) RegisterServer(srv *grpc.Server) error {
	return fn(srv)
}
