package pluginx

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/zkonge/pluginx/internal/pluginproto"
)

// This is the service name under which the health service reports the
// plugin as serving.
//
// Ideally we'd name this after the framework, but we're inheriting this
// service name from HashiCorp's go-plugin to retain wire compatibility.
const grpcServiceName = "plugin"

// newPluginGRPCServer assembles the gRPC server a plugin process runs,
// with all of the built-in meta-services registered: health (mandatory,
// hosts use it to detect unresponsive plugins), controller, stdio, and
// the broker placeholder. User services are registered on top by
// Server.AddPlugin.
func newPluginGRPCServer() (*grpc.Server, *ExitSignal, *stdioServer, *StdioHandler, *brokerServer) {
	srv := grpc.NewServer()

	healthCheck := health.NewServer()
	healthCheck.SetServingStatus(grpcServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, healthCheck)

	controller, exit := newControllerServer()
	pluginproto.RegisterGRPCControllerServer(srv, controller)

	stdio, handler := newStdioServer()
	pluginproto.RegisterGRPCStdioServer(srv, stdio)

	broker := newBrokerServer()
	pluginproto.RegisterGRPCBrokerServer(srv, broker)

	return srv, exit, stdio, handler, broker
}
