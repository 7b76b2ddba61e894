package plugintrace

import (
	"net"

	"go.uber.org/zap"
)

// ServerLogTracer constructs a ServerTracer that will emit human-oriented
// log entries into the given logger when trace events occur.
//
// The format of these log entries is not customizable and may change in
// future versions. For more control, construct your own ServerTracer and
// build log messages yourself.
func ServerLogTracer(logger *zap.SugaredLogger) *ServerTracer {
	return &ServerTracer{
		Listening: func(addr net.Addr, protoVersion uint32) {
			logger.Infof("protocol version %d listening on %s address %s", protoVersion, addr.Network(), addr)
		},

		InterruptIgnored: func(count int) {
			logger.Debugf("ignored interrupt signal (attempt %d)", count)
		},

		TerminateSignaled: func() {
			logger.Infof("received termination signal, shutting down")
		},

		ExitSignaled: func() {
			logger.Debugf("exit signal fired, draining in-flight requests")
		},

		GRPCServeError: func(err error) {
			logger.Errorf("grpc server failed: %s", err)
		},
	}
}
