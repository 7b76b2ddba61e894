package plugintrace

import (
	"context"
	"net"
)

// ServerTracer contains function pointers that, if set, will be called
// when certain events occur in a plugin server whose context has this
// object registered.
type ServerTracer struct {
	// Listening is called once the plugin's listener is bound and the
	// handshake line has been written, with the address where it is
	// listening and the application protocol version.
	Listening func(addr net.Addr, protoVersion uint32)

	// InterruptIgnored is called if the plugin is monitoring interrupt
	// signals and such a signal is received. The count argument is how
	// many interrupts have been received since the plugin started.
	//
	// If the ServerConfig has NoSignalHandlers set, this function will
	// never be called.
	InterruptIgnored func(count int)

	// TerminateSignaled is called when the plugin receives a
	// termination signal and begins a graceful shutdown on its own,
	// without waiting for the host's controller request.
	TerminateSignaled func()

	// ExitSignaled is called once the exit signal has fired or the
	// context given to Run is done, as the plugin starts draining
	// in-flight requests before stopping.
	ExitSignaled func()

	// GRPCServeError is called if the gRPC server exits with an error.
	GRPCServeError func(error)
}

type serverCtxKeyType int

const serverCtxKey serverCtxKeyType = 1

var noopServerTrace = &ServerTracer{}

// WithServerTracer creates a child of the given context that has the
// given ServerTracer attached to it.
//
// Callers must not modify any part of the ServerTracer object after
// passing it to this function, or behavior is undefined.
func WithServerTracer(ctx context.Context, tracer *ServerTracer) context.Context {
	return context.WithValue(ctx, serverCtxKey, tracer)
}

// ContextServerTracer retrieves the ServerTracer object associated with
// the given context. If none is associated, a no-op tracer is returned.
//
// Do not modify any part of the returned tracer.
func ContextServerTracer(ctx context.Context) *ServerTracer {
	tracer, ok := ctx.Value(serverCtxKey).(*ServerTracer)
	if !ok {
		return noopServerTrace
	}
	return tracer
}
