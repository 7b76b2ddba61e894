package plugintrace

import (
	"context"
	"net"
	"os"
	"os/exec"
	"time"
)

// ClientTracer contains function pointers that, if set, will be called
// when certain events occur in a plugin host whose context has this
// object registered.
//
// Some trace functions receive mutable data structures via pointers for
// efficiency. Making any modifications to those data structures is
// forbidden, and these pointers must be discarded before each function
// returns.
type ClientTracer struct {
	// ProcessStart is called just before the host launches the child
	// process where the plugin server will run. The argument is the
	// command definition it will use.
	ProcessStart func(cmd *exec.Cmd)

	// ProcessRunning is called after the plugin process is started.
	ProcessRunning func(proc *os.Process)

	// ProcessStartFailed is called if the plugin process failed to
	// start, giving the error value describing the failure.
	ProcessStartFailed func(cmd *exec.Cmd, err error)

	// ProcessExited is called when a plugin process terminates.
	ProcessExited func(state *os.ProcessState)

	// ServerStarted is called once the plugin process has successfully
	// completed the handshake protocol, announcing the address where it
	// is listening and the application protocol version it serves.
	ServerStarted func(proc *os.Process, addr net.Addr, protoVersion uint32)

	// ServerStartTimeout is called if the plugin program doesn't
	// complete the handshake before the configured startup timeout.
	ServerStartTimeout func(proc *os.Process, timeout time.Duration)

	// Connect is called just before the host opens a connection to the
	// plugin's listen socket.
	Connect func(addr net.Addr)

	// Connected is called once a connection to the plugin's listen
	// socket is successfully established.
	Connected func(addr net.Addr)

	// ConnectFailed is called if connecting to the plugin's listen
	// socket returned an error.
	ConnectFailed func(addr net.Addr, err error)

	// ShutdownRequested is called when the host asks the plugin to shut
	// down gracefully over the controller service.
	ShutdownRequested func(proc *os.Process)

	// Closing is called when a plugin instance is being discarded,
	// before the child process is killed.
	Closing func(proc *os.Process)
}

type clientCtxKeyType int

const clientCtxKey clientCtxKeyType = 1

var noopClientTrace = &ClientTracer{}

// WithClientTracer creates a child of the given context that has the
// given ClientTracer attached to it.
//
// Callers must not modify any part of the ClientTracer object after
// passing it to this function, or behavior is undefined.
func WithClientTracer(ctx context.Context, tracer *ClientTracer) context.Context {
	return context.WithValue(ctx, clientCtxKey, tracer)
}

// ContextClientTracer retrieves the ClientTracer object associated with
// the given context. If none is associated, a no-op tracer is returned.
//
// Do not modify any part of the returned tracer.
func ContextClientTracer(ctx context.Context) *ClientTracer {
	tracer, ok := ctx.Value(clientCtxKey).(*ClientTracer)
	if !ok {
		return noopClientTrace
	}
	return tracer
}
