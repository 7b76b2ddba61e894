package pluginx

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/oklog/run"
	"google.golang.org/grpc"

	"github.com/zkonge/pluginx/plugintrace"
)

// User-facing messages for the two ways a plugin binary can be started
// incorrectly. These go to stderr because stdout is reserved for the
// handshake.
const (
	misconfiguredMessage = `Misconfigured ServerConfig given to serve this plugin: no magic cookie
key or value was set. Please notify the plugin author and report
this as a bug.`

	notChildProcessMessage = `This binary is a plugin. These are not meant to be executed directly.
Please execute the program that consumes these plugins, which will
load any plugins automatically.`
)

// ServerConfig is used to configure the behavior of a plugin server
// created by NewServer.
type ServerConfig struct {
	// Handshake configures the handshake settings that must agree with
	// those configured in the host.
	Handshake HandshakeConfig

	// Set NoSignalHandlers to prevent the server from configuring the
	// handling of signals for the process. If you do this, you must find
	// some other way to prevent an interrupt signal to the host process
	// group from also terminating the plugin server processes.
	NoSignalHandlers bool
}

// Server is the plugin-process side of the framework. It owns the bound
// listener, the gRPC route table with the meta-services pre-registered,
// and the exit signal that ends the serve loop.
//
// A Server that is never run must still be closed, so that the Unix
// socket path it reserved is removed.
type Server struct {
	protocolVersion  uint32
	noSignalHandlers bool

	listener   net.Listener
	grpcServer *grpc.Server

	exit        *ExitSignal
	stdioServer *stdioServer
	stdio       *StdioHandler
	broker      *brokerServer

	closeOnce sync.Once
}

// NewServer validates the plugin's launch environment, binds a listener,
// and prepares the gRPC server with the built-in meta-services plus the
// health service registered.
//
// If the magic cookie configuration is empty, or the cookie environment
// variable doesn't match, the process prints a fixed explanation to
// stderr and exits with a non-zero status: a plugin binary launched
// outside of its host has no useful way to proceed.
func NewServer(ctx context.Context, config *ServerConfig) (*Server, error) {
	hc := config.Handshake
	if hc.MagicCookieKey == "" || hc.MagicCookieValue == "" {
		fmt.Fprintln(os.Stderr, misconfiguredMessage)
		os.Exit(255)
	}
	if !haveMagicCookie(ctx, &hc) {
		fmt.Fprintln(os.Stderr, notChildProcessMessage)
		os.Exit(255)
	}

	listener, err := serverListen(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "cannot start plugin RPC server")
	}

	grpcServer, exit, stdioSrv, stdioHandler, broker := newPluginGRPCServer()

	return &Server{
		protocolVersion:  hc.ProtocolVersion,
		noSignalHandlers: config.NoSignalHandlers,
		listener:         listener,
		grpcServer:       grpcServer,
		exit:             exit,
		stdioServer:      stdioSrv,
		stdio:            stdioHandler,
		broker:           broker,
	}, nil
}

// AddPlugin registers a user plugin service into the server's route
// table. It must be called before Run.
func (s *Server) AddPlugin(plugin PluginServer) error {
	return plugin.RegisterServer(s.grpcServer)
}

// ExitSignal returns the signal that ends the serve loop. It fires when
// the host calls the controller's Shutdown RPC, and applications may
// also fire it themselves to shut down from within.
func (s *Server) ExitSignal() *ExitSignal {
	return s.exit
}

// Stdio returns the handler plugin code writes its output through so it
// reaches the host over the stdio meta-service.
func (s *Server) Stdio() *StdioHandler {
	return s.stdio
}

// Addr returns the bound listener address the handshake will advertise.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run emits the handshake line on stdout and serves gRPC until the exit
// signal fires or ctx is done, then stops accepting, waits for in-flight
// requests to drain, and removes the Unix socket file if one was bound.
//
// The handshake is the first and only thing this framework writes to the
// process's real stdout; plugin code should use the stdio handler for
// its own output rather than printing directly.
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()
	defer s.stdioServer.close()

	tracer := plugintrace.ContextServerTracer(ctx)

	hs := HandshakeMessage{
		CoreProtocol: CoreProtocolVersion,
		AppProtocol:  s.protocolVersion,
		Addr:         s.listener.Addr(),
		Protocol:     ProtocolGRPC,
	}
	if _, err := fmt.Fprintln(os.Stdout, hs.String()); err != nil {
		return errors.Wrap(err, "failed to print plugin handshake to stdout")
	}
	// The error from sync is intentionally ignored; stdout might be bound
	// to something that cannot sync.
	os.Stdout.Sync()

	if tracer.Listening != nil {
		tracer.Listening(s.listener.Addr(), s.protocolVersion)
	}

	var g run.Group

	g.Add(func() error {
		return s.grpcServer.Serve(s.listener)
	}, func(error) {
		s.grpcServer.Stop()
	})

	g.Add(func() error {
		select {
		case <-s.exit.Done():
		case <-ctx.Done():
		}
		if tracer.ExitSignaled != nil {
			tracer.ExitSignaled()
		}
		// End the long-lived meta-service streams first: an open stdio
		// or broker stream would hold the graceful stop forever.
		s.stdioServer.close()
		s.broker.close()
		// The Shutdown RPC handler has already returned by the time the
		// signal is observable here, so a graceful stop lets its
		// response flush before the transport closes.
		s.grpcServer.GracefulStop()
		return nil
	}, func(error) {
		s.exit.Fire()
	})

	if !s.noSignalHandlers {
		s.addSignalHandlers(&g, tracer)
	}

	err := g.Run()
	if err != nil && tracer.GRPCServeError != nil {
		tracer.GRPCServeError(err)
	}
	return err
}

// Close releases the server's listener, removing the Unix socket file if
// one was bound. It is safe to call multiple times and is called
// automatically when Run returns.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.listener.Close()
	})
	return err
}
