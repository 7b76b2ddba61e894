package pluginx

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/zkonge/pluginx/plugintrace"
)

// ClientBuilder is the intermediate stage between launching a plugin
// process and having a usable Client: the process is running and the RPC
// channel is open, but the set of plugin stubs is still being assembled.
type ClientBuilder struct {
	client *Client
}

// NewClientBuilder launches a plugin server in a child process, waits for
// its handshake, and opens the RPC channel to it.
//
// Once a ClientConfig has been passed to this function, the caller must
// no longer access or modify it.
//
// If this function returns without error, the caller must eventually
// call Shutdown or Close on the built Client, which ends the child
// process. On every error return the child process has already been
// killed.
//
// The child process inherits the environment variables of the current
// process. To customize the child environment for testing, use package
// github.com/apparentlymart/go-ctxenv/ctxenv to set a different
// environment on the given context.
func NewClientBuilder(ctx context.Context, config *ClientConfig) (builder *ClientBuilder, err error) {
	config.setDefaults()

	if config.Handshake.MagicCookieKey == "" {
		return nil, errors.New("config field Handshake.MagicCookieKey must not be empty")
	}
	if config.Handshake.MagicCookieValue == "" {
		return nil, errors.New("config field Handshake.MagicCookieValue must not be empty")
	}
	if config.Cmd == nil {
		return nil, errors.New("config field Cmd must not be nil")
	}

	environ := []string{
		fmt.Sprintf("%s=%s", config.Handshake.MagicCookieKey, config.Handshake.MagicCookieValue),
		fmt.Sprintf("%s=%d", envMinPort, config.MinPort),
		fmt.Sprintf("%s=%d", envMaxPort, config.MaxPort),
	}

	cmd := config.Cmd
	cmd.Env = append(environ, ctxenv.Environ(ctx)...)
	cmd.Stdin = bytes.NewReader(nil)

	cmdStdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create stdout pipe")
	}
	cmdStderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create stderr pipe")
	}

	tracer := plugintrace.ContextClientTracer(ctx)

	if tracer.ProcessStart != nil {
		tracer.ProcessStart(cmd)
	}
	err = cmd.Start()
	if err != nil {
		if tracer.ProcessStartFailed != nil {
			tracer.ProcessStartFailed(cmd, err)
		}
		return nil, errors.Wrap(err, "failed to start plugin process")
	}
	if tracer.ProcessRunning != nil {
		tracer.ProcessRunning(cmd.Process)
	}

	exitCh := make(chan struct{})
	ret := &Client{
		process:  cmd.Process,
		exited:   exitCh,
		tracer:   tracer,
		registry: newServiceRegistry(),
		stderr:   cmdStderr,
	}

	// Reap the child from a goroutine so that its exit is observable as
	// a channel close wherever we need to race against it. The pipes are
	// owned by us, not by exec.Cmd.Wait, so this cannot steal their data.
	go func(exit chan<- struct{}) {
		state, _ := ret.process.Wait()
		if state != nil && tracer.ProcessExited != nil {
			tracer.ProcessExited(state)
		}
		close(exit)
	}(exitCh)

	// Whatever goes wrong below, don't leave an orphan child behind.
	defer func() {
		p := recover()

		if err != nil || p != nil {
			ret.process.Kill()
		}

		if p != nil {
			panic(p)
		}
	}()

	// The handshake is the first full line on the child's stdout. Read
	// it from a goroutine so that the startup timeout and an early child
	// exit can be raced against it.
	stdout := bufio.NewReader(cmdStdout)
	type readResult struct {
		line string
		err  error
	}
	lineCh := make(chan readResult, 1)
	go func() {
		line, err := stdout.ReadString('\n')
		lineCh <- readResult{line: line, err: err}
	}()

	var raw string
	timeout := time.After(config.StartupTimeout)
	select {
	case <-timeout:
		if tracer.ServerStartTimeout != nil {
			tracer.ServerStartTimeout(ret.process, config.StartupTimeout)
		}
		return nil, &HandshakeError{Err: ErrStartupTimeout}
	case <-exitCh:
		return nil, &HandshakeError{
			Err: errors.Wrap(ErrInvalidHandshakeMessage, "plugin process exited before completing handshake"),
		}
	case res := <-lineCh:
		raw = strings.TrimSpace(res.line)
		if res.err != nil {
			return nil, &HandshakeError{
				Err:     errors.Wrap(ErrInvalidHandshakeMessage, "plugin stdout closed before a complete handshake line"),
				Message: raw,
			}
		}
	}

	hs, err := ParseHandshakeMessage(raw)
	if err != nil {
		return nil, &HandshakeError{Err: err, Message: raw}
	}

	if tracer.ServerStarted != nil {
		tracer.ServerStarted(ret.process, hs.Addr, hs.AppProtocol)
	}

	conn, err := dialPlugin(ctx, hs.Addr, tracer)
	if err != nil {
		return nil, err
	}

	ret.handshake = hs
	ret.conn = conn
	ret.controller = newControllerClient(conn)
	ret.stdio = newStdioStream(conn)
	ret.stdout = stdout

	return &ClientBuilder{client: ret}, nil
}

// AddPlugin obtains a client stub for one plugin service from the open
// channel and stores it in the registry, keyed by the stub's type.
func (b *ClientBuilder) AddPlugin(ctx context.Context, plugin PluginClient) error {
	stub, err := plugin.ClientProxy(ctx, b.client.conn)
	if err != nil {
		return errors.Wrap(err, "failed to create client proxy")
	}
	b.client.registry.add(stub)
	return nil
}

// Build finishes construction. The builder must not be used afterwards.
func (b *ClientBuilder) Build() *Client {
	return b.client
}

// Client represents a running plugin instance: the child process, the
// gRPC channel to it, and the registry of dispensed service stubs.
type Client struct {
	handshake  HandshakeMessage
	process    *os.Process
	exited     <-chan struct{}
	tracer     *plugintrace.ClientTracer
	conn       *grpc.ClientConn
	controller controllerClient
	registry   *serviceRegistry

	mu     sync.Mutex
	stdio  *StdioStream
	stdout io.Reader
	stderr io.Reader
	closed bool
}

// Dispense returns the client stub that was registered under type S, or
// false if no plugin of that type was added. Stubs wrap the shared gRPC
// channel, so the returned value is cheap to copy and safe for
// concurrent use.
func Dispense[S any](c *Client) (S, bool) {
	v, ok := c.registry.get(reflect.TypeFor[S]())
	if !ok {
		var zero S
		return zero, false
	}
	return v.(S), true
}

// Handshake returns the handshake message the plugin announced itself
// with.
func (c *Client) Handshake() HandshakeMessage {
	return c.handshake
}

// Addr returns the address the plugin is serving on.
func (c *Client) Addr() net.Addr {
	return c.handshake.Addr
}

// Exited returns a channel that is closed once the plugin process has
// terminated, for whatever reason.
func (c *Client) Exited() <-chan struct{} {
	return c.exited
}

// Stdio hands out the stdio relay stream. The relay has exactly one
// consumer, so the first call returns the stream and every later call
// returns nil. Callers should drain the stream from its own goroutine so
// the plugin's log writes don't block.
//
// Hosts should pick one logging strategy: either consume this relay or
// read the raw pipes, not both.
func (c *Client) Stdio() *StdioStream {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stdio
	c.stdio = nil
	return s
}

// RawStdout returns the remainder of the child's OS-level stdout pipe,
// after the handshake line. It can only be taken once; later calls
// return nil.
func (c *Client) RawStdout() io.Reader {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.stdout
	c.stdout = nil
	return r
}

// RawStderr returns the child's OS-level stderr pipe. It can only be
// taken once; later calls return nil.
func (c *Client) RawStderr() io.Reader {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.stderr
	c.stderr = nil
	return r
}

// Shutdown asks the plugin to exit gracefully via the controller
// meta-service and waits for the process to go away. RPC errors are
// deliberately ignored: a transport error here usually just means the
// plugin honored an earlier request and is already gone, and if the
// plugin is wedged the ctx deadline falls back to killing it.
func (c *Client) Shutdown(ctx context.Context) error {
	if c.tracer.ShutdownRequested != nil {
		c.tracer.ShutdownRequested(c.process)
	}

	_ = c.controller.Shutdown(ctx)

	select {
	case <-c.exited:
	case <-ctx.Done():
		c.kill()
	}
	return c.cleanup()
}

// Close terminates the plugin child process immediately and releases the
// RPC channel. Prefer Shutdown when the plugin deserves a chance to
// finish in-flight work.
func (c *Client) Close() error {
	if c.tracer.Closing != nil {
		c.tracer.Closing(c.process)
	}
	c.kill()
	return c.cleanup()
}

func (c *Client) kill() {
	// Kill fails once the process is already gone, which is fine.
	c.process.Kill()
	<-c.exited
}

// cleanup releases the channel and defensively removes the plugin's Unix
// socket file. The plugin removes its own socket on a clean shutdown, so
// this is usually a no-op; removal is idempotent either way.
func (c *Client) cleanup() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.conn.Close()
	if ua, ok := c.handshake.Addr.(*net.UnixAddr); ok {
		os.Remove(ua.Name)
	}
	return err
}

// dialPlugin opens the gRPC channel to the address a plugin announced.
// The dial is eager: a plugin that advertised an address it cannot
// actually serve should fail the build, not the first RPC.
func dialPlugin(ctx context.Context, addr net.Addr, tracer *plugintrace.ClientTracer) (*grpc.ClientConn, error) {
	var target string
	switch addr.(type) {
	case *net.TCPAddr:
		target = addr.String()
	case *net.UnixAddr:
		target = "unix:" + addr.String()
	default:
		return nil, errors.Wrapf(ErrInvalidNetwork, "%q", addr.Network())
	}

	if tracer.Connect != nil {
		tracer.Connect(addr)
	}

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(math.MaxInt32),
			grpc.MaxCallSendMsgSize(math.MaxInt32),
		),
	)
	if err != nil {
		if tracer.ConnectFailed != nil {
			tracer.ConnectFailed(addr, err)
		}
		return nil, errors.Wrapf(err, "failed to connect to %s", addr)
	}

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			break
		}
		if state == connectivity.TransientFailure || state == connectivity.Shutdown {
			conn.Close()
			err := errors.Newf("failed to connect to %s address %s", addr.Network(), addr)
			if tracer.ConnectFailed != nil {
				tracer.ConnectFailed(addr, err)
			}
			return nil, err
		}
		if !conn.WaitForStateChange(ctx, state) {
			conn.Close()
			if tracer.ConnectFailed != nil {
				tracer.ConnectFailed(addr, ctx.Err())
			}
			return nil, errors.Wrapf(ctx.Err(), "connecting to plugin at %s", addr)
		}
	}

	if tracer.Connected != nil {
		tracer.Connected(addr)
	}
	return conn, nil
}
