package pluginx

import (
	"context"
	"sync"

	"github.com/zkonge/pluginx/internal/pluginproto"
	"google.golang.org/grpc"
)

// ExitSignal is a one-shot broadcast used to end a plugin's serve loop.
// Any number of goroutines may wait on Done; a single Fire releases them
// all, and firing again has no effect.
type ExitSignal struct {
	once sync.Once
	ch   chan struct{}
}

func newExitSignal() *ExitSignal {
	return &ExitSignal{ch: make(chan struct{})}
}

// Fire releases all current and future waiters. Idempotent.
func (s *ExitSignal) Fire() {
	s.once.Do(func() { close(s.ch) })
}

// Done returns a channel that is closed once the signal has fired.
func (s *ExitSignal) Done() <-chan struct{} {
	return s.ch
}

// Fired reports whether the signal has already fired.
func (s *ExitSignal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// controllerServer implements the plugin.GRPCController meta-service that
// the host calls to request a graceful shutdown.
//
// The handler only fires the exit signal and returns; it must not tear
// the server down itself, because the RPC response has to reach the host
// before the transport goes away. The serve loop observes the signal and
// stops accepting after in-flight responses (including this one) have
// been flushed.
type controllerServer struct {
	pluginproto.UnimplementedGRPCControllerServer

	exit *ExitSignal
}

func newControllerServer() (*controllerServer, *ExitSignal) {
	exit := newExitSignal()
	return &controllerServer{exit: exit}, exit
}

func (s *controllerServer) Shutdown(ctx context.Context, _ *pluginproto.Empty) (*pluginproto.Empty, error) {
	s.exit.Fire()
	return &pluginproto.Empty{}, nil
}

// controllerClient is the host-side stub for the controller meta-service.
type controllerClient struct {
	client pluginproto.GRPCControllerClient
}

func newControllerClient(conn grpc.ClientConnInterface) controllerClient {
	return controllerClient{client: pluginproto.NewGRPCControllerClient(conn)}
}

func (c controllerClient) Shutdown(ctx context.Context) error {
	_, err := c.client.Shutdown(ctx, &pluginproto.Empty{})
	return err
}
