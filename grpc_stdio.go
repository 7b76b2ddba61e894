package pluginx

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/zkonge/pluginx/internal/pluginproto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// StdioChannel identifies which output stream a chunk of relayed plugin
// output belongs to. The values match the wire protocol's enum.
type StdioChannel int32

const (
	StdioInvalid StdioChannel = 0
	StdioStdout  StdioChannel = 1
	StdioStderr  StdioChannel = 2
)

// StdioData is one chunk of plugin output received by the host over the
// stdio meta-service. Bytes within a chunk are contiguous, but chunk
// boundaries carry no meaning.
type StdioData struct {
	Channel StdioChannel
	Data    []byte
}

// ErrStdioClosed is returned from StdioHandler.Write once the consuming
// side of the relay is gone, either because the host's stream ended or
// because the server has stopped. The caller still owns the bytes and
// can fall back to writing them somewhere local.
var ErrStdioClosed = errors.New("stdio stream receiver is gone")

// StdioHandler is the plugin-side producer half of the stdio relay.
// Plugins write their log output through it instead of the real stdout,
// which is reserved for the handshake line.
//
// The relay is backed by a bounded channel of capacity one, so Write
// blocks while the host is not keeping up. That is deliberate: it makes
// the plugin's log path observe backpressure rather than buffering
// without bound.
type StdioHandler struct {
	ch   chan<- *pluginproto.StdioData
	done <-chan struct{}
}

// Write queues one chunk of output for delivery to the host, blocking
// until there is room, the relay is closed, or ctx is done.
func (h *StdioHandler) Write(ctx context.Context, channel StdioChannel, data []byte) error {
	msg := &pluginproto.StdioData{
		Channel: pluginproto.StdioData_Channel(channel),
		Data:    data,
	}
	// Check for a closed relay first: with a free buffer slot both cases
	// below could be ready, and a write after close must never win.
	select {
	case <-h.done:
		return errors.WithStack(ErrStdioClosed)
	default:
	}
	select {
	case h.ch <- msg:
		return nil
	case <-h.done:
		return errors.WithStack(ErrStdioClosed)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stdioServer implements the plugin.GRPCStdio meta-service. It owns the
// receiving half of the relay channel, which may be consumed by exactly
// one StreamStdio call for the lifetime of the server.
type stdioServer struct {
	pluginproto.UnimplementedGRPCStdioServer

	ch <-chan *pluginproto.StdioData

	mu    sync.Mutex
	taken bool

	closed    chan struct{}
	closeOnce sync.Once
}

func newStdioServer() (*stdioServer, *StdioHandler) {
	ch := make(chan *pluginproto.StdioData, 1)
	s := &stdioServer{
		ch:     ch,
		closed: make(chan struct{}),
	}
	h := &StdioHandler{ch: ch, done: s.closed}
	return s, h
}

// close permanently fails pending and future handler writes. Called when
// the consuming stream ends and when the server shuts down.
func (s *stdioServer) close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *stdioServer) StreamStdio(_ *emptypb.Empty, stream pluginproto.GRPCStdio_StreamStdioServer) error {
	s.mu.Lock()
	if s.taken {
		s.mu.Unlock()
		return status.Error(codes.Unavailable, "stdio stream is already in use")
	}
	s.taken = true
	s.mu.Unlock()

	// Once the single consumer goes away the relay can never be read
	// again, so writers are released with an error rather than blocked
	// forever.
	defer s.close()

	for {
		select {
		case msg := <-s.ch:
			if err := stream.Send(msg); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		case <-s.closed:
			return nil
		}
	}
}

// StdioStream is the host-side consumer of the stdio relay. It is handed
// out by Client.Stdio at most once.
//
// The underlying RPC is opened lazily on the first Recv call, because
// plugin servers hold the stream open without sending anything until the
// plugin actually writes output.
type StdioStream struct {
	client pluginproto.GRPCStdioClient
	stream pluginproto.GRPCStdio_StreamStdioClient
}

func newStdioStream(conn grpc.ClientConnInterface) *StdioStream {
	return &StdioStream{client: pluginproto.NewGRPCStdioClient(conn)}
}

// Recv blocks until the next chunk of plugin output arrives. The context
// passed to the first call bounds the lifetime of the whole stream. Recv
// returns io.EOF when the plugin ends the stream normally, and a gRPC
// status error when the call fails, for example because the plugin went
// away.
func (s *StdioStream) Recv(ctx context.Context) (StdioData, error) {
	if s.stream == nil {
		stream, err := s.client.StreamStdio(ctx, &emptypb.Empty{})
		if err != nil {
			return StdioData{}, err
		}
		s.stream = stream
	}

	msg, err := s.stream.Recv()
	if err != nil {
		return StdioData{}, err
	}
	return StdioData{
		Channel: StdioChannel(msg.GetChannel()),
		Data:    msg.GetData(),
	}, nil
}
