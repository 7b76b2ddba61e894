package pluginx

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/zkonge/pluginx/internal/pluginproto"
)

// fakeStdioStream implements pluginproto.GRPCStdio_StreamStdioServer for
// driving the stdio service without a network.
type fakeStdioStream struct {
	grpc.ServerStream

	ctx context.Context

	mu   sync.Mutex
	sent []*pluginproto.StdioData
}

func newFakeStdioStream(ctx context.Context) *fakeStdioStream {
	return &fakeStdioStream{ctx: ctx}
}

func (s *fakeStdioStream) Context() context.Context {
	return s.ctx
}

func (s *fakeStdioStream) Send(m *pluginproto.StdioData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeStdioStream) messages() []*pluginproto.StdioData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*pluginproto.StdioData(nil), s.sent...)
}

func TestStdioServer_SecondConsumerUnavailable(t *testing.T) {
	srv, _ := newStdioServer()

	ctx1, cancel1 := context.WithCancel(context.Background())
	defer cancel1()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.StreamStdio(&emptypb.Empty{}, newFakeStdioStream(ctx1))
	}()

	// Give the first consumer time to claim the receiver, then try a
	// concurrent second consumer.
	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return srv.taken
	}, time.Second, time.Millisecond)

	err := srv.StreamStdio(&emptypb.Empty{}, newFakeStdioStream(context.Background()))
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())
	assert.Equal(t, "stdio stream is already in use", st.Message())

	// A sequential retry after the first stream ends must fail the same
	// way: the relay is single-consumer for the server's lifetime.
	cancel1()
	<-errCh

	err = srv.StreamStdio(&emptypb.Empty{}, newFakeStdioStream(context.Background()))
	require.Error(t, err)
	st, _ = status.FromError(err)
	assert.Equal(t, codes.Unavailable, st.Code())
}

func TestStdioHandler_DeliveryOrder(t *testing.T) {
	srv, handler := newStdioServer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newFakeStdioStream(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.StreamStdio(&emptypb.Empty{}, stream)
	}()

	for _, chunk := range []string{"a", "b", "c"} {
		require.NoError(t, handler.Write(ctx, StdioStdout, []byte(chunk)))
	}
	require.NoError(t, handler.Write(ctx, StdioStderr, []byte("oops")))

	require.Eventually(t, func() bool {
		return len(stream.messages()) == 4
	}, time.Second, time.Millisecond)

	msgs := stream.messages()
	assert.Equal(t, []byte("a"), msgs[0].GetData())
	assert.Equal(t, []byte("b"), msgs[1].GetData())
	assert.Equal(t, []byte("c"), msgs[2].GetData())
	assert.Equal(t, pluginproto.StdioData_STDOUT, msgs[0].GetChannel())
	assert.Equal(t, pluginproto.StdioData_STDERR, msgs[3].GetChannel())
}

func TestStdioHandler_BackpressureWithoutConsumer(t *testing.T) {
	_, handler := newStdioServer()

	// The first write lands in the channel's single buffer slot.
	ctx := context.Background()
	require.NoError(t, handler.Write(ctx, StdioStdout, []byte("buffered")))

	// With no consumer the second write must block until its context
	// expires.
	blockCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := handler.Write(blockCtx, StdioStdout, []byte("blocked"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStdioHandler_WriteAfterClose(t *testing.T) {
	srv, handler := newStdioServer()
	srv.close()

	err := handler.Write(context.Background(), StdioStdout, []byte("late"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStdioClosed)
}

func TestStdioServer_ConsumerEndReleasesWriters(t *testing.T) {
	srv, handler := newStdioServer()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.StreamStdio(&emptypb.Empty{}, newFakeStdioStream(ctx))
	}()

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return srv.taken
	}, time.Second, time.Millisecond)

	cancel()
	<-done

	// Once the single consumer is gone, writers fail instead of
	// blocking forever.
	err := handler.Write(context.Background(), StdioStdout, []byte("orphaned"))
	assert.ErrorIs(t, err, ErrStdioClosed)
}
