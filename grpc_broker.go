package pluginx

import (
	"sync"

	"github.com/zkonge/pluginx/internal/pluginproto"
)

// brokerServer implements the plugin.GRPCBroker meta-service for wire
// compatibility. Hosts that open the broker stream get a stream that
// stays open and never yields connection records; the connection broker
// itself is not implemented.
type brokerServer struct {
	pluginproto.UnimplementedGRPCBrokerServer

	closed    chan struct{}
	closeOnce sync.Once
}

func newBrokerServer() *brokerServer {
	return &brokerServer{closed: make(chan struct{})}
}

// close ends any open broker streams. The serve loop calls this before
// draining, since an open stream would otherwise hold the graceful stop
// forever.
func (s *brokerServer) close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *brokerServer) StartStream(stream pluginproto.GRPCBroker_StartStreamServer) error {
	select {
	case <-stream.Context().Done():
	case <-s.closed:
	}
	return nil
}
