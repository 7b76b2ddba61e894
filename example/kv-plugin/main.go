package main

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zkonge/pluginx"
	"github.com/zkonge/pluginx/example/kvproto"
	"github.com/zkonge/pluginx/example/kvshared"
	"github.com/zkonge/pluginx/plugintrace"
)

// kvServer is an in-memory KV store served over the plugin channel.
type kvServer struct {
	mu    sync.Mutex
	store map[string][]byte
}

var _ kvproto.KvServer = (*kvServer)(nil)

func (s *kvServer) Get(ctx context.Context, req *kvproto.GetRequest) (*kvproto.GetResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.store[req.GetKey()]
	if !ok {
		return nil, status.Error(codes.NotFound, "key not found")
	}
	return &kvproto.GetResponse{Value: value}, nil
}

func (s *kvServer) Put(ctx context.Context, req *kvproto.PutRequest) (*kvproto.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[req.GetKey()] = req.GetValue()
	return &kvproto.Empty{}, nil
}

func main() {
	// The plugin's stderr reaches the host's raw stderr pipe, so a plain
	// zap production logger to stderr is fine for diagnostics.
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx := plugintrace.WithServerTracer(context.Background(), plugintrace.ServerLogTracer(sugar))

	server, err := pluginx.NewServer(ctx, &pluginx.ServerConfig{
		Handshake: kvshared.HandshakeConfig,
	})
	if err != nil {
		sugar.Errorf("failed to set up plugin server: %s", err)
		os.Exit(1)
	}

	if err := server.AddPlugin(kvshared.KvPluginServer{Impl: &kvServer{store: make(map[string][]byte)}}); err != nil {
		sugar.Errorf("failed to register KV service: %s", err)
		os.Exit(1)
	}

	// Demonstrate the stdio relay: after a few seconds, greet the host
	// through the relayed stdout channel.
	stdio := server.Stdio()
	go func() {
		time.Sleep(5 * time.Second)
		if err := stdio.Write(ctx, pluginx.StdioStdout, []byte("hello")); err != nil {
			sugar.Debugf("stdio relay write failed: %s", err)
		}
	}()

	if err := server.Run(ctx); err != nil {
		sugar.Errorf("plugin server failed: %s", err)
		os.Exit(1)
	}
}
