package pluginx_test

import (
	"context"
	"net"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zkonge/pluginx"
	"github.com/zkonge/pluginx/example/kvproto"
	"github.com/zkonge/pluginx/example/kvshared"
)

// The end-to-end tests re-execute this test binary as the plugin
// process: TestHelperProcess below acts as the plugin's main function,
// selected via PLUGINX_TEST_MODE.

func helperCmd() *exec.Cmd {
	return exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
}

// helperCtx carries the helper-process environment into the builder,
// which passes it to the child via ctxenv.
func helperCtx(t *testing.T, mode string) context.Context {
	t.Helper()
	environ := append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"PLUGINX_TEST_MODE="+mode,
	)
	return ctxenv.WithEnviron(context.Background(), environ)
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	// Exit directly so the testing framework doesn't print its own
	// summary onto what the host thinks is plugin stdout.
	defer os.Exit(0)

	ctx := context.Background()

	switch os.Getenv("PLUGINX_TEST_MODE") {
	case "kv":
		runHelperServer(ctx, nil)

	case "stdio":
		runHelperServer(ctx, func(server *pluginx.Server) {
			stdio := server.Stdio()
			go func() {
				for _, chunk := range []string{"a", "b", "c"} {
					if err := stdio.Write(ctx, pluginx.StdioStdout, []byte(chunk)); err != nil {
						return
					}
				}
			}()
		})

	case "slow":
		// Simulates a plugin that takes too long to announce itself.
		time.Sleep(5 * time.Second)

	case "garbage":
		os.Stdout.WriteString("not a handshake\n")
		time.Sleep(5 * time.Second)
	}
}

func runHelperServer(ctx context.Context, setup func(*pluginx.Server)) {
	server, err := pluginx.NewServer(ctx, &pluginx.ServerConfig{
		Handshake: kvshared.HandshakeConfig,
	})
	if err != nil {
		os.Exit(1)
	}
	if err := server.AddPlugin(kvshared.KvPluginServer{Impl: newHelperKv()}); err != nil {
		os.Exit(1)
	}
	if setup != nil {
		setup(server)
	}
	if err := server.Run(ctx); err != nil {
		os.Exit(1)
	}
}

// helperKv is the in-memory KV service implementation served by the
// helper plugin process.
type helperKv struct {
	store map[string][]byte
}

func newHelperKv() *helperKv {
	return &helperKv{store: make(map[string][]byte)}
}

func (s *helperKv) Get(ctx context.Context, req *kvproto.GetRequest) (*kvproto.GetResponse, error) {
	value, ok := s.store[req.GetKey()]
	if !ok {
		return nil, status.Error(codes.NotFound, "key not found")
	}
	return &kvproto.GetResponse{Value: value}, nil
}

func (s *helperKv) Put(ctx context.Context, req *kvproto.PutRequest) (*kvproto.Empty, error) {
	s.store[req.GetKey()] = req.GetValue()
	return &kvproto.Empty{}, nil
}

func startKvClient(t *testing.T, mode string) (*pluginx.Client, context.Context) {
	t.Helper()

	ctx := helperCtx(t, mode)
	builder, err := pluginx.NewClientBuilder(ctx, &pluginx.ClientConfig{
		Handshake:      kvshared.HandshakeConfig,
		Cmd:            helperCmd(),
		StartupTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, builder.AddPlugin(ctx, kvshared.KvPlugin{}))

	client := builder.Build()
	t.Cleanup(func() { client.Close() })
	return client, ctx
}

func TestClient_KVRoundTrip(t *testing.T) {
	client, ctx := startKvClient(t, "kv")

	kv, ok := pluginx.Dispense[kvproto.KvClient](client)
	require.True(t, ok, "KV stub must be dispensable")

	_, err := kv.Put(ctx, &kvproto.PutRequest{Key: "aaa", Value: []byte("value")})
	require.NoError(t, err)

	resp, err := kv.Get(ctx, &kvproto.GetRequest{Key: "aaa"})
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), resp.GetValue())

	_, err = kv.Get(ctx, &kvproto.GetRequest{Key: "missing"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	addr := client.Addr()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, client.Shutdown(shutdownCtx))

	select {
	case <-client.Exited():
	default:
		t.Fatal("plugin process should have exited after Shutdown")
	}

	if ua, ok := addr.(*net.UnixAddr); ok {
		_, err := os.Stat(ua.Name)
		assert.True(t, os.IsNotExist(err), "unix socket file should be removed after shutdown")
	}
}

func TestClient_DispenseUnknownType(t *testing.T) {
	client, _ := startKvClient(t, "kv")

	type notRegistered interface{ Bogus() }
	_, ok := pluginx.Dispense[notRegistered](client)
	assert.False(t, ok)
}

func TestClient_MissingCookie(t *testing.T) {
	// Launch the plugin directly, without the cookie the host would set.
	cmd := helperCmd()
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"PLUGINX_TEST_MODE=kv",
	)
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "plugin run outside its host must exit non-zero")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.NotEqual(t, 0, exitErr.ExitCode())

	assert.Contains(t, string(out), "This binary is a plugin")
	assert.NotContains(t, string(out), "|grpc", "no handshake line may be emitted without the cookie")
}

func TestClient_StartupTimeout(t *testing.T) {
	ctx := helperCtx(t, "slow")
	_, err := pluginx.NewClientBuilder(ctx, &pluginx.ClientConfig{
		Handshake:      kvshared.HandshakeConfig,
		Cmd:            helperCmd(),
		StartupTimeout: 100 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pluginx.ErrStartupTimeout)
}

func TestClient_BadHandshake(t *testing.T) {
	ctx := helperCtx(t, "garbage")
	_, err := pluginx.NewClientBuilder(ctx, &pluginx.ClientConfig{
		Handshake:      kvshared.HandshakeConfig,
		Cmd:            helperCmd(),
		StartupTimeout: 10 * time.Second,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pluginx.ErrInvalidHandshakeMessage)

	var hsErr *pluginx.HandshakeError
	require.True(t, errors.As(err, &hsErr))
	assert.Equal(t, "not a handshake", hsErr.Message)
}

func TestClient_StdioStreaming(t *testing.T) {
	client, ctx := startKvClient(t, "stdio")

	stdio := client.Stdio()
	require.NotNil(t, stdio)
	assert.Nil(t, client.Stdio(), "the stdio stream is single-consumer")

	recvCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var got []string
	for len(got) < 3 {
		chunk, err := stdio.Recv(recvCtx)
		require.NoError(t, err)
		require.Equal(t, pluginx.StdioStdout, chunk.Channel)
		got = append(got, string(chunk.Data))
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestClient_RawPipesTakenOnce(t *testing.T) {
	client, _ := startKvClient(t, "kv")

	assert.NotNil(t, client.RawStdout())
	assert.Nil(t, client.RawStdout())
	assert.NotNil(t, client.RawStderr())
	assert.Nil(t, client.RawStderr())
}

func TestNewClientBuilder_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := pluginx.NewClientBuilder(ctx, &pluginx.ClientConfig{
		Handshake: pluginx.HandshakeConfig{MagicCookieValue: "x"},
		Cmd:       helperCmd(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MagicCookieKey")

	_, err = pluginx.NewClientBuilder(ctx, &pluginx.ClientConfig{
		Handshake: kvshared.HandshakeConfig,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cmd")
}
