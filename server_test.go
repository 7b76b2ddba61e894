package pluginx

import (
	"context"
	"net"
	"os"
	"runtime"
	"testing"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

var serverTestHandshake = HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "PLUGINX_SERVER_TEST",
	MagicCookieValue: "yes",
}

// serverTestCtx fabricates the environment a host would give the plugin.
func serverTestCtx(extra ...string) context.Context {
	environ := append([]string{"PLUGINX_SERVER_TEST=yes"}, extra...)
	return ctxenv.WithEnviron(context.Background(), environ)
}

func TestNewServer_BindsListener(t *testing.T) {
	srv, err := NewServer(serverTestCtx(), &ServerConfig{Handshake: serverTestHandshake})
	require.NoError(t, err)
	defer srv.Close()

	require.NotNil(t, srv.Addr())
	if runtime.GOOS == "windows" {
		assert.Equal(t, "tcp", srv.Addr().Network())
	} else {
		assert.Equal(t, "unix", srv.Addr().Network())
	}

	assert.NotNil(t, srv.ExitSignal())
	assert.NotNil(t, srv.Stdio())
}

func TestServer_CloseRemovesUnixSocket(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix sockets are not used on windows")
	}

	dir := t.TempDir()
	srv, err := NewServer(serverTestCtx(envUnixSocketDir+"="+dir), &ServerConfig{
		Handshake: serverTestHandshake,
	})
	require.NoError(t, err)

	path := srv.Addr().(*net.UnixAddr).Name
	_, err = os.Stat(path)
	require.NoError(t, err, "socket file must exist while the server is alive")

	// A server that is never run must still clean up its socket.
	require.NoError(t, srv.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestServer_SocketDirOverride(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix sockets are not used on windows")
	}

	dir := t.TempDir()
	srv, err := NewServer(serverTestCtx(envUnixSocketDir+"="+dir), &ServerConfig{
		Handshake: serverTestHandshake,
	})
	require.NoError(t, err)
	defer srv.Close()

	path := srv.Addr().(*net.UnixAddr).Name
	assert.Contains(t, path, dir)
}

func TestServer_AddPlugin(t *testing.T) {
	srv, err := NewServer(serverTestCtx(), &ServerConfig{Handshake: serverTestHandshake})
	require.NoError(t, err)
	defer srv.Close()

	var registered *grpc.Server
	err = srv.AddPlugin(PluginServerFunc(func(g *grpc.Server) error {
		registered = g
		return nil
	}))
	require.NoError(t, err)
	assert.Same(t, srv.grpcServer, registered)
}
