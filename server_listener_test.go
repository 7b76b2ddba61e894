package pluginx

import (
	"context"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTCPListener_SkipsBusyPorts(t *testing.T) {
	// Occupy a port, then ask the locator to scan a range starting at
	// it; the locator must step past it rather than fail.
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	busyPort := uint16(busy.Addr().(*net.TCPAddr).Port)

	l, err := findTCPListener(portRange{min: busyPort, max: busyPort + 10})
	require.NoError(t, err)
	defer l.Close()

	gotPort := l.Addr().(*net.TCPAddr).Port
	assert.Greater(t, gotPort, int(busyPort))
	assert.LessOrEqual(t, gotPort, int(busyPort)+10)
}

func TestFindTCPListener_ExhaustedRange(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	busyPort := uint16(busy.Addr().(*net.TCPAddr).Port)

	_, err = findTCPListener(portRange{min: busyPort, max: busyPort})
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EADDRINUSE)
}

func TestFindUnixListener(t *testing.T) {
	dir := t.TempDir()

	l, err := findUnixListener(unixSocketPrefix, dir)
	require.NoError(t, err)

	path := l.Addr().(*net.UnixAddr).Name
	assert.Contains(t, path, unixSocketPrefix)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSocket, fi.Mode()&os.ModeSocket)

	require.NoError(t, l.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "socket file should be removed on close")
}

func TestFindUnixListener_UniquePaths(t *testing.T) {
	dir := t.TempDir()

	l1, err := findUnixListener(unixSocketPrefix, dir)
	require.NoError(t, err)
	defer l1.Close()

	l2, err := findUnixListener(unixSocketPrefix, dir)
	require.NoError(t, err)
	defer l2.Close()

	assert.NotEqual(t, l1.Addr().String(), l2.Addr().String())
}

func TestRmListener_CloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	l, err := findUnixListener(unixSocketPrefix, dir)
	require.NoError(t, err)

	require.NoError(t, l.Close())
	// A second close reports the underlying listener error but must not
	// fail on the already-removed socket file.
	l.Close()
}

func TestPortRangeFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    portRange
	}{
		{
			name:    "both set",
			environ: []string{"PLUGIN_MIN_PORT=4000", "PLUGIN_MAX_PORT=5000"},
			want:    portRange{min: 4000, max: 5000},
		},
		{
			name:    "missing falls back to defaults",
			environ: []string{},
			want:    portRange{min: defaultMinPort, max: defaultMaxPort},
		},
		{
			name:    "malformed falls back to defaults",
			environ: []string{"PLUGIN_MIN_PORT=low", "PLUGIN_MAX_PORT=5000"},
			want:    portRange{min: defaultMinPort, max: defaultMaxPort},
		},
		{
			name:    "out of range falls back to defaults",
			environ: []string{"PLUGIN_MIN_PORT=70000", "PLUGIN_MAX_PORT=80000"},
			want:    portRange{min: defaultMinPort, max: defaultMaxPort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ctxenv.WithEnviron(context.Background(), tt.environ)
			assert.Equal(t, tt.want, portRangeFromEnv(ctx))
		})
	}
}
