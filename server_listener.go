package pluginx

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"syscall"

	"github.com/apparentlymart/go-ctxenv/ctxenv"
	"github.com/cockroachdb/errors"
)

// Default port range offered to plugins when the host doesn't configure
// one. Matches the go-plugin defaults.
const (
	defaultMinPort uint16 = 10000
	defaultMaxPort uint16 = 25000
)

// unixSocketPrefix is the filename prefix for plugin Unix socket files.
const unixSocketPrefix = "plugin-"

// portRange is an inclusive range of TCP ports.
type portRange struct {
	min, max uint16
}

// portRangeFromEnv reads the range the host advertised via PLUGIN_MIN_PORT
// and PLUGIN_MAX_PORT. If either variable is missing or malformed the
// default range is used; plugins must be able to start against hosts that
// predate the port-range protocol.
func portRangeFromEnv(ctx context.Context) portRange {
	minPort, errMin := strconv.ParseUint(ctxenv.Getenv(ctx, envMinPort), 10, 16)
	maxPort, errMax := strconv.ParseUint(ctxenv.Getenv(ctx, envMaxPort), 10, 16)
	if errMin != nil || errMax != nil {
		return portRange{min: defaultMinPort, max: defaultMaxPort}
	}
	return portRange{min: uint16(minPort), max: uint16(maxPort)}
}

// findTCPListener binds the first free loopback port in the range,
// scanning in order. Ports that are already in use are skipped; any other
// bind failure aborts the scan. An exhausted range reports address-in-use.
func findTCPListener(r portRange) (net.Listener, error) {
	for port := int(r.min); port <= int(r.max); port++ {
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			return l, nil
		}
		if errors.Is(err, syscall.EADDRINUSE) {
			continue
		}
		return nil, errors.Wrapf(err, "cannot bind 127.0.0.1:%d", port)
	}
	return nil, errors.Wrapf(syscall.EADDRINUSE, "no free port between %d and %d", r.min, r.max)
}

// findUnixListener binds a Unix socket at a fresh uniquely-named path in
// dir (or the system temporary directory if dir is empty).
//
// The name is reserved by creating a placeholder file exclusively, which
// is then deleted so the socket can be bound at the same path. If another
// process wins the race for the path in between, the bind fails with
// "already exists" and a new name is drawn.
func findUnixListener(prefix, dir string) (net.Listener, error) {
	for {
		f, err := os.CreateTemp(dir, prefix+"*")
		if err != nil {
			return nil, errors.Wrap(err, "cannot reserve plugin socket path")
		}
		path := f.Name()
		f.Close()
		os.Remove(path)

		l, err := net.Listen("unix", path)
		if err != nil {
			if errors.Is(err, fs.ErrExist) || errors.Is(err, syscall.EADDRINUSE) {
				continue
			}
			return nil, errors.Wrapf(err, "cannot bind unix socket at %s", path)
		}
		return &rmListener{Listener: l, path: path}, nil
	}
}

// rmListener forwards to the wrapped listener and additionally removes
// the socket file when closed, so no stale socket inode outlives the
// plugin. Removal failures are ignored; the path may already be gone.
type rmListener struct {
	net.Listener
	path string
}

func (l *rmListener) Close() error {
	err := l.Listener.Close()
	os.Remove(l.path)
	return err
}
