package plugintrace

import (
	"net"
	"os"
	"os/exec"
	"time"

	"github.com/apparentlymart/go-shquot/shquot"
	"go.uber.org/zap"
)

// ClientLogTracer constructs a ClientTracer that will emit human-oriented
// log entries into the given logger when trace events occur.
//
// The format of these log entries is not customizable and may change in
// future versions. For more control, construct your own ClientTracer and
// build log messages yourself.
func ClientLogTracer(logger *zap.SugaredLogger) *ClientTracer {
	return &ClientTracer{
		ProcessStart: func(cmd *exec.Cmd) {
			// We use POSIX shell quoting here just to get a nice readable
			// string representation of the args. We won't actually be
			// running this, so it doesn't matter that we'll be using
			// POSIX-style quoting on non-POSIX platforms.
			execStr := shquot.POSIXShell(cmd.Args)
			logger.Infof("launching plugin server %s", execStr)
		},

		ProcessRunning: func(proc *os.Process) {
			logger.Debugf("plugin server process has pid %d", proc.Pid)
		},

		ProcessStartFailed: func(cmd *exec.Cmd, err error) {
			execStr, _ := shquot.POSIXShellSplit(cmd.Args)
			logger.Errorf("failed to start plugin server %s: %s", execStr, err)
		},

		ProcessExited: func(state *os.ProcessState) {
			logger.Debugf("plugin server process exited: %s", state)
		},

		ServerStarted: func(proc *os.Process, addr net.Addr, protoVersion uint32) {
			logger.Infof("plugin server (pid %d) is listening at %s address %s for protocol version %d", proc.Pid, addr.Network(), addr, protoVersion)
		},

		ServerStartTimeout: func(proc *os.Process, timeout time.Duration) {
			logger.Errorf("timeout (%s) waiting for handshake from pid %d", timeout, proc.Pid)
		},

		Connect: func(addr net.Addr) {
			logger.Debugf("connecting to plugin server at %s address %s", addr.Network(), addr)
		},

		Connected: func(addr net.Addr) {
			logger.Debugf("connected to plugin server at %s address %s", addr.Network(), addr)
		},

		ConnectFailed: func(addr net.Addr, err error) {
			logger.Errorf("failed to connect to %s address %s: %s", addr.Network(), addr, err)
		},

		ShutdownRequested: func(proc *os.Process) {
			logger.Debugf("asking plugin server with pid %d to shut down", proc.Pid)
		},

		Closing: func(proc *os.Process) {
			logger.Debugf("closing plugin server with pid %d", proc.Pid)
		},
	}
}
