//go:build !windows

package pluginx

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/run"

	"github.com/zkonge/pluginx/plugintrace"
)

// addSignalHandlers installs the plugin's signal policy as an actor in
// the serve group: interrupts are swallowed, because the host owns the
// plugin's lifecycle and will tend to forward its own interrupt to the
// whole process group; SIGTERM fires the exit signal so that service
// managers can still stop a plugin directly.
func (s *Server) addSignalHandlers(g *run.Group, tracer *plugintrace.ServerTracer) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})

	g.Add(func() error {
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		var interrupts int
		for {
			select {
			case sig := <-ch:
				if sig == syscall.SIGTERM {
					if tracer.TerminateSignaled != nil {
						tracer.TerminateSignaled()
					}
					s.exit.Fire()
					continue
				}
				interrupts++
				if tracer.InterruptIgnored != nil {
					tracer.InterruptIgnored(interrupts)
				}
			case <-done:
				return nil
			}
		}
	}, func(error) {
		signal.Stop(ch)
		close(done)
	})
}
