//go:build windows

package pluginx

import (
	"github.com/oklog/run"

	"github.com/zkonge/pluginx/plugintrace"
)

// addSignalHandlers is a no-op on Windows, which has no POSIX-style
// signal delivery to cooperate with. The host's kill-on-close handling
// still bounds the plugin's lifetime.
func (s *Server) addSignalHandlers(g *run.Group, tracer *plugintrace.ServerTracer) {
}
