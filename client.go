package pluginx

import (
	"os/exec"
	"time"
)

// ClientConfig is used to configure the launch of a plugin process by
// NewClientBuilder.
type ClientConfig struct {
	// Handshake configures the handshake settings that must agree with
	// those compiled into the plugin binary.
	Handshake HandshakeConfig

	// Cmd is a not-yet-started exec.Cmd configured to launch a specific
	// plugin executable. The given object must not be used by the caller
	// after it's been passed as part of a ClientConfig, and will be
	// modified in undefined ways by the pluginx package.
	Cmd *exec.Cmd

	// MinPort and MaxPort bound the TCP port range offered to the plugin
	// for platforms where plugins listen on TCP. If both are zero, the
	// range defaults to 10000 through 25000 inclusive.
	MinPort, MaxPort uint16

	// BrokerMultiplex is reserved for the connection broker and is
	// currently ignored.
	BrokerMultiplex bool

	// StartupTimeout is a time limit on how long the plugin is allowed
	// to take between being launched and producing its complete
	// handshake line.
	//
	// If this is given as zero, it will default to one minute.
	StartupTimeout time.Duration
}

func (c *ClientConfig) setDefaults() {
	if c.MinPort == 0 && c.MaxPort == 0 {
		c.MinPort = defaultMinPort
		c.MaxPort = defaultMaxPort
	}
	if c.StartupTimeout == 0 {
		c.StartupTimeout = 1 * time.Minute
	}
}
