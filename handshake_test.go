package pluginx

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandshakeMessage(t *testing.T) {
	tests := []struct {
		name string
		line string
		want HandshakeMessage
	}{
		{
			name: "tcp",
			line: "1|7|tcp|127.0.0.1:10001|grpc",
			want: HandshakeMessage{
				CoreProtocol: 1,
				AppProtocol:  7,
				Addr:         &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1).To4(), Port: 10001},
				Protocol:     ProtocolGRPC,
			},
		},
		{
			name: "unix",
			line: "1|1|unix|/tmp/plugin-1234|grpc",
			want: HandshakeMessage{
				CoreProtocol: 1,
				AppProtocol:  1,
				Addr:         &net.UnixAddr{Net: "unix", Name: "/tmp/plugin-1234"},
				Protocol:     ProtocolGRPC,
			},
		},
		{
			name: "surrounding whitespace trimmed",
			line: "  1 | 2 | unix | /tmp/sock | grpc \n",
			want: HandshakeMessage{
				CoreProtocol: 1,
				AppProtocol:  2,
				Addr:         &net.UnixAddr{Net: "unix", Name: "/tmp/sock"},
				Protocol:     ProtocolGRPC,
			},
		},
		{
			name: "trailing TLS and multiplex fields ignored",
			line: "1|3|tcp|127.0.0.1:25000|grpc|MIICertificateData|true",
			want: HandshakeMessage{
				CoreProtocol: 1,
				AppProtocol:  3,
				Addr:         &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1).To4(), Port: 25000},
				Protocol:     ProtocolGRPC,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHandshakeMessage(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want.CoreProtocol, got.CoreProtocol)
			assert.Equal(t, tt.want.AppProtocol, got.AppProtocol)
			assert.Equal(t, tt.want.Protocol, got.Protocol)
			assert.Equal(t, tt.want.Addr.Network(), got.Addr.Network())
			assert.Equal(t, tt.want.Addr.String(), got.Addr.String())
		})
	}
}

func TestParseHandshakeMessage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"empty", "", ErrInvalidHandshakeMessage},
		{"not a handshake", "not a handshake", ErrInvalidHandshakeMessage},
		{"four fields", "1|1|tcp|127.0.0.1:10000", ErrInvalidHandshakeMessage},
		{"core not a number", "x|1|tcp|127.0.0.1:10000|grpc", ErrParseNumberFailed},
		{"app not a number", "1|x|tcp|127.0.0.1:10000|grpc", ErrParseNumberFailed},
		{"negative version", "1|-1|tcp|127.0.0.1:10000|grpc", ErrParseNumberFailed},
		{"unknown network type", "1|1|udp|127.0.0.1:10000|grpc", ErrInvalidNetwork},
		{"bad tcp address", "1|1|tcp|nonsense|grpc", ErrInvalidNetwork},
		{"missing tcp port", "1|1|tcp|127.0.0.1|grpc", ErrInvalidNetwork},
		{"empty unix path", "1|1|unix||grpc", ErrInvalidNetwork},
		{"unknown protocol", "1|1|tcp|127.0.0.1:10000|netrpc", ErrInvalidTransportProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHandshakeMessage(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHandshakeMessage_RoundTrip(t *testing.T) {
	msgs := []HandshakeMessage{
		{
			CoreProtocol: 1,
			AppProtocol:  0,
			Addr:         &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1).To4(), Port: 10000},
			Protocol:     ProtocolGRPC,
		},
		{
			CoreProtocol: 1,
			AppProtocol:  4294967295,
			Addr:         &net.UnixAddr{Net: "unix", Name: "/tmp/plugin-abcdef"},
			Protocol:     ProtocolGRPC,
		},
	}

	for _, msg := range msgs {
		got, err := ParseHandshakeMessage(msg.String())
		require.NoError(t, err, "line %q", msg.String())
		assert.Equal(t, msg.CoreProtocol, got.CoreProtocol)
		assert.Equal(t, msg.AppProtocol, got.AppProtocol)
		assert.Equal(t, msg.Protocol, got.Protocol)
		assert.Equal(t, msg.Addr.Network(), got.Addr.Network())
		assert.Equal(t, msg.Addr.String(), got.Addr.String())
	}
}

func TestHandshakeError_Message(t *testing.T) {
	err := &HandshakeError{Err: ErrInvalidHandshakeMessage, Message: "not a handshake"}
	assert.ErrorIs(t, err, ErrInvalidHandshakeMessage)
	assert.Contains(t, err.Error(), `"not a handshake"`)

	bare := &HandshakeError{Err: ErrStartupTimeout}
	assert.ErrorIs(t, bare, ErrStartupTimeout)
	assert.NotContains(t, bare.Error(), "message")
}
