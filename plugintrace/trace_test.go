package plugintrace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContextTracers_Default(t *testing.T) {
	ctx := context.Background()

	require.NotNil(t, ContextClientTracer(ctx))
	require.NotNil(t, ContextServerTracer(ctx))
}

func TestContextTracers_RoundTrip(t *testing.T) {
	ct := &ClientTracer{}
	st := &ServerTracer{}

	ctx := WithClientTracer(context.Background(), ct)
	ctx = WithServerTracer(ctx, st)

	assert.Same(t, ct, ContextClientTracer(ctx))
	assert.Same(t, st, ContextServerTracer(ctx))
}

func TestLogTracers_CoverAllEvents(t *testing.T) {
	logger := zap.NewNop().Sugar()

	ct := ClientLogTracer(logger)
	require.NotNil(t, ct.ProcessStart)
	require.NotNil(t, ct.ProcessRunning)
	require.NotNil(t, ct.ProcessStartFailed)
	require.NotNil(t, ct.ProcessExited)
	require.NotNil(t, ct.ServerStarted)
	require.NotNil(t, ct.ServerStartTimeout)
	require.NotNil(t, ct.Connect)
	require.NotNil(t, ct.Connected)
	require.NotNil(t, ct.ConnectFailed)
	require.NotNil(t, ct.ShutdownRequested)
	require.NotNil(t, ct.Closing)

	st := ServerLogTracer(logger)
	require.NotNil(t, st.Listening)
	require.NotNil(t, st.InterruptIgnored)
	require.NotNil(t, st.TerminateSignaled)
	require.NotNil(t, st.ExitSignaled)
	require.NotNil(t, st.GRPCServeError)
}
