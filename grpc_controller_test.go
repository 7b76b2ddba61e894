package pluginx

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkonge/pluginx/internal/pluginproto"
)

func TestExitSignal_FireReleasesAllWaiters(t *testing.T) {
	sig := newExitSignal()

	const waiters = 5
	var wg sync.WaitGroup
	released := make(chan struct{}, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-sig.Done()
			released <- struct{}{}
		}()
	}

	assert.False(t, sig.Fired())
	sig.Fire()
	wg.Wait()
	assert.Len(t, released, waiters)
	assert.True(t, sig.Fired())
}

func TestExitSignal_FireIsIdempotent(t *testing.T) {
	sig := newExitSignal()
	sig.Fire()
	// A second fire must be a no-op, not a double close.
	sig.Fire()
	assert.True(t, sig.Fired())
}

func TestControllerServer_ShutdownFiresExitSignal(t *testing.T) {
	srv, exit := newControllerServer()

	resp, err := srv.Shutdown(context.Background(), &pluginproto.Empty{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	select {
	case <-exit.Done():
	case <-time.After(time.Second):
		t.Fatal("exit signal did not fire after Shutdown")
	}

	// Repeated shutdown requests must keep succeeding.
	_, err = srv.Shutdown(context.Background(), &pluginproto.Empty{})
	require.NoError(t, err)
}
