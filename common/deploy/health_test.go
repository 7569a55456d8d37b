package deploy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeHealthKeepsPollingUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	err := probeHealth(context.Background(), ts.Client(), ts.URL+"/health", 5*time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestProbeHealthTimesOut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)

	err := probeHealth(context.Background(), ts.Client(), ts.URL+"/health", 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health endpoint returned")
}

func TestWaitForServiceRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32

	fake := &flakyCompose{calls: &calls}
	err := waitForService(context.Background(), fake, "api", 5*time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

// flakyCompose fails its first status query and reports running afterwards.
type flakyCompose struct {
	calls *atomic.Int32
}

func (f *flakyCompose) ToolName() string { return "fake" }

func (f *flakyCompose) Build() error { return nil }

func (f *flakyCompose) Up() error { return nil }

func (f *flakyCompose) RunOneShot(string, ...string) error { return nil }

func (f *flakyCompose) ServiceRunning(string) (bool, error) {
	if f.calls.Add(1) == 1 {
		return false, eris.New("compose ps failed")
	}
	return true, nil
}
