package model

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(string, error, ...map[string]interface{})  {}
func (testLogger) Warn(string, error, ...map[string]interface{})  {}
func (testLogger) Error(string, error, ...map[string]interface{}) {}

type testObserver struct {
	mu      sync.Mutex
	devices []string
}

func (o *testObserver) SetModelLoaded(device string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.devices = append(o.devices, device)
}

func TestLoaderAcceleratedSuccess(t *testing.T) {
	var attempts []Device
	loader := NewLoader("test-model", true, func(ctx context.Context, dev Device) (string, error) {
		attempts = append(attempts, dev)
		return "handle", nil
	}, testLogger{})

	handle, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "handle", handle)
	assert.Equal(t, DeviceCUDA, loader.Device())
	assert.True(t, loader.Ready())
	assert.Equal(t, []Device{DeviceCUDA}, attempts)
}

func TestLoaderFallsBackToCPU(t *testing.T) {
	var attempts []Device
	obs := &testObserver{}
	loader := NewLoader("test-model", true, func(ctx context.Context, dev Device) (string, error) {
		attempts = append(attempts, dev)
		if dev == DeviceCUDA {
			return "", errors.New("no accelerator")
		}
		return "cpu-handle", nil
	}, testLogger{}).WithObserver(obs)

	handle, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cpu-handle", handle)
	assert.Equal(t, DeviceCPU, loader.Device())
	assert.Equal(t, []Device{DeviceCUDA, DeviceCPU}, attempts)
	assert.Equal(t, []string{"cpu"}, obs.devices)
}

func TestLoaderSkipsAcceleratorWhenDisabled(t *testing.T) {
	var attempts []Device
	loader := NewLoader("test-model", false, func(ctx context.Context, dev Device) (string, error) {
		attempts = append(attempts, dev)
		return "h", nil
	}, testLogger{})

	_, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Device{DeviceCPU}, attempts)
	assert.Equal(t, DeviceCPU, loader.Device())
}

func TestLoaderFallbackFailureIsMemoized(t *testing.T) {
	var calls atomic.Int32
	loader := NewLoader("test-model", true, func(ctx context.Context, dev Device) (string, error) {
		calls.Add(1)
		return "", errors.New("boom")
	}, testLogger{})

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load test-model on cpu")
	assert.False(t, loader.Ready())
	assert.Equal(t, StateFailed, loader.State())

	// No re-attempt: the error is permanent for the process lifetime.
	_, err = loader.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoaderIdempotentAfterSuccess(t *testing.T) {
	var calls atomic.Int32
	loader := NewLoader("test-model", true, func(ctx context.Context, dev Device) (string, error) {
		calls.Add(1)
		return "h", nil
	}, testLogger{})

	for i := 0; i < 3; i++ {
		_, err := loader.Load(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoaderConcurrentFirstLoad(t *testing.T) {
	var calls atomic.Int32
	loader := NewLoader("test-model", false, func(ctx context.Context, dev Device) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "h", nil
	}, testLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handle, err := loader.Load(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "h", handle)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoaderSurvivesCallerCancellation(t *testing.T) {
	loader := NewLoader("test-model", false, func(ctx context.Context, dev Device) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(50 * time.Millisecond):
			return "h", nil
		}
	}, testLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	// The first caller hangs up mid-acquisition; the load finishes anyway.
	handle, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "h", handle)

	handle, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "h", handle)
	assert.True(t, loader.Ready())
}

func TestDeviceBeforeLoadReportsFallback(t *testing.T) {
	loader := NewLoader("test-model", true, func(ctx context.Context, dev Device) (string, error) {
		return "h", nil
	}, testLogger{})

	assert.Equal(t, DeviceCPU, loader.Device())
	assert.False(t, loader.Ready())
	assert.Equal(t, StateUnloaded, loader.State())
}
