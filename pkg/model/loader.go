package model

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the logging contract this package depends on; satisfied by
// *logger.Logger.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Observer receives load outcomes; satisfied by *metrics.Metrics.
type Observer interface {
	SetModelLoaded(device string)
}

// AcquireFunc performs one acquisition attempt on the given device. It is
// called at most twice per process: once for the accelerator and, on error,
// once for the CPU fallback.
type AcquireFunc[T any] func(ctx context.Context, device Device) (T, error)

// Loader acquires a model handle exactly once and memoizes the outcome.
//
// The handle is shared read-only state afterwards; the latch is the only
// synchronization the services use around model state.
type Loader[T any] struct {
	name      string
	preferGPU bool
	acquire   AcquireFunc[T]
	log       Logger
	observer  Observer

	once   sync.Once
	handle T
	device Device
	err    error
	state  atomic.Int32
}

// NewLoader builds a loader for the named model. When preferGPU is false the
// accelerated attempt is skipped entirely and the first attempt runs on CPU.
func NewLoader[T any](name string, preferGPU bool, acquire AcquireFunc[T], log Logger) *Loader[T] {
	l := &Loader[T]{
		name:      name,
		preferGPU: preferGPU,
		acquire:   acquire,
		log:       log,
		device:    DeviceCPU,
	}
	l.state.Store(int32(StateUnloaded))
	return l
}

// WithObserver attaches an observer notified when the model becomes
// resident.
func (l *Loader[T]) WithObserver(obs Observer) *Loader[T] {
	l.observer = obs
	return l
}

// Load returns the model handle, acquiring it on first call.
//
// First call: when the accelerator is preferred, one accelerated attempt is
// made; on error a warning is logged and a single CPU attempt follows. A CPU
// failure is memoized and returned to every caller; there is no retry
// beyond the one fallback step, and a successful load is never re-attempted
// even if the device later becomes unavailable.
//
// Concurrent first calls block until the one acquisition sequence finishes.
// The winner of the latch may be a request goroutine; acquisition outlives
// any single caller, so it runs detached from the caller's cancellation. A
// client that hangs up mid-load must not memoize a canceled outcome for the
// process lifetime.
func (l *Loader[T]) Load(ctx context.Context) (T, error) {
	l.once.Do(func() {
		ctx := context.WithoutCancel(ctx)
		start := time.Now()

		if l.preferGPU {
			l.state.Store(int32(StateAttemptingAccelerated))
			handle, err := l.acquire(ctx, DeviceCUDA)
			if err == nil {
				l.finish(handle, DeviceCUDA, start)
				return
			}
			l.log.Warn("accelerated load failed, falling back to cpu", err, map[string]interface{}{
				"model": l.name,
			})
		}

		l.state.Store(int32(StateAttemptingFallback))
		handle, err := l.acquire(ctx, DeviceCPU)
		if err != nil {
			l.err = fmt.Errorf("load %s on cpu: %w", l.name, err)
			l.state.Store(int32(StateFailed))
			l.log.Error("model load failed", l.err, map[string]interface{}{"model": l.name})
			return
		}
		l.finish(handle, DeviceCPU, start)
	})

	if l.err != nil {
		var zero T
		return zero, l.err
	}
	return l.handle, nil
}

func (l *Loader[T]) finish(handle T, device Device, start time.Time) {
	l.handle = handle
	l.device = device
	l.state.Store(int32(StateLoaded))
	if l.observer != nil {
		l.observer.SetModelLoaded(string(device))
	}
	l.log.Info("model loaded", nil, map[string]interface{}{
		"model":       l.name,
		"device":      string(device),
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// Ready reports whether the handle is resident.
func (l *Loader[T]) Ready() bool {
	return State(l.state.Load()) == StateLoaded
}

// State returns the loader's lifecycle position.
func (l *Loader[T]) State() State {
	return State(l.state.Load())
}

// Device returns the resolved placement. Before a load completes it reports
// the fallback device, matching what health endpoints advertise while
// loading.
func (l *Loader[T]) Device() Device {
	if l.Ready() {
		return l.device
	}
	return DeviceCPU
}
