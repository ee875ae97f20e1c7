package model

// Device names a compute placement for a loaded model. The values mirror
// what the runner reports back in health payloads.
type Device string

const (
	// DeviceCUDA is the accelerated placement.
	DeviceCUDA Device = "cuda"

	// DeviceCPU is the fallback placement.
	DeviceCPU Device = "cpu"
)

// State is the lifecycle position of a Loader.
type State int32

const (
	StateUnloaded State = iota
	StateAttemptingAccelerated
	StateAttemptingFallback
	StateLoaded
	StateFailed
)

// String returns the health-endpoint spelling of the state.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateAttemptingAccelerated, StateAttemptingFallback:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
