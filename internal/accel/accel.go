// Package accel selects the hardware acceleration mode for document
// conversion. The selection runs once at process startup and is passed into
// the converter's pipeline options; it is never changed afterwards.
package accel

import (
	"runtime"

	"github.com/docbridge/docbridge/internal/observability"
)

// Device is a hardware execution hint understood by the conversion backend.
type Device string

const (
	// DeviceAuto lets the backend pick the best available device.
	DeviceAuto Device = "auto"
	// DeviceMPS selects Metal Performance Shaders on Apple hardware.
	DeviceMPS Device = "mps"
	// DeviceCPU forces CPU-only execution.
	DeviceCPU Device = "cpu"
)

// DefaultNumThreads is the fixed worker-thread count handed to the backend
// regardless of the selected device.
const DefaultNumThreads = 4

// Options holds the accelerator configuration for a conversion backend.
type Options struct {
	Device     Device
	NumThreads int
}

// Detect picks accelerator options for the given GOOS identifier. Apple
// desktop systems get MPS; everything else falls through to automatic
// device selection. Unknown identifiers are treated the same way.
func Detect(goos string) Options {
	opts := Options{
		Device:     DeviceAuto,
		NumThreads: DefaultNumThreads,
	}
	if goos == "darwin" {
		opts.Device = DeviceMPS
	}
	return opts
}

// DetectHost detects accelerator options for the running host and logs the
// chosen mode.
func DetectHost(logger *observability.Logger) Options {
	opts := Detect(runtime.GOOS)
	if opts.Device == DeviceMPS {
		logger.Info().
			Str("device", string(opts.Device)).
			Int("num_threads", opts.NumThreads).
			Msg("Detected macOS, enabling MPS GPU acceleration")
	} else {
		logger.Info().
			Str("device", string(opts.Device)).
			Int("num_threads", opts.NumThreads).
			Msg("MPS not available, using automatic device selection")
	}
	return opts
}
