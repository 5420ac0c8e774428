package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docbridge/docbridge/internal/observability"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		goos string
		want Device
	}{
		{name: "darwin selects MPS", goos: "darwin", want: DeviceMPS},
		{name: "linux selects auto", goos: "linux", want: DeviceAuto},
		{name: "windows selects auto", goos: "windows", want: DeviceAuto},
		{name: "unknown identifier selects auto", goos: "plan9", want: DeviceAuto},
		{name: "empty identifier selects auto", goos: "", want: DeviceAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Detect(tt.goos)
			assert.Equal(t, tt.want, opts.Device)
			assert.Equal(t, DefaultNumThreads, opts.NumThreads)
		})
	}
}

func TestDetectHost(t *testing.T) {
	opts := DetectHost(observability.Nop())
	assert.Equal(t, DefaultNumThreads, opts.NumThreads)
	assert.NotEmpty(t, opts.Device)
}
