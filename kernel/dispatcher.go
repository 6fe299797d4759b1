package kernel

import (
	"sync"

	"github.com/vectorlane/tensorkernel/device"
)

// CPUDispatcher is the process-wide handle the kernel's scheduling contract
// calls for: one instance, lazily created on first use, holding no mutable
// state beyond which device it targets. Exec and ExecAtDim stay generic
// free functions (a dispatcher can't be generic over every element type at
// once), but they route through this singleton so that swapping backends
// later means replacing what Dispatcher returns, not touching every call
// site.
type CPUDispatcher struct {
	dev device.Device
}

var (
	dispatcherOnce sync.Once
	dispatcher     *CPUDispatcher
)

// Dispatcher returns the process-wide CPU dispatcher, creating it on the
// first call.
func Dispatcher() *CPUDispatcher {
	dispatcherOnce.Do(func() {
		dev, err := device.Get("cpu")
		if err != nil {
			panic("kernel: cpu device not registered: " + err.Error())
		}

		dispatcher = &CPUDispatcher{dev: dev}
	})

	return dispatcher
}

// Device returns the device this dispatcher targets.
func (d *CPUDispatcher) Device() device.Device { return d.dev }
