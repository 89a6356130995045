// Package scan implements the WiFi scan pipeline: locating a wireless
// device through the network daemon's control plane, triggering a scan,
// waiting for completion, reading the visible access points and turning
// them into an ordered, deduplicated result set.
package scan

import (
	"context"

	"github.com/user/smolwifi/internal/model"
)

// ControlPlane is the slice of the network daemon's API the pipeline
// consumes. Implementations own the transport; the pipeline never
// mutates device state through it.
type ControlPlane interface {
	// Devices enumerates all devices the daemon currently manages.
	Devices(ctx context.Context) ([]Device, error)
}

// Device is one network device handle.
type Device interface {
	// Path is the daemon's object path for the device.
	Path() string
	// Name is the interface name, e.g. wlan0.
	Name() string
	// Wireless reports whether the device's capability type is wireless.
	Wireless() bool
	// State is the device state as last read from the daemon.
	State() model.DeviceState

	// RequestScan asks the daemon for a fresh scan. A throttled request
	// is reported as ErrScanThrottled.
	RequestScan(ctx context.Context) error
	// LastScan returns the daemon's last-scan stamp in monotonic
	// milliseconds, or a negative value if the device never scanned.
	// Values are only meaningful relative to each other.
	LastScan(ctx context.Context) (int64, error)
	// AccessPoints lists handles for the currently visible access
	// points. Properties are read per handle so one broken access
	// point cannot sink the whole list.
	AccessPoints(ctx context.Context) ([]AccessPointRef, error)
	// ActiveAccessPointPath returns the object path of the access
	// point the device is associated with, or "" when disconnected.
	ActiveAccessPointPath(ctx context.Context) (string, error)
}

// AccessPointRef is a handle to one access point's property bundle.
type AccessPointRef interface {
	Path() string
	Properties(ctx context.Context) (model.RawAccessPoint, error)
}
