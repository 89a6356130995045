package scan

import (
	"context"
	"sync"

	"github.com/user/smolwifi/internal/model"
)

// fakeControlPlane substitutes the daemon for tests.
type fakeControlPlane struct {
	devices []Device
	err     error
}

func (f *fakeControlPlane) Devices(ctx context.Context) ([]Device, error) {
	return f.devices, f.err
}

type fakeAP struct {
	path string
	raw  model.RawAccessPoint
	err  error
}

func (f *fakeAP) Path() string { return f.path }

func (f *fakeAP) Properties(ctx context.Context) (model.RawAccessPoint, error) {
	return f.raw, f.err
}

type fakeDevice struct {
	mu sync.Mutex

	name     string
	wireless bool
	state    model.DeviceState

	lastScan      int64
	lastScanErr   error
	scanErr       error
	advanceOnScan bool // completion arrives as soon as the scan is accepted

	aps        []AccessPointRef
	apsErr     error
	activePath string

	scanRequests int
}

func (f *fakeDevice) Path() string { return "/dev/" + f.name }

func (f *fakeDevice) Name() string { return f.name }

func (f *fakeDevice) Wireless() bool { return f.wireless }

func (f *fakeDevice) State() model.DeviceState { return f.state }

func (f *fakeDevice) RequestScan(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scanRequests++
	if f.scanErr != nil {
		return f.scanErr
	}
	if f.advanceOnScan {
		f.lastScan++
	}
	return nil
}

func (f *fakeDevice) LastScan(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastScan, f.lastScanErr
}

func (f *fakeDevice) AccessPoints(ctx context.Context) ([]AccessPointRef, error) {
	return f.aps, f.apsErr
}

func (f *fakeDevice) ActiveAccessPointPath(ctx context.Context) (string, error) {
	return f.activePath, nil
}

func (f *fakeDevice) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scanRequests
}
