package scan

import (
	"context"

	"github.com/user/smolwifi/internal/util"
)

// FindWirelessDevice returns the first wireless device that can scan.
// When iface is non-empty only a device with that interface name is
// eligible. Returns ErrNoWifiDevice when nothing matches; transport
// failures during enumeration are returned as TransportError.
func FindWirelessDevice(ctx context.Context, cp ControlPlane, iface string) (Device, error) {
	devices, err := cp.Devices(ctx)
	if err != nil {
		return nil, Transport("enumerate devices", err)
	}

	for _, dev := range devices {
		if !dev.Wireless() {
			continue
		}
		if iface != "" && dev.Name() != iface {
			continue
		}
		if !dev.State().CanScan() {
			util.Debug("skipping wireless device %s: state %s", dev.Name(), dev.State())
			continue
		}
		return dev, nil
	}

	return nil, ErrNoWifiDevice
}
