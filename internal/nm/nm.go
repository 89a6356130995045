// Package nm talks to NetworkManager over the system D-Bus. It
// implements the scan package's control-plane interfaces; nothing here
// mutates device or connection state.
package nm

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/user/smolwifi/internal/model"
	"github.com/user/smolwifi/internal/scan"
)

const (
	busName  = "org.freedesktop.NetworkManager"
	basePath = dbus.ObjectPath("/org/freedesktop/NetworkManager")

	deviceIface   = busName + ".Device"
	wirelessIface = busName + ".Device.Wireless"
	apIface       = busName + ".AccessPoint"

	propsIface = "org.freedesktop.DBus.Properties"

	// RequestScan inside the daemon's minimum scan interval (or while
	// a scan is already running) fails with this error name. Either
	// way the right response is to read the current results.
	errNotAllowed = busName + ".Device.NotAllowed"
)

// NetworkManager device type and state values, from nm-dbus-interface.h.
const (
	deviceTypeWifi uint32 = 2

	stateUnmanaged    uint32 = 10
	stateUnavailable  uint32 = 20
	stateDisconnected uint32 = 30
	stateActivated    uint32 = 100
	stateDeactivating uint32 = 110
	stateFailed       uint32 = 120
)

func mapDeviceState(s uint32) model.DeviceState {
	switch {
	case s == 0:
		return model.DeviceStateUnknown
	case s == stateUnmanaged:
		return model.DeviceStateUnmanaged
	case s == stateUnavailable:
		return model.DeviceStateUnavailable
	case s == stateDisconnected:
		return model.DeviceStateDisconnected
	case s > stateDisconnected && s < stateActivated:
		return model.DeviceStateActivating
	case s == stateActivated:
		return model.DeviceStateActivated
	case s == stateDeactivating:
		return model.DeviceStateDeactivating
	case s == stateFailed:
		return model.DeviceStateFailed
	default:
		return model.DeviceStateUnknown
	}
}

// Client is a NetworkManager control-plane client.
type Client struct {
	conn *dbus.Conn
}

// Connect opens the system bus and verifies NetworkManager is
// reachable. A failure here is the unrecoverable startup error: the
// caller should exit non-zero.
func Connect(ctx context.Context) (*Client, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, scan.Transport("connect system bus", err)
	}

	c := &Client{conn: conn}
	if _, err := c.Version(ctx); err != nil {
		return nil, scan.Transport("reach NetworkManager", err)
	}
	return c, nil
}

// Version returns the daemon version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	v, err := getProp(ctx, c.conn.Object(busName, basePath), busName, "Version")
	if err != nil {
		return "", err
	}
	s, _ := v.Value().(string)
	return s, nil
}

// Devices enumerates all devices NetworkManager knows about.
func (c *Client) Devices(ctx context.Context) ([]scan.Device, error) {
	var paths []dbus.ObjectPath
	obj := c.conn.Object(busName, basePath)
	if err := obj.CallWithContext(ctx, busName+".GetDevices", 0).Store(&paths); err != nil {
		return nil, err
	}

	devices := make([]scan.Device, 0, len(paths))
	for _, path := range paths {
		dev, err := c.device(ctx, path)
		if err != nil {
			// A device can be removed between enumeration and the
			// property read; it is simply not a candidate anymore.
			continue
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

func (c *Client) device(ctx context.Context, path dbus.ObjectPath) (*Device, error) {
	var props map[string]dbus.Variant
	obj := c.conn.Object(busName, path)
	if err := obj.CallWithContext(ctx, propsIface+".GetAll", 0, deviceIface).Store(&props); err != nil {
		return nil, fmt.Errorf("device %s: %w", path, err)
	}

	return &Device{
		conn:    c.conn,
		path:    path,
		name:    stringProp(props, "Interface"),
		devType: uint32Prop(props, "DeviceType"),
		state:   mapDeviceState(uint32Prop(props, "State")),
	}, nil
}

// Device is one NetworkManager device.
type Device struct {
	conn    *dbus.Conn
	path    dbus.ObjectPath
	name    string
	devType uint32
	state   model.DeviceState
}

func (d *Device) Path() string { return string(d.path) }

func (d *Device) Name() string { return d.name }

func (d *Device) Wireless() bool { return d.devType == deviceTypeWifi }

func (d *Device) State() model.DeviceState { return d.state }

// RequestScan asks the daemon for a fresh scan with no SSID hints.
// Throttled requests surface as scan.ErrScanThrottled.
func (d *Device) RequestScan(ctx context.Context) error {
	obj := d.conn.Object(busName, d.path)
	err := obj.CallWithContext(ctx, wirelessIface+".RequestScan", 0,
		map[string]dbus.Variant{}).Err
	if err == nil {
		return nil
	}
	var dbErr dbus.Error
	if errors.As(err, &dbErr) && dbErr.Name == errNotAllowed {
		return fmt.Errorf("%s: %w", d.name, scan.ErrScanThrottled)
	}
	return fmt.Errorf("request scan on %s: %w", d.name, err)
}

// LastScan reads the daemon's last-scan stamp: milliseconds on
// CLOCK_BOOTTIME, -1 if the device has never scanned. Only comparisons
// against other LastScan values are meaningful.
func (d *Device) LastScan(ctx context.Context) (int64, error) {
	v, err := getProp(ctx, d.conn.Object(busName, d.path), wirelessIface, "LastScan")
	if err != nil {
		return 0, err
	}
	stamp, ok := v.Value().(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected LastScan type %T", v.Value())
	}
	return stamp, nil
}

// AccessPoints lists handles for the currently visible access points.
func (d *Device) AccessPoints(ctx context.Context) ([]scan.AccessPointRef, error) {
	var paths []dbus.ObjectPath
	obj := d.conn.Object(busName, d.path)
	if err := obj.CallWithContext(ctx, wirelessIface+".GetAllAccessPoints", 0).Store(&paths); err != nil {
		return nil, err
	}

	refs := make([]scan.AccessPointRef, 0, len(paths))
	for _, path := range paths {
		refs = append(refs, &accessPoint{conn: d.conn, path: path})
	}
	return refs, nil
}

// ActiveAccessPointPath returns the object path of the associated
// access point, or "" when the device is not connected.
func (d *Device) ActiveAccessPointPath(ctx context.Context) (string, error) {
	v, err := getProp(ctx, d.conn.Object(busName, d.path), wirelessIface, "ActiveAccessPoint")
	if err != nil {
		return "", err
	}
	path, ok := v.Value().(dbus.ObjectPath)
	if !ok || path == "/" {
		return "", nil
	}
	return string(path), nil
}

// accessPoint is a handle to one access point's property bundle.
type accessPoint struct {
	conn *dbus.Conn
	path dbus.ObjectPath
}

func (a *accessPoint) Path() string { return string(a.path) }

// Properties reads the access point's full bundle in one call. Keys the
// daemon omits stay at their zero value; the normalizer owns defaulting
// beyond that.
func (a *accessPoint) Properties(ctx context.Context) (model.RawAccessPoint, error) {
	var props map[string]dbus.Variant
	obj := a.conn.Object(busName, a.path)
	if err := obj.CallWithContext(ctx, propsIface+".GetAll", 0, apIface).Store(&props); err != nil {
		return model.RawAccessPoint{}, err
	}

	return model.RawAccessPoint{
		SSID:      bytesProp(props, "Ssid"),
		BSSID:     stringProp(props, "HwAddress"),
		Strength:  byteProp(props, "Strength"),
		Frequency: uint32Prop(props, "Frequency"),
		Flags:     uint32Prop(props, "Flags"),
		WPAFlags:  uint32Prop(props, "WpaFlags"),
		RSNFlags:  uint32Prop(props, "RsnFlags"),
		Mode:      uint32Prop(props, "Mode"),
	}, nil
}

func getProp(ctx context.Context, obj dbus.BusObject, iface, name string) (dbus.Variant, error) {
	var v dbus.Variant
	err := obj.CallWithContext(ctx, propsIface+".Get", 0, iface, name).Store(&v)
	return v, err
}

// Variant extraction with zero-value defaulting for absent or
// differently-typed keys.

func stringProp(props map[string]dbus.Variant, key string) string {
	s, _ := props[key].Value().(string)
	return s
}

func bytesProp(props map[string]dbus.Variant, key string) []byte {
	b, _ := props[key].Value().([]byte)
	return b
}

func byteProp(props map[string]dbus.Variant, key string) uint8 {
	b, _ := props[key].Value().(uint8)
	return b
}

func uint32Prop(props map[string]dbus.Variant, key string) uint32 {
	u, _ := props[key].Value().(uint32)
	return u
}
