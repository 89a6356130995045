package nm

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"

	"github.com/user/smolwifi/internal/model"
)

func TestMapDeviceState(t *testing.T) {
	tests := []struct {
		raw  uint32
		want model.DeviceState
	}{
		{0, model.DeviceStateUnknown},
		{10, model.DeviceStateUnmanaged},
		{20, model.DeviceStateUnavailable},
		{30, model.DeviceStateDisconnected},
		{40, model.DeviceStateActivating}, // prepare
		{70, model.DeviceStateActivating}, // ip-config
		{90, model.DeviceStateActivating}, // secondaries
		{100, model.DeviceStateActivated},
		{110, model.DeviceStateDeactivating},
		{120, model.DeviceStateFailed},
		{999, model.DeviceStateUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapDeviceState(tt.raw), "state %d", tt.raw)
	}
}

func TestVariantExtractionDefaultsMissingKeys(t *testing.T) {
	props := map[string]dbus.Variant{
		"Ssid":      dbus.MakeVariant([]byte("home")),
		"HwAddress": dbus.MakeVariant("aa:bb:cc:dd:ee:ff"),
		"Strength":  dbus.MakeVariant(uint8(73)),
		"Frequency": dbus.MakeVariant(uint32(5180)),
	}

	assert.Equal(t, []byte("home"), bytesProp(props, "Ssid"))
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", stringProp(props, "HwAddress"))
	assert.Equal(t, uint8(73), byteProp(props, "Strength"))
	assert.Equal(t, uint32(5180), uint32Prop(props, "Frequency"))

	// Absent or mistyped keys default to zero values; the normalizer
	// owns everything beyond that.
	assert.Nil(t, bytesProp(props, "Missing"))
	assert.Equal(t, "", stringProp(props, "Missing"))
	assert.Equal(t, uint8(0), byteProp(props, "Missing"))
	assert.Equal(t, uint32(0), uint32Prop(props, "Missing"))
	assert.Equal(t, uint32(0), uint32Prop(props, "HwAddress"))
}
