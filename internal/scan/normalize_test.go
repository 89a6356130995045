package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/smolwifi/internal/model"
)

func TestNormalizeSecurityClassification(t *testing.T) {
	tests := []struct {
		name string
		raw  model.RawAccessPoint
		want model.Security
	}{
		{
			name: "no flags is open",
			raw:  model.RawAccessPoint{},
			want: model.SecurityOpen,
		},
		{
			name: "privacy bit alone is wep",
			raw:  model.RawAccessPoint{Flags: model.APFlagPrivacy},
			want: model.SecurityWEP,
		},
		{
			name: "wpa flags",
			raw:  model.RawAccessPoint{Flags: model.APFlagPrivacy, WPAFlags: model.APSecKeyMgmtPSK},
			want: model.SecurityWPA,
		},
		{
			name: "rsn flags",
			raw:  model.RawAccessPoint{Flags: model.APFlagPrivacy, RSNFlags: model.APSecKeyMgmtPSK},
			want: model.SecurityWPA2,
		},
		{
			name: "sae wins over rsn",
			raw:  model.RawAccessPoint{RSNFlags: model.APSecKeyMgmtSAE | model.APSecKeyMgmtPSK},
			want: model.SecurityWPA3,
		},
		{
			name: "mixed wpa and rsn classifies as wpa2",
			raw:  model.RawAccessPoint{WPAFlags: model.APSecKeyMgmtPSK, RSNFlags: model.APSecKeyMgmtPSK},
			want: model.SecurityWPA2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw).Security)
		})
	}
}

func TestNormalizeSSIDDecoding(t *testing.T) {
	assert.Equal(t, "Cafe WiFi", Normalize(model.RawAccessPoint{SSID: []byte("Cafe WiFi")}).SSID)

	// Hidden network: empty SSID stays empty, never nil or a placeholder.
	rec := Normalize(model.RawAccessPoint{SSID: nil})
	assert.Equal(t, "", rec.SSID)
	assert.True(t, rec.Hidden())

	// Undecodable bytes degrade to hidden instead of failing the record.
	rec = Normalize(model.RawAccessPoint{SSID: []byte{0xff, 0xfe, 0x80}})
	assert.Equal(t, "", rec.SSID)
	assert.True(t, rec.Hidden())

	// Valid UTF-8 beyond ASCII survives.
	assert.Equal(t, "Büro", Normalize(model.RawAccessPoint{SSID: []byte("Büro")}).SSID)
}

func TestNormalizeSignalClamping(t *testing.T) {
	assert.Equal(t, 0, Normalize(model.RawAccessPoint{Strength: 0}).SignalPercent)
	assert.Equal(t, 57, Normalize(model.RawAccessPoint{Strength: 57}).SignalPercent)
	assert.Equal(t, 100, Normalize(model.RawAccessPoint{Strength: 100}).SignalPercent)
	assert.Equal(t, 100, Normalize(model.RawAccessPoint{Strength: 255}).SignalPercent)
}

func TestNormalizeIdentityKey(t *testing.T) {
	rec := Normalize(model.RawAccessPoint{SSID: []byte("home"), BSSID: "aa:bb:cc:dd:ee:ff"})
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", rec.IdentityKey)

	// No BSSID falls back to the SSID.
	rec = Normalize(model.RawAccessPoint{SSID: []byte("home")})
	assert.Equal(t, "ssid:home", rec.IdentityKey)

	// An all-zero BSSID counts as absent.
	rec = Normalize(model.RawAccessPoint{SSID: []byte("home"), BSSID: "00:00:00:00:00:00"})
	assert.Equal(t, "ssid:home", rec.IdentityKey)
}

func TestNormalizeIsTotal(t *testing.T) {
	// Any bundle, however degenerate, yields a record within bounds.
	bundles := []model.RawAccessPoint{
		{},
		{SSID: []byte{0x00}, Strength: 255, Frequency: 0},
		{SSID: []byte{0xc0}, Flags: ^uint32(0), WPAFlags: ^uint32(0), RSNFlags: ^uint32(0)},
	}
	for _, raw := range bundles {
		rec := Normalize(raw)
		assert.GreaterOrEqual(t, rec.SignalPercent, 0)
		assert.LessOrEqual(t, rec.SignalPercent, 100)
		assert.NotEmpty(t, rec.IdentityKey)
	}
}

func TestNormalizeFrequencyPassThrough(t *testing.T) {
	rec := Normalize(model.RawAccessPoint{Frequency: 5180})
	assert.Equal(t, 5180, rec.FrequencyMHz)
	assert.Equal(t, "5 GHz", rec.Band())
}
