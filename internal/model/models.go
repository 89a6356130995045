// Package model defines core data structures for smolwifi.
package model

import (
	"fmt"
	"time"
)

// DeviceState mirrors the network daemon's device state enum.
type DeviceState int

const (
	DeviceStateUnknown DeviceState = iota
	DeviceStateUnmanaged
	DeviceStateUnavailable
	DeviceStateDisconnected
	DeviceStateActivating
	DeviceStateActivated
	DeviceStateDeactivating
	DeviceStateFailed
)

var deviceStateNames = map[DeviceState]string{
	DeviceStateUnknown:      "unknown",
	DeviceStateUnmanaged:    "unmanaged",
	DeviceStateUnavailable:  "unavailable",
	DeviceStateDisconnected: "disconnected",
	DeviceStateActivating:   "activating",
	DeviceStateActivated:    "activated",
	DeviceStateDeactivating: "deactivating",
	DeviceStateFailed:       "failed",
}

func (s DeviceState) String() string {
	if name, ok := deviceStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// CanScan reports whether a device in this state can service a scan.
// Unmanaged and unavailable devices cannot.
func (s DeviceState) CanScan() bool {
	return s != DeviceStateUnmanaged && s != DeviceStateUnavailable
}

// ScanOutcome is the result of one scan trigger attempt.
type ScanOutcome int

const (
	ScanAccepted ScanOutcome = iota
	// ScanThrottled means the daemon refused because the minimum scan
	// interval has not elapsed; the previous results are fresh enough.
	ScanThrottled
	ScanFailed
)

func (o ScanOutcome) String() string {
	switch o {
	case ScanAccepted:
		return "accepted"
	case ScanThrottled:
		return "throttled"
	default:
		return "failed"
	}
}

// ScanRequest records a single scan trigger attempt.
type ScanRequest struct {
	IssuedAt time.Time   `json:"issued_at"`
	Outcome  ScanOutcome `json:"outcome"`
	Err      error       `json:"-"`
}

// Access point flag bitfields, as exposed by the daemon
// (NM80211ApFlags / NM80211ApSecurityFlags).
const (
	APFlagPrivacy uint32 = 0x1

	APSecKeyMgmtPSK   uint32 = 0x100
	APSecKeyMgmt8021X uint32 = 0x200
	APSecKeyMgmtSAE   uint32 = 0x400
	APSecKeyMgmtOWE   uint32 = 0x800
)

// RawAccessPoint is the unmodified property bundle read for one access
// point. Keys absent from the daemon's bundle are left at their zero
// value; all defaulting beyond that happens in Normalize.
type RawAccessPoint struct {
	SSID      []byte `json:"ssid"`
	BSSID     string `json:"bssid"`
	Strength  uint8  `json:"strength"`
	Frequency uint32 `json:"frequency"`
	Flags     uint32 `json:"flags"`
	WPAFlags  uint32 `json:"wpa_flags"`
	RSNFlags  uint32 `json:"rsn_flags"`
	Mode      uint32 `json:"mode"`
}

// Security is the canonical classification of an access point's
// security scheme, derived from flag bitfields only.
type Security string

const (
	SecurityUnknown Security = "Unknown"
	SecurityOpen    Security = "Open"
	SecurityWEP     Security = "WEP"
	SecurityWPA     Security = "WPA"
	SecurityWPA2    Security = "WPA2"
	SecurityWPA3    Security = "WPA3"
)

// NetworkRecord is the canonical form of one visible network. Records
// are created fresh on every pipeline run and never mutated afterwards.
type NetworkRecord struct {
	SSID          string   `json:"ssid"` // empty means hidden
	BSSID         string   `json:"bssid"`
	SignalPercent int      `json:"signal_percent"`
	FrequencyMHz  int      `json:"frequency_mhz"`
	Security      Security `json:"security"`
	IdentityKey   string   `json:"identity_key"`
	Active        bool     `json:"active"`
}

// Hidden reports whether the network suppresses its SSID broadcast.
func (r NetworkRecord) Hidden() bool {
	return r.SSID == ""
}

// Band returns a display label for the frequency band.
func (r NetworkRecord) Band() string {
	switch {
	case r.FrequencyMHz >= 5925:
		return "6 GHz"
	case r.FrequencyMHz >= 4900:
		return "5 GHz"
	case r.FrequencyMHz > 0:
		return "2.4 GHz"
	default:
		return ""
	}
}

// DisplayName returns the SSID, or a placeholder for hidden networks.
func (r NetworkRecord) DisplayName() string {
	if r.Hidden() {
		return "(hidden network)"
	}
	return r.SSID
}

// ScanResult is the ordered output of one pipeline run. It is immutable
// once returned; the next run's result replaces it wholesale.
type ScanResult struct {
	Networks    []NetworkRecord `json:"networks"`
	Device      string          `json:"device"`
	CompletedAt time.Time       `json:"completed_at"`
	// Stale is set when scan completion was not observed within the
	// timeout and the list reflects the daemon's previous scan.
	Stale bool `json:"stale"`
	// Skipped counts access points whose properties could not be read.
	Skipped int `json:"skipped"`
}

// Summary returns the status line for this result.
func (r ScanResult) Summary() string {
	if len(r.Networks) == 0 {
		return "No networks found"
	}
	return fmt.Sprintf("Found %d networks", len(r.Networks))
}
