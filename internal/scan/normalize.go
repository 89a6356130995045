package scan

import (
	"unicode/utf8"

	"github.com/user/smolwifi/internal/model"
)

const zeroBSSID = "00:00:00:00:00:00"

// Normalize maps one raw property bundle into a canonical NetworkRecord.
// It is pure and total: any input produces a record, never an error.
func Normalize(raw model.RawAccessPoint) model.NetworkRecord {
	rec := model.NetworkRecord{
		SSID:          decodeSSID(raw.SSID),
		BSSID:         raw.BSSID,
		SignalPercent: clampSignal(raw.Strength),
		FrequencyMHz:  int(raw.Frequency),
		Security:      classifySecurity(raw),
	}
	rec.IdentityKey = identityKey(rec.BSSID, rec.SSID)
	return rec
}

// decodeSSID decodes raw SSID bytes as text. Undecodable bytes yield
// the empty string, which displays as a hidden network.
func decodeSSID(b []byte) string {
	if len(b) == 0 || !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// clampSignal bounds the daemon's strength value to [0, 100].
func clampSignal(s uint8) int {
	if s > 100 {
		return 100
	}
	return int(s)
}

// classifySecurity derives the security class from the flag bitfields.
// Strongest scheme first: flag sets are not mutually exclusive on all
// daemon versions, so a WPA3 network advertising RSN must not come back
// as WPA2.
func classifySecurity(raw model.RawAccessPoint) model.Security {
	switch {
	case raw.RSNFlags&model.APSecKeyMgmtSAE != 0:
		return model.SecurityWPA3
	case raw.RSNFlags != 0:
		return model.SecurityWPA2
	case raw.WPAFlags != 0:
		return model.SecurityWPA
	case raw.Flags&model.APFlagPrivacy != 0:
		return model.SecurityWEP
	default:
		return model.SecurityOpen
	}
}

// identityKey is the deduplication key: BSSID when the daemon reports a
// real one, else the SSID. Hidden or mesh networks can share an SSID
// across several physical access points, which is why BSSID wins.
func identityKey(bssid, ssid string) string {
	if bssid != "" && bssid != zeroBSSID {
		return bssid
	}
	return "ssid:" + ssid
}
