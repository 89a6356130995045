package scan

import (
	"sort"
	"strings"

	"github.com/user/smolwifi/internal/model"
)

// Rank deduplicates records by identity key and orders them for
// display. On a key collision the stronger signal wins, the active flag
// carries over to the survivor so the connected network stays marked,
// and on equal signal the active record is preferred. Ordering is
// signal strength descending, ties broken by SSID ascending
// case-insensitively, so identical inputs always render in the same
// order.
func Rank(records []model.NetworkRecord) []model.NetworkRecord {
	best := make(map[string]model.NetworkRecord, len(records))
	for _, rec := range records {
		cur, seen := best[rec.IdentityKey]
		if !seen {
			best[rec.IdentityKey] = rec
			continue
		}
		keep := cur
		if rec.SignalPercent > cur.SignalPercent ||
			(rec.SignalPercent == cur.SignalPercent && rec.Active && !cur.Active) {
			keep = rec
		}
		keep.Active = keep.Active || rec.Active || cur.Active
		best[rec.IdentityKey] = keep
	}

	ranked := make([]model.NetworkRecord, 0, len(best))
	for _, rec := range best {
		ranked = append(ranked, rec)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.SignalPercent != b.SignalPercent {
			return a.SignalPercent > b.SignalPercent
		}
		an, bn := strings.ToLower(a.SSID), strings.ToLower(b.SSID)
		if an != bn {
			return an < bn
		}
		// Last resort so map iteration order never leaks through.
		return a.IdentityKey < b.IdentityKey
	})

	return ranked
}
