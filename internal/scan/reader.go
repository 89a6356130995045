package scan

import (
	"context"

	"github.com/user/smolwifi/internal/model"
	"github.com/user/smolwifi/internal/util"
)

// readAP pairs one raw bundle with the handle path it was read from, so
// the pipeline can match the device's active access point.
type readAP struct {
	raw  model.RawAccessPoint
	path string
}

// readAccessPoints reads the property bundle of every currently visible
// access point. An empty result is valid (nothing in range). A failure
// reading one access point is logged and that access point skipped;
// skipped reports how many. Only the initial listing can fail the read
// as a whole.
func readAccessPoints(ctx context.Context, dev Device) (aps []readAP, skipped int, err error) {
	refs, err := dev.AccessPoints(ctx)
	if err != nil {
		return nil, 0, Transport("list access points", err)
	}

	for _, ref := range refs {
		raw, err := ref.Properties(ctx)
		if err != nil {
			// Access points vanish between listing and reading;
			// partial data beats no data.
			util.Warn("skipping access point %s: %v", ref.Path(), err)
			skipped++
			continue
		}
		aps = append(aps, readAP{raw: raw, path: ref.Path()})
	}

	return aps, skipped, nil
}
