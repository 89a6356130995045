package scan

import (
	"context"
	"errors"
	"time"

	"github.com/user/smolwifi/internal/model"
	"github.com/user/smolwifi/internal/util"
)

// RequestScan issues one scan request against the device and classifies
// the outcome. A throttled request means the daemon's previous scan is
// still fresh; the caller skips the completion wait and reads current
// access points directly. Any other failure is also non-fatal: it is
// recorded and the run proceeds with whatever the daemon has, so a
// trigger hiccup never loops or blocks a refresh.
func RequestScan(ctx context.Context, dev Device) model.ScanRequest {
	req := model.ScanRequest{IssuedAt: time.Now()}

	err := dev.RequestScan(ctx)
	switch {
	case err == nil:
		req.Outcome = model.ScanAccepted
	case errors.Is(err, ErrScanThrottled):
		req.Outcome = model.ScanThrottled
		util.Debug("scan on %s throttled, using current results", dev.Name())
	default:
		req.Outcome = model.ScanFailed
		req.Err = err
		util.Warn("scan trigger on %s failed: %v", dev.Name(), err)
	}

	return req
}
