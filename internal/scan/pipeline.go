package scan

import (
	"context"
	"errors"
	"time"

	"github.com/user/smolwifi/internal/model"
	"github.com/user/smolwifi/internal/util"
)

// Pipeline runs one full scan: locate device, trigger, wait, read,
// normalize, rank. It holds no state between runs; every run produces a
// fresh ScanResult that supersedes the previous one.
type Pipeline struct {
	cp      ControlPlane
	iface   string
	timeout time.Duration
	poll    time.Duration
}

// NewPipeline builds a pipeline over the given control plane.
func NewPipeline(cp ControlPlane, cfg *util.Config) *Pipeline {
	return &Pipeline{
		cp:      cp,
		iface:   cfg.Interface,
		timeout: cfg.ScanTimeout,
		poll:    cfg.PollInterval,
	}
}

// Run executes the pipeline once. Only ErrNoWifiDevice, transport
// failures and cancellation abort the run; throttled or failed triggers,
// unreadable access points and completion timeouts degrade to a stale or
// partial result instead.
func (p *Pipeline) Run(ctx context.Context) (model.ScanResult, error) {
	dev, err := FindWirelessDevice(ctx, p.cp, p.iface)
	if err != nil {
		return model.ScanResult{}, err
	}

	stale := false

	baseline, err := dev.LastScan(ctx)
	if err != nil {
		// Without a baseline there is nothing to compare a fresh
		// completion against; fall back to whatever is readable.
		util.Warn("last-scan baseline read on %s failed: %v", dev.Name(), err)
		stale = true
	}

	req := RequestScan(ctx, dev)
	switch req.Outcome {
	case model.ScanAccepted:
		if !stale {
			w := NewWaiter(p.timeout, p.poll)
			switch w.Await(ctx, dev, baseline) {
			case WaitCancelled:
				return model.ScanResult{}, ctx.Err()
			case WaitTimedOut:
				util.Warn("scan on %s did not complete within %s, showing last known state",
					dev.Name(), p.timeout)
				stale = true
			}
		}
	case model.ScanThrottled:
		// Previous scan is fresh enough; read it directly.
	case model.ScanFailed:
		stale = true
	}

	activePath, err := dev.ActiveAccessPointPath(ctx)
	if err != nil {
		util.Debug("active access point read on %s failed: %v", dev.Name(), err)
		activePath = ""
	}

	aps, skipped, err := readAccessPoints(ctx, dev)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return model.ScanResult{}, ctx.Err()
		}
		return model.ScanResult{}, err
	}

	records := make([]model.NetworkRecord, 0, len(aps))
	for _, ap := range aps {
		rec := Normalize(ap.raw)
		rec.Active = activePath != "" && ap.path == activePath
		records = append(records, rec)
	}

	return model.ScanResult{
		Networks:    Rank(records),
		Device:      dev.Name(),
		CompletedAt: time.Now(),
		Stale:       stale,
		Skipped:     skipped,
	}, nil
}
