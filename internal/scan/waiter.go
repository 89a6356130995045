package scan

import (
	"context"
	"time"

	"github.com/user/smolwifi/internal/util"
)

// WaitState is the explicit state of one completion wait.
type WaitState int

const (
	WaitIdle WaitState = iota
	WaitWaiting
	WaitCompleted
	WaitTimedOut
	WaitCancelled
)

func (s WaitState) String() string {
	switch s {
	case WaitIdle:
		return "idle"
	case WaitWaiting:
		return "waiting"
	case WaitCompleted:
		return "completed"
	case WaitTimedOut:
		return "timed out"
	case WaitCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// LastScanner is the one device capability the waiter needs.
type LastScanner interface {
	LastScan(ctx context.Context) (int64, error)
}

// Waiter observes a device's last-scan stamp until it advances past a
// baseline taken before the trigger, or until the bound elapses. The
// baseline comparison also covers the case where the daemon was already
// mid-scan when we triggered: its completion advances the stamp all the
// same. Timeouts are not failures; the caller proceeds with whatever
// the daemon currently has.
type Waiter struct {
	Timeout time.Duration
	Poll    time.Duration

	state WaitState
}

// NewWaiter returns a waiter with the given completion bound and poll
// interval.
func NewWaiter(timeout, poll time.Duration) *Waiter {
	return &Waiter{Timeout: timeout, Poll: poll, state: WaitIdle}
}

// State returns the waiter's current state.
func (w *Waiter) State() WaitState { return w.state }

// Await blocks the calling goroutine (never the UI: the pipeline runs
// off the presentation loop) until the device's last-scan stamp passes
// baseline, the timeout fires, or ctx is cancelled. Cancellation stops
// the poll ticker immediately so a torn-down caller is never called
// back.
func (w *Waiter) Await(ctx context.Context, dev LastScanner, baseline int64) WaitState {
	w.state = WaitWaiting

	// The stamp may already have advanced between trigger and wait.
	if w.advanced(ctx, dev, baseline) {
		w.state = WaitCompleted
		return w.state
	}

	deadline := time.NewTimer(w.Timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(w.Poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.state = WaitCancelled
			return w.state
		case <-deadline.C:
			w.state = WaitTimedOut
			return w.state
		case <-ticker.C:
			if w.advanced(ctx, dev, baseline) {
				w.state = WaitCompleted
				return w.state
			}
		}
	}
}

func (w *Waiter) advanced(ctx context.Context, dev LastScanner, baseline int64) bool {
	stamp, err := dev.LastScan(ctx)
	if err != nil {
		// Transient property-read failures just mean one missed
		// poll; the timeout bounds a persistent one.
		util.Debug("last-scan read failed: %v", err)
		return false
	}
	return stamp > baseline
}
