package scan

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeScanner serves a scripted sequence of last-scan stamps.
type fakeScanner struct {
	mu     sync.Mutex
	stamps []int64
	err    error
}

func (f *fakeScanner) LastScan(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	stamp := f.stamps[0]
	if len(f.stamps) > 1 {
		f.stamps = f.stamps[1:]
	}
	return stamp, nil
}

func TestWaiterCompletesWhenStampAdvances(t *testing.T) {
	dev := &fakeScanner{stamps: []int64{100, 100, 180}}
	w := NewWaiter(time.Second, time.Millisecond)

	state := w.Await(context.Background(), dev, 100)

	assert.Equal(t, WaitCompleted, state)
	assert.Equal(t, WaitCompleted, w.State())
}

func TestWaiterCompletesImmediatelyWhenAlreadyAdvanced(t *testing.T) {
	// The daemon was mid-scan when we triggered and finished before
	// the wait began.
	dev := &fakeScanner{stamps: []int64{250}}
	w := NewWaiter(time.Second, time.Hour) // a poll tick would never fire

	state := w.Await(context.Background(), dev, 100)

	assert.Equal(t, WaitCompleted, state)
}

func TestWaiterTimesOutWhenStampNeverAdvances(t *testing.T) {
	dev := &fakeScanner{stamps: []int64{100}}
	w := NewWaiter(30*time.Millisecond, 5*time.Millisecond)

	start := time.Now()
	state := w.Await(context.Background(), dev, 100)

	assert.Equal(t, WaitTimedOut, state)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWaiterCancellation(t *testing.T) {
	dev := &fakeScanner{stamps: []int64{100}}
	w := NewWaiter(time.Minute, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(15 * time.Millisecond)
		cancel()
	}()

	state := w.Await(ctx, dev, 100)

	assert.Equal(t, WaitCancelled, state)
}

func TestWaiterToleratesReadErrors(t *testing.T) {
	// Property reads failing mid-wait cost a poll, not the run.
	dev := &fakeScanner{err: errors.New("device busy")}
	w := NewWaiter(25*time.Millisecond, 5*time.Millisecond)

	state := w.Await(context.Background(), dev, 100)

	assert.Equal(t, WaitTimedOut, state)
}

func TestWaiterStateProgression(t *testing.T) {
	w := NewWaiter(time.Second, time.Millisecond)
	assert.Equal(t, WaitIdle, w.State())

	w.Await(context.Background(), &fakeScanner{stamps: []int64{5}}, 1)
	assert.Equal(t, WaitCompleted, w.State())
}
