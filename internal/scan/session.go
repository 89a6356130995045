package scan

import (
	"context"
	"errors"
	"sync"

	"github.com/user/smolwifi/internal/model"
)

// Listener receives the outcome of each pipeline run. The presentation
// layer implements it; the pipeline only ever hands over a complete
// result or an error, never partial records.
type Listener interface {
	ScanResult(res model.ScanResult)
	ScanError(err error)
}

// Session serializes pipeline runs for one presentation surface.
// Refresh requests arriving while a run is in flight are ignored; the
// surface re-enables its refresh control when the listener fires.
// Close cancels an in-flight run and guarantees the listener is not
// called afterwards, so tearing down a window mid-scan is safe.
type Session struct {
	pipe     *Pipeline
	listener Listener

	mu     sync.Mutex
	active bool
	closed bool
	cancel context.CancelFunc
}

// NewSession wires a pipeline to a listener.
func NewSession(pipe *Pipeline, listener Listener) *Session {
	return &Session{pipe: pipe, listener: listener}
}

// Refresh starts a pipeline run unless one is already active or the
// session is closed. Returns whether a run was started.
func (s *Session) Refresh() bool {
	s.mu.Lock()
	if s.active || s.closed {
		s.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.active = true
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx)
	return true
}

// Active reports whether a run is in flight.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Close cancels any in-flight run and detaches the listener.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Session) run(ctx context.Context) {
	res, err := s.pipe.Run(ctx)

	s.mu.Lock()
	s.active = false
	s.cancel = nil
	closed := s.closed
	s.mu.Unlock()

	// A closed session's surface is gone; a cancelled run has no
	// result worth delivering either way.
	if closed || errors.Is(err, context.Canceled) {
		return
	}

	if err != nil {
		s.listener.ScanError(err)
		return
	}
	s.listener.ScanResult(res)
}
