package scan

import (
	"errors"
	"fmt"
)

// ErrNoWifiDevice is returned when device enumeration finds no usable
// wireless device. Distinct from transport failures: the daemon
// answered, it just has nothing to scan with.
var ErrNoWifiDevice = errors.New("no WiFi device found")

// ErrScanThrottled marks a scan request refused because the daemon's
// minimum scan interval has not elapsed. Not an error condition for the
// pipeline; the current results are fresh enough.
var ErrScanThrottled = errors.New("scan request throttled")

// TransportError wraps a control-plane call failure (daemon
// unreachable, call failed). It aborts the current pipeline run.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("control plane: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transport wraps err as a TransportError for operation op.
func Transport(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
