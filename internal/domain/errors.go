package domain

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable marks a recoverable "no data" outcome: no benchmark
// price inside the lookback window even after a backfill attempt. Callers
// usually render it as an empty result, not a 500.
var ErrDataUnavailable = errors.New("requested data is unavailable")

// UpstreamProviderError wraps a market-data provider failure (timeout, rate
// limit, outage). Retryable by re-triggering the idempotent operation.
type UpstreamProviderError struct {
	Provider string
	Symbol   string
	Err      error
}

func (e UpstreamProviderError) Error() string {
	return fmt.Sprintf("provider %s failed for %s: %v", e.Provider, e.Symbol, e.Err)
}

func (e UpstreamProviderError) Unwrap() error {
	return e.Err
}

// InconsistentStateError marks a state that should never occur, like a
// negative position during replay. It is surfaced loudly and never silently
// corrected.
type InconsistentStateError struct {
	Message string
}

func NewInconsistentStateError(message string) InconsistentStateError {
	return InconsistentStateError{Message: message}
}

func (e InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent state: %s", e.Message)
}
