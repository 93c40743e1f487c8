package providers

import (
	"errors"
	"fmt"
)

// SourceUnavailableError marks a network failure or non-2xx response from one
// upstream file. Aggregators absorb it as an empty contribution.
type SourceUnavailableError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *SourceUnavailableError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("source %s unavailable (status=%d)", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// MalformedPayloadError marks JSON that parsed but did not have the expected
// shape (not an array, missing nested path). Treated like an unavailable
// source: empty contribution, never fatal to an aggregation.
type MalformedPayloadError struct {
	Source string
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("source %s returned malformed payload: %s", e.Source, e.Reason)
}

// AsSourceUnavailable attempts to unwrap an error into a SourceUnavailableError.
func AsSourceUnavailable(err error) (*SourceUnavailableError, bool) {
	var srcErr *SourceUnavailableError
	if errors.As(err, &srcErr) {
		return srcErr, true
	}
	return nil, false
}

// AsMalformedPayload attempts to unwrap an error into a MalformedPayloadError.
func AsMalformedPayload(err error) (*MalformedPayloadError, bool) {
	var mpErr *MalformedPayloadError
	if errors.As(err, &mpErr) {
		return mpErr, true
	}
	return nil, false
}
