package composer

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBlockPayload marks a stored payload that does not decode
	// per its kind's schema.
	ErrMalformedBlockPayload = errors.New("malformed block payload")

	// ErrFetchFailed marks a failed draft load. The session treats it as
	// non-blocking and falls back to an empty draft.
	ErrFetchFailed = errors.New("article fetch failed")

	// ErrSaveFailed marks a failed save/publish submission. The draft state
	// is left intact so the submission can be retried.
	ErrSaveFailed = errors.New("article save failed")
)

// MalformedPayloadError reports which block failed to decode and why.
// It matches ErrMalformedBlockPayload under errors.Is.
type MalformedPayloadError struct {
	BlockID string
	Kind    Kind
	Cause   error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("block %s (%s): %v: %v", e.BlockID, e.Kind, ErrMalformedBlockPayload, e.Cause)
}

func (e *MalformedPayloadError) Unwrap() error { return ErrMalformedBlockPayload }
