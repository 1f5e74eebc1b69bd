package heart

import (
	"errors"
	"fmt"
)

// MaxPoints bounds the size of a cloud so a bad configuration fails fast
// instead of exhausting memory.
const MaxPoints = 200000

// Domain errors for sampling.
var (
	// ErrInvalidCount indicates a point count outside [1, MaxPoints].
	ErrInvalidCount = errors.New("heart: point count out of range")

	// ErrInvalidScale indicates a non-positive or non-finite scale factor.
	ErrInvalidScale = errors.New("heart: scale must be positive and finite")

	// ErrInvalidExtent indicates a non-positive sampling cube.
	ErrInvalidExtent = errors.New("heart: sampling half-extent must be positive")

	// ErrAttemptsExhausted indicates the rejection loop hit its attempt cap.
	ErrAttemptsExhausted = errors.New("heart: rejection sampling exceeded attempt cap")
)

// SampleError wraps an error with sampling progress.
type SampleError struct {
	Accepted int
	Attempts int
	Wrapped  error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("%v (accepted %d after %d attempts)", e.Wrapped, e.Accepted, e.Attempts)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
