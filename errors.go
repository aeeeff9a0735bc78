package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is wrapped by every size violation on keys, IVs and
	// inputs.
	ErrPrecondition = errors.New("precondition violated")

	// ErrInvalidPadding is returned when PKCS#7 padding cannot be stripped.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidSequence is returned when a bit sequence holds anything other
	// than '0' and '1'.
	ErrInvalidSequence = errors.New("invalid bit sequence")

	// ErrUnknownAlgorithm is returned when parsing an unsupported name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// SizeError reports a key, IV or input of the wrong length.
type SizeError struct {
	Op    string // algorithm, e.g. "des"
	Field string // "key", "iv" or "input"
	Got   int
	Want  int
	// Min is non-zero when any length in [Min, Want] is accepted.
	Min int
	// Multiple means Got must be a multiple of Want rather than equal to it.
	Multiple bool
}

func (e *SizeError) Error() string {
	if e.Multiple {
		return fmt.Sprintf("%s: %s length %d is not a multiple of %d", e.Op, e.Field, e.Got, e.Want)
	}
	if e.Min > 0 {
		return fmt.Sprintf("%s: invalid %s length %d, want %d..%d", e.Op, e.Field, e.Got, e.Min, e.Want)
	}
	return fmt.Sprintf("%s: invalid %s length %d, want %d", e.Op, e.Field, e.Got, e.Want)
}

func (e *SizeError) Unwrap() error { return ErrPrecondition }

func checkSize(op, field string, got, want int) error {
	if got != want {
		return &SizeError{Op: op, Field: field, Got: got, Want: want}
	}
	return nil
}

func checkMultiple(op, field string, got, want int) error {
	if got%want != 0 {
		return &SizeError{Op: op, Field: field, Got: got, Want: want, Multiple: true}
	}
	return nil
}
