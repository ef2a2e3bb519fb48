package geodprofile

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per ErrorKind. Use errors.Is to classify an error
// returned by the sampler.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrNumericDegeneracy  = errors.New("numeric degeneracy")
	ErrBufferSizeMismatch = errors.New("buffer size mismatch")
)

// ErrorKind classifies sampler failures.
type ErrorKind int

const (
	// InvalidRequest is a request that breaks the sampler contract.
	InvalidRequest ErrorKind = iota
	// NumericDegeneracy is a request that cannot be resolved without
	// dividing by a zero distance.
	NumericDegeneracy
	// BufferSizeMismatch is a caller buffer whose length differs from the
	// resolved point count.
	BufferSizeMismatch
)

func (k ErrorKind) sentinel() error {
	switch k {
	case NumericDegeneracy:
		return ErrNumericDegeneracy
	case BufferSizeMismatch:
		return ErrBufferSizeMismatch
	default:
		return ErrInvalidRequest
	}
}

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

// Error is returned by the sampler operations.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("geodprofile: %s: %s", e.Kind, e.Message)
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
