package pointillist

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when an input or output file cannot be opened or created.
	ErrIO = errors.New("i/o error")

	// ErrDecode is returned when the input container or its frame data is malformed.
	ErrDecode = errors.New("decode error")

	// ErrEncode is returned when the output writer rejects dimensions, palette or frame data.
	ErrEncode = errors.New("encode error")

	// ErrNoFrames is returned when an empty frame sequence reaches the encoder.
	ErrNoFrames = errors.New("at least one frame is required")

	// ErrInvalidConfig is returned when a Config holds an out of range value.
	ErrInvalidConfig = errors.New("invalid config")
)

// kindError tags an underlying error with one of the sentinel kinds above so
// that errors.Is matches both the kind and the cause.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return fmt.Sprintf("%v: %v", e.kind, e.err)
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

func wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

func wrapf(kind error, format string, args ...interface{}) error {
	return &kindError{kind: kind, err: fmt.Errorf(format, args...)}
}
