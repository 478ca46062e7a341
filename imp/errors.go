package imp

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an image or histogram has no pixels.
	ErrEmptyInput = errors.New("empty input")

	// ErrBoundsMismatch is returned when src and dst images differ in size.
	ErrBoundsMismatch = errors.New("src and dst should have the same bounds")

	// ErrUnknownBackground is returned by ParseBackground.
	ErrUnknownBackground = errors.New("unknown background (want \"bright\" or \"dark\")")
)

// DegenerateWindowError reports a pixel whose local window holds no sample.
type DegenerateWindowError struct {
	X, Y int
	Size int
}

func (e *DegenerateWindowError) Error() string {
	return fmt.Sprintf("empty %dx%d window at (%d, %d)", e.Size, e.Size, e.X, e.Y)
}

// DecodeError wraps a failure to read or decode an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("couldn't decode image: %v", e.Err)
	}
	return fmt.Sprintf("couldn't decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure to encode or write an image.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("couldn't save %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
