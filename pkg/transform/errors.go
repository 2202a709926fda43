package transform

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("I/O error")
	ErrOverwrite    = errors.New("refusing to overwrite source file")
)

// DecodeError is returned when the source of a pixel screen can't be decoded as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image '%s': %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when a screened image can't be encoded to its output path.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode image '%s': %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
