package convert

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError reports a failure to open, create, write or commit a file.
type IOError struct {
	Op   string // e.g. "opening input"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	err := e.Err
	// The path is already in the message.
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports an input row that could not be decoded. Row is the
// 1-based input line on which the record starts.
type DecodeError struct {
	Path string
	Row  int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
