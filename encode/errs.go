package encode

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal error")

	ErrSinkWrite = errors.New("sink write error")
)

// WriteError reports that the destination writer refused output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSinkWrite, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrSinkWrite }
