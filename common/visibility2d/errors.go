package visibility2d

import (
	"errors"
	"fmt"
)

// GeometryError signals a breach of the region precondition (two boundary
// segments genuinely crossing) or a corrupted sweep invariant (an expected
// sweep-ray intersection missing). The computation aborts; retrying would
// fail identically.
type GeometryError struct {
	msg string
}

func NewGeometryError(format string, args ...interface{}) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

func (e *GeometryError) Error() string {
	return "geometry consistency: " + e.msg
}

func IsGeometryError(err error) bool {
	var gerr *GeometryError
	return errors.As(err, &gerr)
}

// BusyError signals a re-entrant invocation on a computation that is not
// idle anymore.
type BusyError struct {
	msg string
}

func NewBusyError(format string, args ...interface{}) *BusyError {
	return &BusyError{msg: fmt.Sprintf(format, args...)}
}

func (e *BusyError) Error() string {
	return "usage: " + e.msg
}

func IsBusyError(err error) bool {
	var berr *BusyError
	return errors.As(err, &berr)
}

// InputError signals malformed input, rejected before any sweep state is
// built.
type InputError struct {
	msg string
}

func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	return "malformed input: " + e.msg
}

func IsInputError(err error) bool {
	var ierr *InputError
	return errors.As(err, &ierr)
}
