// Package try turns panics raised inside a protected scope into errors.
package try

import (
	"errors"
	"fmt"
)

// PanicError carries the raw value a protected call panicked with.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

func (e PanicError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Recover must be deferred directly. It records a recovered panic in *err,
// joining it with any error already set.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// Call runs f and reports a panic as a PanicError.
func Call[T any](f func() (T, error)) (v T, err error) {
	defer Recover(&err)
	return f()
}
