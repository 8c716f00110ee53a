package rop

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNilFailure is stored when a failure is built from a nil error.
	ErrNilFailure = errors.New("rop: failure with nil error")
	// ErrNilFunc is the failure produced when a nil callable is invoked.
	ErrNilFunc = errors.New("rop: nil function")
)

// Result holds either a success value or a failure cause, never both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure. A nil err is replaced by ErrNilFailure.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple converts a (value, error) pair.
func FromTuple[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom moves a failure to another value type, keeping its cause and identity.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and the failure cause in Go's usual order.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsEmpty reports the zero Result, which is neither a success nor a failure.
func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// MarshalJSON encodes a success as {"data": v} and a failure as {"err": "message"}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	return marshalOutcome(r, "err")
}

// Settled is the outcome of one operation run by a concurrent runner.
// It encodes failures under "error" rather than "err".
type Settled[T any] struct {
	Result[T]
	duration time.Duration
}

func Settle[T any](r Result[T], d time.Duration) Settled[T] {
	return Settled[T]{Result: r, duration: d}
}

// Duration is how long the operation ran before settling.
func (s Settled[T]) Duration() time.Duration {
	return s.duration
}

func (s Settled[T]) MarshalJSON() ([]byte, error) {
	return marshalOutcome(s.Result, "error")
}

func marshalOutcome[T any](r Result[T], errKey string) ([]byte, error) {
	switch {
	case r.isSuccess:
		return json.Marshal(map[string]any{"data": r.result})
	case r.err != nil:
		return json.Marshal(map[string]string{errKey: r.err.Error()})
	default:
		return []byte("{}"), nil
	}
}
