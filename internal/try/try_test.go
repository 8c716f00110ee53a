package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	t.Run("will update the error ref value", func(t *testing.T) {
		t.Run("if a panic is recovered and the ref is nil", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				panic("hello world")
			}

			err := f()

			var perr PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "hello world", perr.Value) {
				return
			}
			assert.Nil(t, perr.Unwrap())
		})

		t.Run("if a panic is recovered and the ref is already set", func(t *testing.T) {
			funcErr := errors.New("error value")
			panicErr := errors.New("panic error")
			f := func() (err error) {
				defer Recover(&err)
				err = funcErr
				panic(panicErr)
			}

			err := f()

			if !assert.ErrorIs(t, err, funcErr) {
				return
			}
			assert.ErrorIs(t, err, panicErr)
		})
	})

	t.Run("will not update the error ref value", func(t *testing.T) {
		t.Run("if no panic occurred", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				return nil
			}

			assert.Nil(t, f())
		})
	})
}

func TestCall(t *testing.T) {
	t.Run("returns the function outputs when it does not panic", func(t *testing.T) {
		v, err := Call(func() (int, error) { return 4, nil })
		assert.NoError(t, err)
		assert.Equal(t, 4, v)
	})

	t.Run("returns a PanicError when the function panics", func(t *testing.T) {
		_, err := Call(func() (int, error) { panic(42) })

		var perr PanicError
		if !assert.ErrorAs(t, err, &perr) {
			return
		}
		assert.Equal(t, 42, perr.Value)
	})
}
