package rop

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_SuccessXorFailure(t *testing.T) {
	t.Parallel()

	ok := Success(4)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.NoError(t, ok.Err())
	assert.Equal(t, 4, ok.Result())
	assert.NotEqual(t, ok.Id(), Success(4).Id())
	assert.Equal(t, time.UTC, ok.CreatedAt().Location())

	cause := errors.New("oops")
	failed := Fail[int](cause)
	assert.False(t, failed.IsSuccess())
	assert.True(t, failed.IsFailure())
	assert.Same(t, cause, failed.Err())
	assert.Zero(t, failed.Result())

	var empty Result[int]
	assert.True(t, empty.IsEmpty())
	assert.False(t, ok.IsEmpty())
	assert.False(t, failed.IsEmpty())
}

func TestFail_NilError(t *testing.T) {
	t.Parallel()

	res := Fail[string](nil)
	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), ErrNilFailure)
}

func TestFromTupleAndFailFrom(t *testing.T) {
	t.Parallel()

	v, err := FromTuple(3, nil).Get()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	cause := errors.New("bad")
	failed := FromTuple(3, cause)
	assert.Zero(t, failed.Result())

	moved := FailFrom[int, string](failed)
	assert.Same(t, cause, moved.Err())
	assert.Equal(t, failed.Id(), moved.Id())
	assert.Equal(t, failed.CreatedAt(), moved.CreatedAt())
}

func TestResult_JSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   any
		want string
	}{
		{name: "success", in: Success(2), want: `{"data":2}`},
		{name: "failure", in: Fail[int](errors.New("uh oh")), want: `{"err":"uh oh"}`},
		{name: "settled success", in: Settle(Success("x"), time.Second), want: `{"data":"x"}`},
		{name: "settled failure", in: Settle(Fail[int](errors.New("Error!")), 0), want: `{"error":"Error!"}`},
		{name: "empty", in: Result[int]{}, want: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(b))
		})
	}
}

func TestSettled_Duration(t *testing.T) {
	t.Parallel()

	s := Settle(Success(1), 3*time.Millisecond)
	assert.Equal(t, 3*time.Millisecond, s.Duration())
	assert.Equal(t, 1, s.Result())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}
