// Package match dispatches on an ordered list of guarded cases, returning
// the outcome of the first case whose condition holds.
package match

import "errors"

// ErrUnmatched is returned when no case holds.
var ErrUnmatched = errors.New("match: no case matched, consider adding an Otherwise case")

type conditionKind uint8

const (
	literal conditionKind = iota
	predicate
)

// Condition is either a predicate over the argument or a literal flag.
type Condition[A any] struct {
	kind conditionKind
	lit  bool
	pred func(A) bool
}

// When holds when pred(arg) is true. A nil pred never holds.
func When[A any](pred func(A) bool) Condition[A] {
	return Condition[A]{kind: predicate, pred: pred}
}

// Literal holds when b is true.
func Literal[A any](b bool) Condition[A] {
	return Condition[A]{kind: literal, lit: b}
}

// Otherwise always holds. Use it as the last case.
func Otherwise[A any]() Condition[A] {
	return Literal[A](true)
}

func (c Condition[A]) holds(arg A) bool {
	switch c.kind {
	case predicate:
		return c.pred != nil && c.pred(arg)
	default:
		return c.lit
	}
}

// Outcome is either a fixed value or computed from the argument.
type Outcome[A, R any] struct {
	computed bool
	value    R
	fn       func(A) R
}

func Value[A, R any](v R) Outcome[A, R] {
	return Outcome[A, R]{value: v}
}

func Computed[A, R any](fn func(A) R) Outcome[A, R] {
	return Outcome[A, R]{computed: true, fn: fn}
}

func (o Outcome[A, R]) resolve(arg A) R {
	if o.computed && o.fn != nil {
		return o.fn(arg)
	}
	return o.value
}

// Case pairs a Condition with its Outcome.
type Case[A, R any] struct {
	Cond Condition[A]
	Out  Outcome[A, R]
}

func On[A, R any](cond Condition[A], out Outcome[A, R]) Case[A, R] {
	return Case[A, R]{Cond: cond, Out: out}
}

// Switch is an ordered set of cases.
type Switch[A, R any] struct {
	cases []Case[A, R]
}

func New[A, R any](cases ...Case[A, R]) *Switch[A, R] {
	return &Switch[A, R]{cases: append([]Case[A, R](nil), cases...)}
}

// Apply returns the outcome of the first case that holds for arg.
func (s *Switch[A, R]) Apply(arg A) (R, error) {
	for _, c := range s.cases {
		if c.Cond.holds(arg) {
			return c.Out.resolve(arg), nil
		}
	}
	var zero R
	return zero, ErrUnmatched
}

// MustApply is Apply that panics with ErrUnmatched.
func (s *Switch[A, R]) MustApply(arg A) R {
	r, err := s.Apply(arg)
	if err != nil {
		panic(err)
	}
	return r
}
