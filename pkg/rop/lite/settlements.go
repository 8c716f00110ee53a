package lite

import (
	"bytes"
	"encoding/json"
	"maps"

	"github.com/ib-77/ropfn/pkg/rop"
)

// Settlements holds one Settled per operation name, in declaration order.
type Settlements[T any] struct {
	names  []string
	byName map[string]rop.Settled[T]
}

func newSettlements[T any](n int) *Settlements[T] {
	return &Settlements[T]{
		names:  make([]string, 0, n),
		byName: make(map[string]rop.Settled[T], n),
	}
}

func (s *Settlements[T]) put(name string, res rop.Settled[T]) {
	if _, ok := s.byName[name]; !ok {
		s.names = append(s.names, name)
	}
	s.byName[name] = res
}

func (s *Settlements[T]) Len() int {
	return len(s.names)
}

// Names returns the operation names in declaration order.
func (s *Settlements[T]) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Settlements[T]) Get(name string) (rop.Settled[T], bool) {
	res, ok := s.byName[name]
	return res, ok
}

// Each calls fn for every outcome in declaration order until fn returns false.
func (s *Settlements[T]) Each(fn func(name string, res rop.Settled[T]) bool) {
	for _, name := range s.names {
		if !fn(name, s.byName[name]) {
			return
		}
	}
}

// Failed returns the names of failed operations in declaration order.
func (s *Settlements[T]) Failed() []string {
	var failed []string
	for _, name := range s.names {
		if s.byName[name].IsFailure() {
			failed = append(failed, name)
		}
	}
	return failed
}

// Map returns a copy of the outcomes keyed by name.
func (s *Settlements[T]) Map() map[string]rop.Settled[T] {
	return maps.Clone(s.byName)
}

// MarshalJSON encodes an object whose keys follow declaration order.
func (s *Settlements[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
