package pluck

import (
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Path is a compiled dot-delimited path.
type Path struct {
	raw  string
	expr jp.Expr
}

// NewPath splits raw on dots. Every segment is taken literally.
func NewPath(raw string) Path {
	if raw == "" {
		return Path{}
	}
	var x jp.Expr
	for _, seg := range strings.Split(raw, ".") {
		x = append(x, jp.Child(seg))
	}
	return Path{raw: raw, expr: x}
}

func (p Path) String() string {
	return p.raw
}

// From walks obj along p. ok is false when any segment is missing or p is
// empty.
func (p Path) From(obj any) (v any, ok bool) {
	if len(p.expr) == 0 || obj == nil {
		return nil, false
	}
	got := p.expr.Get(obj)
	if len(got) == 0 {
		return nil, false
	}
	return got[0], true
}

// Pluck is NewPath(path).From(obj).
func Pluck(path string, obj any) (any, bool) {
	return NewPath(path).From(obj)
}
