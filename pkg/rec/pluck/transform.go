package pluck

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

// ErrInvalidDefinition is returned for definitions that are neither paths
// nor nested definitions.
var ErrInvalidDefinition = errors.New("pluck: invalid definition")

// field is either a leaf path or a nested transform.
type field struct {
	name   string
	path   Path
	nested *Transform
}

// Transform reshapes records according to a compiled definition.
type Transform struct {
	fields []field
}

// Compile builds a Transform from a definition whose values are path
// strings or nested definitions.
func Compile(def map[string]any) (*Transform, error) {
	names := make([]string, 0, len(def))
	for name := range def {
		names = append(names, name)
	}
	sort.Strings(names)

	t := &Transform{fields: make([]field, 0, len(def))}
	for _, name := range names {
		f, err := compileField(name, def[name])
		if err != nil {
			return nil, err
		}
		t.fields = append(t.fields, f)
	}
	return t, nil
}

func compileField(name string, v any) (field, error) {
	switch tv := v.(type) {
	case string:
		return field{name: name, path: NewPath(tv)}, nil
	case map[string]any:
		nested, err := Compile(tv)
		if err != nil {
			return field{}, fmt.Errorf("%s: %w", name, err)
		}
		return field{name: name, nested: nested}, nil
	case map[any]any:
		converted := make(map[string]any, len(tv))
		for k, kv := range tv {
			ks, ok := k.(string)
			if !ok {
				return field{}, fmt.Errorf("%w: %s has non-string key %v", ErrInvalidDefinition, name, k)
			}
			converted[ks] = kv
		}
		return compileField(name, converted)
	default:
		return field{}, fmt.Errorf("%w: %s is %T, want path string or mapping", ErrInvalidDefinition, name, v)
	}
}

// MustCompile is Compile that panics on an invalid definition.
func MustCompile(def map[string]any) *Transform {
	t, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseYAML compiles a YAML mapping definition.
func ParseYAML(b []byte) (*Transform, error) {
	var def map[string]any
	if err := yaml.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return Compile(def)
}

// Apply reshapes obj.
func (t *Transform) Apply(obj any) map[string]any {
	out := make(map[string]any, len(t.fields))
	for _, f := range t.fields {
		if f.nested != nil {
			out[f.name] = f.nested.Apply(obj)
			continue
		}
		if v, ok := f.path.From(obj); ok {
			out[f.name] = v
		}
	}
	return out
}

// ApplyAll runs Apply over list.
func (t *Transform) ApplyAll(list []any) []map[string]any {
	out := make([]map[string]any, len(list))
	for i, obj := range list {
		out[i] = t.Apply(obj)
	}
	return out
}

// Decode applies t to obj and decodes the result into out, which must be a
// pointer. Struct fields are matched by `pluck` tags, then by name.
func (t *Transform) Decode(obj any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "pluck",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("pluck: decoder: %w", err)
	}
	if err := dec.Decode(t.Apply(obj)); err != nil {
		return fmt.Errorf("pluck: decode: %w", err)
	}
	return nil
}

// Fields returns the top-level output names in sorted order.
func (t *Transform) Fields() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.name
	}
	return names
}
