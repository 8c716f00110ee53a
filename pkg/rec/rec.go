package rec

import "reflect"

// Record is a decoded object.
type Record = map[string]any

// Lookup reports the value stored under key on r itself.
func Lookup(r Record, key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	return v, ok
}

// Extract returns, for every record in list, a record holding only the
// requested keys that record has. A nil record maps to nil.
func Extract(keys []string, list []Record) []Record {
	out := make([]Record, len(list))
	for i, r := range list {
		if r == nil {
			continue
		}
		picked := make(Record, len(keys))
		for _, key := range keys {
			if v, ok := r[key]; ok {
				picked[key] = v
			}
		}
		out[i] = picked
	}
	return out
}

// IndexBy maps each value found under key to the first record holding it.
// Records without the key, or whose value cannot be a map key, are skipped.
// It returns nil when key is empty or list has no records.
func IndexBy(key string, list []Record) map[any]Record {
	if key == "" || len(list) == 0 {
		return nil
	}
	index := make(map[any]Record, len(list))
	for _, r := range list {
		v, ok := Lookup(r, key)
		if !ok || !hashable(v) {
			continue
		}
		if _, seen := index[v]; !seen {
			index[v] = r
		}
	}
	return index
}

func hashable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// equal compares two decoded values with ==, treating values of
// uncomparable types as never equal.
func equal(a, b any) bool {
	if !hashable(a) || !hashable(b) {
		return false
	}
	return a == b
}
