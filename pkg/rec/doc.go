// Package rec works on loosely typed records, the map[string]any values
// produced by JSON and YAML decoders: picking a subset of keys, joining
// fields from a source list and indexing a list by key.
//
// Only keys stored on a record count as present. A key mapped to nil is
// present; a key that was never set is not.
package rec
