package rec

import "maps"

// Match says which keys join an input record to a source record.
type Match struct {
	SourceKey string
	InputKey  string
}

// On matches records that hold the same value under key.
func On(key string) *Match {
	return &Match{SourceKey: key, InputKey: key}
}

// OnKeys matches source[sourceKey] against input[inputKey].
func OnKeys(sourceKey, inputKey string) *Match {
	return &Match{SourceKey: sourceKey, InputKey: inputKey}
}

// EnrichConfig configures an Enricher.
type EnrichConfig struct {
	Match   *Match
	Extract []string
	Source  []Record
}

// Enricher copies fields from the first matching source record onto inputs.
type Enricher struct {
	cfg EnrichConfig
}

func Enrich(cfg EnrichConfig) *Enricher {
	return &Enricher{cfg: cfg}
}

func (e *Enricher) configured() bool {
	m := e.cfg.Match
	return m != nil && m.SourceKey != "" && m.InputKey != "" &&
		len(e.cfg.Extract) > 0 && len(e.cfg.Source) > 0
}

// Find returns the first source record whose match key equals input's.
func (e *Enricher) Find(input Record) (Record, bool) {
	if !e.configured() {
		return nil, false
	}
	want, ok := Lookup(input, e.cfg.Match.InputKey)
	if !ok {
		return nil, false
	}
	for _, s := range e.cfg.Source {
		if got, ok := Lookup(s, e.cfg.Match.SourceKey); ok && equal(got, want) {
			return s, true
		}
	}
	return nil, false
}

// Apply returns a copy of input with the requested fields of the matching
// source record set on top. Fields the match lacks are left unset. When the
// enricher is not fully configured or nothing matches, input itself is
// returned.
func (e *Enricher) Apply(input Record) Record {
	match, ok := e.Find(input)
	if !ok {
		return input
	}
	out := maps.Clone(input)
	for _, key := range e.cfg.Extract {
		if v, ok := match[key]; ok {
			out[key] = v
		}
	}
	return out
}

// ApplyAll runs Apply over list.
func (e *Enricher) ApplyAll(list []Record) []Record {
	out := make([]Record, len(list))
	for i, r := range list {
		out[i] = e.Apply(r)
	}
	return out
}
