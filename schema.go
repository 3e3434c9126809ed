package wpml

import "errors"

// Rule is a cross-field check. It may update derived fields of r. p tells
// which wire fields appeared in the input; it is nil for records built in Go.
type Rule[R any] func(r *R, p PresenceMap) Issues

// Schema is the field table of record type R together with its defaults and
// cross-field rules. A Schema is immutable after construction and safe for
// concurrent use.
type Schema[R any] struct {
	name     string
	defaults func() R
	fields   []Field[R]
	rules    []Rule[R]
	hydrate  func(r *R, m *OrderedMap) error
}

// NewSchema builds a schema. defaults returns the record used for fields that
// are absent from the input; nil means the zero value.
func NewSchema[R any](name string, defaults func() R, fields ...Field[R]) *Schema[R] {
	if defaults == nil {
		defaults = func() R { var zero R; return zero }
	}
	return &Schema[R]{name: name, defaults: defaults, fields: fields}
}

// Rule appends cross-field rules. Rules run in the order they were added,
// after every per-field check.
func (s *Schema[R]) Rule(rules ...Rule[R]) *Schema[R] {
	s.rules = append(s.rules, rules...)
	return s
}

// Hydrate sets a hook that runs on the defaults before fields are read. It
// rebuilds state that only exists on the wire as computed fields.
func (s *Schema[R]) Hydrate(fn func(r *R, m *OrderedMap) error) *Schema[R] {
	s.hydrate = fn
	return s
}

// Name returns the record name.
func (s *Schema[R]) Name() string { return s.name }

// Default returns a record holding every default value.
func (s *Schema[R]) Default() R { return s.defaults() }

// Fields describes the field table in wire order.
func (s *Schema[R]) Fields() []FieldInfo {
	out := make([]FieldInfo, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Info()
	}
	return out
}

// Encode writes r as an ordered key/value tree, one entry per field in table
// order. Absent optional values are skipped.
func (s *Schema[R]) Encode(r R) *OrderedMap {
	m := NewOrderedMap()
	for _, f := range s.fields {
		v, ok := f.encode(&r)
		if !ok {
			continue
		}
		m.Add(Entry{Key: f.Wire, Value: v, Namespaced: !f.bare})
	}
	return m
}

// Decode reads a record from m. Absent fields keep their defaults and unknown
// keys are ignored. The result then goes through the same validation as Check.
// Field-level problems are collected into Issues; an unknown action kind or
// malformed markup aborts at once.
func (s *Schema[R]) Decode(m *OrderedMap) (R, error) {
	r := s.defaults()
	pm := make(PresenceMap, len(s.fields))
	var iss Issues
	if s.hydrate != nil {
		if err := s.hydrate(&r, m); err != nil {
			if isFatal(err) {
				return r, err
			}
			iss = append(iss, asIssues(err)...)
		}
	}
	for _, f := range s.fields {
		raw, ok := lookupField(m, f)
		if !ok {
			pm[f.Wire] |= PresenceDefaultApplied
			continue
		}
		pm[f.Wire] |= PresenceSeen
		if f.decode == nil {
			continue
		}
		if err := f.decode(&r, raw); err != nil {
			if isFatal(err) {
				return r, Locate(Root().Field(f.Wire).Pointer(), err)
			}
			iss = append(iss, DecodeIssue(f.Wire, raw, err)...)
		}
	}
	for _, f := range s.fields {
		if f.required && !pm.Seen(f.Wire) {
			iss = append(iss, RequiredIssue(f.Wire, ""))
		}
	}
	iss = append(iss, s.check(&r, pm, true)...)
	if len(iss) > 0 {
		return r, iss
	}
	return r, nil
}

// Check validates a record built in Go and returns it with derived fields
// filled in. Every violation is reported, not just the first.
func (s *Schema[R]) Check(r R) (R, error) {
	iss := s.check(&r, nil, false)
	if len(iss) > 0 {
		return r, iss
	}
	return r, nil
}

func (s *Schema[R]) check(r *R, pm PresenceMap, decoded bool) Issues {
	var iss Issues
	for _, f := range s.fields {
		if f.check == nil {
			continue
		}
		if decoded && (f.nested || !pm.Seen(f.Wire)) {
			continue
		}
		iss = append(iss, f.check(r)...)
	}
	for _, rule := range s.rules {
		iss = append(iss, rule(r, pm)...)
	}
	return iss
}

func lookupField[R any](m *OrderedMap, f Field[R]) (any, bool) {
	if v, ok := m.Lookup(f.Wire); ok {
		return v, true
	}
	for _, a := range f.aliases {
		if v, ok := m.Lookup(a); ok {
			return v, true
		}
	}
	return nil, false
}

// Locate prefixes the path of an unknown action kind with base so the error
// names the action's position in the whole tree.
func Locate(base string, err error) error {
	var uk *UnknownActionKindError
	if errors.As(err, &uk) {
		uk.Path = base + uk.Path
	}
	return err
}
