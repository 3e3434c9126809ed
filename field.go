package wpml

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field describes one field of record type R: its names, how it is written,
// how it is read back and how it is validated. Field values are built with
// the typed constructors below and are immutable once passed to NewSchema.
type Field[R any] struct {
	Name string // Go-side semantic name.
	Wire string // Key in the key/value tree.

	aliases  []string
	bare     bool
	required bool
	nested   bool

	encode func(*R) (any, bool)
	decode func(*R, any) error // nil for computed fields
	check  func(*R) Issues
}

// FieldInfo is the read-only description of a field.
type FieldInfo struct {
	Name     string
	Wire     string
	Aliases  []string
	Bare     bool
	Required bool
	Computed bool
}

// Info describes f.
func (f Field[R]) Info() FieldInfo {
	return FieldInfo{
		Name:     f.Name,
		Wire:     f.Wire,
		Aliases:  append([]string(nil), f.aliases...),
		Bare:     f.bare,
		Required: f.required,
		Computed: f.decode == nil,
	}
}

// Required marks the field as mandatory on input.
func (f Field[R]) Required() Field[R] { f.required = true; return f }

// Bare renders the field without the namespace prefix.
func (f Field[R]) Bare() Field[R] { f.bare = true; return f }

// Alias adds alternative wire names accepted on input.
func (f Field[R]) Alias(names ...string) Field[R] {
	f.aliases = append(append([]string(nil), f.aliases...), names...)
	return f
}

// Named overrides the semantic name.
func (f Field[R]) Named(name string) Field[R] { f.Name = name; return f }

func semanticName(wire string) string {
	r, n := utf8.DecodeRuneInString(wire)
	return string(unicode.ToUpper(r)) + wire[n:]
}

func newField[R any](wire string) Field[R] {
	return Field[R]{Name: semanticName(wire), Wire: wire}
}

// Int declares an integer field.
func Int[R any](wire string, get func(*R) *int, bs ...Bounds) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) { return *get(r), true }
	f.decode = func(r *R, raw any) error {
		n, err := ToInt(raw)
		if err != nil {
			return err
		}
		*get(r) = n
		return nil
	}
	f.check = func(r *R) Issues {
		n := *get(r)
		return checkBounds(wire, float64(n), n, bs)
	}
	return f
}

// OptInt declares an integer field that may be absent.
func OptInt[R any](wire string, get func(*R) **int, bs ...Bounds) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) {
		if p := *get(r); p != nil {
			return *p, true
		}
		return nil, false
	}
	f.decode = func(r *R, raw any) error {
		n, err := ToInt(raw)
		if err != nil {
			return err
		}
		*get(r) = &n
		return nil
	}
	f.check = func(r *R) Issues {
		if p := *get(r); p != nil {
			return checkBounds(wire, float64(*p), *p, bs)
		}
		return nil
	}
	return f
}

// Float declares a decimal field.
func Float[R any](wire string, get func(*R) *float64, bs ...Bounds) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) { return *get(r), true }
	f.decode = func(r *R, raw any) error {
		v, err := ToFloat(raw)
		if err != nil {
			return err
		}
		*get(r) = v
		return nil
	}
	f.check = func(r *R) Issues {
		return checkFloat(wire, *get(r), bs)
	}
	return f
}

// OptFloat declares a decimal field that may be absent.
func OptFloat[R any](wire string, get func(*R) **float64, bs ...Bounds) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) {
		if p := *get(r); p != nil {
			return *p, true
		}
		return nil, false
	}
	f.decode = func(r *R, raw any) error {
		v, err := ToFloat(raw)
		if err != nil {
			return err
		}
		*get(r) = &v
		return nil
	}
	f.check = func(r *R) Issues {
		if p := *get(r); p != nil {
			return checkFloat(wire, *p, bs)
		}
		return nil
	}
	return f
}

// String declares a text field. The empty string is a value and is written.
// Text is kept exactly, surrounding whitespace included.
func String[R any](wire string, get func(*R) *string) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) { return *get(r), true }
	f.decode = func(r *R, raw any) error {
		s, err := ToString(raw)
		if err != nil {
			return err
		}
		*get(r) = s
		return nil
	}
	return f
}

// OptString declares a text field that may be absent.
func OptString[R any](wire string, get func(*R) **string) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) {
		if p := *get(r); p != nil {
			return *p, true
		}
		return nil, false
	}
	f.decode = func(r *R, raw any) error {
		s, err := ToString(raw)
		if err != nil {
			return err
		}
		*get(r) = &s
		return nil
	}
	return f
}

// Flag declares an enable flag: bool in Go, 0 or 1 on the wire.
func Flag[R any](wire string, get func(*R) *bool) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) { return flagValue(*get(r)), true }
	f.decode = func(r *R, raw any) error {
		b, err := ToFlag(raw)
		if err != nil {
			return err
		}
		*get(r) = b
		return nil
	}
	return f
}

// Enum declares a field drawn from a closed vocabulary.
func Enum[R any, E Token](wire string, v *Vocabulary[E], get func(*R) *E) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) { return (*get(r)).String(), true }
	f.decode = func(r *R, raw any) error {
		e, err := v.decode(raw)
		if err != nil {
			return err
		}
		*get(r) = e
		return nil
	}
	f.check = func(r *R) Issues { return v.check(wire, *get(r)) }
	return f
}

// OptEnum declares a vocabulary field that may be absent.
func OptEnum[R any, E Token](wire string, v *Vocabulary[E], get func(*R) **E) Field[R] {
	f := newField[R](wire)
	f.encode = func(r *R) (any, bool) {
		if p := *get(r); p != nil {
			return (*p).String(), true
		}
		return nil, false
	}
	f.decode = func(r *R, raw any) error {
		e, err := v.decode(raw)
		if err != nil {
			return err
		}
		*get(r) = &e
		return nil
	}
	f.check = func(r *R) Issues {
		if p := *get(r); p != nil {
			return v.check(wire, *p)
		}
		return nil
	}
	return f
}

// Record declares a nested record field.
func Record[R, S any](wire string, s *Schema[S], get func(*R) *S) Field[R] {
	f := newField[R](wire)
	f.nested = true
	f.encode = func(r *R) (any, bool) { return s.Encode(*get(r)), true }
	f.decode = func(r *R, raw any) error {
		m, err := AsMap(raw)
		if err != nil {
			return err
		}
		v, err := s.Decode(m)
		*get(r) = v
		return err
	}
	f.check = func(r *R) Issues {
		v, err := s.Check(*get(r))
		*get(r) = v
		return nestedIssues(wire, err)
	}
	return f
}

// OptRecord declares a nested record field that may be absent.
func OptRecord[R, S any](wire string, s *Schema[S], get func(*R) **S) Field[R] {
	f := newField[R](wire)
	f.nested = true
	f.encode = func(r *R) (any, bool) {
		if p := *get(r); p != nil {
			return s.Encode(*p), true
		}
		return nil, false
	}
	f.decode = func(r *R, raw any) error {
		m, err := AsMap(raw)
		if err != nil {
			return err
		}
		v, err := s.Decode(m)
		*get(r) = &v
		return err
	}
	f.check = func(r *R) Issues {
		p := *get(r)
		if p == nil {
			return nil
		}
		v, err := s.Check(*p)
		*get(r) = &v
		return nestedIssues(wire, err)
	}
	return f
}

// List declares an ordered list of nested records, rendered as repeated
// sibling elements. An empty list writes nothing.
func List[R, S any](wire string, s *Schema[S], get func(*R) *[]S) Field[R] {
	f := newField[R](wire)
	f.nested = true
	f.encode = func(r *R) (any, bool) {
		items := *get(r)
		if len(items) == 0 {
			return nil, false
		}
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = s.Encode(it)
		}
		return out, true
	}
	f.decode = func(r *R, raw any) error {
		var items []S
		var iss Issues
		for i, el := range AsList(raw) {
			m, err := AsMap(el)
			if err != nil {
				iss = append(iss, DecodeIssue(itemPath(i), el, err)...)
				continue
			}
			v, err := s.Decode(m)
			if err != nil {
				if isFatal(err) {
					return Locate(Root().Index(i).Pointer(), err)
				}
				iss = append(iss, nestedIssues(itemPath(i), err)...)
			}
			items = append(items, v)
		}
		*get(r) = items
		if len(iss) > 0 {
			return iss
		}
		return nil
	}
	f.check = func(r *R) Issues {
		items := append([]S(nil), (*get(r))...)
		var iss Issues
		for i := range items {
			v, err := s.Check(items[i])
			items[i] = v
			iss = append(iss, Rebase(Root().Field(wire).Index(i).Pointer(), asIssues(err))...)
		}
		*get(r) = items
		return iss
	}
	return f
}

// Computed declares an output-only field derived from other fields. It is
// recomputed on every encode and ignored on input.
func Computed[R any](wire string, fn func(*R) (any, bool)) Field[R] {
	f := newField[R](wire)
	f.encode = fn
	return f
}

// Custom declares a field with hand-written encode, decode and check
// functions. decode may be nil for output-only fields; check may be nil.
func Custom[R any](wire string, encode func(*R) (any, bool), decode func(*R, any) error, check func(*R) Issues) Field[R] {
	f := newField[R](wire)
	f.encode = encode
	f.decode = decode
	f.check = check
	return f
}

// Nested marks a Custom field as holding nested records whose validation
// already ran during decoding.
func (f Field[R]) Nested() Field[R] { f.nested = true; return f }

// AsMap reads a nested block. An empty element (read from markup as "")
// counts as an empty block.
func AsMap(raw any) (*OrderedMap, error) {
	switch x := raw.(type) {
	case *OrderedMap:
		if x == nil {
			return NewOrderedMap(), nil
		}
		return x, nil
	case nil:
		return NewOrderedMap(), nil
	case string:
		if strings.TrimSpace(x) == "" {
			return NewOrderedMap(), nil
		}
	}
	return nil, &typeError{want: "nested block", got: raw}
}

// AsList reads a repeated element. A single element is a list of one and an
// empty element is an empty list.
func AsList(raw any) []any {
	switch x := raw.(type) {
	case []any:
		return x
	case nil:
		return nil
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
	}
	return []any{raw}
}

func itemPath(i int) string { return Root().Index(i).Pointer()[1:] }

func asIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: "/", Code: CodeInvalidType, Message: err.Error(), Cause: err}}
}

func nestedIssues(field string, err error) Issues {
	if err == nil {
		return nil
	}
	return Rebase(Root().Field(field).Pointer(), asIssues(err))
}
