package wpml

import (
	"fmt"
	"strings"
)

// Token is an enumeration value with a canonical wire string.
type Token interface {
	comparable
	String() string
}

// Vocabulary is a closed, ordered set of tokens.
type Vocabulary[E Token] struct {
	name   string
	values []E
	byWire map[string]E
}

// NewVocabulary builds a vocabulary from its values in declaration order.
// It panics on duplicate wire strings.
func NewVocabulary[E Token](name string, values ...E) *Vocabulary[E] {
	v := &Vocabulary[E]{name: name, values: values, byWire: make(map[string]E, len(values))}
	for _, e := range values {
		w := e.String()
		if _, dup := v.byWire[w]; dup {
			panic(fmt.Sprintf("wpml: vocabulary %s: duplicate token %q", name, w))
		}
		v.byWire[w] = e
	}
	return v
}

// Name returns the vocabulary name used in error messages.
func (v *Vocabulary[E]) Name() string { return v.name }

// Parse maps a wire string to its value. Surrounding whitespace is ignored
// and an exact match wins over a case-insensitive one.
func (v *Vocabulary[E]) Parse(token string) (E, error) {
	t := strings.TrimSpace(token)
	if e, ok := v.byWire[t]; ok {
		return e, nil
	}
	for _, e := range v.values {
		if strings.EqualFold(e.String(), t) {
			return e, nil
		}
	}
	var zero E
	return zero, &UnknownVariantError{Enum: v.name, Given: token, Expected: v.Tokens()}
}

// MustParse is Parse for package-level tables; it panics on error.
func (v *Vocabulary[E]) MustParse(token string) E {
	e, err := v.Parse(token)
	if err != nil {
		panic(err)
	}
	return e
}

// Tokens lists the accepted wire strings in declaration order.
func (v *Vocabulary[E]) Tokens() []string {
	out := make([]string, len(v.values))
	for i, e := range v.values {
		out[i] = e.String()
	}
	return out
}

// Values returns the members in declaration order.
func (v *Vocabulary[E]) Values() []E { return append([]E(nil), v.values...) }

// Contains reports whether e is a member.
func (v *Vocabulary[E]) Contains(e E) bool {
	_, ok := v.byWire[e.String()]
	return ok && v.byWire[e.String()] == e
}

func (v *Vocabulary[E]) decode(raw any) (E, error) {
	s, err := ToString(raw)
	if err != nil {
		var zero E
		return zero, err
	}
	return v.Parse(s)
}

func (v *Vocabulary[E]) check(field string, e E) Issues {
	if v.Contains(e) {
		return nil
	}
	return DecodeIssue(field, e.String(), &UnknownVariantError{Enum: v.name, Given: e.String(), Expected: v.Tokens()})
}
