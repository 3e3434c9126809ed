package wpml

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Entry is one key/value pair of an OrderedMap. Namespaced entries are
// rendered with the vendor prefix.
type Entry struct {
	Key        string
	Value      any
	Namespaced bool
}

// OrderedMap is the intermediate key/value tree between typed records and
// markup. Values are int, float64, string, bool, *OrderedMap or []any.
// Keys are stored without a namespace prefix.
type OrderedMap struct {
	entries []Entry
}

// NewOrderedMap returns an empty map.
func NewOrderedMap() *OrderedMap { return &OrderedMap{} }

// StripPrefix removes a namespace prefix ("wpml:x" -> "x"). Keys without a
// prefix are returned unchanged.
func StripPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// Set stores a namespaced entry, replacing an existing value in place.
func (m *OrderedMap) Set(key string, v any) *OrderedMap {
	return m.put(Entry{Key: key, Value: v, Namespaced: true})
}

// SetBare stores an entry rendered without the prefix.
func (m *OrderedMap) SetBare(key string, v any) *OrderedMap {
	return m.put(Entry{Key: key, Value: v})
}

// Add stores e, replacing an entry with the same key.
func (m *OrderedMap) Add(e Entry) *OrderedMap { return m.put(e) }

func (m *OrderedMap) put(e Entry) *OrderedMap {
	if strings.IndexByte(e.Key, ':') >= 0 {
		e.Key = StripPrefix(e.Key)
		e.Namespaced = true
	}
	for i := range m.entries {
		if m.entries[i].Key == e.Key {
			m.entries[i] = e
			return m
		}
	}
	m.entries = append(m.entries, e)
	return m
}

// Get returns the value stored under the exact key.
func (m *OrderedMap) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	key = StripPrefix(key)
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Lookup is Get with a case-insensitive fallback.
func (m *OrderedMap) Lookup(key string) (any, bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}
	if m == nil {
		return nil, false
	}
	key = StripPrefix(key)
	for _, e := range m.entries {
		if strings.EqualFold(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap) Delete(key string) bool {
	key = StripPrefix(key)
	for i, e := range m.entries {
		if e.Key == key {
			m.entries = append(m.entries[:i:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	out := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		out = append(out, e.Key)
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (m *OrderedMap) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

// Clone returns a deep copy.
func (m *OrderedMap) Clone() *OrderedMap {
	if m == nil {
		return nil
	}
	out := &OrderedMap{entries: make([]Entry, len(m.entries))}
	for i, e := range m.entries {
		e.Value = cloneValue(e.Value)
		out.entries[i] = e
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *OrderedMap:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = cloneValue(x[i])
		}
		return out
	}
	return v
}

// Equal compares content ignoring key order. List order is significant.
func (m *OrderedMap) Equal(o *OrderedMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	for _, e := range m.Entries() {
		v, ok := o.Get(e.Key)
		if !ok || !valueEqual(e.Value, v) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case *OrderedMap:
		y, ok := b.(*OrderedMap)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	return a == b
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// String renders the map as compact JSON. It is meant for logs and test
// failure output.
func (m *OrderedMap) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(b)
}

// MarshalJSON writes the entries in insertion order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping key order. Integral numbers become
// int, others float64. Keys repeated within one object are reported as
// Issues with code duplicate_key.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("wpml: expected JSON object, got %v", tok)
	}
	var dups Issues
	out, err := readJSONObject(dec, Root(), &dups)
	if err != nil {
		return err
	}
	if len(dups) > 0 {
		return dups
	}
	*m = *out
	return nil
}

func readJSONObject(dec *json.Decoder, at PathRef, dups *Issues) (*OrderedMap, error) {
	m := NewOrderedMap()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("wpml: expected object key, got %v", tok)
		}
		if _, dup := m.Get(key); dup {
			*dups = append(*dups, DuplicateKeyIssue(at.Field(key)))
		}
		v, err := readJSONValue(dec, at.Field(key), dups)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
}

func readJSONValue(dec *json.Decoder, at PathRef, dups *Issues) (any, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return readJSONObject(dec, at, dups)
		case '[':
			list := []any{}
			for dec.More() {
				item, err := readJSONValue(dec, at.Index(len(list)), dups)
				if err != nil {
					return nil, err
				}
				list = append(list, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
		return nil, fmt.Errorf("wpml: unexpected delimiter %v", v)
	case json.Number:
		return numberValue(string(v)), nil
	case float64:
		return numberValue(strconv.FormatFloat(v, 'f', -1, 64)), nil
	}
	return tok, nil
}

func numberValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 && !strings.ContainsAny(s, ".eE") {
			return int(f)
		}
		return f
	}
	return s
}

// MarshalYAML keeps key order by emitting a mapping node.
func (m *OrderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m.Entries() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		val := &yaml.Node{}
		if err := val.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node keeping key order. Duplicate keys are
// reported the same way as by UnmarshalJSON.
func (m *OrderedMap) UnmarshalYAML(node *yaml.Node) error {
	var dups Issues
	out, err := yamlMap(node, Root(), &dups)
	if err != nil {
		return err
	}
	if len(dups) > 0 {
		return dups
	}
	*m = *out
	return nil
}

func yamlMap(node *yaml.Node, at PathRef, dups *Issues) (*OrderedMap, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("wpml: line %d: expected mapping", node.Line)
	}
	m := NewOrderedMap()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, dup := m.Get(key); dup {
			*dups = append(*dups, DuplicateKeyIssue(at.Field(key)))
		}
		v, err := yamlValue(node.Content[i+1], at.Field(key), dups)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	return m, nil
}

func yamlValue(node *yaml.Node, at PathRef, dups *Issues) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return yamlMap(node, at, dups)
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for i, c := range node.Content {
			v, err := yamlValue(c, at.Index(i), dups)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias, at, dups)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		if v == nil {
			return "", nil
		}
		return v, nil
	}
	return nil, fmt.Errorf("wpml: line %d: unsupported YAML node", node.Line)
}
