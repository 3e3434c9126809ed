// Package markup converts ordered key/value trees to namespaced WPML markup
// text and back.
package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/wpml"
)

const (
	// Prefix is written before every namespaced element name.
	Prefix = "wpml"
	// NamespaceURI is the WPML namespace bound to Prefix.
	NamespaceURI = "http://www.dji.com/wpmz/1.0.3"
	// KMLNamespaceURI is the default namespace of the wrapper.
	KMLNamespaceURI = "http://www.opengis.net/kml/2.2"
)

// Attr is an attribute of a wrapper element.
type Attr struct {
	Name  string
	Value string
}

type options struct {
	indent string
	prefix string
	root   string
	child  string
	attrs  []Attr
}

// Option configures rendering.
type Option func(*options)

// WithIndent sets the indentation unit. The empty string renders on one line.
func WithIndent(unit string) Option { return func(o *options) { o.indent = unit } }

// WithPrefix replaces the namespace prefix.
func WithPrefix(p string) Option { return func(o *options) { o.prefix = p } }

// WithWrapper sets the two elements RenderDocument wraps the tree in.
func WithWrapper(root, child string, attrs ...Attr) Option {
	return func(o *options) {
		o.root = root
		o.child = child
		o.attrs = attrs
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		indent: "  ",
		prefix: Prefix,
		root:   "kml",
		child:  "Document",
		attrs: []Attr{
			{Name: "xmlns", Value: KMLNamespaceURI},
			{Name: "xmlns:" + Prefix, Value: NamespaceURI},
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Render writes the entries of m as sibling elements.
func Render(m *wpml.OrderedMap, opts ...Option) string {
	o := newOptions(opts)
	w := &writer{o: o}
	w.entries(m, 0)
	return w.buf.String()
}

// RenderDocument writes m inside the wrapper elements, preceded by the XML
// declaration.
func RenderDocument(m *wpml.OrderedMap, opts ...Option) string {
	o := newOptions(opts)
	w := &writer{o: o}
	w.buf.WriteString(xml.Header)
	w.buf.WriteString("<" + o.root)
	for _, a := range o.attrs {
		w.buf.WriteString(" " + a.Name + `="`)
		w.text(a.Value)
		w.buf.WriteString(`"`)
	}
	w.buf.WriteString(">")
	w.newline()
	w.pad(1)
	w.buf.WriteString("<" + o.child + ">")
	w.newline()
	w.entries(m, 2)
	w.pad(1)
	w.buf.WriteString("</" + o.child + ">")
	w.newline()
	w.buf.WriteString("</" + o.root + ">")
	w.newline()
	return w.buf.String()
}

type writer struct {
	o   *options
	buf bytes.Buffer
}

func (w *writer) entries(m *wpml.OrderedMap, depth int) {
	for _, e := range m.Entries() {
		name := e.Key
		if e.Namespaced && w.o.prefix != "" {
			name = w.o.prefix + ":" + name
		}
		w.value(name, e.Value, depth)
	}
}

func (w *writer) value(name string, v any, depth int) {
	switch x := v.(type) {
	case []any:
		for _, it := range x {
			w.value(name, it, depth)
		}
	case *wpml.OrderedMap:
		w.pad(depth)
		if x.Len() == 0 {
			w.buf.WriteString("<" + name + "/>")
			w.newline()
			return
		}
		w.buf.WriteString("<" + name + ">")
		w.newline()
		w.entries(x, depth+1)
		w.pad(depth)
		w.buf.WriteString("</" + name + ">")
		w.newline()
	default:
		w.pad(depth)
		w.buf.WriteString("<" + name + ">")
		w.text(Scalar(v))
		w.buf.WriteString("</" + name + ">")
		w.newline()
	}
}

func (w *writer) text(s string) {
	// bytes.Buffer never fails.
	_ = xml.EscapeText(&w.buf, []byte(s))
}

func (w *writer) pad(depth int) {
	if w.o.indent != "" {
		w.buf.WriteString(strings.Repeat(w.o.indent, depth))
	}
}

func (w *writer) newline() {
	if w.o.indent != "" {
		w.buf.WriteByte('\n')
	}
}

// Scalar formats a leaf value: integers in decimal, floats in the shortest
// exact decimal form, booleans as 1 or 0.
func Scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
