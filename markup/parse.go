package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/wpml"
)

// Parse reads markup into an ordered tree. Top-level elements become the
// entries of the returned map. Elements with children become nested maps,
// repeated siblings become lists and leaf elements keep their text exactly.
// Text between the children of an element is dropped.
// Namespace prefixes are dropped; entries remember whether they had one.
// Attributes and namespace declarations are ignored, so fragments may use
// the prefix without declaring it.
func Parse(data []byte) (*wpml.OrderedMap, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	root := &node{children: wpml.NewOrderedMap()}
	stack := []*node{root}
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, markupError(d, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, &node{name: t.Name})
		case xml.CharData:
			stack[len(stack)-1].text.Write(t)
		case xml.EndElement:
			n := stack[len(stack)-1]
			if len(stack) == 1 || n.name != t.Name {
				line, _ := d.InputPos()
				return nil, &wpml.MarkupError{Line: line, Err: fmt.Errorf("element <%s> closed by </%s>", qualified(n.name), qualified(t.Name))}
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].add(n)
		}
	}
	if len(stack) != 1 {
		line, _ := d.InputPos()
		return nil, &wpml.MarkupError{Line: line, Err: io.ErrUnexpectedEOF}
	}
	if root.children.Len() == 0 {
		return nil, &wpml.MarkupError{Err: errNoElement}
	}
	return root.children, nil
}

var errNoElement = errors.New("no element found")

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

type node struct {
	name     xml.Name
	text     bytes.Buffer
	children *wpml.OrderedMap
}

func (n *node) value() any {
	if n.children != nil {
		return n.children
	}
	return n.text.String()
}

func (n *node) add(child *node) {
	if n.children == nil {
		n.children = wpml.NewOrderedMap()
	}
	key := child.name.Local
	e := wpml.Entry{Key: key, Value: child.value(), Namespaced: child.name.Space != ""}
	prev, ok := n.children.Get(key)
	if !ok {
		n.children.Add(e)
		return
	}
	if list, ok := prev.([]any); ok {
		e.Value = append(list, e.Value)
	} else {
		e.Value = []any{prev, e.Value}
	}
	n.children.Add(e)
}

func markupError(d *xml.Decoder, err error) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &wpml.MarkupError{Line: se.Line, Err: err}
	}
	line, _ := d.InputPos()
	return &wpml.MarkupError{Line: line, Err: err}
}
