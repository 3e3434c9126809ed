package model

import (
	"fmt"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
	"github.com/reoring/wpml/markup"
)

// Codec converts records to ordered trees and markup text and back. Its
// action group, waypoint and document schemas read actions through the
// registry given to NewCodec. A Codec is safe for concurrent use once the
// registry is frozen.
type Codec struct {
	reg      *action.Registry
	group    *wpml.Schema[ActionGroup]
	waypoint *wpml.Schema[Waypoint]
	document *wpml.Schema[Document]
	opts     []markup.Option
}

// NewCodec returns a codec reading actions through reg. opts apply to every
// rendered text.
func NewCodec(reg *action.Registry, opts ...markup.Option) *Codec {
	return &Codec{
		reg:      reg,
		group:    groupSchema(reg),
		waypoint: waypointSchema(reg),
		document: documentSchema(reg),
		opts:     opts,
	}
}

// Registry returns the action registry of c.
func (c *Codec) Registry() *action.Registry { return c.reg }

// CheckGroup validates g and returns it with unset indices filled in.
func (c *Codec) CheckGroup(g ActionGroup) (ActionGroup, error) { return c.group.Check(g) }

// CheckWaypoint validates w.
func (c *Codec) CheckWaypoint(w Waypoint) (Waypoint, error) { return c.waypoint.Check(w) }

// CheckDocument validates d.
func (c *Codec) CheckDocument(d Document) (Document, error) { return c.document.Check(d) }

// EncodeGroup validates g and writes it as a tree.
func (c *Codec) EncodeGroup(g ActionGroup) (*wpml.OrderedMap, error) {
	g, err := c.group.Check(g)
	if err != nil {
		return nil, err
	}
	return c.group.Encode(g), nil
}

// DecodeGroup reads an action group tree.
func (c *Codec) DecodeGroup(m *wpml.OrderedMap) (ActionGroup, error) { return c.group.Decode(m) }

// EncodeWaypoint validates w and writes it as a tree.
func (c *Codec) EncodeWaypoint(w Waypoint) (*wpml.OrderedMap, error) {
	w, err := c.waypoint.Check(w)
	if err != nil {
		return nil, err
	}
	return c.waypoint.Encode(w), nil
}

// DecodeWaypoint reads a Placemark tree.
func (c *Codec) DecodeWaypoint(m *wpml.OrderedMap) (Waypoint, error) { return c.waypoint.Decode(m) }

// EncodeAction validates a and writes it as a tree.
func (c *Codec) EncodeAction(a action.Action) (*wpml.OrderedMap, error) {
	a, err := c.reg.Build(a)
	if err != nil {
		return nil, err
	}
	return c.reg.Encode(a)
}

// DecodeAction reads an action tree.
func (c *Codec) DecodeAction(m *wpml.OrderedMap) (action.Action, error) { return c.reg.Decode(m) }

// EncodeDocument validates d and writes it as a tree with the root fields
// first and everything else in the Folder block.
func (c *Codec) EncodeDocument(d Document) (*wpml.OrderedMap, error) {
	d, err := c.document.Check(d)
	if err != nil {
		return nil, err
	}
	return splitFolder(c.document.Encode(d)), nil
}

// DecodeDocument reads a document tree. Fields may sit at the top level or
// inside the Folder block.
func (c *Codec) DecodeDocument(m *wpml.OrderedMap) (Document, error) {
	flat, err := mergeFolder(m)
	if err != nil {
		return c.document.Default(), err
	}
	return c.document.Decode(flat)
}

// Marshal renders d as a complete markup document.
func (c *Codec) Marshal(d Document) (string, error) {
	m, err := c.EncodeDocument(d)
	if err != nil {
		return "", err
	}
	return markup.RenderDocument(m, c.opts...), nil
}

// Unmarshal reads a markup document. The kml and Document wrapper elements
// are optional.
func (c *Codec) Unmarshal(data []byte) (Document, error) {
	m, err := markup.Parse(data)
	if err != nil {
		return c.document.Default(), err
	}
	m, err = unwrap(m, "kml", "Document")
	if err != nil {
		return c.document.Default(), err
	}
	return c.DecodeDocument(m)
}

// MarshalFragment renders an action group, a waypoint or an action as a
// single element without the document wrapper.
func (c *Codec) MarshalFragment(v any) (string, error) {
	var (
		e   wpml.Entry
		m   *wpml.OrderedMap
		err error
	)
	switch x := v.(type) {
	case ActionGroup:
		e = wpml.Entry{Key: "actionGroup", Namespaced: true}
		m, err = c.EncodeGroup(x)
	case Waypoint:
		e = wpml.Entry{Key: "Placemark"}
		m, err = c.EncodeWaypoint(x)
	case action.Action:
		e = wpml.Entry{Key: "action", Namespaced: true}
		m, err = c.EncodeAction(x)
	default:
		return "", fmt.Errorf("model: cannot render %T as a fragment", v)
	}
	if err != nil {
		return "", err
	}
	e.Value = m
	return markup.Render(wpml.NewOrderedMap().Add(e), c.opts...), nil
}

// UnmarshalGroup reads an actionGroup fragment.
func (c *Codec) UnmarshalGroup(data []byte) (ActionGroup, error) {
	m, err := parseFragment(data, "actionGroup")
	if err != nil {
		return ActionGroup{}, err
	}
	return c.DecodeGroup(m)
}

// UnmarshalWaypoint reads a Placemark fragment.
func (c *Codec) UnmarshalWaypoint(data []byte) (Waypoint, error) {
	m, err := parseFragment(data, "Placemark")
	if err != nil {
		return Waypoint{}, err
	}
	return c.DecodeWaypoint(m)
}

// UnmarshalAction reads an action fragment.
func (c *Codec) UnmarshalAction(data []byte) (action.Action, error) {
	m, err := parseFragment(data, "action")
	if err != nil {
		return nil, err
	}
	return c.DecodeAction(m)
}

// parseFragment parses data and descends into the element called name when
// it is the only top-level element.
func parseFragment(data []byte, name string) (*wpml.OrderedMap, error) {
	m, err := markup.Parse(data)
	if err != nil {
		return nil, err
	}
	return unwrap(m, name)
}

// unwrap descends through each name in turn while it is the sole entry.
func unwrap(m *wpml.OrderedMap, names ...string) (*wpml.OrderedMap, error) {
	for _, name := range names {
		if m.Len() != 1 {
			break
		}
		raw, ok := m.Lookup(name)
		if !ok {
			break
		}
		inner, err := wpml.AsMap(raw)
		if err != nil {
			return nil, wpml.DecodeIssue(name, raw, err)
		}
		m = inner
	}
	return m, nil
}
