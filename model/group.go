package model

import (
	"errors"
	"fmt"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
)

// ErrIndexOutOfRange is returned by group operations given a position
// outside the action list.
var ErrIndexOutOfRange = errors.New("model: action index out of range")

var groupIDBounds = wpml.AtLeast(0)

// ActionTrigger decides when an action group runs.
type ActionTrigger struct {
	Type  TriggerType
	Param *float64
}

var ActionTriggerSchema = wpml.NewSchema("actionTrigger",
	func() ActionTrigger { return ActionTrigger{Type: TriggerReachPoint} },
	wpml.Enum("actionTriggerType", TriggerTypes, func(t *ActionTrigger) *TriggerType { return &t.Type }),
	wpml.OptFloat("actionTriggerParam", func(t *ActionTrigger) **float64 { return &t.Param }),
)

// ActionGroup is an ordered list of actions bound to a range of waypoints.
// Start and End count from the group's own waypoint; a zero Start means ID
// and a zero End means Start.
type ActionGroup struct {
	ID      int
	Start   int
	End     int
	Mode    GroupMode
	Actions []action.Action
	Trigger ActionTrigger
}

// NewActionGroup returns a sequential group at waypoint id that fires on
// arrival. The actions are numbered 1..N.
func NewActionGroup(id int, actions ...action.Action) ActionGroup {
	g := ActionGroup{ID: id, Start: id, End: id, Mode: GroupSequence, Trigger: ActionTrigger{Type: TriggerReachPoint}}
	return g.withActions(append([]action.Action(nil), actions...))
}

func defaultGroup() ActionGroup {
	return ActionGroup{Mode: GroupSequence, Trigger: ActionTrigger{Type: TriggerReachPoint}}
}

func groupSchema(reg *action.Registry) *wpml.Schema[ActionGroup] {
	return wpml.NewSchema("actionGroup", defaultGroup,
		wpml.Int("actionGroupId", func(g *ActionGroup) *int { return &g.ID }, groupIDBounds),
		wpml.Int("actionGroupStartIndex", func(g *ActionGroup) *int { return &g.Start }),
		wpml.Int("actionGroupEndIndex", func(g *ActionGroup) *int { return &g.End }),
		wpml.Enum("actionGroupMode", GroupModes, func(g *ActionGroup) *GroupMode { return &g.Mode }),
		actionsField(reg),
		wpml.Record("actionTrigger", ActionTriggerSchema, func(g *ActionGroup) *ActionTrigger { return &g.Trigger }),
	).Rule(groupIndexRule)
}

// actionsField writes every action as a repeated "action" element. The key
// is kept even for an empty group.
func actionsField(reg *action.Registry) wpml.Field[ActionGroup] {
	return wpml.Custom("action",
		func(g *ActionGroup) (any, bool) {
			out := make([]any, 0, len(g.Actions))
			for _, a := range g.Actions {
				// Unregistered actions are rejected by Check before encoding.
				if m, err := reg.Encode(a); err == nil {
					out = append(out, m)
				}
			}
			return out, true
		},
		func(g *ActionGroup, raw any) error {
			var actions []action.Action
			var iss wpml.Issues
			for i, el := range wpml.AsList(raw) {
				at := wpml.Root().Index(i).Pointer()
				m, err := wpml.AsMap(el)
				if err != nil {
					iss = append(iss, wpml.DecodeIssue(at[1:], el, err)...)
					continue
				}
				a, err := reg.Decode(m)
				if err != nil {
					ai, ok := wpml.AsIssues(err)
					if !ok {
						return wpml.Locate(at, err)
					}
					iss = append(iss, wpml.Rebase(at, ai)...)
				}
				actions = append(actions, a)
			}
			g.Actions = actions
			if len(iss) > 0 {
				return iss
			}
			return nil
		},
		func(g *ActionGroup) wpml.Issues {
			if len(g.Actions) == 0 {
				return nil
			}
			checked, err := reg.Check(g.Actions)
			if err == nil {
				g.Actions = checked
				return nil
			}
			iss, ok := wpml.AsIssues(err)
			if !ok {
				return wpml.Issues{{Path: "/action", Code: wpml.CodeInvalidType, Message: err.Error(), Cause: err}}
			}
			g.Actions = checked
			return wpml.Rebase("/action", iss)
		},
	).Nested()
}

func groupIndexRule(g *ActionGroup, p wpml.PresenceMap) wpml.Issues {
	if unset(p, "actionGroupStartIndex", g.Start) {
		g.Start = g.ID
	}
	if unset(p, "actionGroupEndIndex", g.End) {
		g.End = g.Start
	}
	var iss wpml.Issues
	if g.Start < g.ID {
		iss = append(iss, wpml.ConstraintIssue("actionGroupStartIndex", "actionGroupStartIndex >= actionGroupId",
			map[string]any{"start": g.Start, "id": g.ID}))
	}
	if g.End < g.Start {
		iss = append(iss, wpml.ConstraintIssue("actionGroupEndIndex", "actionGroupEndIndex >= actionGroupStartIndex",
			map[string]any{"end": g.End, "start": g.Start}))
	}
	return iss
}

// unset reports whether an index was left out: absent from decoded input, or
// zero on a record built in Go.
func unset(p wpml.PresenceMap, wire string, v int) bool {
	if p == nil {
		return v == 0
	}
	return p.Defaulted(wire)
}

// Len returns the number of actions.
func (g ActionGroup) Len() int { return len(g.Actions) }

// NextActionID is the id the next appended action receives.
func (g ActionGroup) NextActionID() int { return len(g.Actions) + 1 }

// ActionByID returns the action with the given id.
func (g ActionGroup) ActionByID(id int) (action.Action, bool) {
	for _, a := range g.Actions {
		if a.ActionID() == id {
			return a, true
		}
	}
	return nil, false
}

// WithAction returns a copy of g with a appended.
func (g ActionGroup) WithAction(a action.Action) ActionGroup {
	return g.withActions(append(g.copyActions(), a))
}

// InsertAction returns a copy of g with a inserted at position i.
func (g ActionGroup) InsertAction(i int, a action.Action) (ActionGroup, error) {
	if i < 0 || i > len(g.Actions) {
		return g, fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, len(g.Actions))
	}
	out := make([]action.Action, 0, len(g.Actions)+1)
	out = append(out, g.Actions[:i]...)
	out = append(out, a)
	out = append(out, g.Actions[i:]...)
	return g.withActions(out), nil
}

// RemoveActionAt returns a copy of g without the action at position i.
func (g ActionGroup) RemoveActionAt(i int) (ActionGroup, error) {
	if i < 0 || i >= len(g.Actions) {
		return g, fmt.Errorf("%w: remove %d of %d", ErrIndexOutOfRange, i, len(g.Actions))
	}
	out := make([]action.Action, 0, len(g.Actions)-1)
	out = append(out, g.Actions[:i]...)
	out = append(out, g.Actions[i+1:]...)
	return g.withActions(out), nil
}

// RemoveAction returns a copy of g without the action carrying id. The
// boolean is false when no action has that id.
func (g ActionGroup) RemoveAction(id int) (ActionGroup, bool) {
	for i, a := range g.Actions {
		if a.ActionID() == id {
			out, _ := g.RemoveActionAt(i)
			return out, true
		}
	}
	return g, false
}

// MoveAction returns a copy of g with the action at from moved to to.
func (g ActionGroup) MoveAction(from, to int) (ActionGroup, error) {
	n := len(g.Actions)
	if from < 0 || from >= n || to < 0 || to >= n {
		return g, fmt.Errorf("%w: move %d to %d of %d", ErrIndexOutOfRange, from, to, n)
	}
	out := g.copyActions()
	a := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]action.Action{a}, out[to:]...)...)
	return g.withActions(out), nil
}

// ClearActions returns a copy of g without actions.
func (g ActionGroup) ClearActions() ActionGroup { return g.withActions(nil) }

// Renumber returns a copy of g whose action ids run 1..N in list order.
func (g ActionGroup) Renumber() ActionGroup { return g.withActions(g.copyActions()) }

func (g ActionGroup) copyActions() []action.Action {
	return append([]action.Action(nil), g.Actions...)
}

// withActions installs actions, which must not alias g.Actions, and numbers
// them from 1.
func (g ActionGroup) withActions(actions []action.Action) ActionGroup {
	for i, a := range actions {
		actions[i] = a.WithID(i + 1)
	}
	g.Actions = actions
	return g
}
