package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
	"github.com/reoring/wpml/model"
)

func newCodec() *model.Codec { return model.NewCodec(action.NewRegistry().Freeze()) }

func ids(g model.ActionGroup) []int {
	out := make([]int, len(g.Actions))
	for i, a := range g.Actions {
		out[i] = a.ActionID()
	}
	return out
}

func kinds(g model.ActionGroup) []action.Kind {
	out := make([]action.Kind, len(g.Actions))
	for i, a := range g.Actions {
		out[i] = a.Kind()
	}
	return out
}

func TestActionGroup_IndexDefaulting(t *testing.T) {
	c := newCodec()

	g, err := c.CheckGroup(model.NewActionGroup(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Start)
	assert.Equal(t, 5, g.End)

	g, err = c.CheckGroup(model.ActionGroup{ID: 5, Mode: model.GroupSequence, Trigger: model.ActionTrigger{Type: model.TriggerReachPoint}})
	require.NoError(t, err)
	assert.Equal(t, 5, g.Start)
	assert.Equal(t, 5, g.End)

	g, err = c.CheckGroup(model.ActionGroup{ID: 2, Start: 4, Mode: model.GroupSequence, Trigger: model.ActionTrigger{Type: model.TriggerReachPoint}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.End)

	_, err = c.CheckGroup(model.ActionGroup{ID: 1, Start: 10, End: 8, Mode: model.GroupSequence, Trigger: model.ActionTrigger{Type: model.TriggerReachPoint}})
	iss := issuesOf(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, wpml.CodeConstraint, iss[0].Code)
	assert.Equal(t, "/actionGroupEndIndex", iss[0].Path)

	_, err = c.CheckGroup(model.ActionGroup{ID: 3, Start: 2, End: 2, Mode: model.GroupSequence, Trigger: model.ActionTrigger{Type: model.TriggerReachPoint}})
	assert.Equal(t, "/actionGroupStartIndex", issuesOf(t, err)[0].Path)
}

func TestActionGroup_DecodeDefaults(t *testing.T) {
	g, err := newCodec().DecodeGroup(wpml.NewOrderedMap().Set("actionGroupId", "5"))
	require.NoError(t, err)
	assert.Equal(t, model.ActionGroup{
		ID: 5, Start: 5, End: 5,
		Mode:    model.GroupSequence,
		Trigger: model.ActionTrigger{Type: model.TriggerReachPoint},
	}, g)

	_, err = newCodec().DecodeGroup(wpml.NewOrderedMap().
		Set("actionGroupId", 1).
		Set("actionGroupStartIndex", 10).
		Set("actionGroupEndIndex", 8))
	assert.Equal(t, wpml.CodeConstraint, issuesOf(t, err).At("/actionGroupEndIndex")[0].Code)
}

func TestActionGroup_EmptyActionList(t *testing.T) {
	c := newCodec()
	g := model.ActionGroup{ID: 1, Start: 2, End: 3, Mode: model.GroupSequence, Trigger: model.ActionTrigger{Type: model.TriggerReachPoint}}

	m, err := c.EncodeGroup(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"actionGroupId", "actionGroupStartIndex", "actionGroupEndIndex", "actionGroupMode", "action", "actionTrigger"}, m.Keys())
	list, ok := m.Get("action")
	require.True(t, ok)
	assert.Equal(t, []any{}, list)

	back, err := c.DecodeGroup(m)
	require.NoError(t, err)
	assert.Equal(t, g, back)
	assert.Empty(t, back.Actions)

	text, err := c.MarshalFragment(g)
	require.NoError(t, err)
	back, err = c.UnmarshalGroup([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestActionGroup_DecodeCollectsActionIssues(t *testing.T) {
	m := wpml.NewOrderedMap().
		Set("actionGroupId", 0).
		Set("action", []any{
			wpml.NewOrderedMap().Set("actionId", 1).Set("actionActuatorFunc", "hover").
				Set("actionActuatorFuncParam", wpml.NewOrderedMap().Set("hoverTime", 0)),
			"not a block",
		})
	_, err := newCodec().DecodeGroup(m)
	iss := issuesOf(t, err)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/action/0/actionActuatorFuncParam/hoverTime")[0].Code)
	assert.Equal(t, wpml.CodeInvalidType, iss.At("/action/1")[0].Code)
}

func TestActionGroup_UnknownKindAborts(t *testing.T) {
	m := wpml.NewOrderedMap().
		Set("actionGroupId", 0).
		Set("action", []any{
			wpml.NewOrderedMap().Set("actionId", 1).Set("actionActuatorFunc", "takePhoto"),
			wpml.NewOrderedMap().Set("actionId", 2).Set("actionActuatorFunc", "fireworks"),
		})
	_, err := newCodec().DecodeGroup(m)
	var uk *wpml.UnknownActionKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "fireworks", uk.Kind)
	assert.Equal(t, "/action/1", uk.Path)
	_, isIssues := wpml.AsIssues(err)
	assert.False(t, isIssues)
}

func TestActionGroup_CheckReportsActionIssues(t *testing.T) {
	g := model.NewActionGroup(0, action.Hover{Seconds: 1}, action.Zoom{FocalLength: 300})
	_, err := newCodec().CheckGroup(g)
	iss := issuesOf(t, err)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/action/1/actionActuatorFuncParam/focalLength")[0].Code)
}

func TestActionGroup_Management(t *testing.T) {
	g := model.NewActionGroup(0, action.Hover{Header: action.Header{ID: 9}, Seconds: 1}, action.Zoom{FocalLength: 24})
	assert.Equal(t, []int{1, 2}, ids(g))
	assert.Equal(t, 3, g.NextActionID())

	added := g.WithAction(action.TakePhoto{})
	assert.Equal(t, []int{1, 2, 3}, ids(added))
	assert.Equal(t, 2, g.Len(), "original group is unchanged")

	ins, err := added.InsertAction(0, action.StopRecord{})
	require.NoError(t, err)
	assert.Equal(t, []action.Kind{action.KindStopRecord, action.KindHover, action.KindZoom, action.KindTakePhoto}, kinds(ins))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(ins))
	assert.Equal(t, action.KindHover, added.Actions[0].Kind())
	assert.Equal(t, 1, added.Actions[0].ActionID())

	_, err = ins.InsertAction(5, action.StopRecord{})
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)

	rm, ok := ins.RemoveAction(2)
	require.True(t, ok)
	assert.Equal(t, []action.Kind{action.KindStopRecord, action.KindZoom, action.KindTakePhoto}, kinds(rm))
	assert.Equal(t, []int{1, 2, 3}, ids(rm))
	_, ok = ins.RemoveAction(42)
	assert.False(t, ok)

	rm, err = ins.RemoveActionAt(3)
	require.NoError(t, err)
	assert.Equal(t, 3, rm.Len())
	_, err = ins.RemoveActionAt(4)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)

	mv, err := ins.MoveAction(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []action.Kind{action.KindHover, action.KindZoom, action.KindTakePhoto, action.KindStopRecord}, kinds(mv))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(mv))
	assert.Equal(t, action.KindStopRecord, ins.Actions[0].Kind())
	_, err = ins.MoveAction(0, 4)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)

	a, ok := mv.ActionByID(2)
	require.True(t, ok)
	assert.Equal(t, action.KindZoom, a.Kind())
	_, ok = mv.ActionByID(9)
	assert.False(t, ok)

	assert.Zero(t, mv.ClearActions().Len())
	assert.Equal(t, 4, mv.Len())
}

func TestActionGroup_Renumber(t *testing.T) {
	g := model.ActionGroup{Actions: []action.Action{
		action.Hover{Header: action.Header{ID: 7}, Seconds: 1},
		action.StopRecord{Header: action.Header{ID: 3}},
	}}
	r := g.Renumber()
	assert.Equal(t, []int{1, 2}, ids(r))
	assert.Equal(t, []int{7, 3}, ids(g))
}
