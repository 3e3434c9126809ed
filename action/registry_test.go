package action_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
)

func allKinds() []action.Action {
	sp := action.DefaultShootParams()
	return []action.Action{
		action.TakePhoto{Header: action.Header{ID: 1}, FileSuffix: "a", Lens: action.LensPtr(action.LensWide)},
		action.StartRecord{Header: action.Header{ID: 2}, Lens: action.LensPtr(action.LensIR)},
		action.StopRecord{Header: action.Header{ID: 3}},
		action.GimbalRotate{Header: action.Header{ID: 4}, Mode: action.GimbalAbsoluteAngle, PitchEnable: true, Pitch: -45, YawBase: action.YawBaseNorth},
		action.GimbalEvenlyRotate{Header: action.Header{ID: 5}, Pitch: -30},
		action.Hover{Header: action.Header{ID: 6}, Seconds: 2.5},
		action.RotateYaw{Header: action.Header{ID: 7}, Heading: -90, Direction: action.CounterClockwise},
		action.Focus{Header: action.Header{ID: 8}, X: 0.5, Y: 0.5, RegionWidth: 0.2, RegionHeight: 0.2},
		action.Zoom{Header: action.Header{ID: 9}, FocalLength: 120},
		action.AccurateShoot{Header: action.Header{ID: 10}, ShootParams: sp},
		action.OrientedShoot{Header: action.Header{ID: 11}, ShootParams: sp, PhotoMode: action.PhotoLowLightSmart},
		action.PanoShot{Header: action.Header{ID: 12}, Mode: action.Pano360},
		action.RecordPointCloud{Header: action.Header{ID: 13}, Operation: action.PointCloudPause},
	}
}

func TestRegistry_EveryBuiltinKindResolvesAndIdentifies(t *testing.T) {
	reg := action.NewRegistry().Freeze()
	kinds := reg.Kinds()
	require.Len(t, kinds, 13)

	for _, a := range allKinds() {
		k, err := reg.Identify(a)
		require.NoError(t, err)
		assert.Equal(t, a.Kind(), k)

		d, err := reg.Resolve(k)
		require.NoError(t, err)
		assert.Equal(t, k, d.Kind)
		assert.Equal(t, k, d.Default().Kind())
		assert.NotEmpty(t, d.Params)
	}
}

func TestRegistry_RoundTripEveryKind(t *testing.T) {
	reg := action.NewRegistry().Freeze()
	for _, a := range allKinds() {
		built, err := reg.Build(a)
		require.NoError(t, err, "%T", a)

		m, err := reg.Encode(built)
		require.NoError(t, err)
		assert.Equal(t, []string{"actionId", "actionActuatorFunc", "actionActuatorFuncParam"}, m.Keys())

		back, err := reg.Decode(m)
		require.NoError(t, err, "%T", a)
		assert.Equal(t, built, back)

		again, err := reg.Encode(back)
		require.NoError(t, err)
		assert.True(t, m.Equal(again), "%T", a)
	}
}

func TestRegistry_TakePhotoBlocks(t *testing.T) {
	reg := action.NewRegistry()
	a := action.TakePhoto{Header: action.Header{ID: 1}, PayloadPositionIndex: 1, FileSuffix: "test", Lens: action.LensPtr(action.LensZoom)}

	m, err := reg.Encode(a)
	require.NoError(t, err)
	id, _ := m.Get("actionId")
	assert.Equal(t, 1, id)
	kind, _ := m.Get("actionActuatorFunc")
	assert.Equal(t, "takePhoto", kind)

	raw, _ := m.Get("actionActuatorFuncParam")
	params := raw.(*wpml.OrderedMap)
	want := wpml.NewOrderedMap().
		Set("payloadPositionIndex", 1).
		Set("fileSuffix", "test").
		Set("payloadLensIndex", "zoom").
		Set("useGlobalPayloadLensIndex", 0)
	assert.True(t, want.Equal(params), params.String())
	assert.Equal(t, want.Keys(), params.Keys())

	back, err := reg.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestRegistry_DecodeFromMarkupText(t *testing.T) {
	reg := action.NewRegistry()
	m := wpml.NewOrderedMap().
		Set("wpml:actionId", "4").
		Set("wpml:actionActuatorFunc", "hover").
		Set("wpml:actionActuatorFuncParam", wpml.NewOrderedMap().Set("wpml:hoverTime", "3.5").Set("vendorExtra", "x"))
	a, err := reg.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, action.Hover{Header: action.Header{ID: 4}, Seconds: 3.5}, a)
}

func TestRegistry_MissingParamsUseDefaults(t *testing.T) {
	reg := action.NewRegistry()
	for _, params := range []any{nil, "", wpml.NewOrderedMap()} {
		m := wpml.NewOrderedMap().Set("actionId", 0).Set("actionActuatorFunc", "zoom")
		if params != nil {
			m.Set("actionActuatorFuncParam", params)
		}
		a, err := reg.Decode(m)
		require.NoError(t, err)
		assert.Equal(t, action.Zoom{FocalLength: 24}, a)
	}
}

func TestRegistry_UnknownKind(t *testing.T) {
	reg := action.NewRegistry()
	_, err := reg.Decode(wpml.NewOrderedMap().Set("actionId", 1).Set("actionActuatorFunc", "selfDestruct"))
	var uk *wpml.UnknownActionKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "selfDestruct", uk.Kind)
	assert.Contains(t, uk.Known, "takePhoto")

	_, err = reg.Decode(wpml.NewOrderedMap().Set("actionId", 1))
	require.ErrorAs(t, err, &uk)
	assert.Empty(t, uk.Kind)

	_, err = reg.Resolve("nope")
	require.ErrorAs(t, err, &uk)
}

func TestRegistry_DecodeCollectsParamIssues(t *testing.T) {
	reg := action.NewRegistry()
	m := wpml.NewOrderedMap().
		Set("actionId", 70000).
		Set("actionActuatorFunc", "takePhoto").
		Set("actionActuatorFuncParam", wpml.NewOrderedMap().
			Set("payloadPositionIndex", 3).
			Set("payloadLensIndex", "fisheye").
			Set("useGlobalPayloadLensIndex", 2))
	_, err := reg.Decode(m)
	iss, ok := wpml.AsIssues(err)
	require.True(t, ok, "%v", err)
	assert.Len(t, iss, 4)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/actionId")[0].Code)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/actionActuatorFuncParam/payloadPositionIndex")[0].Code)
	assert.Equal(t, wpml.CodeInvalidEnum, iss.At("/actionActuatorFuncParam/payloadLensIndex")[0].Code)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/actionActuatorFuncParam/useGlobalPayloadLensIndex")[0].Code)
}

func TestRegistry_BuildAsRejectsWrongKind(t *testing.T) {
	reg := action.NewRegistry()
	_, err := reg.BuildAs(action.KindZoom, action.Hover{Seconds: 1})
	assert.ErrorIs(t, err, action.ErrKindMismatch)

	got, err := reg.BuildAs(action.KindHover, action.Hover{Seconds: 1})
	require.NoError(t, err)
	assert.Equal(t, action.KindHover, got.Kind())
}

type spray struct {
	action.Header
	Litres float64
}

func (spray) Kind() action.Kind { return "spray" }
func (s spray) WithID(id int) action.Action {
	s.ID = id
	return s
}

var spraySchema = wpml.NewSchema[spray]("spray", nil,
	wpml.Float("litres", func(s *spray) *float64 { return &s.Litres }, wpml.Above(0)),
)

func TestRegistry_CustomKindAndIsolation(t *testing.T) {
	reg := action.NewRegistry()
	require.NoError(t, action.Register(reg, "spray", spraySchema))
	assert.ErrorIs(t, action.Register(reg, "spray", spraySchema), action.ErrDuplicateKind)
	assert.ErrorIs(t, action.Register(reg, "mist", spraySchema), action.ErrKindMismatch)
	reg.Freeze()
	assert.ErrorIs(t, action.Register(reg, "spray", spraySchema), action.ErrFrozen)

	m, err := reg.Encode(spray{Header: action.Header{ID: 2}, Litres: 1.5})
	require.NoError(t, err)
	back, err := reg.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, spray{Header: action.Header{ID: 2}, Litres: 1.5}, back)

	other := action.NewRegistry()
	_, err = other.Encode(spray{Litres: 1})
	assert.ErrorIs(t, err, action.ErrUnknownShape)
	_, err = other.Decode(m)
	assert.True(t, errors.As(err, new(*wpml.UnknownActionKindError)))

	empty := action.NewEmptyRegistry()
	assert.Empty(t, empty.Kinds())
	_, err = empty.Identify(action.Hover{})
	assert.ErrorIs(t, err, action.ErrUnknownShape)
}

func TestRegistry_ConcurrentReadsAfterFreeze(t *testing.T) {
	reg := action.NewRegistry().Freeze()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, a := range allKinds() {
				m, err := reg.Encode(a)
				if !assert.NoError(t, err) {
					return
				}
				_, err = reg.Decode(m)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_ParameterBounds(t *testing.T) {
	reg := action.NewRegistry().Freeze()
	oriented := func(pitch float64) action.Action {
		sp := action.DefaultShootParams()
		sp.GimbalPitch = pitch
		return action.OrientedShoot{ShootParams: sp, PhotoMode: action.PhotoNormal}
	}
	accurate := func(pitch float64) action.Action {
		sp := action.DefaultShootParams()
		sp.GimbalPitch = pitch
		return action.AccurateShoot{ShootParams: sp}
	}
	gimbal := func(pitch float64) action.Action {
		return action.GimbalRotate{Mode: action.GimbalAbsoluteAngle, PitchEnable: true, Pitch: pitch, YawBase: action.YawBaseNorth}
	}

	for _, tc := range []struct {
		wire  string
		build func(float64) action.Action
		ok    []float64
		bad   []float64
	}{
		{"hoverTime", func(v float64) action.Action { return action.Hover{Seconds: v} }, []float64{0.001, 1}, []float64{0, -1, math.NaN(), math.Inf(1)}},
		{"focalLength", func(v float64) action.Action { return action.Zoom{FocalLength: v} }, []float64{24, 240}, []float64{23, 241, math.NaN()}},
		{"aircraftHeading", func(v float64) action.Action { return action.RotateYaw{Heading: v, Direction: action.Clockwise} }, []float64{-180, 180}, []float64{-181, 181}},
		{"focusX", func(v float64) action.Action { return action.Focus{X: v} }, []float64{0, 1}, []float64{-0.01, 1.01}},
		{"focusRegionHeight", func(v float64) action.Action { return action.Focus{RegionHeight: v} }, []float64{0, 1}, []float64{-0.01, 1.01}},
		{"payloadPositionIndex", func(v float64) action.Action { return action.TakePhoto{PayloadPositionIndex: int(v)} }, []float64{0, 2}, []float64{-1, 3}},
		{"gimbalPitchRotateAngle", oriented, []float64{-120, 45}, []float64{-121, 46}},
		{"gimbalPitchRotateAngle", accurate, []float64{-120, 45}, []float64{-121, 46}},
		{"gimbalPitchRotateAngle", gimbal, []float64{-360, 0, 360}, []float64{math.NaN(), math.Inf(-1), math.Inf(1)}},
	} {
		for _, v := range tc.ok {
			a := tc.build(v)
			_, err := reg.Build(a)
			assert.NoError(t, err, "%s %s=%v", a.Kind(), tc.wire, v)
		}
		for _, v := range tc.bad {
			a := tc.build(v)
			_, err := reg.Build(a)
			iss, ok := wpml.AsIssues(err)
			if !assert.True(t, ok, "%s %s=%v: %v", a.Kind(), tc.wire, v, err) {
				continue
			}
			at := iss.At("/actionActuatorFuncParam/" + tc.wire)
			if assert.Len(t, at, 1, "%s %s=%v: %v", a.Kind(), tc.wire, v, err) {
				assert.Equal(t, wpml.CodeOutOfRange, at[0].Code)
			}
		}
	}
}

func TestRegistry_TextKeepsSurroundingWhitespace(t *testing.T) {
	reg := action.NewRegistry()
	a := action.TakePhoto{Header: action.Header{ID: 1}, FileSuffix: " wp 1 "}
	built, err := reg.Build(a)
	require.NoError(t, err)

	m, err := reg.Encode(built)
	require.NoError(t, err)
	back, err := reg.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}
