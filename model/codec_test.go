package model_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
	"github.com/reoring/wpml/model"
)

func sampleDocument() model.Document {
	doc := model.NewDocument(time.UnixMilli(1718000000123))
	doc.Author = "survey-team"
	doc.GlobalHeight = 80
	doc.AutoFlightSpeed = 7.5
	doc.Mission.RCLost = model.RCLostGoBack
	doc.Mission.Finish = model.FinishAutoLand
	doc.Mission.TakeOffSecurityHeight = 20
	doc.Mission.TakeOffRefPoint = &model.POIPoint{Lat: 35.6812, Lon: 139.7671, Alt: 40.5}
	doc.Mission.Drone = &model.DroneInfo{Model: model.DroneM3E}
	doc.Mission.Payload = &model.PayloadInfo{Model: model.PayloadM3E}

	first := model.NewWaypoint(0, model.Point{Lon: 139.7671, Lat: 35.6812})
	first.Height = ptr(60.0)
	first.UseGlobalHeight = false
	first.Heading = &model.HeadingParam{
		Mode:     model.HeadingTowardPOI,
		POI:      &model.POIPoint{Lat: 35.6813, Lon: 139.7672, Alt: 0},
		PathMode: model.PathFollowBadArc,
	}
	first.UseGlobalHeading = false
	first = first.WithGroup(model.NewActionGroup(0,
		action.GimbalRotate{Mode: action.GimbalAbsoluteAngle, PitchEnable: true, Pitch: -90, YawBase: action.YawBaseNorth},
		action.TakePhoto{FileSuffix: "wp0", Lens: action.LensPtr(action.LensWide)},
	))

	second := model.NewWaypoint(1, model.Point{Lon: 139.768, Lat: 35.682})
	turn := model.NewCoordinatedTurn(0.2)
	second.Turn = &turn
	second.UseGlobalTurn = false
	second.Speed = ptr(5.0)
	second.UseGlobalSpeed = false
	g := model.NewActionGroup(1, action.Hover{Seconds: 2})
	g.End = 1
	second = second.WithGroup(g)

	return doc.WithWaypoints(first, second)
}

func TestCodec_DocumentTreeLayout(t *testing.T) {
	m, err := newCodec().EncodeDocument(sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, []string{"author", "createTime", "updateTime", "missionConfig", "Folder"}, m.Keys())

	raw, _ := m.Get("Folder")
	folder := raw.(*wpml.OrderedMap)
	assert.Equal(t, []string{
		"templateType", "templateId", "waylineCoordinateSysParam", "autoFlightSpeed", "globalHeight",
		"globalWaypointHeadingParam", "globalWaypointTurnMode", "globalUseStraightLine", "gimbalPitchMode", "Placemark",
	}, folder.Keys())

	for _, e := range m.Entries() {
		assert.Equal(t, e.Key != "Folder", e.Namespaced, e.Key)
	}
	created, _ := m.Get("createTime")
	assert.Equal(t, 1718000000123, created)

	placemarks, _ := folder.Get("Placemark")
	require.Len(t, placemarks, 2)
	wp := placemarks.([]any)[0].(*wpml.OrderedMap)
	assert.Equal(t, "Point", wp.Keys()[0])
	assert.False(t, wp.Entries()[0].Namespaced)
}

func TestCodec_DocumentRoundTrip(t *testing.T) {
	c := newCodec()
	doc, err := c.CheckDocument(sampleDocument())
	require.NoError(t, err)

	m, err := c.EncodeDocument(doc)
	require.NoError(t, err)
	back, err := c.DecodeDocument(m)
	require.NoError(t, err)
	assert.Equal(t, doc, back)

	text, err := c.Marshal(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, "<wpml:waypointPoiPoint>35.6813,139.7672,0</wpml:waypointPoiPoint>")
	assert.Contains(t, text, "<coordinates>139.7671,35.6812</coordinates>")

	parsed, err := c.Unmarshal([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)

	again, err := c.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestCodec_DecodeFlatDocumentAndAlias(t *testing.T) {
	m := wpml.NewOrderedMap().
		Set("author", " pilot ").
		Set("globalGimbalPitchMode", "usePointSetting").
		SetBare("Placemark", wpml.NewOrderedMap().
			SetBare("Point", wpml.NewOrderedMap().SetBare("coordinates", "10,20")).
			Set("index", "0").
			Set("gimbalPitchAngle", "-30"))
	doc, err := newCodec().DecodeDocument(m)
	require.NoError(t, err)
	assert.Equal(t, "pilot", doc.Author)
	assert.Equal(t, model.GimbalPitchUsePointSetting, doc.GimbalPitchMode)
	require.Len(t, doc.Waypoints, 1)
	assert.Equal(t, model.Point{Lon: 10, Lat: 20}, doc.Waypoints[0].Position)
	assert.Equal(t, ptr(-30.0), doc.Waypoints[0].GimbalPitch)
	assert.True(t, doc.Waypoints[0].UseGlobalSpeed)
	assert.Equal(t, model.DefaultMissionConfig(), doc.Mission)
}

func TestCodec_PointPitchRequired(t *testing.T) {
	doc := sampleDocument()
	doc.GimbalPitchMode = model.GimbalPitchUsePointSetting
	doc.Waypoints[1].GimbalPitch = ptr(-45.0)
	_, err := newCodec().CheckDocument(doc)
	iss := issuesOf(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/Placemark/0/gimbalPitchAngle", iss[0].Path)
	assert.Equal(t, wpml.CodeRequired, iss[0].Code)
}

func TestCodec_DocumentIssuesCarryFullPaths(t *testing.T) {
	c := newCodec()
	m, err := c.EncodeDocument(sampleDocument())
	require.NoError(t, err)
	raw, _ := m.Get("Folder")
	folder := raw.(*wpml.OrderedMap)
	folder.Set("autoFlightSpeed", -1)
	folder.Set("templateId", 1)
	pm, _ := folder.Get("Placemark")
	pm.([]any)[1].(*wpml.OrderedMap).Set("index", 70000)

	_, err = c.DecodeDocument(m)
	iss := issuesOf(t, err)
	assert.Len(t, iss, 3)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/autoFlightSpeed")[0].Code)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/templateId")[0].Code)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/Placemark/1/index")[0].Code)
}

func TestCodec_UnknownActionKindInDocument(t *testing.T) {
	c := newCodec()
	text, err := c.Marshal(sampleDocument())
	require.NoError(t, err)
	text = strings.Replace(text, ">takePhoto<", ">selfie<", 1)

	_, err = c.Unmarshal([]byte(text))
	var uk *wpml.UnknownActionKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "selfie", uk.Kind)
	assert.Equal(t, "/Placemark/0/actionGroup/action/1", uk.Path)
}

func TestCodec_MissingPointAndMalformedMarkup(t *testing.T) {
	c := newCodec()
	_, err := c.DecodeWaypoint(wpml.NewOrderedMap().Set("index", 0))
	assert.Equal(t, wpml.CodeRequired, issuesOf(t, err).At("/Point")[0].Code)

	_, err = c.Unmarshal([]byte("<kml><Document><wpml:author>x</Document></kml>"))
	var me *wpml.MarkupError
	assert.ErrorAs(t, err, &me)
}

func TestCodec_Fragments(t *testing.T) {
	c := newCodec()
	wp, err := c.CheckWaypoint(sampleDocument().Waypoints[1])
	require.NoError(t, err)

	text, err := c.MarshalFragment(wp)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "<Placemark>"))
	back, err := c.UnmarshalWaypoint([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, wp, back)

	a := action.TakePhoto{Header: action.Header{ID: 1}, PayloadPositionIndex: 1, FileSuffix: "test", Lens: action.LensPtr(action.LensZoom)}
	text, err = c.MarshalFragment(action.Action(a))
	require.NoError(t, err)
	assert.Contains(t, text, "<wpml:actionActuatorFunc>takePhoto</wpml:actionActuatorFunc>")
	got, err := c.UnmarshalAction([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = c.EncodeAction(action.Hover{})
	assert.Equal(t, wpml.CodeOutOfRange, issuesOf(t, err).At("/actionActuatorFuncParam/hoverTime")[0].Code)

	_, err = c.MarshalFragment(42)
	assert.Error(t, err)
}

func TestCodec_WaypointBounds(t *testing.T) {
	c := newCodec()
	for _, tc := range []struct {
		index int
		ok    bool
	}{{-1, false}, {0, true}, {65535, true}, {65536, false}} {
		_, err := c.CheckWaypoint(model.NewWaypoint(tc.index, model.Point{}))
		assert.Equal(t, tc.ok, err == nil, "index=%d", tc.index)
	}
}

func TestCodec_NonFiniteNumbersAreRejected(t *testing.T) {
	c := newCodec()

	_, err := c.CheckWaypoint(model.NewWaypoint(0, model.Point{Lon: math.NaN(), Lat: math.NaN()}))
	assert.Len(t, issuesOf(t, err).At("/Point/coordinates"), 2)

	wp := model.NewWaypoint(0, model.Point{})
	wp.Height = ptr(math.Inf(1))
	wp.UseGlobalHeight = false
	_, err = c.CheckWaypoint(wp)
	assert.Equal(t, wpml.CodeOutOfRange, issuesOf(t, err).At("/height")[0].Code)

	_, err = c.EncodeGroup(model.NewActionGroup(0, action.Hover{Seconds: math.NaN()}))
	assert.Len(t, issuesOf(t, err).At("/action/0/actionActuatorFuncParam/hoverTime"), 1)

	doc := sampleDocument()
	doc.AutoFlightSpeed = math.Inf(1)
	doc.Mission.TakeOffRefPoint.Alt = math.NaN()
	_, err = c.Marshal(doc)
	iss := issuesOf(t, err)
	assert.Equal(t, wpml.CodeOutOfRange, iss.At("/autoFlightSpeed")[0].Code)
	assert.Len(t, iss.At("/missionConfig/takeOffRefPoint"), 1)

	for _, text := range []string{"NaN,1", "1,+Inf", "Inf,-Inf,0"} {
		_, err := model.ParsePoint(text)
		assert.True(t, errors.Is(err, wpml.ErrMalformedCoordinate), text)
	}
	_, err = model.ParsePOI("1,2,NaN")
	assert.ErrorIs(t, err, wpml.ErrMalformedCoordinate)
}

func TestCodec_TextSurvivesMarkup(t *testing.T) {
	c := newCodec()
	doc := sampleDocument()
	doc.Author = "  field team\n"
	wp := doc.Waypoints[0]
	wp = wp.WithGroup(model.NewActionGroup(0, action.TakePhoto{FileSuffix: " wp 1 "}))
	doc.Waypoints[0] = wp
	want, err := c.CheckDocument(doc)
	require.NoError(t, err)

	text, err := c.Marshal(doc)
	require.NoError(t, err)
	got, err := c.Unmarshal([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, " wp 1 ", got.Waypoints[0].Group.Actions[0].(action.TakePhoto).FileSuffix)
}

func TestCodec_ConcurrentUse(t *testing.T) {
	c := newCodec()
	doc := sampleDocument()
	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			text, err := c.Marshal(doc)
			if err == nil {
				_, err = c.Unmarshal([]byte(text))
			}
			done <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-done)
	}
}
