package model

import (
	"slices"
	"strings"
	"time"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
)

// Document is a whole waypoint mission: metadata, mission configuration,
// wayline defaults and the ordered waypoints.
type Document struct {
	Author     string
	CreateTime int // milliseconds since the Unix epoch
	UpdateTime int
	Mission    MissionConfig

	Template              TemplateType
	TemplateID            int
	CoordinateSystem      CoordinateSystemParam
	AutoFlightSpeed       float64
	GlobalHeight          float64
	GlobalHeading         HeadingParam
	GlobalTurnMode        TurnMode
	GlobalUseStraightLine bool
	GimbalPitchMode       GimbalPitchMode
	Waypoints             []Waypoint
}

// NewDocument returns an empty mission stamped with now.
func NewDocument(now time.Time) Document {
	d := defaultDocument()
	d.CreateTime = int(now.UnixMilli())
	d.UpdateTime = d.CreateTime
	return d
}

// Touch returns a copy of d with the update time set to now.
func (d Document) Touch(now time.Time) Document {
	d.UpdateTime = int(now.UnixMilli())
	return d
}

// WithWaypoints returns a copy of d with ws appended.
func (d Document) WithWaypoints(ws ...Waypoint) Document {
	d.Waypoints = append(append([]Waypoint(nil), d.Waypoints...), ws...)
	return d
}

func defaultDocument() Document {
	return Document{
		Mission:               DefaultMissionConfig(),
		Template:              TemplateWaypoint,
		CoordinateSystem:      CoordinateSystemParamSchema.Default(),
		AutoFlightSpeed:       1,
		GlobalHeading:         HeadingParamSchema.Default(),
		GlobalTurnMode:        TurnAtPoint,
		GlobalUseStraightLine: true,
		GimbalPitchMode:       GimbalPitchManual,
	}
}

// rootKeys are written at the top of the document; every other field goes
// into the Folder block.
var rootKeys = []string{"author", "createTime", "updateTime", "missionConfig"}

const folderKey = "Folder"

var (
	timeBounds       = wpml.AtLeast(0)
	templateIDBounds = wpml.Between(0, 0)
	heightBounds     = wpml.AtLeast(0)
)

func documentSchema(reg *action.Registry) *wpml.Schema[Document] {
	return wpml.NewSchema("Document", defaultDocument,
		wpml.String("author", func(d *Document) *string { return &d.Author }),
		wpml.Int("createTime", func(d *Document) *int { return &d.CreateTime }, timeBounds),
		wpml.Int("updateTime", func(d *Document) *int { return &d.UpdateTime }, timeBounds),
		wpml.Record("missionConfig", MissionConfigSchema, func(d *Document) *MissionConfig { return &d.Mission }),
		wpml.Enum("templateType", TemplateTypes, func(d *Document) *TemplateType { return &d.Template }),
		wpml.Int("templateId", func(d *Document) *int { return &d.TemplateID }, templateIDBounds),
		wpml.Record("waylineCoordinateSysParam", CoordinateSystemParamSchema, func(d *Document) *CoordinateSystemParam { return &d.CoordinateSystem }),
		wpml.Float("autoFlightSpeed", func(d *Document) *float64 { return &d.AutoFlightSpeed }, speedBounds),
		wpml.Float("globalHeight", func(d *Document) *float64 { return &d.GlobalHeight }, heightBounds),
		wpml.Record("globalWaypointHeadingParam", HeadingParamSchema, func(d *Document) *HeadingParam { return &d.GlobalHeading }),
		wpml.Enum("globalWaypointTurnMode", TurnModes, func(d *Document) *TurnMode { return &d.GlobalTurnMode }),
		wpml.Flag("globalUseStraightLine", func(d *Document) *bool { return &d.GlobalUseStraightLine }),
		// WPML 1.0.x names the Folder element gimbalPitchMode. Older
		// third-party writers emit globalGimbalPitchMode, read as an alias.
		wpml.Enum("gimbalPitchMode", GimbalPitchModes, func(d *Document) *GimbalPitchMode { return &d.GimbalPitchMode }).Alias("globalGimbalPitchMode"),
		wpml.List("Placemark", waypointSchema(reg), func(d *Document) *[]Waypoint { return &d.Waypoints }).Bare(),
	).Rule(pointPitchRule)
}

// pointPitchRule requires a gimbal pitch on every waypoint once the pitch is
// taken from the waypoints.
func pointPitchRule(d *Document, _ wpml.PresenceMap) wpml.Issues {
	if d.GimbalPitchMode != GimbalPitchUsePointSetting {
		return nil
	}
	var iss wpml.Issues
	for i, w := range d.Waypoints {
		if w.GimbalPitch != nil {
			continue
		}
		it := wpml.RequiredIssue("gimbalPitchAngle", "gimbalPitchMode is usePointSetting")
		it.Path = wpml.Root().Field("Placemark").Index(i).Field("gimbalPitchAngle").Pointer()
		iss = append(iss, it)
	}
	return iss
}

// splitFolder moves every non-root entry of flat into a bare Folder block.
func splitFolder(flat *wpml.OrderedMap) *wpml.OrderedMap {
	out := wpml.NewOrderedMap()
	folder := wpml.NewOrderedMap()
	for _, e := range flat.Entries() {
		if slices.Contains(rootKeys, e.Key) {
			out.Add(e)
		} else {
			folder.Add(e)
		}
	}
	return out.SetBare(folderKey, folder)
}

// mergeFolder lifts the entries of the Folder block back to the top level.
func mergeFolder(m *wpml.OrderedMap) (*wpml.OrderedMap, error) {
	raw, ok := m.Lookup(folderKey)
	if !ok {
		return m, nil
	}
	folder, err := wpml.AsMap(raw)
	if err != nil {
		return nil, wpml.DecodeIssue(folderKey, raw, err)
	}
	out := wpml.NewOrderedMap()
	for _, e := range m.Entries() {
		if !strings.EqualFold(e.Key, folderKey) {
			out.Add(e)
		}
	}
	for _, e := range folder.Entries() {
		out.Add(e)
	}
	return out, nil
}
