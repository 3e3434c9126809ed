package model

import "github.com/reoring/wpml"

// HeadingParam controls the aircraft heading on the way to the next waypoint.
type HeadingParam struct {
	Mode     HeadingMode
	Angle    *float64
	POI      *POIPoint
	PathMode HeadingPathMode
}

var HeadingParamSchema = wpml.NewSchema("waypointHeadingParam",
	func() HeadingParam { return HeadingParam{Mode: HeadingFollowWayline, PathMode: PathFollowBadArc} },
	wpml.Enum("waypointHeadingMode", HeadingModes, func(h *HeadingParam) *HeadingMode { return &h.Mode }),
	wpml.OptFloat("waypointHeadingAngle", func(h *HeadingParam) **float64 { return &h.Angle }, wpml.Between(-180, 180)),
	wpml.Custom("waypointPoiPoint",
		func(h *HeadingParam) (any, bool) {
			if h.POI == nil {
				return nil, false
			}
			return h.POI.String(), true
		},
		func(h *HeadingParam, raw any) error {
			s, err := wpml.ToString(raw)
			if err != nil {
				return err
			}
			p, err := ParsePOI(s)
			if err != nil {
				return err
			}
			h.POI = &p
			return nil
		},
		func(h *HeadingParam) wpml.Issues { return checkPOI("/waypointPoiPoint", h.POI) },
	),
	wpml.Enum("waypointHeadingPathMode", HeadingPathModes, func(h *HeadingParam) *HeadingPathMode { return &h.PathMode }),
).Rule(func(h *HeadingParam, _ wpml.PresenceMap) wpml.Issues {
	switch {
	case h.Mode == HeadingSmoothTransition && h.Angle == nil:
		return wpml.Issues{wpml.RequiredIssue("waypointHeadingAngle", "waypointHeadingMode is smoothTransition")}
	case h.Mode == HeadingTowardPOI && h.POI == nil:
		return wpml.Issues{wpml.RequiredIssue("waypointPoiPoint", "waypointHeadingMode is towardPOI")}
	}
	return nil
})

// Check validates h.
func (h HeadingParam) Check() (HeadingParam, error) { return HeadingParamSchema.Check(h) }

// TurnParam controls how the aircraft passes a waypoint.
type TurnParam struct {
	Mode        TurnMode
	DampingDist *float64
}

var TurnParamSchema = wpml.NewSchema[TurnParam]("waypointTurnParam", nil,
	wpml.Enum("waypointTurnMode", TurnModes, func(t *TurnParam) *TurnMode { return &t.Mode }).Required(),
	wpml.OptFloat("waypointTurnDampingDist", func(t *TurnParam) **float64 { return &t.DampingDist }, wpml.Above(0)),
).Rule(func(t *TurnParam, _ wpml.PresenceMap) wpml.Issues {
	if t.Mode == CoordinateTurn && t.DampingDist == nil {
		return wpml.Issues{wpml.RequiredIssue("waypointTurnDampingDist", "waypointTurnMode is coordinateTurn")}
	}
	return nil
})

// Check validates t.
func (t TurnParam) Check() (TurnParam, error) { return TurnParamSchema.Check(t) }

// NewCoordinatedTurn turns early with damping distance d in metres.
func NewCoordinatedTurn(d float64) TurnParam { return TurnParam{Mode: CoordinateTurn, DampingDist: &d} }

// NewTurnAtPoint stops at the waypoint before turning.
func NewTurnAtPoint() TurnParam { return TurnParam{Mode: TurnAtPoint} }

// NewCurvedTurnWithStop flies a curve and stops at the waypoint.
func NewCurvedTurnWithStop() TurnParam { return TurnParam{Mode: TurnCurvedWithStop} }

// NewCurvedTurnWithoutStop flies a curve through the waypoint.
func NewCurvedTurnWithoutStop() TurnParam { return TurnParam{Mode: TurnCurvedWithoutStop} }

// CoordinateSystemParam is the coordinate reference of a wayline.
type CoordinateSystemParam struct {
	CoordinateMode  CoordinateMode
	HeightMode      HeightMode
	PositioningType PositioningType
}

var CoordinateSystemParamSchema = wpml.NewSchema("waylineCoordinateSysParam",
	func() CoordinateSystemParam {
		return CoordinateSystemParam{CoordinateMode: WGS84, HeightMode: HeightRelativeToStartPoint, PositioningType: PositioningGPS}
	},
	wpml.Enum("coordinateMode", CoordinateModes, func(c *CoordinateSystemParam) *CoordinateMode { return &c.CoordinateMode }),
	wpml.Enum("heightMode", HeightModes, func(c *CoordinateSystemParam) *HeightMode { return &c.HeightMode }),
	wpml.Enum("positioningType", PositioningTypes, func(c *CoordinateSystemParam) *PositioningType { return &c.PositioningType }),
)
