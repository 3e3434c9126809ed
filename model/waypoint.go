package model

import (
	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
)

// Waypoint is one Placemark of the wayline. Overrides apply only while the
// matching UseGlobal flag is false.
type Waypoint struct {
	Position         Point
	Index            int
	Height           *float64
	EllipsoidHeight  *float64
	UseGlobalHeight  bool
	Speed            *float64
	UseGlobalSpeed   bool
	Heading          *HeadingParam
	UseGlobalHeading bool
	Turn             *TurnParam
	UseGlobalTurn    bool
	UseStraightLine  bool
	GimbalPitch      *float64
	Group            *ActionGroup
}

// NewWaypoint returns waypoint index at p following every global setting.
func NewWaypoint(index int, p Point) Waypoint {
	w := defaultWaypoint()
	w.Index = index
	w.Position = p
	return w
}

func defaultWaypoint() Waypoint {
	return Waypoint{
		UseGlobalHeight:  true,
		UseGlobalSpeed:   true,
		UseGlobalHeading: true,
		UseGlobalTurn:    true,
		UseStraightLine:  true,
	}
}

// WithGroup returns a copy of w carrying g.
func (w Waypoint) WithGroup(g ActionGroup) Waypoint {
	w.Group = &g
	return w
}

var (
	waypointIndexBounds = wpml.Between(0, 65535)
	speedBounds         = wpml.AtLeast(0)
)

func waypointSchema(reg *action.Registry) *wpml.Schema[Waypoint] {
	return wpml.NewSchema("Placemark", defaultWaypoint,
		wpml.Record("Point", PointSchema, func(w *Waypoint) *Point { return &w.Position }).Bare().Required(),
		wpml.Int("index", func(w *Waypoint) *int { return &w.Index }, waypointIndexBounds),
		wpml.OptFloat("height", func(w *Waypoint) **float64 { return &w.Height }),
		wpml.OptFloat("ellipsoidHeight", func(w *Waypoint) **float64 { return &w.EllipsoidHeight }),
		wpml.Flag("useGlobalHeight", func(w *Waypoint) *bool { return &w.UseGlobalHeight }),
		wpml.OptFloat("waypointSpeed", func(w *Waypoint) **float64 { return &w.Speed }, speedBounds),
		wpml.Flag("useGlobalSpeed", func(w *Waypoint) *bool { return &w.UseGlobalSpeed }),
		wpml.OptRecord("waypointHeadingParam", HeadingParamSchema, func(w *Waypoint) **HeadingParam { return &w.Heading }),
		wpml.Flag("useGlobalHeadingParam", func(w *Waypoint) *bool { return &w.UseGlobalHeading }),
		wpml.OptRecord("waypointTurnParam", TurnParamSchema, func(w *Waypoint) **TurnParam { return &w.Turn }),
		wpml.Flag("useGlobalTurnParam", func(w *Waypoint) *bool { return &w.UseGlobalTurn }),
		wpml.Flag("useStraightLine", func(w *Waypoint) *bool { return &w.UseStraightLine }),
		wpml.OptFloat("gimbalPitchAngle", func(w *Waypoint) **float64 { return &w.GimbalPitch }),
		wpml.OptRecord("actionGroup", groupSchema(reg), func(w *Waypoint) **ActionGroup { return &w.Group }),
	)
}
