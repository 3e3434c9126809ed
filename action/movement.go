package action

import "github.com/reoring/wpml"

// Hover holds position for Seconds.
type Hover struct {
	Header
	Seconds float64
}

func (Hover) Kind() Kind             { return KindHover }
func (a Hover) WithID(id int) Action { a.ID = id; return a }

var HoverSchema = wpml.NewSchema("hover",
	func() Hover { return Hover{Seconds: 1} },
	wpml.Float("hoverTime", func(a *Hover) *float64 { return &a.Seconds }, wpml.Above(0)),
)

// RotateYaw turns the aircraft to Heading degrees.
type RotateYaw struct {
	Header
	Heading   float64
	Direction Direction
}

func (RotateYaw) Kind() Kind             { return KindRotateYaw }
func (a RotateYaw) WithID(id int) Action { a.ID = id; return a }

var RotateYawSchema = wpml.NewSchema("rotateYaw",
	func() RotateYaw { return RotateYaw{Direction: Clockwise} },
	wpml.Float("aircraftHeading", func(a *RotateYaw) *float64 { return &a.Heading }, wpml.Between(-180, 180)),
	wpml.Enum("aircraftPathMode", Directions, func(a *RotateYaw) *Direction { return &a.Direction }),
)
