package action

import "github.com/reoring/wpml"

// GimbalRotate turns the gimbal to absolute angles. Each axis only moves when
// its enable flag is set; the reachable range depends on the gimbal.
type GimbalRotate struct {
	Header
	PayloadPositionIndex int
	Mode                 GimbalRotateMode
	PitchEnable          bool
	Pitch                float64
	RollEnable           bool
	Roll                 float64
	YawEnable            bool
	Yaw                  float64
	TimeEnable           bool
	Time                 float64
	YawBase              YawBase
}

func (GimbalRotate) Kind() Kind             { return KindGimbalRotate }
func (a GimbalRotate) WithID(id int) Action { a.ID = id; return a }

var GimbalRotateSchema = wpml.NewSchema("gimbalRotate",
	func() GimbalRotate { return GimbalRotate{Mode: GimbalAbsoluteAngle, YawBase: YawBaseNorth} },
	wpml.Int("payloadPositionIndex", func(a *GimbalRotate) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.Enum("gimbalRotateMode", GimbalRotateModes, func(a *GimbalRotate) *GimbalRotateMode { return &a.Mode }),
	wpml.Flag("gimbalPitchRotateEnable", func(a *GimbalRotate) *bool { return &a.PitchEnable }),
	wpml.Float("gimbalPitchRotateAngle", func(a *GimbalRotate) *float64 { return &a.Pitch }),
	wpml.Flag("gimbalRollRotateEnable", func(a *GimbalRotate) *bool { return &a.RollEnable }),
	wpml.Float("gimbalRollRotateAngle", func(a *GimbalRotate) *float64 { return &a.Roll }),
	wpml.Flag("gimbalYawRotateEnable", func(a *GimbalRotate) *bool { return &a.YawEnable }),
	wpml.Float("gimbalYawRotateAngle", func(a *GimbalRotate) *float64 { return &a.Yaw }),
	wpml.Flag("gimbalRotateTimeEnable", func(a *GimbalRotate) *bool { return &a.TimeEnable }),
	wpml.Float("gimbalRotateTime", func(a *GimbalRotate) *float64 { return &a.Time }, wpml.AtLeast(0)),
	wpml.Enum("gimbalHeadingYawBase", YawBases, func(a *GimbalRotate) *YawBase { return &a.YawBase }),
)

// GimbalEvenlyRotate pitches the gimbal evenly while flying to the next
// waypoint.
type GimbalEvenlyRotate struct {
	Header
	PayloadPositionIndex int
	Pitch                float64
}

func (GimbalEvenlyRotate) Kind() Kind             { return KindGimbalEvenlyRotate }
func (a GimbalEvenlyRotate) WithID(id int) Action { a.ID = id; return a }

var GimbalEvenlyRotateSchema = wpml.NewSchema[GimbalEvenlyRotate]("gimbalEvenlyRotate", nil,
	wpml.Int("payloadPositionIndex", func(a *GimbalEvenlyRotate) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.Float("gimbalPitchRotateAngle", func(a *GimbalEvenlyRotate) *float64 { return &a.Pitch }),
)
