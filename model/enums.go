package model

import (
	"strconv"

	"github.com/reoring/wpml"
)

// CoordinateMode is the horizontal datum.
type CoordinateMode string

const WGS84 CoordinateMode = "WGS84"

func (m CoordinateMode) String() string { return string(m) }

var CoordinateModes = wpml.NewVocabulary("coordinateMode", WGS84)

// HeightMode is the reference of waypoint heights.
type HeightMode string

const (
	HeightEGM96                 HeightMode = "EGM96"
	HeightRelativeToStartPoint  HeightMode = "relativeToStartPoint"
	HeightAboveGroundLevel      HeightMode = "aboveGroundLevel"
	HeightRealTimeFollowSurface HeightMode = "realTimeFollowSurface"
)

func (m HeightMode) String() string { return string(m) }

var HeightModes = wpml.NewVocabulary("heightMode", HeightEGM96, HeightRelativeToStartPoint, HeightAboveGroundLevel, HeightRealTimeFollowSurface)

// PositioningType is the positioning source.
type PositioningType string

const (
	PositioningGPS            PositioningType = "GPS"
	PositioningRTKBaseStation PositioningType = "RTKBaseStation"
	PositioningQianXun        PositioningType = "QianXun"
	PositioningCustom         PositioningType = "Custom"
)

func (p PositioningType) String() string { return string(p) }

var PositioningTypes = wpml.NewVocabulary("positioningType", PositioningGPS, PositioningRTKBaseStation, PositioningQianXun, PositioningCustom)

// TurnMode is the way the aircraft passes a waypoint.
type TurnMode string

const (
	CoordinateTurn        TurnMode = "coordinateTurn"
	TurnAtPoint           TurnMode = "toPointAndStopWithDiscontinuityCurvature"
	TurnCurvedWithoutStop TurnMode = "toPointAndPassWithContinuityCurvature"
	TurnCurvedWithStop    TurnMode = "toPointAndStopWithContinuityCurvature"
)

func (m TurnMode) String() string { return string(m) }

var TurnModes = wpml.NewVocabulary("waypointTurnMode", CoordinateTurn, TurnAtPoint, TurnCurvedWithoutStop, TurnCurvedWithStop)

// HeadingMode controls the aircraft yaw between waypoints.
type HeadingMode string

const (
	HeadingFollowWayline    HeadingMode = "followWayline"
	HeadingManually         HeadingMode = "manually"
	HeadingFixed            HeadingMode = "fixed"
	HeadingSmoothTransition HeadingMode = "smoothTransition"
	HeadingTowardPOI        HeadingMode = "towardPOI"
)

func (m HeadingMode) String() string { return string(m) }

var HeadingModes = wpml.NewVocabulary("waypointHeadingMode", HeadingFollowWayline, HeadingManually, HeadingFixed, HeadingSmoothTransition, HeadingTowardPOI)

// HeadingPathMode is the rotation direction used to reach a heading.
type HeadingPathMode string

const (
	PathClockwise        HeadingPathMode = "clockwise"
	PathCounterClockwise HeadingPathMode = "counterClockwise"
	PathFollowBadArc     HeadingPathMode = "followBadArc"
)

func (m HeadingPathMode) String() string { return string(m) }

var HeadingPathModes = wpml.NewVocabulary("waypointHeadingPathMode", PathClockwise, PathCounterClockwise, PathFollowBadArc)

// TriggerType is the condition that fires an action group.
type TriggerType string

const (
	TriggerReachPoint       TriggerType = "reachPoint"
	TriggerBetweenPoints    TriggerType = "betweenAdjacentPoints"
	TriggerMultipleTiming   TriggerType = "multipleTiming"
	TriggerMultipleDistance TriggerType = "multipleDistance"
)

func (t TriggerType) String() string { return string(t) }

var TriggerTypes = wpml.NewVocabulary("actionTriggerType", TriggerReachPoint, TriggerBetweenPoints, TriggerMultipleTiming, TriggerMultipleDistance)

// GroupMode is the execution mode of an action group.
type GroupMode string

const GroupSequence GroupMode = "sequence"

func (m GroupMode) String() string { return string(m) }

var GroupModes = wpml.NewVocabulary("actionGroupMode", GroupSequence)

// FlyToWaylineMode is how the aircraft reaches the first waypoint.
type FlyToWaylineMode string

const (
	FlySafely       FlyToWaylineMode = "safely"
	FlyPointToPoint FlyToWaylineMode = "pointToPoint"
)

func (m FlyToWaylineMode) String() string { return string(m) }

var FlyToWaylineModes = wpml.NewVocabulary("flyToWaylineMode", FlySafely, FlyPointToPoint)

// FinishAction runs when the mission completes.
type FinishAction string

const (
	FinishGoHome            FinishAction = "goHome"
	FinishAutoLand          FinishAction = "autoLand"
	FinishGotoFirstWaypoint FinishAction = "gotoFirstWaypoint"
	FinishNoAction          FinishAction = "noAction"
)

func (a FinishAction) String() string { return string(a) }

var FinishActions = wpml.NewVocabulary("finishAction", FinishGoHome, FinishAutoLand, FinishGotoFirstWaypoint, FinishNoAction)

// RCLostAction is the behaviour after losing the remote controller signal.
// Except for RCLostContinue it is written as executeRCLostAction.
type RCLostAction string

const (
	RCLostContinue RCLostAction = "goContinue"
	RCLostHover    RCLostAction = "hover"
	RCLostGoBack   RCLostAction = "goBack"
	RCLostLanding  RCLostAction = "landing"
)

func (a RCLostAction) String() string { return string(a) }

var RCLostActions = wpml.NewVocabulary("executeRCLostAction", RCLostContinue, RCLostHover, RCLostGoBack, RCLostLanding)

// ExitOnRCLost is the wire-level switch derived from RCLostAction.
type ExitOnRCLost string

const (
	ExitGoContinue        ExitOnRCLost = "goContinue"
	ExitExecuteLostAction ExitOnRCLost = "executeLostAction"
)

func (e ExitOnRCLost) String() string { return string(e) }

var ExitOnRCLostModes = wpml.NewVocabulary("exitOnRCLost", ExitGoContinue, ExitExecuteLostAction)

// GimbalPitchMode selects where gimbal pitch comes from.
type GimbalPitchMode string

const (
	GimbalPitchManual          GimbalPitchMode = "manual"
	GimbalPitchUsePointSetting GimbalPitchMode = "usePointSetting"
)

func (m GimbalPitchMode) String() string { return string(m) }

var GimbalPitchModes = wpml.NewVocabulary("gimbalPitchMode", GimbalPitchManual, GimbalPitchUsePointSetting)

// TemplateType is the mission template kind.
type TemplateType string

const TemplateWaypoint TemplateType = "waypoint"

func (t TemplateType) String() string { return string(t) }

var TemplateTypes = wpml.NewVocabulary("templateType", TemplateWaypoint)

// DroneModel identifies the aircraft. It is written as a pair of numeric
// codes, see DroneCodes.
type DroneModel string

const (
	DroneM350 DroneModel = "M350"
	DroneM300 DroneModel = "M300"
	DroneM30  DroneModel = "M30"
	DroneM30T DroneModel = "M30T"
	DroneM3E  DroneModel = "M3E"
	DroneM3T  DroneModel = "M3T"
	DroneM3M  DroneModel = "M3M"
	DroneM3D  DroneModel = "M3D"
	DroneM3TD DroneModel = "M3TD"
)

func (m DroneModel) String() string { return string(m) }

var DroneModels = wpml.NewVocabulary("droneModel", DroneM350, DroneM300, DroneM30, DroneM30T, DroneM3E, DroneM3T, DroneM3M, DroneM3D, DroneM3TD)

// DroneCode is the numeric identity of a drone model. Sub is nil for models
// without variants.
type DroneCode struct {
	Enum int
	Sub  *int
}

func sub(n int) *int { return &n }

// DroneCodes maps each model to its numeric codes.
var DroneCodes = map[DroneModel]DroneCode{
	DroneM350: {Enum: 89},
	DroneM300: {Enum: 60},
	DroneM30:  {Enum: 67, Sub: sub(0)},
	DroneM30T: {Enum: 67, Sub: sub(1)},
	DroneM3E:  {Enum: 77, Sub: sub(0)},
	DroneM3T:  {Enum: 77, Sub: sub(1)},
	DroneM3M:  {Enum: 77, Sub: sub(2)},
	DroneM3D:  {Enum: 91, Sub: sub(0)},
	DroneM3TD: {Enum: 91, Sub: sub(1)},
}

// DroneFromCodes finds the model for a code pair. A model without variants
// matches any sub code.
func DroneFromCodes(enum int, subEnum *int) (DroneModel, bool) {
	for _, m := range DroneModels.Values() {
		c := DroneCodes[m]
		if c.Enum != enum {
			continue
		}
		if c.Sub == nil || (subEnum != nil && *c.Sub == *subEnum) {
			return m, true
		}
	}
	return "", false
}

// PayloadModel is the camera payload code.
type PayloadModel int

const (
	PayloadH20  PayloadModel = 42
	PayloadH20T PayloadModel = 43
	PayloadP1   PayloadModel = 50
	PayloadM30  PayloadModel = 52
	PayloadM30T PayloadModel = 53
	PayloadH20N PayloadModel = 61
	PayloadM3E  PayloadModel = 66
	PayloadM3T  PayloadModel = 67
	PayloadM3M  PayloadModel = 68
	PayloadM3D  PayloadModel = 80
	PayloadM3TD PayloadModel = 81
	PayloadH30  PayloadModel = 82
	PayloadH30T PayloadModel = 83
	PayloadPSDK PayloadModel = 65534
)

func (p PayloadModel) String() string { return strconv.Itoa(int(p)) }

var PayloadModels = wpml.NewVocabulary("payloadEnumValue",
	PayloadH20, PayloadH20T, PayloadP1, PayloadM30, PayloadM30T, PayloadH20N, PayloadM3E,
	PayloadM3T, PayloadM3M, PayloadM3D, PayloadM3TD, PayloadH30, PayloadH30T, PayloadPSDK)
