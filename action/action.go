// Package action holds the action variants a waypoint can execute and the
// Registry that maps each variant to its kind tag on the wire.
package action

import "github.com/reoring/wpml"

// Kind is the action tag written as actionActuatorFunc.
type Kind string

func (k Kind) String() string { return string(k) }

// Built-in kinds.
const (
	KindTakePhoto          Kind = "takePhoto"
	KindStartRecord        Kind = "startRecord"
	KindStopRecord         Kind = "stopRecord"
	KindGimbalRotate       Kind = "gimbalRotate"
	KindGimbalEvenlyRotate Kind = "gimbalEvenlyRotate"
	KindHover              Kind = "hover"
	KindRotateYaw          Kind = "rotateYaw"
	KindFocus              Kind = "focus"
	KindZoom               Kind = "zoom"
	KindAccurateShoot      Kind = "accurateShoot"
	KindOrientedShoot      Kind = "orientedShoot"
	KindPanoShot           Kind = "panoShot"
	KindRecordPointCloud   Kind = "recordPointCloud"
)

// Action is one operation inside an action group. The kind is a property of
// the concrete type and cannot be changed on a value.
type Action interface {
	Kind() Kind
	ActionID() int
	// WithID returns a copy carrying id.
	WithID(id int) Action
}

// Header holds the fields shared by every action. Everything else is a
// parameter.
type Header struct {
	ID int
}

// ActionID returns the action id.
func (h Header) ActionID() int { return h.ID }

// Wire names of the header block.
const (
	WireID     = "actionId"
	WireKind   = "actionActuatorFunc"
	WireParams = "actionActuatorFuncParam"
)

// IDBounds is the accepted range of action ids.
var IDBounds = wpml.Between(0, 65535)

var positionBounds = wpml.Between(0, 2)

// Lens selects a camera lens.
type Lens string

const (
	LensZoom       Lens = "zoom"
	LensWide       Lens = "wide"
	LensIR         Lens = "ir"
	LensNarrowBand Lens = "narrow_band"
	LensVisable    Lens = "visable"
)

func (l Lens) String() string { return string(l) }

// Lenses is the lens vocabulary.
var Lenses = wpml.NewVocabulary("payloadLensIndex", LensZoom, LensWide, LensIR, LensNarrowBand, LensVisable)

// LensPtr returns a pointer to l for optional lens fields.
func LensPtr(l Lens) *Lens { return &l }

// GimbalRotateMode is the gimbal rotation reference.
type GimbalRotateMode string

const GimbalAbsoluteAngle GimbalRotateMode = "absoluteAngle"

func (m GimbalRotateMode) String() string { return string(m) }

var GimbalRotateModes = wpml.NewVocabulary("gimbalRotateMode", GimbalAbsoluteAngle)

// YawBase is the reference for gimbal yaw angles.
type YawBase string

const YawBaseNorth YawBase = "north"

func (b YawBase) String() string { return string(b) }

var YawBases = wpml.NewVocabulary("gimbalHeadingYawBase", YawBaseNorth)

// Direction is the aircraft rotation direction.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterClockwise"
)

func (d Direction) String() string { return string(d) }

var Directions = wpml.NewVocabulary("aircraftPathMode", Clockwise, CounterClockwise)

// PhotoMode selects the oriented shoot capture mode.
type PhotoMode string

const (
	PhotoNormal        PhotoMode = "normalPhoto"
	PhotoLowLightSmart PhotoMode = "lowLightSmartShooting"
)

func (m PhotoMode) String() string { return string(m) }

var PhotoModes = wpml.NewVocabulary("orientedPhotoMode", PhotoNormal, PhotoLowLightSmart)

// PanoMode selects the panorama type.
type PanoMode string

const Pano360 PanoMode = "panoShot_360"

func (m PanoMode) String() string { return string(m) }

var PanoModes = wpml.NewVocabulary("panoShotSubMode", Pano360)

// PointCloudOp controls point cloud recording.
type PointCloudOp string

const (
	PointCloudStart  PointCloudOp = "startRecord"
	PointCloudStop   PointCloudOp = "stopRecord"
	PointCloudPause  PointCloudOp = "pauseRecord"
	PointCloudResume PointCloudOp = "resumeRecord"
)

func (o PointCloudOp) String() string { return string(o) }

var PointCloudOps = wpml.NewVocabulary("recordPointCloudOperate", PointCloudStart, PointCloudStop, PointCloudPause, PointCloudResume)
