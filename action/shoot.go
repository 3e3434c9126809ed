package action

import "github.com/reoring/wpml"

// ShootParams is the parameter block shared by AccurateShoot and
// OrientedShoot. The camera and file fields after GimbalPort are written with
// the kind's prefix (accurateCameraType, orientedCameraType, ...). Their
// meaning and defaults are not documented by the vendor, so they stay
// optional and are only range-checked where a range is known.
type ShootParams struct {
	GimbalPitch          float64
	GimbalYaw            float64
	FocusX               int
	FocusY               int
	FocusRegionWidth     int
	FocusRegionHeight    int
	FocalLength          float64
	AircraftHeading      float64
	FrameValid           bool
	PayloadPositionIndex int
	Lens                 *Lens
	UseGlobalLens        bool
	TargetAngle          float64
	ImageWidth           int
	ImageHeight          int
	AFPos                *int
	GimbalPort           int
	CameraType           int
	FilePath             *string
	FileMD5              *string
	FileSize             *int
	FileSuffix           string
	Aperture             *int
	Luminance            *int
	ShutterTime          *float64
	ISO                  *int
}

// Frame size of the focus coordinates.
const (
	FrameWidth  = 960
	FrameHeight = 720
)

// DefaultShootParams centres a 40x40 focus region in the frame.
func DefaultShootParams() ShootParams {
	return ShootParams{
		FocusX:            FrameWidth/2 - 20,
		FocusY:            FrameHeight/2 - 20,
		FocusRegionWidth:  40,
		FocusRegionHeight: 40,
		FocalLength:       24,
		ImageWidth:        FrameWidth,
		ImageHeight:       FrameHeight,
		CameraType:        52,
	}
}

func shootHead[A any](sp func(*A) *ShootParams) []wpml.Field[A] {
	return []wpml.Field[A]{
		wpml.Float("gimbalPitchRotateAngle", func(a *A) *float64 { return &sp(a).GimbalPitch }, wpml.Between(-120, 45)),
		wpml.Float("gimbalYawRotateAngle", func(a *A) *float64 { return &sp(a).GimbalYaw }, wpml.Between(-180, 180)),
		wpml.Int("focusX", func(a *A) *int { return &sp(a).FocusX }, wpml.Between(0, FrameWidth)),
		wpml.Int("focusY", func(a *A) *int { return &sp(a).FocusY }, wpml.Between(0, FrameHeight)),
		wpml.Int("focusRegionWidth", func(a *A) *int { return &sp(a).FocusRegionWidth }, wpml.Between(0, FrameWidth)),
		wpml.Int("focusRegionHeight", func(a *A) *int { return &sp(a).FocusRegionHeight }, wpml.Between(0, FrameHeight)),
		wpml.Float("focalLength", func(a *A) *float64 { return &sp(a).FocalLength }, wpml.AtLeast(0)),
		wpml.Float("aircraftHeading", func(a *A) *float64 { return &sp(a).AircraftHeading }, wpml.Between(-180, 180)),
		wpml.Flag("accurateFrameValid", func(a *A) *bool { return &sp(a).FrameValid }),
		wpml.Int("payloadPositionIndex", func(a *A) *int { return &sp(a).PayloadPositionIndex }, positionBounds),
		wpml.OptEnum("payloadLensIndex", Lenses, func(a *A) **Lens { return &sp(a).Lens }),
		wpml.Flag("useGlobalPayloadLensIndex", func(a *A) *bool { return &sp(a).UseGlobalLens }),
		wpml.Float("targetAngle", func(a *A) *float64 { return &sp(a).TargetAngle }, wpml.Between(0, 360)),
	}
}

func shootTail[A any](prefix string, sp func(*A) *ShootParams) []wpml.Field[A] {
	return []wpml.Field[A]{
		wpml.Int("imageWidth", func(a *A) *int { return &sp(a).ImageWidth }, wpml.Between(FrameWidth, FrameWidth)),
		wpml.Int("imageHeight", func(a *A) *int { return &sp(a).ImageHeight }, wpml.Between(FrameHeight, FrameHeight)),
		wpml.OptInt("AFPos", func(a *A) **int { return &sp(a).AFPos }),
		wpml.Int("gimbalPort", func(a *A) *int { return &sp(a).GimbalPort }, wpml.Between(0, 0)),
		wpml.Int(prefix+"CameraType", func(a *A) *int { return &sp(a).CameraType }, wpml.Between(0, 100)),
		wpml.OptString(prefix+"FilePath", func(a *A) **string { return &sp(a).FilePath }),
		wpml.OptString(prefix+"FileMD5", func(a *A) **string { return &sp(a).FileMD5 }),
		wpml.OptInt(prefix+"FileSize", func(a *A) **int { return &sp(a).FileSize }, wpml.AtLeast(0)),
		wpml.String(prefix+"FileSuffix", func(a *A) *string { return &sp(a).FileSuffix }),
		wpml.OptInt(prefix+"CameraApertue", func(a *A) **int { return &sp(a).Aperture }),
		wpml.OptInt(prefix+"CameraLuminance", func(a *A) **int { return &sp(a).Luminance }),
		wpml.OptFloat(prefix+"CameraShutterTime", func(a *A) **float64 { return &sp(a).ShutterTime }),
		wpml.OptInt(prefix+"CameraISO", func(a *A) **int { return &sp(a).ISO }),
	}
}

// AccurateShoot is the legacy precise capture action; new missions should
// use OrientedShoot.
type AccurateShoot struct {
	Header
	ShootParams
}

func (AccurateShoot) Kind() Kind             { return KindAccurateShoot }
func (a AccurateShoot) WithID(id int) Action { a.ID = id; return a }

var AccurateShootSchema = func() *wpml.Schema[AccurateShoot] {
	sp := func(a *AccurateShoot) *ShootParams { return &a.ShootParams }
	fields := append(shootHead(sp), shootTail("accurate", sp)...)
	return wpml.NewSchema("accurateShoot",
		func() AccurateShoot { return AccurateShoot{ShootParams: DefaultShootParams()} },
		fields...)
}()

// OrientedShoot captures a photo at a fixed gimbal orientation.
type OrientedShoot struct {
	Header
	ShootParams
	UUID      *string
	PhotoMode PhotoMode
}

func (OrientedShoot) Kind() Kind             { return KindOrientedShoot }
func (a OrientedShoot) WithID(id int) Action { a.ID = id; return a }

var OrientedShootSchema = func() *wpml.Schema[OrientedShoot] {
	sp := func(a *OrientedShoot) *ShootParams { return &a.ShootParams }
	fields := shootHead(sp)
	fields = append(fields, wpml.OptString("actionUUID", func(a *OrientedShoot) **string { return &a.UUID }))
	fields = append(fields, shootTail("oriented", sp)...)
	fields = append(fields, wpml.Enum("orientedPhotoMode", PhotoModes, func(a *OrientedShoot) *PhotoMode { return &a.PhotoMode }))
	return wpml.NewSchema("orientedShoot",
		func() OrientedShoot { return OrientedShoot{ShootParams: DefaultShootParams(), PhotoMode: PhotoNormal} },
		fields...)
}()
