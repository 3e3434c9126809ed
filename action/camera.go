package action

import "github.com/reoring/wpml"

// TakePhoto captures a single photo.
type TakePhoto struct {
	Header
	PayloadPositionIndex int
	FileSuffix           string
	Lens                 *Lens
	UseGlobalLens        bool
}

func (TakePhoto) Kind() Kind             { return KindTakePhoto }
func (a TakePhoto) WithID(id int) Action { a.ID = id; return a }

var TakePhotoSchema = wpml.NewSchema[TakePhoto]("takePhoto", nil,
	wpml.Int("payloadPositionIndex", func(a *TakePhoto) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.String("fileSuffix", func(a *TakePhoto) *string { return &a.FileSuffix }),
	wpml.OptEnum("payloadLensIndex", Lenses, func(a *TakePhoto) **Lens { return &a.Lens }),
	wpml.Flag("useGlobalPayloadLensIndex", func(a *TakePhoto) *bool { return &a.UseGlobalLens }),
)

// Focus sets the camera focus point or region.
type Focus struct {
	Header
	PayloadPositionIndex int
	PointFocus           bool
	X, Y                 float64
	RegionWidth          float64
	RegionHeight         float64
	InfiniteFocus        bool
}

func (Focus) Kind() Kind             { return KindFocus }
func (a Focus) WithID(id int) Action { a.ID = id; return a }

var unitBounds = wpml.Between(0, 1)

var FocusSchema = wpml.NewSchema("focus",
	func() Focus { return Focus{X: 0.4, Y: 0.4, RegionWidth: 0.2, RegionHeight: 0.2} },
	wpml.Int("payloadPositionIndex", func(a *Focus) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.Flag("isPointFocus", func(a *Focus) *bool { return &a.PointFocus }),
	wpml.Float("focusX", func(a *Focus) *float64 { return &a.X }, unitBounds),
	wpml.Float("focusY", func(a *Focus) *float64 { return &a.Y }, unitBounds),
	wpml.Float("focusRegionWidth", func(a *Focus) *float64 { return &a.RegionWidth }, unitBounds),
	wpml.Float("focusRegionHeight", func(a *Focus) *float64 { return &a.RegionHeight }, unitBounds),
	wpml.Flag("isInfiniteFocus", func(a *Focus) *bool { return &a.InfiniteFocus }),
)

// Zoom sets the focal length.
type Zoom struct {
	Header
	PayloadPositionIndex int
	FocalLength          float64
}

func (Zoom) Kind() Kind             { return KindZoom }
func (a Zoom) WithID(id int) Action { a.ID = id; return a }

var ZoomSchema = wpml.NewSchema("zoom",
	func() Zoom { return Zoom{FocalLength: 24} },
	wpml.Int("payloadPositionIndex", func(a *Zoom) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.Float("focalLength", func(a *Zoom) *float64 { return &a.FocalLength }, wpml.Between(24, 240)),
)

// PanoShot captures a panorama.
type PanoShot struct {
	Header
	PayloadPositionIndex int
	Lens                 *Lens
	UseGlobalLens        bool
	Mode                 PanoMode
}

func (PanoShot) Kind() Kind             { return KindPanoShot }
func (a PanoShot) WithID(id int) Action { a.ID = id; return a }

var PanoShotSchema = wpml.NewSchema("panoShot",
	func() PanoShot { return PanoShot{Mode: Pano360} },
	wpml.Int("payloadPositionIndex", func(a *PanoShot) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.OptEnum("payloadLensIndex", Lenses, func(a *PanoShot) **Lens { return &a.Lens }),
	wpml.Flag("useGlobalPayloadLensIndex", func(a *PanoShot) *bool { return &a.UseGlobalLens }),
	wpml.Enum("panoShotSubMode", PanoModes, func(a *PanoShot) *PanoMode { return &a.Mode }),
)

// RecordPointCloud controls lidar point cloud recording.
type RecordPointCloud struct {
	Header
	PayloadPositionIndex int
	Operation            PointCloudOp
}

func (RecordPointCloud) Kind() Kind             { return KindRecordPointCloud }
func (a RecordPointCloud) WithID(id int) Action { a.ID = id; return a }

var RecordPointCloudSchema = wpml.NewSchema("recordPointCloud",
	func() RecordPointCloud { return RecordPointCloud{Operation: PointCloudStart} },
	wpml.Int("payloadPositionIndex", func(a *RecordPointCloud) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.Enum("recordPointCloudOperate", PointCloudOps, func(a *RecordPointCloud) *PointCloudOp { return &a.Operation }),
)
