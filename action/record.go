package action

import "github.com/reoring/wpml"

// StartRecord starts video recording.
type StartRecord struct {
	Header
	PayloadPositionIndex int
	Lens                 *Lens
	FileSuffix           *string
	UseGlobalLens        bool
}

func (StartRecord) Kind() Kind             { return KindStartRecord }
func (a StartRecord) WithID(id int) Action { a.ID = id; return a }

var StartRecordSchema = wpml.NewSchema[StartRecord]("startRecord", nil,
	wpml.Int("payloadPositionIndex", func(a *StartRecord) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.OptEnum("payloadLens", Lenses, func(a *StartRecord) **Lens { return &a.Lens }),
	wpml.OptString("fileSuffix", func(a *StartRecord) **string { return &a.FileSuffix }),
	wpml.Flag("useGlobalPayloadLensIndex", func(a *StartRecord) *bool { return &a.UseGlobalLens }),
)

// StopRecord stops video recording.
type StopRecord struct {
	Header
	PayloadPositionIndex int
	Lens                 *Lens
}

func (StopRecord) Kind() Kind             { return KindStopRecord }
func (a StopRecord) WithID(id int) Action { a.ID = id; return a }

var StopRecordSchema = wpml.NewSchema[StopRecord]("stopRecord", nil,
	wpml.Int("payloadPositionIndex", func(a *StopRecord) *int { return &a.PayloadPositionIndex }, positionBounds),
	wpml.OptEnum("payloadLens", Lenses, func(a *StopRecord) **Lens { return &a.Lens }),
)
