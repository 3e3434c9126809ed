package model

import (
	"strconv"

	"github.com/reoring/wpml"
)

// DroneInfo names the aircraft. Only the numeric codes derived from Model
// are written.
type DroneInfo struct {
	Model DroneModel
}

// Code returns the numeric codes of the model.
func (d DroneInfo) Code() DroneCode { return DroneCodes[d.Model] }

var DroneInfoSchema = wpml.NewSchema("droneInfo",
	func() DroneInfo { return DroneInfo{Model: DroneM350} },
	wpml.Computed("droneEnumValue", func(d *DroneInfo) (any, bool) { return d.Code().Enum, true }),
	wpml.Computed("droneSubEnumValue", func(d *DroneInfo) (any, bool) {
		if s := d.Code().Sub; s != nil {
			return *s, true
		}
		return nil, false
	}),
).Hydrate(func(d *DroneInfo, m *wpml.OrderedMap) error {
	raw, ok := m.Lookup("droneEnumValue")
	if !ok {
		return wpml.Issues{wpml.RequiredIssue("droneEnumValue", "")}
	}
	enum, err := wpml.ToInt(raw)
	if err != nil {
		return wpml.DecodeIssue("droneEnumValue", raw, err)
	}
	var subEnum *int
	if raw, ok := m.Lookup("droneSubEnumValue"); ok {
		n, err := wpml.ToInt(raw)
		if err != nil {
			return wpml.DecodeIssue("droneSubEnumValue", raw, err)
		}
		subEnum = &n
	}
	model, ok := DroneFromCodes(enum, subEnum)
	if !ok {
		return wpml.DecodeIssue("droneEnumValue", raw, &wpml.UnknownVariantError{Enum: DroneModels.Name(), Given: codeString(enum, subEnum), Expected: DroneModels.Tokens()})
	}
	d.Model = model
	return nil
}).Rule(func(d *DroneInfo, _ wpml.PresenceMap) wpml.Issues {
	return member("droneModel", DroneModels, d.Model)
})

func codeString(enum int, subEnum *int) string {
	s := strconv.Itoa(enum)
	if subEnum != nil {
		s += "/" + strconv.Itoa(*subEnum)
	}
	return s
}

// PayloadInfo names the camera payload and its mount position.
type PayloadInfo struct {
	Model         PayloadModel
	PositionIndex int
}

var PayloadInfoSchema = wpml.NewSchema("payloadInfo",
	func() PayloadInfo { return PayloadInfo{Model: PayloadM3M} },
	wpml.Enum("payloadEnumValue", PayloadModels, func(p *PayloadInfo) *PayloadModel { return &p.Model }),
	wpml.Int("payloadPositionIndex", func(p *PayloadInfo) *int { return &p.PositionIndex }, wpml.Between(0, 2)),
)

// MissionConfig is the mission-wide configuration block.
type MissionConfig struct {
	FlyToWayline          FlyToWaylineMode
	Finish                FinishAction
	RCLost                RCLostAction
	TakeOffSecurityHeight float64
	TakeOffRefPoint       *POIPoint
	TakeOffRefAGLHeight   *float64
	Drone                 *DroneInfo
	Payload               *PayloadInfo
}

// DefaultMissionConfig returns the configuration used for absent fields.
func DefaultMissionConfig() MissionConfig {
	return MissionConfig{
		FlyToWayline:          FlySafely,
		Finish:                FinishGoHome,
		RCLost:                RCLostContinue,
		TakeOffSecurityHeight: 1.2,
	}
}

// ExitOnRCLost derives the wire switch from RCLost.
func (c MissionConfig) ExitOnRCLost() ExitOnRCLost {
	if c.RCLost == RCLostContinue {
		return ExitGoContinue
	}
	return ExitExecuteLostAction
}

// legacyHover is the token older writers used for RCLostHover.
const legacyHover = "handover"

var MissionConfigSchema = wpml.NewSchema("missionConfig", DefaultMissionConfig,
	wpml.Enum("flyToWaylineMode", FlyToWaylineModes, func(c *MissionConfig) *FlyToWaylineMode { return &c.FlyToWayline }),
	wpml.Enum("finishAction", FinishActions, func(c *MissionConfig) *FinishAction { return &c.Finish }),
	wpml.Computed("exitOnRCLost", func(c *MissionConfig) (any, bool) { return c.ExitOnRCLost().String(), true }),
	wpml.Computed("executeRCLostAction", func(c *MissionConfig) (any, bool) {
		if c.ExitOnRCLost() == ExitGoContinue {
			return nil, false
		}
		return c.RCLost.String(), true
	}),
	wpml.Float("takeOffSecurityHeight", func(c *MissionConfig) *float64 { return &c.TakeOffSecurityHeight }, wpml.Between(1.2, 1500)),
	wpml.Custom("takeOffRefPoint",
		func(c *MissionConfig) (any, bool) {
			if c.TakeOffRefPoint == nil {
				return nil, false
			}
			return c.TakeOffRefPoint.String(), true
		},
		func(c *MissionConfig, raw any) error {
			s, err := wpml.ToString(raw)
			if err != nil {
				return err
			}
			p, err := ParsePOI(s)
			if err != nil {
				return err
			}
			c.TakeOffRefPoint = &p
			return nil
		},
		func(c *MissionConfig) wpml.Issues { return checkPOI("/takeOffRefPoint", c.TakeOffRefPoint) },
	).Alias("refTakeOffPoint"),
	wpml.OptFloat("takeOffRefPointAGLHeight", func(c *MissionConfig) **float64 { return &c.TakeOffRefAGLHeight }),
	wpml.OptRecord("droneInfo", DroneInfoSchema, func(c *MissionConfig) **DroneInfo { return &c.Drone }),
	wpml.OptRecord("payloadInfo", PayloadInfoSchema, func(c *MissionConfig) **PayloadInfo { return &c.Payload }),
).Hydrate(func(c *MissionConfig, m *wpml.OrderedMap) error {
	raw, ok := m.Lookup("exitOnRCLost")
	if !ok {
		return nil
	}
	exit, err := wpml.ToString(raw)
	if err == nil {
		var mode ExitOnRCLost
		mode, err = ExitOnRCLostModes.Parse(exit)
		if err == nil && mode == ExitGoContinue {
			c.RCLost = RCLostContinue
			return nil
		}
	}
	if err != nil {
		return wpml.DecodeIssue("exitOnRCLost", raw, err)
	}
	raw, ok = m.Lookup("executeRCLostAction")
	if !ok {
		return wpml.Issues{wpml.RequiredIssue("executeRCLostAction", "exitOnRCLost is executeLostAction")}
	}
	token, err := wpml.ToString(raw)
	if err != nil {
		return wpml.DecodeIssue("executeRCLostAction", raw, err)
	}
	if token == legacyHover {
		token = RCLostHover.String()
	}
	a, err := RCLostActions.Parse(token)
	if err != nil {
		return wpml.DecodeIssue("executeRCLostAction", raw, err)
	}
	if a == RCLostContinue {
		return wpml.Issues{wpml.ConstraintIssue("executeRCLostAction", "a lost action other than goContinue", map[string]any{"got": token})}
	}
	c.RCLost = a
	return nil
}).Rule(func(c *MissionConfig, _ wpml.PresenceMap) wpml.Issues {
	return member("executeRCLostAction", RCLostActions, c.RCLost)
})

// Check validates c.
func (c MissionConfig) Check() (MissionConfig, error) { return MissionConfigSchema.Check(c) }

// member reports e as an unknown token when it is not part of v. It guards
// enum values that only reach the wire through computed fields.
func member[E wpml.Token](field string, v *wpml.Vocabulary[E], e E) wpml.Issues {
	if v.Contains(e) {
		return nil
	}
	return wpml.DecodeIssue(field, e.String(), &wpml.UnknownVariantError{Enum: v.Name(), Given: e.String(), Expected: v.Tokens()})
}
