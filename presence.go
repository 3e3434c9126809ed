package wpml

// Presence is the bit flag collected while decoding a record.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceDefaultApplied                      // Default value was kept.
)

// PresenceMap maps wire names to Presence flags for a single record.
// A nil map means the record was built directly in Go and every field counts as
// seen.
type PresenceMap map[string]Presence

// Seen reports whether the wire field appeared in the input.
func (pm PresenceMap) Seen(wire string) bool {
	if pm == nil {
		return true
	}
	return pm[wire]&PresenceSeen != 0
}

// Defaulted reports whether the wire field kept its schema default.
func (pm PresenceMap) Defaulted(wire string) bool {
	if pm == nil {
		return false
	}
	return pm[wire]&PresenceDefaultApplied != 0
}
