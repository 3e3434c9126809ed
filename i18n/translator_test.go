package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"field": "hoverTime", "range": "> 0", "got": "0"}

	assert.Equal(t, "hoverTime must be > 0 (got 0)", T("out_of_range", data))

	SetLanguage("ja")
	msg := T("out_of_range", data)
	assert.Contains(t, msg, "hoverTime")
	assert.NotEqual(t, "hoverTime must be > 0 (got 0)", msg)

	// reset to en
	SetLanguage("en")
}

func TestTranslator_MissingPlaceholdersAndUnknownCode(t *testing.T) {
	assert.Equal(t, "waypointTurnDampingDist is required", T("required", map[string]string{"field": "waypointTurnDampingDist"}))
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

func TestTranslator_ValuesAreNotReexpanded(t *testing.T) {
	got := T("invalid_type", map[string]string{"field": "f", "got": `"{field}"`, "type": "int"})
	assert.Equal(t, `f: cannot read "{field}" as int`, got)
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	assert.Equal(t, "X:required", T("required", nil))
	SetTranslator(nil)
	assert.Equal(t, " is required", T("required", nil))
}
