package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides the placeholders embedded in the message ("field", "range",
// "got", "expected", "when", "rule", "type", "format").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"out_of_range":         "{field} must be {range} (got {got})",
		"constraint_violation": "{field} must be {rule}",
		"required":             "{field} is required{when}",
		"invalid_enum":         "{field}: unknown token {got} (expected one of: {expected})",
		"invalid_type":         "{field}: cannot read {got} as {type}",
		"structural_mismatch":  "{field}: {got} does not match {format}",
		"duplicate_key":        "{field} appears more than once",
	},
	"ja": {
		"out_of_range":         "{field} は {range} の範囲で指定してください (値: {got})",
		"constraint_violation": "{field} は {rule} である必要があります",
		"required":             "{field} は必須です{when}",
		"invalid_enum":         "{field}: 未知のトークン {got} (有効値: {expected})",
		"invalid_type":         "{field}: {got} を {type} として解釈できません",
		"structural_mismatch":  "{field}: {got} は形式 {format} に一致しません",
		"duplicate_key":        "{field} が重複しています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	tmpl, ok := dict[code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {key} placeholders; unknown keys expand to "".
func expand(tmpl string, data map[string]string) string {
	b := &strings.Builder{}
	rest := tmpl
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			b.WriteString(rest)
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(data[rest[i+1:i+j]])
		rest = rest[i+j+1:]
	}
	return b.String()
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Call it during startup, before records are validated concurrently.
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
