package wpml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scalar values arrive either typed (built in Go, JSON, YAML) or as raw text
// read from markup. The helpers below accept both.

type typeError struct {
	want string
	got  any
}

func (e *typeError) Error() string {
	return fmt.Sprintf("wpml: cannot read %v (%T) as %s", e.got, e.got, e.want)
}

type coordinateError struct {
	text   string
	format string
}

func (e *coordinateError) Error() string {
	return fmt.Sprintf("wpml: coordinate %q does not match %s", e.text, e.format)
}

func (e *coordinateError) Unwrap() error { return ErrMalformedCoordinate }

// MalformedCoordinate returns an error for coordinate text that does not
// match format. It matches ErrMalformedCoordinate with errors.Is.
func MalformedCoordinate(text, format string) error {
	return &coordinateError{text: text, format: format}
}

type rangeError struct {
	b   Bounds
	got any
}

func (e *rangeError) Error() string { return fmt.Sprintf("wpml: %v is not %s", e.got, e.b) }

// ToInt reads an integer scalar.
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			break
		}
		return int(x), nil
	case uint:
		if x > math.MaxInt {
			break
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			break
		}
		return int(x), nil
	case float32:
		return floatToInt(float64(x), v)
	case float64:
		return floatToInt(x, v)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f, v)
		}
	case fmt.Stringer:
		return ToInt(x.String())
	}
	return 0, &typeError{want: "integer", got: v}
}

// floatToInt accepts integral values that fit in int.
func floatToInt(f float64, raw any) (int, error) {
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, &typeError{want: "integer", got: raw}
	}
	return int(f), nil
}

// ToFloat reads a decimal scalar.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
	case fmt.Stringer:
		return ToFloat(x.String())
	}
	return 0, &typeError{want: "number", got: v}
}

// ToString reads a text scalar. Numbers and booleans are formatted the same
// way the renderer writes them.
func ToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int, int32, int64:
		return fmt.Sprint(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		if x {
			return "1", nil
		}
		return "0", nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", &typeError{want: "string", got: v}
}

var flagBounds = Between(0, 1)

// ToFlag reads a 0/1 enable flag. Booleans are accepted as well; any other
// integer is out of range.
func ToFlag(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	n, err := ToInt(v)
	if err != nil {
		return false, &typeError{want: "flag (0 or 1)", got: v}
	}
	if n != 0 && n != 1 {
		return false, &rangeError{b: flagBounds, got: n}
	}
	return n == 1, nil
}

func flagValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
