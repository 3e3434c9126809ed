package wpml

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeOutOfRange         = "out_of_range"
	CodeConstraint         = "constraint_violation"
	CodeRequired           = "required"
	CodeInvalidEnum        = "invalid_enum"
	CodeInvalidType        = "invalid_type"
	CodeStructuralMismatch = "structural_mismatch"
	CodeDuplicateKey       = "duplicate_key"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Pointer over wire names (for example: /action/2/hoverTime).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: accepted range, accepted tokens, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":0, "max":2, "got":3}).
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. out_of_range at /hoverTime: hoverTime must be > 0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the underlying causes so errors.Is/As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// At returns the issues whose path equals p.
func (iss Issues) At(p string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Path == p {
			out = append(out, it)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrMalformedCoordinate reports coordinate text with the wrong number of parts
// or non-numeric components.
var ErrMalformedCoordinate = errors.New("wpml: malformed coordinate")

// UnknownVariantError is returned when a wire token is not part of a closed
// vocabulary.
type UnknownVariantError struct {
	Enum     string
	Given    string
	Expected []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("wpml: unknown %s %q (expected one of: %s)", e.Enum, e.Given, strings.Join(e.Expected, ", "))
}

// UnknownActionKindError is returned when an action carries a kind tag that is
// not registered. Parsing stops at the first one.
type UnknownActionKindError struct {
	Kind  string
	Path  string
	Known []string
}

func (e *UnknownActionKindError) Error() string {
	where := ""
	if e.Path != "" {
		where = " at " + e.Path
	}
	if e.Kind == "" {
		return "wpml: missing action kind" + where
	}
	return fmt.Sprintf("wpml: unknown action kind %q%s (registered: %s)", e.Kind, where, strings.Join(e.Known, ", "))
}

// MarkupError reports text that is not well-formed markup.
type MarkupError struct {
	Line int
	Err  error
}

func (e *MarkupError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("wpml: malformed markup (line %d): %v", e.Line, e.Err)
	}
	return fmt.Sprintf("wpml: malformed markup: %v", e.Err)
}

func (e *MarkupError) Unwrap() error { return e.Err }

// isFatal reports errors that abort decoding instead of being collected.
func isFatal(err error) bool {
	var uk *UnknownActionKindError
	var me *MarkupError
	return errors.As(err, &uk) || errors.As(err, &me)
}
