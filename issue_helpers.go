package wpml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/wpml/i18n"
)

// RequiredIssue reports a missing field. when describes the mode that makes
// the field mandatory and may be empty.
func RequiredIssue(field, when string) Issue {
	w := ""
	if when != "" {
		w = " when " + when
	}
	return Issue{
		Path:    Root().Field(field).Pointer(),
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"field": field, "when": w}),
		Params:  map[string]any{"when": when},
	}
}

// ConstraintIssue reports a violated cross-field rule on field.
func ConstraintIssue(field, rule string, params map[string]any) Issue {
	return Issue{
		Path:    Root().Field(field).Pointer(),
		Code:    CodeConstraint,
		Message: i18n.T(CodeConstraint, map[string]string{"field": field, "rule": rule}),
		Hint:    rule,
		Params:  params,
	}
}

// DuplicateKeyIssue reports a key that occurs twice in one object of a
// JSON or YAML tree.
func DuplicateKeyIssue(at PathRef) Issue {
	return Issue{
		Path:    at.Pointer(),
		Code:    CodeDuplicateKey,
		Message: i18n.T(CodeDuplicateKey, map[string]string{"field": at.Pointer()}),
	}
}

// OutOfRangeIssue reports a numeric value outside b.
func OutOfRangeIssue(field string, b Bounds, got any) Issue {
	return Issue{
		Path:    Root().Field(field).Pointer(),
		Code:    CodeOutOfRange,
		Message: i18n.T(CodeOutOfRange, map[string]string{"field": field, "range": b.String(), "got": fmt.Sprint(got)}),
		Hint:    b.String(),
		Params:  b.params(got),
	}
}

// DecodeIssue classifies an error raised while reading a wire value.
func DecodeIssue(field string, raw any, err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return Rebase(Root().Field(field).Pointer(), iss)
	}
	path := Root().Field(field).Pointer()
	got := fmt.Sprintf("%q", fmt.Sprint(raw))
	var uv *UnknownVariantError
	if errors.As(err, &uv) {
		return Issues{{
			Path:    path,
			Code:    CodeInvalidEnum,
			Message: i18n.T(CodeInvalidEnum, map[string]string{"field": field, "got": fmt.Sprintf("%q", uv.Given), "expected": strings.Join(uv.Expected, ", ")}),
			Hint:    strings.Join(uv.Expected, "|"),
			Cause:   err,
			Params:  map[string]any{"got": uv.Given, "expected": uv.Expected},
		}}
	}
	var re *rangeError
	if errors.As(err, &re) {
		it := OutOfRangeIssue(field, re.b, re.got)
		it.Cause = err
		return Issues{it}
	}
	var ce *coordinateError
	if errors.As(err, &ce) {
		return Issues{{
			Path:    path,
			Code:    CodeStructuralMismatch,
			Message: i18n.T(CodeStructuralMismatch, map[string]string{"field": field, "got": got, "format": ce.format}),
			Hint:    ce.format,
			Cause:   err,
			Params:  map[string]any{"got": raw, "format": ce.format},
		}}
	}
	typ := "value"
	var te *typeError
	if errors.As(err, &te) {
		typ = te.want
	}
	return Issues{{
		Path:    path,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"field": field, "got": got, "type": typ}),
		Cause:   err,
		Params:  map[string]any{"got": raw, "type": typ},
	}}
}
