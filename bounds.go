package wpml

import (
	"fmt"
	"math"
	"strconv"
)

// Bounds is a numeric constraint. The zero value accepts every number except
// NaN.
type Bounds struct {
	min, max       float64
	hasMin, hasMax bool
	openMin        bool
	finite         bool
}

// Between accepts lo <= v <= hi.
func Between(lo, hi float64) Bounds { return Bounds{min: lo, max: hi, hasMin: true, hasMax: true} }

// AtLeast accepts v >= lo.
func AtLeast(lo float64) Bounds { return Bounds{min: lo, hasMin: true} }

// AtMost accepts v <= hi.
func AtMost(hi float64) Bounds { return Bounds{max: hi, hasMax: true} }

// Above accepts v > lo.
func Above(lo float64) Bounds { return Bounds{min: lo, hasMin: true, openMin: true} }

// Finite accepts every number except NaN and the infinities.
func Finite() Bounds { return Bounds{finite: true} }

// Contains reports whether v satisfies the bounds. NaN never does.
func (b Bounds) Contains(v float64) bool {
	if math.IsNaN(v) || b.finite && math.IsInf(v, 0) {
		return false
	}
	if b.hasMin {
		if b.openMin && v <= b.min {
			return false
		}
		if !b.openMin && v < b.min {
			return false
		}
	}
	if b.hasMax && v > b.max {
		return false
	}
	return true
}

func (b Bounds) String() string {
	switch {
	case b.hasMin && b.hasMax && b.min == b.max:
		return "exactly " + num(b.min)
	case b.hasMin && b.hasMax:
		return fmt.Sprintf("within [%s, %s]", num(b.min), num(b.max))
	case b.hasMin && b.openMin:
		return "> " + num(b.min)
	case b.hasMin:
		return ">= " + num(b.min)
	case b.hasMax:
		return "<= " + num(b.max)
	case b.finite:
		return "a finite number"
	}
	return "a number"
}

func (b Bounds) params(got any) map[string]any {
	m := map[string]any{"got": got}
	if b.hasMin {
		m["min"] = b.min
		m["exclusiveMin"] = b.openMin
	}
	if b.hasMax {
		m["max"] = b.max
	}
	return m
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// checkFloat rejects NaN and the infinities before checking bs.
func checkFloat(field string, v float64, bs []Bounds) Issues {
	return checkBounds(field, v, v, append([]Bounds{Finite()}, bs...))
}

// checkBounds returns the first violated bound for field.
func checkBounds(field string, v float64, got any, bs []Bounds) Issues {
	for _, b := range bs {
		if !b.Contains(v) {
			return Issues{OutOfRangeIssue(field, b, got)}
		}
	}
	return nil
}
