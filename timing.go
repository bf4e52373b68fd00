package meadow

import (
	"fmt"
	"math"
	"strconv"
)

// Curve reshapes linear generation progress into eased start and end times,
// pacing how plant waves are distributed across the timeline. The zero
// value is linear.
type Curve struct {
	kind curveKind
	exp  float64
}

type curveKind uint8

const (
	curveLinear curveKind = iota
	curveEaseIn
	curveEaseOut
	curveEaseInOut
	curveExponent
)

// Predefined pacing curves.
var (
	CurveLinear    = Curve{kind: curveLinear}    // evenly spaced waves
	CurveEaseIn    = Curve{kind: curveEaseIn}    // slow start, dense finish
	CurveEaseOut   = Curve{kind: curveEaseOut}   // dense start, slow finish
	CurveEaseInOut = Curve{kind: curveEaseInOut} // smoothstep, dense middle
)

// CurveExponent returns a power curve t^k. The exponent is clamped to
// [0.1, 10] so the warp stays finite and invertible.
func CurveExponent(k float64) Curve {
	return Curve{kind: curveExponent, exp: clamp(k, 0.1, 10)}
}

// Warp maps linear progress to eased progress. Input is clamped to [0, 1];
// the output stays in [0, 1] with Warp(0) == 0 and Warp(1) == 1.
func (c Curve) Warp(t float64) float64 {
	t = clamp01(t)
	switch c.kind {
	case curveEaseIn:
		return t * t
	case curveEaseOut:
		return 1 - (1-t)*(1-t)
	case curveEaseInOut:
		return t * t * (3 - 2*t)
	case curveExponent:
		return math.Pow(t, c.exp)
	default:
		return t
	}
}

// String returns the configuration name of the curve.
func (c Curve) String() string {
	switch c.kind {
	case curveEaseIn:
		return "ease-in"
	case curveEaseOut:
		return "ease-out"
	case curveEaseInOut:
		return "ease-in-out"
	case curveExponent:
		return strconv.FormatFloat(c.exp, 'g', -1, 64)
	default:
		return "linear"
	}
}

// ParseCurve converts a configuration string to a Curve. Recognized names
// are "linear", "ease-in", "ease-out", and "ease-in-out"; any numeric
// string selects a power curve with that exponent. The empty string is
// linear.
func ParseCurve(s string) (Curve, error) {
	switch s {
	case "", "linear":
		return CurveLinear, nil
	case "ease-in":
		return CurveEaseIn, nil
	case "ease-out":
		return CurveEaseOut, nil
	case "ease-in-out":
		return CurveEaseInOut, nil
	}
	k, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Curve{}, fmt.Errorf("parse curve %q: %w", s, err)
	}
	return CurveExponent(k), nil
}
