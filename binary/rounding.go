// Package binary implements a generic, parameterised IEEE-754-2019 binary
// floating-point arithmetic kernel: arbitrary-precision formats, correctly
// rounded arithmetic, decimal/hex conversion and the interchange codec.
package binary

import (
	"fmt"
)

// Rounding defines the rounding-direction attributes of IEEE 754-2019.
type Rounding int

const (
	// HalfEven rounds to the nearest value; if the number falls midway, it
	// is rounded to the nearest value with an even least significant bit.
	// This is the default rounding-direction attribute.
	HalfEven Rounding = iota

	// HalfUp rounds to the nearest value; ties round away from zero.
	HalfUp

	// HalfDown rounds to the nearest value; ties round toward zero.
	HalfDown

	// Ceiling rounds toward positive infinity.
	Ceiling

	// Floor rounds toward negative infinity.
	Floor

	// Down rounds toward zero (truncation).
	Down

	// Up rounds away from zero.
	Up
)

// DefaultRounding is the default rounding-direction attribute (HalfEven).
const DefaultRounding = HalfEven

// String returns the string representation of the rounding mode.
func (r Rounding) String() string {
	switch r {
	case HalfEven:
		return "HalfEven"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case Down:
		return "Down"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// Debug returns a short string representation of the rounding mode.
func (r Rounding) Debug() string {
	switch r {
	case HalfEven:
		return "HE"
	case HalfUp:
		return "HU"
	case HalfDown:
		return "HD"
	case Ceiling:
		return "Ce"
	case Floor:
		return "Fl"
	case Down:
		return "Do"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("?(%d)", int(r))
	}
}

// roundUp reports whether, given an inexact result, the candidate
// significand should be incremented (rounded away from zero). sign is the
// sign of the number being rounded; lsbIsOdd is the low bit of the
// candidate (pre-increment) significand, needed for ties-to-even.
func roundUp(rounding Rounding, lf LostFraction, sign bool, lsbIsOdd bool) bool {
	if lf == ExactlyZero {
		return false
	}

	switch rounding {
	case HalfEven:
		if lf == ExactlyHalf {
			return lsbIsOdd
		}
		return lf == MoreThanHalf
	case Ceiling:
		return !sign
	case Floor:
		return sign
	case Down:
		return false
	case Up:
		return true
	case HalfDown:
		return lf == MoreThanHalf
	default: // HalfUp
		return lf != LessThanHalf
	}
}
