package binary

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/trippwill/go-ieee754/imath"
)

// BinaryFormat is an immutable descriptor of a binary floating-point
// format: three independent parameters (precision, e_max, e_min) and a set
// of values derived from them once, at construction, the way the original
// specification's BinaryFormat pre-computes its derived fields. Only
// construct one through the From* factories.
type BinaryFormat struct {
	// Precision is the number of bits in the significand, including the
	// explicit leading integer bit. Must be >= 3.
	Precision int
	// EMax is the largest e such that 2^e is representable. Must be >= 2.
	EMax int
	// EMin is the smallest e such that 2^e is not a subnormal number.
	// Must be <= -1. It is not required that EMin == 1 - EMax.
	EMin int

	// Derived, pre-computed fields. intBit/quietBit are recorded as bit
	// positions (not big.Int values) so that arbitrarily wide precisions
	// never force an eager, possibly huge, allocation; IntBit/QuietBit/
	// MaxSignificand compute the big.Int value on demand.
	eBias            int
	intBit           uint
	quietBit         uint
	fmtWidth         int  // 0 unless this is an interchange format; true bit width
	explicitIntBit   bool // interchange significand field stores the integer bit literally
	decimalPrecision int
	logbInf          int
}

// FromTriple constructs a BinaryFormat from its three independent
// parameters, validating their ranges. All other factories funnel through
// this one.
func FromTriple(precision, eMax, eMin int) (BinaryFormat, error) {
	if precision < 3 {
		return BinaryFormat{}, newArgumentError(precision, "precision must be at least 3 bits")
	}
	if eMax < 2 {
		return BinaryFormat{}, newArgumentError(eMax, "e_max must be at least 2")
	}
	if eMin > -1 {
		return BinaryFormat{}, newArgumentError(eMin, "e_min must be negative")
	}

	f := BinaryFormat{
		Precision: precision,
		EMax:      eMax,
		EMin:      eMin,
		eBias:     1 - eMin,
		intBit:    uint(precision - 1),
		quietBit:  uint(precision - 2),
	}

	f.decimalPrecision = 2 + int(math.Floor(float64(precision)/log2Of10))
	maxAbs := eMax
	if absEMin := imath.Abs(eMin); absEMin > maxAbs {
		maxAbs = absEMin
	}
	f.logbInf = 2*(maxAbs+precision-1) + 1

	if eMin == 1-eMax && (eMax+1)&eMax == 0 {
		eWidth := bits.Len(uint(eMax)) + 1
		testWidth := 1 + eWidth + precision
		// testWidth is the width an explicit-integer-bit layout of this
		// (precision, e_width) pair would occupy. A width that is a
		// multiple of 16 (testWidth % 16 == 0, e.g. x87 extended's 80) is an
		// interchange format that stores its integer bit explicitly; one
		// that is one bit past a multiple of 16 (testWidth % 16 == 1,
		// e.g. every standard IEEE width) omits it, so the real packed
		// width is one bit narrower than testWidth.
		switch testWidth % 16 {
		case 0:
			f.fmtWidth = testWidth
			f.explicitIntBit = true
		case 1:
			f.fmtWidth = testWidth - 1
		}
	}
	return f, nil
}

// FromPrecisionEWidth constructs a format from an explicit precision and
// exponent field width: e_max = 2^(e_width-1) - 1, e_min = 1 - e_max.
func FromPrecisionEWidth(precision, eWidth int) (BinaryFormat, error) {
	eMax := (1 << uint(eWidth-1)) - 1
	return FromTriple(precision, eMax, 1-eMax)
}

// FromPrecisionExtended constructs an extended-precision format (as used
// by Intel x87) from precision alone, deriving a generous exponent width.
func FromPrecisionExtended(precision int) (BinaryFormat, error) {
	var eWidth int
	if precision >= 128 {
		eWidth = int(math.Round(4*math.Log2(float64(precision)))) - 11
	} else {
		eWidth = int(math.Round(4*math.Log2(float64(precision))+0.5)) - 9
	}
	return FromPrecisionEWidth(precision, eWidth)
}

// FromIEEE constructs the IEEE-754-mandated format for the given total bit
// width (16, 32, 64, or any multiple of 32 that is >= 128).
func FromIEEE(width int) (BinaryFormat, error) {
	var precision int
	switch {
	case width == 16:
		precision = 11
	case width == 32:
		precision = 24
	case width == 64 || (width >= 128 && width%32 == 0):
		precision = width - int(math.Round(4*math.Log2(float64(width)))) + 13
	default:
		return BinaryFormat{}, newArgumentError(width, "IEEE-754 does not define a standard format for this width")
	}
	return FromPrecisionEWidth(precision, width-precision)
}

const log2Of10 = 3.321928094887362347870319429489390175864831393024580612054756395

// EBias is the exponent bias: 1 - EMin.
func (f BinaryFormat) EBias() int { return f.eBias }

// IntBitPos is the bit position of the significand's integer bit.
func (f BinaryFormat) IntBitPos() uint { return f.intBit }

// QuietBitPos is the bit position of the NaN quiet-bit.
func (f BinaryFormat) QuietBitPos() uint { return f.quietBit }

// IntBit returns 2^(precision-1), the significand value of the integer bit.
func (f BinaryFormat) IntBit() *big.Int {
	return new(big.Int).Lsh(big1, f.intBit)
}

// QuietBit returns 2^(precision-2), the significand value of the NaN
// quiet-bit.
func (f BinaryFormat) QuietBit() *big.Int {
	return new(big.Int).Lsh(big1, f.quietBit)
}

// MaxSignificand returns 2^precision - 1, the largest representable
// significand.
func (f BinaryFormat) MaxSignificand() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big1, uint(f.Precision)), big1)
}

// FmtWidth returns the interchange width in bits, or 0 if this format is
// not an interchange format.
func (f BinaryFormat) FmtWidth() int { return f.fmtWidth }

// IsInterchange reports whether this format can be packed/unpacked.
func (f BinaryFormat) IsInterchange() bool { return f.fmtWidth != 0 }

// ExplicitIntBit reports whether this interchange format's significand
// field stores the integer bit literally rather than implying it (e.g.
// x87 extended precision, unlike the standard IEEE binary widths).
func (f BinaryFormat) ExplicitIntBit() bool { return f.explicitIntBit }

// DecimalPrecision is the least number of significant decimal digits
// needed to round-trip this format correctly.
func (f BinaryFormat) DecimalPrecision() int { return f.decimalPrecision }

// LogBInf is the integer logb() returns for infinities; LogBZero and
// LogBNaN derive from it (see §4.14).
func (f BinaryFormat) LogBInf() int { return f.logbInf }

// LogBZero is the integer logb_integral() returns for zero.
func (f BinaryFormat) LogBZero() int { return -f.logbInf }

// LogBNaN is the integer logb_integral() returns for NaN.
func (f BinaryFormat) LogBNaN() int { return -f.logbInf - 1 }

// Equal reports whether two formats describe the same parameters.
func (f BinaryFormat) Equal(g BinaryFormat) bool {
	return f.Precision == g.Precision && f.EMax == g.EMax && f.EMin == g.EMin
}

func (f BinaryFormat) String() string {
	return "BinaryFormat(precision=" + strconv.Itoa(f.Precision) +
		", e_max=" + strconv.Itoa(f.EMax) + ", e_min=" + strconv.Itoa(f.EMin) + ")"
}
