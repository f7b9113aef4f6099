package binary

import "math/big"

// IntegerFormat describes a two's-complement integer conversion target:
// its bit width and signedness. Used only by convert-to-integer/
// round-to-integral (§4.13).
type IntegerFormat struct {
	Width    uint
	IsSigned bool

	minInt *big.Int
	maxInt *big.Int
}

// NewIntegerFormat validates width >= 1 and returns the described format.
func NewIntegerFormat(width uint, isSigned bool) (IntegerFormat, error) {
	if width < 1 {
		return IntegerFormat{}, newArgumentError(width, "integer format width must be >= 1")
	}
	var minInt, maxInt *big.Int
	if isSigned {
		maxInt = new(big.Int).Sub(new(big.Int).Lsh(big1, width-1), big1)
		minInt = new(big.Int).Neg(new(big.Int).Lsh(big1, width-1))
	} else {
		maxInt = new(big.Int).Sub(new(big.Int).Lsh(big1, width), big1)
		minInt = big.NewInt(0)
	}
	return IntegerFormat{Width: width, IsSigned: isSigned, minInt: minInt, maxInt: maxInt}, nil
}

// MinInt returns the smallest representable value.
func (f IntegerFormat) MinInt() *big.Int { return new(big.Int).Set(f.minInt) }

// MaxInt returns the largest representable value.
func (f IntegerFormat) MaxInt() *big.Int { return new(big.Int).Set(f.maxInt) }

// Clamp returns v restricted to [MinInt, MaxInt] along with whether
// clamping changed the value.
func (f IntegerFormat) Clamp(v *big.Int) (*big.Int, bool) {
	if v.Cmp(f.minInt) < 0 {
		return new(big.Int).Set(f.minInt), true
	}
	if v.Cmp(f.maxInt) > 0 {
		return new(big.Int).Set(f.maxInt), true
	}
	return new(big.Int).Set(v), false
}

// Common integer targets, named the way the well-known binary formats are.
var (
	Int32Format, _  = NewIntegerFormat(32, true)
	Int64Format, _  = NewIntegerFormat(64, true)
	Uint32Format, _ = NewIntegerFormat(32, false)
	Uint64Format, _ = NewIntegerFormat(64, false)
)
