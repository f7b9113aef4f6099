package binary

import "math/big"

// Compare is the result of comparing two Binary values.
type Compare int

const (
	CompareLess Compare = iota
	CompareEqual
	CompareGreater
	CompareUnordered
)

func (c Compare) String() string {
	switch c {
	case CompareLess:
		return "LessThan"
	case CompareEqual:
		return "Equal"
	case CompareGreater:
		return "GreaterThan"
	default:
		return "Unordered"
	}
}

// compareQuiet returns lhs vs rhs without raising any signal. If
// orderZeroes is true, -0 compares less than +0.
func compareQuiet(lhs, rhs Binary, orderZeroes bool) Compare {
	if !lhs.IsFinite() {
		if lhs.significand.Sign() == 0 { // lhs is infinity
			if !rhs.IsFinite() {
				if rhs.significand.Sign() == 0 { // both infinite
					if lhs.sign == rhs.sign {
						return CompareEqual
					}
					if lhs.sign {
						return CompareLess
					}
					return CompareGreater
				}
				// rhs is a NaN: fall through to Unordered.
			} else {
				if lhs.sign {
					return CompareLess
				}
				return CompareGreater
			}
		}
		// lhs is a NaN: fall through to Unordered.
	} else if !rhs.IsFinite() {
		if rhs.significand.Sign() == 0 { // rhs is infinity, lhs finite
			if rhs.sign {
				return CompareGreater
			}
			return CompareLess
		}
		// rhs is a NaN: fall through to Unordered.
	} else if lhs.significand.Sign() == 0 && rhs.significand.Sign() == 0 {
		if orderZeroes && lhs.sign != rhs.sign {
			if lhs.sign {
				return CompareLess
			}
			return CompareGreater
		}
		return CompareEqual
	} else {
		if lhs.sign != rhs.sign || rhs.significand.Sign() == 0 {
			if lhs.sign {
				return CompareLess
			}
			return CompareGreater
		}
		if lhs.significand.Sign() == 0 {
			if rhs.sign {
				return CompareGreater
			}
			return CompareLess
		}

		// Compare the exponents of the leading significand bits, so that
		// subnormals and operands of different precisions order correctly.
		expDiff := (lhs.exponentInt() + lhs.significand.BitLen()) - (rhs.exponentInt() + rhs.significand.BitLen())
		if expDiff != 0 {
			if (expDiff > 0) != lhs.sign {
				return CompareGreater
			}
			return CompareLess
		}

		lhsSig := new(big.Int).Set(lhs.significand)
		rhsSig := new(big.Int).Set(rhs.significand)
		lenDiff := lhsSig.BitLen() - rhsSig.BitLen()
		if lenDiff > 0 {
			rhsSig.Lsh(rhsSig, uint(lenDiff))
		} else if lenDiff < 0 {
			lhsSig.Lsh(lhsSig, uint(-lenDiff))
		}

		cmp := lhsSig.Cmp(rhsSig)
		if cmp == 0 {
			return CompareEqual
		}
		if (cmp > 0) != lhs.sign {
			return CompareGreater
		}
		return CompareLess
	}

	return CompareUnordered
}

// compareDispatch raises the flag (or error, or recorded exception) a
// signal kind implies, discarding the substituted Binary value a handler
// might otherwise produce: a Compare result has no Binary representation
// to substitute, so HandlerSubstituteValue/Xor/AbruptUnderflow are not
// meaningful here and are treated as HandlerDefault would be.
func (f BinaryFormat) compareDispatch(ctx *Context, kind Kind, op string, result Compare) (Compare, error) {
	_, err := ctx.signal(Exception{Kind: kind, Op: op, Default: f.MakeNaN(false, false, big.NewInt(0))})
	if err != nil {
		return CompareUnordered, err
	}
	return result, nil
}

// compareImpl implements Compare/CompareSignal (§4.12): compare, raising
// SignallingNaNOperand (non-signalling) or InvalidComparison (signalling)
// whenever the result is Unordered and a NaN was involved appropriately.
func (f BinaryFormat) compareImpl(ctx *Context, lhs, rhs Binary, signalling bool) (Compare, error) {
	result := compareQuiet(lhs, rhs, false)
	if result == CompareUnordered && (signalling || lhs.IsSignalling() || rhs.IsSignalling()) {
		kind := KindSignallingNaNOperand
		if signalling {
			kind = KindInvalidComparison
		}
		return f.compareDispatch(ctx, kind, OpCompare, result)
	}
	return result, nil
}

// Compare returns lhs vs rhs; a signalling NaN operand raises
// SignallingNaNOperand.
func (f BinaryFormat) Compare(ctx *Context, lhs, rhs Binary) (Compare, error) {
	return f.compareImpl(ctx, lhs, rhs, false)
}

// CompareSignal is Compare except any NaN operand (quiet or signalling)
// raises InvalidComparison.
func (f BinaryFormat) CompareSignal(ctx *Context, lhs, rhs Binary) (Compare, error) {
	return f.compareImpl(ctx, lhs, rhs, true)
}

// CompareTotal implements totalOrder(lhs, rhs), a loose equivalent of <=.
// Both operands must share a format.
func (lhs Binary) CompareTotal(rhs Binary) bool {
	if !lhs.fmt.Equal(rhs.fmt) {
		panic("binary: total order requires both operands have the same format")
	}
	comp := compareQuiet(lhs, rhs, true)
	if comp == CompareUnordered {
		if rhs.IsNaN() {
			if lhs.IsNaN() {
				if lhs.sign != rhs.sign {
					return lhs.sign
				}
				if lhs.IsSignalling() != rhs.IsSignalling() {
					return lhs.IsSignalling() != lhs.sign
				}
				lp, rp := lhs.NaNPayload(), rhs.NaNPayload()
				if lp.Cmp(rp) < 0 {
					return !lhs.sign
				}
				if lp.Cmp(rp) > 0 {
					return lhs.sign
				}
				return true
			}
			return !rhs.sign
		}
		return lhs.sign
	}
	return comp != CompareGreater
}

// CompareTotalMag is totalOrder(|lhs|, |rhs|).
func (lhs Binary) CompareTotalMag(rhs Binary) bool {
	return lhs.CopyAbs().CompareTotal(rhs.CopyAbs())
}

// MinMaxFlags selects one of the eight min/max variants.
type MinMaxFlags uint8

const (
	minMaxMax MinMaxFlags = 1 << iota
	minMaxMag
	minMaxNum
)

func (f BinaryFormat) maxMin(ctx *Context, flags MinMaxFlags, lhs, rhs Binary) (Binary, error) {
	if !lhs.fmt.Equal(rhs.fmt) {
		panic("binary: max/min requires both operands have the same format")
	}

	var comp Compare
	if flags&minMaxMag != 0 {
		comp = compareQuiet(lhs.CopyAbs(), rhs.CopyAbs(), true)
		if comp == CompareEqual {
			comp = compareQuiet(lhs, rhs, true)
		}
	} else {
		comp = compareQuiet(lhs, rhs, true)
	}

	switch comp {
	case CompareGreater, CompareEqual:
		if flags&minMaxMax != 0 {
			return lhs, nil
		}
		return rhs, nil
	case CompareLess:
		if flags&minMaxMax != 0 {
			return rhs, nil
		}
		return lhs, nil
	}

	if flags&minMaxNum == 0 {
		return f.propagateNaN(ctx, "minmax", lhs, rhs), nil
	}

	result := rhs
	if rhs.IsNaN() {
		result = lhs
	}
	if lhs.IsSignalling() || rhs.IsSignalling() {
		if result.IsSignalling() {
			result = f.MakeNaN(result.sign, false, result.NaNPayload())
		}
		return ctx.signal(Exception{Kind: KindSignallingNaNOperand, Op: "minmax", Default: result})
	}
	return result, nil
}

func (f BinaryFormat) Max(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxMax, lhs, rhs)
}
func (f BinaryFormat) MaxNum(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxMax|minMaxNum, lhs, rhs)
}
func (f BinaryFormat) MaxMag(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxMax|minMaxMag, lhs, rhs)
}
func (f BinaryFormat) MaxMagNum(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxMax|minMaxMag|minMaxNum, lhs, rhs)
}
func (f BinaryFormat) Min(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, 0, lhs, rhs)
}
func (f BinaryFormat) MinNum(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxNum, lhs, rhs)
}
func (f BinaryFormat) MinMag(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxMag, lhs, rhs)
}
func (f BinaryFormat) MinMagNum(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.maxMin(ctx, minMaxMag|minMaxNum, lhs, rhs)
}

// --- Derived predicates: total functions of Compare/CompareSignal ---------

func (f BinaryFormat) CompareEq(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c == CompareEqual, err
}
func (f BinaryFormat) CompareNe(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c != CompareEqual, err
}
func (f BinaryFormat) CompareGt(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c == CompareGreater, err
}
func (f BinaryFormat) CompareNg(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c != CompareGreater, err
}
func (f BinaryFormat) CompareGe(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c == CompareEqual || c == CompareGreater, err
}
func (f BinaryFormat) CompareLu(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return !(c == CompareEqual || c == CompareGreater), err
}
func (f BinaryFormat) CompareLt(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c == CompareLess, err
}
func (f BinaryFormat) CompareNl(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c != CompareLess, err
}
func (f BinaryFormat) CompareLe(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c == CompareEqual || c == CompareLess, err
}
func (f BinaryFormat) CompareGu(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return !(c == CompareEqual || c == CompareLess), err
}
func (f BinaryFormat) CompareUn(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c == CompareUnordered, err
}
func (f BinaryFormat) CompareOr(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.Compare(ctx, lhs, rhs)
	return c != CompareUnordered, err
}

func (f BinaryFormat) CompareEqSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c == CompareEqual, err
}
func (f BinaryFormat) CompareNeSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c != CompareEqual, err
}
func (f BinaryFormat) CompareGtSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c == CompareGreater, err
}
func (f BinaryFormat) CompareGeSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c == CompareEqual || c == CompareGreater, err
}
func (f BinaryFormat) CompareLtSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c == CompareLess, err
}
func (f BinaryFormat) CompareLeSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c == CompareEqual || c == CompareLess, err
}
func (f BinaryFormat) CompareNgSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c != CompareGreater, err
}
func (f BinaryFormat) CompareLuSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return !(c == CompareEqual || c == CompareGreater), err
}
func (f BinaryFormat) CompareNlSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return c != CompareLess, err
}
func (f BinaryFormat) CompareGuSignal(ctx *Context, lhs, rhs Binary) (bool, error) {
	c, err := f.CompareSignal(ctx, lhs, rhs)
	return !(c == CompareEqual || c == CompareLess), err
}
