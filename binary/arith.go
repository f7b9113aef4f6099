package binary

import "math/big"

// Add returns lhs + rhs, correctly rounded in this format.
func (f BinaryFormat) Add(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.addSub(ctx, OpAdd, lhs, rhs)
}

// Subtract returns lhs - rhs, correctly rounded in this format.
func (f BinaryFormat) Subtract(ctx *Context, lhs, rhs Binary) (Binary, error) {
	return f.addSub(ctx, OpSubtract, lhs, rhs)
}

// Operation tags used as the Exception.Op field and, informally, as the
// "op tuple" name the original carries through its signal machinery.
const (
	OpAdd                  = "add"
	OpSubtract             = "subtract"
	OpMultiply             = "multiply"
	OpDivide               = "divide"
	OpSqrt                 = "sqrt"
	OpFMA                  = "fma"
	OpRemainder            = "remainder"
	OpFmod                 = "fmod"
	OpCompare              = "compare"
	OpConvert              = "convert"
	OpConvertToInteger     = "convertToInteger"
	OpRoundToIntegral      = "roundToIntegral"
	OpScaleB               = "scaleb"
	OpLogB                 = "logb"
	OpLogBIntegral         = "logbIntegral"
	OpNextUp               = "nextUp"
	OpNextDown             = "nextDown"
	OpToString             = "toString"
	OpToDecimalString      = "toDecimalString"
	OpFromString           = "fromString"
)

func (f BinaryFormat) addSub(ctx *Context, opName string, lhs, rhs Binary) (Binary, error) {
	isSubtract := opName == OpSubtract

	if !lhs.IsFinite() || !rhs.IsFinite() {
		a, b, flipped := lhs, rhs, false
		if a.IsFinite() {
			a, b, flipped = b, a, true
		}
		if a.significand.Sign() == 0 { // a is infinity
			if b.IsFinite() {
				return f.MakeInfinity(a.sign != (isSubtract && flipped)), nil
			}
			if b.significand.Sign() == 0 { // both infinite
				if isSubtract == (a.sign == b.sign) {
					return ctx.signal(Exception{Kind: KindInvalidAdd, Op: opName, Default: f.MakeNaN(false, false, big.NewInt(0))})
				}
				return f.MakeInfinity(a.sign), nil
			}
		}
		return f.propagateNaN(ctx, opName, lhs, rhs), nil
	}

	isSub := isSubtract != (lhs.sign != rhs.sign)
	sign := lhs.sign

	lshift := lhs.exponentInt() - rhs.exponentInt()
	var significand *big.Int
	var exponent int

	if isSub {
		if lshift >= 0 {
			significand = new(big.Int).Sub(new(big.Int).Lsh(lhs.significand, uint(lshift)), rhs.significand)
			exponent = rhs.exponentInt()
		} else {
			significand = new(big.Int).Sub(new(big.Int).Lsh(rhs.significand, uint(-lshift)), lhs.significand)
			exponent = lhs.exponentInt()
			sign = !sign
		}
		if significand.Sign() < 0 {
			sign = !sign
			significand.Neg(significand)
		}
	} else {
		if lshift >= 0 {
			significand = new(big.Int).Add(new(big.Int).Lsh(lhs.significand, uint(lshift)), rhs.significand)
			exponent = rhs.exponentInt()
		} else {
			significand = new(big.Int).Add(new(big.Int).Lsh(rhs.significand, uint(-lshift)), lhs.significand)
			exponent = lhs.exponentInt()
		}
	}

	if significand.Sign() == 0 && (lhs.significand.Sign() != 0 || rhs.significand.Sign() != 0 || isSub) {
		sign = ctx.rounding == Floor
	}

	return f.normalize(ctx, sign, exponent, significand, opName)
}

// Multiply returns lhs * rhs, correctly rounded in this format.
func (f BinaryFormat) Multiply(ctx *Context, lhs, rhs Binary) (Binary, error) {
	if !lhs.IsFinite() || !rhs.IsFinite() {
		a, b := lhs, rhs
		if a.IsFinite() {
			a, b = b, a
		}
		if a.significand.Sign() == 0 { // a is infinity
			if b.IsZero() {
				return ctx.signal(Exception{Kind: KindInvalidMultiply, Op: OpMultiply, Default: f.MakeNaN(false, false, big.NewInt(0)), OperandsXor: lhs.sign != rhs.sign})
			}
			if !b.IsNaN() {
				return f.MakeInfinity(a.sign != b.sign), nil
			}
		}
		return f.propagateNaN(ctx, OpMultiply, lhs, rhs), nil
	}

	sign := lhs.sign != rhs.sign
	exponent := lhs.exponentInt() + rhs.exponentInt()
	product := new(big.Int).Mul(lhs.significand, rhs.significand)
	return f.normalize(ctx, sign, exponent, product, OpMultiply)
}

// Divide returns lhs / rhs, correctly rounded in this format.
func (f BinaryFormat) Divide(ctx *Context, lhs, rhs Binary) (Binary, error) {
	sign := lhs.sign != rhs.sign

	if lhs.IsFinite() {
		if rhs.IsFinite() {
			if rhs.IsZero() {
				if lhs.IsZero() {
					return ctx.signal(Exception{Kind: KindInvalidDivide, Op: OpDivide, Default: f.MakeNaN(false, false, big.NewInt(0)), OperandsXor: sign})
				}
				return ctx.signal(Exception{Kind: KindDivideByZero, Op: OpDivide, Default: f.MakeInfinity(sign), OperandsXor: sign})
			}
			return f.divideFinite(ctx, lhs, rhs, sign)
		}
		if rhs.significand.Sign() == 0 { // finite / infinity -> zero
			return f.MakeZero(sign), nil
		}
	} else if lhs.significand.Sign() == 0 { // lhs is infinity
		if rhs.IsFinite() {
			return f.MakeInfinity(sign), nil
		}
		if rhs.significand.Sign() == 0 {
			return ctx.signal(Exception{Kind: KindInvalidDivide, Op: OpDivide, Default: f.MakeNaN(false, false, big.NewInt(0)), OperandsXor: sign})
		}
	}
	return f.propagateNaN(ctx, OpDivide, lhs, rhs), nil
}

// divideFinite computes lhs/rhs when both are finite and rhs is non-zero,
// by restoring bit-at-a-time binary long division, packing the rounding
// remainder's lost-fraction classification into the low bits of the
// quotient so normalize rounds correctly.
func (f BinaryFormat) divideFinite(ctx *Context, lhs, rhs Binary, sign bool) (Binary, error) {
	lhsSig := new(big.Int).Set(lhs.significand)
	if lhsSig.Sign() == 0 {
		return f.MakeZero(sign), nil
	}
	rhsSig := new(big.Int).Set(rhs.significand)
	lhsExp := lhs.exponentInt()
	rhsExp := rhs.exponentInt()

	lshift := rhsSig.BitLen() - lhsSig.BitLen()
	if lshift >= 0 {
		lhsSig.Lsh(lhsSig, uint(lshift))
		lhsExp -= lshift
	} else {
		rhsSig.Lsh(rhsSig, uint(-lshift))
		rhsExp += lshift
	}
	if lhsSig.Cmp(rhsSig) < 0 {
		lhsSig.Lsh(lhsSig, 1)
		lhsExp--
	}

	bitsCount := f.Precision
	quotSig := new(big.Int)
	one := big.NewInt(1)
	for n := 0; n < bitsCount; n++ {
		if n != 0 {
			lhsSig.Lsh(lhsSig, 1)
		}
		quotSig.Lsh(quotSig, 1)
		if lhsSig.Cmp(rhsSig) >= 0 {
			lhsSig.Sub(lhsSig, rhsSig)
			quotSig.Or(quotSig, one)
		}
	}

	exponent := lhsExp - rhsExp - (bitsCount - 1)
	twiceRemainder := new(big.Int).Lsh(lhsSig, 1)
	switch twiceRemainder.Cmp(rhsSig) {
	case -1: // less than half
		if lhsSig.Sign() != 0 {
			quotSig.Lsh(quotSig, 2)
			quotSig.Or(quotSig, one)
			exponent -= 2
		}
	case 0: // exactly half
		quotSig.Lsh(quotSig, 1)
		quotSig.Or(quotSig, one)
		exponent--
	default: // more than half
		quotSig.Lsh(quotSig, 2)
		quotSig.Or(quotSig, big.NewInt(3))
		exponent -= 2
	}

	return f.normalize(ctx, sign, exponent, quotSig, OpDivide)
}
