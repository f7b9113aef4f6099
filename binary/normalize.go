package binary

import "math/big"

// normalize is the sole routine through which every inexact constructive
// result flows: given an unbounded (sign, integer-exponent, non-negative
// significand) triple representing the exact value ± 2^exponent *
// significand, it returns the correctly rounded Binary in format f, with
// every appropriate signal raised through ctx.
func (f BinaryFormat) normalize(ctx *Context, sign bool, exponent int, significand *big.Int, op string) (Binary, error) {
	return f.normalizeSticky(ctx, sign, exponent, significand, false, op)
}

// normalizeSticky is normalize with an additional out-of-band sticky bit:
// callers whose (exponent, significand) pair is only an approximation of
// the true exact value (sqrt's truncated integer root, for instance) pass
// sticky=true to record that a nonzero remainder exists beyond what
// significand's own bits represent, bumping an otherwise-exact or
// exactly-half classification up one level.
func (f BinaryFormat) normalizeSticky(ctx *Context, sign bool, exponent int, significand *big.Int, sticky bool, op string) (Binary, error) {
	if significand.Sign() == 0 {
		if sticky {
			panic("binary: sticky remainder with zero significand")
		}
		return f.MakeZero(sign), nil
	}

	size := significand.BitLen()
	// Shifting the significand so its MSB sits at bit (precision-1) gives
	// the natural shift; but we cannot shift further than e_min allows,
	// which is what keeps subnormals rounding at the right bit position.
	exponent += f.Precision - 1
	rshift := size - f.Precision
	if alt := f.EMin - exponent; alt > rshift {
		rshift = alt
	}

	sig, lf := shiftRight(significand, rshift)
	if sticky {
		switch lf {
		case ExactlyZero:
			lf = LessThanHalf
		case ExactlyHalf:
			lf = MoreThanHalf
		}
	}
	exponent += rshift

	isTiny := sig.Cmp(f.IntBit()) < 0

	if roundUp(ctx.rounding, lf, sign, sig.Bit(0) == 1) {
		sig = new(big.Int).Add(sig, big1)
		if sig.Cmp(f.MaxSignificand()) > 0 {
			sig = new(big.Int).Rsh(sig, 1)
			exponent++
		}
	}

	if exponent > f.EMax {
		def := f.makeOverflowValue(ctx.rounding, sign)
		result, err := ctx.signal(Exception{Kind: KindOverflow, Op: op, Default: def})
		if err != nil {
			return Binary{}, err
		}
		return ctx.signal(Exception{Kind: KindInexact, Op: op, Default: result})
	}

	if ctx.tininessAfter {
		isTiny = sig.Cmp(f.IntBit()) < 0
	}
	isInexact := lf != ExactlyZero

	result := newBinary(f, sign, exponent+f.eBias, sig)

	if isTiny {
		kind := KindUnderflowExact
		if isInexact {
			kind = KindUnderflowInexact
		}
		underflowed, err := ctx.signal(Exception{Kind: kind, Op: op, Default: result})
		if err != nil || !isInexact {
			return underflowed, err
		}
		return ctx.signal(Exception{Kind: KindInexact, Op: op, Default: underflowed})
	}
	if isInexact {
		return ctx.signal(Exception{Kind: KindInexact, Op: op, Default: result})
	}
	return result, nil
}
