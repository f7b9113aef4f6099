package binary

import "math/big"

// toIntegral is the shared core behind RoundToIntegral, RoundToIntegralExact,
// ConvertToInteger, and ConvertToIntegerExact (§4.13): round x to the
// nearest representable integer value (in x's own format, as a Binary
// still) under rounding, reporting whether anything was discarded.
func (f BinaryFormat) toIntegral(ctx *Context, rounding Rounding, x Binary) (Binary, LostFraction, error) {
	if x.IsNaN() {
		return f.propagateNaN(ctx, OpRoundToIntegral, x), ExactlyZero, nil
	}
	if !x.IsFinite() {
		return x, ExactlyZero, nil
	}

	eInt := x.exponentInt()
	if eInt >= 0 {
		return x, ExactlyZero, nil
	}

	shiftBits := -eInt
	sig, lf := shiftRight(x.significand, shiftBits)
	if roundUp(rounding, lf, x.sign, sig.Bit(0) == 1) {
		sig = new(big.Int).Add(sig, big1)
	}

	result, err := f.normalize(ctx, x.sign, 0, sig, OpRoundToIntegral)
	return result, lf, err
}

// RoundToIntegral rounds x to the nearest integral value in this format
// using ctx's rounding mode, without signalling Inexact.
func (f BinaryFormat) RoundToIntegral(ctx *Context, x Binary) (Binary, error) {
	result, _, err := f.toIntegral(ctx, ctx.rounding, x)
	return result, err
}

// RoundToIntegralExact is RoundToIntegral, additionally signalling Inexact
// when the value was not already integral.
func (f BinaryFormat) RoundToIntegralExact(ctx *Context, x Binary) (Binary, error) {
	result, lf, err := f.toIntegral(ctx, ctx.rounding, x)
	if err != nil || lf == ExactlyZero {
		return result, err
	}
	return ctx.signal(Exception{Kind: KindInexact, Op: OpRoundToIntegral, Default: result})
}

// convertDispatch signals against an integer-typed exception, discarding
// the substituted Binary value a handler might otherwise produce: integers
// have no Binary representation to substitute, so handlers beyond flag-
// raising, recording, and raising are not meaningful here.
func (f BinaryFormat) convertDispatch(ctx *Context, kind Kind, fallback *big.Int) (*big.Int, error) {
	_, err := ctx.signal(Exception{Kind: kind, Op: OpConvertToInteger, Default: f.MakeNaN(false, false, big.NewInt(0))})
	if err != nil {
		return nil, err
	}
	return fallback, nil
}

// ConvertToInteger rounds x to an integer under rounding and clamps it
// into intFmt, signalling InvalidConvertToInteger for non-finite operands
// or out-of-range magnitudes.
func (f BinaryFormat) ConvertToInteger(ctx *Context, intFmt IntegerFormat, rounding Rounding, x Binary) (*big.Int, error) {
	return f.convertToIntegerImpl(ctx, intFmt, rounding, x, false)
}

// ConvertToIntegerExact is ConvertToInteger, additionally signalling
// Inexact when x was not already integral.
func (f BinaryFormat) ConvertToIntegerExact(ctx *Context, intFmt IntegerFormat, rounding Rounding, x Binary) (*big.Int, error) {
	return f.convertToIntegerImpl(ctx, intFmt, rounding, x, true)
}

func (f BinaryFormat) convertToIntegerImpl(ctx *Context, intFmt IntegerFormat, rounding Rounding, x Binary, raiseInexact bool) (*big.Int, error) {
	if x.IsNaN() || x.IsInfinite() {
		return f.convertDispatch(ctx, KindInvalidConvertToInteger, big.NewInt(0))
	}

	rounded, lf, err := f.toIntegral(ctx, rounding, x)
	if err != nil {
		return nil, err
	}

	value := new(big.Int).Set(rounded.significand)
	if shift := rounded.exponentInt(); shift > 0 {
		value.Lsh(value, uint(shift))
	} else if shift < 0 {
		// rounded is integral, so the bits shifted out are all zero.
		value.Rsh(value, uint(-shift))
	}
	if rounded.sign {
		value.Neg(value)
	}

	clamped, outOfRange := intFmt.Clamp(value)
	if outOfRange {
		return f.convertDispatch(ctx, KindInvalidConvertToInteger, clamped)
	}

	if raiseInexact && lf != ExactlyZero {
		if _, err := ctx.signal(Exception{Kind: KindInexact, Op: OpConvertToInteger, Default: rounded}); err != nil {
			return nil, err
		}
	}
	return clamped, nil
}
