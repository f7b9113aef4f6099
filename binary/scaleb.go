package binary

import "math/big"

// ScaleB returns x * 2^n, correctly rounded (§4.14). Scaling by a power of
// two only ever moves the binary point, so the only way this loses
// information is by overflowing or underflowing the target format.
func (f BinaryFormat) ScaleB(ctx *Context, x Binary, n int) (Binary, error) {
	if x.IsNaN() {
		return f.propagateNaN(ctx, OpScaleB, x), nil
	}
	if !x.IsFinite() || x.IsZero() {
		return x, nil
	}
	return f.normalize(ctx, x.sign, x.exponentInt()+n, x.significand, OpScaleB)
}

// LogBIntegral returns the integer base-2 exponent of x's leading bit
// (§4.14), or one of LogBZero/LogBInf/LogBNaN for the non-finite cases.
func (f BinaryFormat) LogBIntegral(x Binary) int {
	if x.IsNaN() {
		return f.LogBNaN()
	}
	if x.IsInfinite() {
		return f.LogBInf()
	}
	if x.IsZero() {
		return f.LogBZero()
	}
	return x.exponentInt() + x.significand.BitLen() - 1
}

// LogB returns LogBIntegral(x) as a correctly rounded Binary, signalling
// LogBZero for a zero operand and propagating NaNs as usual.
func (f BinaryFormat) LogB(ctx *Context, x Binary) (Binary, error) {
	if x.IsNaN() {
		return f.propagateNaN(ctx, OpLogB, x), nil
	}
	if x.IsInfinite() {
		return f.MakeInfinity(false), nil
	}
	if x.IsZero() {
		return ctx.signal(Exception{Kind: KindLogBZero, Op: OpLogB, Default: f.MakeInfinity(true)})
	}
	return f.FromInt(ctx, big.NewInt(int64(f.LogBIntegral(x))))
}

// FromInt returns the correctly rounded Binary nearest the exact integer n.
func (f BinaryFormat) FromInt(ctx *Context, n *big.Int) (Binary, error) {
	sign := n.Sign() < 0
	mag := new(big.Int).Abs(n)
	if mag.Sign() == 0 {
		return f.MakeZero(sign), nil
	}
	return f.normalize(ctx, sign, 0, mag, OpConvert)
}

// incrementMagnitude returns the next representable value one ulp greater
// in magnitude than x (x finite, non-zero), rolling over into the next
// exponent bucket or to infinity as needed.
func incrementMagnitude(x Binary) Binary {
	newSig := new(big.Int).Add(x.significand, big1)
	if newSig.Cmp(x.fmt.MaxSignificand()) > 0 {
		if x.eBiased+1 > x.fmt.EMax+x.fmt.eBias {
			return x.fmt.MakeInfinity(x.sign)
		}
		return newBinary(x.fmt, x.sign, x.eBiased+1, x.fmt.IntBit())
	}
	return newBinary(x.fmt, x.sign, x.eBiased, newSig)
}

// decrementMagnitude returns the next representable value one ulp less in
// magnitude than x (x finite, non-zero), rolling down into the previous
// exponent bucket or to zero as needed.
func decrementMagnitude(x Binary) Binary {
	newSig := new(big.Int).Sub(x.significand, big1)
	if x.eBiased == 1 {
		return newBinary(x.fmt, x.sign, 1, newSig)
	}
	if newSig.Cmp(x.fmt.IntBit()) < 0 {
		return newBinary(x.fmt, x.sign, x.eBiased-1, x.fmt.MaxSignificand())
	}
	return newBinary(x.fmt, x.sign, x.eBiased, newSig)
}

// NextUp returns the least representable value strictly greater than x
// (§4.14 / §12 supplement).
func (f BinaryFormat) NextUp(ctx *Context, x Binary) Binary {
	if x.IsNaN() {
		return f.propagateNaN(ctx, OpNextUp, x)
	}
	if x.IsZero() {
		return f.MakeSmallestFinite(false, false)
	}
	if x.IsInfinite() {
		if x.sign {
			return f.MakeLargestFinite(true)
		}
		return x
	}
	if x.sign {
		return decrementMagnitude(x)
	}
	return incrementMagnitude(x)
}

// NextDown returns the greatest representable value strictly less than x.
func (f BinaryFormat) NextDown(ctx *Context, x Binary) Binary {
	return f.NextUp(ctx, x.CopyNegate()).CopyNegate()
}
