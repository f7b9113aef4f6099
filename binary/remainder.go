package binary

import "math/big"

// Remainder returns x - n*y where n is the integer nearest to the exact
// value x/y (ties rounding to even), computed exactly per §4.10. The IEEE
// remainder operation never loses information: it is always exact, so
// normalize only ever shifts the result into place and never rounds it.
func (f BinaryFormat) Remainder(ctx *Context, x, y Binary) (Binary, error) {
	return f.remainderImpl(ctx, x, y, true)
}

// Fmod returns x - n*y where n is the integer part of x/y truncated
// toward zero, the C fmod() convention, per §4.10's fmod variant.
func (f BinaryFormat) Fmod(ctx *Context, x, y Binary) (Binary, error) {
	return f.remainderImpl(ctx, x, y, false)
}

func (f BinaryFormat) remainderImpl(ctx *Context, x, y Binary, roundToNearest bool) (Binary, error) {
	if !x.fmt.Equal(y.fmt) {
		panic("binary: remainder requires both operands have the same format")
	}
	if x.IsNaN() || y.IsNaN() {
		return f.propagateNaN(ctx, OpRemainder, x, y), nil
	}
	if x.IsInfinite() || y.IsZero() {
		return ctx.signal(Exception{Kind: KindInvalidRemainder, Op: OpRemainder, Default: f.MakeNaN(false, false, big.NewInt(0))})
	}
	if y.IsInfinite() {
		if x.IsSubnormal() {
			return ctx.signal(Exception{Kind: KindUnderflowExact, Op: OpRemainder, Default: x})
		}
		return x, nil
	}
	if x.IsZero() {
		return newBinary(f, x.sign, 1, big.NewInt(0)), nil
	}

	ex, ey := x.exponentInt(), y.exponentInt()
	xm := new(big.Int).Set(x.significand)
	ym := new(big.Int).Set(y.significand)
	e := ex
	if ey < e {
		e = ey
	}
	xm.Lsh(xm, uint(ex-e))
	ym.Lsh(ym, uint(ey-e))

	var n *big.Int
	if roundToNearest {
		n = nearestQuotientEven(xm, ym)
	} else {
		n = new(big.Int).Quo(xm, ym)
	}

	rm := new(big.Int).Sub(xm, new(big.Int).Mul(n, ym))
	sign := x.sign
	if rm.Sign() < 0 {
		sign = !sign
		rm.Neg(rm)
	}

	return f.normalize(ctx, sign, e, rm, OpRemainder)
}

// nearestQuotientEven returns the integer nearest xm/ym, ties rounding to
// an even quotient, for non-negative xm, ym.
func nearestQuotientEven(xm, ym *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(xm, ym, new(big.Int))
	twiceR := new(big.Int).Lsh(r, 1)
	switch twiceR.Cmp(ym) {
	case 1:
		q.Add(q, big1)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big1)
		}
	}
	return q
}
