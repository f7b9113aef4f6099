package binary

import "math/big"

// FMA returns lhs*rhs + addend, correctly rounded as a single operation
// (no intermediate rounding of the product), per §4.9.
func (f BinaryFormat) FMA(ctx *Context, lhs, rhs, addend Binary) (Binary, error) {
	if (lhs.IsZero() && rhs.IsInfinite()) || (lhs.IsInfinite() && rhs.IsZero()) {
		return ctx.signal(Exception{Kind: KindInvalidFMA, Op: OpFMA, Default: f.MakeNaN(false, false, big.NewInt(0))})
	}
	if lhs.IsNaN() || rhs.IsNaN() {
		return f.propagateNaN(ctx, OpFMA, lhs, rhs, addend), nil
	}

	// The product of lhs and rhs, computed in a format wide enough that
	// the multiply below is always exact, so only the final add rounds.
	productFmt, err := FromTriple(
		lhs.fmt.Precision+rhs.fmt.Precision,
		lhs.fmt.EMax+rhs.fmt.EMax+1,
		lhs.fmt.EMin-(lhs.fmt.Precision-1)+rhs.fmt.EMin-(rhs.fmt.Precision-1),
	)
	if err != nil {
		return Binary{}, err
	}

	// The significands are widened to productFmt's precision so each
	// operand keeps its value under productFmt's exponent convention.
	productCtx := NewContext()
	lhsInProduct := Binary{fmt: productFmt, sign: lhs.sign, eBiased: reBias(lhs, productFmt), significand: new(big.Int).Lsh(lhs.significand, uint(productFmt.Precision-lhs.fmt.Precision))}
	rhsInProduct := Binary{fmt: productFmt, sign: rhs.sign, eBiased: reBias(rhs, productFmt), significand: new(big.Int).Lsh(rhs.significand, uint(productFmt.Precision-rhs.fmt.Precision))}

	product, err := productFmt.Multiply(productCtx, lhsInProduct, rhsInProduct)
	if err != nil {
		return Binary{}, err
	}
	if product.IsNaN() {
		return f.propagateNaN(ctx, OpFMA, product, addend), nil
	}

	// addSub aligns each operand under its own format and rounds the exact
	// sum once, to f.
	return f.addSub(ctx, OpAdd, product, addend)
}

// reBias re-expresses v's biased exponent field relative to a wider
// format sharing the same unbiased exponent convention. Infinity's
// eBiased==0 encoding is format-independent, so it passes through
// unchanged rather than through the finite exponent formula.
func reBias(v Binary, wider BinaryFormat) int {
	if v.IsInfinite() {
		return 0
	}
	if v.IsZero() {
		return 1
	}
	return v.exponent() + wider.eBias
}
