package binary

import "math/big"

// Sqrt returns the correctly rounded square root of x in this format.
//
// The significand's exact floor square root is computed with math/big's
// arbitrary-precision integer Sqrt (an exact operation: no library offers
// a correctly-rounded *floating* square root, since that correctness is
// exactly what this method must supply), padded with enough extra
// low-order bits that the remainder of floor(sqrt) against its square
// tells us, via a sticky bit, which side of the true irrational root the
// truncated integer falls on. normalizeSticky then rounds exactly as any
// other operation does.
func (f BinaryFormat) Sqrt(ctx *Context, x Binary) (Binary, error) {
	if x.IsNaN() {
		return f.propagateNaN(ctx, OpSqrt, x), nil
	}
	if x.sign {
		if x.IsZero() {
			return f.MakeZero(true), nil
		}
		return ctx.signal(Exception{Kind: KindInvalidSqrt, Op: OpSqrt, Default: f.MakeNaN(false, false, big.NewInt(0))})
	}
	if x.IsZero() {
		return f.MakeZero(false), nil
	}
	if x.IsInfinite() {
		return f.MakeInfinity(false), nil
	}

	sig := new(big.Int).Set(x.significand)
	exp := x.exponentInt()
	if exp%2 != 0 {
		sig.Lsh(sig, 1)
		exp--
	}
	half := exp / 2

	extraBits := f.Precision
	n := new(big.Int).Lsh(sig, uint(2*extraBits))
	root := new(big.Int).Sqrt(n)
	remainder := new(big.Int).Sub(n, new(big.Int).Mul(root, root))
	sticky := remainder.Sign() != 0

	return f.normalizeSticky(ctx, false, half-extraBits, root, sticky, OpSqrt)
}
