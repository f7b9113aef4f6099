package binary

import "math/big"

// Binary is an immutable quadruple (format, sign, biased exponent,
// significand) following the specification's non-IEEE internal
// convention:
//
//   - finite non-zero: eBiased in [1, e_max+e_bias], significand in
//     [1, max_significand]; subnormal iff eBiased == 1 and significand <
//     int_bit; normal iff int_bit <= significand <= max_significand.
//   - zero: eBiased == 1, significand == 0 (note the shift versus IEEE's
//     biased exponent 0).
//   - infinity: eBiased == 0, significand == 0.
//   - NaN: eBiased == 0, significand != 0; quiet iff the quiet-bit is set.
//
// Values are never mutated; every operation returns a new Binary. Binary
// is deliberately a small value-ish struct (not a pointer) the way the
// original's Binary namedtuple is immutable data, though significand is
// carried by pointer to *big.Int since Go's big.Int is itself mutable -
// every constructor here takes ownership of a fresh, private big.Int.
type Binary struct {
	fmt         BinaryFormat
	sign        bool
	eBiased     int
	significand *big.Int
}

// Format returns the value's format.
func (b Binary) Format() BinaryFormat { return b.fmt }

// Sign reports the sign bit (true means negative).
func (b Binary) Sign() bool { return b.sign }

// newBinary validates and constructs a Binary, matching the invariants the
// original's Binary.__new__ enforces.
func newBinary(fmt BinaryFormat, sign bool, eBiased int, significand *big.Int) Binary {
	if eBiased < 0 || eBiased > fmt.EMax+fmt.eBias {
		panic("binary: biased exponent out of range")
	}
	if eBiased == 0 {
		if significand.Sign() < 0 || significand.Cmp(fmt.IntBit()) >= 0 {
			panic("binary: NaN/infinity significand out of range")
		}
	} else if significand.Sign() < 0 || significand.Cmp(fmt.MaxSignificand()) > 0 {
		panic("binary: finite significand out of range")
	}
	return Binary{fmt: fmt, sign: sign, eBiased: eBiased, significand: new(big.Int).Set(significand)}
}

// IsZero reports whether the value is +0 or -0.
func (b Binary) IsZero() bool { return b.eBiased == 1 && b.significand.Sign() == 0 }

// IsFinite reports whether the value is zero, subnormal, or normal (not
// infinite and not NaN).
func (b Binary) IsFinite() bool { return b.eBiased != 0 }

// IsInfinite reports whether the value is +infinity or -infinity.
func (b Binary) IsInfinite() bool { return b.eBiased == 0 && b.significand.Sign() == 0 }

// IsNaN reports whether the value is a quiet or signalling NaN.
func (b Binary) IsNaN() bool { return b.eBiased == 0 && b.significand.Sign() != 0 }

// IsSignalling reports whether the value is a signalling NaN.
func (b Binary) IsSignalling() bool {
	return b.IsNaN() && b.significand.Cmp(b.fmt.QuietBit()) < 0
}

// IsSubnormal reports whether the value is finite, non-zero, with the
// minimal biased exponent and a significand below the integer bit.
func (b Binary) IsSubnormal() bool {
	return b.eBiased == 1 && b.significand.Sign() != 0 && b.significand.Cmp(b.fmt.IntBit()) < 0
}

// IsNormal reports whether the value is finite, non-zero, and not
// subnormal.
func (b Binary) IsNormal() bool {
	return b.IsFinite() && b.significand.Sign() != 0 && !b.IsSubnormal()
}

// NaNPayload returns the NaN payload (significand with the quiet-bit
// cleared); only meaningful when IsNaN().
func (b Binary) NaNPayload() *big.Int {
	return new(big.Int).And(b.significand, new(big.Int).Sub(b.fmt.QuietBit(), big1))
}

// exponent returns the unbiased true exponent of a finite non-zero value.
func (b Binary) exponent() int { return b.eBiased - b.fmt.eBias }

// exponentInt returns the integer exponent of the significand treated as
// an integer (i.e. exponent() - (precision-1)).
func (b Binary) exponentInt() int { return b.exponent() - (b.fmt.Precision - 1) }

// Significand returns a copy of the raw significand bits.
func (b Binary) Significand() *big.Int { return new(big.Int).Set(b.significand) }

// BiasedExponent returns the internal biased exponent field.
func (b Binary) BiasedExponent() int { return b.eBiased }

// --- Format value factories ------------------------------------------------

// MakeZero returns a zero of the given sign.
func (f BinaryFormat) MakeZero(sign bool) Binary {
	return newBinary(f, sign, 1, big.NewInt(0))
}

// MakeOne returns 1 (or -1) in this format.
func (f BinaryFormat) MakeOne(sign bool) Binary {
	return newBinary(f, sign, f.eBias, f.IntBit())
}

// MakeInfinity returns +infinity or -infinity.
func (f BinaryFormat) MakeInfinity(sign bool) Binary {
	return newBinary(f, sign, 0, big.NewInt(0))
}

// MakeLargestFinite returns the finite value of maximal magnitude.
func (f BinaryFormat) MakeLargestFinite(sign bool) Binary {
	return newBinary(f, sign, f.EMax+f.eBias, f.MaxSignificand())
}

// MakeSmallestFinite returns the smallest subnormal, or the smallest
// normal if forceNormal is set.
func (f BinaryFormat) MakeSmallestFinite(sign bool, forceNormal bool) Binary {
	sig := big.NewInt(1)
	if forceNormal {
		sig = f.IntBit()
	}
	return newBinary(f, sign, 1, sig)
}

// MakeNaN returns a NaN with the given sign, signalling status, and
// payload. Payload bits above QuietBitPos are silently dropped; a
// signalling NaN with a zero payload is silently promoted to payload 1.
func (f BinaryFormat) MakeNaN(sign bool, signalling bool, payload *big.Int) Binary {
	p := new(big.Int).And(payload, new(big.Int).Sub(f.QuietBit(), big1))
	if signalling {
		if p.Sign() == 0 {
			p = big.NewInt(1)
		}
	} else {
		p = new(big.Int).Or(p, f.QuietBit())
	}
	return newBinary(f, sign, 0, p)
}

// makeOverflowValue returns the result of an overflowing operation: either
// a signed infinity or the largest finite value, per rounding mode.
func (f BinaryFormat) makeOverflowValue(rounding Rounding, sign bool) Binary {
	if roundUp(rounding, MoreThanHalf, sign, false) {
		return f.MakeInfinity(sign)
	}
	return f.MakeLargestFinite(sign)
}

// makeUnderflowValue returns the result of an operation determined (often
// early) to underflow to zero, per rounding mode.
func (f BinaryFormat) makeUnderflowValue(rounding Rounding, sign bool, forceNormal bool) Binary {
	if roundUp(rounding, LessThanHalf, sign, false) {
		return f.MakeSmallestFinite(sign, forceNormal)
	}
	return f.MakeZero(sign)
}

// makeAbruptUnderflowValue substitutes the abrupt-underflow result for a
// default underflow value, preserving the sign.
func makeAbruptUnderflowValue(def Binary, rounding Rounding) Binary {
	return def.fmt.makeUnderflowValue(rounding, def.sign, true)
}

// --- Quiet computational operations (§12 supplement) -----------------------

// SetSign returns a copy of b with the sign bit set to sign.
func (b Binary) SetSign(sign bool) Binary {
	r := b
	r.significand = new(big.Int).Set(b.significand)
	r.sign = sign
	return r
}

// withSign is SetSign as an unexported helper for internal call sites.
func (b Binary) withSign(sign bool) Binary { return b.SetSign(sign) }

// CopySign returns b with the sign of other.
func (b Binary) CopySign(other Binary) Binary { return b.SetSign(other.sign) }

// CopyNegate returns b with its sign flipped.
func (b Binary) CopyNegate() Binary { return b.SetSign(!b.sign) }

// CopyAbs returns b with the sign cleared.
func (b Binary) CopyAbs() Binary { return b.SetSign(false) }

// SetPayload returns a quiet NaN with the given payload in b's format, or
// the zero value and false if payload does not fit.
func (b Binary) SetPayload(payload *big.Int) (Binary, bool) {
	if payload.Sign() < 0 || payload.Cmp(b.fmt.QuietBit()) >= 0 {
		return Binary{}, false
	}
	return b.fmt.MakeNaN(b.sign, false, payload), true
}

// SetPayloadSignalling returns a signalling NaN with the given payload, or
// the zero value and false if it does not fit or would be silently
// promoted away from the requested payload of zero.
func (b Binary) SetPayloadSignalling(payload *big.Int) (Binary, bool) {
	if payload.Sign() <= 0 || payload.Cmp(b.fmt.QuietBit()) >= 0 {
		return Binary{}, false
	}
	return b.fmt.MakeNaN(b.sign, true, payload), true
}

// propagateNaN returns the quiet-NaN propagation result of an operation
// over the given operands, per §4.11: pick the first operand NaN whose
// payload fits below quiet_bit of the destination format, else the first
// NaN; emit SignallingNaNOperand if any input NaN was signalling.
func (f BinaryFormat) propagateNaN(ctx *Context, op string, operands ...Binary) Binary {
	var nans []Binary
	for _, v := range operands {
		if v.IsNaN() {
			nans = append(nans, v)
		}
	}
	chosen := nans[0]
	for _, n := range nans {
		if n.NaNPayload().Cmp(f.QuietBit()) < 0 {
			chosen = n
			break
		}
	}
	result := f.MakeNaN(chosen.sign, false, chosen.NaNPayload())
	anySignalling := false
	for _, n := range nans {
		if n.IsSignalling() {
			anySignalling = true
			break
		}
	}
	if anySignalling {
		v, _ := ctx.signal(Exception{Kind: KindSignallingNaNOperand, Op: op, Default: result})
		return v
	}
	return result
}
