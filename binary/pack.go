package binary

import "math/big"

// fieldWidths returns the interchange exponent and significand field
// widths for f, accounting for whether the integer bit is implicit
// (standard IEEE binary16/32/64/128) or explicit (e.g. x87 extended) in
// the packed representation (§4.15).
func (f BinaryFormat) fieldWidths() (eWidth, fractionWidth uint) {
	if f.explicitIntBit {
		return uint(f.fmtWidth - f.Precision - 1), uint(f.Precision)
	}
	return uint(f.fmtWidth - f.Precision), uint(f.Precision - 1)
}

// Pack encodes x into its format's interchange bit pattern (§4.15), sign
// in the top bit, then the exponent field, then the significand field.
// x's own significand already stores exactly the bits an interchange
// format wants for the zero/subnormal case (the internal and external
// conventions were chosen to agree there). For implicit-integer-bit
// formats the normal case's leading bit is masked away, and infinity/NaN
// carry no integer bit; for explicit-integer-bit formats the field is one
// bit wider and the integer bit is stored literally, which means it must
// be set by hand for infinity and NaN since neither has one internally.
func (x Binary) Pack() (*big.Int, error) {
	f := x.fmt
	if !f.IsInterchange() {
		return nil, newArgumentError(f, "format is not an interchange format")
	}

	eWidth, fractionWidth := f.fieldWidths()

	var expField *big.Int
	var fraction *big.Int

	switch {
	case x.IsNaN() || x.IsInfinite():
		expField = new(big.Int).Sub(new(big.Int).Lsh(big1, eWidth), big1)
		fraction = new(big.Int).Set(x.significand)
		if f.explicitIntBit {
			fraction.Or(fraction, f.IntBit())
		}
	case x.IsZero() || x.IsSubnormal():
		expField = big.NewInt(0)
		fraction = new(big.Int).Set(x.significand)
	default:
		expField = big.NewInt(int64(x.eBiased))
		if f.explicitIntBit {
			fraction = new(big.Int).Set(x.significand)
		} else {
			fraction = new(big.Int).And(x.significand, new(big.Int).Sub(f.IntBit(), big1))
		}
	}

	result := new(big.Int).Lsh(expField, fractionWidth)
	result.Or(result, fraction)
	if x.sign {
		result.Or(result, new(big.Int).Lsh(big1, fractionWidth+eWidth))
	}
	return result, nil
}

// Unpack decodes an interchange bit pattern into a Binary in format f.
func (f BinaryFormat) Unpack(bits *big.Int) (Binary, error) {
	if !f.IsInterchange() {
		return Binary{}, newArgumentError(f, "format is not an interchange format")
	}
	if bits.Sign() < 0 || bits.BitLen() > f.fmtWidth {
		return Binary{}, newArgumentError(bits, "value does not fit in this format's interchange width")
	}

	eWidth, fractionWidth := f.fieldWidths()

	fractionMask := new(big.Int).Sub(new(big.Int).Lsh(big1, fractionWidth), big1)
	fraction := new(big.Int).And(bits, fractionMask)

	expMask := new(big.Int).Sub(new(big.Int).Lsh(big1, eWidth), big1)
	exp := new(big.Int).And(new(big.Int).Rsh(bits, fractionWidth), expMask)

	sign := new(big.Int).Rsh(bits, fractionWidth+eWidth).Bit(0) == 1

	switch {
	case exp.Sign() == 0:
		sig := fraction
		if f.explicitIntBit {
			sig = new(big.Int).AndNot(fraction, f.IntBit())
		}
		return newBinary(f, sign, 1, sig), nil
	case exp.Cmp(expMask) == 0:
		sig := fraction
		if f.explicitIntBit {
			sig = new(big.Int).AndNot(fraction, f.IntBit())
		}
		if sig.Sign() == 0 {
			return f.MakeInfinity(sign), nil
		}
		return newBinary(f, sign, 0, sig), nil
	default:
		sig := fraction
		if !f.explicitIntBit {
			sig = new(big.Int).Or(fraction, f.IntBit())
		}
		return newBinary(f, sign, int(exp.Int64()), sig), nil
	}
}
