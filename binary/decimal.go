package binary

import (
	"math/big"
	"strconv"
	"strings"
)

// FromString parses s (a decimal or, with a "0x"/"0X" prefix, hexadecimal
// floating literal, or one of "inf"/"nan"/"snan" with an optional sign and
// payload) into a correctly rounded Binary in format f, per §4.16.
func (f BinaryFormat) FromString(ctx *Context, s string) (Binary, error) {
	orig := s
	s = strings.TrimSpace(s)
	sign := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		sign = true
		s = s[1:]
	}

	lower := strings.ToLower(s)
	switch {
	case lower == "inf" || lower == "infinity":
		return f.MakeInfinity(sign), nil
	case strings.HasPrefix(lower, "nan") || strings.HasPrefix(lower, "snan"):
		return f.parseNaNLiteral(sign, lower)
	case strings.HasPrefix(lower, "0x"):
		return f.fromHexString(ctx, sign, s[2:], orig)
	default:
		return f.fromDecimalString(ctx, sign, s, orig)
	}
}

func (f BinaryFormat) parseNaNLiteral(sign bool, lower string) (Binary, error) {
	signalling := strings.HasPrefix(lower, "snan")
	rest := strings.TrimPrefix(lower, "snan")
	rest = strings.TrimPrefix(rest, "nan")
	payload := big.NewInt(0)
	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		p, ok := new(big.Int).SetString(rest[1:len(rest)-1], 10)
		if !ok {
			return Binary{}, newArgumentError(rest, "invalid NaN payload")
		}
		payload = p
	} else if rest != "" {
		return Binary{}, newArgumentError(rest, "invalid NaN literal")
	}
	return f.MakeNaN(sign, signalling, payload), nil
}

// fromDecimalString parses an unsigned decimal literal
// [digits][.digits][(e|E)[+-]digits] and rounds it exactly via a big.Rat
// intermediate: math/big's exact rational arithmetic is the natural tool
// for a conversion whose entire point is correctness, and no example
// repository in the corpus offers a decimal-lexing or bignum-rational
// library of its own to prefer over it.
func (f BinaryFormat) fromDecimalString(ctx *Context, sign bool, s string, orig string) (Binary, error) {
	if s == "" {
		return Binary{}, newArgumentError(orig, "empty numeric literal")
	}

	mantissa := s
	exp10 := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		n, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return Binary{}, newArgumentError(orig, "invalid exponent")
		}
		exp10 = n
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Binary{}, newArgumentError(orig, "invalid numeric literal")
	}
	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Binary{}, newArgumentError(orig, "invalid digit in numeric literal")
		}
	}

	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Binary{}, newArgumentError(orig, "invalid numeric literal")
	}
	exp10 -= len(fracPart)

	r := new(big.Rat).SetInt(num)
	if exp10 > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp10)), nil)
		r.Mul(r, new(big.Rat).SetInt(scale))
	} else if exp10 < 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp10)), nil)
		r.Quo(r, new(big.Rat).SetInt(scale))
	}

	return f.ratToBinary(ctx, sign, r, OpFromString)
}

// fromHexString parses an unsigned hex-significand literal
// [hexdigits][.hexdigits]p[+-]digits (the "p" binary exponent is
// mandatory, matching C99/IEEE hex float syntax).
func (f BinaryFormat) fromHexString(ctx *Context, sign bool, s string, orig string) (Binary, error) {
	pIdx := strings.IndexAny(s, "pP")
	if pIdx < 0 {
		return Binary{}, newArgumentError(orig, "hex float literal requires a p-exponent")
	}
	mantissa := s[:pIdx]
	exp2, err := strconv.Atoi(s[pIdx+1:])
	if err != nil {
		return Binary{}, newArgumentError(orig, "invalid binary exponent")
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
	}
	digits := intPart + fracPart
	if digits == "" {
		return Binary{}, newArgumentError(orig, "invalid hex float literal")
	}

	num, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return Binary{}, newArgumentError(orig, "invalid hex digit")
	}
	exp2 -= 4 * len(fracPart)

	if num.Sign() == 0 {
		return f.MakeZero(sign), nil
	}
	return f.normalize(ctx, sign, exp2, num, OpFromString)
}

// ratToBinary rounds the exact non-negative rational r into format f, using
// enough guard bits beyond the target precision that the final classified
// lost fraction (bumped, via the sticky flag, for any truncated remainder)
// is exactly the one the infinite-precision value would produce.
func (f BinaryFormat) ratToBinary(ctx *Context, sign bool, r *big.Rat, op string) (Binary, error) {
	if r.Sign() == 0 {
		return f.MakeZero(sign), nil
	}

	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	shift := den.BitLen() - num.BitLen() + f.Precision + 2

	var shiftedNum *big.Int
	if shift >= 0 {
		shiftedNum = new(big.Int).Lsh(num, uint(shift))
	} else {
		den = new(big.Int).Lsh(den, uint(-shift))
		shiftedNum = num
	}

	quot, rem := new(big.Int).QuoRem(shiftedNum, den, new(big.Int))
	sticky := rem.Sign() != 0
	return f.normalizeSticky(ctx, sign, -shift, quot, sticky, op)
}
