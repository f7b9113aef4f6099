package binary

import (
	"math/big"
	"strings"
)

// ToDecimalString renders x as the shortest decimal literal that, parsed
// back and rounded to x's format, recovers x exactly (§4.17, testable as
// the decimal round-trip property in §8).
func (f BinaryFormat) ToDecimalString(x Binary) string {
	return x.decimalText(0)
}

// ToDecimalStringPrecision renders x with exactly digits significant
// decimal digits (rounded to nearest, ties to even). digits must be >= 1.
func (f BinaryFormat) ToDecimalStringPrecision(x Binary, digits int) string {
	return x.decimalText(digits)
}

func (x Binary) decimalText(digits int) string {
	sign := ""
	if x.sign {
		sign = "-"
	}
	switch {
	case x.IsNaN():
		kind := "nan"
		if x.IsSignalling() {
			kind = "snan"
		}
		if p := x.NaNPayload(); p.Sign() != 0 {
			return sign + kind + "(" + p.String() + ")"
		}
		return sign + kind
	case x.IsInfinite():
		return sign + "inf"
	case x.IsZero():
		return sign + "0"
	}

	exp10, digitStr, _ := x.steeleWhiteDigits(digits)
	return sign + assembleDecimal(exp10, digitStr)
}

var big10 = big.NewInt(10)

// steeleWhiteDigits implements the boundary-driven Steele-White digit
// generator of §4.17: x's exact value is carried as the rational R/S,
// with mMinus/mPlus the (possibly asymmetric) distance in R/S-units to
// the previous/next representable value in x's own format - not the
// precision of some intermediate working float. digits == 0 requests the
// shortest round-tripping string; digits > 0 requests exactly that many
// significant digits.
//
// Returns the decimal exponent of the leading digit, the digit string
// ('0'-'9' bytes, most significant first), and whether the result is
// inexact (the digit string does not exactly equal x).
func (x Binary) steeleWhiteDigits(digits int) (exp10 int, digitStr []byte, inexact bool) {
	f := x.fmt
	sig := new(big.Int).Set(x.significand)
	e := x.exponentInt() // x == sig * 2^e exactly

	// x sits at the smallest significand of a normal binade whose lower
	// neighbor is in the previous (finer) binade - the one case where the
	// gap to the next representable value below is half the gap above.
	// The minimal normal (eBiased == 1) doesn't count: its lower neighbor
	// is the largest subnormal, which shares the same ULP.
	boundary := x.IsNormal() && x.eBiased > 1 && sig.Cmp(f.IntBit()) == 0

	R := new(big.Int)
	S := new(big.Int)
	mPlus := new(big.Int)
	mMinus := new(big.Int)

	switch {
	case e >= 0 && !boundary:
		R.Lsh(sig, uint(e+1))
		S.SetInt64(2)
		mPlus.Lsh(big1, uint(e))
		mMinus.Set(mPlus)
	case e >= 0 && boundary:
		R.Lsh(sig, uint(e+2))
		S.SetInt64(4)
		mMinus.Lsh(big1, uint(e))
		mPlus.Lsh(mMinus, 1)
	case e < 0 && !boundary:
		R.Lsh(sig, 1)
		S.Lsh(big1, uint(-e+1))
		mPlus.SetInt64(1)
		mMinus.SetInt64(1)
	default: // e < 0 && boundary
		R.Lsh(sig, 2)
		S.Lsh(big1, uint(-e+2))
		mMinus.SetInt64(1)
		mPlus.SetInt64(2)
	}

	// Round-to-even: if x's own last significand bit is even, the
	// boundary it sits on is closed (a tie at that boundary resolves to
	// x); otherwise the boundary is open.
	closed := sig.Bit(0) == 0

	k := 0
	scratch := new(big.Int)
	for scratch.Mul(R, big10).Cmp(S) < 0 {
		R.Mul(R, big10)
		mPlus.Mul(mPlus, big10)
		mMinus.Mul(mMinus, big10)
		k--
	}
	for {
		scratch.Add(R, mPlus)
		scratch.Lsh(scratch, 1)
		twoS := new(big.Int).Lsh(S, 1)
		if scratch.Cmp(twoS) < 0 {
			break
		}
		S.Mul(S, big10)
		k++
	}

	if digits > 0 {
		buf := make([]byte, 0, digits)
		rem := new(big.Int)
		for i := 0; i < digits; i++ {
			R.Mul(R, big10)
			u := new(big.Int)
			u.DivMod(R, S, rem)
			buf = append(buf, byte('0'+u.Int64()))
			R, rem = rem, R
		}
		inexact = R.Sign() != 0
		if inexact {
			twice := new(big.Int).Lsh(R, 1)
			cmp := twice.Cmp(S)
			roundUp := cmp > 0 || (cmp == 0 && (buf[len(buf)-1]-'0')%2 == 1)
			if roundUp {
				k += roundDigitsUp(buf)
			}
		}
		return k - 1, buf, inexact
	}

	var buf []byte
	rem := new(big.Int)
	for {
		R.Mul(R, big10)
		mPlus.Mul(mPlus, big10)
		mMinus.Mul(mMinus, big10)

		u := new(big.Int)
		u.DivMod(R, S, rem)
		R, rem = rem, R
		d := byte(u.Int64())

		var low, high bool
		if closed {
			low = R.Cmp(mMinus) <= 0
			high = new(big.Int).Add(R, mPlus).Cmp(S) >= 0
		} else {
			low = R.Cmp(mMinus) < 0
			high = new(big.Int).Add(R, mPlus).Cmp(S) > 0
		}

		switch {
		case !low && !high:
			buf = append(buf, '0'+d)
			continue
		case low && !high:
			buf = append(buf, '0'+d)
			return k - 1, buf, R.Sign() != 0
		case high && !low:
			buf = append(buf, '0'+d)
			k += roundDigitsUp(buf)
			return k - 1, buf, true
		default:
			buf = append(buf, '0'+d)
			twice := new(big.Int).Lsh(R, 1)
			if cmp := twice.Cmp(S); cmp > 0 || (cmp == 0 && d%2 == 1) {
				k += roundDigitsUp(buf)
			}
			return k - 1, buf, true
		}
	}
}

// roundDigitsUp increments a decimal digit buffer in place, propagating
// carry, and returns 1 if the carry propagated out of the leading digit
// (e.g. "99" -> "10", the value's decimal point shifting right by one).
func roundDigitsUp(buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] != '9' {
			buf[i]++
			return 0
		}
		buf[i] = '0'
	}
	copy(buf[1:], buf[:len(buf)-1])
	buf[0] = '1'
	return 1
}

// fixedNotationBound is the smallest leading-digit decimal exponent at
// which assembleDecimal switches from fixed to scientific notation,
// matching the threshold fmt's %v verb uses for float64.
const fixedNotationBound = 21

// assembleDecimal renders a digit string and the decimal exponent of its
// leading digit as plain decimal or scientific notation, whichever keeps
// the result compact; this is the %g-style default TextFormat (§4.18)
// builds on top of.
func assembleDecimal(exp10 int, digits []byte) string {
	if !useScientific(-1, exp10) {
		return renderFixed(exp10, digits, false)
	}
	var b strings.Builder
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.Write(digits[1:])
	}
	b.WriteByte('e')
	writeExponent(&b, exp10, false, 0)
	return b.String()
}
