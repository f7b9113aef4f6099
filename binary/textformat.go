package binary

import (
	"fmt"
	"strconv"
	"strings"
)

// NaNPayloadMode selects how TextFormat renders a NaN's payload (§4.18).
type NaNPayloadMode int

const (
	// NaNPayloadOmit never appends a payload suffix.
	NaNPayloadOmit NaNPayloadMode = iota
	// NaNPayloadHex appends the payload as "(0x...)".
	NaNPayloadHex
	// NaNPayloadDecimal appends the payload as "(...)" in decimal.
	NaNPayloadDecimal
)

// TextFormat is the pure (no-rounding-policy, no-arithmetic) rendering
// option set of §4.18: it controls presentation only, on top of the
// decimal digits §4.17 already produced (or the significand's raw hex
// digits, for Hex mode).
type TextFormat struct {
	// Hex selects hexadecimal floating-literal rendering (0x1.8p+3)
	// instead of decimal.
	Hex bool

	// ExpDigits controls exponent presentation. Non-negative: always
	// print an exponent padded to at least that many digits; for
	// decimal, 0 suppresses the exponent entirely (always fixed-point).
	// Negative: decimal chooses fixed vs. scientific the way printf's
	// %g does, using |ExpDigits| as the scientific exponent's minimum
	// digit count; hex (which always carries an exponent) treats any
	// negative value as 1.
	ExpDigits int

	ForceExpSign     bool // print '+' on non-negative decimal exponents
	ForceLeadingSign bool // print '+' on non-negative values
	ForcePoint       bool // always print a decimal point
	UpperCase        bool // upper-case the entire rendering
	RStripZeroes     bool // trim trailing zero digits

	Inf  string
	QNaN string
	SNaN string // empty means: render as quiet and raise InvalidToString

	NaNPayload NaNPayloadMode
}

// DefaultTextFormat is the option set ToString/ToHexString render with.
func DefaultTextFormat() TextFormat {
	return TextFormat{
		ExpDigits:  -1,
		Inf:        "inf",
		QNaN:       "nan",
		SNaN:       "snan",
		NaNPayload: NaNPayloadOmit,
	}
}

// HexTextFormat is DefaultTextFormat with Hex rendering selected.
func HexTextFormat() TextFormat {
	opts := DefaultTextFormat()
	opts.Hex = true
	return opts
}

// ToString renders x in the format most implementations mean by
// str(x)/repr(x): the shortest round-tripping decimal form, under
// DefaultTextFormat (§4.18).
func (f BinaryFormat) ToString(x Binary) string {
	s, _ := f.FormatText(NewContext(), x, DefaultTextFormat())
	return s
}

// ToHexString renders x as a hexadecimal floating literal under
// HexTextFormat: the raw significand in hex together with its binary
// exponent, parseable back by FromString. Unlike the decimal form this
// carries no rounding concerns, since the hex digits of the significand
// are exactly its bits.
func (x Binary) ToHexString() string {
	s, _ := x.fmt.FormatText(NewContext(), x, HexTextFormat())
	return s
}

// FormatText renders x under the given options (§4.18). The only way
// this can fail is the documented edge case: an empty SNaN placeholder on
// a signalling NaN, which raises InvalidToString through ctx (a
// HandlerRaise registration surfaces it as an error; otherwise x is
// rendered as if it had been quieted first).
func (f BinaryFormat) FormatText(ctx *Context, x Binary, opts TextFormat) (string, error) {
	signStr := ""
	switch {
	case x.sign:
		signStr = "-"
	case opts.ForceLeadingSign:
		signStr = "+"
	}

	if x.IsNaN() {
		return f.formatNaN(ctx, x, opts, signStr)
	}

	body := opts.Inf
	switch {
	case x.IsInfinite():
		// body already set.
	case opts.Hex:
		body = x.formatHexBody(opts)
	default:
		body = x.formatDecimalBody(opts)
	}

	rendered := signStr + body
	if opts.UpperCase {
		rendered = strings.ToUpper(rendered)
	}
	return rendered, nil
}

func (f BinaryFormat) formatNaN(ctx *Context, x Binary, opts TextFormat, signStr string) (string, error) {
	placeholder := opts.QNaN
	if x.IsSignalling() {
		if opts.SNaN == "" {
			if _, err := ctx.signal(Exception{Kind: KindInvalidToString, Op: OpToString, Default: x}); err != nil {
				return "", err
			}
			x = f.MakeNaN(x.sign, false, x.NaNPayload())
		} else {
			placeholder = opts.SNaN
		}
	}

	s := signStr + placeholder
	switch opts.NaNPayload {
	case NaNPayloadHex:
		s += fmt.Sprintf("(0x%x)", x.NaNPayload())
	case NaNPayloadDecimal:
		s += "(" + x.NaNPayload().String() + ")"
	}
	if opts.UpperCase {
		s = strings.ToUpper(s)
	}
	return s, nil
}

// formatDecimalBody renders a finite, non-NaN, non-infinite x's digits
// (zero included) under opts, without sign or case transformation.
func (x Binary) formatDecimalBody(opts TextFormat) string {
	if x.IsZero() {
		s := "0"
		if opts.ForcePoint {
			s += "."
		}
		return s
	}

	exp10, digits, _ := x.steeleWhiteDigits(0)
	if opts.RStripZeroes {
		digits = stripTrailingZeroes(digits)
	}

	if !useScientific(opts.ExpDigits, exp10) {
		return renderFixed(exp10, digits, opts.ForcePoint)
	}

	var b strings.Builder
	b.WriteByte(digits[0])
	if len(digits) > 1 || opts.ForcePoint {
		b.WriteByte('.')
		b.Write(digits[1:])
	}
	b.WriteByte('e')
	writeExponent(&b, exp10, opts.ForceExpSign, expMinDigits(opts.ExpDigits, false))
	return b.String()
}

// formatHexBody renders a finite, non-NaN, non-infinite, non-zero x as a
// hexadecimal floating literal.
func (x Binary) formatHexBody(opts TextFormat) string {
	if x.IsZero() {
		s := "0x0"
		if opts.ForcePoint {
			s += "."
		}
		s += "p+0"
		return s
	}

	digits := fmt.Sprintf("%x", x.significand)
	// x.exponentInt() is the power of two scaling the significand taken as
	// a plain integer (point after the last digit); placing the point
	// after the first hex digit instead shifts that scale up by 4 bits
	// per digit moved across the point.
	exp := x.exponentInt() + 4*(len(digits)-1)

	if opts.RStripZeroes {
		digits = string(stripTrailingZeroes([]byte(digits)))
	}

	var b strings.Builder
	b.WriteString("0x")
	b.WriteByte(digits[0])
	if len(digits) > 1 || opts.ForcePoint {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('p')
	// Hex exponents always carry a sign, matching C's %a.
	writeExponent(&b, exp, true, expMinDigits(opts.ExpDigits, true))
	return b.String()
}

func useScientific(expDigits, exp10 int) bool {
	switch {
	case expDigits == 0:
		return false
	case expDigits > 0:
		return true
	default:
		return exp10 < -4 || exp10 >= fixedNotationBound
	}
}

func expMinDigits(expDigits int, hex bool) int {
	switch {
	case expDigits > 0:
		return expDigits
	case expDigits < 0:
		if hex {
			return 1
		}
		return -expDigits
	default:
		return 0
	}
}

func writeExponent(b *strings.Builder, exp int, forceSign bool, minDigits int) {
	switch {
	case exp < 0:
		b.WriteByte('-')
		exp = -exp
	case forceSign:
		b.WriteByte('+')
	}
	s := strconv.Itoa(exp)
	for len(s) < minDigits {
		s = "0" + s
	}
	b.WriteString(s)
}

// renderFixed lays digits out as plain (non-scientific) decimal, with
// exp10 the decimal exponent of the leading digit.
func renderFixed(exp10 int, digits []byte, forcePoint bool) string {
	var b strings.Builder
	n := len(digits)
	if exp10 >= 0 {
		intLen := exp10 + 1
		if intLen >= n {
			b.Write(digits)
			b.WriteString(strings.Repeat("0", intLen-n))
			if forcePoint {
				b.WriteByte('.')
			}
		} else {
			b.Write(digits[:intLen])
			b.WriteByte('.')
			b.Write(digits[intLen:])
		}
	} else {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp10-1))
		b.Write(digits)
	}
	return b.String()
}

func stripTrailingZeroes(digits []byte) []byte {
	end := len(digits)
	for end > 1 && digits[end-1] == '0' {
		end--
	}
	return digits[:end]
}
