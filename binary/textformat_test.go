package binary

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTextExpDigitsModes(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	x := mustParse(t, f, "12345")

	opts := DefaultTextFormat()
	opts.ExpDigits = 0
	s, err := f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "12345", s)

	opts.ExpDigits = 3
	s, err = f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "1.2345e004", s)

	opts.ExpDigits = -1
	s, err = f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "12345", s, "auto mode stays fixed below the scientific threshold")
}

func TestFormatTextForceExpSign(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	x := mustParse(t, f, "5")

	opts := DefaultTextFormat()
	opts.ExpDigits = 1
	opts.ForceExpSign = true
	s, err := f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "5e+0", s)
}

func TestFormatTextForceLeadingSign(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.ForceLeadingSign = true
	s, err := f.FormatText(ctx, mustParse(t, f, "5"), opts)
	require.NoError(t, err)
	assert.Equal(t, "+5", s)

	s, err = f.FormatText(ctx, mustParse(t, f, "-5"), opts)
	require.NoError(t, err)
	assert.Equal(t, "-5", s)
}

func TestFormatTextForcePoint(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.ForcePoint = true
	s, err := f.FormatText(ctx, mustParse(t, f, "5"), opts)
	require.NoError(t, err)
	assert.Equal(t, "5.", s)

	s, err = f.FormatText(ctx, f.MakeZero(false), opts)
	require.NoError(t, err)
	assert.Equal(t, "0.", s)
}

func TestFormatTextUpperCase(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.ExpDigits = 1
	opts.UpperCase = true
	s, err := f.FormatText(ctx, mustParse(t, f, "5"), opts)
	require.NoError(t, err)
	assert.Equal(t, "5E0", s)

	opts = HexTextFormat()
	opts.UpperCase = true
	s, err = f.FormatText(ctx, mustParse(t, f, "1"), opts)
	require.NoError(t, err)
	assert.Equal(t, "0X1.0000000000000P+0", s)
}

func TestFormatTextRStripZeroes(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.ExpDigits = 1
	opts.RStripZeroes = true
	x, err := f.FromString(ctx, "1.5")
	require.NoError(t, err)
	s, err := f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "1.5e0", s)
}

func TestFormatTextCustomInfPlaceholder(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.Inf = "Infinity"
	s, err := f.FormatText(ctx, f.MakeInfinity(false), opts)
	require.NoError(t, err)
	assert.Equal(t, "Infinity", s)

	s, err = f.FormatText(ctx, f.MakeInfinity(true), opts)
	require.NoError(t, err)
	assert.Equal(t, "-Infinity", s)
}

func TestFormatTextCustomQNaNPlaceholder(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.QNaN = "NaN"
	qnan := f.MakeNaN(false, false, big.NewInt(0))
	s, err := f.FormatText(ctx, qnan, opts)
	require.NoError(t, err)
	assert.Equal(t, "NaN", s)
}

func TestFormatTextCustomSNaNPlaceholder(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()

	opts := DefaultTextFormat()
	opts.SNaN = "sNaN"
	snan := f.MakeNaN(false, true, big.NewInt(0))
	s, err := f.FormatText(ctx, snan, opts)
	require.NoError(t, err)
	assert.Equal(t, "sNaN", s)
	assert.Equal(t, FlagClear, ctx.Flags(), "a non-empty SNaN placeholder renders without signalling")
}

func TestFormatTextNaNPayloadModes(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	qnan := f.MakeNaN(false, false, big.NewInt(42))

	opts := DefaultTextFormat()
	opts.NaNPayload = NaNPayloadOmit
	s, err := f.FormatText(ctx, qnan, opts)
	require.NoError(t, err)
	assert.Equal(t, "nan", s)

	opts.NaNPayload = NaNPayloadDecimal
	s, err = f.FormatText(ctx, qnan, opts)
	require.NoError(t, err)
	assert.Equal(t, "nan(42)", s)

	opts.NaNPayload = NaNPayloadHex
	s, err = f.FormatText(ctx, qnan, opts)
	require.NoError(t, err)
	assert.Equal(t, "nan(0x2a)", s)
}

// TestFormatTextEmptySNaNPlaceholderSignalsInvalidToString is the
// documented §4.18 edge case: an empty SNaN placeholder renders the value
// as if it had been quieted, and raises InvalidToString along the way.
func TestFormatTextEmptySNaNPlaceholderSignalsInvalidToString(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	snan := f.MakeNaN(false, true, big.NewInt(7))

	opts := DefaultTextFormat()
	opts.SNaN = ""
	s, err := f.FormatText(ctx, snan, opts)
	require.NoError(t, err)
	assert.Equal(t, "nan", s)
	assert.Equal(t, FlagInvalid, ctx.Flags())
}

func TestFormatTextEmptySNaNPlaceholderRaisesWithHandlerRaise(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	ctx.SetHandler(KindInvalidToString, Handler{Kind: HandlerRaise})
	snan := f.MakeNaN(false, true, big.NewInt(7))

	opts := DefaultTextFormat()
	opts.SNaN = ""
	_, err := f.FormatText(ctx, snan, opts)
	require.Error(t, err)
	var sigErr *SignalError
	assert.ErrorAs(t, err, &sigErr)
	assert.Equal(t, KindInvalidToString, sigErr.Exception.Kind)
}

func TestFormatTextHexMode(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	x := mustParse(t, f, "0x1.8p+3")

	opts := HexTextFormat()
	opts.RStripZeroes = true
	s, err := f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "0x1.8p+3", s)

	zero := f.MakeZero(false)
	s, err = f.FormatText(ctx, zero, HexTextFormat())
	require.NoError(t, err)
	assert.Equal(t, "0x0p+0", s)
}

func TestFormatTextHexExpDigitsNegativeMeansOneDigitMinimum(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	x := mustParse(t, f, "1")

	opts := HexTextFormat()
	opts.ExpDigits = -5
	s, err := f.FormatText(ctx, x, opts)
	require.NoError(t, err)
	assert.Equal(t, "0x1.0000000000000p+0", s)
}
