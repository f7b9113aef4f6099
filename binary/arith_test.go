package binary

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, f BinaryFormat, s string) Binary {
	t.Helper()
	v, err := f.FromString(NewContext(), s)
	require.NoError(t, err)
	return v
}

func TestAddIdentity(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	x := mustParse(t, f, "3.5")
	zero := f.MakeZero(false)

	sum, err := f.Add(ctx, x, zero)
	require.NoError(t, err)
	assert.True(t, sum.CompareTotal(x))
}

func TestSubtractSelfUnderFloorIsSignedZero(t *testing.T) {
	f := IEEEdouble
	x := mustParse(t, f, "7.25")

	ctx := NewContext()
	ctx.SetRounding(Floor)
	diff, err := f.Subtract(ctx, x, x)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
	assert.True(t, diff.Sign())
}

func TestSubtractSelfDefaultRoundingIsPositiveZero(t *testing.T) {
	f := IEEEdouble
	x := mustParse(t, f, "7.25")

	diff, err := f.Subtract(NewContext(), x, x)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
	assert.False(t, diff.Sign())
}

func TestMultiplyExponentIsExact(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	two := f.MakeOne(false)
	two, err := f.Add(ctx, two, two.CopyAbs())
	require.NoError(t, err)

	eight, err := f.Multiply(ctx, two, mustParse(t, f, "4"))
	require.NoError(t, err)

	want := mustParse(t, f, "8")
	assert.True(t, eight.CompareTotal(want))
	assert.Equal(t, FlagClear, ctx.Flags())
}

func TestDivideSelfIsOne(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	x := mustParse(t, f, "123.456")

	quot, err := f.Divide(ctx, x, x)
	require.NoError(t, err)
	assert.True(t, quot.CompareTotal(f.MakeOne(false)))
}

func TestDivideByZeroSignalsDivisionByZero(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	one := f.MakeOne(false)
	zero := f.MakeZero(false)

	result, err := f.Divide(ctx, one, zero)
	require.NoError(t, err)
	assert.True(t, result.IsInfinite())
	assert.False(t, result.Sign())
	assert.Equal(t, FlagDivisionByZero, ctx.Flags())
}

func TestZeroDivideByZeroIsInvalid(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	zero := f.MakeZero(false)

	result, err := f.Divide(ctx, zero, zero)
	require.NoError(t, err)
	assert.True(t, result.IsNaN())
	assert.Equal(t, FlagInvalid, ctx.Flags())
}

func TestAddInfinityAndFiniteIsInfinity(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	inf := f.MakeInfinity(false)
	x := mustParse(t, f, "5")

	sum, err := f.Add(ctx, inf, x)
	require.NoError(t, err)
	assert.True(t, sum.IsInfinite())
	assert.False(t, sum.Sign())
}

func TestOppositeInfinitiesAddIsInvalid(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	pos := f.MakeInfinity(false)
	neg := f.MakeInfinity(true)

	result, err := f.Add(ctx, pos, neg)
	require.NoError(t, err)
	assert.True(t, result.IsNaN())
	assert.Equal(t, FlagInvalid, ctx.Flags())
}

func TestRaiseHandlerReturnsSignalError(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	ctx.SetHandler(KindDivideByZero, Handler{Kind: HandlerRaise})

	one := f.MakeOne(false)
	zero := f.MakeZero(false)
	_, err := f.Divide(ctx, one, zero)
	require.Error(t, err)
	var sigErr *SignalError
	assert.ErrorAs(t, err, &sigErr)
	assert.Equal(t, KindDivideByZero, sigErr.Exception.Kind)
}

func TestSubstituteValueHandlerReplacesResult(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	replacement := mustParse(t, f, "42")
	ctx.SetHandler(KindDivideByZero, Handler{
		Kind:     HandlerSubstituteValue,
		Callback: func(Exception) Binary { return replacement },
	})

	one := f.MakeOne(false)
	zero := f.MakeZero(false)
	result, err := f.Divide(ctx, one, zero)
	require.NoError(t, err)
	assert.True(t, result.CompareTotal(replacement))
	assert.Equal(t, FlagDivisionByZero, ctx.Flags())
}

func TestFromIntRoundTripsSmallIntegers(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	v, err := f.FromInt(ctx, big.NewInt(-1024))
	require.NoError(t, err)
	assert.Equal(t, FlagClear, ctx.Flags())
	assert.True(t, v.sign)

	back, err := f.ConvertToInteger(ctx, Int64Format, HalfEven, v)
	require.NoError(t, err)
	assert.Equal(t, int64(-1024), back.Int64())
}
