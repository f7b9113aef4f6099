package binary

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareOrdersFiniteValues(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	one := mustParse(t, f, "1")
	two := mustParse(t, f, "2")

	c, err := f.Compare(ctx, one, two)
	require.NoError(t, err)
	assert.Equal(t, CompareLess, c)

	c, err = f.Compare(ctx, two, one)
	require.NoError(t, err)
	assert.Equal(t, CompareGreater, c)

	c, err = f.Compare(ctx, one, one)
	require.NoError(t, err)
	assert.Equal(t, CompareEqual, c)
}

func TestCompareZeroesAreEqual(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	pos := f.MakeZero(false)
	neg := f.MakeZero(true)

	c, err := f.Compare(ctx, pos, neg)
	require.NoError(t, err)
	assert.Equal(t, CompareEqual, c)
}

func TestCompareQuietNaNIsUnorderedWithoutFlag(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	nan := f.MakeNaN(false, false, big.NewInt(0))
	one := mustParse(t, f, "1")

	c, err := f.Compare(ctx, nan, one)
	require.NoError(t, err)
	assert.Equal(t, CompareUnordered, c)
	assert.Equal(t, FlagClear, ctx.Flags())
}

func TestCompareSignalQuietNaNRaisesInvalid(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	nan := f.MakeNaN(false, false, big.NewInt(0))
	one := mustParse(t, f, "1")

	c, err := f.CompareSignal(ctx, nan, one)
	require.NoError(t, err)
	assert.Equal(t, CompareUnordered, c)
	assert.Equal(t, FlagInvalid, ctx.Flags())
}

func TestCompareTotalOrdersSignedZeroesAndNaNs(t *testing.T) {
	f := IEEEdouble
	negZero := f.MakeZero(true)
	posZero := f.MakeZero(false)
	one := mustParse(t, f, "1")
	negNaN := f.MakeNaN(true, false, big.NewInt(5))
	posNaN := f.MakeNaN(false, false, big.NewInt(5))

	assert.True(t, negZero.CompareTotal(posZero))
	assert.False(t, posZero.CompareTotal(negZero))
	assert.True(t, posZero.CompareTotal(one))
	assert.True(t, negNaN.CompareTotal(negZero))
	assert.True(t, one.CompareTotal(posNaN))

	// totalOrder is a total order: exactly one of a<=b, b<=a holds when a!=b,
	// and both hold when a==b under the total order's own sense of equality.
	assert.True(t, negNaN.CompareTotal(posNaN))
	assert.False(t, posNaN.CompareTotal(negNaN))
}

func TestMaxMinFamily(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	negOne := mustParse(t, f, "-1")
	two := mustParse(t, f, "2")

	max, err := f.Max(ctx, negOne, two)
	require.NoError(t, err)
	assert.True(t, max.CompareTotal(two))

	maxMag, err := f.MaxMag(ctx, negOne, two)
	require.NoError(t, err)
	assert.True(t, maxMag.CompareTotal(two))

	min, err := f.Min(ctx, negOne, two)
	require.NoError(t, err)
	assert.True(t, min.CompareTotal(negOne))

	minMag, err := f.MinMag(ctx, negOne, two)
	require.NoError(t, err)
	assert.True(t, minMag.CompareTotal(negOne))
}

func TestMaxNumPrefersNumberOverNaN(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	nan := f.MakeNaN(false, false, big.NewInt(0))
	one := mustParse(t, f, "1")

	result, err := f.MaxNum(ctx, nan, one)
	require.NoError(t, err)
	assert.True(t, result.CompareTotal(one))
}
