package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtOfPerfectSquareIsExact(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	four := mustParse(t, f, "4")

	root, err := f.Sqrt(ctx, four)
	require.NoError(t, err)
	assert.True(t, root.CompareTotal(mustParse(t, f, "2")))
	assert.Equal(t, FlagClear, ctx.Flags())
}

func TestSqrtOfNonSquareIsInexact(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	two := mustParse(t, f, "2")

	root, err := f.Sqrt(ctx, two)
	require.NoError(t, err)
	assert.Equal(t, FlagInexact, ctx.Flags())

	// sqrt(2) is bracketed tightly by 1.414213562 and 1.414213563.
	lower := mustParse(t, f, "1.414213562")
	upper := mustParse(t, f, "1.414213563")
	assert.True(t, lower.CompareTotal(root))
	assert.True(t, root.CompareTotal(upper))
}

func TestSqrtOfNegativeIsInvalid(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	negOne := mustParse(t, f, "-1")

	result, err := f.Sqrt(ctx, negOne)
	require.NoError(t, err)
	assert.True(t, result.IsNaN())
	assert.Equal(t, FlagInvalid, ctx.Flags())
}

func TestSqrtOfNegativeZeroIsNegativeZero(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	negZero := f.MakeZero(true)

	result, err := f.Sqrt(ctx, negZero)
	require.NoError(t, err)
	assert.True(t, result.IsZero())
	assert.True(t, result.Sign())
}

func TestSqrtOfInfinityIsInfinity(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	result, err := f.Sqrt(ctx, f.MakeInfinity(false))
	require.NoError(t, err)
	assert.True(t, result.IsInfinite())
	assert.False(t, result.Sign())
}
