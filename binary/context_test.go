package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, DefaultRounding, ctx.Rounding())
	assert.Equal(t, FlagClear, ctx.Flags())
	assert.False(t, ctx.TininessAfter())
}

func TestCloneIsIndependent(t *testing.T) {
	ctx := NewContext()
	ctx.SetRounding(Ceiling)
	clone := ctx.Clone()
	clone.SetRounding(Floor)

	assert.Equal(t, Ceiling, ctx.Rounding())
	assert.Equal(t, Floor, clone.Rounding())
}

func TestRecordExceptionHandlerAppendsException(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	ctx.SetHandler(KindDivideByZero, Handler{Kind: HandlerRecordException})

	one := f.MakeOne(false)
	zero := f.MakeZero(false)
	_, err := f.Divide(ctx, one, zero)
	require.NoError(t, err)

	exceptions := ctx.Exceptions()
	require.Len(t, exceptions, 1)
	assert.Equal(t, KindDivideByZero, exceptions[0].Kind)

	_, ok := DecodeOrigin(exceptions[0].Origin)
	assert.True(t, ok)
}

func TestNoFlagHandlerSuppressesFlag(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	ctx.SetHandler(KindInexact, Handler{Kind: HandlerNoFlag})

	_, err := f.RoundToIntegralExact(ctx, mustParse(t, f, "1.5"))
	require.NoError(t, err)
	assert.Equal(t, FlagClear, ctx.Flags())
}

func TestHandlerLookupWalksToParentKind(t *testing.T) {
	f := IEEEdouble
	ctx := NewContext()
	ctx.SetHandler(KindInvalid, Handler{Kind: HandlerRaise})

	negOne := mustParse(t, f, "-1")
	_, err := f.Sqrt(ctx, negOne)
	require.Error(t, err)
	var sigErr *SignalError
	assert.ErrorAs(t, err, &sigErr)
	assert.Equal(t, KindInvalidSqrt, sigErr.Exception.Kind)
}

func TestSetHandlerRejectsSubstituteValueXorOnNonMulDivKind(t *testing.T) {
	ctx := NewContext()
	assert.Panics(t, func() {
		ctx.SetHandler(KindOverflow, Handler{Kind: HandlerSubstituteValueXor})
	})
}

func TestScopedRestoresPreviousContextOnPanic(t *testing.T) {
	original := NewContext()
	original.SetRounding(Floor)
	SetCurrent(original)

	assert.Panics(t, func() {
		Scoped(nil, func(c *Context) {
			c.SetRounding(Ceiling)
			panic("boom")
		})
	})

	assert.Equal(t, Floor, Current().Rounding())
}
