package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIEEEWellKnownWidths(t *testing.T) {
	cases := []struct {
		width             int
		precision         int
		eMax              int
		interchangeWidth  int
	}{
		{16, 11, 15, 16},
		{32, 24, 127, 32},
		{64, 53, 1023, 64},
		{128, 113, 16383, 128},
	}
	for _, c := range cases {
		f, err := FromIEEE(c.width)
		require.NoError(t, err)
		assert.Equal(t, c.precision, f.Precision)
		assert.Equal(t, c.eMax, f.EMax)
		assert.True(t, f.IsInterchange())
		assert.Equal(t, c.interchangeWidth, f.FmtWidth())
	}
}

func TestFromIEEERejectsUnsupportedWidth(t *testing.T) {
	_, err := FromIEEE(24)
	assert.Error(t, err)
}

func TestFromTripleValidatesParameters(t *testing.T) {
	_, err := FromTriple(2, 10, -10)
	assert.Error(t, err)

	_, err = FromTriple(10, 1, -10)
	assert.Error(t, err)

	_, err = FromTriple(10, 10, 0)
	assert.Error(t, err)
}

func TestWellKnownFormatsMatchFromIEEE(t *testing.T) {
	double, err := FromIEEE(64)
	require.NoError(t, err)
	assert.True(t, IEEEdouble.Equal(double))
}

func TestDecimalPrecisionRoundTripsBinary64(t *testing.T) {
	// binary64 needs 17 significant decimal digits to round-trip exactly.
	assert.Equal(t, 17, IEEEdouble.DecimalPrecision())
}
