package binary

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTripsFinite(t *testing.T) {
	f := IEEEdouble
	cases := []string{"0", "-0", "1", "-1", "3.5", "1e300", "1e-300", "0x1p-1070"}

	for _, s := range cases {
		x := mustParse(t, f, s)
		bits, err := x.Pack()
		require.NoError(t, err)

		back, err := f.Unpack(bits)
		require.NoError(t, err)
		assert.True(t, x.CompareTotal(back), "round-trip mismatch for %q", s)
	}
}

func TestPackUnpackRoundTripsSpecials(t *testing.T) {
	f := IEEEdouble
	inf := f.MakeInfinity(false)
	negInf := f.MakeInfinity(true)
	qnan := f.MakeNaN(false, false, big.NewInt(7))
	snan := f.MakeNaN(true, true, big.NewInt(3))

	for _, x := range []Binary{inf, negInf, qnan, snan} {
		bits, err := x.Pack()
		require.NoError(t, err)
		back, err := f.Unpack(bits)
		require.NoError(t, err)
		assert.True(t, x.CompareTotal(back))
	}
}

func TestPackRequiresInterchangeFormat(t *testing.T) {
	f, err := FromTriple(20, 100, -100)
	require.NoError(t, err)
	x := f.MakeOne(false)

	_, err = x.Pack()
	assert.Error(t, err)
}

func TestUnpackMatchesKnownBitPattern(t *testing.T) {
	// binary64 encoding of 1.0: sign 0, exponent 1023, fraction 0.
	bits := new(big.Int).Lsh(big.NewInt(1023), 52)
	v, err := IEEEdouble.Unpack(bits)
	require.NoError(t, err)
	assert.True(t, v.CompareTotal(IEEEdouble.MakeOne(false)))
}

// X87Extended stores its integer bit literally rather than implying it;
// these guard the explicit-integer-bit branch of Pack/Unpack (§4.15).
func TestPackUnpackRoundTripsX87ExtendedFinite(t *testing.T) {
	f := X87Extended
	cases := []string{"0", "-0", "1", "-1", "3.5", "1e300", "1e-300"}

	for _, s := range cases {
		x := mustParse(t, f, s)
		bits, err := x.Pack()
		require.NoError(t, err)

		back, err := f.Unpack(bits)
		require.NoError(t, err)
		assert.True(t, x.CompareTotal(back), "round-trip mismatch for %q", s)
	}
}

func TestPackUnpackRoundTripsX87ExtendedSpecials(t *testing.T) {
	f := X87Extended
	inf := f.MakeInfinity(false)
	negInf := f.MakeInfinity(true)
	qnan := f.MakeNaN(false, false, big.NewInt(7))
	snan := f.MakeNaN(true, true, big.NewInt(3))

	for _, x := range []Binary{inf, negInf, qnan, snan} {
		bits, err := x.Pack()
		require.NoError(t, err)
		back, err := f.Unpack(bits)
		require.NoError(t, err)
		assert.True(t, x.CompareTotal(back))
	}
}

func TestPackX87ExtendedSetsExplicitIntegerBit(t *testing.T) {
	f := X87Extended
	one := f.MakeOne(false)

	bits, err := one.Pack()
	require.NoError(t, err)

	_, fractionWidth := f.fieldWidths()
	// The integer bit is the top bit of the 64-bit significand field,
	// i.e. bit (fractionWidth - 1) of the packed word.
	assert.Equal(t, uint(1), bits.Bit(int(fractionWidth-1)))

	inf := f.MakeInfinity(false)
	bits, err = inf.Pack()
	require.NoError(t, err)
	assert.Equal(t, uint(1), bits.Bit(int(fractionWidth-1)), "infinity must carry the explicit integer bit")
}
