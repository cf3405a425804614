package parse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cval/core"
	"github.com/katalvlaran/cval/parse"
)

// TestParse_String walks the accepted string shapes, including bare
// imaginary tokens, scientific notation and shuffled term order.
func TestParse_String(t *testing.T) {
	cases := []struct {
		in     string
		re, im float64
	}{
		{"3+4i", 3, 4},
		{"3-4i", 3, -4},
		{"-i", 0, -1},
		{"+i", 0, 1},
		{"i", 0, 1},
		{"i+1", 1, 1},
		{"7", 7, 0},
		{"-2.5", -2.5, 0},
		{"2.5e3i - 1", -1, 2500},
		{"1e-5+2i", 1e-5, 2},
		{" 4 + 2i ", 4, 2},
		{"1+2+3i", 3, 3}, // terms of the same kind accumulate
	}
	for _, tc := range cases {
		z, err := parse.Parse(tc.in)
		require.NoError(t, err, "input %q must parse", tc.in)
		assert.Equal(t, tc.re, z.Re(), "real part of %q", tc.in)
		assert.Equal(t, tc.im, z.Im(), "imaginary part of %q", tc.in)
	}
}

// TestParse_StringInvalid verifies malformed strings fail with the
// sentinel and no partial result.
func TestParse_StringInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "3+4j", "++2", "1..5", "i2", "3+", "NaN"} {
		z, err := parse.Parse(in)
		assert.ErrorIs(t, err, parse.ErrInvalidArgument, "input %q must be rejected", in)
		assert.Equal(t, core.Zero, z, "no partial result for %q", in)
	}
}

// TestParse_Map covers Cartesian and polar key shapes, partial keys, and
// the map[string]any variant with mixed numeric kinds.
func TestParse_Map(t *testing.T) {
	z, err := parse.Parse(map[string]float64{"re": 3, "im": -4})
	require.NoError(t, err)
	assert.Equal(t, core.New(3, -4), z)

	z, err = parse.Parse(map[string]float64{"im": 2})
	require.NoError(t, err)
	assert.Equal(t, core.New(0, 2), z, "missing Cartesian key defaults to zero")

	z, err = parse.Parse(map[string]float64{"abs": 2, "arg": math.Pi / 2})
	require.NoError(t, err)
	assert.InDelta(t, 0, z.Re(), 1e-15, "polar form converts through cos")
	assert.InDelta(t, 2, z.Im(), 1e-15, "polar form converts through sin")

	z, err = parse.Parse(map[string]any{"re": 3, "im": 4.0})
	require.NoError(t, err)
	assert.Equal(t, core.New(3, 4), z, "any-map accepts mixed numeric kinds")
}

// TestParse_MapInvalid verifies alien key sets and non-numeric values are
// rejected.
func TestParse_MapInvalid(t *testing.T) {
	_, err := parse.Parse(map[string]float64{"foo": 1})
	assert.ErrorIs(t, err, parse.ErrInvalidArgument, "unknown key shape")

	_, err = parse.Parse(map[string]any{"re": "three"})
	assert.ErrorIs(t, err, parse.ErrInvalidArgument, "non-numeric map value")
}

// TestParse_Numbers covers plain Go numeric kinds and complex literals.
func TestParse_Numbers(t *testing.T) {
	z, err := parse.Parse(5)
	require.NoError(t, err)
	assert.Equal(t, core.New(5, 0), z)

	z, err = parse.Parse(float32(2.5))
	require.NoError(t, err)
	assert.Equal(t, core.New(2.5, 0), z)

	z, err = parse.Parse(uint8(7))
	require.NoError(t, err)
	assert.Equal(t, core.New(7, 0), z)

	z, err = parse.Parse(3 + 4i)
	require.NoError(t, err)
	assert.Equal(t, core.New(3, 4), z, "complex128 maps componentwise")
}

// TestParse_Passthrough verifies an already-built value is returned as-is.
func TestParse_Passthrough(t *testing.T) {
	want := core.New(1.25, -8)
	z, err := parse.Parse(want)
	require.NoError(t, err)
	assert.Equal(t, want, z)
}

// TestParse_Vector covers the slice and array pair forms.
func TestParse_Vector(t *testing.T) {
	z, err := parse.Parse([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, core.New(3, 4), z)

	z, err = parse.Parse([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, core.New(5, 0), z, "single element means a pure real")

	z, err = parse.Parse([2]float64{-1, 2})
	require.NoError(t, err)
	assert.Equal(t, core.New(-1, 2), z)

	_, err = parse.Parse([]float64{1, 2, 3})
	assert.ErrorIs(t, err, parse.ErrInvalidArgument, "over-long vector")

	_, err = parse.Parse([]float64{})
	assert.ErrorIs(t, err, parse.ErrInvalidArgument, "empty vector")
}

// TestParse_NonFinite verifies the constructor contract: NaN and Inf never
// enter through Parse.
func TestParse_NonFinite(t *testing.T) {
	_, err := parse.Parse(math.NaN())
	assert.ErrorIs(t, err, parse.ErrInvalidArgument)

	_, err = parse.Parse(math.Inf(1))
	assert.ErrorIs(t, err, parse.ErrInvalidArgument)

	_, err = parse.Parse(map[string]float64{"re": math.Inf(-1)})
	assert.ErrorIs(t, err, parse.ErrInvalidArgument)
}

// TestParse_UnsupportedType verifies the catch-all rejection.
func TestParse_UnsupportedType(t *testing.T) {
	_, err := parse.Parse(struct{}{})
	assert.ErrorIs(t, err, parse.ErrInvalidArgument)

	_, err = parse.Parse(nil)
	assert.ErrorIs(t, err, parse.ErrInvalidArgument)
}

// TestFromPolar verifies the polar constructor against the 3-4-5 triple.
func TestFromPolar(t *testing.T) {
	z := parse.FromPolar(5, math.Atan2(4, 3))
	assert.InDelta(t, 3, z.Re(), 1e-14)
	assert.InDelta(t, 4, z.Im(), 1e-14)
}
