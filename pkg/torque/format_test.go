package torque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat_Bijection verifies FormatOf and Decompose invert each other
// over the nine recognised formats.
func TestFormat_Bijection(t *testing.T) {
	formats := []Format{
		Mono, Mono8, Mono16,
		RgbPacked, Rgb24Packed, Rgb48Packed,
		RgbPlanar, Rgb888Planar, Rgb161616Planar,
	}
	for _, f := range formats {
		layout, kind, err := f.Decompose()
		require.NoError(t, err, f.String())
		back, err := FormatOf(layout, kind)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, back, f.String())
	}
}

// TestFormat_UnsupportedTuples verifies compound kinds are rejected under a
// planar layout and unknown tags fail to decompose.
func TestFormat_UnsupportedTuples(t *testing.T) {
	for _, k := range []Kind{KindRgb24, KindRgb48, KindRgb} {
		_, err := FormatOf(PlanarLayout, k)
		require.ErrorIs(t, err, ErrUnsupportedFormat, k.String())
	}
	_, _, err := FormatUnknown.Decompose()
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

// TestFormat_IsColor verifies the colour class of every format tag.
func TestFormat_IsColor(t *testing.T) {
	for _, f := range []Format{Mono, Mono8, Mono16} {
		assert.False(t, f.IsColor(), f.String())
		assert.Equal(t, 1, f.Channels(), f.String())
	}
	for _, f := range []Format{RgbPacked, Rgb24Packed, Rgb48Packed} {
		assert.True(t, f.IsColor(), f.String())
		assert.Equal(t, 1, f.Channels(), f.String())
	}
	for _, f := range []Format{RgbPlanar, Rgb888Planar, Rgb161616Planar} {
		assert.True(t, f.IsColor(), f.String())
		assert.Equal(t, 3, f.Channels(), f.String())
	}
}

// TestKind_ScalarColorPairing verifies the channel-width pairing used by
// the layout conversions.
func TestKind_ScalarColorPairing(t *testing.T) {
	assert.Equal(t, KindL8, KindRgb24.Scalar())
	assert.Equal(t, KindL16, KindRgb48.Scalar())
	assert.Equal(t, KindL, KindRgb.Scalar())
	assert.Equal(t, KindRgb24, KindL8.Color())
	assert.Equal(t, KindRgb48, KindL16.Color())
	assert.Equal(t, KindRgb, KindL.Color())
	// scalars and compounds map to themselves the other way
	assert.Equal(t, KindL8, KindL8.Scalar())
	assert.Equal(t, KindRgb, KindRgb.Color())
}
