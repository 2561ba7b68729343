package torque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestL8L16_BitReplication verifies the widening and narrowing rules between
// the integer luminance kinds.
func TestL8L16_BitReplication(t *testing.T) {
	assert.Equal(t, L16(0x0000), L8(0x00).L16())
	assert.Equal(t, L16(0x0101), L8(0x01).L16())
	assert.Equal(t, L16(0x8080), L8(0x80).L16())
	assert.Equal(t, L16(0xffff), L8(0xff).L16())

	// narrowing truncates the low byte
	assert.Equal(t, L8(0x00), L16(0x00ff).L8())
	assert.Equal(t, L8(0x80), L16(0x80ff).L8())
	assert.Equal(t, L8(0xff), L16(0xffff).L8())
}

// TestL_Quantisation verifies the normalised float conversions, including
// the values from the packed LS scenario.
func TestL_Quantisation(t *testing.T) {
	cases := []struct {
		in   L
		want L8
	}{
		{0, 0},
		{0.003921569, 1},
		{0.5019608, 128},
		{1.0, 255},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.L8(), "L(%v)", tc.in)
	}

	assert.Equal(t, L16(0), L(0).L16())
	assert.Equal(t, L16(65535), L(1).L16())
	assert.Equal(t, L16(32768), L(0.5).L16())

	// round trips through the float kind divide by the same constant
	assert.Equal(t, L8(200), L8(200).L().L8())
	assert.Equal(t, L16(40000), L16(40000).L().L16())
}

// TestL_Saturation verifies out-of-range floats clamp instead of wrapping.
func TestL_Saturation(t *testing.T) {
	assert.Equal(t, L8(0), L(-0.5).L8())
	assert.Equal(t, L8(255), L(1.5).L8())
	assert.Equal(t, L16(0), L(-2).L16())
	assert.Equal(t, L16(65535), L(2).L16())
}

// TestLuminance verifies the CCIR 601 grey conversion in each precision.
func TestLuminance(t *testing.T) {
	// floor(0.299*255) = 76
	assert.Equal(t, L8(76), Rgb24{R: 255}.L8())
	assert.Equal(t, L8(149), Rgb24{G: 255}.L8())
	assert.Equal(t, L8(29), Rgb24{B: 255}.L8())
	assert.Equal(t, L8(255), Rgb24{255, 255, 255}.L8())
	assert.Equal(t, L8(0), Rgb24{}.L8())

	assert.Equal(t, L16(19594), Rgb48{R: 65535}.L16())
	assert.Equal(t, L16(65535), Rgb48{65535, 65535, 65535}.L16())

	require.InDelta(t, 0.299, float64(Rgb{R: 1}.L()), 1e-6)
	require.InDelta(t, 1.0, float64(Rgb{1, 1, 1}.L()), 1e-6)
}

// TestGreyToColor verifies monochrome kinds lift to equal RGB channels.
func TestGreyToColor(t *testing.T) {
	assert.Equal(t, Rgb24{7, 7, 7}, L8(7).Rgb24())
	assert.Equal(t, Rgb48{0x0707, 0x0707, 0x0707}, L8(7).Rgb48())
	assert.Equal(t, Rgb48{300, 300, 300}, L16(300).Rgb48())
	assert.Equal(t, Rgb{0.25, 0.25, 0.25}, L(0.25).Rgb())
}

// TestRgbWidthConversions verifies per-channel widening and narrowing of
// the compound kinds.
func TestRgbWidthConversions(t *testing.T) {
	assert.Equal(t, Rgb48{0xffff, 0x0101, 0x0000}, Rgb24{0xff, 0x01, 0x00}.Rgb48())
	assert.Equal(t, Rgb24{0xff, 0x01, 0x00}, Rgb48{0xffff, 0x01ff, 0x00ff}.Rgb24())

	f := Rgb24{255, 0, 51}.Rgb()
	require.InDelta(t, 1.0, float64(f.R), 1e-6)
	require.InDelta(t, 0.0, float64(f.G), 1e-6)
	require.InDelta(t, 0.2, float64(f.B), 1e-6)

	assert.Equal(t, Rgb24{255, 0, 128}, Rgb{2, -1, 0.5019608}.Rgb24())
}

// TestKindSize verifies the byte widths reported per element kind.
func TestKindSize(t *testing.T) {
	assert.Equal(t, 1, KindL8.Size())
	assert.Equal(t, 2, KindL16.Size())
	assert.Equal(t, 4, KindL.Size())
	assert.Equal(t, 3, KindRgb24.Size())
	assert.Equal(t, 6, KindRgb48.Size())
	assert.Equal(t, 12, KindRgb.Size())
}
