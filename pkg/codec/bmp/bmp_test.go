package bmp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// TestCodec_Header verifies the magic predicate.
func TestCodec_Header(t *testing.T) {
	c := New()
	assert.Equal(t, "bmp", c.Name())
	assert.Equal(t, 2, c.HeaderSize())
	assert.True(t, c.Matches([]byte{'B', 'M'}))
	assert.False(t, c.Matches([]byte{0x89, 'P'}))
}

// TestCodec_RoundTripColor verifies 8-bit colour survives a full cycle.
func TestCodec_RoundTripColor(t *testing.T) {
	c := New()

	src, err := torque.NewPackedFrom(2, 2, []torque.Rgb24{
		{10, 20, 30}, {40, 50, 60}, {70, 80, 90}, {200, 210, 220},
	})
	require.NoError(t, err)
	defer src.Release()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, src, "bmp", 80))
	assert.True(t, c.Matches(buf.Bytes()[:2]))

	back, err := c.Decode(&buf)
	require.NoError(t, err)
	defer back.Release()

	require.Equal(t, 2, back.Width())
	require.Equal(t, 2, back.Height())
	assert.Equal(t, src.Pix(), back.(*torque.Packed[torque.Rgb24]).Pix())
}

// TestCodec_NarrowsWideBuffers verifies 16-bit buffers are narrowed to the
// 8-bit representation BMP can carry.
func TestCodec_NarrowsWideBuffers(t *testing.T) {
	c := New()

	src, err := torque.NewPackedFrom(1, 1, []torque.L16{0xabcd})
	require.NoError(t, err)
	defer src.Release()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, src, "bmp", 80))

	back, err := c.Decode(&buf)
	require.NoError(t, err)
	defer back.Release()

	// 8-bit BMPs decode as paletted, so the grey comes back as equal
	// colour channels
	require.Equal(t, 1, back.Width())
	v, err := back.(*torque.Packed[torque.Rgb24]).At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, torque.Rgb24{0xab, 0xab, 0xab}, v)
}
