package png

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// TestCodec_Header verifies the signature predicate.
func TestCodec_Header(t *testing.T) {
	c := New()
	assert.Equal(t, "png", c.Name())
	assert.Equal(t, 8, c.HeaderSize())
	assert.True(t, c.Matches(signature))
	assert.False(t, c.Matches([]byte{'B', 'M', 0, 0, 0, 0, 0, 0}))
	assert.Contains(t, c.Encoders(), "png")
}

// TestCodec_RoundTripGray verifies 8- and 16-bit monochrome survive a full
// encode/decode cycle exactly.
func TestCodec_RoundTripGray(t *testing.T) {
	c := New()

	src8, err := torque.NewPackedFrom(3, 2, []torque.L8{0, 10, 128, 200, 254, 255})
	require.NoError(t, err)
	defer src8.Release()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, src8, "png", 80))
	assert.True(t, c.Matches(buf.Bytes()[:c.HeaderSize()]))

	back, err := c.Decode(&buf)
	require.NoError(t, err)
	defer back.Release()
	assert.True(t, torque.BuffersEqual(torque.Buffer(src8), back))

	src16, err := torque.NewPackedFrom(2, 2, []torque.L16{0, 1, 40000, 65535})
	require.NoError(t, err)
	defer src16.Release()

	buf.Reset()
	require.NoError(t, c.Encode(&buf, src16, "png", 80))
	back16, err := c.Decode(&buf)
	require.NoError(t, err)
	defer back16.Release()
	assert.True(t, torque.BuffersEqual(torque.Buffer(src16), back16))
}

// TestCodec_RoundTripColor verifies colour buffers survive a full cycle
// with channel values intact.
func TestCodec_RoundTripColor(t *testing.T) {
	c := New()

	src, err := torque.NewPackedFrom(2, 2, []torque.Rgb24{
		{0, 0, 0}, {1, 2, 3}, {4, 5, 6}, {255, 255, 255},
	})
	require.NoError(t, err)
	defer src.Release()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, src, "png", 80))
	back, err := c.Decode(&buf)
	require.NoError(t, err)
	defer back.Release()

	require.Equal(t, 2, back.Width())
	require.Equal(t, 2, back.Height())
	rgb := back.(*torque.Packed[torque.Rgb24])
	assert.Equal(t, src.Pix(), rgb.Pix())
}

// TestCodec_DecodeGarbage verifies corrupt streams fail.
func TestCodec_DecodeGarbage(t *testing.T) {
	_, err := New().Decode(bytes.NewReader([]byte("definitely not a png")))
	require.Error(t, err)
}
