package torque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrayscale_Packed verifies packed colour collapses to packed grey of
// the matching channel width.
func TestGrayscale_Packed(t *testing.T) {
	img := newTestImage(t, mustPacked(t, 1, 1, []Rgb24{{R: 255}}))
	defer img.Release()

	grey, err := img.Grayscale()
	require.NoError(t, err)
	defer grey.Release()

	assert.Equal(t, Mono8, grey.PixelFormat())
	root := grey.Root().(*Packed[L8])
	assert.Equal(t, []L8{76}, root.Pix())
}

// TestGrayscale_Planar verifies a planar source keeps its planar shape with
// three identical planes of the luminance.
func TestGrayscale_Planar(t *testing.T) {
	img := newTestImage(t, mustPlanar(t, 1, 1, []L8{255, 0, 0}))
	defer img.Release()

	grey, err := img.Grayscale()
	require.NoError(t, err)
	defer grey.Release()

	assert.Equal(t, Rgb888Planar, grey.PixelFormat())
	pl := grey.Root().(*Planar[L8])
	assert.Equal(t, []L8{76, 76, 76}, pl.Pix())
}

// TestGrayscale_AlreadyMono verifies monochrome roots copy through.
func TestGrayscale_AlreadyMono(t *testing.T) {
	img := newTestImage(t, mustPacked(t, 2, 1, []L16{7, 8}))
	defer img.Release()

	grey, err := img.Grayscale()
	require.NoError(t, err)
	defer grey.Release()

	assert.Equal(t, Mono16, grey.PixelFormat())
	assert.True(t, grey.Equal(img))
}

// TestMirror verifies horizontal and vertical flips on packed and planar
// roots.
func TestMirror(t *testing.T) {
	img := newTestImage(t, mustPacked(t, 2, 2, []L8{1, 2, 3, 4}))
	defer img.Release()

	h, err := img.MirrorH()
	require.NoError(t, err)
	defer h.Release()
	assert.Equal(t, []L8{2, 1, 4, 3}, h.Root().(*Packed[L8]).Pix())

	v, err := img.MirrorV()
	require.NoError(t, err)
	defer v.Release()
	assert.Equal(t, []L8{3, 4, 1, 2}, v.Root().(*Packed[L8]).Pix())

	pimg := newTestImage(t, mustPlanar(t, 2, 1, []L8{1, 2, 3, 4, 5, 6}))
	defer pimg.Release()
	ph, err := pimg.MirrorH()
	require.NoError(t, err)
	defer ph.Release()
	assert.Equal(t, []L8{2, 1, 4, 3, 6, 5}, ph.Root().(*Planar[L8]).Pix())
}

// TestMirror_Involution verifies mirroring twice restores the image.
func TestMirror_Involution(t *testing.T) {
	img := newTestImage(t, mustPacked(t, 3, 2, []Rgb24{
		{1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}, {5, 0, 0}, {6, 0, 0},
	}))
	defer img.Release()

	once, err := img.MirrorH()
	require.NoError(t, err)
	defer once.Release()
	twice, err := once.MirrorH()
	require.NoError(t, err)
	defer twice.Release()

	assert.True(t, img.Equal(twice))
}

// TestBinarizeLuminance verifies thresholding on normalised luminance and
// the argument validation.
func TestBinarizeLuminance(t *testing.T) {
	img := newTestImage(t, mustPacked(t, 2, 2, []L8{0, 100, 200, 255}))
	defer img.Release()

	bin, err := img.BinarizeLuminance(0.5)
	require.NoError(t, err)
	defer bin.Release()

	assert.Equal(t, Mono8, bin.PixelFormat())
	assert.Equal(t, []L8{0, 0, 255, 255}, bin.Root().(*Packed[L8]).Pix())

	_, err = img.BinarizeLuminance(-0.1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = img.BinarizeLuminance(1.1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestBinarizeSaturation verifies saturated pixels pass the threshold and
// neutral ones do not.
func TestBinarizeSaturation(t *testing.T) {
	img := newTestImage(t, mustPacked(t, 2, 2, []Rgb24{
		{255, 0, 0},     // fully saturated red
		{128, 128, 128}, // neutral grey
		{255, 255, 255}, // white, zero saturation
		{128, 255, 128}, // washed-out green, s ~ 0.5
	}))
	defer img.Release()

	bin, err := img.BinarizeSaturation(0.4)
	require.NoError(t, err)
	defer bin.Release()

	assert.Equal(t, []L8{255, 0, 0, 255}, bin.Root().(*Packed[L8]).Pix())

	_, err = img.BinarizeSaturation(2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
