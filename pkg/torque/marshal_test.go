package torque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopy_AllForms verifies deep copy through the opaque interface for
// every concrete buffer form.
func TestCopy_AllForms(t *testing.T) {
	sources := []Buffer{
		mustPacked(t, 2, 1, []L8{1, 2}),
		mustPacked(t, 2, 1, []L16{1, 2}),
		mustPacked(t, 2, 1, []L{0.1, 0.2}),
		mustPacked(t, 2, 1, []Rgb24{{1, 2, 3}, {4, 5, 6}}),
		mustPacked(t, 2, 1, []Rgb48{{1, 2, 3}, {4, 5, 6}}),
		mustPacked(t, 2, 1, []Rgb{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}),
		mustPlanar(t, 2, 1, []L8{1, 2, 3, 4, 5, 6}),
		mustPlanar(t, 2, 1, []L16{1, 2, 3, 4, 5, 6}),
		mustPlanar(t, 2, 1, []L{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}),
	}
	for _, src := range sources {
		cp, err := Copy(src)
		require.NoError(t, err, src.Format().String())
		assert.True(t, BuffersEqual(src, cp), src.Format().String())
		assert.Equal(t, src.Format(), cp.Format())
		cp.Release()
		src.Release()
	}
}

// TestBuffersEqual_CrossForm verifies buffers of different concrete forms
// never compare equal, even with identical dimensions.
func TestBuffersEqual_CrossForm(t *testing.T) {
	a := mustPacked(t, 2, 1, []L8{1, 2})
	defer a.Release()
	b := mustPacked(t, 2, 1, []L16{1, 2})
	defer b.Release()
	p := mustPlanar(t, 2, 1, []L8{1, 2, 1, 2, 1, 2})
	defer p.Release()

	assert.False(t, BuffersEqual(a, b))
	assert.False(t, BuffersEqual(a, p))
	assert.True(t, BuffersEqual(a, a))
}

func mustPacked[T Pixel](t *testing.T, w, h int, pix []T) *Packed[T] {
	t.Helper()
	b, err := NewPackedFrom(w, h, pix)
	require.NoError(t, err)
	return b
}

func mustPlanar[T Scalar](t *testing.T, w, h int, pix []T) *Planar[T] {
	t.Helper()
	b, err := NewPlanarFrom(w, h, pix)
	require.NoError(t, err)
	return b
}
