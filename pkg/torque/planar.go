package torque

import "fmt"

// planes is the channel count of a planar buffer. Planar buffers store an
// RGB image as three monochrome planes, channel c spanning
// [c*W*H, (c+1)*W*H) of the backing block.
const planes = 3

// Planar is a three-channel channel-major pixel buffer of monochrome
// elements. Row r of channel c starts at c*W*H + r*W.
type Planar[T Scalar] struct {
	w, h int
	pix  []T
}

// NewPlanar leases a w×h three-plane buffer from the pool. The contents are
// unspecified until written.
func NewPlanar[T Scalar](w, h int) (*Planar[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidArgument, w, h)
	}
	return &Planar[T]{w: w, h: h, pix: rent[T](w * h * planes)}, nil
}

// NewPlanarFrom leases a w×h three-plane buffer and copies src into it.
// The source slice length must be exactly w*h*3.
func NewPlanarFrom[T Scalar](w, h int, src []T) (*Planar[T], error) {
	b, err := NewPlanar[T](w, h)
	if err != nil {
		return nil, err
	}
	if len(src) != w*h*planes {
		b.Release()
		return nil, fmt.Errorf("%w: have %d elements, want %d", ErrShapeMismatch, len(src), w*h*planes)
	}
	copy(b.pix, src)
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Planar[T]) Width() int { return b.w }

// Height returns the buffer height in pixels.
func (b *Planar[T]) Height() int { return b.h }

// Channels is always 3 for a planar buffer.
func (b *Planar[T]) Channels() int { return planes }

// Kind returns the element kind tag.
func (b *Planar[T]) Kind() Kind { return kindOf[T]() }

// Layout returns PlanarLayout.
func (b *Planar[T]) Layout() Layout { return PlanarLayout }

// Format returns the pixel format tag for this buffer.
func (b *Planar[T]) Format() Format {
	f, _ := FormatOf(PlanarLayout, kindOf[T]())
	return f
}

// At returns the sample of channel c at (x, y).
func (b *Planar[T]) At(x, y, c int) (T, error) {
	var z T
	if x < 0 || x >= b.w || y < 0 || y >= b.h || c < 0 || c >= planes {
		return z, fmt.Errorf("%w: sample (%d,%d) channel %d outside %dx%dx%d", ErrInvalidArgument, x, y, c, b.w, b.h, planes)
	}
	return b.pix[c*b.w*b.h+y*b.w+x], nil
}

// Set writes the sample of channel c at (x, y).
func (b *Planar[T]) Set(x, y, c int, v T) error {
	if x < 0 || x >= b.w || y < 0 || y >= b.h || c < 0 || c >= planes {
		return fmt.Errorf("%w: sample (%d,%d) channel %d outside %dx%dx%d", ErrInvalidArgument, x, y, c, b.w, b.h, planes)
	}
	b.pix[c*b.w*b.h+y*b.w+x] = v
	return nil
}

// Channel returns a borrowed view of channel c holding exactly W*H
// elements. The view must not outlive the buffer.
func (b *Planar[T]) Channel(c int) ([]T, error) {
	if c < 0 || c >= planes {
		return nil, fmt.Errorf("%w: channel %d outside %d", ErrInvalidArgument, c, planes)
	}
	n := b.w * b.h
	return b.pix[c*n : (c+1)*n : (c+1)*n], nil
}

// Row returns a borrowed view of row y of channel c holding exactly W
// elements.
func (b *Planar[T]) Row(c, y int) ([]T, error) {
	if c < 0 || c >= planes {
		return nil, fmt.Errorf("%w: channel %d outside %d", ErrInvalidArgument, c, planes)
	}
	if y < 0 || y >= b.h {
		return nil, fmt.Errorf("%w: row %d outside height %d", ErrInvalidArgument, y, b.h)
	}
	start := c*b.w*b.h + y*b.w
	return b.pix[start : start+b.w : start+b.w], nil
}

// Pix returns a borrowed view of the full backing block, 3*W*H elements in
// channel-then-row-major order.
func (b *Planar[T]) Pix() []T { return b.pix }

// Clone returns an independently-owned deep copy.
func (b *Planar[T]) Clone() *Planar[T] {
	c := &Planar[T]{w: b.w, h: b.h, pix: rent[T](b.w * b.h * planes)}
	copy(c.pix, b.pix)
	return c
}

// Equal reports structural equality over dimensions and elements.
func (b *Planar[T]) Equal(o *Planar[T]) bool {
	if o == nil || b.w != o.w || b.h != o.h {
		return false
	}
	for i, v := range b.pix {
		if v != o.pix[i] {
			return false
		}
	}
	return true
}

// Release returns the backing block to the pool. Further use of the buffer
// or of any borrowed view is invalid. Release of an already-released buffer
// is a no-op.
func (b *Planar[T]) Release() {
	if b.pix == nil {
		return
	}
	giveBack(b.pix)
	b.pix = nil
}
