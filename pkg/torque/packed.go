package torque

import "fmt"

// Packed is a single-channel row-major pixel buffer. The element itself may
// be compound (an RGB triple), so channel count is always 1 and the pixel at
// (x, y) lives at index y*W + x.
type Packed[T Pixel] struct {
	w, h int
	pix  []T
}

// NewPacked leases a w×h packed buffer from the pool. The contents are
// unspecified until written.
func NewPacked[T Pixel](w, h int) (*Packed[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidArgument, w, h)
	}
	return &Packed[T]{w: w, h: h, pix: rent[T](w * h)}, nil
}

// NewPackedFrom leases a w×h packed buffer and copies src into it.
// The source slice length must be exactly w*h.
func NewPackedFrom[T Pixel](w, h int, src []T) (*Packed[T], error) {
	b, err := NewPacked[T](w, h)
	if err != nil {
		return nil, err
	}
	if len(src) != w*h {
		b.Release()
		return nil, fmt.Errorf("%w: have %d elements, want %d", ErrShapeMismatch, len(src), w*h)
	}
	copy(b.pix, src)
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Packed[T]) Width() int { return b.w }

// Height returns the buffer height in pixels.
func (b *Packed[T]) Height() int { return b.h }

// Channels is always 1 for a packed buffer.
func (b *Packed[T]) Channels() int { return 1 }

// Kind returns the element kind tag.
func (b *Packed[T]) Kind() Kind { return kindOf[T]() }

// Layout returns PackedLayout.
func (b *Packed[T]) Layout() Layout { return PackedLayout }

// Format returns the pixel format tag for this buffer.
func (b *Packed[T]) Format() Format {
	f, _ := FormatOf(PackedLayout, kindOf[T]())
	return f
}

// At returns the pixel at (x, y).
func (b *Packed[T]) At(x, y int) (T, error) {
	var z T
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return z, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrInvalidArgument, x, y, b.w, b.h)
	}
	return b.pix[y*b.w+x], nil
}

// Set writes the pixel at (x, y).
func (b *Packed[T]) Set(x, y int, v T) error {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrInvalidArgument, x, y, b.w, b.h)
	}
	b.pix[y*b.w+x] = v
	return nil
}

// Row returns a borrowed view of row y holding exactly W elements.
// The view must not outlive the buffer.
func (b *Packed[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= b.h {
		return nil, fmt.Errorf("%w: row %d outside height %d", ErrInvalidArgument, y, b.h)
	}
	return b.pix[y*b.w : (y+1)*b.w : (y+1)*b.w], nil
}

// Pix returns a borrowed view of the full backing block, W*H elements in
// row-major order.
func (b *Packed[T]) Pix() []T { return b.pix }

// Clone returns an independently-owned deep copy.
func (b *Packed[T]) Clone() *Packed[T] {
	c := &Packed[T]{w: b.w, h: b.h, pix: rent[T](b.w * b.h)}
	copy(c.pix, b.pix)
	return c
}

// Equal reports structural equality over dimensions and elements.
func (b *Packed[T]) Equal(o *Packed[T]) bool {
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
func (b *Packed[T]) Release() {
	if b.pix == nil {
		return
	}
	giveBack(b.pix)
	b.pix = nil
}
