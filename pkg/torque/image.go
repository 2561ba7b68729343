package torque

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Image owns a root pixel buffer, the authoritative representation a decoder
// produced, plus a cache of converted representations keyed by pixel format.
// The root is inserted under its own key at construction so requests for the
// same representation return it directly.
//
// Concurrent view calls on one image are safe. Two racing cache misses for
// the same key may both run the conversion engine; the first insertion wins
// and the loser's buffer is released immediately.
type Image struct {
	root     Buffer
	derived  sync.Map // Format -> Buffer
	released atomic.Bool
}

// NewImage constructs an image owning root. Ownership of the buffer
// transfers to the image; the caller must not release it.
func NewImage(root Buffer) (*Image, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root buffer", ErrInvalidArgument)
	}
	if root.Format() == FormatUnknown {
		return nil, fmt.Errorf("%w: root buffer %T", ErrUnsupportedFormat, root)
	}
	img := &Image{root: root}
	img.derived.Store(root.Format(), root)
	return img, nil
}

// Width returns the root buffer's width in pixels.
func (img *Image) Width() int { return img.root.Width() }

// Height returns the root buffer's height in pixels.
func (img *Image) Height() int { return img.root.Height() }

// Size returns the pixel count W*H.
func (img *Image) Size() int { return img.root.Width() * img.root.Height() }

// PixelFormat returns the root buffer's format tag.
func (img *Image) PixelFormat() Format { return img.root.Format() }

// IsColor reports whether the root holds an RGB format.
func (img *Image) IsColor() bool { return img.root.Format().IsColor() }

// Root returns the root buffer for read-only use. The view must not outlive
// the image.
func (img *Image) Root() Buffer { return img.root }

// Equal compares the immutable observables: dimensions, format and root
// contents. Converted caches are derived state and excluded.
func (img *Image) Equal(o *Image) bool {
	if o == nil {
		return false
	}
	if img.Width() != o.Width() || img.Height() != o.Height() || img.PixelFormat() != o.PixelFormat() {
		return false
	}
	return BuffersEqual(img.root, o.root)
}

// Release frees the root and every cached conversion exactly once.
// Release is idempotent; any other operation after it fails with
// ErrDisposed. No view calls may be running concurrently with Release.
func (img *Image) Release() {
	if !img.released.CompareAndSwap(false, true) {
		return
	}
	img.derived.Range(func(key, value any) bool {
		value.(Buffer).Release()
		img.derived.Delete(key)
		return true
	})
}

// view returns the cached buffer for the key, converting from root on miss.
func (img *Image) view(layout Layout, kind Kind) (Buffer, error) {
	key, err := FormatOf(layout, kind)
	if err != nil {
		return nil, err
	}
	if img.released.Load() {
		return nil, fmt.Errorf("%w: %s view", ErrDisposed, key)
	}
	if cached, ok := img.derived.Load(key); ok {
		return cached.(Buffer), nil
	}
	fresh, err := Convert(img.root, layout, kind)
	if err != nil {
		return nil, err
	}
	actual, loaded := img.derived.LoadOrStore(key, fresh)
	if loaded {
		fresh.Release()
	}
	return actual.(Buffer), nil
}

// AsPacked returns a read-only view of the image as a packed buffer of
// element kind T, converting and caching on first request. The view is
// owned by the image and must not be released or mutated by the caller.
func AsPacked[T Pixel](img *Image) (*Packed[T], error) {
	b, err := img.view(PackedLayout, kindOf[T]())
	if err != nil {
		return nil, err
	}
	return b.(*Packed[T]), nil
}

// AsPlanar returns a read-only view of the image as a three-plane buffer of
// scalar kind T, converting and caching on first request. The view is owned
// by the image and must not be released or mutated by the caller.
func AsPlanar[T Scalar](img *Image) (*Planar[T], error) {
	b, err := img.view(PlanarLayout, kindOf[T]())
	if err != nil {
		return nil, err
	}
	return b.(*Planar[T]), nil
}
