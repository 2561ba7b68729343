package torque

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Grayscale produces a new owned image holding the luminance of this one.
// A packed colour root becomes packed monochrome of matching channel width;
// a planar root keeps its planar shape with three identical grey planes; a
// monochrome root is deep-copied.
func (img *Image) Grayscale() (*Image, error) {
	if img.released.Load() {
		return nil, fmt.Errorf("%w: grayscale", ErrDisposed)
	}
	root := img.root
	if root.Layout() == PlanarLayout {
		lum, err := Convert(root, PackedLayout, root.Kind())
		if err != nil {
			return nil, err
		}
		out, err := Convert(lum, PlanarLayout, root.Kind())
		lum.Release()
		if err != nil {
			return nil, err
		}
		return NewImage(out)
	}
	out, err := Convert(root, PackedLayout, root.Kind().Scalar())
	if err != nil {
		return nil, err
	}
	return NewImage(out)
}

// MirrorH produces a new owned image flipped about the vertical axis.
func (img *Image) MirrorH() (*Image, error) {
	if img.released.Load() {
		return nil, fmt.Errorf("%w: mirror", ErrDisposed)
	}
	out, err := mirrorBuffer(img.root, true)
	if err != nil {
		return nil, err
	}
	return NewImage(out)
}

// MirrorV produces a new owned image flipped about the horizontal axis.
func (img *Image) MirrorV() (*Image, error) {
	if img.released.Load() {
		return nil, fmt.Errorf("%w: mirror", ErrDisposed)
	}
	out, err := mirrorBuffer(img.root, false)
	if err != nil {
		return nil, err
	}
	return NewImage(out)
}

// BinarizeLuminance produces a packed 8-bit image that is white where the
// normalised luminance reaches the threshold and black elsewhere. The
// threshold must lie in [0, 1].
func (img *Image) BinarizeLuminance(threshold float64) (*Image, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidArgument, threshold)
	}
	lum, err := AsPacked[L](img)
	if err != nil {
		return nil, err
	}
	t := L(threshold)
	out := &Packed[L8]{w: lum.w, h: lum.h, pix: rent[L8](lum.w * lum.h)}
	for i, v := range lum.pix {
		if v >= t {
			out.pix[i] = 255
		} else {
			out.pix[i] = 0
		}
	}
	return NewImage(out)
}

// BinarizeSaturation produces a packed 8-bit image that is white where the
// HSV saturation reaches the threshold and black elsewhere. The threshold
// must lie in [0, 1].
func (img *Image) BinarizeSaturation(threshold float64) (*Image, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidArgument, threshold)
	}
	rgb, err := AsPacked[Rgb](img)
	if err != nil {
		return nil, err
	}
	out := &Packed[L8]{w: rgb.w, h: rgb.h, pix: rent[L8](rgb.w * rgb.h)}
	for i, p := range rgb.pix {
		c := colorful.Color{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
		_, s, _ := c.Hsv()
		if s >= threshold {
			out.pix[i] = 255
		} else {
			out.pix[i] = 0
		}
	}
	return NewImage(out)
}

// mirrorBuffer flips a buffer of any concrete form.
func mirrorBuffer(src Buffer, horizontal bool) (Buffer, error) {
	switch b := src.(type) {
	case *Packed[L8]:
		return mirrorPacked(b, horizontal), nil
	case *Packed[L16]:
		return mirrorPacked(b, horizontal), nil
	case *Packed[L]:
		return mirrorPacked(b, horizontal), nil
	case *Packed[Rgb24]:
		return mirrorPacked(b, horizontal), nil
	case *Packed[Rgb48]:
		return mirrorPacked(b, horizontal), nil
	case *Packed[Rgb]:
		return mirrorPacked(b, horizontal), nil
	case *Planar[L8]:
		return mirrorPlanar(b, horizontal), nil
	case *Planar[L16]:
		return mirrorPlanar(b, horizontal), nil
	case *Planar[L]:
		return mirrorPlanar(b, horizontal), nil
	}
	return nil, fmt.Errorf("%w: cannot mirror %T", ErrUnsupportedFormat, src)
}

// mirrorPlane flips one w×h plane into dst.
func mirrorPlane[T Pixel](src, dst []T, w, h int, horizontal bool) {
	if horizontal {
		for y := 0; y < h; y++ {
			srow := src[y*w : (y+1)*w]
			drow := dst[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				drow[x] = srow[w-1-x]
			}
		}
		return
	}
	for y := 0; y < h; y++ {
		copy(dst[y*w:(y+1)*w], src[(h-1-y)*w:(h-y)*w])
	}
}

func mirrorPacked[T Pixel](b *Packed[T], horizontal bool) *Packed[T] {
	out := &Packed[T]{w: b.w, h: b.h, pix: rent[T](b.w * b.h)}
	mirrorPlane(b.pix, out.pix, b.w, b.h, horizontal)
	return out
}

func mirrorPlanar[T Scalar](b *Planar[T], horizontal bool) *Planar[T] {
	out := &Planar[T]{w: b.w, h: b.h, pix: rent[T](b.w * b.h * planes)}
	n := b.w * b.h
	for c := 0; c < planes; c++ {
		mirrorPlane(b.pix[c*n:(c+1)*n], out.pix[c*n:(c+1)*n], b.w, b.h, horizontal)
	}
	return out
}
