// Package stdimg bridges torque pixel buffers and the standard library
// image types, shared by the concrete codecs.
package stdimg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// ToImage converts a packed buffer of a save kind to a standard image.
func ToImage(src torque.Buffer) (image.Image, error) {
	switch b := src.(type) {
	case *torque.Packed[torque.L8]:
		out := image.NewGray(image.Rect(0, 0, b.Width(), b.Height()))
		for y := 0; y < b.Height(); y++ {
			row, _ := b.Row(y)
			for x, v := range row {
				out.Pix[y*out.Stride+x] = uint8(v)
			}
		}
		return out, nil
	case *torque.Packed[torque.L16]:
		out := image.NewGray16(image.Rect(0, 0, b.Width(), b.Height()))
		for y := 0; y < b.Height(); y++ {
			row, _ := b.Row(y)
			for x, v := range row {
				out.SetGray16(x, y, color.Gray16{Y: uint16(v)})
			}
		}
		return out, nil
	case *torque.Packed[torque.Rgb24]:
		out := image.NewNRGBA(image.Rect(0, 0, b.Width(), b.Height()))
		for y := 0; y < b.Height(); y++ {
			row, _ := b.Row(y)
			for x, v := range row {
				i := y*out.Stride + x*4
				out.Pix[i] = v.R
				out.Pix[i+1] = v.G
				out.Pix[i+2] = v.B
				out.Pix[i+3] = 0xff
			}
		}
		return out, nil
	case *torque.Packed[torque.Rgb48]:
		out := image.NewNRGBA64(image.Rect(0, 0, b.Width(), b.Height()))
		for y := 0; y < b.Height(); y++ {
			row, _ := b.Row(y)
			for x, v := range row {
				out.SetNRGBA64(x, y, color.NRGBA64{R: v.R, G: v.G, B: v.B, A: 0xffff})
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: cannot encode %T", torque.ErrUnsupportedFormat, src)
}

// FromImage converts a decoded standard image to an owned pixel buffer,
// preserving bit depth and colour where the concrete type allows.
func FromImage(m image.Image) (torque.Buffer, error) {
	bounds := m.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: decoded bounds %v", torque.ErrInvalidData, bounds)
	}

	switch im := m.(type) {
	case *image.Gray:
		pix := make([]torque.L8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = torque.L8(im.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return torque.NewPackedFrom(w, h, pix)
	case *image.Gray16:
		pix := make([]torque.L16, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = torque.L16(im.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return torque.NewPackedFrom(w, h, pix)
	case *image.NRGBA:
		pix := make([]torque.Rgb24, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
				pix[y*w+x] = torque.Rgb24{R: c.R, G: c.G, B: c.B}
			}
		}
		return torque.NewPackedFrom(w, h, pix)
	case *image.NRGBA64:
		pix := make([]torque.Rgb48, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := im.NRGBA64At(bounds.Min.X+x, bounds.Min.Y+y)
				pix[y*w+x] = torque.Rgb48{R: c.R, G: c.G, B: c.B}
			}
		}
		return torque.NewPackedFrom(w, h, pix)
	case *image.RGBA64:
		pix := make([]torque.Rgb48, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := im.RGBA64At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				pix[y*w+x] = torque.Rgb48{R: uint16(r), G: uint16(g), B: uint16(b)}
			}
		}
		return torque.NewPackedFrom(w, h, pix)
	}

	// Generic fallback (RGBA, YCbCr, paletted, ...): 8-bit colour.
	pix := make([]torque.Rgb24, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := m.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pix[y*w+x] = torque.Rgb24{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
	}
	return torque.NewPackedFrom(w, h, pix)
}
