package torque

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Method selects the resampling kernel.
type Method int

// Resampling methods.
const (
	NearestNeighbor Method = iota
	Bilinear
	Bicubic
)

func (m Method) String() string {
	switch m {
	case NearestNeighbor:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a method name to its tag.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "nearest", "nearest-neighbor", "nn":
		return NearestNeighbor, nil
	case "bilinear":
		return Bilinear, nil
	case "bicubic":
		return Bicubic, nil
	}
	return 0, fmt.Errorf("%w: unknown resampling method %q", ErrInvalidArgument, s)
}

// ResampleOption configures a Resize call.
type ResampleOption func(*resampleOptions)

type resampleOptions struct {
	parallelism int
}

// WithParallelism sets the maximum number of concurrent row workers.
// The default is 1 (fully sequential). Values below 1 are treated as 1.
func WithParallelism(n int) ResampleOption {
	return func(o *resampleOptions) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// Resize produces a buffer of the same layout and element kind with the new
// dimensions. Destination rows are independent; with a parallelism hint
// above 1 they are split across up to that many workers, joined before
// return.
// Planar sources are resampled channel by channel with the scalar kernel.
//
// All intermediate arithmetic is single-precision float; integer outputs
// truncate. Bicubic samples a 4x4 edge-extended neighbourhood and applies a
// Catmull-Rom cubic Hermite along y then x, clamping the result to the
// element range.
func Resize(src Buffer, w, h int, m Method, opts ...ResampleOption) (Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target dimensions %dx%d", ErrInvalidArgument, w, h)
	}
	o := resampleOptions{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}

	switch b := src.(type) {
	case *Packed[L8]:
		return resizeScalar(b.pix, b.w, b.h, w, h, m, o, 255)
	case *Packed[L16]:
		return resizeScalar(b.pix, b.w, b.h, w, h, m, o, 65535)
	case *Packed[L]:
		return resizeScalar(b.pix, b.w, b.h, w, h, m, o, 1)
	case *Packed[Rgb24]:
		return resizeRGB(b.pix, b.w, b.h, w, h, m, o, 255, rgb24Parts, mkRgb24)
	case *Packed[Rgb48]:
		return resizeRGB(b.pix, b.w, b.h, w, h, m, o, 65535, rgb48Parts, mkRgb48)
	case *Packed[Rgb]:
		return resizeRGB(b.pix, b.w, b.h, w, h, m, o, 1, rgbParts, mkRgb)
	case *Planar[L8]:
		return resizePlanar(b, w, h, m, o, 255)
	case *Planar[L16]:
		return resizePlanar(b, w, h, m, o, 65535)
	case *Planar[L]:
		return resizePlanar(b, w, h, m, o, 1)
	}
	return nil, fmt.Errorf("%w: cannot resize %T", ErrUnsupportedFormat, src)
}

// eachRowRange runs fn over [0, h) split into up to parallel contiguous row
// ranges, joining before return.
func eachRowRange(h, parallel int, fn func(y0, y1 int)) {
	if parallel <= 1 || h < 2 {
		fn(0, h)
		return
	}
	if parallel > h {
		parallel = h
	}
	chunk := (h + parallel - 1) / parallel
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += chunk {
		y1 := y0 + chunk
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(a, b int) {
			defer wg.Done()
			fn(a, b)
		}(y0, y1)
	}
	wg.Wait()
}

func clampIndex(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// hermite evaluates the Catmull-Rom cubic through four equally spaced
// samples at fraction t.
func hermite(a, b, c, d, t float32) float32 {
	aa := -a/2 + 3*b/2 - 3*c/2 + d/2
	bb := a - 5*b/2 + 2*c - d/2
	cc := -a/2 + c/2
	return ((aa*t+bb)*t+cc)*t + b
}

// nearestPlane maps each destination pixel to floor(x*sw/dw), floor(y*sh/dh).
func nearestPlane[T Pixel](src []T, sw, sh int, dst []T, dw, dh, y0, y1 int) {
	for y := y0; y < y1; y++ {
		srow := src[(y*sh/dh)*sw:]
		drow := dst[y*dw : (y+1)*dw]
		for x := range drow {
			drow[x] = srow[x*sw/dw]
		}
	}
}

// bilinearPlane samples the four corners around gx = x*(sw-1)/dw,
// gy = y*(sh-1)/dh with corner clamping and lerps in both axes.
func bilinearPlane[T Scalar](src []T, sw, sh int, dst []T, dw, dh, y0, y1 int) {
	rx := float32(sw-1) / float32(dw)
	ry := float32(sh-1) / float32(dh)
	for y := y0; y < y1; y++ {
		gy := float32(y) * ry
		yi := int(gy)
		fy := gy - float32(yi)
		yn := clampIndex(yi+1, sh-1)
		top := src[yi*sw:]
		bot := src[yn*sw:]
		drow := dst[y*dw : (y+1)*dw]
		for x := range drow {
			gx := float32(x) * rx
			xi := int(gx)
			fx := gx - float32(xi)
			xn := clampIndex(xi+1, sw-1)
			c00 := float32(top[xi])
			c10 := float32(top[xn])
			c01 := float32(bot[xi])
			c11 := float32(bot[xn])
			t := c00 + (c10-c00)*fx
			u := c01 + (c11-c01)*fx
			drow[x] = T(t + (u-t)*fy)
		}
	}
}

// bicubicPlane maps through u = x/(dw-1), x' = u*sw - 0.5, samples the 4x4
// edge-extended neighbourhood and applies the cubic along y then x.
func bicubicPlane[T Scalar](src []T, sw, sh int, dst []T, dw, dh int, maxV float32, y0, y1 int) {
	for y := y0; y < y1; y++ {
		var v float32
		if dh > 1 {
			v = float32(y) / float32(dh-1)
		}
		sy := v*float32(sh) - 0.5
		yi := int(math.Floor(float64(sy)))
		yf := sy - float32(yi)
		drow := dst[y*dw : (y+1)*dw]
		for x := range drow {
			var u float32
			if dw > 1 {
				u = float32(x) / float32(dw-1)
			}
			sx := u*float32(sw) - 0.5
			xi := int(math.Floor(float64(sx)))
			xf := sx - float32(xi)
			var cols [4]float32
			for dx := -1; dx <= 2; dx++ {
				cx := clampIndex(xi+dx, sw-1)
				p0 := float32(src[clampIndex(yi-1, sh-1)*sw+cx])
				p1 := float32(src[clampIndex(yi, sh-1)*sw+cx])
				p2 := float32(src[clampIndex(yi+1, sh-1)*sw+cx])
				p3 := float32(src[clampIndex(yi+2, sh-1)*sw+cx])
				cols[dx+1] = hermite(p0, p1, p2, p3, yf)
			}
			val := hermite(cols[0], cols[1], cols[2], cols[3], xf)
			if val < 0 {
				val = 0
			} else if val > maxV {
				val = maxV
			}
			drow[x] = T(val)
		}
	}
}

// Channel accessors for the compound kernels.
func rgb24Parts(p Rgb24) (float32, float32, float32) {
	return float32(p.R), float32(p.G), float32(p.B)
}

func rgb48Parts(p Rgb48) (float32, float32, float32) {
	return float32(p.R), float32(p.G), float32(p.B)
}

func rgbParts(p Rgb) (float32, float32, float32) { return p.R, p.G, p.B }

func mkRgb24(r, g, b float32) Rgb24 { return Rgb24{uint8(r), uint8(g), uint8(b)} }

func mkRgb48(r, g, b float32) Rgb48 { return Rgb48{uint16(r), uint16(g), uint16(b)} }

func mkRgb(r, g, b float32) Rgb { return Rgb{r, g, b} }

// bilinearRGB is the bilinear kernel run per channel of a compound element.
func bilinearRGB[P Pixel](src []P, sw, sh int, dst []P, dw, dh, y0, y1 int, parts func(P) (float32, float32, float32), mk func(r, g, b float32) P) {
	rx := float32(sw-1) / float32(dw)
	ry := float32(sh-1) / float32(dh)
	lerp3 := func(a, b P, f float32) (float32, float32, float32) {
		ar, ag, ab := parts(a)
		br, bg, bb := parts(b)
		return ar + (br-ar)*f, ag + (bg-ag)*f, ab + (bb-ab)*f
	}
	for y := y0; y < y1; y++ {
		gy := float32(y) * ry
		yi := int(gy)
		fy := gy - float32(yi)
		yn := clampIndex(yi+1, sh-1)
		top := src[yi*sw:]
		bot := src[yn*sw:]
		drow := dst[y*dw : (y+1)*dw]
		for x := range drow {
			gx := float32(x) * rx
			xi := int(gx)
			fx := gx - float32(xi)
			xn := clampIndex(xi+1, sw-1)
			tr, tg, tb := lerp3(top[xi], top[xn], fx)
			br, bg, bb := lerp3(bot[xi], bot[xn], fx)
			drow[x] = mk(tr+(br-tr)*fy, tg+(bg-tg)*fy, tb+(bb-tb)*fy)
		}
	}
}

// bicubicRGB is the bicubic kernel run per channel of a compound element.
func bicubicRGB[P Pixel](src []P, sw, sh int, dst []P, dw, dh int, maxV float32, y0, y1 int, parts func(P) (float32, float32, float32), mk func(r, g, b float32) P) {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > maxV {
			return maxV
		}
		return v
	}
	for y := y0; y < y1; y++ {
		var v float32
		if dh > 1 {
			v = float32(y) / float32(dh-1)
		}
		sy := v*float32(sh) - 0.5
		yi := int(math.Floor(float64(sy)))
		yf := sy - float32(yi)
		drow := dst[y*dw : (y+1)*dw]
		for x := range drow {
			var u float32
			if dw > 1 {
				u = float32(x) / float32(dw-1)
			}
			sx := u*float32(sw) - 0.5
			xi := int(math.Floor(float64(sx)))
			xf := sx - float32(xi)
			var cr, cg, cb [4]float32
			for dx := -1; dx <= 2; dx++ {
				cx := clampIndex(xi+dx, sw-1)
				var pr, pg, pb [4]float32
				for dy := -1; dy <= 2; dy++ {
					p := src[clampIndex(yi+dy, sh-1)*sw+cx]
					pr[dy+1], pg[dy+1], pb[dy+1] = parts(p)
				}
				cr[dx+1] = hermite(pr[0], pr[1], pr[2], pr[3], yf)
				cg[dx+1] = hermite(pg[0], pg[1], pg[2], pg[3], yf)
				cb[dx+1] = hermite(pb[0], pb[1], pb[2], pb[3], yf)
			}
			drow[x] = mk(
				clamp(hermite(cr[0], cr[1], cr[2], cr[3], xf)),
				clamp(hermite(cg[0], cg[1], cg[2], cg[3], xf)),
				clamp(hermite(cb[0], cb[1], cb[2], cb[3], xf)),
			)
		}
	}
}

// resizeScalar resamples a single monochrome plane into a packed buffer.
func resizeScalar[T Scalar](src []T, sw, sh, dw, dh int, m Method, o resampleOptions, maxV float32) (Buffer, error) {
	out := &Packed[T]{w: dw, h: dh, pix: rent[T](dw * dh)}
	switch m {
	case NearestNeighbor:
		eachRowRange(dh, o.parallelism, func(y0, y1 int) {
			nearestPlane(src, sw, sh, out.pix, dw, dh, y0, y1)
		})
	case Bilinear:
		eachRowRange(dh, o.parallelism, func(y0, y1 int) {
			bilinearPlane(src, sw, sh, out.pix, dw, dh, y0, y1)
		})
	case Bicubic:
		eachRowRange(dh, o.parallelism, func(y0, y1 int) {
			bicubicPlane(src, sw, sh, out.pix, dw, dh, maxV, y0, y1)
		})
	default:
		out.Release()
		return nil, fmt.Errorf("%w: unknown resampling method %d", ErrInvalidArgument, m)
	}
	return out, nil
}

// resizeRGB resamples a packed compound buffer.
func resizeRGB[P Pixel](src []P, sw, sh, dw, dh int, m Method, o resampleOptions, maxV float32, parts func(P) (float32, float32, float32), mk func(r, g, b float32) P) (Buffer, error) {
	out := &Packed[P]{w: dw, h: dh, pix: rent[P](dw * dh)}
	switch m {
	case NearestNeighbor:
		eachRowRange(dh, o.parallelism, func(y0, y1 int) {
			nearestPlane(src, sw, sh, out.pix, dw, dh, y0, y1)
		})
	case Bilinear:
		eachRowRange(dh, o.parallelism, func(y0, y1 int) {
			bilinearRGB(src, sw, sh, out.pix, dw, dh, y0, y1, parts, mk)
		})
	case Bicubic:
		eachRowRange(dh, o.parallelism, func(y0, y1 int) {
			bicubicRGB(src, sw, sh, out.pix, dw, dh, maxV, y0, y1, parts, mk)
		})
	default:
		out.Release()
		return nil, fmt.Errorf("%w: unknown resampling method %d", ErrInvalidArgument, m)
	}
	return out, nil
}

// resizePlanar resamples each plane independently with the scalar kernel.
func resizePlanar[T Scalar](b *Planar[T], dw, dh int, m Method, o resampleOptions, maxV float32) (Buffer, error) {
	out := &Planar[T]{w: dw, h: dh, pix: rent[T](dw * dh * planes)}
	sn := b.w * b.h
	dn := dw * dh
	for c := 0; c < planes; c++ {
		src := b.pix[c*sn : (c+1)*sn]
		dst := out.pix[c*dn : (c+1)*dn]
		switch m {
		case NearestNeighbor:
			eachRowRange(dh, o.parallelism, func(y0, y1 int) {
				nearestPlane(src, b.w, b.h, dst, dw, dh, y0, y1)
			})
		case Bilinear:
			eachRowRange(dh, o.parallelism, func(y0, y1 int) {
				bilinearPlane(src, b.w, b.h, dst, dw, dh, y0, y1)
			})
		case Bicubic:
			eachRowRange(dh, o.parallelism, func(y0, y1 int) {
				bicubicPlane(src, b.w, b.h, dst, dw, dh, maxV, y0, y1)
			})
		default:
			out.Release()
			return nil, fmt.Errorf("%w: unknown resampling method %d", ErrInvalidArgument, m)
		}
	}
	return out, nil
}
