package torque

import "fmt"

// Convert produces a buffer of the target layout and element kind from any
// supported source. The output has the same dimensions as the input and the
// source is never mutated. An identity target returns a deep copy.
//
// Element-only conversions apply the per-element rules of the pixel kinds
// across every sample. Layout-only conversions split a packed RGB triple
// across planes {R, G, B} or interleave planes back into triples; a packed
// monochrome source is replicated into all three planes, and planes collapse
// back to monochrome through the luminance formula. Combined conversions are
// the element step followed by the layout step.
//
// Convert performs no caching; memoisation is the Image facade's job.
func Convert(src Buffer, layout Layout, kind Kind) (Buffer, error) {
	if _, err := FormatOf(layout, kind); err != nil {
		return nil, err
	}
	if src.Layout() == layout && src.Kind() == kind {
		return Copy(src)
	}

	switch {
	case src.Layout() == PackedLayout && layout == PackedLayout:
		return elementPacked(src, kind)

	case src.Layout() == PlanarLayout && layout == PlanarLayout:
		return elementPlanar(src, kind)

	case src.Layout() == PackedLayout: // packed -> planar
		if src.Kind().IsColor() {
			tmp, err := elementPacked(src, kind.Color())
			if err != nil {
				return nil, err
			}
			out, err := splitPacked(tmp)
			tmp.Release()
			return out, err
		}
		tmp, err := elementPacked(src, kind)
		if err != nil {
			return nil, err
		}
		out, err := replicatePacked(tmp)
		tmp.Release()
		return out, err

	default: // planar -> packed
		tmp, err := elementPlanar(src, kind.Scalar())
		if err != nil {
			return nil, err
		}
		var out Buffer
		if kind.IsColor() {
			out, err = interleavePlanar(tmp)
		} else {
			out, err = collapsePlanar(tmp)
		}
		tmp.Release()
		return out, err
	}
}

// self is the identity element conversion.
func self[T Pixel](v T) T { return v }

// mapPacked converts every element of a packed buffer.
func mapPacked[S, D Pixel](b *Packed[S], conv func(S) D) *Packed[D] {
	out := &Packed[D]{w: b.w, h: b.h, pix: rent[D](b.w * b.h)}
	for i, v := range b.pix {
		out.pix[i] = conv(v)
	}
	return out
}

// mapPlanar converts every sample of a planar buffer.
func mapPlanar[S, D Scalar](b *Planar[S], conv func(S) D) *Planar[D] {
	out := &Planar[D]{w: b.w, h: b.h, pix: rent[D](b.w * b.h * planes)}
	for i, v := range b.pix {
		out.pix[i] = conv(v)
	}
	return out
}

// packedAs converts a packed buffer to the requested element kind using the
// per-kind converters of the source element.
func packedAs[S Pixel](b *Packed[S], k Kind, toL8 func(S) L8, toL16 func(S) L16, toL func(S) L, toRgb24 func(S) Rgb24, toRgb48 func(S) Rgb48, toRgb func(S) Rgb) (Buffer, error) {
	switch k {
	case KindL8:
		return mapPacked(b, toL8), nil
	case KindL16:
		return mapPacked(b, toL16), nil
	case KindL:
		return mapPacked(b, toL), nil
	case KindRgb24:
		return mapPacked(b, toRgb24), nil
	case KindRgb48:
		return mapPacked(b, toRgb48), nil
	case KindRgb:
		return mapPacked(b, toRgb), nil
	}
	return nil, fmt.Errorf("%w: packed element target %s", ErrUnsupportedFormat, k)
}

// elementPacked applies an element-only conversion to a packed source.
func elementPacked(src Buffer, k Kind) (Buffer, error) {
	switch b := src.(type) {
	case *Packed[L8]:
		return packedAs(b, k, self[L8], L8.L16, L8.L, L8.Rgb24, L8.Rgb48, L8.Rgb)
	case *Packed[L16]:
		return packedAs(b, k, L16.L8, self[L16], L16.L, L16.Rgb24, L16.Rgb48, L16.Rgb)
	case *Packed[L]:
		return packedAs(b, k, L.L8, L.L16, self[L], L.Rgb24, L.Rgb48, L.Rgb)
	case *Packed[Rgb24]:
		return packedAs(b, k, Rgb24.L8, Rgb24.L16, Rgb24.L, self[Rgb24], Rgb24.Rgb48, Rgb24.Rgb)
	case *Packed[Rgb48]:
		return packedAs(b, k, Rgb48.L8, Rgb48.L16, Rgb48.L, Rgb48.Rgb24, self[Rgb48], Rgb48.Rgb)
	case *Packed[Rgb]:
		return packedAs(b, k, Rgb.L8, Rgb.L16, Rgb.L, Rgb.Rgb24, Rgb.Rgb48, self[Rgb])
	}
	return nil, fmt.Errorf("%w: packed element source %T", ErrUnsupportedFormat, src)
}

// planarAs converts a planar buffer to the requested scalar kind.
func planarAs[S Scalar](b *Planar[S], k Kind, toL8 func(S) L8, toL16 func(S) L16, toL func(S) L) (Buffer, error) {
	switch k {
	case KindL8:
		return mapPlanar(b, toL8), nil
	case KindL16:
		return mapPlanar(b, toL16), nil
	case KindL:
		return mapPlanar(b, toL), nil
	}
	return nil, fmt.Errorf("%w: planar element target %s", ErrUnsupportedFormat, k)
}

// elementPlanar applies an element-only conversion to a planar source.
func elementPlanar(src Buffer, k Kind) (Buffer, error) {
	switch b := src.(type) {
	case *Planar[L8]:
		return planarAs(b, k, self[L8], L8.L16, L8.L)
	case *Planar[L16]:
		return planarAs(b, k, L16.L8, self[L16], L16.L)
	case *Planar[L]:
		return planarAs(b, k, L.L8, L.L16, self[L])
	}
	return nil, fmt.Errorf("%w: planar element source %T", ErrUnsupportedFormat, src)
}

// split distributes packed triples across the planes {R->0, G->1, B->2}.
func split[P Pixel, S Scalar](b *Packed[P], get func(P) (S, S, S)) *Planar[S] {
	n := b.w * b.h
	out := &Planar[S]{w: b.w, h: b.h, pix: rent[S](n * planes)}
	for i, v := range b.pix {
		r, g, bl := get(v)
		out.pix[i] = r
		out.pix[n+i] = g
		out.pix[2*n+i] = bl
	}
	return out
}

// splitPacked converts a packed RGB buffer to planes of the matching scalar.
func splitPacked(src Buffer) (Buffer, error) {
	switch b := src.(type) {
	case *Packed[Rgb24]:
		return split(b, func(p Rgb24) (L8, L8, L8) { return L8(p.R), L8(p.G), L8(p.B) }), nil
	case *Packed[Rgb48]:
		return split(b, func(p Rgb48) (L16, L16, L16) { return L16(p.R), L16(p.G), L16(p.B) }), nil
	case *Packed[Rgb]:
		return split(b, func(p Rgb) (L, L, L) { return L(p.R), L(p.G), L(p.B) }), nil
	}
	return nil, fmt.Errorf("%w: cannot split %T into planes", ErrUnsupportedFormat, src)
}

// interleave recombines planes into packed triples in {0->R, 1->G, 2->B}
// order.
func interleave[S Scalar, P Pixel](b *Planar[S], mk func(S, S, S) P) *Packed[P] {
	n := b.w * b.h
	out := &Packed[P]{w: b.w, h: b.h, pix: rent[P](n)}
	for i := 0; i < n; i++ {
		out.pix[i] = mk(b.pix[i], b.pix[n+i], b.pix[2*n+i])
	}
	return out
}

// interleavePlanar converts a planar buffer to the packed RGB kind of
// matching channel width.
func interleavePlanar(src Buffer) (Buffer, error) {
	switch b := src.(type) {
	case *Planar[L8]:
		return interleave(b, func(r, g, bl L8) Rgb24 { return Rgb24{uint8(r), uint8(g), uint8(bl)} }), nil
	case *Planar[L16]:
		return interleave(b, func(r, g, bl L16) Rgb48 { return Rgb48{uint16(r), uint16(g), uint16(bl)} }), nil
	case *Planar[L]:
		return interleave(b, func(r, g, bl L) Rgb { return Rgb{float32(r), float32(g), float32(bl)} }), nil
	}
	return nil, fmt.Errorf("%w: cannot interleave %T", ErrUnsupportedFormat, src)
}

// replicate copies a single monochrome channel into all three planes.
func replicate[S Scalar](b *Packed[S]) *Planar[S] {
	n := b.w * b.h
	out := &Planar[S]{w: b.w, h: b.h, pix: rent[S](n * planes)}
	copy(out.pix[:n], b.pix)
	copy(out.pix[n:2*n], b.pix)
	copy(out.pix[2*n:], b.pix)
	return out
}

// replicatePacked converts a packed monochrome buffer to three identical
// planes.
func replicatePacked(src Buffer) (Buffer, error) {
	switch b := src.(type) {
	case *Packed[L8]:
		return replicate(b), nil
	case *Packed[L16]:
		return replicate(b), nil
	case *Packed[L]:
		return replicate(b), nil
	}
	return nil, fmt.Errorf("%w: cannot replicate %T into planes", ErrUnsupportedFormat, src)
}

// collapse folds the three planes of a pixel into one monochrome sample.
func collapse[S Scalar](b *Planar[S], luma func(r, g, bl S) S) *Packed[S] {
	n := b.w * b.h
	out := &Packed[S]{w: b.w, h: b.h, pix: rent[S](n)}
	for i := 0; i < n; i++ {
		out.pix[i] = luma(b.pix[i], b.pix[n+i], b.pix[2*n+i])
	}
	return out
}

// collapsePlanar converts a planar buffer to packed monochrome. The planes
// hold the R, G and B of the source image, so the fold is the luminance
// formula in the element's precision.
func collapsePlanar(src Buffer) (Buffer, error) {
	switch b := src.(type) {
	case *Planar[L8]:
		return collapse(b, func(r, g, bl L8) L8 { return Rgb24{uint8(r), uint8(g), uint8(bl)}.L8() }), nil
	case *Planar[L16]:
		return collapse(b, func(r, g, bl L16) L16 { return Rgb48{uint16(r), uint16(g), uint16(bl)}.L16() }), nil
	case *Planar[L]:
		return collapse(b, func(r, g, bl L) L { return Rgb{float32(r), float32(g), float32(bl)}.L() }), nil
	}
	return nil, fmt.Errorf("%w: cannot collapse %T", ErrUnsupportedFormat, src)
}
