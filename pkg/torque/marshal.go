package torque

import "fmt"

// Copy returns a fresh independently-owned clone of an opaque buffer,
// dispatching on its concrete (layout, element kind).
func Copy(src Buffer) (Buffer, error) {
	switch b := src.(type) {
	case *Packed[L8]:
		return b.Clone(), nil
	case *Packed[L16]:
		return b.Clone(), nil
	case *Packed[L]:
		return b.Clone(), nil
	case *Packed[Rgb24]:
		return b.Clone(), nil
	case *Packed[Rgb48]:
		return b.Clone(), nil
	case *Packed[Rgb]:
		return b.Clone(), nil
	case *Planar[L8]:
		return b.Clone(), nil
	case *Planar[L16]:
		return b.Clone(), nil
	case *Planar[L]:
		return b.Clone(), nil
	}
	return nil, fmt.Errorf("%w: cannot copy %T", ErrUnsupportedFormat, src)
}

// BuffersEqual reports structural equality of two opaque buffers. Buffers
// of different concrete forms are never equal.
func BuffersEqual(a, b Buffer) bool {
	switch x := a.(type) {
	case *Packed[L8]:
		y, ok := b.(*Packed[L8])
		return ok && x.Equal(y)
	case *Packed[L16]:
		y, ok := b.(*Packed[L16])
		return ok && x.Equal(y)
	case *Packed[L]:
		y, ok := b.(*Packed[L])
		return ok && x.Equal(y)
	case *Packed[Rgb24]:
		y, ok := b.(*Packed[Rgb24])
		return ok && x.Equal(y)
	case *Packed[Rgb48]:
		y, ok := b.(*Packed[Rgb48])
		return ok && x.Equal(y)
	case *Packed[Rgb]:
		y, ok := b.(*Packed[Rgb])
		return ok && x.Equal(y)
	case *Planar[L8]:
		y, ok := b.(*Planar[L8])
		return ok && x.Equal(y)
	case *Planar[L16]:
		y, ok := b.(*Planar[L16])
		return ok && x.Equal(y)
	case *Planar[L]:
		y, ok := b.(*Planar[L])
		return ok && x.Equal(y)
	}
	return false
}
