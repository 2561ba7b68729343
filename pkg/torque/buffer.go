package torque

import "github.com/imagetorque/imagetorque.go/pkg/torque/mempool"

// Buffer is the opaque view of a pixel buffer of any layout and element
// kind. Concrete buffers are *Packed[T] and *Planar[T]; operations that
// need the element type recover it with a type switch.
//
// A buffer exclusively owns its backing block. Release returns the block
// to the process-wide pool; the buffer and any views of it must not be
// used afterwards.
type Buffer interface {
	Width() int
	Height() int
	Channels() int
	Kind() Kind
	Layout() Layout
	Format() Format
	Release()
}

// Process-wide backing pools, one per element kind.
var (
	poolL8    = mempool.New[L8]()
	poolL16   = mempool.New[L16]()
	poolL     = mempool.New[L]()
	poolRgb24 = mempool.New[Rgb24]()
	poolRgb48 = mempool.New[Rgb48]()
	poolRgb   = mempool.New[Rgb]()
)

// rent leases a block of n elements from the pool for T.
func rent[T Pixel](n int) []T {
	var z T
	switch any(z).(type) {
	case L8:
		return any(poolL8.Rent(n)).([]T)
	case L16:
		return any(poolL16.Rent(n)).([]T)
	case L:
		return any(poolL.Rent(n)).([]T)
	case Rgb24:
		return any(poolRgb24.Rent(n)).([]T)
	case Rgb48:
		return any(poolRgb48.Rent(n)).([]T)
	default:
		return any(poolRgb.Rent(n)).([]T)
	}
}

// giveBack returns a leased block to the pool for T.
func giveBack[T Pixel](s []T) {
	switch v := any(s).(type) {
	case []L8:
		poolL8.Return(v)
	case []L16:
		poolL16.Return(v)
	case []L:
		poolL.Return(v)
	case []Rgb24:
		poolRgb24.Return(v)
	case []Rgb48:
		poolRgb48.Return(v)
	case []Rgb:
		poolRgb.Return(v)
	}
}

// kindOf reports the element kind tag for T.
func kindOf[T Pixel]() Kind {
	var z T
	switch any(z).(type) {
	case L8:
		return KindL8
	case L16:
		return KindL16
	case L:
		return KindL
	case Rgb24:
		return KindRgb24
	case Rgb48:
		return KindRgb48
	default:
		return KindRgb
	}
}
