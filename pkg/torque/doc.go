// Package torque is an in-memory raster image library built around
// layout-polymorphic pixel buffers.
//
// A buffer holds one of six element kinds (8-bit, 16-bit and normalised
// float luminance, and the RGB compound of each) in either a packed
// (interleaved) or planar (channel-separated) layout, with backing storage
// leased from a process-wide pool. The conversion engine transcodes between
// any pair of (layout, element kind) representations, and the Image facade
// memoises conversions per image while the decoded root buffer stays the
// ground truth.
//
// Basic usage:
//
//	img, err := torque.LoadFile("in.png", torque.WithCodecs(png.New()))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer img.Release()
//
//	// Typed read-only views, converted and cached on demand
//	rgb, err := torque.AsPacked[torque.Rgb24](img)
//
//	// Derived images own their buffers
//	small, err := img.Resize(64, 64, torque.Bicubic)
//
// Concrete codecs live under pkg/codec and plug in through the Codec
// interface; dispatch sniffs the stream header and picks the first
// registered codec that matches.
package torque
