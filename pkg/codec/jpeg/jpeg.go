// Package jpeg exposes the standard library JPEG codec through the torque
// Codec interface.
package jpeg

import (
	"bytes"
	stdjpeg "image/jpeg"
	"io"

	"github.com/imagetorque/imagetorque.go/pkg/codec/stdimg"
	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

var magic = []byte{0xff, 0xd8, 0xff}

// Codec reads and writes baseline JPEG streams. JPEG stores at most 8 bits
// per channel, so 16-bit buffers are narrowed before encoding. The quality
// parameter maps straight onto the encoder's quality setting.
type Codec struct{}

// New returns the JPEG codec.
func New() *Codec { return &Codec{} }

// Name returns "jpeg".
func (*Codec) Name() string { return "jpeg" }

// HeaderSize is the length of the JPEG SOI+marker prefix.
func (*Codec) HeaderSize() int { return len(magic) }

// Matches reports whether the header carries the JPEG prefix.
func (*Codec) Matches(header []byte) bool { return bytes.Equal(header, magic) }

// Encoders lists the encoder tags this codec accepts.
func (*Codec) Encoders() []string { return []string{"jpeg", "jpg"} }

// Decode reads a JPEG stream into an owned pixel buffer.
func (*Codec) Decode(r io.Reader) (torque.Buffer, error) {
	m, err := stdjpeg.Decode(r)
	if err != nil {
		return nil, err
	}
	return stdimg.FromImage(m)
}

// Encode writes the buffer as JPEG at the given quality.
func (*Codec) Encode(w io.Writer, src torque.Buffer, encoder string, quality int) error {
	src, release, err := narrow(src)
	if err != nil {
		return err
	}
	defer release()
	m, err := stdimg.ToImage(src)
	if err != nil {
		return err
	}
	return stdjpeg.Encode(w, m, &stdjpeg.Options{Quality: quality})
}

// narrow converts 16-bit buffers down to their 8-bit counterparts.
func narrow(src torque.Buffer) (torque.Buffer, func(), error) {
	var target torque.Kind
	switch src.Kind() {
	case torque.KindL16:
		target = torque.KindL8
	case torque.KindRgb48:
		target = torque.KindRgb24
	default:
		return src, func() {}, nil
	}
	out, err := torque.Convert(src, torque.PackedLayout, target)
	if err != nil {
		return nil, nil, err
	}
	return out, out.Release, nil
}
