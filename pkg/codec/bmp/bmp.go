// Package bmp exposes the golang.org/x/image BMP codec through the torque
// Codec interface.
package bmp

import (
	"bytes"
	"io"

	xbmp "golang.org/x/image/bmp"

	"github.com/imagetorque/imagetorque.go/pkg/codec/stdimg"
	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

var magic = []byte{'B', 'M'}

// Codec reads and writes BMP streams. BMP stores at most 8 bits per
// channel, so 16-bit buffers are narrowed before encoding. The quality
// parameter is ignored.
type Codec struct{}

// New returns the BMP codec.
func New() *Codec { return &Codec{} }

// Name returns "bmp".
func (*Codec) Name() string { return "bmp" }

// HeaderSize is the length of the BMP magic.
func (*Codec) HeaderSize() int { return len(magic) }

// Matches reports whether the header carries the BMP magic.
func (*Codec) Matches(header []byte) bool { return bytes.Equal(header, magic) }

// Encoders lists the encoder tags this codec accepts.
func (*Codec) Encoders() []string { return []string{"bmp"} }

// Decode reads a BMP stream into an owned pixel buffer.
func (*Codec) Decode(r io.Reader) (torque.Buffer, error) {
	m, err := xbmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return stdimg.FromImage(m)
}

// Encode writes the buffer as BMP, narrowing 16-bit sources to 8 bits.
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
	return xbmp.Encode(w, m)
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
