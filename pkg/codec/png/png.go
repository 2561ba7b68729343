// Package png exposes the standard library PNG codec through the torque
// Codec interface.
package png

import (
	"bytes"
	stdpng "image/png"
	"io"

	"github.com/imagetorque/imagetorque.go/pkg/codec/stdimg"
	"github.com/imagetorque/imagetorque.go/pkg/torque"
)

// signature is the fixed 8-byte PNG file header.
var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Codec reads and writes PNG streams. PNG is lossless; the quality
// parameter is ignored.
type Codec struct{}

// New returns the PNG codec.
func New() *Codec { return &Codec{} }

// Name returns "png".
func (*Codec) Name() string { return "png" }

// HeaderSize is the length of the PNG signature.
func (*Codec) HeaderSize() int { return len(signature) }

// Matches reports whether the header carries the PNG signature.
func (*Codec) Matches(header []byte) bool { return bytes.Equal(header, signature) }

// Encoders lists the encoder tags this codec accepts.
func (*Codec) Encoders() []string { return []string{"png"} }

// Decode reads a PNG stream into an owned pixel buffer, keeping 16-bit
// depth when the file carries it.
func (*Codec) Decode(r io.Reader) (torque.Buffer, error) {
	m, err := stdpng.Decode(r)
	if err != nil {
		return nil, err
	}
	return stdimg.FromImage(m)
}

// Encode writes the buffer as PNG.
func (*Codec) Encode(w io.Writer, src torque.Buffer, encoder string, quality int) error {
	m, err := stdimg.ToImage(src)
	if err != nil {
		return err
	}
	return stdpng.Encode(w, m)
}
