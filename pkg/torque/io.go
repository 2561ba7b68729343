package torque

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultQuality is the conventional encoder quality. Save and SaveFile take
// quality as an explicit argument and do not substitute this value.
const DefaultQuality = 80

// Load decodes an image from a seekable stream using the configured codecs,
// dispatching on the sniffed header.
func Load(rs io.ReadSeeker, opts ...Option) (*Image, error) {
	c, err := Detect(rs, opts...)
	if err != nil {
		return nil, err
	}
	buf, err := c.Decode(rs)
	if err != nil {
		return nil, wrapCodecErr(err, ErrInvalidData, c.Name()+" decode")
	}
	return NewImage(buf)
}

// LoadFile decodes an image from a filesystem path.
func LoadFile(path string, opts ...Option) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// saveKind maps a root pixel format to the packed element kind handed to
// encoders.
func saveKind(f Format) (Kind, error) {
	switch f {
	case Mono, Mono8:
		return KindL8, nil
	case Mono16:
		return KindL16, nil
	case RgbPacked, Rgb24Packed, RgbPlanar, Rgb888Planar:
		return KindRgb24, nil
	case Rgb48Packed, Rgb161616Planar:
		return KindRgb48, nil
	}
	return 0, fmt.Errorf("%w: cannot save from %s", ErrUnsupportedFormat, f)
}

// Save encodes the image to a stream. The encoder tag is lower-cased and
// matched against the registered codecs' supported encoders; quality must
// lie in [1, 100]. The image is converted to its packed save representation
// first, reusing the conversion cache.
func (img *Image) Save(w io.Writer, encoder string, quality int, opts ...Option) error {
	if img.released.Load() {
		return fmt.Errorf("%w: save", ErrDisposed)
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("%w: quality %d outside [1,100]", ErrInvalidArgument, quality)
	}
	tag := strings.ToLower(encoder)
	o := NewOptions(opts...)
	var codec Codec
	for _, c := range o.Codecs {
		if slices.Contains(c.Encoders(), tag) {
			codec = c
			break
		}
	}
	if codec == nil {
		return fmt.Errorf("%w: no codec encodes %q", ErrUnsupportedFormat, tag)
	}
	kind, err := saveKind(img.PixelFormat())
	if err != nil {
		return err
	}
	buf, err := img.view(PackedLayout, kind)
	if err != nil {
		return err
	}
	if err := codec.Encode(w, buf, tag, quality); err != nil {
		return wrapCodecErr(err, ErrIO, codec.Name()+" encode")
	}
	return nil
}

// SaveFile encodes the image to a path, deriving the encoder tag from the
// final extension (without the dot, lower-case).
func (img *Image) SaveFile(path string, quality int, opts ...Option) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return fmt.Errorf("%w: no extension in %s", ErrUnsupportedFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	if err := img.Save(f, ext, quality, opts...); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIO, path, err)
	}
	return nil
}

// Resize produces a new owned image resampled from the root buffer.
func (img *Image) Resize(w, h int, m Method, opts ...ResampleOption) (*Image, error) {
	if img.released.Load() {
		return nil, fmt.Errorf("%w: resize", ErrDisposed)
	}
	out, err := Resize(img.root, w, h, m, opts...)
	if err != nil {
		return nil, err
	}
	return NewImage(out)
}

// wrapCodecErr keeps taxonomy errors intact and folds everything else a
// codec reports into the given kind.
func wrapCodecErr(err, kind error, op string) error {
	for _, known := range []error{ErrInvalidArgument, ErrShapeMismatch, ErrUnsupportedFormat, ErrInvalidData, ErrIO, ErrDisposed} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %s: %v", kind, op, err)
}
