package torque

import (
	"errors"
	"fmt"
	"io"
)

// Codec is the contract a concrete image format implementation provides.
// Detection is by header sniff: a codec declares how many leading bytes it
// needs and decides on exactly those bytes.
type Codec interface {
	// Name identifies the codec, lower-case ("png").
	Name() string
	// HeaderSize is the fixed number of leading bytes Matches inspects.
	HeaderSize() int
	// Matches reports whether a header of exactly HeaderSize bytes
	// belongs to this format.
	Matches(header []byte) bool
	// Decode reads a full stream and returns an owned pixel buffer.
	Decode(r io.Reader) (Buffer, error)
	// Encode writes the buffer to the stream. The encoder tag selects
	// among the codec's supported encoders; quality is in [1, 100] and
	// ignored by lossless formats.
	Encode(w io.Writer, src Buffer, encoder string, quality int) error
	// Encoders lists the encoder-type tags this codec accepts.
	Encoders() []string
}

// DefaultMaxHeaderSize bounds how many bytes Detect sniffs.
const DefaultMaxHeaderSize = 512

// Options configure codec dispatch. Codecs are tested in order; the first
// whose header predicate matches wins.
type Options struct {
	MaxHeaderSize int
	Codecs        []Codec
}

// Option mutates Options.
type Option func(*Options)

// WithMaxHeaderSize overrides the sniff window.
func WithMaxHeaderSize(n int) Option {
	return func(o *Options) { o.MaxHeaderSize = n }
}

// WithCodecs appends codecs in detection order.
func WithCodecs(cs ...Codec) Option {
	return func(o *Options) { o.Codecs = append(o.Codecs, cs...) }
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{MaxHeaderSize: DefaultMaxHeaderSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Detect sniffs up to MaxHeaderSize leading bytes of a seekable stream and
// returns the first registered codec whose predicate matches. The stream is
// rewound to its start before returning.
func Detect(rs io.ReadSeeker, opts ...Option) (Codec, error) {
	o := NewOptions(opts...)
	if o.MaxHeaderSize < 0 {
		return nil, fmt.Errorf("%w: max header size %d", ErrInvalidArgument, o.MaxHeaderSize)
	}
	header := make([]byte, o.MaxHeaderSize)
	n, err := io.ReadFull(rs, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: reading header: %v", ErrIO, err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: rewinding stream: %v", ErrIO, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty header", ErrInvalidData)
	}
	for _, c := range o.Codecs {
		if hs := c.HeaderSize(); hs <= n && c.Matches(header[:hs]) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no codec matches header", ErrInvalidData)
}
