// Package pnm decodes the Netpbm family of image files: PBM bitmaps, PGM
// graymaps and PPM pixmaps, in both their ASCII (P1-P3) and binary (P4-P6)
// encodings.
package pnm

import (
	"errors"
	"fmt"
	"image"
	"io"
)

// Standard error types for Netpbm decoding.
var (
	// ErrFormat means the first two bytes are not a recognized format tag.
	ErrFormat = errors.New("pnm: unrecognized format tag")
	// ErrHeader means a header field carries an unusable value, such as a
	// non-positive width or a missing maximum sample value.
	ErrHeader = errors.New("pnm: invalid header field")
	// ErrSyntax means a numeric token could not be parsed.
	ErrSyntax = errors.New("pnm: syntax error")
	// ErrTruncatedHeader means the stream ended before every required
	// header field was seen.
	ErrTruncatedHeader = errors.New("pnm: truncated header")
	// ErrTruncatedData means fewer samples were decoded than the header
	// dimensions call for.
	ErrTruncatedData = errors.New("pnm: truncated sample data")
)

// Format identifies one of the six Netpbm variants, as selected by the
// two-byte tag at the start of the file.
type Format int

const (
	// FormatInvalid is reported for any unrecognized tag.
	FormatInvalid Format = iota
	// FormatBitmapASCII is P1, bitmap data in ASCII.
	FormatBitmapASCII
	// FormatGraymapASCII is P2, grayscale data in ASCII.
	FormatGraymapASCII
	// FormatPixmapASCII is P3, RGB data in ASCII.
	FormatPixmapASCII
	// FormatBitmapBinary is P4, bit-packed bitmap data.
	FormatBitmapBinary
	// FormatGraymapBinary is P5, one byte per grayscale sample.
	FormatGraymapBinary
	// FormatPixmapBinary is P6, three bytes per RGB sample.
	FormatPixmapBinary
)

// Binary reports whether the variant stores raw sample bytes after the header.
func (f Format) Binary() bool {
	return f == FormatBitmapBinary || f == FormatGraymapBinary || f == FormatPixmapBinary
}

// Bitmap reports whether the variant is a bit format, which carries no
// maximum sample value in its header.
func (f Format) Bitmap() bool {
	return f == FormatBitmapASCII || f == FormatBitmapBinary
}

// String returns the two-byte tag for the variant, or "P0" if invalid.
func (f Format) String() string {
	if f < FormatBitmapASCII || f > FormatPixmapBinary {
		return "P0"
	}

	return string([]byte{'P', '0' + byte(f)})
}

// formatFromTag maps the first two bytes of the stream to a Format.
func formatFromTag(b0, b1 byte) Format {
	if b0 != 'P' || b1 < '1' || b1 > '6' {
		return FormatInvalid
	}

	return Format(b1 - '0')
}

// Interface to check if a reader knows its remaining length.
type readerWithLen interface {
	Len() int
}

// readAllData reads data from r, pre-allocating if the size is known.
func readAllData(r io.Reader) ([]byte, error) {
	// Pre-allocate the buffer if the reader knows its remaining length.
	// Both decode paths need the whole file: the binary path seeks to the
	// header offset and the ASCII path restarts from the first byte.
	if rl, ok := r.(readerWithLen); ok {
		size := rl.Len()
		if size > 0 {
			data := make([]byte, size)
			_, err := io.ReadFull(r, data)
			if err != nil {
				return nil, fmt.Errorf("failed to read image data: %w", err)
			}

			return data, nil
		}
	}

	// Fallback for readers that don't implement Len() (e.g. os.File).
	return io.ReadAll(r)
}

// Decode reads a Netpbm image from r and returns it as an [*Image].
// The header is tokenized first; exactly one of the ASCII or binary data
// decoders then runs, selected by the format tag.
func Decode(r io.Reader) (*Image, error) {
	data, err := readAllData(r)
	if err != nil {
		return nil, err
	}

	header, offset, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	d := &decoder{data: data, header: header}

	if header.Format.Binary() {
		err = d.decodeBinary(offset)
	} else {
		err = d.decodeASCII()
	}
	if err != nil {
		return nil, err
	}

	return &Image{Header: header, Samples: d.samples}, nil
}

// DecodeConfig returns the color model and dimensions of a Netpbm image
// without decoding the sample data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := readAllData(r)
	if err != nil {
		return image.Config{}, err
	}

	header, _, err := parseHeader(data)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: header.colorModel(),
		Width:      header.Width,
		Height:     header.Height,
	}, nil
}

// init registers all six Netpbm tags with the standard library's image
// package, so image.Decode recognizes PBM/PGM/PPM files using this package.
func init() {
	decodeWrapper := func(r io.Reader) (image.Image, error) {
		return Decode(r)
	}

	for _, magic := range []string{"P1", "P2", "P3", "P4", "P5", "P6"} {
		image.RegisterFormat("pnm", magic, decodeWrapper, DecodeConfig)
	}
}
