package pnm

import (
	"fmt"
	"strconv"
)

// decoder holds the state of a single decode pass. It is built once per
// call to Decode and never reused; decoding is a one-shot batch operation.
type decoder struct {
	data    []byte   // Input buffer containing the entire file.
	header  Header   // Header produced by parseHeader.
	samples []Sample // Decoded samples, appended in row-major encounter order.
}

// cursor is the byte-position state of the header scan: the input buffer
// and the index of the next unread byte. parseHeader threads a single
// cursor through the scan so the data offset it ends on is explicit.
type cursor struct {
	data []byte
	pos  int
}

// next consumes and returns the next byte. ok is false at end of input.
func (c *cursor) next() (b byte, ok bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}

	b = c.data[c.pos]
	c.pos++

	return b, true
}

// isSpace reports whether b terminates a header token.
func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r'
}

// parseHeader reads the two-byte format tag and then scans the header with
// three states: skip-whitespace, accumulate-token and skip-comment. A `#`
// opens a comment that runs until the next `#`, CR or LF; note that a
// comment does not terminate the token being accumulated around it.
//
// Completed tokens are assigned in order to width, height and, for non-bit
// formats, the maximum sample value. The returned offset is the position
// immediately after the whitespace byte that terminated the last required
// token, i.e. the first byte of pixel data.
func parseHeader(data []byte) (Header, int, error) {
	if len(data) < 2 {
		return Header{}, 0, ErrTruncatedHeader
	}

	format := formatFromTag(data[0], data[1])
	if format == FormatInvalid {
		return Header{}, 0, ErrFormat
	}

	header := Header{Format: format}

	need := 3
	if format.Bitmap() {
		need = 2
	}

	cur := &cursor{data: data, pos: 2}
	tok := make([]byte, 0, 8)
	got := 0

	assign := func() error {
		v, err := strconv.Atoi(string(tok))
		if err != nil {
			return fmt.Errorf("%w: bad header token %q", ErrSyntax, tok)
		}

		switch got {
		case 0:
			header.Width = v
		case 1:
			header.Height = v
		case 2:
			header.Max = v
		}

		got++
		tok = tok[:0]

		return nil
	}

	for got < need {
		b, ok := cur.next()
		if !ok {
			// End of input. A pending token still counts; anything
			// beyond that is a truncated header.
			if len(tok) > 0 {
				if err := assign(); err != nil {
					return Header{}, 0, err
				}

				continue
			}

			return Header{}, 0, ErrTruncatedHeader
		}

		switch {
		case isSpace(b):
			if len(tok) > 0 {
				if err := assign(); err != nil {
					return Header{}, 0, err
				}
			}
		case b == '#':
			for {
				cb, ok := cur.next()
				if !ok || cb == '#' || cb == '\r' || cb == '\n' {
					break
				}
			}
		default:
			tok = append(tok, b)
		}
	}

	if err := header.validate(); err != nil {
		return Header{}, 0, err
	}

	return header, cur.pos, nil
}

// validate checks the assembled header fields.
func (h Header) validate() error {
	if h.Width < 1 || h.Height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrHeader, h.Width, h.Height)
	}

	if !h.Format.Bitmap() && h.Max < 1 {
		return fmt.Errorf("%w: max sample value %d", ErrHeader, h.Max)
	}

	return nil
}

// clip clamps an int32 value to the valid 8-bit pixel range [0, 255].
func clip(x int32) byte {
	if x < 0 {
		return 0
	}

	if x > 255 {
		return 255
	}

	return byte(x)
}

// scale maps a raw sample value to the 0-255 range using the header's
// maximum, truncating toward zero: (v/max)*255.
func scale(v, max int) byte {
	return clip(int32((float64(v) / float64(max)) * 255))
}

// checkCount verifies that enough samples were produced for the header
// dimensions. Excess samples are tolerated: bit-packed rows carry trailing
// pad bits when the width is not a multiple of eight, and those are kept.
func (d *decoder) checkCount() error {
	want := d.header.Width * d.header.Height
	if len(d.samples) < want {
		return fmt.Errorf("%w: have %d samples, want %d", ErrTruncatedData, len(d.samples), want)
	}

	return nil
}
