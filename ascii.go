package pnm

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// tokenAppender converts one line's worth of integer tokens into samples.
// The per-variant rule is chosen once, before the scan starts.
type tokenAppender func(vals []int) error

// decodeASCII handles the three text variants. It re-reads the file from
// its first byte, line by line, re-deriving the header fields with
// line-oriented skipping rules instead of reusing the byte offset computed
// by parseHeader; the two scans can disagree on files with unconventional
// whitespace, which is accepted (see DESIGN.md).
func (d *decoder) decodeASCII() error {
	var max int
	appendTokens := d.asciiAppender(d.header.Format, &max)

	var width, height int
	first := true

	sc := bufio.NewScanner(bytes.NewReader(d.data))
	// Writers commonly emit the whole raster on a single line, so a line
	// is bounded only by the input size, not the scanner's default cap.
	sc.Buffer(nil, len(d.data)+1)
	for sc.Scan() {
		line := sc.Text()

		// The first line is the format tag line.
		if first {
			first = false

			continue
		}

		// Lines that open with a comment are skipped entirely.
		if len(line) > 0 && line[0] == '#' {
			continue
		}

		// The first retained line holds the dimensions. Tokens past the
		// second are ignored.
		if width == 0 && height == 0 {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return fmt.Errorf("%w: dimension line %q", ErrSyntax, line)
			}

			w, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("%w: width %q", ErrSyntax, fields[0])
			}

			h, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("%w: height %q", ErrSyntax, fields[1])
			}

			width, height = w, h

			continue
		}

		// The next retained line is the maximum sample value, except for
		// bitmaps, which carry none.
		if max == 0 && d.header.Format != FormatBitmapASCII {
			v, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return fmt.Errorf("%w: max value line %q", ErrSyntax, line)
			}

			max = v

			continue
		}

		// Sample data: truncate at an inline comment, then split into
		// integer tokens.
		if i := strings.IndexByte(line, '#'); i > 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		vals := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("%w: sample token %q", ErrSyntax, field)
			}

			vals[i] = v
		}

		if err := appendTokens(vals); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to scan image data: %w", err)
	}

	return d.checkCount()
}

// asciiAppender returns the token-to-sample rule for the variant. max is a
// pointer because the maximum sample value is discovered mid-scan.
func (d *decoder) asciiAppender(format Format, max *int) tokenAppender {
	switch format {
	case FormatPixmapASCII:
		// Tokens form RGB triples in encounter order; a triple may span a
		// line break.
		var pending []int

		return func(vals []int) error {
			pending = append(pending, vals...)
			for len(pending) >= 3 {
				d.samples = append(d.samples, Sample{
					R: clip(int32(pending[0])),
					G: clip(int32(pending[1])),
					B: clip(int32(pending[2])),
				})
				pending = pending[3:]
			}

			return nil
		}
	case FormatGraymapASCII:
		return func(vals []int) error {
			if *max < 1 {
				return fmt.Errorf("%w: max sample value %d", ErrHeader, *max)
			}

			for _, v := range vals {
				g := scale(v, *max)
				d.samples = append(d.samples, Sample{R: g, G: g, B: g})
			}

			return nil
		}
	default: // FormatBitmapASCII
		return func(vals []int) error {
			for _, v := range vals {
				if v == 0 {
					d.samples = append(d.samples, sampleBlack)
				} else {
					d.samples = append(d.samples, sampleWhite)
				}
			}

			return nil
		}
	}
}
