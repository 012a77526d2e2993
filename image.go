package pnm

import (
	"image"
	"image/color"
)

// Header carries the metadata tokenized from the start of the file.
type Header struct {
	Format Format
	Width  int
	Height int
	// Max is the declared per-channel maximum for graymap and pixmap
	// variants. It is 0 for the two bit formats, which carry none.
	Max int
}

// colorModel returns the natural color model for the variant.
func (h Header) colorModel() color.Model {
	switch h.Format {
	case FormatPixmapASCII, FormatPixmapBinary:
		return color.NRGBAModel
	default:
		return color.GrayModel
	}
}

// Sample is one decoded pixel stored as an RGB triple. Grayscale and
// bitmap variants replicate their single channel across all three.
type Sample struct {
	R, G, B uint8
}

var (
	sampleBlack = Sample{}
	sampleWhite = Sample{R: 255, G: 255, B: 255}
)

// Image is the result of a decode: the header and the samples in row-major
// order (left to right, top to bottom). It is built once during the decode
// pass and only read afterwards.
type Image struct {
	Header  Header
	Samples []Sample
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Header.Width, m.Header.Height)
}

// At implements image.Image. Positions with no backing sample read as
// opaque black.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.Header.Width || y >= m.Header.Height {
		return color.NRGBA{A: 0xFF}
	}

	i := y*m.Header.Width + x
	if i >= len(m.Samples) {
		return color.NRGBA{A: 0xFF}
	}

	s := m.Samples[i]

	return color.NRGBA{R: s.R, G: s.G, B: s.B, A: 0xFF}
}

// RGBA writes the image into dst as four bytes per pixel (R, G, B, 255) in
// row-major order. Writing stops at whichever runs out first: dst, the
// sample sequence, or the width*height pixel grid, so a sample overrun
// from bit-packed pad bits never spills past the surface.
func (m *Image) RGBA(dst []byte) {
	n := len(dst) / 4
	if grid := m.Header.Width * m.Header.Height; n > grid {
		n = grid
	}
	if n > len(m.Samples) {
		n = len(m.Samples)
	}

	for i := 0; i < n; i++ {
		s := m.Samples[i]
		o := i * 4
		dst[o] = s.R
		dst[o+1] = s.G
		dst[o+2] = s.B
		dst[o+3] = 0xFF
	}
}
