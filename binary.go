package pnm

// decodeBinary handles the three binary variants. It picks up at the data
// offset computed by parseHeader and streams raw bytes until the end of
// the input.
func (d *decoder) decodeBinary(offset int) error {
	if offset > len(d.data) {
		offset = len(d.data)
	}
	raw := d.data[offset:]

	switch d.header.Format {
	case FormatPixmapBinary:
		// Raw RGB triples pass through unchanged; the declared maximum
		// is not applied. A trailing partial triple is dropped.
		for i := 0; i+2 < len(raw); i += 3 {
			d.samples = append(d.samples, Sample{R: raw[i], G: raw[i+1], B: raw[i+2]})
		}
	case FormatGraymapBinary:
		max := d.header.Max
		for _, b := range raw {
			g := scale(int(b), max)
			d.samples = append(d.samples, Sample{R: g, G: g, B: g})
		}
	case FormatBitmapBinary:
		// Each byte unpacks most-significant bit first: a set bit is
		// black, a clear bit white. When the width is not a multiple of
		// eight the pad bits of a row's final byte are not trimmed, so
		// the sample count can exceed width*height.
		for _, b := range raw {
			for n := 7; n >= 0; n-- {
				if (b>>uint(n))&1 == 1 {
					d.samples = append(d.samples, sampleBlack)
				} else {
					d.samples = append(d.samples, sampleWhite)
				}
			}
		}
	}

	return d.checkCount()
}
