package pnm

import (
	"bytes"
	"errors"
	"testing"
)

// binaryFile builds a binary-variant fixture from a header string and raw
// sample bytes.
func binaryFile(header string, data ...byte) []byte {
	return append([]byte(header), data...)
}

// TestDecodePixmapBinary checks that P6 sample bytes pass through without
// scaling, whatever the declared max value.
func TestDecodePixmapBinary(t *testing.T) {
	input := binaryFile("P6\n2 1\n100\n", 200, 10, 0, 1, 2, 3)

	img, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []Sample{{200, 10, 0}, {1, 2, 3}}
	if len(img.Samples) != len(want) {
		t.Fatalf("samples: got %d, want %d", len(img.Samples), len(want))
	}

	for i, s := range want {
		if img.Samples[i] != s {
			t.Errorf("sample %d: got %v, want %v", i, img.Samples[i], s)
		}
	}
}

// TestDecodeGraymapBinary checks the truncating scale applied to P5 bytes.
func TestDecodeGraymapBinary(t *testing.T) {
	input := binaryFile("P5\n2 1\n100\n", 50, 100)

	img, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []Sample{{127, 127, 127}, {255, 255, 255}}
	for i, s := range want {
		if img.Samples[i] != s {
			t.Errorf("sample %d: got %v, want %v", i, img.Samples[i], s)
		}
	}
}

// TestDecodeBitmapBinary checks MSB-first bit unpacking: a set bit decodes
// to black, a clear bit to white.
func TestDecodeBitmapBinary(t *testing.T) {
	input := binaryFile("P4\n8 1\n", 0b10000000)

	img, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(img.Samples) != 8 {
		t.Fatalf("samples: got %d, want 8", len(img.Samples))
	}

	if img.Samples[0] != sampleBlack {
		t.Errorf("sample 0: got %v, want black", img.Samples[0])
	}

	for i := 1; i < 8; i++ {
		if img.Samples[i] != sampleWhite {
			t.Errorf("sample %d: got %v, want white", i, img.Samples[i])
		}
	}
}

// TestDecodeBitmapBinaryRaggedWidth checks that a width that is not a
// multiple of eight decodes without error and keeps the pad bits of each
// byte, so the sample count exceeds width*height.
func TestDecodeBitmapBinaryRaggedWidth(t *testing.T) {
	input := binaryFile("P4\n3 2\n", 0xFF, 0x00)

	img, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(img.Samples) != 16 {
		t.Errorf("samples: got %d, want 16 (pad bits kept)", len(img.Samples))
	}
}

// TestDecodePixmapBinaryPartialTriple checks that a trailing partial RGB
// group is dropped rather than decoded from stale bytes.
func TestDecodePixmapBinaryPartialTriple(t *testing.T) {
	input := binaryFile("P6\n1 1\n255\n", 9, 8, 7, 99)

	img, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(img.Samples) != 1 {
		t.Fatalf("samples: got %d, want 1", len(img.Samples))
	}

	if img.Samples[0] != (Sample{9, 8, 7}) {
		t.Errorf("sample 0: got %v, want {9 8 7}", img.Samples[0])
	}
}

func TestDecodeBinaryTruncated(t *testing.T) {
	input := binaryFile("P6\n2 2\n255\n", 1, 2, 3)

	_, err := Decode(bytes.NewReader(input))
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("got %v, want %v", err, ErrTruncatedData)
	}
}
