package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mivey/pnm"
)

func testImage() *pnm.Image {
	return &pnm.Image{
		Header: pnm.Header{Format: pnm.FormatPixmapASCII, Width: 2, Height: 1, Max: 255},
		Samples: []pnm.Sample{
			{R: 10, G: 20, B: 30},
			{R: 40, G: 50, B: 60},
		},
	}
}

func TestWriteFrame(t *testing.T) {
	v := New(testImage())

	dst := make([]byte, 8)
	v.writeFrame(dst)

	require.Equal(t, []byte{10, 20, 30, 255, 40, 50, 60, 255}, dst)
}

func TestPresentLatch(t *testing.T) {
	v := New(testImage())
	dst := make([]byte, 8)

	assert.True(t, v.present(dst), "first redraw writes the frame")
	assert.False(t, v.present(dst), "further redraws are short-circuited")
	assert.False(t, v.present(dst))
}

func TestLayoutResizeReplaysFrame(t *testing.T) {
	v := New(testImage())
	dst := make([]byte, 8)

	v.Layout(100, 100)
	assert.True(t, v.present(dst))
	assert.False(t, v.present(dst))

	// Same outside size: no resize, frame stays latched.
	v.Layout(100, 100)
	assert.False(t, v.present(dst))

	// Resize notification reconfigures the surface and replays the frame.
	v.Layout(200, 150)
	assert.True(t, v.present(dst))
	assert.False(t, v.present(dst))
}

func TestLayoutReturnsImageSize(t *testing.T) {
	v := New(testImage())

	w, h := v.Layout(640, 480)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
}
