// Package viewer presents a single decoded image in a window. The decoder
// hands it a finished pnm.Image; the viewer only reads it.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mivey/pnm"
)

// presentState tracks whether the frame has been written to the surface.
// The viewer is a static single-image display: after the first successful
// frame write, redraw requests are short-circuited until the surface is
// reconfigured by a resize.
type presentState int

const (
	stateNotPresented presentState = iota
	statePresented
)

// Viewer implements ebiten.Game for one immutable image.
type Viewer struct {
	img   *pnm.Image
	state presentState
	frame []byte // scratch RGBA buffer, width*height*4
	outW  int    // last observed outside width, for resize detection
	outH  int
}

// New builds a viewer for the decoded image.
func New(img *pnm.Image) *Viewer {
	return &Viewer{
		img:   img,
		frame: make([]byte, img.Header.Width*img.Header.Height*4),
	}
}

// Update handles input: Escape terminates the run loop. Closing the window
// is handled by ebiten itself.
func (v *Viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return nil
}

// present writes the frame buffer if the image has not been presented yet.
// It reports whether a write happened.
func (v *Viewer) present(dst []byte) bool {
	if v.state == statePresented {
		return false
	}

	v.writeFrame(dst)
	v.state = statePresented

	return true
}

// writeFrame fills dst with four bytes (R, G, B, 255) per pixel position
// in row-major order, sourced from the matching sample.
func (v *Viewer) writeFrame(dst []byte) {
	v.img.RGBA(dst)
}

// Draw services a redraw request. Screen clearing between frames is
// disabled in Run, so skipped redraws leave the presented frame on screen.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.present(v.frame) {
		screen.WritePixels(v.frame)
	}
}

// Layout sizes the draw surface to the image dimensions. A change in the
// outside size is the resize notification: the surface is reconfigured and
// the same frame is replayed, with no change to the sample data.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.outW || outsideHeight != v.outH {
		v.outW, v.outH = outsideWidth, outsideHeight
		v.state = stateNotPresented
	}

	return v.img.Header.Width, v.img.Header.Height
}

// Run opens a window sized to the image and drives the event loop until
// the user quits. It blocks until the window is closed.
func Run(img *pnm.Image, title string) error {
	ebiten.SetWindowSize(img.Header.Width, img.Header.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	return ebiten.RunGame(New(img))
}
