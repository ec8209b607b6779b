package bitmap

import (
	"image"
)

// Pixel is a single 24-bit color value. There is no alpha channel.
type Pixel struct {
	R, G, B uint8
}

// Grid holds the decoded pixels of an image in one contiguous buffer.
// Row 0 is the first row stored in the file.
type Grid struct {
	Width  int
	Height int
	// Pix holds Width*Height pixels. The pixel at (x, y) is Pix[y*Width+x].
	Pix []Pixel
}

// NewGrid allocates a zeroed grid. Dimensions must be positive.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// At returns the pixel in column x of row y.
func (g *Grid) At(x, y int) Pixel {
	return g.Pix[y*g.Width+x]
}

// Set stores p in column x of row y.
func (g *Grid) Set(x, y int, p Pixel) {
	g.Pix[y*g.Width+x] = p
}

// Row returns row y as a slice sharing the grid's storage.
func (g *Grid) Row(y int) []Pixel {
	start := y * g.Width
	return g.Pix[start : start+g.Width : start+g.Width]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pix: make([]Pixel, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Image converts the grid to an opaque NRGBA image, row 0 at the top.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		off := y * img.Stride
		for x, p := range g.Row(y) {
			i := off + x*4
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
