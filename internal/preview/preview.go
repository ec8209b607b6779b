// Package preview prints a bitmap to a 24-bit color terminal, one pair of
// spaces per pixel.
package preview

import (
	"bufio"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

const block = "  "

// Render writes g to w. When cols > 0 and the grid is wider, it is
// downsampled to cols pixels across, keeping the aspect ratio.
func Render(w io.Writer, g *bitmap.Grid, cols int) error {
	img := g.Image()
	if cols > 0 && g.Width > cols {
		h := g.Height * cols / g.Width
		if h < 1 {
			h = 1
		}
		img = imaging.Resize(img, cols, h, imaging.NearestNeighbor)
	}

	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			bw.WriteString(ColoredBlock(block, c.R, c.G, c.B))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ColoredBlock wraps s in an ANSI true-color background escape.
func ColoredBlock(s string, r, g, b uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", r, g, b, s)
}
