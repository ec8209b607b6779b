// Package transform implements the in-place pixel operations applied to a
// decoded bitmap grid. None of them change the grid's dimensions and none
// can fail: parameters are validated by NewLevel and ParseChannel.
package transform

import (
	"github.com/samber/lo"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

// Invert replaces every channel value with its bitwise complement.
// Applying it twice restores the original grid.
func Invert(g *bitmap.Grid) {
	for i := range g.Pix {
		p := &g.Pix[i]
		p.R ^= 0xFF
		p.G ^= 0xFF
		p.B ^= 0xFF
	}
}

// Quantize clears the level lowest bits of every channel. Level 0 leaves
// the grid untouched; level 7 keeps only the top bit.
func Quantize(g *bitmap.Grid, level Level) {
	if level == 0 {
		return
	}
	mask := ^uint8(1<<level - 1)
	for i := range g.Pix {
		p := &g.Pix[i]
		p.R &= mask
		p.G &= mask
		p.B &= mask
	}
}

// RemoveChannel sets the selected channel of every pixel to zero.
func RemoveChannel(g *bitmap.Grid, ch Channel) {
	for i := range g.Pix {
		p := &g.Pix[i]
		switch ch {
		case Red:
			p.R = 0
		case Green:
			p.G = 0
		case Blue:
			p.B = 0
		}
	}
}

// FlipHorizontal mirrors every row: column j moves to width-1-j.
// Row order is unchanged. Applying it twice restores the original grid.
func FlipHorizontal(g *bitmap.Grid) {
	for y := range g.Height {
		lo.Reverse(g.Row(y))
	}
}
