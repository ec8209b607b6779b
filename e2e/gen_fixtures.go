//go:build ignore

// gen_fixtures creates small bitmaps for the batch smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(filepath.Join(dir, "cards"), 0o755); err != nil {
		fatal(err)
	}

	// Widths are multiples of four so rows need no padding in other readers.
	write(filepath.Join(dir, "banner"), gradient(400, 224))

	for i := 1; i <= 3; i++ {
		write(filepath.Join(dir, "cards", fmt.Sprintf("card-%d", i)), solidWithBorder(200, 152, uint8(i*60)))
	}

	write(filepath.Join(dir, "stripes"), stripes(64, 64))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 fixtures in %s\n", dir)
}

func gradient(w, h int) *bitmap.Grid {
	g := bitmap.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, bitmap.Pixel{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
			})
		}
	}
	return g
}

func solidWithBorder(w, h int, base uint8) *bitmap.Grid {
	g := bitmap.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := bitmap.Pixel{R: base, G: base + 40, B: base + 80}
			if x < 4 || x >= w-4 || y < 4 || y >= h-4 {
				p = bitmap.Pixel{}
			}
			g.Set(x, y, p)
		}
	}
	return g
}

// stripes alternates primaries per column so a flip or a removed channel
// is visible at a glance.
func stripes(w, h int) *bitmap.Grid {
	cols := []bitmap.Pixel{{R: 255}, {G: 255}, {B: 255}, {R: 255, G: 255, B: 255}}
	g := bitmap.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, cols[(x/8)%len(cols)])
		}
	}
	return g
}

func write(base string, g *bitmap.Grid) {
	img := &bitmap.Image{
		Meta: bitmap.Meta{FileSize: bitmap.ExpectedFileSize(g.Width, g.Height)},
		Grid: g,
	}
	if err := bitmap.Save(img, base); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gen_fixtures:", err)
	os.Exit(1)
}
