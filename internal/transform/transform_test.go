package transform

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

func gridOf(rows [][]bitmap.Pixel) *bitmap.Grid {
	g := bitmap.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(g.Row(y), row)
	}
	return g
}

// scenarioGrid is the 2x2 grid used by the worked examples.
func scenarioGrid() *bitmap.Grid {
	return gridOf([][]bitmap.Pixel{
		{{R: 10, G: 20, B: 30}, {R: 40, G: 50, B: 60}},
		{{R: 70, G: 80, B: 90}, {R: 100, G: 110, B: 120}},
	})
}

// variedGrid covers every byte value in each channel at different offsets.
func variedGrid() *bitmap.Grid {
	g := bitmap.NewGrid(16, 16)
	for i := range g.Pix {
		g.Pix[i] = bitmap.Pixel{R: uint8(i), G: uint8(i*7 + 3), B: uint8(255 - i)}
	}
	return g
}

func TestInvert_Scenario(t *testing.T) {
	g := scenarioGrid()
	Invert(g)
	want := gridOf([][]bitmap.Pixel{
		{{R: 245, G: 235, B: 225}, {R: 215, G: 205, B: 195}},
		{{R: 185, G: 175, B: 165}, {R: 155, G: 145, B: 135}},
	})
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("invert (-want +got):\n%s", diff)
	}
}

func TestFlipHorizontal_Scenario(t *testing.T) {
	g := scenarioGrid()
	FlipHorizontal(g)
	want := gridOf([][]bitmap.Pixel{
		{{R: 40, G: 50, B: 60}, {R: 10, G: 20, B: 30}},
		{{R: 100, G: 110, B: 120}, {R: 70, G: 80, B: 90}},
	})
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("flip (-want +got):\n%s", diff)
	}
}

func TestRemoveChannel_Scenario(t *testing.T) {
	g := scenarioGrid()
	RemoveChannel(g, Red)
	want := gridOf([][]bitmap.Pixel{
		{{R: 0, G: 20, B: 30}, {R: 0, G: 50, B: 60}},
		{{R: 0, G: 80, B: 90}, {R: 0, G: 110, B: 120}},
	})
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("remove red (-want +got):\n%s", diff)
	}
}

func TestQuantize_Scenario(t *testing.T) {
	g := scenarioGrid()
	Quantize(g, 1)
	if diff := cmp.Diff(scenarioGrid(), g); diff != "" {
		t.Errorf("even values changed (-want +got):\n%s", diff)
	}

	odd := gridOf([][]bitmap.Pixel{{{R: 11, G: 21, B: 31}}})
	Quantize(odd, 1)
	if got, want := odd.At(0, 0), (bitmap.Pixel{R: 10, G: 20, B: 30}); got != want {
		t.Errorf("odd values: got %+v, want %+v", got, want)
	}
}

func TestQuantize_Level7(t *testing.T) {
	g := gridOf([][]bitmap.Pixel{{{R: 255, G: 127, B: 128}}})
	Quantize(g, 7)
	if got, want := g.At(0, 0), (bitmap.Pixel{R: 128, G: 0, B: 128}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestInvert_Involution(t *testing.T) {
	g := variedGrid()
	Invert(g)
	if cmp.Equal(variedGrid(), g) {
		t.Fatal("invert left grid unchanged")
	}
	Invert(g)
	if diff := cmp.Diff(variedGrid(), g); diff != "" {
		t.Errorf("double invert (-want +got):\n%s", diff)
	}
}

func TestFlipHorizontal_Involution(t *testing.T) {
	for _, w := range []int{1, 2, 3, 16} {
		g := bitmap.NewGrid(w, 3)
		for i := range g.Pix {
			g.Pix[i] = bitmap.Pixel{R: uint8(i), G: uint8(i * 2), B: uint8(i * 3)}
		}
		orig := g.Clone()

		FlipHorizontal(g)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < w; x++ {
				if g.At(x, y) != orig.At(w-1-x, y) {
					t.Fatalf("width %d: (%d,%d) not mirrored", w, x, y)
				}
			}
		}

		FlipHorizontal(g)
		if diff := cmp.Diff(orig, g); diff != "" {
			t.Errorf("width %d: double flip (-want +got):\n%s", w, diff)
		}
	}
}

func TestQuantize_Properties(t *testing.T) {
	for level := Level(0); level <= MaxLevel; level++ {
		once := variedGrid()
		Quantize(once, level)

		twice := once.Clone()
		Quantize(twice, level)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("level %d not idempotent (-once +twice):\n%s", level, diff)
		}

		orig := variedGrid()
		for i, p := range once.Pix {
			o := orig.Pix[i]
			for _, pair := range [][2]uint8{{o.R, p.R}, {o.G, p.G}, {o.B, p.B}} {
				v, q := pair[0], pair[1]
				if q > v {
					t.Fatalf("level %d: %d quantized up to %d", level, v, q)
				}
				if bits.OnesCount8(q) > bits.OnesCount8(v) {
					t.Fatalf("level %d: %08b gained bits: %08b", level, v, q)
				}
				if q&(1<<level-1) != 0 {
					t.Fatalf("level %d: low bits of %08b not cleared", level, q)
				}
				if q>>level != v>>level {
					t.Fatalf("level %d: high bits of %08b changed: %08b", level, v, q)
				}
			}
		}
	}

	g := variedGrid()
	Quantize(g, 0)
	if diff := cmp.Diff(variedGrid(), g); diff != "" {
		t.Errorf("level 0 is not identity (-want +got):\n%s", diff)
	}
}

func TestRemoveChannel_OnlyTarget(t *testing.T) {
	for _, ch := range Channels {
		g := variedGrid()
		RemoveChannel(g, ch)
		orig := variedGrid()
		for i, p := range g.Pix {
			o := orig.Pix[i]
			want := o
			switch ch {
			case Red:
				want.R = 0
			case Green:
				want.G = 0
			case Blue:
				want.B = 0
			}
			if p != want {
				t.Fatalf("%s pixel %d: got %+v, want %+v", ch, i, p, want)
			}
		}
	}
}

func TestTransforms_KeepDimensions(t *testing.T) {
	g := bitmap.NewGrid(5, 3)
	Invert(g)
	Quantize(g, 3)
	RemoveChannel(g, Blue)
	FlipHorizontal(g)
	if g.Width != 5 || g.Height != 3 || len(g.Pix) != 15 {
		t.Errorf("dimensions changed: %dx%d, %d pixels", g.Width, g.Height, len(g.Pix))
	}
}

func TestNewLevel(t *testing.T) {
	for n := 0; n <= MaxLevel; n++ {
		l, err := NewLevel(n)
		if err != nil || int(l) != n {
			t.Errorf("NewLevel(%d) = %d, %v", n, l, err)
		}
	}
	for _, n := range []int{-1, 8, 100} {
		if _, err := NewLevel(n); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NewLevel(%d): got %v, want ErrInvalidParameter", n, err)
		}
	}
	if _, err := ParseLevel("x"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseLevel(x): got %v", err)
	}
	if l, err := ParseLevel(" 4 "); err != nil || l != 4 {
		t.Errorf("ParseLevel(4) = %d, %v", l, err)
	}
}

func TestParseChannel(t *testing.T) {
	cases := map[string]Channel{
		"red": Red, "Green": Green, "BLUE": Blue,
		"r": Red, "g": Green, "b": Blue,
		"1": Red, "2": Green, "3": Blue,
	}
	for in, want := range cases {
		got, err := ParseChannel(in)
		if err != nil || got != want {
			t.Errorf("ParseChannel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "0", "4", "alpha", "-1"} {
		if _, err := ParseChannel(in); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseChannel(%q): got %v, want ErrInvalidParameter", in, err)
		}
	}
}
