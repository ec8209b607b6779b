package preview

import (
	"strings"
	"testing"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

func TestRender_FullSize(t *testing.T) {
	g := bitmap.NewGrid(2, 2)
	copy(g.Pix, []bitmap.Pixel{
		{R: 10, G: 20, B: 30}, {R: 40, G: 50, B: 60},
		{R: 70, G: 80, B: 90}, {R: 100, G: 110, B: 120},
	})

	var sb strings.Builder
	if err := Render(&sb, g, 0); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	want := ColoredBlock(block, 10, 20, 30) + ColoredBlock(block, 40, 50, 60)
	if lines[0] != want {
		t.Errorf("row 0: got %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "\033[48;2;100;110;120m") {
		t.Errorf("row 1 missing last pixel: %q", lines[1])
	}
}

func TestRender_Downsamples(t *testing.T) {
	g := bitmap.NewGrid(8, 4)
	var sb strings.Builder
	if err := Render(&sb, g, 4); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		if n := strings.Count(l, "\033[48;2;"); n != 4 {
			t.Errorf("line %d: %d blocks, want 4", i, n)
		}
	}
}

func TestRender_NarrowImageKeepsOneRow(t *testing.T) {
	g := bitmap.NewGrid(100, 1)
	var sb strings.Builder
	if err := Render(&sb, g, 10); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), "\n"); n != 1 {
		t.Errorf("got %d lines, want 1", n)
	}
}
