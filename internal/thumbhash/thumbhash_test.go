package thumbhash

import (
	"bytes"
	"testing"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

func gradient(w, h int) *bitmap.Grid {
	g := bitmap.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, bitmap.Pixel{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128})
		}
	}
	return g
}

func solid(w, h int, p bitmap.Pixel) *bitmap.Grid {
	g := bitmap.NewGrid(w, h)
	for i := range g.Pix {
		g.Pix[i] = p
	}
	return g
}

func TestEncode_Deterministic(t *testing.T) {
	h1 := Encode(gradient(32, 32))
	h2 := Encode(gradient(32, 32))
	if len(h1) == 0 {
		t.Fatal("empty hash")
	}
	if !bytes.Equal(h1, h2) {
		t.Fatalf("hashes differ:\n%x\n%x", h1, h2)
	}
}

func TestEncode_SquareLength(t *testing.T) {
	// 27 luminance + 5 + 5 chroma coefficients, two per byte.
	if n := len(Encode(gradient(32, 32))); n != 5+19 {
		t.Errorf("hash length: got %d, want 24", n)
	}
}

func TestEncode_Landscape(t *testing.T) {
	hash := Encode(gradient(64, 32))
	header16 := uint16(hash[3]) | uint16(hash[4])<<8
	if header16>>15 != 1 {
		t.Error("landscape flag not set")
	}
	if ly := header16 & 7; ly != 4 {
		t.Errorf("ly: got %d, want 4", ly)
	}

	portrait := Encode(gradient(32, 64))
	if portrait[4]>>7 != 0 {
		t.Error("landscape flag set for portrait grid")
	}
}

func TestEncode_SolidGray(t *testing.T) {
	hash := Encode(solid(10, 10, bitmap.Pixel{R: 128, G: 128, B: 128}))
	header24 := uint32(hash[0]) | uint32(hash[1])<<8 | uint32(hash[2])<<16

	if lDC := header24 & 63; lDC != 32 {
		t.Errorf("lDC: got %d, want 32", lDC)
	}
	if pDC := header24 >> 6 & 63; pDC != 32 {
		t.Errorf("pDC: got %d, want 32", pDC)
	}
	if qDC := header24 >> 12 & 63; qDC != 32 {
		t.Errorf("qDC: got %d, want 32", qDC)
	}
	if header24>>23&1 != 0 {
		t.Error("alpha flag set")
	}
}

func TestEncode_Distinguishes(t *testing.T) {
	g := gradient(40, 20)
	flipped := g.Clone()
	for y := 0; y < flipped.Height; y++ {
		row := flipped.Row(y)
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	if bytes.Equal(Encode(g), Encode(flipped)) {
		t.Error("mirrored grid produced the same hash")
	}
}

func TestEncode_Downscales(t *testing.T) {
	if w, h := thumbDims(300, 150); w != 100 || h != 50 {
		t.Errorf("thumbDims(300, 150) = %d, %d", w, h)
	}
	if w, h := thumbDims(10, 1000); w != 1 || h != 100 {
		t.Errorf("thumbDims(10, 1000) = %d, %d", w, h)
	}
	if hash := Encode(gradient(300, 150)); len(hash) == 0 {
		t.Error("empty hash for large grid")
	}
}

func TestEncode_Empty(t *testing.T) {
	if Encode(nil) != nil {
		t.Error("nil grid should give nil hash")
	}
	if Encode(&bitmap.Grid{}) != nil {
		t.Error("zero grid should give nil hash")
	}
}
