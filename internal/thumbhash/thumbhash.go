// Package thumbhash computes ThumbHash placeholders for decoded bitmaps.
//
// 24-bit bitmaps carry no alpha, so only the opaque form of the hash is
// produced: a 5-byte header followed by luminance and chroma AC nibbles.
package thumbhash

import (
	"encoding/binary"
	"math"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

// maxDim bounds the thumbnail the DCT runs over.
const maxDim = 100

// Encode returns the ThumbHash of g, or nil for an empty grid.
// Identical grids always give identical bytes.
func Encode(g *bitmap.Grid) []byte {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	w, h := thumbDims(g.Width, g.Height)
	lpq := downscale(g, w, h)
	return assemble(w, h, lpq)
}

func thumbDims(srcW, srcH int) (int, int) {
	if srcW <= maxDim && srcH <= maxDim {
		return srcW, srcH
	}
	if srcW >= srcH {
		return maxDim, max1(srcH * maxDim / srcW)
	}
	return max1(srcW * maxDim / srcH), maxDim
}

// downscale box-averages g into a w x h thumbnail and converts each pixel
// to the L, P, Q planes ThumbHash works in. Row 0 is the top row.
func downscale(g *bitmap.Grid, w, h int) [3][]float32 {
	var lpq [3][]float32
	for i := range lpq {
		lpq[i] = make([]float32, w*h)
	}

	for dy := 0; dy < h; dy++ {
		sy0, sy1 := srcSpan(dy, h, g.Height)
		for dx := 0; dx < w; dx++ {
			sx0, sx1 := srcSpan(dx, w, g.Width)

			var rS, gS, bS uint32
			for sy := sy0; sy < sy1; sy++ {
				for _, p := range g.Row(sy)[sx0:sx1] {
					rS += uint32(p.R)
					gS += uint32(p.G)
					bS += uint32(p.B)
				}
			}

			inv := 1 / (float32((sy1-sy0)*(sx1-sx0)) * 255)
			r, gr, b := float32(rS)*inv, float32(gS)*inv, float32(bS)*inv

			i := dy*w + dx
			lpq[0][i] = (r + gr + b) / 3
			lpq[1][i] = (r+gr)/2 - b
			lpq[2][i] = r - gr
		}
	}
	return lpq
}

// assemble packs the DCT of the L, P and Q planes.
//
// Bytes 0-2 hold 24 bits, little-endian:
//
//	bits  0-5   lDC    round(lDC * 63)
//	bits  6-11  pDC    round(pDC * 31.5 + 31.5)
//	bits 12-17  qDC    round(qDC * 31.5 + 31.5)
//	bits 18-22  lScale round(lScale * 31)
//	bit  23     hasAlpha, always 0 here
//
// Bytes 3-4 hold 16 bits:
//
//	bits  0-2   ly if landscape, else lx
//	bits  3-8   pScale round(pScale * 63)
//	bits  9-14  qScale round(qScale * 63)
//	bit  15     isLandscape
//
// The AC coefficients follow as 4-bit nibbles, low nibble first.
func assemble(w, h int, lpq [3][]float32) []byte {
	maxWH := float32(max(w, h))
	lx := max1(roundF(7 * float32(w) / maxWH))
	ly := max1(roundF(7 * float32(h) / maxWH))
	px := max1(roundF(3 * float32(w) / maxWH))
	py := max1(roundF(3 * float32(h) / maxWH))

	cosX := cosTable(max(lx, px), w)
	cosY := cosTable(max(ly, py), h)

	lDC, lAC, lScale := encodeChannel(lpq[0], w, h, lx, ly, cosX, cosY)
	pDC, pAC, pScale := encodeChannel(lpq[1], w, h, px, py, cosX, cosY)
	qDC, qAC, qScale := encodeChannel(lpq[2], w, h, px, py, cosX, cosY)

	isLandscape := w > h
	header24 := uint32(roundF(lDC*63)) |
		uint32(roundF(pDC*31.5+31.5))<<6 |
		uint32(roundF(qDC*31.5+31.5))<<12 |
		uint32(roundF(lScale*31))<<18
	dim := lx
	if isLandscape {
		dim = ly
	}
	header16 := uint16(dim) |
		uint16(roundF(pScale*63))<<3 |
		uint16(roundF(qScale*63))<<9
	if isLandscape {
		header16 |= 1 << 15
	}

	nAC := len(lAC) + len(pAC) + len(qAC)
	hash := make([]byte, 5+(nAC+1)/2)
	hash[0] = byte(header24)
	hash[1] = byte(header24 >> 8)
	hash[2] = byte(header24 >> 16)
	binary.LittleEndian.PutUint16(hash[3:], header16)

	nib := 0
	for _, ac := range [][]float32{lAC, pAC, qAC} {
		for _, c := range ac {
			hash[5+nib/2] |= byte(roundF(c*15)) << ((nib & 1) * 4)
			nib++
		}
	}
	return hash
}

// cosTable returns n rows of size samples: row c holds cos(pi*c*(i+0.5)/size).
func cosTable(n, size int) []float32 {
	t := make([]float32, n*size)
	for c := 0; c < n; c++ {
		s := math.Pi * float64(c) / float64(size)
		for i := 0; i < size; i++ {
			t[c*size+i] = float32(math.Cos(s * (float64(i) + 0.5)))
		}
	}
	return t
}

// encodeChannel returns the DC term, the AC terms mapped into [0, 1] and
// the scale that was divided out. Only the lower-left triangle of the
// nx by ny coefficient block is kept.
func encodeChannel(plane []float32, w, h, nx, ny int, cosX, cosY []float32) (dc float32, ac []float32, scale float32) {
	for cy := 0; cy < ny; cy++ {
		for cx := 0; cx*ny < nx*(ny-cy); cx++ {
			var f float32
			for y := 0; y < h; y++ {
				fy := cosY[cy*h+y]
				for x, v := range plane[y*w : (y+1)*w] {
					f += v * cosX[cx*w+x] * fy
				}
			}
			f /= float32(w * h)

			if cx == 0 && cy == 0 {
				dc = f
				continue
			}
			ac = append(ac, f)
			scale = max(scale, float32(math.Abs(float64(f))))
		}
	}

	if scale > 0 {
		for i := range ac {
			ac[i] = 0.5 + 0.5/scale*ac[i]
		}
	}
	return dc, ac, scale
}

func srcSpan(d, dstSize, srcSize int) (int, int) {
	s0 := d * srcSize / dstSize
	s1 := (d + 1) * srcSize / dstSize
	if s1 <= s0 {
		s1 = s0 + 1
	}
	if s1 > srcSize {
		s1 = srcSize
	}
	return s0, s1
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func roundF(v float32) int {
	return int(math.Round(float64(v)))
}
