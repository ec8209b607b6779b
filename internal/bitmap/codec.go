// Package bitmap reads and writes uncompressed 24-bit bitmap files in the
// fixed layout used by bmpops: a 54-byte header followed by rows of
// blue-green-red pixels, top row first, with no row padding.
package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Ext is appended to every base path before it is opened or created.
const Ext = ".bmp"

// MaxPixels bounds Width*Height accepted from a header so a corrupt file
// cannot force an enormous allocation.
const MaxPixels = 1 << 26

var (
	ErrNotFound   = errors.New("bitmap: file not found")
	ErrOpen       = errors.New("bitmap: cannot open file")
	ErrWrite      = errors.New("bitmap: cannot write file")
	ErrTruncated  = errors.New("bitmap: truncated input")
	ErrDimensions = errors.New("bitmap: invalid dimensions")
)

// Meta carries header values that pass through unchanged from a decoded
// file to every file derived from it.
type Meta struct {
	// FileSize is the raw file-size field of the source header.
	FileSize uint32
}

// Image is a decoded bitmap.
type Image struct {
	Meta Meta
	Grid *Grid
}

// Path returns the file name for a base path.
func Path(base string) string {
	return base + Ext
}

// Load opens base+".bmp" and decodes it.
func Load(base string) (*Image, error) {
	path := Path(base)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Decode reads a header and Height rows of Width pixels from r.
// Nothing is returned unless every byte of pixel data was read.
func Decode(r io.Reader) (*Image, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	width, height := int(h.Width), int(h.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, h.Width, h.Height)
	}
	if int64(width)*int64(height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDimensions, width, height, MaxPixels)
	}

	g := NewGrid(width, height)
	row := make([]byte, width*bytesPerPixel)
	for y := range height {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, readError(fmt.Sprintf("row %d of %d", y, height), err)
		}
		px := g.Row(y)
		for x := range px {
			i := x * bytesPerPixel
			px[x] = Pixel{B: row[i], G: row[i+1], R: row[i+2]}
		}
	}

	return &Image{Meta: Meta{FileSize: h.FileSize}, Grid: g}, nil
}

// Encode writes img to w in the same layout Decode reads.
func Encode(w io.Writer, img *Image) error {
	g := img.Grid
	hdr := encodeHeader(img.Meta, g.Width, g.Height)
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]byte, g.Width*bytesPerPixel)
	for y := range g.Height {
		for x, p := range g.Row(y) {
			i := x * bytesPerPixel
			row[i], row[i+1], row[i+2] = p.B, p.G, p.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	return nil
}

// Save encodes img into base+".bmp", replacing any existing file.
func Save(img *Image, base string) (err error) {
	path := Path(base)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrWrite, path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, img); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", ErrWrite, path, err)
	}
	return nil
}

func readError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncated, what)
	}
	return fmt.Errorf("read %s: %w", what, err)
}
