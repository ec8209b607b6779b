// Package ops exposes the operations a front end can request: each one
// loads a bitmap, applies a transform and saves the result under a name
// derived from the source.
package ops

import (
	"fmt"

	"github.com/AnyUserName/bmpops/internal/bitmap"
	"github.com/AnyUserName/bmpops/internal/transform"
)

// Result describes a completed operation.
type Result struct {
	Op       Operation
	Source   string // file that was read
	Output   string // file that was written
	Width    int
	Height   int
	FileSize uint32 // header file-size field carried to the output
}

// Run loads base, applies op and writes base+op.Suffix().
func Run(base string, op Operation) (Result, error) {
	return Transfer(base, base, op)
}

// Transfer loads srcBase, applies op and writes dstBase+op.Suffix().
// The grid is dropped once the write has finished or failed.
func Transfer(srcBase, dstBase string, op Operation) (Result, error) {
	img, err := bitmap.Load(srcBase)
	if err != nil {
		return Result{Op: op, Source: bitmap.Path(srcBase)}, fmt.Errorf("%s: %w", op, err)
	}
	return Process(img, srcBase, dstBase, op)
}

// Process applies op to an image already loaded from srcBase and writes
// it to dstBase+op.Suffix(). img is modified in place.
func Process(img *bitmap.Image, srcBase, dstBase string, op Operation) (Result, error) {
	res := Result{Op: op, Source: bitmap.Path(srcBase)}

	op.Apply(img.Grid)

	outBase := dstBase + op.Suffix()
	if err := bitmap.Save(img, outBase); err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}

	res.Output = bitmap.Path(outBase)
	res.Width = img.Grid.Width
	res.Height = img.Grid.Height
	res.FileSize = img.Meta.FileSize
	return res, nil
}

// Copy writes an unchanged copy to base_copy.
func Copy(base string) (Result, error) {
	return Run(base, CopyOp())
}

// RemoveChannel zeroes ch and writes base_<ch>_channel_removed.
func RemoveChannel(base string, ch transform.Channel) (Result, error) {
	return Run(base, RemoveChannelOp(ch))
}

// Invert writes the inverted image to base_inverted.
func Invert(base string) (Result, error) {
	return Run(base, InvertOp())
}

// Quantize clears level low bits per channel and writes base_quantize_<level>.
func Quantize(base string, level transform.Level) (Result, error) {
	return Run(base, QuantizeOp(level))
}

// FlipHorizontal mirrors the image and writes base_flipped_horizontally.
func FlipHorizontal(base string) (Result, error) {
	return Run(base, FlipHorizontalOp())
}
