package bitmap

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed length of the header preceding pixel data.
const HeaderSize = 54

const (
	infoHeaderSize  = 40
	bitsPerPixel    = 24
	planes          = 1
	compressionNone = 0
	bytesPerPixel   = 3
)

// Byte offsets of the header fields.
const (
	offMagic       = 0
	offFileSize    = 2
	offDataOffset  = 10
	offInfoSize    = 14
	offWidth       = 18
	offHeight      = 22
	offPlanes      = 26
	offBitCount    = 28
	offCompression = 30
	offImageSize   = 34
)

var magic = [2]byte{'B', 'M'}

// Header is the full set of fields found in the 54-byte header.
// Decoding only relies on FileSize, Width and Height; the rest is
// reported by ReadHeader for inspection.
type Header struct {
	Magic       [2]byte
	FileSize    uint32
	DataOffset  uint32
	InfoSize    uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
	ImageSize   uint32
}

// ReadHeader reads and parses the header without touching pixel data.
func ReadHeader(r io.Reader) (Header, error) {
	var b [HeaderSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Header{}, readError("header", err)
	}
	return parseHeader(b[:]), nil
}

func parseHeader(b []byte) Header {
	le := binary.LittleEndian
	return Header{
		Magic:       [2]byte{b[offMagic], b[offMagic+1]},
		FileSize:    le.Uint32(b[offFileSize:]),
		DataOffset:  le.Uint32(b[offDataOffset:]),
		InfoSize:    le.Uint32(b[offInfoSize:]),
		Width:       int32(le.Uint32(b[offWidth:])),
		Height:      int32(le.Uint32(b[offHeight:])),
		Planes:      le.Uint16(b[offPlanes:]),
		BitCount:    le.Uint16(b[offBitCount:]),
		Compression: le.Uint32(b[offCompression:]),
		ImageSize:   le.Uint32(b[offImageSize:]),
	}
}

// encodeHeader builds the header written in front of every output file.
// The file-size field is copied from the source, not recomputed. The
// image-size field is that value minus the info header size, wrapping
// below zero.
func encodeHeader(meta Meta, width, height int) [HeaderSize]byte {
	var b [HeaderSize]byte
	le := binary.LittleEndian

	b[offMagic] = magic[0]
	b[offMagic+1] = magic[1]
	le.PutUint32(b[offFileSize:], meta.FileSize)
	le.PutUint32(b[offDataOffset:], HeaderSize)
	le.PutUint32(b[offInfoSize:], infoHeaderSize)
	le.PutUint32(b[offWidth:], uint32(int32(width)))
	le.PutUint32(b[offHeight:], uint32(int32(height)))
	le.PutUint16(b[offPlanes:], planes)
	le.PutUint16(b[offBitCount:], bitsPerPixel)
	le.PutUint32(b[offCompression:], compressionNone)
	le.PutUint32(b[offImageSize:], meta.FileSize-infoHeaderSize)
	return b
}

// ExpectedFileSize is the size in bytes of a file holding a grid of the
// given dimensions in this layout.
func ExpectedFileSize(width, height int) uint32 {
	return uint32(HeaderSize + width*height*bytesPerPixel)
}

func (h Header) String() string {
	return fmt.Sprintf("%q %dx%d %dbpp size=%d", h.Magic[:], h.Width, h.Height, h.BitCount, h.FileSize)
}
