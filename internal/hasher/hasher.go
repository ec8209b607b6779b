// Package hasher fingerprints output bitmaps so batch manifests can be
// verified later.
package hasher

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// HexLen is the number of hex digits recorded in manifests (the full
// 64-bit digest).
const HexLen = 16

// File hashes the file at path with xxHash64 and returns the digest as
// HexLen hex digits together with the file's size.
func File(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("hash %s: %w", path, err)
	}
	defer f.Close()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return fmt.Sprintf("%0*x", HexLen, h.Sum64()), n, nil
}
