package pipeline

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

// Source represents a discovered bitmap file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Key is RelPath without the extension, using forward slashes.
	Key string
	// Base is AbsPath without the extension, as bitmap.Load expects.
	Base string
	// Size is the file size in bytes.
	Size int64
}

// ScanBitmaps walks the input directory and returns every .bmp file,
// skipping hidden directories and any directory in skip. The extension
// match is exact because bitmap.Load appends ".bmp" verbatim.
func ScanBitmaps(inputDir string, skip ...string) ([]Source, error) {
	var sources []Source
	skipDirs := make([]string, len(skip))
	for i, dir := range skip {
		skipDirs[i] = filepath.Clean(dir)
	}

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == inputDir {
				return nil
			}
			if strings.HasPrefix(info.Name(), ".") || slices.Contains(skipDirs, path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || filepath.Ext(path) != bitmap.Ext {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     filepath.ToSlash(strings.TrimSuffix(relPath, bitmap.Ext)),
			Base:    strings.TrimSuffix(path, bitmap.Ext),
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
