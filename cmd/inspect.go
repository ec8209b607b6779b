package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Print the header fields of <name>.bmp",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := bitmap.Path(baseArg(args[0]))
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	h, err := bitmap.ReadHeader(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	printHeader(path, info.Size(), h)
	return nil
}

func printHeader(path string, diskSize int64, h bitmap.Header) {
	fmt.Println()
	fmt.Printf("  File:         %s\n", path)
	fmt.Printf("  Magic:        %q\n", h.Magic[:])
	fmt.Printf("  File size:    %d bytes (header), %d bytes (disk)\n", h.FileSize, diskSize)
	fmt.Printf("  Data offset:  %d\n", h.DataOffset)
	fmt.Printf("  Info size:    %d\n", h.InfoSize)
	fmt.Printf("  Width:        %d px\n", h.Width)
	fmt.Printf("  Height:       %d px\n", h.Height)
	fmt.Printf("  Planes:       %d\n", h.Planes)
	fmt.Printf("  Bit count:    %d\n", h.BitCount)
	fmt.Printf("  Compression:  %d\n", h.Compression)
	fmt.Printf("  Image size:   %d\n", h.ImageSize)

	var warnings []string
	if h.Width > 0 && h.Height > 0 {
		want := int64(bitmap.ExpectedFileSize(int(h.Width), int(h.Height)))
		if diskSize != want {
			warnings = append(warnings, fmt.Sprintf("%d bytes on disk, %d expected for %dx%d without row padding",
				diskSize, want, h.Width, h.Height))
		}
		if int64(h.FileSize) != diskSize {
			warnings = append(warnings, "header file size differs from size on disk; it is copied to outputs as-is")
		}
		if h.Width*3%4 != 0 {
			warnings = append(warnings, "rows are not 4-byte aligned; other viewers expect padding this tool does not write")
		}
	} else {
		warnings = append(warnings, "non-positive dimensions; the file cannot be processed")
	}
	if h.BitCount != 24 || h.Compression != 0 {
		warnings = append(warnings, "not an uncompressed 24-bit bitmap; pixel data will be misread")
	}

	if len(warnings) > 0 {
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("  ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
