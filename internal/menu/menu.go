// Package menu implements the interactive front end: a numbered menu that
// loads the named image, prompts for any parameter, then runs one operation.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/AnyUserName/bmpops/internal/bitmap"
	"github.com/AnyUserName/bmpops/internal/ops"
	"github.com/AnyUserName/bmpops/internal/transform"
)

// Command is a menu choice.
type Command int

const (
	Exit           Command = -1
	SaveCopy       Command = 1
	RemoveChannel  Command = 2
	InvertColours  Command = 3
	Quantize       Command = 4
	FlipHorizontal Command = 5
)

var entries = []struct {
	cmd   Command
	label string
}{
	{SaveCopy, "Save Copy of Image"},
	{RemoveChannel, "Remove Image Channel"},
	{InvertColours, "Invert Image Colours"},
	{Quantize, "Quantize Image"},
	{FlipHorizontal, "Flip Image Horizontally"},
}

// Store loads source images and writes operation results.
type Store interface {
	Load(base string) (*bitmap.Image, error)
	Save(img *bitmap.Image, base string, op ops.Operation) (ops.Result, error)
}

// files reads and writes bitmaps next to the source.
type files struct{}

func (files) Load(base string) (*bitmap.Image, error) { return bitmap.Load(base) }

func (files) Save(img *bitmap.Image, base string, op ops.Operation) (ops.Result, error) {
	return ops.Process(img, base, base, op)
}

// Menu reads whitespace-separated answers from in and writes prompts and
// results to out.
type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	store Store
}

// New creates a menu. A nil store reads and writes .bmp files on disk.
func New(in io.Reader, out io.Writer, store Store) *Menu {
	if store == nil {
		store = files{}
	}
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Menu{in: sc, out: out, store: store}
}

// Loop shows the menu until the user enters -1 or input ends. The image
// is loaded before any parameter is asked for; a failed load or save is
// reported and the menu is shown again.
func (m *Menu) Loop() error {
	for {
		m.printMenu()
		tok, ok := m.next()
		if !ok {
			return m.in.Err()
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			fmt.Fprintf(m.out, "%q is not a menu option\n", tok)
			continue
		}

		cmd := Command(n)
		if cmd == Exit {
			return nil
		}
		if !known(cmd) {
			continue
		}
		if !m.run(cmd) {
			return m.in.Err()
		}
	}
}

func known(cmd Command) bool {
	for _, e := range entries {
		if e.cmd == cmd {
			return true
		}
	}
	return false
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "MENU")
	for _, e := range entries {
		fmt.Fprintf(m.out, "%d . %s\n", e.cmd, e.label)
	}
	fmt.Fprintf(m.out, "%d . Exit\n", Exit)
}

// run loads an image, asks for the parameter cmd needs and saves the
// result. It returns false when input ran out.
func (m *Menu) run(cmd Command) bool {
	fmt.Fprint(m.out, "Enter the file name of the image to load: ")
	base, ok := m.next()
	if !ok {
		return false
	}
	img, err := m.store.Load(base)
	if err != nil {
		fmt.Fprintf(m.out, "\nOperation failed: %v\n\n", err)
		return true
	}
	fmt.Fprint(m.out, "\nImage Loaded\n\n")

	var op ops.Operation
	switch cmd {
	case SaveCopy:
		op = ops.CopyOp()
	case InvertColours:
		op = ops.InvertOp()
	case FlipHorizontal:
		op = ops.FlipHorizontalOp()
	case RemoveChannel:
		ch, ok := m.askChannel()
		if !ok {
			return false
		}
		op = ops.RemoveChannelOp(ch)
	case Quantize:
		level, ok := m.askLevel()
		if !ok {
			return false
		}
		op = ops.QuantizeOp(level)
	}

	res, err := m.store.Save(img, base, op)
	if err != nil {
		fmt.Fprintf(m.out, "Operation failed: %v\n\n", err)
		return true
	}
	fmt.Fprintln(m.out, doneMessage(op))
	fmt.Fprintf(m.out, "Image Saved: %s\n\n", res.Output)
	return true
}

func (m *Menu) askChannel() (transform.Channel, bool) {
	for {
		fmt.Fprintln(m.out, "Enter the channel to remove:")
		for i, c := range transform.Channels {
			fmt.Fprintf(m.out, "%d.%s\n", i+1, capitalize(c.String()))
		}
		tok, ok := m.next()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(tok)
		if err == nil {
			if ch, err := transform.ChannelFromChoice(n); err == nil {
				return ch, true
			}
		}
		fmt.Fprintln(m.out, "Invalid channel, choose 1, 2 or 3")
	}
}

func (m *Menu) askLevel() (transform.Level, bool) {
	for {
		fmt.Fprintf(m.out, "Enter the quantization level (0 to %d): ", transform.MaxLevel)
		tok, ok := m.next()
		if !ok {
			return 0, false
		}
		if level, err := transform.ParseLevel(tok); err == nil {
			return level, true
		}
		fmt.Fprintf(m.out, "\nInvalid level, choose 0 to %d\n", transform.MaxLevel)
	}
}

func doneMessage(op ops.Operation) string {
	switch op.Kind {
	case ops.KindCopy:
		return "Image Copied"
	case ops.KindRemoveChannel:
		return capitalize(op.Channel.String()) + " channel removed"
	case ops.KindInvert:
		return "Image Inverted"
	case ops.KindQuantize:
		return "Image quantized by a level of " + op.Level.String()
	case ops.KindFlipHorizontal:
		return "Image Flipped Horizontally"
	}
	return "Done"
}

func (m *Menu) next() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
