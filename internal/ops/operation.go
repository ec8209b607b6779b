package ops

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/AnyUserName/bmpops/internal/bitmap"
	"github.com/AnyUserName/bmpops/internal/transform"
)

// Kind identifies one of the supported operations.
type Kind int

const (
	KindCopy Kind = iota + 1
	KindRemoveChannel
	KindInvert
	KindQuantize
	KindFlipHorizontal
)

// Operation is a fully validated request: a kind plus the parameter it
// needs, if any. Build one with the constructors or Parse.
type Operation struct {
	Kind    Kind
	Channel transform.Channel // KindRemoveChannel only
	Level   transform.Level   // KindQuantize only
}

func CopyOp() Operation           { return Operation{Kind: KindCopy} }
func InvertOp() Operation         { return Operation{Kind: KindInvert} }
func FlipHorizontalOp() Operation { return Operation{Kind: KindFlipHorizontal} }

func RemoveChannelOp(ch transform.Channel) Operation {
	return Operation{Kind: KindRemoveChannel, Channel: ch}
}

func QuantizeOp(level transform.Level) Operation {
	return Operation{Kind: KindQuantize, Level: level}
}

// Suffix is appended to the source base name to form the output name.
func (o Operation) Suffix() string {
	switch o.Kind {
	case KindCopy:
		return "_copy"
	case KindRemoveChannel:
		return "_" + o.Channel.String() + "_channel_removed"
	case KindInvert:
		return "_inverted"
	case KindQuantize:
		return "_quantize_" + o.Level.String()
	case KindFlipHorizontal:
		return "_flipped_horizontally"
	}
	return ""
}

// Apply runs the operation's transform on g. Copy leaves g untouched.
func (o Operation) Apply(g *bitmap.Grid) {
	switch o.Kind {
	case KindRemoveChannel:
		transform.RemoveChannel(g, o.Channel)
	case KindInvert:
		transform.Invert(g)
	case KindQuantize:
		transform.Quantize(g, o.Level)
	case KindFlipHorizontal:
		transform.FlipHorizontal(g)
	}
}

// String returns the name Parse accepts for this operation.
func (o Operation) String() string {
	switch o.Kind {
	case KindCopy:
		return "copy"
	case KindRemoveChannel:
		return "remove-" + o.Channel.String()
	case KindInvert:
		return "invert"
	case KindQuantize:
		return "quantize-" + o.Level.String()
	case KindFlipHorizontal:
		return "flip"
	}
	return fmt.Sprintf("op(%d)", int(o.Kind))
}

// Parse reads an operation name: copy, invert, flip, remove-<channel>
// or quantize-<level>.
func Parse(name string) (Operation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "copy":
		return CopyOp(), nil
	case "invert":
		return InvertOp(), nil
	case "flip", "flip-horizontal":
		return FlipHorizontalOp(), nil
	}

	if ch, ok := strings.CutPrefix(name, "remove-"); ok {
		c, err := transform.ParseChannel(ch)
		if err != nil {
			return Operation{}, err
		}
		return RemoveChannelOp(c), nil
	}
	if lv, ok := strings.CutPrefix(name, "quantize-"); ok {
		l, err := transform.ParseLevel(lv)
		if err != nil {
			return Operation{}, err
		}
		return QuantizeOp(l), nil
	}
	return Operation{}, fmt.Errorf("%w: unknown operation %q", transform.ErrInvalidParameter, name)
}

// ParseList parses a list of operation names, dropping duplicates while
// keeping first-seen order.
func ParseList(names []string) ([]Operation, error) {
	var out []Operation
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		op, err := Parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return lo.Uniq(out), nil
}
