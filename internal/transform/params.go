package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidParameter reports a transform parameter outside its domain.
// Parameters are checked when they are constructed, so the transforms
// themselves never see an invalid value.
var ErrInvalidParameter = errors.New("transform: invalid parameter")

// MaxLevel is the highest quantization level.
const MaxLevel = 7

// Level is a quantization level: the number of low-order bits cleared
// from every channel.
type Level uint8

// NewLevel validates n and returns it as a Level.
func NewLevel(n int) (Level, error) {
	if n < 0 || n > MaxLevel {
		return 0, fmt.Errorf("%w: quantization level %d not in [0,%d]", ErrInvalidParameter, n, MaxLevel)
	}
	return Level(n), nil
}

// ParseLevel parses a decimal quantization level.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: quantization level %q is not a number", ErrInvalidParameter, s)
	}
	return NewLevel(n)
}

func (l Level) String() string { return strconv.Itoa(int(l)) }

// Channel selects one color component of a pixel.
type Channel uint8

const (
	Red Channel = iota + 1
	Green
	Blue
)

// Channels lists every channel in menu order.
var Channels = []Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "channel(" + strconv.Itoa(int(c)) + ")"
}

// ChannelFromChoice maps the menu choices 1, 2 and 3 to red, green and blue.
func ChannelFromChoice(n int) (Channel, error) {
	if n < int(Red) || n > int(Blue) {
		return 0, fmt.Errorf("%w: channel choice %d not in [1,3]", ErrInvalidParameter, n)
	}
	return Channel(n), nil
}

// ParseChannel accepts a channel name or its menu number.
func ParseChannel(s string) (Channel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Channels {
		if s == c.String() || s == c.String()[:1] {
			return c, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ChannelFromChoice(n)
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidParameter, s)
}
