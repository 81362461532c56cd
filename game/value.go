package game

import (
	"fmt"
	"strconv"

	"hexix/meta"
)

// Value is the occupancy count held by a hex. The zero Value is Empty, which
// is distinct from a count of 0.
type Value struct {
	count int
	set   bool
}

// Empty marks a hex that was never assigned.
var Empty = Value{}

func ValueOf(n int) Value {
	return Value{count: n, set: true}
}

func (v Value) Get() (int, bool) {
	return v.count, v.set
}

func (v Value) IsSet() bool {
	return v.set
}

func (v Value) String() string {
	if !v.set {
		return "empty"
	}
	return strconv.Itoa(v.count)
}

// checkExplicit validates a caller supplied override.
func checkExplicit(n int) error {
	if n < 1 || n > meta.MAX_VALUE {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidValue, n, meta.MAX_VALUE)
	}
	return nil
}

// Color identifies the owner of a hex.
type Color string

const (
	NoColor Color = ""
	Blue    Color = "blue"
	Red     Color = "red"
)

func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case Blue, Red:
		return Color(s), nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Player is one of the two participants. Player 1 always plays blue and
// player 2 red.
type Player struct {
	Name  string
	Color Color
}
