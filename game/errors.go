package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("invalid board configuration")
	ErrAdjacency     = errors.New("inconsistent hex adjacency")
	ErrIllegalMove   = errors.New("illegal move")
	ErrUnknownCell   = errors.New("unknown hex")
	ErrInvalidValue  = errors.New("invalid hex value")
	ErrInvalidColor  = errors.New("invalid color")
	ErrEmptyCell     = errors.New("hex has no value")
)

// ConfigurationError reports a board whose hex names differ from H1..H30,
// or whose neighbor data cannot be read.
type ConfigurationError struct {
	Missing    []string
	Unexpected []string
	Reason     string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfiguration.Error())
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\nmissing: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		fmt.Fprintf(&b, "\nunexpected: %s", strings.Join(e.Unexpected, ", "))
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// AdjacencyError is the first directed edge found without its mirror.
type AdjacencyError struct {
	Hex       string
	Direction Direction
	Neighbor  string
	// Found is what Neighbor points to in the inverse direction.
	Found string
	// Dangling is set when Neighbor is not a hex of the board.
	Dangling bool

	hexDiagram      string
	neighborDiagram string
}

func (e *AdjacencyError) Error() string {
	if e.Dangling {
		return fmt.Sprintf("%s: %s %s is %s, which is not on the board\n%s",
			ErrAdjacency, e.Hex, e.Direction, e.Neighbor, e.hexDiagram)
	}
	found := e.Found
	if found == "" {
		found = "nothing"
	}
	msg := fmt.Sprintf("%s: %s %s is %s, but %s %s is %s",
		ErrAdjacency, e.Hex, e.Direction, e.Neighbor,
		e.Neighbor, e.Direction.Inverse(), found)
	if e.hexDiagram != "" {
		msg += "\n" + e.hexDiagram + "\n" + e.neighborDiagram
	}
	return msg
}

func (e *AdjacencyError) Unwrap() error { return ErrAdjacency }

// IllegalMoveError is returned when the connectivity rule refuses a move.
type IllegalMoveError struct {
	Hex   string
	Color Color
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s: %s cannot reach %s", ErrIllegalMove, e.Color, e.Hex)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }
