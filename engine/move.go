package engine

import (
	"fmt"
	"strconv"
	"strings"

	"hexix/game"
)

// Move places a value on a hex. A nil Value lets the board count the
// occupied neighbors.
type Move struct {
	Hex       string
	Color     game.Color
	Emphasize bool
	Value     *int
}

func (m Move) String() string {
	s := fmt.Sprintf("%s:%s", m.Hex, m.Color)
	if m.Value != nil {
		s += ":" + strconv.Itoa(*m.Value)
	}
	if m.Emphasize {
		s += "!"
	}
	return s
}

// ParseMove reads HEX:COLOR[:VALUE][!], e.g. "H2:blue" or "H7:red:3!".
func ParseMove(s string) (Move, error) {
	var m Move
	if strings.HasSuffix(s, "!") {
		m.Emphasize = true
		s = strings.TrimSuffix(s, "!")
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return Move{}, fmt.Errorf("malformed move %q, want HEX:COLOR[:VALUE][!]", s)
	}
	m.Hex = parts[0]
	color, err := game.ParseColor(parts[1])
	if err != nil {
		return Move{}, err
	}
	m.Color = color
	if len(parts) == 3 {
		v, err := strconv.Atoi(parts[2])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q", game.ErrInvalidValue, parts[2])
		}
		m.Value = &v
	}
	return m, nil
}
