package game

import (
	"fmt"

	"hexix/meta"

	"github.com/rs/zerolog"
)

// Hex is a single board cell.
type Hex struct {
	name       string
	value      Value
	color      Color
	emphasized bool
	home       bool
	neighbors  [6]string // indexed by Direction, "" = board edge

	log zerolog.Logger
}

func newHex(name string, neighbors [6]string, logger zerolog.Logger) *Hex {
	return &Hex{
		name:      name,
		neighbors: neighbors,
		log:       logger.With().Str("hex", name).Logger(),
	}
}

func (h *Hex) Name() string         { return h.name }
func (h *Hex) Value() Value         { return h.value }
func (h *Hex) Color() Color         { return h.color }
func (h *Hex) Emphasized() bool     { return h.emphasized }
func (h *Hex) IsHome() bool         { return h.home }
func (h *Hex) SetHome()             { h.home = true }
func (h *Hex) ClearHome()           { h.home = false }
func (h *Hex) Neighbors() [6]string { return h.neighbors }

func (h *Hex) Neighbor(d Direction) string {
	return h.neighbors[d]
}

func (h *Hex) NeighborCount() int {
	count := 0
	for _, n := range h.neighbors {
		if n != "" {
			count++
		}
	}
	return count
}

// SetValue commits value, color and emphasis together. A hex that already
// holds a value is overwritten anyway; the duplicate is logged and reported
// through overwrote. The value must be set and within [0, MAX_VALUE], and the
// color must be a player's.
func (h *Hex) SetValue(v Value, c Color, emphasize bool) (overwrote bool, err error) {
	n, ok := v.Get()
	if !ok || n < 0 || n > meta.MAX_VALUE {
		return false, fmt.Errorf("%w: %s on %s", ErrInvalidValue, v, h.name)
	}
	if _, err := ParseColor(string(c)); err != nil {
		return false, err
	}
	if h.value.IsSet() {
		h.log.Error().
			Stringer("old", h.value).
			Stringer("new", v).
			Msg("hex already has value")
		overwrote = true
	}
	h.value = v
	h.color = c
	h.emphasized = emphasize
	return overwrote, nil
}

// Increment adds one to the value, stopping at the maximum.
func (h *Hex) Increment() error {
	n, ok := h.value.Get()
	if !ok {
		return fmt.Errorf("%w: cannot increment %s", ErrEmptyCell, h.name)
	}
	if n < meta.MAX_VALUE {
		h.value = ValueOf(n + 1)
	}
	return nil
}

// Diagram draws the hex with its neighbors around it:
//
//		N
//	NW		NE
//		name
//	SW		SE
//		S
func (h *Hex) Diagram() string {
	n := h.neighbors
	return fmt.Sprintf("\n\t%s\n%s\t\t%s\n\t%s\n%s\t\t%s\n\t%s",
		n[N], n[NW], n[NE], h.name, n[SW], n[SE], n[S])
}
