package game

import (
	"fmt"

	"hexix/meta"
	"hexix/topology"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Board holds every hex of the game, wired together by direction. The set of
// hexes and their neighbors never change once built; only hex values do.
type Board struct {
	cells        map[string]*Hex
	connectivity ConnectivityRule
	log          zerolog.Logger
}

// NewBoard builds the hexes described by t. Every hex gets all six
// directions, unset ones left empty. The board must hold exactly H1..H30.
func NewBoard(t topology.Topology, logger zerolog.Logger) (*Board, error) {
	b := &Board{
		cells:        make(map[string]*Hex, len(t)),
		connectivity: PermitAll,
		log:          logger,
	}
	for _, name := range t.Names() {
		rels := t[name]
		labels := make([]string, 0, len(rels))
		for rel := range rels {
			labels = append(labels, rel)
		}
		slices.Sort(labels)

		var neighbors [6]string
		for _, rel := range labels {
			d, err := ParseDirection(rel)
			if err != nil {
				return nil, &ConfigurationError{Reason: fmt.Sprintf("hex %s: %v", name, err)}
			}
			neighbors[d] = rels[rel]
		}
		b.cells[name] = newHex(name, neighbors, logger)
	}
	if err := b.checkNames(); err != nil {
		return nil, err
	}
	return b, nil
}

// ExpectedNames returns H1..H30.
func ExpectedNames() []string {
	names := make([]string, meta.NUM_CELLS)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", meta.CELL_PREFIX, i+1)
	}
	return names
}

func (b *Board) Cell(name string) (*Hex, error) {
	h, ok := b.cells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCell, name)
	}
	return h, nil
}

// Names lists the hexes in board order (H1, H2, ... H30).
func (b *Board) Names() []string {
	names := make([]string, 0, len(b.cells))
	for name := range b.cells {
		names = append(names, name)
	}
	slices.SortFunc(names, byBoardOrder)
	return names
}

func byBoardOrder(x, y string) int {
	switch {
	case topology.Less(x, y):
		return -1
	case topology.Less(y, x):
		return 1
	}
	return 0
}

func (b *Board) Len() int {
	return len(b.cells)
}

// OccupiedNeighbors counts the neighbors of a hex that hold a value.
func (b *Board) OccupiedNeighbors(name string) (int, error) {
	h, err := b.Cell(name)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, d := range Directions {
		neighborName := h.Neighbor(d)
		if neighborName == "" {
			continue
		}
		neighbor, err := b.Cell(neighborName)
		if err != nil {
			return 0, fmt.Errorf("%s %s: %w", name, d, err)
		}
		if neighbor.Value().IsSet() {
			count++
		}
	}
	return count, nil
}

// OwnedBy returns the names of the hexes of the given color, in board order.
func (b *Board) OwnedBy(c Color) []string {
	var owned []string
	for _, name := range b.Names() {
		if b.cells[name].Color() == c {
			owned = append(owned, name)
		}
	}
	return owned
}
