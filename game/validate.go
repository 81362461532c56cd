package game

import "golang.org/x/exp/slices"

// checkNames compares the hex names against H1..H30.
func (b *Board) checkNames() error {
	expected := ExpectedNames()
	var missing, unexpected []string
	for _, name := range expected {
		if _, ok := b.cells[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range b.cells {
		if !slices.Contains(expected, name) {
			unexpected = append(unexpected, name)
		}
	}
	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}
	slices.SortFunc(unexpected, byBoardOrder)
	return &ConfigurationError{
		Reason:     "hexes do not match expected set",
		Missing:    missing,
		Unexpected: unexpected,
	}
}

// Validate checks that the board holds exactly H1..H30 and that every
// neighbor link is mirrored: if A's neighbor to d is B then B's neighbor to
// the inverse of d is A. The first broken link is reported.
func (b *Board) Validate() error {
	if err := b.checkNames(); err != nil {
		return err
	}
	for _, name := range b.Names() {
		h := b.cells[name]
		for _, d := range Directions {
			neighborName := h.Neighbor(d)
			if neighborName == "" {
				continue
			}
			neighbor, ok := b.cells[neighborName]
			if !ok {
				return &AdjacencyError{
					Hex:        name,
					Direction:  d,
					Neighbor:   neighborName,
					Dangling:   true,
					hexDiagram: h.Diagram(),
				}
			}
			back := neighbor.Neighbor(d.Inverse())
			if back != name {
				b.log.Debug().Str("hex", name).Str("neighbor", neighborName).Msg(h.Diagram() + "\n" + neighbor.Diagram())
				return &AdjacencyError{
					Hex:             name,
					Direction:       d,
					Neighbor:        neighborName,
					Found:           back,
					hexDiagram:      h.Diagram(),
					neighborDiagram: neighbor.Diagram(),
				}
			}
		}
	}
	return nil
}
