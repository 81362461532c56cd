package game

import "hexix/utils"

// ConnectivityRule decides whether color may place a value on the named hex.
type ConnectivityRule func(b *Board, name string, c Color) bool

// PermitAll accepts every move.
func PermitAll(*Board, string, Color) bool { return true }

// AdjacentToTerritory accepts a move when the hex already belongs to the
// color or touches a hex that does.
func AdjacentToTerritory(b *Board, name string, c Color) bool {
	h, err := b.Cell(name)
	if err != nil {
		return false
	}
	owned := b.OwnedBy(c)
	if utils.FindIndex(owned, name) >= 0 {
		return true
	}
	for _, d := range Directions {
		neighbor := h.Neighbor(d)
		if neighbor != "" && utils.FindIndex(owned, neighbor) >= 0 {
			return true
		}
	}
	return false
}

// SetConnectivity replaces the rule checked by Assign. A nil rule restores
// PermitAll.
func (b *Board) SetConnectivity(rule ConnectivityRule) {
	if rule == nil {
		rule = PermitAll
	}
	b.connectivity = rule
}

// Assign sets the value of a hex to explicit when given, otherwise to the
// number of its neighbors that already hold a value. Assigning a hex that
// already has a value overwrites it; the duplicate only shows up in the log
// and in the returned overwrote flag.
func (b *Board) Assign(name string, c Color, emphasize bool, explicit *int) (overwrote bool, err error) {
	h, err := b.Cell(name)
	if err != nil {
		return false, err
	}
	if _, err := ParseColor(string(c)); err != nil {
		return false, err
	}
	if !b.connectivity(b, name, c) {
		return false, &IllegalMoveError{Hex: name, Color: c}
	}

	var count int
	if explicit != nil {
		if err := checkExplicit(*explicit); err != nil {
			return false, err
		}
		count = *explicit
	} else {
		count, err = b.OccupiedNeighbors(name)
		if err != nil {
			return false, err
		}
	}

	overwrote, err = h.SetValue(ValueOf(count), c, emphasize)
	if err != nil {
		return false, err
	}
	b.log.Debug().
		Str("hex", name).
		Str("color", string(c)).
		Int("value", count).
		Bool("emphasized", emphasize).
		Msg("hex assigned")
	return overwrote, nil
}
