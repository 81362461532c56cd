package engine

import "hexix/game"

// Engine applies moves to a single game, one at a time.
type Engine interface {
	Play(move Move) (Update, error)
	Validate() error
	Render() error
	Updates() []Update
}

// Update records a played move and the value it left on the hex.
type Update struct {
	Move      Move
	Value     game.Value
	Overwrote bool
}
