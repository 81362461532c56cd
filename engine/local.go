package engine

import (
	"sync"

	"hexix/game"

	"github.com/rs/zerolog"
)

// LocalEngine owns one game and serializes every operation on it, so a hex
// is never assigned by two callers at once.
type LocalEngine struct {
	mu      sync.Mutex
	game    *game.Game
	updates []Update
	log     zerolog.Logger
}

func Local(g *game.Game, logger zerolog.Logger) *LocalEngine {
	if g == nil {
		panic("engine needs a game")
	}
	return &LocalEngine{
		game: g,
		log:  logger,
	}
}

// Play applies move and records it.
func (e *LocalEngine) Play(move Move) (Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	overwrote, err := e.game.Assign(move.Hex, move.Color, move.Emphasize, move.Value)
	if err != nil {
		e.log.Warn().Err(err).Stringer("move", move).Msg("move rejected")
		return Update{}, err
	}
	h, err := e.game.Board().Cell(move.Hex)
	if err != nil {
		return Update{}, err
	}
	u := Update{
		Move:      move,
		Value:     h.Value(),
		Overwrote: overwrote,
	}
	e.updates = append(e.updates, u)
	e.log.Info().Msgf("move %d: %s -> %s", len(e.updates), move, u.Value)
	return u, nil
}

func (e *LocalEngine) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Validate()
}

func (e *LocalEngine) Render() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Render()
}

// Updates returns the moves played so far, oldest first.
func (e *LocalEngine) Updates() []Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	updates := make([]Update, len(e.updates))
	copy(updates, e.updates)
	return updates
}

var _ Engine = (*LocalEngine)(nil)
