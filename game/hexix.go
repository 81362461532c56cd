package game

import (
	"fmt"
	"io"
	"os"

	"hexix/meta"
	"hexix/render"
	"hexix/topology"

	"github.com/rs/zerolog"
)

type Option func(g *Game)

// Game is a Hexix match between two players on one board.
type Game struct {
	board        *Board
	players      [2]Player
	connectivity ConnectivityRule
	log          zerolog.Logger
	out          io.Writer
	style        render.Options
}

func WithPlayers(player1, player2 string) Option {
	return func(g *Game) {
		if player1 != "" {
			g.players[0].Name = player1
		}
		if player2 != "" {
			g.players[1].Name = player2
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

func WithConnectivity(rule ConnectivityRule) Option {
	return func(g *Game) {
		if rule != nil {
			g.connectivity = rule
		}
	}
}

// WithOutput sets where Render writes the board.
func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		if w != nil {
			g.out = w
		}
	}
}

func WithRenderOptions(opts render.Options) Option {
	return func(g *Game) {
		g.style = opts
	}
}

// New builds the board from t and seeds both home hexes with a 6 in the
// owning player's color. The returned game is ready to play.
func New(t topology.Topology, options ...Option) (*Game, error) {
	g := &Game{ // Default values
		players: [2]Player{
			{Name: meta.DEFAULT_PLAYER1, Color: Blue},
			{Name: meta.DEFAULT_PLAYER2, Color: Red},
		},
		connectivity: PermitAll,
		log:          zerolog.Nop(),
		out:          os.Stdout,
	}
	for _, option := range options {
		option(g)
	}
	g.log.Info().Msgf("initializing Hexix game between %s and %s", g.players[0].Name, g.players[1].Name)

	board, err := NewBoard(t, g.log)
	if err != nil {
		return nil, err
	}
	g.board = board

	// Home hexes are seeded before the connectivity rule applies: a
	// territory based rule could never admit the first hex.
	six := meta.MAX_VALUE
	homes := []struct {
		name  string
		color Color
	}{
		{meta.HOME_P1, g.players[0].Color},
		{meta.HOME_P2, g.players[1].Color},
	}
	for _, home := range homes {
		if _, err := board.Assign(home.name, home.color, false, &six); err != nil {
			return nil, fmt.Errorf("failed to seed home %s: %w", home.name, err)
		}
		h, _ := board.Cell(home.name)
		h.SetHome()
	}
	board.SetConnectivity(g.connectivity)
	return g, nil
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Players() [2]Player { return g.players }

// Validate runs the board self check.
func (g *Game) Validate() error {
	if err := g.board.Validate(); err != nil {
		g.log.Error().Err(err).Msg("board validation failed")
		return err
	}
	g.log.Debug().Msg("board validated")
	return nil
}

// Assign places a value on a hex for color; see Board.Assign.
func (g *Game) Assign(name string, c Color, emphasize bool, explicit *int) (bool, error) {
	return g.board.Assign(name, c, emphasize, explicit)
}

// Snapshot returns the hexes in board order in the form the renderer reads.
func (g *Game) Snapshot() []render.Cell {
	names := g.board.Names()
	cells := make([]render.Cell, len(names))
	for i, name := range names {
		h := g.board.cells[name]
		n, ok := h.Value().Get()
		cells[i] = render.Cell{
			Value:      n,
			Set:        ok,
			Color:      string(h.Color()),
			Emphasized: h.Emphasized(),
		}
	}
	return cells
}

// Render writes the board to the game's output.
func (g *Game) Render() error {
	layout, err := render.Board(g.Snapshot(), g.players[0].Name, g.players[1].Name, g.style)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(g.out, layout+"\n"); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}
	g.log.Debug().Msg("board rendered")
	return nil
}
