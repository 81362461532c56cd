package main

import (
	"fmt"
	"os"

	"hexix/config"
	"hexix/engine"
	"hexix/game"
	"hexix/render"
	"hexix/topology"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	boardPath  string
	player1    string
	player2    string
	logLevel   string
	plain      bool

	rootCmd = &cobra.Command{
		Use:          "hexix",
		Short:        "Play Hexix, a two player game on a 30 hex board",
		SilenceUsage: true,
	}
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Checks that the board has H1..H30 and that every neighbor link is mirrored",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Prints the starting board",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	playCmd = &cobra.Command{
		Use:   "play MOVE...",
		Short: "Plays moves and prints the resulting board",
		Long: `Each MOVE is HEX:COLOR[:VALUE][!]. Without VALUE the hex gets the number
of its occupied neighbors; a trailing ! draws the hex emphasized.

Example: hexix play H2:blue H29:red:3!`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPlay,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&boardPath, "board", "", "path to a board file (YAML or JSON); default is the built-in board")
	rootCmd.PersistentFlags().StringVar(&player1, "player1", "", "name of the blue player")
	rootCmd.PersistentFlags().StringVar(&player2, "player2", "", "name of the red player")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "render without colors")

	rootCmd.AddCommand(validateCmd, renderCmd, playCmd)
}

// loadConfig merges the config file, if any, with the command line flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	if boardPath != "" {
		cfg.Board.Path = boardPath
	}
	if player1 != "" {
		cfg.Players.Player1 = player1
	}
	if player2 != "" {
		cfg.Players.Player2 = player2
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if plain {
		cfg.Board.Plain = true
	}
	return cfg, cfg.Validate()
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// newEngine builds a ready game from the configuration.
func newEngine(cmd *cobra.Command) (*engine.LocalEngine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.Log.Level)

	var t topology.Topology
	if cfg.Board.Path == "" {
		t, err = topology.Default()
	} else {
		t, err = topology.Load(cfg.Board.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrConfiguration, err)
	}

	rule := game.PermitAll
	if cfg.Board.Connectivity == "adjacent" {
		rule = game.AdjacentToTerritory
	}
	g, err := game.New(t,
		game.WithPlayers(cfg.Players.Player1, cfg.Players.Player2),
		game.WithLogger(logger),
		game.WithConnectivity(rule),
		game.WithOutput(cmd.OutOrStdout()),
		game.WithRenderOptions(render.Options{Plain: cfg.Board.Plain}),
	)
	if err != nil {
		return nil, err
	}
	return engine.Local(g, logger), nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "board OK")
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	return e.Render()
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}
	for _, arg := range args {
		move, err := engine.ParseMove(arg)
		if err != nil {
			return err
		}
		if _, err := e.Play(move); err != nil {
			return err
		}
	}
	return e.Render()
}
