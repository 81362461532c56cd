package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "hexix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "Snickerdoodle", cfg.Players.Player1)
	require.Equal(t, "Inari", cfg.Players.Player2)
	require.Equal(t, "", cfg.Board.Path)
	require.Equal(t, "permit-all", cfg.Board.Connectivity)
	require.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing fields get defaults", func(t *testing.T) {
		path := writeConfig(t, "players:\n  player1: Ann\nboard:\n  plain: true\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "Ann", cfg.Players.Player1)
		require.Equal(t, "Inari", cfg.Players.Player2)
		require.True(t, cfg.Board.Plain)
		require.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("every field can be set", func(t *testing.T) {
		path := writeConfig(t, `
players:
  player1: Ann
  player2: Bo
board:
  path: ./board.json
  connectivity: adjacent
log:
  level: debug
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, &Config{
			Players: PlayersConfig{Player1: "Ann", Player2: "Bo"},
			Board:   BoardConfig{Path: "./board.json", Connectivity: "adjacent"},
			Log:     LogConfig{Level: "debug"},
		}, cfg)
	})

	t.Run("unknown values are rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log:\n  level: loud\n"))
		require.Error(t, err)

		_, err = Load(writeConfig(t, "board:\n  connectivity: anywhere\n"))
		require.Error(t, err)
	})

	t.Run("long player names are rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "players:\n  player1: abcdefghijklmnopqrstuvwxyzabcdefghij\n"))
		require.Error(t, err)
	})

	t.Run("unreadable files", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)

		_, err = Load(writeConfig(t, "players: [1, 2\n"))
		require.Error(t, err)
	})
}
