package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDirectionInverse(t *testing.T) {
	pairs := map[Direction]Direction{N: S, NE: SW, SE: NW, S: N, SW: NE, NW: SE}
	for d, want := range pairs {
		require.Equal(t, want, d.Inverse(), "inverse of %s", d)
		require.Equal(t, d, d.Inverse().Inverse(), "inverse should be an involution")
	}

	d, err := ParseDirection("SW")
	require.NoError(t, err)
	require.Equal(t, SW, d)
	_, err = ParseDirection("W")
	require.Error(t, err)
}

func TestHexIncrement(t *testing.T) {
	t.Run("value below the maximum grows by exactly one", func(t *testing.T) {
		for n := 0; n < 6; n++ {
			h := newHex("H1", [6]string{}, zerolog.Nop())
			_, err := h.SetValue(ValueOf(n), Blue, false)
			require.NoError(t, err)

			require.NoError(t, h.Increment())
			got, ok := h.Value().Get()
			require.True(t, ok)
			require.Equal(t, n+1, got)
		}
	})

	t.Run("value at the maximum stays at 6", func(t *testing.T) {
		h := newHex("H1", [6]string{}, zerolog.Nop())
		_, err := h.SetValue(ValueOf(6), Red, false)
		require.NoError(t, err)

		require.NoError(t, h.Increment())
		got, _ := h.Value().Get()
		require.Equal(t, 6, got)
	})

	t.Run("empty hex cannot be incremented", func(t *testing.T) {
		h := newHex("H1", [6]string{}, zerolog.Nop())

		err := h.Increment()
		require.ErrorIs(t, err, ErrEmptyCell)
		require.False(t, h.Value().IsSet(), "Hex should stay empty")
	})
}

func TestHexSetValue(t *testing.T) {
	t.Run("first assignment commits value, color and emphasis", func(t *testing.T) {
		var logs bytes.Buffer
		h := newHex("H4", [6]string{}, zerolog.New(&logs))

		overwrote, err := h.SetValue(ValueOf(2), Red, true)

		require.NoError(t, err)
		require.False(t, overwrote)
		require.Equal(t, ValueOf(2), h.Value())
		require.Equal(t, Red, h.Color())
		require.True(t, h.Emphasized())
		require.Empty(t, logs.String(), "Nothing should be logged")
	})

	t.Run("second assignment overwrites and logs an error", func(t *testing.T) {
		var logs bytes.Buffer
		h := newHex("H4", [6]string{}, zerolog.New(&logs))
		_, err := h.SetValue(ValueOf(2), Red, true)
		require.NoError(t, err)

		overwrote, err := h.SetValue(ValueOf(5), Blue, false)

		require.NoError(t, err)
		require.True(t, overwrote)
		require.Equal(t, ValueOf(5), h.Value())
		require.Equal(t, Blue, h.Color())
		require.False(t, h.Emphasized())
		require.Contains(t, logs.String(), "hex already has value")
		require.Contains(t, logs.String(), `"hex":"H4"`)
		require.Contains(t, logs.String(), `"level":"error"`)
	})

	t.Run("zero is a value, not an empty hex", func(t *testing.T) {
		var logs bytes.Buffer
		h := newHex("H4", [6]string{}, zerolog.New(&logs))
		_, err := h.SetValue(ValueOf(0), Blue, false)
		require.NoError(t, err)

		require.True(t, h.Value().IsSet())
		require.Equal(t, Blue, h.Color())

		_, err = h.SetValue(ValueOf(1), Blue, false)
		require.NoError(t, err)
		require.Contains(t, logs.String(), "hex already has value")
	})

	t.Run("empty and out of range values are rejected", func(t *testing.T) {
		h := newHex("H4", [6]string{}, zerolog.Nop())
		_, err := h.SetValue(ValueOf(3), Red, false)
		require.NoError(t, err)

		for _, v := range []Value{Empty, ValueOf(99), ValueOf(7), ValueOf(-1)} {
			_, err := h.SetValue(v, Blue, true)
			require.ErrorIs(t, err, ErrInvalidValue, "value %s", v)
		}
		_, err = h.SetValue(ValueOf(2), NoColor, true)
		require.ErrorIs(t, err, ErrInvalidColor)

		require.Equal(t, ValueOf(3), h.Value(), "Rejected values should leave the hex untouched")
		require.Equal(t, Red, h.Color())
		require.False(t, h.Emphasized())
	})

	t.Run("maximum value is accepted", func(t *testing.T) {
		h := newHex("H4", [6]string{}, zerolog.Nop())
		_, err := h.SetValue(ValueOf(6), Blue, false)
		require.NoError(t, err)
		require.Equal(t, ValueOf(6), h.Value())
	})
}

func TestHexNeighbors(t *testing.T) {
	var neighbors [6]string
	neighbors[N] = "H1"
	neighbors[SE] = "H9"
	neighbors[SW] = "H8"
	h := newHex("H5", neighbors, zerolog.Nop())

	require.Equal(t, 3, h.NeighborCount())
	require.Equal(t, "H9", h.Neighbor(SE))
	require.Equal(t, "", h.Neighbor(NW))

	view := h.Neighbors()
	view[N] = "H30"
	require.Equal(t, "H1", h.Neighbor(N), "Neighbors should return a copy")

	diagram := h.Diagram()
	lines := strings.Split(diagram, "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "\tH1", lines[1])
	require.Equal(t, "\tH5", lines[3])
	require.Equal(t, "H8\t\tH9", lines[4])
}

func TestHexHome(t *testing.T) {
	h := newHex("H1", [6]string{}, zerolog.Nop())
	require.False(t, h.IsHome())
	h.SetHome()
	require.True(t, h.IsHome())
	h.ClearHome()
	require.False(t, h.IsHome())
}
