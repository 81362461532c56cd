package game

import (
	"bytes"
	"testing"

	"hexix/topology"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// isolated returns H1..H30 without any neighbor links.
func isolated() topology.Topology {
	t := topology.Topology{}
	for _, name := range ExpectedNames() {
		t[name] = map[string]string{}
	}
	return t
}

// link adds a mirrored edge: a's neighbor to d is b and b's neighbor to the
// inverse of d is a.
func link(t topology.Topology, a string, d Direction, b string) {
	t[a][d.String()] = b
	t[b][d.Inverse().String()] = a
}

func defaultTopology(t *testing.T) topology.Topology {
	topo, err := topology.Default()
	require.NoError(t, err)
	return topo
}

func newTestBoard(t *testing.T, topo topology.Topology) (*Board, *bytes.Buffer) {
	var logs bytes.Buffer
	b, err := NewBoard(topo, zerolog.New(&logs))
	require.NoError(t, err)
	return b, &logs
}

func intPtr(n int) *int { return &n }
