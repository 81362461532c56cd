package topology

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed board.yaml
var defaultBoard []byte

var ErrEmpty = errors.New("topology defines no hexes")

// Topology maps each hex name to its neighbors, keyed by direction label
// (N, NE, SE, S, SW, NW). Directions without a neighbor are omitted or empty.
type Topology map[string]map[string]string

// Default returns the standard 30 hex rhombus.
func Default() (Topology, error) {
	t, err := Parse(defaultBoard)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded board: %w", err)
	}
	return t, nil
}

// Load reads a topology file. Both YAML and JSON documents are accepted.
func Load(path string) (Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}
	return t, nil
}

func Parse(data []byte) (Topology, error) {
	var t Topology
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, ErrEmpty
	}
	for name, rels := range t {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("hex with empty name")
		}
		if rels == nil {
			// a hex with no neighbors at all
			t[name] = map[string]string{}
		}
	}
	return t, nil
}

// Names returns the hex names, ordered by their number when they carry one.
func (t Topology) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
	return names
}

// Less orders hex names numerically (H2 before H10), falling back to
// lexical order for names without a number.
func Less(a, b string) bool {
	na, okA := number(a)
	nb, okB := number(b)
	switch {
	case okA && okB:
		return na < nb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func number(name string) (int, bool) {
	i := strings.IndexFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
