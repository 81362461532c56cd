package game

import (
	"fmt"

	"hexix/utils"
)

// Direction is one of the six fixed compass labels linking neighboring hexes.
type Direction int

const (
	N Direction = iota
	NE
	SE
	S
	SW
	NW
)

// Directions lists every direction in board order.
var Directions = [6]Direction{N, NE, SE, S, SW, NW}

var directionNames = [6]string{"N", "NE", "SE", "S", "SW", "NW"}

func (d Direction) String() string {
	if d < N || d > NW {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Inverse returns the direction pointing back: N<->S, NE<->SW, SE<->NW.
func (d Direction) Inverse() Direction {
	return (d + 3) % 6
}

func ParseDirection(s string) (Direction, error) {
	i := utils.FindIndex(directionNames[:], s)
	if i < 0 {
		return 0, fmt.Errorf("unknown direction %q", s)
	}
	return Direction(i), nil
}
