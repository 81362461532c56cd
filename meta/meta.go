// meta/meta.go
package meta

// NUM_CELLS defines the number of cells on the board.
const NUM_CELLS = 30

// MAX_VALUE defines the highest value a cell can hold.
const MAX_VALUE = 6

// CELL_PREFIX is prepended to the cell number to form a cell name.
const CELL_PREFIX = "H"

// HOME_P1 is the starting cell of player 1, HOME_P2 of player 2.
const HOME_P1 = "H1"
const HOME_P2 = "H30"

// DEFAULT_PLAYER1 and DEFAULT_PLAYER2 are used when no names are given.
const DEFAULT_PLAYER1 = "Snickerdoodle"
const DEFAULT_PLAYER2 = "Inari"
