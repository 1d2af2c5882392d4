package domain

import "fmt"

// Cell is the content of a single board slot.
// The wire format uses the underlying integer values.
type Cell int

const (
	Empty     Cell = 0
	PlayerOne Cell = 1 // human opponent (orange discs)
	PlayerTwo Cell = 2 // automated player (blue discs)
)

// default physical board and alignment length
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

func (c Cell) Valid() bool {
	return c == Empty || c == PlayerOne || c == PlayerTwo
}

// IsPlayer reports whether c names one of the two players.
func (c Cell) IsPlayer() bool {
	return c == PlayerOne || c == PlayerTwo
}

// Opponent returns the other player, or Empty for Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case PlayerOne:
		return "player_one"
	case PlayerTwo:
		return "player_two"
	default:
		return fmt.Sprintf("cell(%d)", int(c))
	}
}

// ParseCell converts a wire integer into a Cell.
func ParseCell(v int) (Cell, error) {
	c := Cell(v)
	if !c.Valid() {
		return Empty, fmt.Errorf("%w: cell value %d not in {0,1,2}", ErrInvalidGrid, v)
	}
	return c, nil
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidGrid   Error = "invalid grid"
	ErrInvalidPlayer Error = "invalid player"
	ErrColumnFull    Error = "column is full"
	ErrInvalidMove   Error = "invalid move"
)
