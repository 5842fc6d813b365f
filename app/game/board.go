package game

import "errors"

var (
	ErrEmptyBoard    = errors.New("board needs at least one square")
	ErrNoJailSquare  = errors.New("board has no jail square")
	ErrNegativeSteps = errors.New("movement steps must be >= 0")
)

// Board is the fixed ordered sequence of squares. Positions wrap modulo its
// length.
type Board struct {
	squares   []*Square
	jailIndex int
}

func NewBoard(squares []*Square) (*Board, error) {
	if len(squares) == 0 {
		return nil, ErrEmptyBoard
	}
	jail := -1
	for i, sq := range squares {
		if sq.Kind == SquareJail {
			jail = i
			break
		}
	}
	if jail == -1 {
		return nil, ErrNoJailSquare
	}
	return &Board{squares: squares, jailIndex: jail}, nil
}

func (b *Board) Len() int { return len(b.squares) }
func (b *Board) JailIndex() int { return b.jailIndex }

func (b *Board) SquareAt(index int) *Square {
	return b.squares[index]
}

func (b *Board) Contains(index int) bool {
	return index >= 0 && index < len(b.squares)
}

// NextPosition advances from a position by steps, wrapping past the end.
func (b *Board) NextPosition(from int, steps int) (int, error) {
	if steps < 0 {
		return 0, ErrNegativeSteps
	}
	return (from + steps) % len(b.squares), nil
}
