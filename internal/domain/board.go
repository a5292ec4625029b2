package domain

import (
	"fmt"
	"strings"
)

// Board holds the 42 cells in row-major order.
// here cell 0 is the top left corner and cell 41 the bottom right
type Board [Cells]Token

func NewBoard() Board {
	return Board{}
}

func CellIndex(row, column int) int {
	return row*Columns + column
}

func RowOf(cell int) int {
	return cell / Columns
}

func ColumnOf(cell int) int {
	return cell % Columns
}

func InRange(cell int) bool {
	return cell >= 0 && cell < Cells
}

// At returns Empty for cells outside the board.
func (b *Board) At(cell int) Token {
	if !InRange(cell) {
		return Empty
	}
	return b[cell]
}

// Validate runs the placement checks in order (range, gravity, occupancy)
// and reports the first one that fails.
func (b *Board) Validate(cell int) error {
	if !InRange(cell) {
		return ErrOutOfRange
	}

	// a token rests on the floor or on top of another token
	if RowOf(cell) != Rows-1 && b[cell+Columns] == Empty {
		return ErrFloating
	}

	if b[cell] != Empty {
		return ErrOccupied
	}

	return nil
}

// PlaceToken writes the player's token into cell and returns it.
// Any rejected placement returns (Empty, false) and leaves the board untouched.
func (b *Board) PlaceToken(cell int, player Player) (Token, bool) {
	if err := b.Validate(cell); err != nil {
		return Empty, false
	}

	token := player.Token()
	b[cell] = token
	return token, true
}

// LowestOpenCell resolves a column to the cell a dropped token would land in.
// It is independent from PlaceToken, which always takes a resolved cell.
func LowestOpenCell(b Board, column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrColumnRange
	}

	for row := Rows - 1; row >= 0; row-- {
		cell := CellIndex(row, column)
		if b[cell] == Empty {
			return cell, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) Filled() int {
	n := 0
	for _, t := range b {
		if t != Empty {
			n++
		}
	}
	return n
}

func (b *Board) Reset() {
	*b = Board{}
}

// Render draws seven cells per row, each followed by a space. Empty cells
// show their two digit index, occupied ones the token glyph.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(Cells*3 + Rows)

	for cell, t := range b {
		if ColumnOf(cell) == 0 {
			sb.WriteByte('\n')
		}
		if t == Empty {
			fmt.Fprintf(&sb, "%02d ", cell)
			continue
		}
		sb.WriteString(t.Glyph())
		sb.WriteByte(' ')
	}

	return sb.String()
}
