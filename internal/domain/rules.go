package domain

// index steps for the four directions a run can take
const (
	StepHorizontal    = 1
	StepVertical      = Columns
	StepDiagonalRight = Columns + 1
	StepDiagonalLeft  = Columns - 1
)

var Steps = [...]int{StepHorizontal, StepVertical, StepDiagonalRight, StepDiagonalLeft}

// columnDelta is how far the column moves for one step, e.g. +1 for a
// horizontal step and -1 for the down-left diagonal.
func columnDelta(step int) int {
	d := step % Columns
	if d < 0 {
		d += Columns
	}
	if d > Columns/2 {
		d -= Columns
	}
	return d
}

// runFrom reports whether the cells start, start+step, ... (length of them)
// all hold the same non-empty token. Every step has to move the column by
// exactly columnDelta(step), so a run can never wrap from one row into the next.
func runFrom(b *Board, start, step, length int) bool {
	if length <= 0 || !InRange(start) {
		return false
	}

	token := b[start]
	if token == Empty {
		return false
	}

	dc := columnDelta(step)
	prev := start
	for k := 1; k < length; k++ {
		cell := prev + step
		if !InRange(cell) || ColumnOf(cell) != ColumnOf(prev)+dc {
			return false
		}
		if b[cell] != token {
			return false
		}
		prev = cell
	}

	return true
}

// Winner scans the whole board and returns the token of the first run of
// ToWin it finds.
func (b *Board) Winner() (Token, bool) {
	for cell := 0; cell < Cells; cell++ {
		for _, step := range Steps {
			if runFrom(b, cell, step, ToWin) {
				return b[cell], true
			}
		}
	}
	return Empty, false
}

func (b *Board) IsWin() bool {
	_, won := b.Winner()
	return won
}

// IsDraw only checks that no cell is empty. Callers check IsWin first, a
// full board holding a run is still a win.
func (b *Board) IsDraw() bool {
	for _, t := range b {
		if t == Empty {
			return false
		}
	}
	return true
}

// Outcome checks win before draw.
func (b *Board) Outcome() Outcome {
	if b.IsWin() {
		return OutcomeWin
	}
	if b.IsDraw() {
		return OutcomeDraw
	}
	return OutcomeContinue
}
