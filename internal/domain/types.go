package domain

const (
	Rows    = 6
	Columns = 7
	Cells   = Rows * Columns
	ToWin   = 4
)

// Token is the content of a single cell.
type Token int

const (
	Empty Token = iota
	Black
	White
)

// Glyph is the symbol drawn for an occupied cell.
func (t Token) Glyph() string {
	switch t {
	case Black:
		return "⚫"
	case White:
		return "⚪"
	}
	return ""
}

func (t Token) String() string {
	switch t {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Player is one of the two seats at the board. The zero value is PlayerOne.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Token returns the fixed token of the player (PlayerOne -> Black, PlayerTwo -> White).
func (p Player) Token() Token {
	if p == PlayerTwo {
		return White
	}
	return Black
}

func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	if p == PlayerTwo {
		return "player 2"
	}
	return "player 1"
}

// PlayerFor maps a token back to the player owning it.
func PlayerFor(t Token) (Player, bool) {
	switch t {
	case Black:
		return PlayerOne, true
	case White:
		return PlayerTwo, true
	}
	return PlayerOne, false
}

// Outcome is always recomputed from the board, never stored
type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeWin      Outcome = "win"
	OutcomeDraw     Outcome = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange  Error = "cell is off the board"
	ErrFloating    Error = "cell below is empty"
	ErrOccupied    Error = "cell is already taken"
	ErrColumnRange Error = "column is off the board"
	ErrColumnFull  Error = "column is full"
	ErrFinished    Error = "game is already finished"
)
