package domain

// Match is one game on one board. It only tracks whose turn it is; whether
// the game is over is always asked from the board.
type Match struct {
	Board     Board
	Turn      Player
	LastMover Player
	MoveCount int
}

func NewMatch() *Match {
	return &Match{
		Board: NewBoard(),
		Turn:  PlayerOne,
	}
}

// Play places the current player's token in cell and passes the turn.
// A rejected move keeps the turn and returns the reason.
func (m *Match) Play(cell int) (Token, error) {
	if m.IsFinished() {
		return Empty, ErrFinished
	}

	if err := m.Board.Validate(cell); err != nil {
		return Empty, err
	}

	token, ok := m.Board.PlaceToken(cell, m.Turn)
	if !ok {
		return Empty, ErrOccupied
	}

	m.MoveCount++
	m.LastMover = m.Turn
	m.Turn = m.Turn.Other()

	return token, nil
}

// PlayColumn drops the current player's token into column.
func (m *Match) PlayColumn(column int) (int, Token, error) {
	if m.IsFinished() {
		return -1, Empty, ErrFinished
	}

	cell, err := LowestOpenCell(m.Board, column)
	if err != nil {
		return -1, Empty, err
	}

	token, err := m.Play(cell)
	if err != nil {
		return -1, Empty, err
	}
	return cell, token, nil
}

func (m *Match) Outcome() Outcome {
	return m.Board.Outcome()
}

func (m *Match) IsFinished() bool {
	return m.Outcome() != OutcomeContinue
}

// Winner is the player who made the winning move.
func (m *Match) Winner() (Player, bool) {
	token, won := m.Board.Winner()
	if !won {
		return PlayerOne, false
	}
	return PlayerFor(token)
}

func (m *Match) Reset() {
	m.Board.Reset()
	m.Turn = PlayerOne
	m.LastMover = PlayerOne
	m.MoveCount = 0
}
