package game

import "github.com/iamasit07/connect-four/internal/domain"

// Scoreboard tallies finished matches for the lifetime of one session.
type Scoreboard struct {
	Wins  [2]int
	Draws int
}

func (s *Scoreboard) Record(outcome domain.Outcome, winner domain.Player) {
	switch outcome {
	case domain.OutcomeWin:
		s.Wins[winner]++
	case domain.OutcomeDraw:
		s.Draws++
	}
}

func (s Scoreboard) Played() int {
	return s.Wins[domain.PlayerOne] + s.Wins[domain.PlayerTwo] + s.Draws
}
