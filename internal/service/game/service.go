package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/uid"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrNotANumber  = errors.New("move is not a number")
)

var defaultNames = [2]string{"Player 1", "Player 2"}

// Presenter shows the board and every message a player sees.
type Presenter interface {
	Title()
	AskName(player domain.Player)
	ShowBoard(board *domain.Board)
	AnnounceTurn(name string)
	InvalidMove(reason error)
	AnnounceWinner(name string)
	AnnounceTie()
	ShowScore(names [2]string, score Scoreboard)
	AskNewGame()
}

// Prompter reads one line of player input.
type Prompter interface {
	ReadLine(ctx context.Context) (string, error)
}

type Options struct {
	PlayerOneName string
	PlayerTwoName string
	InputMode     string
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PlayerOneName: cfg.PlayerOneName,
		PlayerTwoName: cfg.PlayerTwoName,
		InputMode:     cfg.InputMode,
	}
}

// Service runs hot-seat matches between two players sharing one terminal.
type Service struct {
	presenter Presenter
	prompter  Prompter
	opts      Options
	match     *domain.Match
	names     [2]string
	score     Scoreboard
	matchID   string
}

func NewService(presenter Presenter, prompter Prompter, opts Options) *Service {
	if opts.InputMode == "" {
		opts.InputMode = config.InputModeCell
	}
	return &Service{
		presenter: presenter,
		prompter:  prompter,
		opts:      opts,
		match:     domain.NewMatch(),
		names:     defaultNames,
	}
}

func (s *Service) Names() [2]string {
	return s.names
}

func (s *Service) Score() Scoreboard {
	return s.score
}

func (s *Service) Match() *domain.Match {
	return s.match
}

// Run plays matches until the players decline a rematch. Closed input and
// a cancelled context end the session with an error.
func (s *Service) Run(ctx context.Context) error {
	s.presenter.Title()

	if err := s.askNames(ctx); err != nil {
		return err
	}

	for {
		if _, err := s.PlayMatch(ctx); err != nil {
			return err
		}

		s.presenter.ShowScore(s.names, s.score)

		again, err := s.askNewGame(ctx)
		if err != nil {
			return err
		}
		if !again {
			log.Printf("[SESSION] Ended after %d matches", s.score.Played())
			return nil
		}

		s.match.Reset()
	}
}

// PlayMatch plays the current board until it is won or drawn.
func (s *Service) PlayMatch(ctx context.Context) (domain.Outcome, error) {
	s.matchID = uid.GenerateMatchID()
	log.Printf("[MATCH] Started match %s: %s vs %s", s.matchID, s.names[0], s.names[1])

	s.presenter.ShowBoard(&s.match.Board)

	for {
		switch outcome := s.match.Outcome(); outcome {
		case domain.OutcomeWin:
			winner, _ := s.match.Winner()
			s.score.Record(outcome, winner)
			s.presenter.AnnounceWinner(s.names[winner])
			log.Printf("[MATCH] Match %s won by %s after %d moves", s.matchID, s.names[winner], s.match.MoveCount)
			return outcome, nil

		case domain.OutcomeDraw:
			s.score.Record(outcome, domain.PlayerOne)
			s.presenter.AnnounceTie()
			log.Printf("[MATCH] Match %s ended in a tie", s.matchID)
			return outcome, nil
		}

		s.presenter.AnnounceTurn(s.names[s.match.Turn])
		if err := s.takeTurn(ctx); err != nil {
			return domain.OutcomeContinue, err
		}
		s.presenter.ShowBoard(&s.match.Board)
	}
}

// takeTurn keeps asking the same player until one move is accepted.
func (s *Service) takeTurn(ctx context.Context) error {
	player := s.match.Turn
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}

		cell, err := s.applyMove(line)
		if err == nil {
			log.Printf("[MATCH] Match %s: %s played cell %d", s.matchID, s.names[player], cell)
			return nil
		}

		log.Printf("[MATCH] Match %s: rejected %q from %s: %v", s.matchID, line, s.names[player], err)
		s.presenter.InvalidMove(err)
	}
}

func (s *Service) applyMove(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, ErrNotANumber
	}

	if s.opts.InputMode == config.InputModeColumn {
		cell, _, err := s.match.PlayColumn(n)
		return cell, err
	}

	if _, err := s.match.Play(n); err != nil {
		return -1, err
	}
	return n, nil
}

func (s *Service) askNames(ctx context.Context) error {
	preset := [2]string{s.opts.PlayerOneName, s.opts.PlayerTwoName}

	for _, player := range []domain.Player{domain.PlayerOne, domain.PlayerTwo} {
		if preset[player] != "" {
			s.names[player] = preset[player]
			continue
		}

		s.presenter.AskName(player)
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if name := strings.TrimSpace(line); name != "" {
			s.names[player] = name
		}
	}

	return nil
}

func (s *Service) askNewGame(ctx context.Context) (bool, error) {
	s.presenter.AskNewGame()
	line, err := s.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		return true, nil
	}
	return false, nil
}

func (s *Service) readLine(ctx context.Context) (string, error) {
	line, err := s.prompter.ReadLine(ctx)
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("failed to read input: %w", err)
}
