package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/domain"
)

// scriptedPrompter hands out the given lines, then io.EOF.
type scriptedPrompter struct {
	lines []string
}

func (p *scriptedPrompter) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	l := p.lines[0]
	p.lines = p.lines[1:]
	return l, nil
}

// recorder keeps one entry per presenter call.
type recorder struct {
	events  []string
	reasons []error
	boards  int
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) Title() { r.add("title") }
func (r *recorder) AskName(p domain.Player) { r.add("name %d", int(p)+1) }
func (r *recorder) ShowBoard(*domain.Board) { r.boards++ }
func (r *recorder) AnnounceTurn(name string) { r.add("turn %s", name) }
func (r *recorder) AnnounceWinner(name string) { r.add("winner %s", name) }
func (r *recorder) AnnounceTie() { r.add("tie") }
func (r *recorder) AskNewGame() { r.add("again?") }
func (r *recorder) ShowScore(n [2]string, s Scoreboard) {
	r.add("score %s %d - %d %s (%d)", n[0], s.Wins[0], s.Wins[1], n[1], s.Draws)
}
func (r *recorder) InvalidMove(reason error) {
	r.add("invalid")
	r.reasons = append(r.reasons, reason)
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recorder) has(event string) bool {
	return r.count(event) > 0
}

func newTestService(opts Options, lines ...string) (*Service, *recorder) {
	rec := &recorder{}
	return NewService(rec, &scriptedPrompter{lines: lines}, opts), rec
}

// black takes the bottom row 35..38 while white stacks on top
var horizontalWin = []string{"35", "28", "36", "29", "37", "30", "38"}

func TestRunHorizontalWin(t *testing.T) {
	lines := append([]string{"Ada", "Grace"}, horizontalWin...)
	lines = append(lines, "no")
	svc, rec := newTestService(Options{}, lines...)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if rec.events[0] != "title" || rec.events[1] != "name 1" || rec.events[2] != "name 2" {
		t.Fatalf("unexpected opening: %v", rec.events[:3])
	}
	if !rec.has("winner Ada") {
		t.Fatalf("expected Ada to win, events: %v", rec.events)
	}
	if rec.count("turn Ada") != 4 || rec.count("turn Grace") != 3 {
		t.Errorf("turns: Ada %d Grace %d", rec.count("turn Ada"), rec.count("turn Grace"))
	}
	// once at the start and once after each of the seven moves
	if rec.boards != 8 {
		t.Errorf("board shown %d times, want 8", rec.boards)
	}
	if !rec.has("score Ada 1 - 0 Grace (0)") {
		t.Errorf("expected score line, events: %v", rec.events)
	}
	if svc.Names() != [2]string{"Ada", "Grace"} {
		t.Errorf("Names() = %v", svc.Names())
	}
}

func TestInvalidMoveRepromptsSamePlayer(t *testing.T) {
	lines := []string{"", "", "29", "abc", "42", "35", "35", "36"}
	svc, rec := newTestService(Options{}, lines...)

	err := svc.Run(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want %v", err, ErrInputClosed)
	}

	want := []string{
		"title", "name 1", "name 2",
		"turn Player 1", "invalid", "invalid", "invalid",
		"turn Player 2", "invalid",
		"turn Player 1",
	}
	if strings.Join(rec.events, "|") != strings.Join(want, "|") {
		t.Fatalf("events = %v\nwant %v", rec.events, want)
	}

	wantReasons := []error{domain.ErrFloating, ErrNotANumber, domain.ErrOutOfRange, domain.ErrOccupied}
	for i, want := range wantReasons {
		if !errors.Is(rec.reasons[i], want) {
			t.Errorf("reason %d = %v, want %v", i, rec.reasons[i], want)
		}
	}

	b := svc.Match().Board
	if b.At(35) != domain.Black || b.At(36) != domain.White {
		t.Errorf("unexpected board:%s", b.Render())
	}
}

func TestPresetNamesSkipPrompt(t *testing.T) {
	lines := append([]string{}, horizontalWin...)
	lines = append(lines, "n")
	svc, rec := newTestService(Options{PlayerOneName: "Ada", PlayerTwoName: "Grace"}, lines...)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rec.has("name 1") || rec.has("name 2") {
		t.Fatalf("preset names should not be asked, events: %v", rec.events)
	}
	if !rec.has("winner Ada") {
		t.Fatalf("expected Ada to win, events: %v", rec.events)
	}
}

func TestColumnInputMode(t *testing.T) {
	// black fills column 0 while white plays column 1
	lines := []string{"", "", "0", "1", "0", "1", "0", "1", "0", "no"}
	svc, rec := newTestService(Options{InputMode: config.InputModeColumn}, lines...)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !rec.has("winner Player 1") {
		t.Fatalf("expected a vertical win for player 1, events: %v", rec.events)
	}
	b := svc.Match().Board
	for _, cell := range []int{14, 21, 28, 35} {
		if b.At(cell) != domain.Black {
			t.Errorf("cell %d = %v, want black", cell, b.At(cell))
		}
	}
}

func TestColumnInputModeRejectsFullColumn(t *testing.T) {
	lines := []string{"", "", "6", "6", "6", "6", "6", "6", "6", "7"}
	svc, rec := newTestService(Options{InputMode: config.InputModeColumn}, lines...)

	if err := svc.Run(context.Background()); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want %v", err, ErrInputClosed)
	}
	if len(rec.reasons) != 2 {
		t.Fatalf("expected 2 rejections, got %v", rec.reasons)
	}
	if !errors.Is(rec.reasons[0], domain.ErrColumnFull) || !errors.Is(rec.reasons[1], domain.ErrColumnRange) {
		t.Errorf("reasons = %v", rec.reasons)
	}
}

func TestRematchResetsBoardAndKeepsScore(t *testing.T) {
	lines := []string{"Ada", "Grace"}
	lines = append(lines, horizontalWin...)
	lines = append(lines, "YES")
	lines = append(lines, horizontalWin...)
	lines = append(lines, "no")
	svc, rec := newTestService(Options{}, lines...)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rec.count("winner Ada") != 2 {
		t.Fatalf("expected Ada to win twice, events: %v", rec.events)
	}
	if got := svc.Score(); got.Wins != [2]int{2, 0} || got.Played() != 2 {
		t.Fatalf("Score() = %+v", got)
	}
	if rec.count("again?") != 2 {
		t.Errorf("rematch asked %d times, want 2", rec.count("again?"))
	}
}

func TestPlayMatchDetectsTie(t *testing.T) {
	svc, rec := newTestService(Options{})

	rows := []string{
		"WWWBWWW",
		"BBBWBBB",
		"WWWBWWW",
		"BBBWBBB",
		"WWWBWWW",
		"BBBWBBB",
	}
	b := &svc.Match().Board
	for r, row := range rows {
		for c, ch := range row {
			tok := domain.Black
			if ch == 'W' {
				tok = domain.White
			}
			b[domain.CellIndex(r, c)] = tok
		}
	}

	outcome, err := svc.PlayMatch(context.Background())
	if err != nil {
		t.Fatalf("PlayMatch() error = %v", err)
	}
	if outcome != domain.OutcomeDraw || !rec.has("tie") {
		t.Fatalf("outcome = %v, events: %v", outcome, rec.events)
	}
	if svc.Score().Draws != 1 {
		t.Fatalf("Score().Draws = %d, want 1", svc.Score().Draws)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	svc, _ := newTestService(Options{}, "Ada", "Grace")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{PlayerOneName: "Ada", InputMode: config.InputModeColumn}
	opts := OptionsFromConfig(cfg)
	if opts.PlayerOneName != "Ada" || opts.PlayerTwoName != "" || opts.InputMode != config.InputModeColumn {
		t.Fatalf("OptionsFromConfig() = %+v", opts)
	}
}

func TestScoreboardRecord(t *testing.T) {
	var s Scoreboard
	s.Record(domain.OutcomeWin, domain.PlayerTwo)
	s.Record(domain.OutcomeDraw, domain.PlayerOne)
	s.Record(domain.OutcomeContinue, domain.PlayerOne)

	if s.Wins != [2]int{0, 1} || s.Draws != 1 || s.Played() != 2 {
		t.Fatalf("Scoreboard = %+v", s)
	}
}
