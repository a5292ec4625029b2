package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
)

type line struct {
	text string
	err  error
}

// Console draws the game on a writer and reads player input line by line.
type Console struct {
	out         io.Writer
	scanner     *bufio.Scanner
	lines       chan line
	start       sync.Once
	showReasons bool
}

var (
	_ game.Presenter = (*Console)(nil)
	_ game.Prompter  = (*Console)(nil)
)

// NewConsole returns a console over in and out. With showReasons set an
// invalid move also prints why it was rejected.
func NewConsole(in io.Reader, out io.Writer, showReasons bool) *Console {
	return &Console{
		out:         out,
		scanner:     bufio.NewScanner(in),
		lines:       make(chan line),
		showReasons: showReasons,
	}
}

// ReadLine blocks until a line arrives or ctx is done. The scanner runs in
// its own goroutine so a blocked read does not hold up cancellation.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.start.Do(func() {
		go c.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (c *Console) scan() {
	defer close(c.lines)

	for c.scanner.Scan() {
		c.lines <- line{text: c.scanner.Text()}
	}

	err := c.scanner.Err()
	if err == nil {
		err = io.EOF
	}
	c.lines <- line{err: err}
}

func (c *Console) Title() {
	c.println("Connect Four")
}

func (c *Console) AskName(player domain.Player) {
	c.printf("Player %d, enter your name:\n", int(player)+1)
}

func (c *Console) ShowBoard(board *domain.Board) {
	c.println(board.Render())
}

func (c *Console) AnnounceTurn(name string) {
	c.printf("%s, it's your turn to move\n", name)
}

func (c *Console) InvalidMove(reason error) {
	if c.showReasons && reason != nil {
		c.printf("Invalid move. Please try again (%v)\n", reason)
		return
	}
	c.println("Invalid move. Please try again")
}

func (c *Console) AnnounceWinner(name string) {
	c.printf("%s is the winner!\n", name)
}

func (c *Console) AnnounceTie() {
	c.println("Game ends in a tie.")
}

func (c *Console) ShowScore(names [2]string, score game.Scoreboard) {
	c.printf("Score: %s %d - %d %s (draws: %d)\n",
		names[domain.PlayerOne], score.Wins[domain.PlayerOne],
		score.Wins[domain.PlayerTwo], names[domain.PlayerTwo], score.Draws)
}

func (c *Console) AskNewGame() {
	c.println("Would you like to start a new game? (type yes or no)")
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
