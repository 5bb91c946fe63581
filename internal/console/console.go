// Package console runs a two-player game over a line-oriented text stream.
// Each turn the player types the row and column of a piece, then the row
// and column of its destination.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hailam/gridchess/internal/board"
	"github.com/hailam/gridchess/internal/storage"
)

// ErrInputClosed is returned by Run when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Recorder stores finished games.
type Recorder interface {
	RecordGame(result storage.GameResult) error
}

// Console plays one game between two humans sharing a terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	position *board.Position
	renderer Renderer
	hints    bool
	welcome  bool
	recorder Recorder

	resigned bool
	started  time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer sets how the board is drawn.
func WithRenderer(r Renderer) Option {
	return func(c *Console) { c.renderer = r }
}

// WithHints marks legal destinations after a piece is selected.
func WithHints(on bool) Option {
	return func(c *Console) { c.hints = on }
}

// WithWelcome prints the instructions before the first move.
func WithWelcome(on bool) Option {
	return func(c *Console) { c.welcome = on }
}

// WithRecorder stores the result when the game ends.
func WithRecorder(r Recorder) Option {
	return func(c *Console) { c.recorder = r }
}

// WithPosition starts from pos instead of the standard setup.
func WithPosition(pos *board.Position) Option {
	return func(c *Console) { c.position = pos }
}

// New creates a console reading moves from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		position: board.NewGame(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Position returns the current position.
func (c *Console) Position() *board.Position {
	return c.position
}

// Run plays until checkmate, stalemate or resignation.
func (c *Console) Run() error {
	c.started = time.Now()
	if c.welcome {
		c.printWelcome()
	}

	for !c.finished() {
		c.printBoard(nil)

		from, to, err := c.readMove()
		if err != nil {
			return err
		}
		if c.resigned {
			break
		}

		next, err := board.Play(c.position, from, to)
		if err != nil {
			// readMove only returns legal destinations.
			return errors.Wrap(err, "apply selected move")
		}
		c.position = next
	}

	c.printBoard(nil)
	c.printGameEnd()
	return c.record()
}

func (c *Console) finished() bool {
	return c.resigned || board.Status(c.position).Over()
}

// readMove loops until the player picks a piece and a legal destination,
// or resigns.
func (c *Console) readMove() (board.Square, board.Square, error) {
	for {
		from, err := c.selectPiece()
		if err != nil || c.resigned {
			return board.NoSquare, board.NoSquare, err
		}

		legal := board.LegalMoves(c.position, from)
		if c.hints {
			c.printBoard(legal)
		}
		c.println("Please type the coordinates of your target square.")

		to, ok, err := c.selectTarget(legal)
		if err != nil {
			return board.NoSquare, board.NoSquare, err
		}
		if !ok {
			c.printBoard(nil)
			continue
		}
		return from, to, nil
	}
}

// selectPiece reads coordinates until they name a piece of the side to move.
func (c *Console) selectPiece() (board.Square, error) {
	for {
		fields, err := c.readFields()
		if err != nil {
			return board.NoSquare, err
		}
		if len(fields) == 1 && strings.EqualFold(fields[0], "quit") {
			c.resigned = true
			return board.NoSquare, nil
		}
		if len(fields) != 2 {
			c.println("\t\tPlease input two integers, or else 'quit' to concede.")
			continue
		}

		sq, ok := c.parseSquare(fields)
		if !ok {
			continue
		}

		piece := c.position.PieceAt(sq)
		switch {
		case piece.IsEmpty():
			c.printf("There is no piece on square %s.\n", sq.Coords())
		case piece.Color != c.position.SideToMove():
			c.println("That is not one of your pieces.")
		default:
			return sq, nil
		}
	}
}

// selectTarget reads coordinates until they name one of legal. ok is false
// when the player cancels the selection.
func (c *Console) selectTarget(legal []board.Square) (board.Square, bool, error) {
	for {
		fields, err := c.readFields()
		if err != nil {
			return board.NoSquare, false, err
		}
		if len(fields) == 1 && strings.EqualFold(fields[0], "cancel") {
			return board.NoSquare, false, nil
		}
		if len(fields) != 2 {
			c.println("\t\tPlease input two integers, or else 'cancel' to choose another piece.")
			continue
		}

		sq, valid := c.parseSquare(fields)
		if !valid {
			continue
		}
		for _, dest := range legal {
			if dest == sq {
				return sq, true, nil
			}
		}
		c.println("That is not a legal move for that piece.")
	}
}

// parseSquare validates a "row column" pair before it reaches the engine.
func (c *Console) parseSquare(fields []string) (board.Square, bool) {
	row, errRow := strconv.Atoi(fields[0])
	col, errCol := strconv.Atoi(fields[1])
	if errRow != nil || errCol != nil {
		c.println("Please input two integers.")
		return board.NoSquare, false
	}
	if row < 0 || row > 7 || col < 0 || col > 7 {
		c.println("Please ensure that both integers are between 0 and 7.")
		return board.NoSquare, false
	}
	return board.NewSquare(row, col), true
}

func (c *Console) readFields() ([]string, error) {
	for c.in.Scan() {
		fields := strings.Fields(c.in.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := c.in.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return nil, ErrInputClosed
}

func (c *Console) printWelcome() {
	c.println("Welcome to Grid Chess!")
	c.println("Each turn, type two numbers to select a chess piece by row and column, like so: '6 4'.")
	c.println("Then type two numbers to select its destination square, or type 'cancel' to select a different piece.")
	c.println("If you select a chess piece that you do not control, or you try to make an illegal move, you will be prompted to type in a new selection.")
	c.println("When selecting your piece to move, you may type 'quit' to concede the game.")
}

func (c *Console) printBoard(marks []board.Square) {
	c.renderer.Render(c.out, c.position, marks)
	if !c.finished() {
		if board.InCheck(c.position) {
			c.printf("%s is in check.\n", c.position.SideToMove())
		}
		c.printf("%s to move.\n", c.position.SideToMove())
	}
}

func (c *Console) printGameEnd() {
	us := c.position.SideToMove()
	them := us.Other()
	switch {
	case c.resigned:
		c.printf("%s wins by resignation.\n", them)
	case board.Status(c.position) == board.Checkmate:
		c.printf("%s has no legal moves.\n", us)
		c.println("Checkmate.")
		c.printf("%s wins by checkmate.\n", them)
	case board.Status(c.position) == board.Stalemate:
		c.printf("%s has no legal moves.\n", us)
		c.println("Stalemate.")
		c.println("The game ends in a draw.")
	}
}

// Result describes how the game ended. It is only meaningful after Run.
func (c *Console) Result() storage.GameResult {
	result := storage.GameResult{
		Plies:    c.position.Ply(),
		Duration: time.Since(c.started),
	}
	winner := c.position.SideToMove().Other().String()
	switch {
	case c.resigned:
		result.Outcome = storage.OutcomeResignation
		result.Winner = winner
	case board.Status(c.position) == board.Checkmate:
		result.Outcome = storage.OutcomeCheckmate
		result.Winner = winner
	default:
		result.Outcome = storage.OutcomeStalemate
	}
	return result
}

func (c *Console) record() error {
	if c.recorder == nil {
		return nil
	}
	return errors.Wrap(c.recorder.RecordGame(c.Result()), "record game")
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
