package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	// MinTarget is the smallest value the secret number can take
	MinTarget uint32 = 1
	// MaxTarget is the largest value the secret number can take
	MaxTarget uint32 = 100
)

var (
	// ErrMalformedGuess is returned when a line cannot be parsed as a guess.
	// The game loop recovers from it by prompting again.
	ErrMalformedGuess = errors.New("malformed guess")
	// ErrInputFailed is returned when the input stream cannot supply another line
	ErrInputFailed = errors.New("failed to read line")
	// ErrGameOver is returned when a guess is submitted to a game that was already won
	ErrGameOver = errors.New("game is already won")
)

// Outcome is the ordering of a guess relative to the secret number
type Outcome int

const (
	Less Outcome = iota
	Greater
	Equal
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Equal:
		return "equal"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Feedback returns the text shown to the player for this outcome
func (o Outcome) Feedback() string {
	switch o {
	case Less:
		return "Too small!"
	case Greater:
		return "Too big!"
	case Equal:
		return "You win!"
	default:
		return ""
	}
}

// State is a position in the game's state machine
type State int

const (
	AwaitingInput State = iota
	Evaluating
	Won
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RandomInRange returns a number between min and max inclusive.
func RandomInRange(min, max uint32) uint32 {
	if min > max {
		panic(fmt.Sprintf("min cannot be greater than max: min=%d max=%d", min, max))
	}
	if min == max {
		return min
	}
	return min + rand.Uint32N(max-min+1)
}

// RandomTarget picks a secret number uniformly from [MinTarget, MaxTarget]
func RandomTarget() uint32 {
	return RandomInRange(MinTarget, MaxTarget)
}

// ParseGuess trims surrounding whitespace from line and parses it as an
// unsigned base-10 integer. A single leading '+' is allowed.
func ParseGuess(line string) (uint32, error) {
	text := strings.TrimSpace(line)
	n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedGuess, text)
	}
	return uint32(n), nil
}

// Compare orders guess against target
func Compare(guess, target uint32) Outcome {
	switch {
	case guess < target:
		return Less
	case guess > target:
		return Greater
	default:
		return Equal
	}
}

// Result is the evaluation of one parsed guess
type Result struct {
	Guess   uint32
	Outcome Outcome
}

// Game holds the secret number and drives the read/compare cycle.
type Game struct {
	target  uint32
	state   State
	in      *bufio.Reader
	out     io.Writer
	metrics *Metrics
}

// GameOption customises a Game at construction time
type GameOption func(*Game)

// WithMetrics records every guess and the game duration on m
func WithMetrics(m *Metrics) GameOption {
	return func(g *Game) {
		g.metrics = m
	}
}

// NewGame creates a game for target reading guesses from in and writing
// prompts and feedback to out.
func NewGame(target uint32, in io.Reader, out io.Writer, opts ...GameOption) *Game {
	g := &Game{
		target: target,
		state:  AwaitingInput,
		in:     bufio.NewReader(in),
		out:    out,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Target returns the secret number
func (g *Game) Target() uint32 {
	return g.target
}

// State returns where the game currently is in its state machine
func (g *Game) State() State {
	return g.state
}

// Submit evaluates one line of input. Malformed lines return an error
// wrapping ErrMalformedGuess and leave the game unchanged.
func (g *Game) Submit(line string) (Result, error) {
	if g.state == Won {
		return Result{}, ErrGameOver
	}

	guess, err := ParseGuess(line)
	if err != nil {
		g.metrics.observeMalformed()
		return Result{}, err
	}

	g.state = Evaluating
	outcome := Compare(guess, g.target)
	if outcome == Equal {
		g.state = Won
	} else {
		g.state = AwaitingInput
	}
	g.metrics.observeOutcome(outcome)

	Logger.Debug().
		Uint32("guess", guess).
		Str("outcome", outcome.String()).
		Str("state", g.state.String()).
		Msg("Guess evaluated")

	return Result{Guess: guess, Outcome: outcome}, nil
}

// Play runs the game until the player wins. It returns an error wrapping
// ErrInputFailed if the input stream closes or fails first.
func (g *Game) Play() error {
	logger := WithOperation("play")
	logger.Debug().Uint32("target", g.target).Msg("Secret number chosen")

	start := time.Now()
	fmt.Fprintln(g.out, "Guess the number!")

	for g.state != Won {
		fmt.Fprintln(g.out, "Please input your guess.")

		line, err := g.readLine()
		if err != nil {
			logger.Error().Err(err).Msg("Input stream failed")
			return err
		}

		result, err := g.Submit(line)
		if errors.Is(err, ErrMalformedGuess) {
			logger.Debug().Str("input", strings.TrimSpace(line)).Msg("Ignoring malformed guess")
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(g.out, "You guessed: %d\n", result.Guess)
		fmt.Fprintln(g.out, result.Outcome.Feedback())
	}

	elapsed := time.Since(start)
	g.metrics.observeWin(elapsed)
	logger.Debug().Dur("elapsed", elapsed).Msg("Game won")
	return nil
}

// readLine returns the next line of input. A final line without a
// trailing newline is still returned; only a read that yields nothing
// is treated as a failure.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("%w: %w", ErrInputFailed, err)
	}
	return line, nil
}
