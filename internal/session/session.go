// Package session holds the state of one guessing round.
//
// A round moves Idle -> Running -> Won or Lost. Starting again from Won or
// Lost opens a fresh round with a new secret.
package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	MinSecret = 1
	MaxSecret = 100
	// RoundSeconds is the countdown length of a round.
	RoundSeconds = 10
)

var (
	ErrNotANumber = errors.New("guess is not an integer")
	ErrNotRunning = errors.New("no round in progress")
	ErrRunning    = errors.New("round already in progress")
)

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "idle"
	}
}

// Ended reports whether the round is over.
func (s Status) Ended() bool { return s == StatusWon || s == StatusLost }

type Hint int

const (
	HintNone Hint = iota
	HintTooLow
	HintTooHigh
)

func (h Hint) String() string {
	switch h {
	case HintTooLow:
		return "Too LOW ^"
	case HintTooHigh:
		return "Too HIGH v"
	default:
		return ""
	}
}

// Picker draws the secret; *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Result describes the effect of one accepted guess.
type Result struct {
	Value   int
	Hint    Hint
	Won     bool
	Guesses int
}

type Session struct {
	id        string
	secret    int
	remaining int
	guesses   int
	status    Status
	pick      Picker
}

func New(p Picker) *Session {
	return &Session{pick: p, remaining: RoundSeconds}
}

// Start opens a new round. It fails only while a round is running.
func (s *Session) Start() error {
	if s.status == StatusRunning {
		return ErrRunning
	}
	s.id = uuid.NewString()
	s.secret = MinSecret + s.pick.Intn(MaxSecret-MinSecret+1)
	s.remaining = RoundSeconds
	s.guesses = 0
	s.status = StatusRunning
	return nil
}

// Tick consumes one second. The round is lost when the clock reaches zero.
// It returns false when nothing changed.
func (s *Session) Tick() bool {
	if s.status != StatusRunning || s.remaining <= 0 {
		return false
	}
	s.remaining--
	if s.remaining == 0 {
		s.status = StatusLost
	}
	return true
}

// Guess applies raw player input. Input that is not an integer returns
// ErrNotANumber and leaves the round untouched.
func (s *Session) Guess(input string) (Result, error) {
	v, ok := ParseGuess(input)
	if !ok {
		return Result{}, ErrNotANumber
	}
	if s.status != StatusRunning {
		return Result{}, ErrNotRunning
	}

	s.guesses++
	res := Result{Value: v, Guesses: s.guesses}
	switch {
	case v == s.secret:
		s.status = StatusWon
		res.Won = true
	case v > s.secret:
		res.Hint = HintTooHigh
	default:
		res.Hint = HintTooLow
	}
	return res, nil
}

// ParseGuess parses a decimal integer, ignoring surrounding whitespace.
func ParseGuess(input string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return v, true
}

func (s *Session) ID() string { return s.id }
func (s *Session) Secret() int { return s.secret }
func (s *Session) Remaining() int { return s.remaining }
func (s *Session) Guesses() int { return s.guesses }
func (s *Session) Status() Status { return s.status }
func (s *Session) Running() bool { return s.status == StatusRunning }
