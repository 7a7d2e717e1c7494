// Package app holds all mutable game state and the actions that change it.
//
// The view reads from App and forwards input to it; nothing here touches the
// window, so every rule can be exercised headless.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/04pril/mega-guess/internal/countdown"
	"github.com/04pril/mega-guess/internal/score"
	"github.com/04pril/mega-guess/internal/session"
	"github.com/04pril/mega-guess/internal/sound"
)

const (
	maxEntryLen = 4
	idleHint    = "Press START to begin!"
	runningHint = "Guess a number from 1 to 100"
)

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Sounder plays feedback cues.
type Sounder interface {
	Play(c sound.Cue)
}

type mute struct{}

func (mute) Play(sound.Cue) {}

// Mute is a Sounder that plays nothing.
var Mute Sounder = mute{}

// Outcome is the modal shown when a round ends.
type Outcome struct {
	Won     bool
	Guesses int
	Secret  int
	NewBest bool
}

func (o Outcome) Title() string {
	if o.Won {
		return "Win!"
	}
	return "Lost"
}

func (o Outcome) Message() string {
	if o.Won {
		return fmt.Sprintf("Got it in %d guesses!", o.Guesses)
	}
	return fmt.Sprintf("Time out! It was %d", o.Secret)
}

type App struct {
	sess    *session.Session
	clock   *countdown.Driver
	best    *score.Tracker
	sounds  Sounder
	theme   Theme
	entry   []rune
	hint    string
	outcome *Outcome
}

func New(best *score.Tracker, sounds Sounder, pick session.Picker) *App {
	if sounds == nil {
		sounds = Mute
	}
	a := &App{
		sess:   session.New(pick),
		best:   best,
		sounds: sounds,
		hint:   idleHint,
	}
	a.clock = countdown.New(time.Second, a.sess.Running, a.tick)
	return a
}

func (a *App) Theme() Theme { return a.theme }

func (a *App) ToggleTheme() {
	if a.theme == ThemeDark {
		a.theme = ThemeLight
	} else {
		a.theme = ThemeDark
	}
	log.Debug().Stringer("theme", a.theme).Msg("theme changed")
}

// Start opens a new round. It is ignored while a round runs or a result is
// still on screen.
func (a *App) Start() {
	if !a.StartEnabled() {
		return
	}
	if err := a.sess.Start(); err != nil {
		log.Debug().Err(err).Msg("start ignored")
		return
	}
	a.clock.Reset()
	a.entry = a.entry[:0]
	a.hint = runningHint
	log.Info().Str("session", a.sess.ID()).Msg("round started")
}

// TypeRunes appends typed characters to the entry. Only digits and a leading
// minus sign are kept.
func (a *App) TypeRunes(rs []rune) {
	if !a.InputEnabled() {
		return
	}
	for _, r := range rs {
		if len(a.entry) >= maxEntryLen {
			return
		}
		switch {
		case r >= '0' && r <= '9':
			a.entry = append(a.entry, r)
		case r == '-' && len(a.entry) == 0:
			a.entry = append(a.entry, r)
		}
	}
}

func (a *App) Backspace() {
	if !a.InputEnabled() || len(a.entry) == 0 {
		return
	}
	a.entry = a.entry[:len(a.entry)-1]
}

// SubmitGuess sends the entry to the session. Text that is not a number is
// left in place and nothing else happens.
func (a *App) SubmitGuess() {
	if !a.InputEnabled() {
		return
	}
	res, err := a.sess.Guess(string(a.entry))
	if errors.Is(err, session.ErrNotANumber) {
		return
	}
	if err != nil {
		log.Debug().Err(err).Msg("guess ignored")
		return
	}
	a.entry = a.entry[:0]
	log.Debug().
		Str("session", a.sess.ID()).
		Int("value", res.Value).
		Int("guesses", res.Guesses).
		Stringer("hint", res.Hint).
		Msg("guess")

	if res.Won {
		a.finish()
		return
	}
	a.hint = res.Hint.String()
	a.sounds.Play(sound.CueMiss)
}

// Advance moves the round clock forward by dt.
func (a *App) Advance(dt time.Duration) {
	a.clock.Advance(dt)
}

func (a *App) tick() {
	if !a.sess.Tick() {
		return
	}
	if a.sess.Running() {
		a.sounds.Play(sound.CueTick)
		return
	}
	a.finish()
}

func (a *App) finish() {
	o := Outcome{
		Won:     a.sess.Status() == session.StatusWon,
		Guesses: a.sess.Guesses(),
		Secret:  a.sess.Secret(),
	}
	if o.Won {
		a.sounds.Play(sound.CueWin)
		improved, err := a.best.Record(o.Guesses)
		if err != nil {
			log.Error().Err(err).Int("best", o.Guesses).Msg("failed to save best score")
		}
		o.NewBest = improved
	} else {
		a.sounds.Play(sound.CueLose)
	}
	a.entry = a.entry[:0]
	a.hint = idleHint
	a.outcome = &o

	log.Info().
		Str("session", a.sess.ID()).
		Stringer("status", a.sess.Status()).
		Int("guesses", o.Guesses).
		Int("secret", o.Secret).
		Int("best", a.best.Best()).
		Msg("round over")
}

// Outcome returns the result awaiting dismissal, if any.
func (a *App) Outcome() (Outcome, bool) {
	if a.outcome == nil {
		return Outcome{}, false
	}
	return *a.outcome, true
}

func (a *App) DismissOutcome() { a.outcome = nil }

func (a *App) InputEnabled() bool { return a.sess.Running() && a.outcome == nil }
func (a *App) StartEnabled() bool { return !a.sess.Running() && a.outcome == nil }

func (a *App) Entry() string { return string(a.entry) }
func (a *App) Hint() string { return a.hint }
func (a *App) Remaining() int { return a.sess.Remaining() }
func (a *App) Guesses() int { return a.sess.Guesses() }
func (a *App) BestLabel() string { return a.best.Label() }

func (a *App) Status() session.Status { return a.sess.Status() }
