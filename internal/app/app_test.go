package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/04pril/mega-guess/internal/score"
	"github.com/04pril/mega-guess/internal/session"
	"github.com/04pril/mega-guess/internal/sound"
)

type fixed int

func (f fixed) Intn(int) int { return int(f) - session.MinSecret }

type recorder struct{ cues []sound.Cue }

func (r *recorder) Play(c sound.Cue) { r.cues = append(r.cues, c) }

func (r *recorder) count(c sound.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

func newApp(t *testing.T, secret, best int) (*App, *score.Store, *recorder) {
	t.Helper()
	store := score.NewStore(filepath.Join(t.TempDir(), "megascore.txt"))
	if best != score.Sentinel {
		if err := store.Save(best); err != nil {
			t.Fatalf("seed best: %v", err)
		}
	}
	rec := &recorder{}
	return New(score.NewTracker(store.Load(), store), rec, fixed(secret)), store, rec
}

func guess(a *App, s string) {
	a.TypeRunes([]rune(s))
	a.SubmitGuess()
}

func TestScenarioSetsFirstBest(t *testing.T) {
	a, store, rec := newApp(t, 42, score.Sentinel)
	if a.BestLabel() != "Best: None" {
		t.Fatalf("initial label %q", a.BestLabel())
	}
	a.Start()

	guess(a, "10")
	if a.Hint() != session.HintTooLow.String() {
		t.Fatalf("hint after 10 = %q", a.Hint())
	}
	guess(a, "90")
	if a.Hint() != session.HintTooHigh.String() {
		t.Fatalf("hint after 90 = %q", a.Hint())
	}
	guess(a, "42")

	o, ok := a.Outcome()
	if !ok || !o.Won || o.Guesses != 3 || !o.NewBest {
		t.Fatalf("outcome = %+v, %v", o, ok)
	}
	if o.Message() != "Got it in 3 guesses!" {
		t.Fatalf("message %q", o.Message())
	}
	if got := store.Load(); got != 3 {
		t.Fatalf("stored best = %d, want 3", got)
	}
	if a.BestLabel() != "Best: 3" {
		t.Fatalf("label %q", a.BestLabel())
	}
	if rec.count(sound.CueMiss) != 2 || rec.count(sound.CueWin) != 1 {
		t.Fatalf("cues = %v", rec.cues)
	}
}

func TestWorseWinKeepsBest(t *testing.T) {
	a, store, _ := newApp(t, 42, 2)
	a.Start()
	guess(a, "1")
	guess(a, "2")
	guess(a, "42")

	o, _ := a.Outcome()
	if o.NewBest {
		t.Fatal("3 guesses reported as new best over 2")
	}
	if got := store.Load(); got != 2 {
		t.Fatalf("stored best = %d, want 2", got)
	}
}

func TestTimeoutLoses(t *testing.T) {
	a, store, rec := newApp(t, 77, score.Sentinel)
	a.Start()

	for i := 0; i < 9; i++ {
		a.Advance(time.Second)
	}
	if a.Status() != session.StatusRunning || a.Remaining() != 1 {
		t.Fatalf("after 9s: status=%v remaining=%d", a.Status(), a.Remaining())
	}
	a.Advance(time.Second)

	o, ok := a.Outcome()
	if !ok || o.Won || o.Message() != "Time out! It was 77" {
		t.Fatalf("outcome = %+v, %v", o, ok)
	}
	if a.Remaining() != 0 || a.Status() != session.StatusLost {
		t.Fatalf("remaining=%d status=%v", a.Remaining(), a.Status())
	}
	if rec.count(sound.CueTick) != 9 || rec.count(sound.CueLose) != 1 {
		t.Fatalf("cues = %v", rec.cues)
	}

	a.Advance(5 * time.Second)
	if a.Remaining() != 0 || rec.count(sound.CueTick) != 9 {
		t.Fatal("clock kept running after loss")
	}
	if got := store.Load(); got != score.Sentinel {
		t.Fatalf("loss wrote best %d", got)
	}
}

func TestWinStopsClock(t *testing.T) {
	a, _, rec := newApp(t, 5, score.Sentinel)
	a.Start()
	a.Advance(3 * time.Second)
	guess(a, "5")
	a.Advance(20 * time.Second)

	if a.Remaining() != 7 || a.Status() != session.StatusWon {
		t.Fatalf("remaining=%d status=%v", a.Remaining(), a.Status())
	}
	if rec.count(sound.CueLose) != 0 || rec.count(sound.CueTick) != 3 {
		t.Fatalf("cues = %v", rec.cues)
	}
}

func TestNonNumericEntryIsNoop(t *testing.T) {
	a, _, rec := newApp(t, 50, score.Sentinel)
	a.Start()
	a.TypeRunes([]rune("-"))
	a.SubmitGuess()

	if a.Guesses() != 0 || a.Entry() != "-" || len(rec.cues) != 0 {
		t.Fatalf("guesses=%d entry=%q cues=%v", a.Guesses(), a.Entry(), rec.cues)
	}
	a.SubmitGuess()
	if a.Guesses() != 0 {
		t.Fatalf("guesses=%d", a.Guesses())
	}
}

func TestEntryFiltering(t *testing.T) {
	a, _, _ := newApp(t, 50, score.Sentinel)

	a.TypeRunes([]rune("12"))
	if a.Entry() != "" {
		t.Fatalf("typed before start: %q", a.Entry())
	}

	a.Start()
	a.TypeRunes([]rune("a1-2b34567"))
	if a.Entry() != "1234" {
		t.Fatalf("entry = %q, want 1234", a.Entry())
	}
	a.Backspace()
	if a.Entry() != "123" {
		t.Fatalf("after backspace = %q", a.Entry())
	}
	a.SubmitGuess()
	if a.Entry() != "" || a.Guesses() != 1 {
		t.Fatalf("after submit entry=%q guesses=%d", a.Entry(), a.Guesses())
	}
}

func TestStartGating(t *testing.T) {
	a, _, _ := newApp(t, 50, score.Sentinel)
	if !a.StartEnabled() || a.InputEnabled() {
		t.Fatal("idle app gating wrong")
	}
	a.Start()
	guess(a, "10")
	a.Start()
	if a.Guesses() != 1 {
		t.Fatal("start while running reset the round")
	}
	if a.StartEnabled() || !a.InputEnabled() {
		t.Fatal("running app gating wrong")
	}

	guess(a, "50")
	if a.StartEnabled() || a.InputEnabled() {
		t.Fatal("controls enabled while result is shown")
	}
	a.Start()
	if _, ok := a.Outcome(); !ok {
		t.Fatal("start dismissed the result")
	}

	a.DismissOutcome()
	if !a.StartEnabled() {
		t.Fatal("start disabled after dismiss")
	}
	a.Start()
	if a.Guesses() != 0 || a.Remaining() != session.RoundSeconds || a.Status() != session.StatusRunning {
		t.Fatalf("restart: guesses=%d remaining=%d status=%v", a.Guesses(), a.Remaining(), a.Status())
	}
}

func TestToggleTheme(t *testing.T) {
	a, _, _ := newApp(t, 1, score.Sentinel)
	if a.Theme() != ThemeDark {
		t.Fatalf("initial theme %v", a.Theme())
	}
	a.ToggleTheme()
	if a.Theme() != ThemeLight {
		t.Fatalf("after toggle %v", a.Theme())
	}
	a.ToggleTheme()
	if a.Theme() != ThemeDark {
		t.Fatalf("after second toggle %v", a.Theme())
	}
}
