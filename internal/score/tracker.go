package score

import "fmt"

// Persister is the subset of Store the tracker writes through.
type Persister interface {
	Save(v int) error
}

// Tracker holds the best score for the running process.
type Tracker struct {
	best int
	p    Persister
}

func NewTracker(best int, p Persister) *Tracker {
	return &Tracker{best: best, p: p}
}

func (t *Tracker) Best() int { return t.best }

// HasBest reports whether a win has ever been recorded.
func (t *Tracker) HasBest() bool { return t.best < Sentinel }

// Record applies a winning round. The best only moves down, and a new best
// is persisted immediately. The in-memory best is updated even if the write
// fails.
func (t *Tracker) Record(guesses int) (bool, error) {
	if guesses >= t.best {
		return false, nil
	}
	t.best = guesses
	if err := t.p.Save(guesses); err != nil {
		return true, err
	}
	return true, nil
}

func (t *Tracker) Label() string {
	if !t.HasBest() {
		return "Best: None"
	}
	return fmt.Sprintf("Best: %d", t.best)
}
