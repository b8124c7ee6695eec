package game

import (
	"log"
	"time"

	"git.lost.host/meutraa/flashcards/internal/score"
)

const DefaultDelay = 850 * time.Millisecond

type Outcome struct {
	Round  Round
	Answer Letter
	Score  score.State
}

// Controller owns the active round and the session score. It is not safe
// for concurrent use, everything runs on the event loop.
type Controller struct {
	Scorer score.Scorer
	Picker *Picker
	Delay  time.Duration

	// Called with every new round, including the first
	OnAdvance func(round Round)

	round   Round
	nextID  uint64
	pending *time.Timer
}

func NewController(scorer score.Scorer, picker *Picker, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Controller{Scorer: scorer, Picker: picker, Delay: delay}
}

// Start the first round
func (c *Controller) Start() Round {
	c.Stop()
	c.next()
	return c.round
}

func (c *Controller) Round() Round {
	return c.round
}

func (c *Controller) Score() score.State {
	return c.Scorer.State()
}

// Guess scores a letter against the current note. It is ignored before
// Start and while the round is already answered, so a round can only be
// scored once.
func (c *Controller) Guess(l Letter) (Outcome, bool) {
	if c.round.ID == 0 || c.round.Phase != AwaitingGuess || !l.Valid() {
		return Outcome{}, false
	}
	c.round.Guess = l
	c.round.Correct = l == c.round.Note.Name
	c.round.Phase = Answered
	state := c.Scorer.Record(c.round.Correct)
	log.Printf("round %v: %v guessed %v, correct=%v\n", c.round.ID, c.round.Note, l, c.round.Correct)

	c.pending = time.NewTimer(c.Delay)
	return Outcome{Round: c.round, Answer: c.round.Note.Name, Score: state}, true
}

// Pending fires when the answered round should advance. It is nil while
// nothing is scheduled, which blocks forever in a select.
func (c *Controller) Pending() <-chan time.Time {
	if c.pending == nil {
		return nil
	}
	return c.pending.C
}

// Advance replaces an answered round with a fresh one. A call without a
// scheduled advance does nothing.
func (c *Controller) Advance() bool {
	if c.pending == nil || c.round.Phase != Answered {
		return false
	}
	c.Stop()
	c.next()
	return true
}

// Stop cancels a scheduled advance
func (c *Controller) Stop() {
	if c.pending == nil {
		return
	}
	if !c.pending.Stop() {
		// Drain so the channel cannot be read later
		select {
		case <-c.pending.C:
		default:
		}
	}
	c.pending = nil
}

func (c *Controller) next() {
	c.nextID++
	c.round = Round{ID: c.nextID, Note: c.Picker.Pick(), Phase: AwaitingGuess}
	if c.OnAdvance != nil {
		c.OnAdvance(c.round)
	}
}
