package typing

import (
	"log"
	"time"

	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/stats"
)

// Options configures a Controller.
type Options struct {
	Words    int
	Duration time.Duration
	Preview  int
}

// DefaultOptions returns the standard 30s, 200 word round.
func DefaultOptions() Options {
	return Options{
		Words:    DefaultWords,
		Duration: DefaultDuration,
		Preview:  DefaultPreview,
	}
}

// Controller routes key events to a Round and owns the exit signal.
type Controller struct {
	round   *Round
	preview int
	exit    chan struct{}
	results []model.RoundResult
}

// NewController creates a controller over dict. The returned channel
// receives a value when the user asks to quit.
func NewController(dict []string, sampler Sampler, opts Options) (*Controller, <-chan struct{}) {
	if opts.Preview <= 0 {
		opts.Preview = DefaultPreview
	}
	exit := make(chan struct{}, 1)
	c := &Controller{
		round:   NewRound(dict, sampler, opts.Words, opts.Duration),
		preview: opts.Preview,
		exit:    exit,
	}
	return c, exit
}

// HandleKey applies a key press received at now.
func (c *Controller) HandleKey(key model.Key, now time.Time) {
	switch key.Code {
	case model.KeyEsc:
		c.RequestExit()
	case model.KeyBackspace:
		c.round.OnBackspace()
	case model.KeyEnter:
		if c.round.OnConfirm() {
			log.Printf("round reset: %d words queued", c.round.QueueLen())
		}
	case model.KeyRune:
		if key.Has(model.ModCtrl) {
			return
		}
		if c.round.OnCharacter(key.Rune, key.Has(model.ModShift), now) {
			log.Printf("round started at %s", now.Format(time.RFC3339))
		}
	}
}

// Tick advances the round clock.
func (c *Controller) Tick(now time.Time) {
	if !c.round.OnTick(now) {
		return
	}
	r := c.round
	result := stats.NewRoundResult(r.StartedAt(), now, r.Duration(), r.CharsCorrect(), r.CharsWrong(), len(r.wordsTried))
	c.results = append(c.results, result)
	log.Printf("round completed: %d wpm, %.1f%% accuracy, %d words", result.AdjustedWPM, result.Accuracy*100, result.Words)
}

// RequestExit signals shutdown intent without touching round state.
func (c *Controller) RequestExit() {
	select {
	case c.exit <- struct{}{}:
	default:
	}
}

// Round exposes the state machine for read access.
func (c *Controller) Round() *Round {
	return c.round
}

// Results returns the rounds completed so far.
func (c *Controller) Results() []model.RoundResult {
	return append([]model.RoundResult(nil), c.results...)
}
