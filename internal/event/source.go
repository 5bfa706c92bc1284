// Package event multiplexes key input and timer ticks into one ordered stream.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/typespeed/internal/model"
)

// DefaultTickRate is the interval between Tick events.
const DefaultTickRate = 250 * time.Millisecond

// ErrInputClosed is returned by a Poller when no further input can arrive.
var ErrInputClosed = errors.New("input closed")

// Kind distinguishes event types.
type Kind int

const (
	Input Kind = iota
	Tick
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Tick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event is one item of the stream. Key is only set for Input.
type Event struct {
	Kind Kind
	Key  model.Key
	At   time.Time
}

// Poller waits up to timeout for the next key. ok is false when the wait
// timed out.
type Poller interface {
	Poll(ctx context.Context, timeout time.Duration) (key model.Key, ok bool, err error)
}

// Config tunes a Source. Zero values select defaults.
type Config struct {
	TickRate     time.Duration
	PollInterval time.Duration
	Clock        Clock
}

// Source produces Input and Tick events from a Poller.
type Source struct {
	poller Poller
	cfg    Config
}

// NewSource returns a Source reading keys from poller.
func NewSource(poller Poller, cfg Config) *Source {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.PollInterval <= 0 || cfg.PollInterval > cfg.TickRate {
		cfg.PollInterval = cfg.TickRate
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	return &Source{poller: poller, cfg: cfg}
}

// Run emits events on out until ctx is cancelled or the input closes, then
// closes out. Losing the consumer is not an error. The tick check runs every
// iteration, so a stream of keys cannot starve ticks.
func (s *Source) Run(ctx context.Context, out chan<- Event) error {
	defer close(out)

	clock := s.cfg.Clock
	lastTick := clock.Now()
	for {
		if ctx.Err() != nil {
			return nil
		}

		wait := s.cfg.TickRate - clock.Now().Sub(lastTick)
		if wait > s.cfg.PollInterval {
			wait = s.cfg.PollInterval
		}
		if wait < 0 {
			wait = 0
		}

		key, ok, err := s.poller.Poll(ctx, wait)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, ErrInputClosed) {
				return nil
			}
			return fmt.Errorf("failed to poll input: %w", err)
		}
		if ok && !send(ctx, out, Event{Kind: Input, Key: key, At: clock.Now()}) {
			return nil
		}

		now := clock.Now()
		if now.Sub(lastTick) >= s.cfg.TickRate {
			if !send(ctx, out, Event{Kind: Tick, At: now}) {
				return nil
			}
			lastTick = now
		}
	}
}

func send(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
