// Package typing implements the timed typing round and its key routing.
package typing

import (
	"time"
	"unicode"
)

// Delimiter submits the word in progress.
const Delimiter = ' '

const (
	DefaultDuration = 30 * time.Second
	DefaultWords    = 200
	DefaultPreview  = 10
)

// State is the lifecycle phase of a round.
type State int

const (
	StateIdle State = iota
	StateActive
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Sampler draws a word queue from a dictionary.
type Sampler interface {
	Sample(words []string, count int) []string
}

// Round is the typing-test state machine. It is not safe for concurrent use;
// a single dispatch goroutine owns it.
type Round struct {
	dict     []string
	sampler  Sampler
	words    int
	duration time.Duration

	state     State
	startedAt time.Time

	queue []string
	typed []rune

	wordsTried   []string
	wordsEntered []string

	charsCorrect int
	charsWrong   int
}

// NewRound builds an idle round with a freshly sampled queue. dict is held
// read-only.
func NewRound(dict []string, sampler Sampler, words int, duration time.Duration) *Round {
	if words <= 0 {
		words = DefaultWords
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	r := &Round{
		dict:     dict,
		sampler:  sampler,
		words:    words,
		duration: duration,
	}
	r.reset()
	return r
}

// OnTick completes an active round once its window has elapsed. It reports
// whether this call performed the transition.
func (r *Round) OnTick(now time.Time) bool {
	if r.state != StateActive {
		return false
	}
	if now.Sub(r.startedAt) < r.duration {
		return false
	}
	r.state = StateCompleted
	r.queue = nil
	return true
}

// OnCharacter handles a printable key. The delimiter submits the word; any
// other rune starts an idle round and is appended to the typed buffer.
// It reports whether the round was started by this key.
func (r *Round) OnCharacter(ch rune, shift bool, now time.Time) bool {
	if r.state == StateCompleted {
		return false
	}
	if shift {
		ch = unicode.ToUpper(ch)
	}
	if ch == Delimiter {
		// An idle round has an empty buffer and an untouched queue.
		if r.state == StateActive {
			r.submit()
		}
		return false
	}
	started := false
	if r.state == StateIdle {
		r.state = StateActive
		r.startedAt = now
		started = true
	}
	r.typed = append(r.typed, ch)
	return started
}

// OnBackspace drops the last typed rune.
func (r *Round) OnBackspace() {
	if len(r.typed) == 0 {
		return
	}
	r.typed = r.typed[:len(r.typed)-1]
}

// OnConfirm resets a completed round to idle with a new queue. It reports
// whether the reset happened.
func (r *Round) OnConfirm() bool {
	if r.state != StateCompleted {
		return false
	}
	r.reset()
	return true
}

// submit scores the typed buffer against the front of the queue. Only the
// overlapping prefix is scored: extra runes on either side count neither way.
func (r *Round) submit() {
	if len(r.queue) == 0 {
		r.typed = r.typed[:0]
		return
	}
	target := []rune(r.queue[0])
	n := len(target)
	if len(r.typed) < n {
		n = len(r.typed)
	}
	for i := 0; i < n; i++ {
		if r.typed[i] == target[i] {
			r.charsCorrect++
		} else {
			r.charsWrong++
		}
	}
	r.wordsEntered = append(r.wordsEntered, string(r.typed))
	r.wordsTried = append(r.wordsTried, r.queue[0])
	r.queue = r.queue[1:]
	r.typed = r.typed[:0]
}

func (r *Round) reset() {
	r.state = StateIdle
	r.queue = r.sampler.Sample(r.dict, r.words)
	r.typed = nil
	r.wordsTried = nil
	r.wordsEntered = nil
	r.charsCorrect = 0
	r.charsWrong = 0
}

// State returns the current lifecycle phase.
func (r *Round) State() State { return r.state }

// StartedAt returns the instant the round became active.
func (r *Round) StartedAt() time.Time { return r.startedAt }

// Duration returns the round window.
func (r *Round) Duration() time.Duration { return r.duration }

// Elapsed returns the time spent in the current round.
func (r *Round) Elapsed(now time.Time) time.Duration {
	switch r.state {
	case StateActive:
		return now.Sub(r.startedAt)
	case StateCompleted:
		return r.duration
	default:
		return 0
	}
}

// Queue returns a copy of the remaining words.
func (r *Round) Queue() []string { return append([]string(nil), r.queue...) }

// QueueLen returns the number of remaining words.
func (r *Round) QueueLen() int { return len(r.queue) }

// Typed returns the word in progress.
func (r *Round) Typed() string { return string(r.typed) }

// CharsCorrect returns the correct character count.
func (r *Round) CharsCorrect() int { return r.charsCorrect }

// CharsWrong returns the wrong character count.
func (r *Round) CharsWrong() int { return r.charsWrong }

// WordsTried returns a copy of the target words submitted against.
func (r *Round) WordsTried() []string { return append([]string(nil), r.wordsTried...) }

// WordsEntered returns a copy of the raw submitted buffers.
func (r *Round) WordsEntered() []string { return append([]string(nil), r.wordsEntered...) }
