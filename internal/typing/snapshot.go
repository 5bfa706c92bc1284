package typing

import (
	"time"

	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/stats"
)

// WordView is one upcoming word as the renderer sees it.
type WordView struct {
	Text    string
	Current bool
	// Matched is the length of the typed prefix that matches Text. Only set
	// on the current word.
	Matched  int
	Mistyped bool
}

// Snapshot is an immutable view of the controller for one redraw.
type Snapshot struct {
	State    State
	Upcoming []WordView
	Typed    string

	Duration  time.Duration
	Remaining int
	Progress  float64
	LiveWPM   int

	Result       *model.RoundResult
	WordsTried   []string
	WordsEntered []string
}

// Snapshot captures the state needed to draw the screen at now.
func (c *Controller) Snapshot(now time.Time) Snapshot {
	r := c.round
	elapsed := r.Elapsed(now)
	snap := Snapshot{
		State:        r.state,
		Upcoming:     upcoming(r.queue, r.typed, c.preview),
		Typed:        string(r.typed),
		Duration:     r.duration,
		Remaining:    stats.Remaining(r.duration, elapsed),
		LiveWPM:      stats.LiveWPM(r.charsCorrect, r.duration),
		WordsTried:   r.WordsTried(),
		WordsEntered: r.WordsEntered(),
	}
	if r.duration > 0 {
		snap.Progress = float64(elapsed) / float64(r.duration)
		if snap.Progress > 1 {
			snap.Progress = 1
		}
	}
	if r.state == StateCompleted && len(c.results) > 0 {
		result := c.results[len(c.results)-1]
		snap.Result = &result
	}
	return snap
}

func upcoming(queue []string, typed []rune, n int) []WordView {
	if n > len(queue) {
		n = len(queue)
	}
	views := make([]WordView, 0, n)
	for i := 0; i < n; i++ {
		view := WordView{Text: queue[i]}
		if i == 0 {
			view.Current = true
			view.Matched, view.Mistyped = matchPrefix([]rune(queue[i]), typed)
		}
		views = append(views, view)
	}
	return views
}

func matchPrefix(target, typed []rune) (int, bool) {
	if len(typed) > len(target) {
		return 0, true
	}
	for i, r := range typed {
		if target[i] != r {
			return 0, true
		}
	}
	return len(typed), false
}
