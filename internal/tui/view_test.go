package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/typing"
)

func TestInfoLine(t *testing.T) {
	if got := infoLine(typing.Snapshot{State: typing.StateIdle}); got != "---" {
		t.Fatalf("unexpected idle info: %q", got)
	}
	active := typing.Snapshot{State: typing.StateActive, Remaining: 17, LiveWPM: 42}
	if got := infoLine(active); got != "17s | ~42 wpm" {
		t.Fatalf("unexpected active info: %q", got)
	}
	done := typing.Snapshot{
		State:  typing.StateCompleted,
		Result: &model.RoundResult{AdjustedWPM: 55, Accuracy: 0.935},
	}
	if got := infoLine(done); got != "55 wpm | 93.5% accuracy" {
		t.Fatalf("unexpected completed info: %q", got)
	}
}

func TestRenderWordKeepsText(t *testing.T) {
	words := []typing.WordView{
		{Text: "hello", Current: true, Matched: 2},
		{Text: "world", Current: true, Mistyped: true},
		{Text: "later"},
		{Text: "done", Current: true, Matched: 4},
	}
	for _, w := range words {
		if got := stripANSI(renderWord(w)); got != w.Text {
			t.Fatalf("expected %q, got %q", w.Text, got)
		}
	}
}

func TestRenderResultsEmpty(t *testing.T) {
	snap := typing.Snapshot{State: typing.StateCompleted, Result: &model.RoundResult{}}
	got := renderResults(snap, 60)
	if !strings.Contains(got, "No words submitted.") {
		t.Fatalf("expected empty notice, got %q", got)
	}
}

func TestRenderResultsTable(t *testing.T) {
	snap := typing.Snapshot{
		State:        typing.StateCompleted,
		Result:       &model.RoundResult{AdjustedWPM: 12},
		WordsTried:   []string{"alpha", "beta"},
		WordsEntered: []string{"alpha", "bet"},
	}
	got := stripANSI(renderResults(snap, 60))
	for _, want := range []string{"12 wpm", "Target", "alpha", "bet", "✓", "✗"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in results:\n%s", want, got)
		}
	}
}

func TestScreenViewWaitsForSnapshot(t *testing.T) {
	s := newScreen(make(chan model.Key, 1))
	if got := s.View(); got != "" {
		t.Fatalf("expected empty view before first snapshot, got %q", got)
	}
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	s.Update(snapshotMsg{snap: typing.Snapshot{
		State:    typing.StateIdle,
		Upcoming: []typing.WordView{{Text: "first", Current: true}, {Text: "second"}},
	}})
	view := stripANSI(s.View())
	for _, want := range []string{"first", "second", "---", "esc"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestScreenForwardsKeys(t *testing.T) {
	keysCh := make(chan model.Key, 2)
	s := newScreen(keysCh)
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	if len(keysCh) != 2 {
		t.Fatalf("expected 2 keys queued, got %d", len(keysCh))
	}
	// A full buffer drops keys instead of blocking the program.
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if len(keysCh) != 2 {
		t.Fatalf("expected buffer to stay at 2, got %d", len(keysCh))
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
