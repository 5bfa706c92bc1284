package tui

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typespeed/internal/event"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/typing"
)

const keyBuffer = 256

// Terminal owns the Bubble Tea program. It reads keys for the event source
// and draws snapshots from the dispatch loop. The program restores the
// terminal on every exit path.
type Terminal struct {
	program *tea.Program
	keys    chan model.Key
	done    chan struct{}
	once    sync.Once
}

// NewTerminal creates a Terminal using the alternate screen.
func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	t := &Terminal{
		keys: make(chan model.Key, keyBuffer),
		done: make(chan struct{}),
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	t.program = tea.NewProgram(newScreen(t.keys), opts...)
	return t
}

// Run blocks until the program exits.
func (t *Terminal) Run() error {
	defer t.once.Do(func() { close(t.done) })
	_, err := t.program.Run()
	return err
}

// Quit asks the program to exit.
func (t *Terminal) Quit() {
	t.program.Quit()
}

// Poll implements event.Poller.
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (model.Key, bool, error) {
	select {
	case k := <-t.keys:
		return k, true, nil
	default:
	}
	if timeout <= 0 {
		return model.Key{}, false, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-t.keys:
		return k, true, nil
	case <-timer.C:
		return model.Key{}, false, nil
	case <-t.done:
		return model.Key{}, false, event.ErrInputClosed
	case <-ctx.Done():
		return model.Key{}, false, ctx.Err()
	}
}

// Render implements dispatch.Renderer.
func (t *Terminal) Render(snap typing.Snapshot) error {
	t.program.Send(snapshotMsg{snap: snap})
	return nil
}

type snapshotMsg struct {
	snap typing.Snapshot
}

type screen struct {
	keys chan<- model.Key

	snap  typing.Snapshot
	ready bool

	width  int
	height int

	bar  progress.Model
	help help.Model
}

func newScreen(keys chan<- model.Key) *screen {
	return &screen{
		keys: keys,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (s *screen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case tea.KeyMsg:
		for _, k := range translate(msg) {
			select {
			case s.keys <- k:
			default:
				log.Printf("dropped key %q: input buffer full", msg.String())
			}
		}
	case snapshotMsg:
		s.snap = msg.snap
		s.ready = true
	}
	return s, nil
}
