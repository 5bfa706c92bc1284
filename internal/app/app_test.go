package app

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/verte-zerg/typespeed/internal/event"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/typing"
)

type fakeTerminal struct {
	mu      sync.Mutex
	keys    chan model.Key
	quit    chan struct{}
	once    sync.Once
	renders int
	runErr  error

	quitOnComplete bool
}

func newFakeTerminal(keys ...model.Key) *fakeTerminal {
	ch := make(chan model.Key, len(keys))
	for _, k := range keys {
		ch <- k
	}
	return &fakeTerminal{keys: ch, quit: make(chan struct{})}
}

func (f *fakeTerminal) Poll(ctx context.Context, timeout time.Duration) (model.Key, bool, error) {
	select {
	case k := <-f.keys:
		return k, true, nil
	default:
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-f.keys:
		return k, true, nil
	case <-timer.C:
		return model.Key{}, false, nil
	case <-f.quit:
		return model.Key{}, false, event.ErrInputClosed
	case <-ctx.Done():
		return model.Key{}, false, ctx.Err()
	}
}

func (f *fakeTerminal) Render(snap typing.Snapshot) error {
	f.mu.Lock()
	f.renders++
	f.mu.Unlock()
	if f.quitOnComplete && snap.State == typing.StateCompleted {
		f.Quit()
	}
	return nil
}

func (f *fakeTerminal) Run() error {
	<-f.quit
	return f.runErr
}

func (f *fakeTerminal) Quit() {
	f.once.Do(func() { close(f.quit) })
}

type firstSampler struct{}

func (firstSampler) Sample(words []string, count int) []string {
	if count > len(words) {
		count = len(words)
	}
	return append([]string(nil), words[:count]...)
}

func rk(r rune) model.Key {
	return model.Key{Code: model.KeyRune, Rune: r}
}

func runWithTimeout(t *testing.T, fn func() error) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not finish")
		return nil
	}
}

func TestRunExitsOnEsc(t *testing.T) {
	term := newFakeTerminal(rk('h'), rk('i'), model.Key{Code: model.KeyEsc})
	ctrl, exit := typing.NewController([]string{"hi", "yo"}, firstSampler{}, typing.DefaultOptions())
	cfg := model.Config{TickRate: 10 * time.Millisecond}

	err := runWithTimeout(t, func() error {
		return run(context.Background(), cfg, ctrl, exit, term, event.SystemClock)
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if ctrl.Round().State() != typing.StateActive {
		t.Fatalf("expected round to stay active, got %s", ctrl.Round().State())
	}
	if term.renders == 0 {
		t.Fatalf("expected at least one render")
	}
}

func TestRunExitsOnKill(t *testing.T) {
	term := newFakeTerminal(model.Key{Code: model.KeyRune, Rune: 'c', Mods: model.ModCtrl})
	ctrl, exit := typing.NewController([]string{"hi"}, firstSampler{}, typing.DefaultOptions())

	err := runWithTimeout(t, func() error {
		return run(context.Background(), model.Config{}, ctrl, exit, term, event.SystemClock)
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if ctrl.Round().State() != typing.StateIdle {
		t.Fatalf("expected idle round, got %s", ctrl.Round().State())
	}
}

func TestRunCompletesRound(t *testing.T) {
	term := newFakeTerminal(rk('h'), rk('i'), rk(' '))
	term.quitOnComplete = true
	opts := typing.Options{Words: 2, Duration: 30 * time.Millisecond, Preview: 2}
	ctrl, exit := typing.NewController([]string{"hi", "yo"}, firstSampler{}, opts)
	cfg := model.Config{TickRate: 5 * time.Millisecond}

	err := runWithTimeout(t, func() error {
		return run(context.Background(), cfg, ctrl, exit, term, event.SystemClock)
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	results := ctrl.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].CharsCorrect != 2 || results[0].Words != 1 {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestRunReportsTerminalError(t *testing.T) {
	term := newFakeTerminal()
	term.runErr = errors.New("boom")
	ctrl, exit := typing.NewController([]string{"hi"}, firstSampler{}, typing.DefaultOptions())

	go func() {
		time.Sleep(20 * time.Millisecond)
		term.Quit()
	}()
	err := runWithTimeout(t, func() error {
		return run(context.Background(), model.Config{}, ctrl, exit, term, event.SystemClock)
	})
	if err == nil || !errors.Is(err, term.runErr) {
		t.Fatalf("expected wrapped terminal error, got %v", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts := options(model.Config{})
	if opts != typing.DefaultOptions() {
		t.Fatalf("expected defaults, got %+v", opts)
	}
	opts = options(model.Config{Duration: time.Minute, Words: 50, Preview: 3})
	if opts.Duration != time.Minute || opts.Words != 50 || opts.Preview != 3 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestRequireTerminalRejectsFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			_ = cerr
		}
	}()
	if err := RequireTerminal(f, f); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}
