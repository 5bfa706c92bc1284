// Package app wires the typing controller, event source, dispatch loop and
// terminal into one practice session.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/verte-zerg/typespeed/internal/dispatch"
	"github.com/verte-zerg/typespeed/internal/event"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/tui"
	"github.com/verte-zerg/typespeed/internal/typing"
)

// ErrNotTerminal is returned when stdin or stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// RequireTerminal fails with ErrNotTerminal unless both files are terminals.
func RequireTerminal(in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

type terminal interface {
	event.Poller
	dispatch.Renderer
	Run() error
	Quit()
}

// Run starts a session and blocks until the user quits. It returns the
// results of every round completed during the session.
func Run(ctx context.Context, cfg model.Config, dict []string, sampler typing.Sampler) ([]model.RoundResult, error) {
	ctrl, exit := typing.NewController(dict, sampler, options(cfg))
	if err := run(ctx, cfg, ctrl, exit, tui.NewTerminal(), event.SystemClock); err != nil {
		return ctrl.Results(), err
	}
	return ctrl.Results(), nil
}

func options(cfg model.Config) typing.Options {
	opts := typing.DefaultOptions()
	if cfg.Duration > 0 {
		opts.Duration = cfg.Duration
	}
	if cfg.Words > 0 {
		opts.Words = cfg.Words
	}
	if cfg.Preview > 0 {
		opts.Preview = cfg.Preview
	}
	return opts
}

func run(ctx context.Context, cfg model.Config, ctrl dispatch.Controller, exit <-chan struct{}, tty terminal, clock event.Clock) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan event.Event)
	source := event.NewSource(tty, event.Config{TickRate: cfg.TickRate, Clock: clock})
	loop := dispatch.New(ctrl, events, exit, tty, clock)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return source.Run(gctx, events)
	})
	g.Go(func() error {
		defer tty.Quit()
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		if err := tty.Run(); err != nil {
			return fmt.Errorf("failed to run terminal: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("session ended")
	return nil
}
