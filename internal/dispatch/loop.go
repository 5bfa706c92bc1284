// Package dispatch runs the single-consumer loop that feeds events to the
// typing controller and redraws after each one.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/typespeed/internal/event"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/typing"
)

// Controller is the state the loop drives.
type Controller interface {
	HandleKey(key model.Key, now time.Time)
	Tick(now time.Time)
	Snapshot(now time.Time) typing.Snapshot
}

// Renderer draws a snapshot.
type Renderer interface {
	Render(snap typing.Snapshot) error
}

// Loop consumes events one at a time.
type Loop struct {
	ctrl     Controller
	events   <-chan event.Event
	exit     <-chan struct{}
	renderer Renderer
	clock    event.Clock
}

// New builds a Loop. A nil clock selects event.SystemClock.
func New(ctrl Controller, events <-chan event.Event, exit <-chan struct{}, renderer Renderer, clock event.Clock) *Loop {
	if clock == nil {
		clock = event.SystemClock
	}
	return &Loop{
		ctrl:     ctrl,
		events:   events,
		exit:     exit,
		renderer: renderer,
		clock:    clock,
	}
}

// Run renders, waits for one event, dispatches it, and repeats. It returns
// nil on the kill combination, an exit request, a closed event stream or a
// cancelled context.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.renderer.Render(l.ctrl.Snapshot(l.clock.Now())); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}

		var ev event.Event
		select {
		case <-ctx.Done():
			return nil
		case next, ok := <-l.events:
			if !ok {
				return nil
			}
			ev = next
		}

		switch ev.Kind {
		case event.Input:
			if ev.Key.IsKill() {
				return nil
			}
			l.ctrl.HandleKey(ev.Key, l.clock.Now())
		case event.Tick:
			l.ctrl.Tick(l.clock.Now())
		}

		// A value or a closed channel both mean quit.
		select {
		case <-l.exit:
			return nil
		default:
		}
	}
}
