// Package driver runs a game on a fixed interval. The goroutine calling Run is
// the only one that touches the game state; input arriving from other
// goroutines is queued and applied before the next tick.
package driver

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/game"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Screen is what the driver renders to and asks when a round ends.
type Screen interface {
	// Draw renders a frame.
	Draw(game.Snapshot) error
	// Confirm shows message and blocks until the player answers yes or no.
	Confirm(ctx context.Context, message string) (bool, error)
}

// Driver advances a game once per Interval.
type Driver struct {
	State    *game.State
	Screen   Screen
	Interval time.Duration

	inputs *inputQueue
}

// New creates a driver for state.
func New(state *game.State, screen Screen, interval time.Duration) *Driver {
	return &Driver{
		State:    state,
		Screen:   screen,
		Interval: interval,
		inputs:   newInputQueue(maxQueuedInputs),
	}
}

// Input queues a direction for a coming tick. It is safe to call from any
// goroutine and reports false if the queue was full and the input dropped.
func (d *Driver) Input(dir game.Direction) bool {
	return d.inputs.push(dir)
}

// Run ticks the game until the context is cancelled or the player declines
// another round. Declining returns nil.
func (d *Driver) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(d.Interval), 1)

	if err := d.draw(); err != nil {
		return err
	}
	for {
		if err := limiter.Wait(ctx); err != nil {
			// Wait fails early when the next tick is past the deadline.
			<-ctx.Done()
			return ctx.Err()
		}

		if dir, ok := d.inputs.pop(); ok {
			d.State.SetDirection(dir)
		}
		over := d.State.Tick()
		if err := d.draw(); err != nil {
			return err
		}
		if over == nil {
			continue
		}

		again, err := d.gameOver(ctx, over)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		d.State.Reset()
		d.inputs.clear()
		if err := d.draw(); err != nil {
			return err
		}
	}
}

func (d *Driver) gameOver(ctx context.Context, over *game.GameOver) (bool, error) {
	fields := log.Fields{
		"GameID": d.State.ID(),
		"Turn":   over.Turn,
		"Cause":  over.Cause,
	}
	log.WithFields(fields).Info("asking to play again")

	again, err := d.Screen.Confirm(ctx, over.Message()+"\nDo you want to play again?")
	if err != nil {
		return false, errors.Wrap(err, "driver: game over prompt")
	}
	if !again {
		log.WithFields(fields).Info("player quit")
	}
	return again, nil
}

func (d *Driver) draw() error {
	if err := d.Screen.Draw(d.State.Snapshot()); err != nil {
		return errors.Wrap(err, "driver: draw")
	}
	return nil
}
