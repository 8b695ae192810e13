package commands

import (
	"context"
	"io"

	"github.com/battlesnakeio/snake/driver"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return playGame()
	},
}

func playGame() error {
	// the terminal belongs to termbox, so logs only go to --log-file
	closeLog, err := setupLogging(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	state, err := newGame(nil)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialize terminal")
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	screen := newTermScreen()
	d := driver.New(state, screen, tickInterval)
	go pumpEvents(ctx, cancel, setupEventQueue(), screen, d)

	log.WithFields(log.Fields{
		"GameID": state.ID(),
		"Width":  state.Width(),
		"Height": state.Height(),
		"Tick":   tickInterval,
	}).Info("starting game")

	err = d.Run(ctx)
	if errors.Cause(err) == context.Canceled {
		return nil
	}
	return err
}

// pumpEvents routes terminal events: quit keys cancel the game, anything
// else goes to an open prompt first and is otherwise read as a direction.
func pumpEvents(ctx context.Context, quit context.CancelFunc, events <-chan termbox.Event, screen *termScreen, d *driver.Driver) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev.Type {
			case termbox.EventError:
				log.WithError(ev.Err).Error("terminal event error")
				quit()
				return
			case termbox.EventKey:
				if isQuit(ev) {
					quit()
					return
				}
				if screen.answer(ev) {
					continue
				}
				if dir, ok := keyDirection(ev); ok {
					if !d.Input(dir) {
						log.WithField("Direction", dir).Debug("input queue full")
					}
				}
			}
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
