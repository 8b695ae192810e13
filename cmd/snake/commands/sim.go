package commands

import (
	"fmt"
	"math/rand"
	"os"
	"unicode"

	"github.com/battlesnakeio/snake/game"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	moves string
	seed  int64
)

func init() {
	simCmd.Flags().StringVarP(&moves, "moves", "m", "", "moves to play, one tick each: U, D, L, R, or . to keep heading")
	simCmd.Flags().Int64VarP(&seed, "seed", "s", 1, "seed for food placement")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "plays a scripted game without a terminal and dumps the final state",
	Args: func(c *cobra.Command, args []string) error {
		if len(moves) == 0 {
			return errors.New("moves are required")
		}
		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		closeLog, err := setupLogging(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		state, err := newGame(rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}
		over, err := simulate(state, moves)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		if over != nil {
			fmt.Fprintf(out, "%s (turn %d)\n", over.Message(), over.Turn)
		} else {
			fmt.Fprintf(out, "still playing after turn %d\n", state.Turn())
		}
		spew.Fdump(out, state.Snapshot())
		return nil
	},
}

// simulate plays one tick per move and stops early if the round ends.
func simulate(state *game.State, moves string) (*game.GameOver, error) {
	for i, m := range moves {
		switch unicode.ToUpper(m) {
		case 'U':
			state.SetDirection(game.Up)
		case 'D':
			state.SetDirection(game.Down)
		case 'L':
			state.SetDirection(game.Left)
		case 'R':
			state.SetDirection(game.Right)
		case '.':
		default:
			return nil, errors.Errorf("invalid move %q at position %d", m, i)
		}

		if over := state.Tick(); over != nil {
			return over, nil
		}
	}
	return nil, nil
}
