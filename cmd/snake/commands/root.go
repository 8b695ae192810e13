package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "snake",
	Short:         "snake is a single player snake game for the terminal",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	boardWidth   int
	boardHeight  int
	tileSize     int
	tickInterval time.Duration
	logLevel     string
	logFile      string
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&boardWidth, "board-width", config.BoardWidth, "board width in pixels")
	flags.IntVar(&boardHeight, "board-height", config.BoardHeight, "board height in pixels")
	flags.IntVar(&tileSize, "tile-size", config.TileSize, "tile size in pixels")
	flags.DurationVar(&tickInterval, "tick", config.TickInterval, "time between game ticks")
	flags.StringVar(&logLevel, "log-level", config.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", config.LogFile, "append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGame(r *rand.Rand) (*game.State, error) {
	return game.New(game.Config{
		BoardWidth:  boardWidth,
		BoardHeight: boardHeight,
		TileSize:    tileSize,
		Rand:        r,
	})
}
