package config

import (
	"os"
	"strconv"
	"time"
)

// Configuration variables. These are the defaults for the command line flags
// and can be tuned through the environment.
var (
	BoardWidth   = getEnvInt("SNAKE_BOARD_WIDTH", 400)
	BoardHeight  = getEnvInt("SNAKE_BOARD_HEIGHT", 400)
	TileSize     = getEnvInt("SNAKE_TILE_SIZE", 20)
	TickInterval = time.Duration(getEnvInt("SNAKE_TICK_MS", 50)) * time.Millisecond
	LogLevel     = getEnvString("SNAKE_LOG_LEVEL", "info")
	LogFile      = getEnvString("SNAKE_LOG_FILE", "")
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
