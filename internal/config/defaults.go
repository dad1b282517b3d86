package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:      snake.DefaultBoardSize,
			StartX:    snake.DefaultStartX,
			StartY:    snake.DefaultStartY,
			Direction: "right",
		},
		Render: RenderConfig{
			CellSize: 2,
		},
		Tick: TickConfig{
			Mode:     TickInterval,
			Interval: 200 * time.Millisecond,
			FPS:      10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
