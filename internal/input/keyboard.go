// Package input turns physical input (raw keyboard, move scripts) into
// snake directions.
package input

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// MapKey translates a raw key event to an action.
func MapKey(char rune, key keyboard.Key) core.Action {
	switch key {
	case keyboard.KeyArrowUp:
		return core.ActionUp
	case keyboard.KeyArrowDown:
		return core.ActionDown
	case keyboard.KeyArrowLeft:
		return core.ActionLeft
	case keyboard.KeyArrowRight:
		return core.ActionRight
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return core.ActionQuit
	}

	switch char {
	case 'w', 'W':
		return core.ActionUp
	case 's', 'S':
		return core.ActionDown
	case 'a', 'A':
		return core.ActionLeft
	case 'd', 'D':
		return core.ActionRight
	case 'r', 'R':
		return core.ActionRestart
	case 'q', 'Q':
		return core.ActionQuit
	}
	return core.ActionNone
}

// Direction converts a directional action to a snake direction.
func Direction(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return snake.DirRight, false
}

// Keyboard reads raw key presses from the controlling terminal.
type Keyboard struct {
	logger *log.Logger
}

// NewKeyboard creates a keyboard source. logger may be nil.
func NewKeyboard(logger *log.Logger) *Keyboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keyboard{logger: logger}
}

// Listen puts the terminal in raw mode and calls handle for every mapped
// key until ctx is done or the key stream fails. The terminal is restored
// before Listen returns.
func (k *Keyboard) Listen(ctx context.Context, handle func(core.Action)) error {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("input: cannot open keyboard: %w", err)
	}
	defer func() {
		if closeErr := keyboard.Close(); closeErr != nil {
			k.logger.Warn("keyboard close failed", "error", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return fmt.Errorf("input: keyboard: %w", ev.Err)
			}
			action := MapKey(ev.Rune, ev.Key)
			if action == core.ActionNone {
				continue
			}
			k.logger.Debug("key", "action", action)
			handle(action)
		}
	}
}
