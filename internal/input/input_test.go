package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		char rune
		key  keyboard.Key
		want core.Action
	}{
		{"arrow up", 0, keyboard.KeyArrowUp, core.ActionUp},
		{"arrow down", 0, keyboard.KeyArrowDown, core.ActionDown},
		{"arrow left", 0, keyboard.KeyArrowLeft, core.ActionLeft},
		{"arrow right", 0, keyboard.KeyArrowRight, core.ActionRight},
		{"w", 'w', 0, core.ActionUp},
		{"S", 'S', 0, core.ActionDown},
		{"a", 'a', 0, core.ActionLeft},
		{"d", 'd', 0, core.ActionRight},
		{"restart", 'r', 0, core.ActionRestart},
		{"quit q", 'q', 0, core.ActionQuit},
		{"escape", 0, keyboard.KeyEsc, core.ActionQuit},
		{"ctrl+c", 0, keyboard.KeyCtrlC, core.ActionQuit},
		{"unmapped", 'x', 0, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapKey(tc.char, tc.key); got != tc.want {
				t.Errorf("MapKey(%q, %v) = %v, expected %v", tc.char, tc.key, got, tc.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		action core.Action
		want   snake.Direction
		ok     bool
	}{
		{core.ActionUp, snake.DirUp, true},
		{core.ActionDown, snake.DirDown, true},
		{core.ActionLeft, snake.DirLeft, true},
		{core.ActionRight, snake.DirRight, true},
		{core.ActionQuit, snake.DirRight, false},
		{core.ActionNone, snake.DirRight, false},
	}
	for _, tc := range tests {
		got, ok := Direction(tc.action)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("Direction(%v) = %v, %v; expected %v, %v", tc.action, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseScriptLetters(t *testing.T) {
	moves, err := ParseScript("RRd.U")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	want := []Move{
		{Direction: snake.DirRight, Change: true},
		{Direction: snake.DirRight, Change: true},
		{Direction: snake.DirDown, Change: true},
		{},
		{Direction: snake.DirUp, Change: true},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, expected %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %+v, expected %+v", i, moves[i], want[i])
		}
	}
}

func TestParseScriptWords(t *testing.T) {
	moves, err := ParseScript("up, left - down")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("got %d moves, expected 4", len(moves))
	}
	if moves[0].Direction != snake.DirUp || moves[1].Direction != snake.DirLeft ||
		moves[2].Change || moves[3].Direction != snake.DirDown {
		t.Errorf("unexpected moves %+v", moves)
	}
}

func TestParseScriptErrors(t *testing.T) {
	if _, err := ParseScript("RRX"); err == nil {
		t.Error("unknown letter should fail")
	}
	if _, err := ParseScript("up,sideways"); err == nil {
		t.Error("unknown word should fail")
	}
	moves, err := ParseScript("   ")
	if err != nil || len(moves) != 0 {
		t.Errorf("blank script = %v, %v; expected no moves", moves, err)
	}
}
