package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Move is one scripted tick: an optional direction change followed by a tick.
type Move struct {
	Direction snake.Direction
	Change    bool
}

// ParseScript reads a move script. Two forms are accepted:
//
//	"RRDD.L"            one letter per tick, '.' keeps the heading
//	"right,right,down"  comma or space separated names, "-" keeps the heading
func ParseScript(script string) ([]Move, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var tokens []string
	if strings.ContainsAny(script, ", ") {
		tokens = strings.FieldsFunc(script, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		for _, r := range script {
			tokens = append(tokens, string(r))
		}
	}

	moves := make([]Move, 0, len(tokens))
	for i, tok := range tokens {
		if tok == "." || tok == "-" {
			moves = append(moves, Move{})
			continue
		}
		d, err := snake.ParseDirection(tok)
		if err != nil {
			return nil, fmt.Errorf("input: move %d: %w", i+1, err)
		}
		moves = append(moves, Move{Direction: d, Change: true})
	}
	return moves, nil
}
