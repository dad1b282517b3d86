// Package render draws snake snapshots into a core.Screen.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Cell classifies a board square.
type Cell int

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood
)

// Classify reports what occupies p. A snake segment wins over food.
func Classify(s snake.Snapshot, p snake.Position) Cell {
	if s.Occupied(p) {
		return CellSnake
	}
	if s.HasFood() && s.Food == p {
		return CellFood
	}
	return CellEmpty
}

// Glyphs selects the characters used for each kind of cell.
type Glyphs struct {
	Head  rune
	Body  rune
	Food  rune
	Empty rune
}

// BlockGlyphs suit colored terminals.
var BlockGlyphs = Glyphs{Head: '█', Body: '█', Food: '█', Empty: '·'}

// ASCIIGlyphs stay readable without colors.
var ASCIIGlyphs = Glyphs{Head: '@', Body: 'o', Food: '*', Empty: '.'}

// Options configures a Board.
type Options struct {
	CellSize int    // columns per board cell
	Glyphs   Glyphs // zero value selects BlockGlyphs
	Status   string // extra text appended to the status line
	Hint     string // second overlay line on game over
}

// Board lays out and draws the grid, a status line and the game over overlay.
type Board struct {
	opts Options
}

// NewBoard creates a board renderer.
func NewBoard(opts Options) *Board {
	if opts.CellSize < 1 {
		opts.CellSize = 1
	}
	if opts.Glyphs == (Glyphs{}) {
		opts.Glyphs = BlockGlyphs
	}
	return &Board{opts: opts}
}

// Size returns the screen area needed for a board of the given size,
// including border and status line.
func (b *Board) Size(boardSize int) (w, h int) {
	return boardSize*b.opts.CellSize + 2, boardSize + 3
}

// Fits reports whether a board of boardSize fits on dst.
func (b *Board) Fits(dst *core.Screen, boardSize int) bool {
	w, h := b.Size(boardSize)
	return dst.Width() >= w && dst.Height() >= h
}

// Draw clears dst and renders s.
func (b *Board) Draw(dst *core.Screen, s snake.Snapshot) {
	dst.Clear()

	w, h := b.Size(s.BoardSize)
	if !b.Fits(dst, s.BoardSize) {
		b.drawTooSmall(dst, w, h)
		return
	}

	area := dst.Bounds().Centered(w, h)
	b.drawStatus(dst, area, s)

	frame := core.NewRect(area.X, area.Y+1, w, h-1)
	dst.DrawBox(frame, core.ColorGray)
	b.drawCells(dst, frame.X+1, frame.Y+1, s)

	if s.GameOver {
		b.drawOverlay(dst, frame, s)
	}
}

func (b *Board) statusLine(s snake.Snapshot) string {
	status := fmt.Sprintf(" Snake — Length: %d  Board: %dx%d", s.Len(), s.BoardSize, s.BoardSize)
	if b.opts.Status != "" {
		status += "  " + b.opts.Status
	}
	return status
}

func (b *Board) drawStatus(dst *core.Screen, area core.Rect, s snake.Snapshot) {
	status := b.statusLine(s)
	x := area.X
	if n := len([]rune(status)); n > area.W {
		x = max(0, (dst.Width()-n)/2)
	}
	dst.DrawTextColored(x, area.Y, status, core.ColorBrightWhite)
}

func (b *Board) drawCells(dst *core.Screen, ox, oy int, s snake.Snapshot) {
	size := b.opts.CellSize
	g := b.opts.Glyphs

	for y := range s.BoardSize {
		for x := range s.BoardSize {
			p := snake.Position{X: x, Y: y}
			sx := ox + x*size

			switch Classify(s, p) {
			case CellSnake:
				r, c := g.Body, core.ColorGreen
				if p == s.Head() {
					r, c = g.Head, core.ColorBrightGreen
				}
				for i := range size {
					dst.SetColored(sx+i, oy+y, r, c)
				}
			case CellFood:
				for i := range size {
					dst.SetColored(sx+i, oy+y, g.Food, core.ColorRed)
				}
			default:
				dst.SetColored(sx, oy+y, g.Empty, core.ColorDarkGray)
			}
		}
	}
}

func (b *Board) drawOverlay(dst *core.Screen, frame core.Rect, s snake.Snapshot) {
	lines := []string{"Game Over", fmt.Sprintf("Length %d", s.Len())}
	if b.opts.Hint != "" {
		lines = append(lines, b.opts.Hint)
	}
	b.drawBoxedLines(dst, frame, lines)
}

func (b *Board) drawTooSmall(dst *core.Screen, w, h int) {
	b.drawBoxedLines(dst, dst.Bounds(), []string{
		"Window too small",
		fmt.Sprintf("Need %dx%d", w, h),
	})
}

// drawBoxedLines draws lines inside a bordered box centered in area.
func (b *Board) drawBoxedLines(dst *core.Screen, area core.Rect, lines []string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	box := area.Centered(inner+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, l := range lines {
		pad := (inner - len([]rune(l))) / 2
		dst.DrawTextColored(box.X+2+pad, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

// Text renders s as plain text using ASCII glyphs at the minimal size.
func Text(s snake.Snapshot, opts Options) string {
	if opts.Glyphs == (Glyphs{}) {
		opts.Glyphs = ASCIIGlyphs
	}
	b := NewBoard(opts)
	w, h := b.Size(s.BoardSize)
	w = max(w, len([]rune(b.statusLine(s))))
	screen := core.NewScreen(w, h)
	b.Draw(screen, s)

	rows := screen.Lines()
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(rows, "\n")
}
