package level

import (
	"fmt"
	"strings"

	"github.com/dww100/untitled-penguin-game/entity"
)

// Level is a rectangular grid of symbols stored as a flat row-major array.
// Coordinates are zero-based with x as the column and y as the row. A level
// is read-only once parsed.
type Level struct {
	Width  int
	Height int

	cells []rune
}

// Pos is a cell coordinate.
type Pos struct {
	X int
	Y int
}

// Parse reads a plain-text grid: Height lines of Width characters each, with
// an optional final newline. Parse checks shape only; symbol meaning is
// checked against a registry by Validate.
func Parse(data []byte) (*Level, error) {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, fmt.Errorf("level: empty grid")
	}

	rows := strings.Split(text, "\n")
	lvl := &Level{Height: len(rows)}
	for y, row := range rows {
		cells := []rune(strings.TrimSuffix(row, "\r"))
		if y == 0 {
			lvl.Width = len(cells)
			lvl.cells = make([]rune, 0, lvl.Width*len(rows))
		}
		if len(cells) != lvl.Width {
			return nil, &RaggedRowError{Row: y, Want: lvl.Width, Got: len(cells)}
		}
		lvl.cells = append(lvl.cells, cells...)
	}
	if lvl.Width == 0 {
		return nil, fmt.Errorf("level: empty grid")
	}
	return lvl, nil
}

// String renders the grid back to its file form, rows joined by newlines with
// no trailing newline. Parse followed by String is the identity on canonical
// input.
func (l *Level) String() string {
	var b strings.Builder
	b.Grow(len(l.cells) + l.Height)
	for y := 0; y < l.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < l.Width; x++ {
			b.WriteRune(l.At(x, y))
		}
	}
	return b.String()
}

// At returns the symbol at (x, y). It panics on out-of-range coordinates,
// matching slice indexing.
func (l *Level) At(x, y int) rune {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		panic(fmt.Sprintf("level: cell (%d, %d) out of range for %dx%d grid", x, y, l.Width, l.Height))
	}
	return l.cells[y*l.Width+x]
}

// Validate checks that every cell resolves against the registry. The first
// failure is returned as an UnknownSymbolError.
func (l *Level) Validate(reg *entity.Registry) error {
	for i, c := range l.cells {
		if !reg.Known(c) {
			return &UnknownSymbolError{Symbol: c, X: i % l.Width, Y: i / l.Width}
		}
	}
	return nil
}

// Resolve looks up every cell and hands (x, y, descriptor) to fn in row-major
// order. Empty cells are included; loaders that only instantiate entities
// should skip descriptors where IsEmpty is true.
func (l *Level) Resolve(reg *entity.Registry, fn func(x, y int, d entity.Descriptor) error) error {
	for i, c := range l.cells {
		d, err := reg.Resolve(c)
		if err != nil {
			return &UnknownSymbolError{Symbol: c, X: i % l.Width, Y: i / l.Width}
		}
		if err := fn(i%l.Width, i/l.Width, d); err != nil {
			return err
		}
	}
	return nil
}

// PlayerStarts returns the coordinates of every player-start cell in
// row-major order.
func (l *Level) PlayerStarts() []Pos {
	var starts []Pos
	for i, c := range l.cells {
		if c == entity.Player {
			starts = append(starts, Pos{X: i % l.Width, Y: i / l.Width})
		}
	}
	return starts
}

// Count returns how many cells hold the given symbol.
func (l *Level) Count(symbol rune) int {
	n := 0
	for _, c := range l.cells {
		if c == symbol {
			n++
		}
	}
	return n
}

// Bounded returns a copy of the level ringed with wall symbols, so the grid
// the game runs on is two cells wider and taller than the authored file.
func (l *Level) Bounded() *Level {
	w, h := l.Width+2, l.Height+2
	out := &Level{Width: w, Height: h, cells: make([]rune, w*h)}
	for i := range out.cells {
		out.cells[i] = entity.Wall
	}
	for y := 0; y < l.Height; y++ {
		copy(out.cells[(y+1)*w+1:(y+1)*w+1+l.Width], l.cells[y*l.Width:(y+1)*l.Width])
	}
	return out
}
