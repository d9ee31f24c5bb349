package level

import (
	"fmt"
	"strconv"
)

// RaggedRowError reports a row whose length differs from the first row's.
type RaggedRowError struct {
	Row  int
	Want int
	Got  int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("level: row %d has %d columns, want %d", e.Row, e.Got, e.Want)
}

// UnknownSymbolError reports a cell whose symbol is neither built in nor
// registered.
type UnknownSymbolError struct {
	Symbol rune
	X      int
	Y      int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("level: unrecognised symbol %q at (%d, %d)", e.Symbol, e.X, e.Y)
}

// TooLargeError reports a grid that will not fit the game space once the
// boundary wall is added.
type TooLargeError struct {
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
}

func (e *TooLargeError) Error() string {
	w, h := "any", "any"
	if e.MaxWidth > 0 {
		w = strconv.Itoa(e.MaxWidth - 2)
	}
	if e.MaxHeight > 0 {
		h = strconv.Itoa(e.MaxHeight - 2)
	}
	return fmt.Sprintf("level: %dx%d grid exceeds %sx%s game space (boundary wall included)",
		e.Width, e.Height, w, h)
}
