package level

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/dww100/untitled-penguin-game/entity"
)

// Limits caps the size of the game space in tiles. The authored file must
// leave room for the boundary wall, so a file may be at most MaxWidth-2
// columns by MaxHeight-2 rows. A zero field means that axis is unlimited.
type Limits struct {
	MaxWidth  int
	MaxHeight int
}

func (lim Limits) check(l *Level) error {
	tooWide := lim.MaxWidth > 0 && l.Width > lim.MaxWidth-2
	tooTall := lim.MaxHeight > 0 && l.Height > lim.MaxHeight-2
	if tooWide || tooTall {
		return &TooLargeError{Width: l.Width, Height: l.Height, MaxWidth: lim.MaxWidth, MaxHeight: lim.MaxHeight}
	}
	return nil
}

// Load reads a level file from disk, checks its shape and size, and checks
// every symbol against the registry.
func Load(path string, reg *entity.Registry, lim Limits) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lvl, err := load(b, reg, lim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// LoadFS is Load for an fs.FS, e.g. the embedded levels.
func LoadFS(fsys fs.FS, name string, reg *entity.Registry, lim Limits) (*Level, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	lvl, err := load(b, reg, lim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lvl, nil
}

func load(b []byte, reg *entity.Registry, lim Limits) (*Level, error) {
	lvl, err := Parse(b)
	if err != nil {
		return nil, err
	}
	if err := lim.check(lvl); err != nil {
		return nil, err
	}
	if err := lvl.Validate(reg); err != nil {
		return nil, err
	}
	return lvl, nil
}
