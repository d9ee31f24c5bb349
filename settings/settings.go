// Package settings holds the tunables for the game space.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the dimensions of the game space in tiles, boundary wall
// included. Level files must fit inside with one tile of wall on each side.
type Settings struct {
	MaxGridWidth  int `yaml:"max_grid_width"`
	MaxGridHeight int `yaml:"max_grid_height"`
}

// Default returns the stock 12x12 game space.
func Default() Settings {
	return Settings{MaxGridWidth: 12, MaxGridHeight: 12}
}

// Load reads settings from a YAML file. Omitted fields keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: unmarshal %s: %w", path, err)
	}
	if s.MaxGridWidth < 3 || s.MaxGridHeight < 3 {
		return s, fmt.Errorf("settings: %s: game space %dx%d leaves no room inside the boundary wall",
			path, s.MaxGridWidth, s.MaxGridHeight)
	}
	return s, nil
}
