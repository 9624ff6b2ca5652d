// Package config loads the palette and UI options from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
)

// Palette holds the selectable foreground colors, background colors,
// and glyphs. Each list is non-empty.
type Palette struct {
	Fg []core.RGB
	Bg []core.RGB
	Ch []rune
}

// UI holds startup options
type UI struct {
	Tool   draw.Tool
	Sound  bool
	Width  int
	Height int
}

// Config is the parsed application configuration
type Config struct {
	Palette Palette
	UI      UI
}

// paletteFile mirrors the on-disk palette table: colors are "#rrggbb"
// strings, glyphs are single-character strings
type paletteFile struct {
	Fg []string `toml:"fg"`
	Bg []string `toml:"bg"`
	Ch []string `toml:"ch"`
}

type uiFile struct {
	Tool   string `toml:"tool"`
	Sound  *bool  `toml:"sound"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type configFile struct {
	Palette paletteFile `toml:"palette"`
	UI      uiFile      `toml:"ui"`
}

// Default returns the built-in configuration used when no file is given
func Default() *Config {
	return &Config{
		Palette: Palette{
			Fg: []core.RGB{
				{R: 255, G: 255, B: 255},
				{R: 255, G: 0, B: 0},
				{R: 0, G: 255, B: 0},
				{R: 0, G: 0, B: 255},
				{R: 255, G: 255, B: 0},
				{R: 255, G: 0, B: 255},
				{R: 0, G: 255, B: 255},
				{R: 0, G: 0, B: 0},
			},
			Bg: []core.RGB{
				{R: 0, G: 0, B: 0},
				{R: 128, G: 0, B: 0},
				{R: 0, G: 128, B: 0},
				{R: 0, G: 0, B: 128},
				{R: 128, G: 128, B: 0},
				{R: 128, G: 0, B: 128},
				{R: 0, G: 128, B: 128},
				{R: 192, G: 192, B: 192},
			},
			Ch: []rune("█▓▒░#@*+.oxX "),
		},
		UI: UI{
			Tool:   draw.ToolPencil,
			Sound:  true,
			Width:  0, // 0 means size to the terminal
			Height: 0,
		},
	}
}

// Load reads and parses a config file. Options absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses TOML config bytes
func Parse(data []byte) (*Config, error) {
	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	pal, err := parsePalette(file.Palette)
	if err != nil {
		return nil, err
	}
	cfg.Palette = pal

	if file.UI.Tool != "" {
		t, ok := draw.ParseTool(file.UI.Tool)
		if !ok {
			return nil, fmt.Errorf("parse config: unknown tool %q", file.UI.Tool)
		}
		cfg.UI.Tool = t
	}
	if file.UI.Sound != nil {
		cfg.UI.Sound = *file.UI.Sound
	}
	if file.UI.Width < 0 || file.UI.Height < 0 {
		return nil, fmt.Errorf("parse config: invalid canvas size %dx%d", file.UI.Width, file.UI.Height)
	}
	if file.UI.Width > 0 {
		cfg.UI.Width = file.UI.Width
	}
	if file.UI.Height > 0 {
		cfg.UI.Height = file.UI.Height
	}

	return cfg, nil
}

func parsePalette(file paletteFile) (Palette, error) {
	if len(file.Fg) == 0 {
		return Palette{}, fmt.Errorf("parse config: palette fg must not be empty")
	}
	if len(file.Bg) == 0 {
		return Palette{}, fmt.Errorf("parse config: palette bg must not be empty")
	}
	if len(file.Ch) == 0 {
		return Palette{}, fmt.Errorf("parse config: palette ch must not be empty")
	}

	var pal Palette
	for _, s := range file.Fg {
		c, err := core.ParseHex(s)
		if err != nil {
			return Palette{}, fmt.Errorf("parse config: palette fg: %w", err)
		}
		pal.Fg = append(pal.Fg, c)
	}
	for _, s := range file.Bg {
		c, err := core.ParseHex(s)
		if err != nil {
			return Palette{}, fmt.Errorf("parse config: palette bg: %w", err)
		}
		pal.Bg = append(pal.Bg, c)
	}
	for _, s := range file.Ch {
		runes := []rune(s)
		if len(runes) != 1 {
			return Palette{}, fmt.Errorf("parse config: palette ch entry must be one character, got %q", s)
		}
		pal.Ch = append(pal.Ch, runes[0])
	}

	return pal, nil
}
