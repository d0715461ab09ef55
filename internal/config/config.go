// Package config loads the paintbox session configuration from a TOML
// file. Missing fields fall back to the defaults, so a partial file is
// fine and no file at all yields the default session.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/danieljhkim/paintbox/internal/history"
	"github.com/danieljhkim/paintbox/internal/store"
)

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk session configuration.
type Config struct {
	// Width and Height are the grid dimensions in cells.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Style names the store variant: "exclusive", "additive", or
	// "toggled" (legacy aliases "set", "add", "sequence" also parse).
	Style string `toml:"style"`

	// AdditiveCapacity bounds each additive store.
	AdditiveCapacity int `toml:"additive_capacity"`

	// UndoDepth bounds the undo and redo stacks.
	UndoDepth int `toml:"undo_depth"`

	// ReplayDepth bounds the replay record queue.
	ReplayDepth int `toml:"replay_depth"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Width:            10,
		Height:           10,
		Style:            store.StyleExclusive.String(),
		AdditiveCapacity: store.DefaultAdditiveCapacity,
		UndoDepth:        history.DefaultUndoDepth,
		ReplayDepth:      history.DefaultReplayDepth,
	}
}

// Load reads path as TOML over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks dimensions, style, and capacities.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := store.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.AdditiveCapacity < 0 {
		return fmt.Errorf("%w: additive_capacity %d", ErrInvalid, c.AdditiveCapacity)
	}
	if c.UndoDepth < 0 {
		return fmt.Errorf("%w: undo_depth %d", ErrInvalid, c.UndoDepth)
	}
	if c.ReplayDepth < 0 {
		return fmt.Errorf("%w: replay_depth %d", ErrInvalid, c.ReplayDepth)
	}
	return nil
}

// ParsedStyle returns the store style named by the config. Validate
// before calling; an unparseable style falls back to exclusive.
func (c Config) ParsedStyle() store.Style {
	s, err := store.ParseStyle(c.Style)
	if err != nil {
		return store.StyleExclusive
	}
	return s
}
