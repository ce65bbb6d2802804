// Package config holds the per-state slot tables: which draw slots a state
// publishes, the label aliases its page family uses for each slot, and the
// ordered candidate URLs to try for each game. The extraction engine itself
// is state-agnostic; everything state-specific lives here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"drawfetch/internal/draw"
)

// ErrUnknownState is returned when a requested state has no configuration.
// It is the only hard failure the service surfaces.
var ErrUnknownState = errors.New("unknown state")

// SlotConfig describes one draw slot for one state.
type SlotConfig struct {
	Slot      draw.Slot `toml:"slot" validate:"required,oneof=midday evening night"`
	Aliases   []string  `toml:"aliases" validate:"required,min=1,dive,required"`
	Pick3URLs []string  `toml:"pick3_urls" validate:"required,min=1,dive,url"`
	Pick4URLs []string  `toml:"pick4_urls" validate:"required,min=1,dive,url"`
}

// URLs returns the ordered candidate URLs for a game.
func (s SlotConfig) URLs(game draw.Game) []string {
	if game == draw.GamePick4 {
		return s.Pick4URLs
	}
	return s.Pick3URLs
}

// StateConfig lists the slots a state publishes. Whether "night" is a third
// slot or just an evening alias is decided here per state, not in code.
type StateConfig struct {
	Name  string       `toml:"name" validate:"required"`
	Slots []SlotConfig `toml:"slots" validate:"required,min=1,dive"`
}

// Config is the full state table, keyed by lowercase state code.
type Config struct {
	States map[string]StateConfig `toml:"states" validate:"required,min=1,dive"`
}

// State looks up a state by code, case-insensitively.
func (c Config) State(code string) (StateConfig, error) {
	sc, ok := c.States[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return StateConfig{}, fmt.Errorf("%w: %s", ErrUnknownState, code)
	}
	return sc, nil
}

// Load returns the built-in table, optionally overlaid with a TOML file.
// A state present in the file replaces the built-in entry wholesale.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		var overlay Config
		if err := toml.Unmarshal(data, &overlay); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
		for code, sc := range overlay.States {
			cfg.States[strings.ToLower(code)] = sc
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks structural constraints and the alias exclusivity rule:
// slots that co-occur in one state must not share an alias, or a label match
// for one slot could satisfy a request for another.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	for code, sc := range cfg.States {
		seen := make(map[string]draw.Slot)
		for _, slot := range sc.Slots {
			for _, alias := range slot.Aliases {
				key := strings.ToLower(alias)
				if other, dup := seen[key]; dup && other != slot.Slot {
					return fmt.Errorf("state %s: alias %q shared by slots %s and %s", code, alias, other, slot.Slot)
				}
				seen[key] = slot.Slot
			}
		}
	}
	return nil
}
