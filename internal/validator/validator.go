package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/playdeck/internal/card"
	"github.com/arcanaland/playdeck/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file. The returned error is set only when the
// file cannot be read or parsed at all.
func (v *Validator) Validate() (ValidationResults, error) {
	cfg, err := v.decode()
	if err != nil {
		return v.Results, err
	}

	v.validateHandSize(cfg)
	v.validateForm(cfg)
	v.validateSuitOrder(cfg)
	v.validateRankOrder(cfg)

	return v.Results, nil
}

func (v *Validator) decode() (*config.Config, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}

	for _, key := range meta.Undecoded() {
		v.warn("unknown key %q", key.String())
	}
	return cfg, nil
}

func (v *Validator) validateHandSize(cfg *config.Config) {
	switch {
	case cfg.HandSize < 0:
		v.fail("hand_size must not be negative, got %d", cfg.HandSize)
	case cfg.HandSize > card.DeckSize:
		v.fail("hand_size %d exceeds the %d cards of a deck", cfg.HandSize, card.DeckSize)
	case cfg.HandSize == 0:
		v.warn("hand_size is 0, dealt hands will be empty")
	}
}

func (v *Validator) validateForm(cfg *config.Config) {
	if _, err := card.ParseForm(cfg.Form); err != nil {
		var names []string
		for _, f := range card.Forms {
			names = append(names, string(f))
		}
		v.fail("unknown form %q (supported: %s)", cfg.Form, strings.Join(names, ", "))
	}
}

func (v *Validator) validateSuitOrder(cfg *config.Config) {
	if len(cfg.SuitOrder) == 0 {
		v.warn("suit_order is empty, the default order will be used")
		return
	}

	seen := make(map[card.Suit]bool)
	for _, name := range cfg.SuitOrder {
		s, err := card.ParseSuit(name)
		if err != nil {
			v.fail("suit_order: unknown suit %q", name)
			continue
		}
		if seen[s] {
			v.fail("suit_order: %s listed more than once", s)
		}
		seen[s] = true
	}

	for s := card.Clubs; s <= card.Spades; s++ {
		if !seen[s] {
			v.warn("suit_order: %s not listed, it will sort last", s)
		}
	}
}

func (v *Validator) validateRankOrder(cfg *config.Config) {
	if len(cfg.RankOrder) == 0 {
		v.warn("rank_order is empty, the default order will be used")
		return
	}

	seen := make(map[card.Rank]bool)
	for _, name := range cfg.RankOrder {
		r, err := card.ParseRank(name)
		if err != nil {
			v.fail("rank_order: unknown rank %q", name)
			continue
		}
		if seen[r] {
			v.fail("rank_order: %s listed more than once", r)
		}
		seen[r] = true
	}

	for r := card.Ace; r <= card.King; r++ {
		if !seen[r] {
			v.warn("rank_order: %s not listed, it will sort last", r)
		}
	}
}

func (v *Validator) fail(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warn(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
