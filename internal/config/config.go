package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/arcanaland/playdeck/internal/card"
)

// Config represents the application configuration
type Config struct {
	SuitOrder []string `toml:"suit_order"`
	RankOrder []string `toml:"rank_order"`
	HandSize  int      `toml:"hand_size"`
	Form      string   `toml:"form"`
	Color     bool     `toml:"color"`
}

// Environment variables that override the config file
const (
	EnvConfigFile = "PLAYDECK_CONFIG"
	EnvHandSize   = "PLAYDECK_HAND_SIZE"
	EnvForm       = "PLAYDECK_FORM"
	EnvSuitOrder  = "PLAYDECK_SUIT_ORDER"
	EnvRankOrder  = "PLAYDECK_RANK_ORDER"
	EnvColor      = "PLAYDECK_COLOR"
)

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		SuitOrder: []string{"clubs", "diamonds", "hearts", "spades"},
		RankOrder: []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"},
		HandSize:  5,
		Form:      string(card.FormSymbol),
		Color:     true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	return filepath.Join(GetXDGConfigHome(), "playdeck", "config.toml")
}

// Load reads .env if present, then the config file, then applies environment overrides
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads the config file, creating it with defaults if it does not exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(configPath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return LoadFile(configPath)
}

// LoadFile decodes the config file at path on top of the defaults
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating the parent directory
func Save(path string, cfg *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvHandSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHandSize, err)
		}
		c.HandSize = n
	}
	if v := os.Getenv(EnvForm); v != "" {
		c.Form = v
	}
	if v := os.Getenv(EnvSuitOrder); v != "" {
		c.SuitOrder = splitList(v)
	}
	if v := os.Getenv(EnvRankOrder); v != "" {
		c.RankOrder = splitList(v)
	}
	if v := os.Getenv(EnvColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvColor, err)
		}
		c.Color = b
	}
	return nil
}

// Orders parses the configured rank and suit orders
func (c *Config) Orders() ([]card.Rank, []card.Suit, error) {
	// Empty lists stay nil so callers fall back to the default orders
	var ranks []card.Rank
	for _, s := range c.RankOrder {
		r, err := card.ParseRank(s)
		if err != nil {
			return nil, nil, card.WrapError(card.ErrInvalidOrder, "rank_order", err)
		}
		ranks = append(ranks, r)
	}

	var suits []card.Suit
	for _, s := range c.SuitOrder {
		st, err := card.ParseSuit(s)
		if err != nil {
			return nil, nil, card.WrapError(card.ErrInvalidOrder, "suit_order", err)
		}
		suits = append(suits, st)
	}

	return ranks, suits, nil
}

// DisplayForm parses the configured display form
func (c *Config) DisplayForm() (card.Form, error) {
	return card.ParseForm(c.Form)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
