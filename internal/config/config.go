package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/elizacamber/composeplayground/internal/core"
)

const (
	configFileName = "config.toml"
	dirName        = "playground"
	// ScreenEnv overrides the screen selected in config.toml.
	ScreenEnv = "PLAYGROUND_SCREEN"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	ml := core.DefaultMoreLessOptions()
	cfg := Config{
		Screen: core.ScreenMoreLess.String(),
		Theme:  "dracula",
		Stagger: StaggerConfig{
			Rows:        3,
			ChipPadding: 1,
		},
		MoreLess: MoreLessConfig{
			MaxLines:          ml.MaxLines,
			Width:             40,
			CollapsedTag:      ml.CollapsedTag,
			ExpandedTag:       ml.ExpandedTag,
			CollapsedTagSpace: ml.CollapsedTagSpace,
			ExpandedTagSpace:  ml.ExpandedTagSpace,
		},
		Keys: InputConfig{
			Toggle:       " ",
			ScrollTop:    "t",
			ScrollBottom: "b",
			NextScreen:   "tab",
			PrevScreen:   "shift+tab",
		},
	}
	cfg.Keys.InitControls()
	return cfg
}

// ApplyDefaults fills every unset field from DefaultConfig and initialises
// the navigation key sets.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if strings.TrimSpace(c.Screen) == "" {
		c.Screen = d.Screen
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = d.Theme
	}
	if c.Stagger.Rows == 0 {
		c.Stagger.Rows = d.Stagger.Rows
	}
	if c.MoreLess.MaxLines == 0 {
		c.MoreLess.MaxLines = d.MoreLess.MaxLines
	}
	if c.MoreLess.Width == 0 {
		c.MoreLess.Width = d.MoreLess.Width
	}
	// Tags may legitimately be blank spaces, but not entirely absent.
	if c.MoreLess.CollapsedTag == "" {
		c.MoreLess.CollapsedTag = d.MoreLess.CollapsedTag
	}
	if c.MoreLess.ExpandedTag == "" {
		c.MoreLess.ExpandedTag = d.MoreLess.ExpandedTag
	}
	if c.MoreLess.CollapsedTagSpace == "" {
		c.MoreLess.CollapsedTagSpace = d.MoreLess.CollapsedTagSpace
	}
	if c.MoreLess.ExpandedTagSpace == "" {
		c.MoreLess.ExpandedTagSpace = d.MoreLess.ExpandedTagSpace
	}
	if c.Keys.Toggle == "" {
		c.Keys.Toggle = d.Keys.Toggle
	}
	if strings.TrimSpace(c.Keys.ScrollTop) == "" {
		c.Keys.ScrollTop = d.Keys.ScrollTop
	}
	if strings.TrimSpace(c.Keys.ScrollBottom) == "" {
		c.Keys.ScrollBottom = d.Keys.ScrollBottom
	}
	if strings.TrimSpace(c.Keys.NextScreen) == "" {
		c.Keys.NextScreen = d.Keys.NextScreen
	}
	if strings.TrimSpace(c.Keys.PrevScreen) == "" {
		c.Keys.PrevScreen = d.Keys.PrevScreen
	}
	c.Keys.InitControls()
}

// ClampConfig keeps numeric settings inside the ranges the screens can render.
func ClampConfig(cfg *Config) {
	cfg.Stagger.Rows = clampInt(cfg.Stagger.Rows, 1, 9)
	cfg.Stagger.ChipPadding = clampInt(cfg.Stagger.ChipPadding, 0, 4)
	cfg.MoreLess.MaxLines = clampInt(cfg.MoreLess.MaxLines, 1, 20)
	cfg.MoreLess.Width = clampInt(cfg.MoreLess.Width, 10, 200)
	if !slices.Contains(ThemeNames(), strings.ToLower(strings.TrimSpace(cfg.Theme))) {
		log.Printf("unknown theme %q, using dracula (available: %s)", cfg.Theme, strings.Join(ThemeNames(), ", "))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoreLessOptions converts the [more_less] table into widget options.
func (c Config) MoreLessOptions() core.MoreLessOptions {
	return core.MoreLessOptions{
		MaxLines:          c.MoreLess.MaxLines,
		CollapsedTag:      c.MoreLess.CollapsedTag,
		ExpandedTag:       c.MoreLess.ExpandedTag,
		CollapsedTagSpace: c.MoreLess.CollapsedTagSpace,
		ExpandedTagSpace:  c.MoreLess.ExpandedTagSpace,
	}
}

// StartScreen resolves the configured screen, honouring PLAYGROUND_SCREEN.
func (c Config) StartScreen() core.Screen {
	if env := strings.TrimSpace(os.Getenv(ScreenEnv)); env != "" {
		if s, ok := core.ParseScreen(env); ok {
			return s
		}
		log.Printf("ignoring unknown %s=%q", ScreenEnv, env)
	}
	s, ok := core.ParseScreen(c.Screen)
	if !ok {
		log.Printf("unknown screen %q, using %s", c.Screen, s)
	}
	return s
}

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		return filepath.Join(home, "."+dirName), nil
	}
	return filepath.Join(configDir, dirName), nil
}

// WriteConfig encodes cfg to path, creating parent directories.
func WriteConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ReadConfig decodes path on top of an empty config and applies defaults.
func ReadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	md, err := toml.Decode(os.ExpandEnv(string(data)), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("warning: unknown config key %q in %s", key.String(), path)
	}
	cfg.ApplyDefaults()
	ClampConfig(&cfg)
	return cfg, nil
}

// LoadConfig reads config.toml from the config directory, writing the
// defaults on first run. A broken file never stops the app: the bundle
// carries the defaults and the error.
func LoadConfig() ConfigBundle {
	configDir, err := GetConfigDir()
	if err != nil {
		log.Printf("could not resolve a config directory: %v", err)
		return ConfigBundle{Config: DefaultConfig(), Err: err}
	}
	return LoadConfigFrom(configDir)
}

// LoadConfigFrom is LoadConfig for an explicit directory.
func LoadConfigFrom(configDir string) ConfigBundle {
	path := filepath.Join(configDir, configFileName)
	bundle := ConfigBundle{ConfigDir: configDir, Path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		bundle.Config = DefaultConfig()
		if err := WriteConfig(path, bundle.Config); err != nil {
			log.Printf("warning: could not write default config: %v", err)
		} else {
			log.Printf("wrote default config to %s", path)
		}
		return bundle
	}

	log.Printf("Loading config from: %s", path)
	cfg, err := ReadConfig(path)
	if err != nil {
		log.Printf("config error, falling back to defaults: %v", err)
		bundle.Config = DefaultConfig()
		bundle.Err = err
		return bundle
	}
	log.Printf("Loaded config: screen=%s rows=%d max_lines=%d", cfg.Screen, cfg.Stagger.Rows, cfg.MoreLess.MaxLines)
	bundle.Config = cfg
	return bundle
}
