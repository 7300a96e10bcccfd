package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"gopkg.in/yaml.v3"

	"mad-ant/internal/presets"
	"mad-ant/pkg/sims/ant"
)

// Config represents the settings shared by the command-line tools. Values
// come from defaults, then an optional YAML file, then flags.
type Config struct {
	Preset       string `yaml:"preset"`
	Behavior     string `yaml:"behavior"`
	ColorFrom    string `yaml:"color_from"`
	ColorTo      string `yaml:"color_to"`
	PresetsFile  string `yaml:"presets_file"`
	StepsPerTick int    `yaml:"steps_per_tick"`
	TPS          int    `yaml:"tps"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	CellSize     int    `yaml:"cell_size"`

	// Set holds engine settings in ant.FromMap form; they win over every
	// field above. Settings holds the raw key=value pairs from --set.
	Set      map[string]string `yaml:"set"`
	Settings []string          `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:       "rlr",
		StepsPerTick: 8,
		TPS:          60,
		Width:        500,
		Height:       500,
		CellSize:     16,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ConfigPath finds the value of -c/--config in args so the file can be loaded
// before flags are bound on top of it.
func ConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, name := range []string{"-c", "--config", "-config"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, name+"="); ok {
				return v
			}
		}
	}
	return ""
}

// Bind attaches the configuration to the provided parser. configPath only
// documents the flag; ConfigPath reads it ahead of parsing.
func (c *Config) Bind(p *flaggy.Parser, configPath *string) {
	p.String(configPath, "c", "config", "YAML configuration file")
	p.String(&c.Preset, "p", "preset", "named rule ("+strings.Join(presets.Names(), "|")+")")
	p.String(&c.Behavior, "b", "behavior", "rule string of L and R turns; overrides the preset")
	p.String(&c.ColorFrom, "", "color-from", "palette start color, 0xRRGGBB")
	p.String(&c.ColorTo, "", "color-to", "palette end color, 0xRRGGBB")
	p.String(&c.PresetsFile, "", "presets", "YAML file with extra presets")
	p.Int(&c.StepsPerTick, "s", "steps-per-tick", "ant moves per frame")
	p.Int(&c.TPS, "t", "tps", "frames per second")
	p.Int(&c.Width, "", "width", "view width in pixels")
	p.Int(&c.Height, "", "height", "view height in pixels")
	p.Int(&c.CellSize, "", "cell-size", "pixels per cell before zooming out")
	p.StringSlice(&c.Settings, "", "set", "engine setting as key=value (behavior, steps_per_tick, color_from, color_to); repeatable")
}

// settings merges the YAML set block with --set pairs, flags last.
func (c *Config) settings() (map[string]string, error) {
	m := make(map[string]string, len(c.Set)+len(c.Settings))
	for k, v := range c.Set {
		m[k] = v
	}
	for _, kv := range c.Settings {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		m[strings.TrimSpace(k)] = v
	}
	return m, nil
}

// AntConfig resolves the preset and overrides into an engine configuration.
func (c *Config) AntConfig() (ant.Config, error) {
	if c.PresetsFile != "" {
		if _, err := presets.Load(c.PresetsFile); err != nil {
			return ant.Config{}, err
		}
	}

	cfg := ant.DefaultConfig()
	if c.Preset != "" {
		p, ok := presets.Lookup(c.Preset)
		if !ok {
			return ant.Config{}, fmt.Errorf("unknown preset %q", c.Preset)
		}
		pc, err := p.Config()
		if err != nil {
			return ant.Config{}, err
		}
		cfg = pc
	}
	if c.Behavior != "" {
		cfg.Behavior = c.Behavior
	}
	if c.ColorFrom != "" {
		v, err := ant.ParseColor(c.ColorFrom)
		if err != nil {
			return ant.Config{}, fmt.Errorf("color-from: %w", err)
		}
		cfg.ColorFrom = v
	}
	if c.ColorTo != "" {
		v, err := ant.ParseColor(c.ColorTo)
		if err != nil {
			return ant.Config{}, fmt.Errorf("color-to: %w", err)
		}
		cfg.ColorTo = v
	}
	if c.StepsPerTick > 0 {
		cfg.StepsPerTick = c.StepsPerTick
	}
	set, err := c.settings()
	if err != nil {
		return ant.Config{}, err
	}
	if cfg, err = ant.FromMap(cfg, set); err != nil {
		return ant.Config{}, fmt.Errorf("--set: %w", err)
	}
	if _, err := ant.ParseBehavior(cfg.Behavior); err != nil {
		return ant.Config{}, err
	}
	return cfg, nil
}

// GridSize is the initial view in cells.
func (c *Config) GridSize() (cols, rows int) {
	size := c.CellSize
	if size <= 0 {
		size = 16
	}
	return max(c.Width/size, 1), max(c.Height/size, 1)
}

// ParseArgs builds a Config for a command: defaults, then the YAML file named
// by -c/--config, then the remaining flags. extra may bind command-specific
// flags on the same parser.
func ParseArgs(name, description string, args []string, extra func(p *flaggy.Parser)) (*Config, error) {
	cfg := NewConfig()
	configPath := ConfigPath(args)
	if configPath != "" {
		loaded, err := Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	p := flaggy.NewParser(name)
	p.Description = description
	cfg.Bind(p, &configPath)
	if extra != nil {
		extra(p)
	}
	if err := p.ParseArgs(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
