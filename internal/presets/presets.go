// Package presets names well-known ant rules and loads saved ones from YAML.
package presets

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"mad-ant/pkg/sims/ant"
)

// Preset is a named rule with a display palette.
type Preset struct {
	Name      string `yaml:"name"`
	Behavior  string `yaml:"behavior"`
	ColorFrom string `yaml:"color_from"`
	ColorTo   string `yaml:"color_to"`
	Notes     string `yaml:"notes,omitempty"`
}

// File is the on-disk layout of a preset collection.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Config converts the preset into an engine configuration. Unset colors keep
// the defaults.
func (p Preset) Config() (ant.Config, error) {
	cfg := ant.DefaultConfig()
	cfg.Behavior = p.Behavior
	if p.ColorFrom != "" {
		c, err := ant.ParseColor(p.ColorFrom)
		if err != nil {
			return cfg, fmt.Errorf("preset %q color_from: %w", p.Name, err)
		}
		cfg.ColorFrom = c
	}
	if p.ColorTo != "" {
		c, err := ant.ParseColor(p.ColorTo)
		if err != nil {
			return cfg, fmt.Errorf("preset %q color_to: %w", p.Name, err)
		}
		cfg.ColorTo = c
	}
	return cfg, nil
}

var registry = map[string]Preset{}

// Register adds a preset under its name, replacing any previous entry.
func Register(p Preset) {
	if p.Name == "" || p.Behavior == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists registered presets alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes a YAML preset collection and validates every entry.
func Parse(data []byte) ([]Preset, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	seen := make(map[string]bool, len(f.Presets))
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset #%d has no name", i+1)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if _, err := ant.ParseBehavior(p.Behavior); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, err := p.Config(); err != nil {
			return nil, err
		}
	}
	return f.Presets, nil
}

// Load reads a preset file and registers its entries.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	ps, err := Parse(data)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		Register(p)
	}
	return ps, nil
}

// Save writes presets to path in the format Load reads.
func Save(path string, ps []Preset) error {
	data, err := yaml.Marshal(File{Presets: ps})
	if err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}
	return nil
}

func init() {
	for _, p := range []Preset{
		{Name: "classic", Behavior: "RL", ColorFrom: "0x000000", ColorTo: "0xFFFFFF", Notes: "builds a highway after about 10,000 ticks"},
		{Name: "rlr", Behavior: "RLR", ColorFrom: "0x000000", ColorTo: "0x1177EE", Notes: "chaotic growth"},
		{Name: "symmetric", Behavior: "LLRR", ColorFrom: "0x101010", ColorTo: "0xE0C040", Notes: "grows a symmetric pattern"},
		{Name: "square", Behavior: "LRRRRRLLR", ColorFrom: "0x000000", ColorTo: "0x44DD88", Notes: "fills a growing square"},
		{Name: "triangle", Behavior: "RRLLLRLLLRRR", ColorFrom: "0x200020", ColorTo: "0xFF7744", Notes: "builds a growing triangle"},
	} {
		ant.MustParseBehavior(p.Behavior)
		Register(p)
	}
}
