package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WeightedRef is a spawn-table row: a template id with a selection weight,
// active from MinDepth downward.
type WeightedRef struct {
	ID       string `yaml:"id"`
	Weight   int    `yaml:"weight"`
	MinDepth int    `yaml:"min_depth"`
}

// ThemeTemplate describes one dungeon flavor: which generator carves its
// maps and what spawns in them.
type ThemeTemplate struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	MapStyle string `yaml:"map_style"` // "rooms" or "caves"

	Creatures []WeightedRef `yaml:"creatures"`
	Items     []WeightedRef `yaml:"items"`
	Traps     []WeightedRef `yaml:"traps"`
}

type themeListFile struct {
	Themes []ThemeTemplate `yaml:"themes"`
	// Sequence names the theme ids in depth order; depths beyond its length
	// cycle through it.
	Sequence []string `yaml:"sequence"`
}

// ThemeTable holds dungeon themes and the depth sequence.
type ThemeTable struct {
	templates map[string]*ThemeTemplate
	sequence  []string
}

// LoadThemeTable loads themes from a YAML file.
func LoadThemeTable(path string) (*ThemeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme_list: %w", err)
	}
	var f themeListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse theme_list: %w", err)
	}
	if len(f.Themes) == 0 {
		return nil, fmt.Errorf("theme_list: no themes defined")
	}
	t := &ThemeTable{
		templates: make(map[string]*ThemeTemplate, len(f.Themes)),
		sequence:  f.Sequence,
	}
	for i := range f.Themes {
		th := &f.Themes[i]
		if th.ID == "" {
			return nil, fmt.Errorf("theme_list: entry %d has no id", i)
		}
		if th.MapStyle != "rooms" && th.MapStyle != "caves" {
			return nil, fmt.Errorf("theme_list: %s has unknown map_style %q", th.ID, th.MapStyle)
		}
		t.templates[th.ID] = th
	}
	if len(t.sequence) == 0 {
		for i := range f.Themes {
			t.sequence = append(t.sequence, f.Themes[i].ID)
		}
	}
	for _, id := range t.sequence {
		if t.templates[id] == nil {
			return nil, fmt.Errorf("theme_list: sequence names unknown theme %q", id)
		}
	}
	return t, nil
}

// Get returns a theme by ID, or nil if not found.
func (t *ThemeTable) Get(id string) *ThemeTemplate {
	return t.templates[id]
}

// ForDepth picks the theme for a dungeon depth (1-based), cycling the
// sequence past its end.
func (t *ThemeTable) ForDepth(depth int) *ThemeTemplate {
	if depth < 1 {
		depth = 1
	}
	id := t.sequence[(depth-1)%len(t.sequence)]
	return t.templates[id]
}

// Count returns the number of loaded themes.
func (t *ThemeTable) Count() int {
	return len(t.templates)
}
