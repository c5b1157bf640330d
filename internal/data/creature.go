package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpellDef is the single spell a creature (or the player) knows.
type SpellDef struct {
	Name     string `yaml:"name"`
	Damage   int    `yaml:"damage"`
	Range    int    `yaml:"range"`
	Cooldown int    `yaml:"cooldown"`
	ManaCost int    `yaml:"mana_cost"`
}

// GearChance rolls a starting item for a spawned creature. Chance is 0..1.
type GearChance struct {
	ItemID string  `yaml:"item_id"`
	Chance float64 `yaml:"chance"`
}

// CreatureTemplate holds static data for a creature type loaded from YAML.
type CreatureTemplate struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Glyph   string       `yaml:"glyph"`
	Color   string       `yaml:"color"`
	HP      int          `yaml:"hp"`
	Power   int          `yaml:"power"`
	Defense int          `yaml:"defense"`
	XP      int          `yaml:"xp"`
	Mana    int          `yaml:"mana"`
	Spell   *SpellDef    `yaml:"spell,omitempty"`
	Gear    []GearChance `yaml:"gear,omitempty"`
}

// Rune returns the creature's map glyph.
func (t *CreatureTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

type creatureListFile struct {
	Creatures []CreatureTemplate `yaml:"creatures"`
}

// CreatureTable holds all creature templates indexed by ID.
type CreatureTable struct {
	templates map[string]*CreatureTemplate
}

// LoadCreatureTable loads creature templates from a YAML file.
func LoadCreatureTable(path string) (*CreatureTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read creature_list: %w", err)
	}
	var f creatureListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse creature_list: %w", err)
	}
	t := &CreatureTable{templates: make(map[string]*CreatureTemplate, len(f.Creatures))}
	for i := range f.Creatures {
		c := &f.Creatures[i]
		if c.ID == "" {
			return nil, fmt.Errorf("creature_list: entry %d has no id", i)
		}
		t.templates[c.ID] = c
	}
	return t, nil
}

// Get returns a creature template by ID, or nil if not found.
func (t *CreatureTable) Get(id string) *CreatureTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *CreatureTable) Count() int {
	return len(t.templates)
}
