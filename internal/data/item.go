package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PoisonDef is the poison an item applies on hit.
type PoisonDef struct {
	Damage   int `yaml:"damage"`
	Duration int `yaml:"duration"`
}

// ItemTemplate holds static data for an item type loaded from YAML. Zero
// values mean the item lacks that capability.
type ItemTemplate struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Glyph      string `yaml:"glyph"`
	Color      string `yaml:"color"`
	Consumable bool   `yaml:"consumable"`

	Healing   int  `yaml:"healing"`
	Teleports bool `yaml:"teleports"`
	Damage    int  `yaml:"damage"`
	Radius    int  `yaml:"radius"`
	Range     int  `yaml:"range"`

	// "weapon" or "armor"; empty for non-equippables.
	Slot         string `yaml:"slot"`
	PowerBonus   int    `yaml:"power_bonus"`
	DefenseBonus int    `yaml:"defense_bonus"`

	AmmoType     string     `yaml:"ammo_type"`     // this item IS ammunition of that type
	RequiresAmmo string     `yaml:"requires_ammo"` // this item consumes ammunition of that type
	Poison       *PoisonDef `yaml:"poison,omitempty"`
}

// Rune returns the item's map glyph.
func (t *ItemTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

type itemListFile struct {
	Items []ItemTemplate `yaml:"items"`
}

// ItemTable holds all item templates indexed by ID.
type ItemTable struct {
	templates map[string]*ItemTemplate
}

// LoadItemTable loads item templates from a YAML file.
func LoadItemTable(path string) (*ItemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item_list: %w", err)
	}
	var f itemListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse item_list: %w", err)
	}
	t := &ItemTable{templates: make(map[string]*ItemTemplate, len(f.Items))}
	for i := range f.Items {
		it := &f.Items[i]
		if it.ID == "" {
			return nil, fmt.Errorf("item_list: entry %d has no id", i)
		}
		if it.Slot != "" && it.Slot != "weapon" && it.Slot != "armor" {
			return nil, fmt.Errorf("item_list: %s has unknown slot %q", it.ID, it.Slot)
		}
		t.templates[it.ID] = it
	}
	return t, nil
}

// Get returns an item template by ID, or nil if not found.
func (t *ItemTable) Get(id string) *ItemTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *ItemTable) Count() int {
	return len(t.templates)
}
