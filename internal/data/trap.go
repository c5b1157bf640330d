package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrapTemplate holds static data for a floor trap loaded from YAML.
type TrapTemplate struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Glyph  string     `yaml:"glyph"`
	Color  string     `yaml:"color"`
	Damage int        `yaml:"damage"`
	Poison *PoisonDef `yaml:"poison,omitempty"`
}

// Rune returns the trap's map glyph once revealed.
func (t *TrapTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '^'
}

type trapListFile struct {
	Traps []TrapTemplate `yaml:"traps"`
}

// TrapTable holds all trap templates indexed by ID.
type TrapTable struct {
	templates map[string]*TrapTemplate
}

// LoadTrapTable loads trap templates from a YAML file.
func LoadTrapTable(path string) (*TrapTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trap_list: %w", err)
	}
	var f trapListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse trap_list: %w", err)
	}
	t := &TrapTable{templates: make(map[string]*TrapTemplate, len(f.Traps))}
	for i := range f.Traps {
		tr := &f.Traps[i]
		if tr.ID == "" {
			return nil, fmt.Errorf("trap_list: entry %d has no id", i)
		}
		t.templates[tr.ID] = tr
	}
	return t, nil
}

// Get returns a trap template by ID, or nil if not found.
func (t *TrapTable) Get(id string) *TrapTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *TrapTable) Count() int {
	return len(t.templates)
}
