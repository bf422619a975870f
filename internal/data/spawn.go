package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnTemplate holds static data for one entity kind loaded from YAML.
// The host loop turns each template into Count assembled entities at boot.
type SpawnTemplate struct {
	Kind     string  `yaml:"kind"`
	Count    int     `yaml:"count"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	DX       float64 `yaml:"dx"`
	DY       float64 `yaml:"dy"`
	HP       int     `yaml:"hp"`
	Lifetime float64 `yaml:"lifetime"` // seconds, 0 = permanent
}

type spawnFile struct {
	Spawns []SpawnTemplate `yaml:"spawns"`
}

// SpawnTable holds all spawn templates indexed by kind.
type SpawnTable struct {
	templates map[string]*SpawnTemplate
	order     []string
}

// LoadSpawnTable loads spawn templates from a YAML file.
func LoadSpawnTable(path string) (*SpawnTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn table: %w", err)
	}
	var f spawnFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse spawn table: %w", err)
	}
	t := &SpawnTable{templates: make(map[string]*SpawnTemplate, len(f.Spawns))}
	for i := range f.Spawns {
		tpl := &f.Spawns[i]
		if tpl.Kind == "" {
			return nil, fmt.Errorf("spawn entry %d has no kind", i)
		}
		if _, dup := t.templates[tpl.Kind]; dup {
			return nil, fmt.Errorf("duplicate spawn kind %q", tpl.Kind)
		}
		t.templates[tpl.Kind] = tpl
		t.order = append(t.order, tpl.Kind)
	}
	return t, nil
}

// Get returns a spawn template by kind, or nil if not found.
func (t *SpawnTable) Get(kind string) *SpawnTemplate {
	return t.templates[kind]
}

// Count returns the number of loaded templates.
func (t *SpawnTable) Count() int {
	return len(t.templates)
}

// Each visits templates in file order.
func (t *SpawnTable) Each(fn func(*SpawnTemplate)) {
	for _, kind := range t.order {
		fn(t.templates[kind])
	}
}
