// Package persona maps persona keys to the fixed instruction blocks that
// define each assistant surface.
package persona

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed personas.yaml
var personasYAML []byte

// Fallback is the bare persona used when a key is unknown or the
// registry itself cannot be loaded. A request never fails for lack of a
// persona.
var Fallback = Persona{
	Key:  "default",
	Name: "Assistant",
	Role: "You are a helpful assistant.",
}

// Persona is a named, immutable instruction block.
type Persona struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`

	// ScheduleAgent marks mutation-capable surfaces: conversations where
	// the model may emit a structured schedule payload instead of prose.
	ScheduleAgent bool `yaml:"schedule_agent"`
}

type registryFile struct {
	Default  string    `yaml:"default"`
	Personas []Persona `yaml:"personas"`
}

// Registry is the immutable key → persona table, loaded once at startup.
type Registry struct {
	byKey      map[string]Persona
	defaultKey string
}

// Load parses the embedded persona table.
func Load() (*Registry, error) {
	return parse(personasYAML)
}

func parse(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse persona registry: %w", err)
	}
	if len(f.Personas) == 0 {
		return nil, fmt.Errorf("persona registry is empty")
	}

	byKey := make(map[string]Persona, len(f.Personas))
	for _, p := range f.Personas {
		if p.Key == "" {
			return nil, fmt.Errorf("persona with empty key")
		}
		if _, dup := byKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate persona key %q", p.Key)
		}
		byKey[p.Key] = p
	}

	if _, ok := byKey[f.Default]; !ok {
		return nil, fmt.Errorf("default persona %q not defined", f.Default)
	}

	return &Registry{byKey: byKey, defaultKey: f.Default}, nil
}

// Lookup returns the persona for key, falling back to the registry
// default for unknown or empty keys. Never fails.
func (r *Registry) Lookup(key string) Persona {
	if r == nil {
		return Fallback
	}
	if p, ok := r.byKey[key]; ok {
		return p
	}
	return r.byKey[r.defaultKey]
}

// Keys returns all registered persona keys.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	return keys
}
