// Package yaml loads machine definitions from YAML documents.
//
// The document is a declarative table: named states (one initial, at
// least one final) and ordered transitions referencing states and
// condition identifiers by name. Conditions and callbacks themselves
// are Go functions, bound through a registry.Registry; a document can
// also be parsed unbound for structure-only tooling such as diagram
// generation and validation.
package yaml

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/aretw0/ratchet/pkg/domain"
	"github.com/aretw0/ratchet/pkg/registry"
)

// Load reads and parses a machine definition file. See Parse.
func Load(path string, reg *registry.Registry) (*domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read machine file: %w", err)
	}
	def, err := Parse(data, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a machine document into a domain.Definition, keeping
// the document's state and transition order. If reg is non-nil its
// conditions and callbacks are bound into the definition; otherwise the
// definition is structural only and model building will fail with
// unresolved conditions, which is what structure-only tooling wants.
func Parse(data []byte, reg *registry.Registry) (*domain.Definition, error) {
	var raw map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var doc machineDoc
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode machine document: %w", err)
	}

	if doc.Name == "" {
		return nil, fmt.Errorf("machine document has no name")
	}

	def := &domain.Definition{
		Name:        doc.Name,
		Description: doc.Description,
		Conditions:  map[string]domain.Condition{},
		Callbacks:   map[string]domain.Callback{},
	}

	byName := make(map[string]*domain.State, len(doc.States))
	for _, sd := range doc.States {
		var opts []domain.StateOption
		if sd.Initial {
			opts = append(opts, domain.Initial())
		}
		if sd.Final {
			opts = append(opts, domain.Final())
		}
		if sd.Description != "" {
			opts = append(opts, domain.WithDescription(sd.Description))
		}
		s := domain.NewState(sd.Name, opts...)
		if sd.Name != "" {
			if _, dup := byName[sd.Name]; dup {
				return nil, fmt.Errorf("state %q declared twice", sd.Name)
			}
			byName[sd.Name] = s
		}
		def.States = append(def.States, s)
	}

	for i, td := range doc.Transitions {
		name := td.Name
		if name == "" {
			return nil, fmt.Errorf("transition #%d has no name", i+1)
		}
		source, ok := byName[td.From]
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown source state %q", name, td.From)
		}
		target, ok := byName[td.To]
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown target state %q", name, td.To)
		}

		var opts []domain.TransitionOption
		if td.Description != "" {
			opts = append(opts, domain.Describe(td.Description))
		}
		tr := domain.NewTransition(source, target, td.Condition, opts...)
		def.Transitions = append(def.Transitions, tr.Renamed(name))
	}

	if reg != nil {
		reg.Bind(def)
	}

	return def, nil
}
