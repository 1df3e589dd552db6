// Package properties holds the rental property registry: static reference
// data seeded at startup. Transactions point at properties by ID; the
// registry never tracks its transactions.
package properties

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

// Registry provides in-memory lookup over the property list.
type Registry struct {
	properties []model.Property
	byID       map[string]model.Property
}

// NewRegistry creates a Registry from a slice of properties.
func NewRegistry(props []model.Property) *Registry {
	byID := make(map[string]model.Property, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}
	return &Registry{properties: props, byID: byID}
}

// Load reads properties.csv from a workspace root and returns a Registry.
func Load(root string) (*Registry, error) {
	path := filepath.Join(root, "properties.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening property registry: %w", err)
	}
	defer f.Close()

	props, err := ReadProperties(f)
	if err != nil {
		return nil, fmt.Errorf("reading property registry: %w", err)
	}
	return NewRegistry(props), nil
}

// All returns all properties in registry order.
func (r *Registry) All() []model.Property {
	return r.properties
}

// Get returns a property by ID.
func (r *Registry) Get(id string) (model.Property, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Exists reports whether a property ID exists.
func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Save writes the registry to <root>/properties.csv.
func (r *Registry) Save(root string) error {
	path := filepath.Join(root, "properties.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating property registry file: %w", err)
	}
	defer f.Close()

	if err := WriteProperties(f, r.properties); err != nil {
		return fmt.Errorf("writing property registry: %w", err)
	}
	return nil
}
