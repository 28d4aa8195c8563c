package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed plugins.json
var defaultPlugins []byte

// Catalog is the immutable, ordered set of known plugin identifiers. It is
// built once at process start and shared read-only across request handlers,
// so no synchronization is needed.
type Catalog struct {
	ids []string
}

// New builds a catalog from identifiers, preserving first-seen order and
// dropping duplicates.
func New(ids []string) *Catalog {
	seen := make(map[string]struct{}, len(ids))
	ordered := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}
	return &Catalog{ids: ordered}
}

// Load reads a JSON array of plugin identifier strings from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from a JSON array of identifier strings.
func Parse(data []byte) (*Catalog, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(ids), nil
}

// Default returns the catalog embedded at build time.
func Default() *Catalog {
	c, err := Parse(defaultPlugins)
	if err != nil {
		// The embedded list is fixed at build time; failing to parse it is a
		// build defect, not a runtime condition.
		panic("catalog: invalid embedded plugins.json: " + err.Error())
	}
	return c
}

// List returns the identifiers in their original order. The returned slice
// is a copy; callers cannot mutate the catalog through it.
func (c *Catalog) List() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Has reports whether id is a known plugin identifier. Matching is an exact,
// case-sensitive linear scan.
func (c *Catalog) Has(id string) bool {
	for _, known := range c.ids {
		if known == id {
			return true
		}
	}
	return false
}

// Len returns the number of known identifiers.
func (c *Catalog) Len() int {
	return len(c.ids)
}
