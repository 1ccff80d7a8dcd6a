// Package catalog holds the static per-world resource tables and the
// depth-indexed health model. Catalogs are loaded once at startup and
// treated as immutable for the process lifetime; every component that needs
// one receives the registry by reference instead of going through a global.
package catalog

import (
	"fmt"
	"sort"

	"github.com/korvess/DeepMine_Go/internal/domain"
)

// Catalog is the full static table for one world/biome.
type Catalog struct {
	World            string                      `json:"world"`
	TerminalDepth    int                         `json:"terminal_depth"`
	FallbackResource domain.ResourceID           `json:"fallback_resource"`
	Resources        []domain.ResourceDefinition `json:"resources"`
	BonusCache       domain.BonusCacheDefinition `json:"bonus_cache"`
	PickaxeTiers     []domain.PickaxeTier        `json:"pickaxe_tiers"`
	TrainingTiers    []domain.TrainingTier       `json:"training_tiers"`

	byID map[domain.ResourceID]*domain.ResourceDefinition
}

// New validates and indexes a programmatically built catalog. File-based
// loading goes through Loader instead; this path skips the JSON schema
// check but runs the same semantic validation.
func New(c Catalog) (*Catalog, error) {
	if err := validateCatalog(&c); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, err)
	}
	c.index()
	return &c, nil
}

// Registry maps world IDs to their catalogs. Constructed by the composition
// root and passed to the components that need it.
type Registry struct {
	catalogs map[string]*Catalog
}

// NewRegistry builds a registry from validated catalogs.
func NewRegistry(catalogs []*Catalog) *Registry {
	r := &Registry{catalogs: make(map[string]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		r.catalogs[c.World] = c
	}
	return r
}

// World returns the catalog for a world ID.
func (r *Registry) World(id string) (*Catalog, error) {
	c, ok := r.catalogs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorldNotFound, id)
	}
	return c, nil
}

// Worlds returns the known world IDs in sorted order.
func (r *Registry) Worlds() []string {
	ids := make([]string, 0, len(r.catalogs))
	for id := range r.catalogs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// index builds the ID lookup map. Called once by the loader after
// validation; catalogs are read-only afterwards.
func (c *Catalog) index() {
	c.byID = make(map[domain.ResourceID]*domain.ResourceDefinition, len(c.Resources))
	for i := range c.Resources {
		c.byID[c.Resources[i].ID] = &c.Resources[i]
	}
}

// Resource looks up a resource definition by ID.
func (c *Catalog) Resource(id domain.ResourceID) (*domain.ResourceDefinition, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s in world %s", domain.ErrResourceNotFound, id, c.World)
	}
	return def, nil
}

// Fallback returns the designated fallback resource. The loader guarantees
// it exists.
func (c *Catalog) Fallback() *domain.ResourceDefinition {
	return c.byID[c.FallbackResource]
}

// MaxPickaxeTier returns the highest defined pickaxe tier. Persisted records
// referencing a tier beyond this are clamped, not rejected.
func (c *Catalog) MaxPickaxeTier() int {
	maxTier := 0
	for _, p := range c.PickaxeTiers {
		if p.Tier > maxTier {
			maxTier = p.Tier
		}
	}
	return maxTier
}

// Pickaxe returns the pickaxe definition for a tier, clamping out-of-range
// tiers to the nearest defined one.
func (c *Catalog) Pickaxe(tier int) domain.PickaxeTier {
	return pickClamped(c.PickaxeTiers, tier, func(p domain.PickaxeTier) int { return p.Tier })
}

// Training returns the training-tier definition for a tier, clamping
// out-of-range tiers to the nearest defined one.
func (c *Catalog) Training(tier int) domain.TrainingTier {
	return pickClamped(c.TrainingTiers, tier, func(t domain.TrainingTier) int { return t.Tier })
}

// pickClamped selects the entry whose tier matches, or the closest defined
// tier below (falling back to the lowest). Tier slices are validated
// non-empty and ascending by the loader.
func pickClamped[T any](entries []T, tier int, tierOf func(T) int) T {
	best := entries[0]
	for _, e := range entries {
		if tierOf(e) > tier {
			break
		}
		best = e
	}
	return best
}
