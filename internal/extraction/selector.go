// Package extraction implements the mining loop: depth-gated weighted ore
// selection, the per-block damage state machine, and the session that ties
// them to a player's ledger. Sessions have no internal locking; the host
// serializes operations per player.
package extraction

import (
	"math"

	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/domain"
)

// RandSource yields uniform floats in [0, 1). Injected so selection is
// testable and replayable; never wired to a package-global generator.
type RandSource func() float64

// Selector picks the next resource to spawn at a depth. Eligibility is a
// permanent unlock: once FirstDepth is crossed a resource stays selectable
// at every greater depth.
type Selector struct {
	catalog *catalog.Catalog
	rng     RandSource
}

// NewSelector builds a selector over one world's catalog.
func NewSelector(cat *catalog.Catalog, rng RandSource) *Selector {
	return &Selector{catalog: cat, rng: rng}
}

// Select draws a resource for the given depth and luck ratio
// (0.20 = 20% luck). Base weight is 1/rarity; luck scales it by
// 1 + luck*log10(rarity+1), which boosts rarer resources proportionally
// more. Flat additive luck would favor common resources instead.
func (s *Selector) Select(depth int, luck float64) *domain.ResourceDefinition {
	eligible := make([]*domain.ResourceDefinition, 0, len(s.catalog.Resources))
	for i := range s.catalog.Resources {
		if s.catalog.Resources[i].FirstDepth <= depth {
			eligible = append(eligible, &s.catalog.Resources[i])
		}
	}
	// Depth progression guarantees one unlocked resource from depth zero;
	// the fallback covers a miscut catalog rather than normal flow.
	if len(eligible) == 0 {
		return s.catalog.Fallback()
	}

	weights := make([]float64, len(eligible))
	total := 0.0
	for i, def := range eligible {
		rarity := float64(def.Rarity)
		w := (1.0 / rarity) * (1.0 + luck*math.Log10(rarity+1.0))
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return s.catalog.Fallback()
	}

	r := s.rng() * total
	cumulative := 0.0
	for i, def := range eligible {
		cumulative += weights[i]
		if cumulative >= r {
			return def
		}
	}
	// Float accumulation can land r a hair past the final cumulative sum.
	return eligible[len(eligible)-1]
}
