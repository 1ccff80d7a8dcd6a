package catalog

import (
	"math"

	"github.com/korvess/DeepMine_Go/internal/domain"
)

// HealthAt computes a resource's hit points at a depth. Depth is clamped to
// [FirstDepth, TerminalDepth]; between the bounds health interpolates
// linearly from FirstHealth to LastHealth, rounded to nearest integer.
// Deterministic for identical inputs; this is the basis for HP fairness
// across depth.
func (c *Catalog) HealthAt(def *domain.ResourceDefinition, depth int) int {
	if depth <= def.FirstDepth {
		return def.FirstHealth
	}
	if depth >= c.TerminalDepth {
		return def.LastHealth
	}

	span := float64(c.TerminalDepth - def.FirstDepth)
	progress := float64(depth-def.FirstDepth) / span
	health := float64(def.FirstHealth) + progress*float64(def.LastHealth-def.FirstHealth)
	return int(math.Round(health))
}
