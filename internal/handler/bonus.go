package handler

import (
	"strings"

	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/modifier"
)

// BonusPayload is one bonus source contribution supplied by the caller.
// Percent is a delta above baseline (20 = +20%).
type BonusPayload struct {
	Category string  `json:"category" validate:"required,bonuscategory"`
	Percent  float64 `json:"percent"`
	Source   string  `json:"source" validate:"max=100"`
}

// composeMultipliers reduces the request's bonus payloads to one effective
// multiplier per category. Categories with no contributions compose to 1.0.
func composeMultipliers(bonuses []BonusPayload) map[domain.BonusCategory]float64 {
	factors := make([]domain.BonusFactor, 0, len(bonuses))
	for _, b := range bonuses {
		factors = append(factors, domain.BonusFactor{
			Category: domain.BonusCategory(strings.ToLower(b.Category)),
			Percent:  b.Percent,
			Source:   b.Source,
		})
	}
	return modifier.ComposeAll(factors)
}

// BlockInfo describes the live block in API responses
type BlockInfo struct {
	Resource   string `json:"resource,omitempty"`
	BonusCache bool   `json:"bonus_cache,omitempty"`
	CurrentHP  int    `json:"current_hp"`
	MaxHP      int    `json:"max_hp"`
}

func describeBlock(b *extraction.Block) BlockInfo {
	info := BlockInfo{
		BonusCache: b.IsBonusCache(),
		CurrentHP:  b.CurrentHP(),
		MaxHP:      b.MaxHP(),
	}
	if res := b.Resource(); res != nil {
		info.Resource = string(res.ID)
	}
	return info
}
