// Package modifier combines independently-sourced bonus factors into one
// effective multiplier per category. Upgrade systems (equipment, consumables,
// prestige bonuses, companions, achievements) each contribute a percentage
// delta; percentages for the same category are summed and converted back to
// a ratio exactly once, so unrelated sources compose linearly instead of
// compounding multiplicatively.
package modifier

import "github.com/korvess/DeepMine_Go/internal/domain"

// Compose reduces the factors matching category to a single ratio:
// effective = 1 + sum(percent)/100. Factors of other categories are ignored.
// An empty factor set composes to exactly 1.0; an absent source contributes
// 0% rather than propagating a null.
func Compose(category domain.BonusCategory, factors []domain.BonusFactor) float64 {
	total := 0.0
	for _, f := range factors {
		if f.Category != category {
			continue
		}
		total += f.Percent
	}
	return 1 + total/100
}

// PercentFromRatio normalizes a ratio multiplier to a percentage above
// baseline, e.g. 1.2 -> +20. Sources expressed as ratios must pass through
// this before entering Compose.
func PercentFromRatio(ratio float64) float64 {
	return (ratio - 1) * 100
}

// ComposeAll evaluates every known category over the same factor slice.
// Useful for snapshotting a player's full multiplier set for telemetry.
func ComposeAll(factors []domain.BonusFactor) map[domain.BonusCategory]float64 {
	out := make(map[domain.BonusCategory]float64, 5)
	for _, c := range []domain.BonusCategory{
		domain.BonusDamage,
		domain.BonusCoin,
		domain.BonusGem,
		domain.BonusLuck,
		domain.BonusTrainingSpeed,
	} {
		out[c] = Compose(c, factors)
	}
	return out
}
