package domain

// ResourceID identifies a resource within one world's catalog.
// Catalogs are disjoint namespaces: the same ID may exist in two worlds
// with different stats.
type ResourceID string

// ResourceDefinition is a static, immutable catalog entry for one minable
// resource. Rarity is expressed as "1-in-N" odds (N >= 1); hit points are
// interpolated linearly between FirstDepth and the catalog's terminal depth.
type ResourceDefinition struct {
	ID          ResourceID `json:"id"`
	Name        string     `json:"name"`
	Rarity      int        `json:"rarity"`
	Value       int64      `json:"value"`
	FirstDepth  int        `json:"first_depth"`
	FirstHealth int        `json:"first_health"`
	LastHealth  int        `json:"last_health"`

	// Display metadata, passed through to clients untouched
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// PickaxeTier defines one equippable pickaxe level and its base damage.
// Base damage is the raw per-hit value before any bonus multipliers.
type PickaxeTier struct {
	Tier       int     `json:"tier"`
	Name       string  `json:"name"`
	BaseDamage float64 `json:"base_damage"`
}

// TrainingTier defines one training area and the constant C of its
// per-hit power gain formula.
type TrainingTier struct {
	Tier         int     `json:"tier"`
	Name         string  `json:"name"`
	GainConstant float64 `json:"gain_constant"`
}

// BonusCacheDefinition describes the bonus-cache block variant: same damage
// state machine as an ore block, fixed gem payout instead of a resource.
type BonusCacheDefinition struct {
	Health      int     `json:"health"`
	GemReward   int64   `json:"gem_reward"`
	SpawnChance float64 `json:"spawn_chance"`
}
