package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korvess/DeepMine_Go/internal/domain"
)

func testCatalog() *Catalog {
	c := &Catalog{
		World:            "testworld",
		TerminalDepth:    1000,
		FallbackResource: "stone",
		Resources: []domain.ResourceDefinition{
			{ID: "stone", Name: "Stone", Rarity: 1, Value: 1, FirstDepth: 0, FirstHealth: 10, LastHealth: 400},
			{ID: "iron", Name: "Iron", Rarity: 8, Value: 15, FirstDepth: 25, FirstHealth: 40, LastHealth: 900},
			{ID: "mythril", Name: "Mythril", Rarity: 1500, Value: 9000, FirstDepth: 400, FirstHealth: 2500, LastHealth: 6000},
		},
		BonusCache:    domain.BonusCacheDefinition{Health: 60, GemReward: 5, SpawnChance: 0.04},
		PickaxeTiers:  []domain.PickaxeTier{{Tier: 0, Name: "Wood", BaseDamage: 1}, {Tier: 1, Name: "Iron", BaseDamage: 5}, {Tier: 2, Name: "Gilded", BaseDamage: 25}},
		TrainingTiers: []domain.TrainingTier{{Tier: 0, Name: "Yard", GainConstant: 1}, {Tier: 1, Name: "Gym", GainConstant: 12}},
	}
	c.index()
	return c
}

func TestHealthAt(t *testing.T) {
	c := testCatalog()
	stone, _ := c.Resource("stone")
	iron, _ := c.Resource("iron")

	tests := []struct {
		name  string
		def   *domain.ResourceDefinition
		depth int
		want  int
	}{
		{"below first depth clamps to first health", iron, 0, 40},
		{"at first depth", iron, 25, 40},
		{"at terminal depth", iron, 1000, 900},
		{"beyond terminal clamps to last health", iron, 5000, 900},
		{"midpoint interpolates", stone, 500, 205},
		{"rounds to nearest", iron, 26, 41}, // 40 + (1/975)*860 = 40.88...
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.HealthAt(tt.def, tt.depth))
		})
	}
}

func TestHealthAt_Deterministic(t *testing.T) {
	c := testCatalog()
	iron, _ := c.Resource("iron")
	first := c.HealthAt(iron, 317)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.HealthAt(iron, 317))
	}
}

// Health must be non-decreasing with depth for every catalog entry whose
// LastHealth >= FirstHealth. Verified per entry, not assumed universally.
func TestHealthAt_MonotonicPerEntry(t *testing.T) {
	c := testCatalog()
	for _, res := range c.Resources {
		res := res
		if res.LastHealth < res.FirstHealth {
			continue
		}
		t.Run(string(res.ID), func(t *testing.T) {
			prev := c.HealthAt(&res, res.FirstDepth)
			for depth := res.FirstDepth + 1; depth <= c.TerminalDepth; depth++ {
				cur := c.HealthAt(&res, depth)
				assert.GreaterOrEqual(t, cur, prev, "depth %d", depth)
				prev = cur
			}
		})
	}
}

func TestPickaxeClamping(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, "Wood", c.Pickaxe(0).Name)
	assert.Equal(t, "Gilded", c.Pickaxe(2).Name)
	assert.Equal(t, "Gilded", c.Pickaxe(99).Name, "beyond max clamps to highest")
	assert.Equal(t, "Wood", c.Pickaxe(-1).Name, "below min clamps to lowest")
	assert.Equal(t, 2, c.MaxPickaxeTier())
}

func TestTrainingClamping(t *testing.T) {
	c := testCatalog()
	assert.InDelta(t, 12, c.Training(1).GainConstant, 1e-12)
	assert.InDelta(t, 12, c.Training(7).GainConstant, 1e-12)
	assert.InDelta(t, 1, c.Training(0).GainConstant, 1e-12)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry([]*Catalog{testCatalog()})

	c, err := r.World("testworld")
	assert.NoError(t, err)
	assert.Equal(t, "testworld", c.World)

	_, err = r.World("nether")
	assert.ErrorIs(t, err, domain.ErrWorldNotFound)

	assert.Equal(t, []string{"testworld"}, r.Worlds())
}

func TestResourceLookup(t *testing.T) {
	c := testCatalog()

	_, err := c.Resource("unobtanium")
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)

	fb := c.Fallback()
	assert.Equal(t, domain.ResourceID("stone"), fb.ID)
}
