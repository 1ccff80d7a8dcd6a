package extraction

import (
	"fmt"
	"math"

	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/ledger"
	"github.com/korvess/DeepMine_Go/internal/power"
)

// Session is one player's continuous mining/training interaction with a
// world: the current depth, the live block, and the ledger the rewards
// land in. Operations must be invoked sequentially for a given player;
// the session holds no lock of its own.
type Session struct {
	catalog  *catalog.Catalog
	selector *Selector
	ledger   *ledger.Ledger
	rng      RandSource

	depth int
	block *Block
}

// HitInput carries one mining hit. The multipliers arrive pre-composed
// (see internal/modifier); the session never fetches bonus sources itself.
type HitInput struct {
	BaseDamage       float64
	DamageMultiplier float64
	GemMultiplier    float64
	Luck             float64
}

// HitResult reports what one hit did.
type HitResult struct {
	Damage           int
	Destroyed        bool
	AlreadyDestroyed bool
	RemainingHP      int
	Depth            int

	// Set when the destroyed block was an ore block.
	MinedResource domain.ResourceID

	// Set when the destroyed block was a bonus cache.
	GemsAwarded int64
}

// TrainResult reports one training hit.
type TrainResult struct {
	Gain     string
	NewPower string
}

// SellResult reports one inventory sale.
type SellResult struct {
	Resource   domain.ResourceID
	Quantity   int64
	GoldEarned int64
}

// NewSession starts a session at the given depth, restoring a player's
// position, and spawns the first block there.
func NewSession(cat *catalog.Catalog, led *ledger.Ledger, depth int, rng RandSource) *Session {
	if depth < 0 {
		depth = 0
	}
	s := &Session{
		catalog:  cat,
		selector: NewSelector(cat, rng),
		ledger:   led,
		rng:      rng,
		depth:    depth,
	}
	s.block = s.spawnOre(0)
	return s
}

// Hit applies one mining hit to the live block. On destruction it credits
// the ledger (ore to inventory, cache payout to gems), advances depth, and
// spawns the next block. Hitting an already destroyed block is a no-op
// that still reports the fact.
func (s *Session) Hit(in HitInput) (*HitResult, error) {
	damage := power.MiningDamage(in.BaseDamage, in.DamageMultiplier)

	outcome, err := s.block.ApplyDamage(damage)
	if err != nil {
		return nil, err
	}

	result := &HitResult{
		Damage:           damage,
		Destroyed:        outcome.Destroyed,
		AlreadyDestroyed: outcome.AlreadyDestroyed,
		RemainingHP:      outcome.RemainingHP,
		Depth:            s.depth,
	}
	if !outcome.Destroyed {
		return result, nil
	}

	if s.block.IsBonusCache() {
		gems := scaleReward(s.block.GemReward(), in.GemMultiplier)
		if err := s.ledger.CreditGems(gems); err != nil {
			return nil, err
		}
		result.GemsAwarded = gems
	} else {
		id := s.block.Resource().ID
		if err := s.ledger.AddResource(id, 1); err != nil {
			return nil, err
		}
		result.MinedResource = id
	}

	s.depth++
	s.block = s.spawnNext(in.Luck)
	result.Depth = s.depth
	return result, nil
}

// Train applies one training hit at a training tier, crediting the gained
// power. The companion multiplier arrives pre-composed; pass 1 for none.
func (s *Session) Train(trainingTier int, companionMultiplier float64) (*TrainResult, error) {
	tier := s.catalog.Training(trainingTier)
	rebirths := s.ledger.Snapshot().Rebirths

	gain := power.TrainingGain(tier.GainConstant, rebirths, companionMultiplier)
	if err := s.ledger.CreditPower(gain); err != nil {
		return nil, err
	}

	return &TrainResult{
		Gain:     gain.String(),
		NewPower: s.ledger.Snapshot().Power.String(),
	}, nil
}

// Sell converts held resources to gold at catalog value scaled by the
// composed coin multiplier. Fails without mutation when the held quantity
// is short.
func (s *Session) Sell(id domain.ResourceID, qty int64, coinMultiplier float64) (*SellResult, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: sell quantity %d", domain.ErrInvalidInput, qty)
	}
	def, err := s.catalog.Resource(id)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.RemoveResource(id, qty); err != nil {
		return nil, err
	}

	gold := scaleReward(saleValue(def.Value, qty), coinMultiplier)
	if err := s.ledger.CreditGold(gold); err != nil {
		return nil, err
	}

	return &SellResult{Resource: id, Quantity: qty, GoldEarned: gold}, nil
}

// Leave abandons the live block; re-entry spawns a fresh one at the same
// depth. Partial damage does not persist across a leave.
func (s *Session) Leave(luck float64) {
	s.block = s.spawnNext(luck)
}

// Depth returns the current progress coordinate.
func (s *Session) Depth() int {
	return s.depth
}

// Block returns the live block.
func (s *Session) Block() *Block {
	return s.block
}

// Ledger exposes the session's ledger for host operations (rebirth, state
// queries) that live outside the mining loop.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// spawnNext rolls the bonus-cache chance, then falls through to ore
// selection.
func (s *Session) spawnNext(luck float64) *Block {
	cache := s.catalog.BonusCache
	if cache.SpawnChance > 0 && cache.Health > 0 && s.rng() < cache.SpawnChance {
		return NewBonusCache(cache)
	}
	return s.spawnOre(luck)
}

func (s *Session) spawnOre(luck float64) *Block {
	def := s.selector.Select(s.depth, luck)
	return NewOreBlock(def, s.catalog.HealthAt(def, s.depth))
}

// saleValue multiplies unit value by quantity, saturating at MaxInt64.
// Hydrated inventories can hold quantities large enough to wrap a raw
// int64 product.
func saleValue(unit, qty int64) int64 {
	if unit <= 0 || qty <= 0 {
		return 0
	}
	if qty > math.MaxInt64/unit {
		return math.MaxInt64
	}
	return unit * qty
}

// scaleReward applies a composed ratio to an integer payout, flooring and
// refusing to go negative.
func scaleReward(base int64, multiplier float64) int64 {
	if multiplier <= 0 {
		multiplier = 1
	}
	scaled := math.Floor(float64(base) * multiplier)
	if scaled <= 0 {
		return 0
	}
	if scaled >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(scaled)
}
