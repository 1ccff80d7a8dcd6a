package extraction

import (
	"fmt"

	"github.com/korvess/DeepMine_Go/internal/domain"
)

// Phase is a block's position in the damage state machine.
type Phase int

const (
	PhaseIntact Phase = iota
	PhaseDamaged
	PhaseDestroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseIntact:
		return "intact"
	case PhaseDamaged:
		return "damaged"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Block is the mutable HP state of one spawned cell. Either an ore block
// carrying a resource, or a bonus cache carrying a fixed gem payout; both
// run the same state machine. Not safe for concurrent damage application.
type Block struct {
	resource  *domain.ResourceDefinition
	gemReward int64
	maxHP     int
	currentHP int
}

// NewOreBlock spawns an ore block at full health.
func NewOreBlock(def *domain.ResourceDefinition, maxHP int) *Block {
	if maxHP < 1 {
		maxHP = 1
	}
	return &Block{resource: def, maxHP: maxHP, currentHP: maxHP}
}

// NewBonusCache spawns a bonus-cache block at full health.
func NewBonusCache(def domain.BonusCacheDefinition) *Block {
	hp := def.Health
	if hp < 1 {
		hp = 1
	}
	return &Block{gemReward: def.GemReward, maxHP: hp, currentHP: hp}
}

// DamageResult describes one ApplyDamage call. Destroyed is true only on
// the call that transitions the block to zero HP; later calls report
// AlreadyDestroyed instead.
type DamageResult struct {
	Destroyed        bool
	AlreadyDestroyed bool
	RemainingHP      int
}

// ApplyDamage reduces HP by amount with a floor of zero. Zero damage is a
// legal no-op. Negative damage is a caller error.
func (b *Block) ApplyDamage(amount int) (DamageResult, error) {
	if amount < 0 {
		return DamageResult{}, fmt.Errorf("%w: negative damage %d", domain.ErrInvalidInput, amount)
	}
	if b.currentHP == 0 {
		return DamageResult{AlreadyDestroyed: true, RemainingHP: 0}, nil
	}

	b.currentHP -= amount
	if b.currentHP <= 0 {
		b.currentHP = 0
		return DamageResult{Destroyed: true, RemainingHP: 0}, nil
	}
	return DamageResult{RemainingHP: b.currentHP}, nil
}

// Reset restores the block to intact at its original max HP. Used when a
// mining column regenerates.
func (b *Block) Reset() {
	b.currentHP = b.maxHP
}

// Phase reports the current state-machine position.
func (b *Block) Phase() Phase {
	switch {
	case b.currentHP == 0:
		return PhaseDestroyed
	case b.currentHP < b.maxHP:
		return PhaseDamaged
	default:
		return PhaseIntact
	}
}

// Resource returns the ore definition, or nil for a bonus cache.
func (b *Block) Resource() *domain.ResourceDefinition {
	return b.resource
}

// IsBonusCache reports whether destruction pays gems instead of ore.
func (b *Block) IsBonusCache() bool {
	return b.resource == nil
}

// GemReward returns the bonus-cache payout (zero for ore blocks).
func (b *Block) GemReward() int64 {
	return b.gemReward
}

// CurrentHP returns the remaining hit points.
func (b *Block) CurrentHP() int {
	return b.currentHP
}

// MaxHP returns the spawn-time hit points.
func (b *Block) MaxHP() int {
	return b.maxHP
}
