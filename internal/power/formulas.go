// Package power holds the progression formulas: mining damage, per-hit
// training power gain, and the piecewise rebirth cost curve. All formulas
// are pure; multiplier inputs arrive pre-composed (see internal/modifier)
// so this package never reaches out to bonus sources itself.
package power

import (
	"math"

	"github.com/korvess/DeepMine_Go/internal/bignum"
)

const (
	// TrainingExponent is deliberately just under 1 so gain is very
	// slightly sub-linear in rebirth count; it tunes long-run pacing.
	TrainingExponent = 0.99933

	// RebirthBaseline is the Power value after a rebirth. Non-zero so
	// training resumes productively instead of from nothing.
	RebirthBaseline = 100
)

// MiningDamage is the per-hit damage dealt to a block: the pickaxe's base
// damage scaled by the single composed damage ratio, floored to whole HP.
// Never negative.
func MiningDamage(baseDamage, damageMultiplier float64) int {
	dmg := baseDamage * damageMultiplier
	if dmg <= 0 {
		return 0
	}
	return int(math.Floor(dmg))
}

// TrainingGain is the power gained by one training hit:
// floor(C * x^E) scaled by the companion multiplier, where C is the
// training tier's constant and x the player's rebirth count. The result is
// clamped to the safe numeric ceiling before crediting so a runaway input
// can never produce an un-serializable value.
func TrainingGain(gainConstant float64, rebirths int, companionMultiplier float64) bignum.BigNumber {
	if gainConstant <= 0 || companionMultiplier <= 0 {
		return bignum.Zero()
	}
	if rebirths < 1 {
		// Pre-first-rebirth players train at the x=1 rate; a literal x=0
		// would zero the gain and deadlock the economy.
		rebirths = 1
	}

	base := math.Floor(gainConstant * math.Pow(float64(rebirths), TrainingExponent))
	gain := math.Floor(base * companionMultiplier)

	if gain <= 0 {
		return bignum.Zero()
	}
	if gain > bignum.MaxSafeFloat {
		gain = bignum.MaxSafeFloat
	}

	n, err := bignum.FromFloat(gain)
	if err != nil {
		// Unreachable after the clamp; keep the zero fallback anyway.
		return bignum.Zero()
	}
	return n
}
