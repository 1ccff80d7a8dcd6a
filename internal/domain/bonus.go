package domain

// BonusCategory names one independently-composed multiplier category.
type BonusCategory string

const (
	BonusDamage        BonusCategory = "damage"
	BonusCoin          BonusCategory = "coin"
	BonusGem           BonusCategory = "gem"
	BonusLuck          BonusCategory = "luck"
	BonusTrainingSpeed BonusCategory = "training_speed"
)

// ValidBonusCategory reports whether c names a known category.
func ValidBonusCategory(c BonusCategory) bool {
	switch c {
	case BonusDamage, BonusCoin, BonusGem, BonusLuck, BonusTrainingSpeed:
		return true
	}
	return false
}

// BonusFactor is one named contribution to a multiplier category.
// Percent is a delta above baseline (0 = no effect, 20 = +20%).
// Source identifies where the bonus came from, for debugging and telemetry.
type BonusFactor struct {
	Category BonusCategory `json:"category"`
	Percent  float64       `json:"percent"`
	Source   string        `json:"source"`
}
