package ledger

import (
	"fmt"
	"math"

	"github.com/korvess/DeepMine_Go/internal/bignum"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/power"
)

// Ledger applies progression mutations to one player's State. It has no
// internal locking; invoke operations sequentially per player.
type Ledger struct {
	state State
	curve *power.Curve
}

// New creates a ledger over an initial state.
func New(state State, curve *power.Curve) *Ledger {
	if state.Inventory == nil {
		state.Inventory = make(map[domain.ResourceID]int64)
	}
	return &Ledger{state: state, curve: curve}
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() State {
	return l.state.clone()
}

// CreditPower adds to Power in the big-integer domain, so large magnitudes
// never lose precision.
func (l *Ledger) CreditPower(amount bignum.BigNumber) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: negative power credit %s", domain.ErrInvalidInput, amount)
	}
	l.state.Power = l.state.Power.Add(amount)
	return nil
}

// CreditGold adds to Gold, saturating at the int64 ceiling.
func (l *Ledger) CreditGold(amount int64) error {
	return creditBounded(&l.state.Gold, amount)
}

// CreditGems adds to Gems, saturating at the int64 ceiling.
func (l *Ledger) CreditGems(amount int64) error {
	return creditBounded(&l.state.Gems, amount)
}

func creditBounded(balance *int64, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative credit %d", domain.ErrInvalidInput, amount)
	}
	if *balance > math.MaxInt64-amount {
		*balance = math.MaxInt64
		return nil
	}
	*balance += amount
	return nil
}

// SpendPower deducts Power, failing without mutation when unaffordable.
func (l *Ledger) SpendPower(amount bignum.BigNumber) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: negative power spend %s", domain.ErrInvalidInput, amount)
	}
	remaining, err := l.state.Power.Sub(amount)
	if err != nil {
		return err
	}
	l.state.Power = remaining
	return nil
}

// SpendGold deducts Gold, failing without mutation when unaffordable.
func (l *Ledger) SpendGold(amount int64) error {
	return spendBounded(&l.state.Gold, amount)
}

// SpendGems deducts Gems, failing without mutation when unaffordable.
func (l *Ledger) SpendGems(amount int64) error {
	return spendBounded(&l.state.Gems, amount)
}

func spendBounded(balance *int64, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative spend %d", domain.ErrInvalidInput, amount)
	}
	if amount > *balance {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, *balance)
	}
	*balance -= amount
	return nil
}

// AddResource credits mined resources to the inventory.
func (l *Ledger) AddResource(id domain.ResourceID, qty int64) error {
	if qty < 0 {
		return fmt.Errorf("%w: negative quantity %d", domain.ErrInvalidInput, qty)
	}
	l.state.Inventory[id] += qty
	return nil
}

// RemoveResource debits inventory, failing without mutation when the held
// quantity is insufficient.
func (l *Ledger) RemoveResource(id domain.ResourceID, qty int64) error {
	if qty < 0 {
		return fmt.Errorf("%w: negative quantity %d", domain.ErrInvalidInput, qty)
	}
	held := l.state.Inventory[id]
	if qty > held {
		return fmt.Errorf("%w: %s need %d, have %d", domain.ErrInsufficientQuantity, id, qty, held)
	}
	held -= qty
	if held == 0 {
		delete(l.state.Inventory, id)
	} else {
		l.state.Inventory[id] = held
	}
	return nil
}

// SetPickaxeTier records the equipped pickaxe tier.
func (l *Ledger) SetPickaxeTier(tier int) error {
	if tier < 0 {
		return fmt.Errorf("%w: negative pickaxe tier %d", domain.ErrInvalidInput, tier)
	}
	l.state.PickaxeTier = tier
	return nil
}

// RebirthReceipt describes one successful rebirth purchase.
type RebirthReceipt struct {
	Count         int
	CostPaid      bignum.BigNumber
	NewRebirths   int
	PowerBaseline bignum.BigNumber
}

// Rebirth buys count rebirths at the bundle price (next single cost x
// count). On success the cost is deducted, Power resets to the post-rebirth
// baseline, and the rebirth count increments by count - all three together
// or not at all. Returns ErrInvalidCount for count < 1 and
// ErrInsufficientFunds (state untouched) when unaffordable.
func (l *Ledger) Rebirth(count int) (*RebirthReceipt, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidCount, count)
	}

	cost := l.curve.BundleCost(l.state.Rebirths, count)
	if cost.Cmp(l.state.Power) > 0 {
		return nil, fmt.Errorf("%w: rebirth x%d costs %s, have %s",
			domain.ErrInsufficientFunds, count, cost, l.state.Power)
	}

	baseline := bignum.FromInt64(power.RebirthBaseline)
	l.state.Power = baseline
	l.state.Rebirths += count

	return &RebirthReceipt{
		Count:         count,
		CostPaid:      cost,
		NewRebirths:   l.state.Rebirths,
		PowerBaseline: baseline,
	}, nil
}

// MaxAffordableRebirths previews how many single rebirths the current
// Power could buy, bounded by the curve's safety ceiling.
func (l *Ledger) MaxAffordableRebirths() int {
	return l.curve.MaxAffordable(l.state.Rebirths, l.state.Power)
}

// NextRebirthCost previews the cost of the next single rebirth at the
// current rebirth count.
func (l *Ledger) NextRebirthCost() bignum.BigNumber {
	return l.curve.BundleCost(l.state.Rebirths, 1)
}
