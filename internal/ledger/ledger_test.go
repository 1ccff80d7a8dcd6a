package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korvess/DeepMine_Go/internal/bignum"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/power"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(DefaultState(), power.DefaultCurve())
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, "100", s.Power.String())
	assert.Equal(t, 0, s.Rebirths)
	assert.Equal(t, int64(0), s.Gold)
	assert.Equal(t, int64(0), s.Gems)
	assert.Equal(t, 0, s.PickaxeTier)
	assert.Empty(t, s.Inventory)
	assert.NotNil(t, s.Inventory)
}

func TestCreditAndSpendGold(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.CreditGold(500))
	require.NoError(t, l.SpendGold(200))
	assert.Equal(t, int64(300), l.Snapshot().Gold)

	err := l.SpendGold(301)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(300), l.Snapshot().Gold, "failed spend must not mutate")
}

func TestCreditGoldSaturates(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.CreditGold(math.MaxInt64))
	require.NoError(t, l.CreditGold(1))
	assert.Equal(t, int64(math.MaxInt64), l.Snapshot().Gold)
}

func TestNegativeAmountsRejected(t *testing.T) {
	l := newTestLedger(t)

	assert.ErrorIs(t, l.CreditGold(-1), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.SpendGold(-1), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.CreditGems(-1), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.AddResource("stone", -1), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.RemoveResource("stone", -1), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.CreditPower(bignum.FromInt64(-5)), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.SpendPower(bignum.FromInt64(-5)), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.SetPickaxeTier(-1), domain.ErrInvalidInput)
}

func TestPowerArithmetic(t *testing.T) {
	l := newTestLedger(t)

	big, err := bignum.FromString("99999999999999999999999999")
	require.NoError(t, err)
	require.NoError(t, l.CreditPower(big))
	assert.Equal(t, "100000000000000000000000099", l.Snapshot().Power.String())

	require.NoError(t, l.SpendPower(bignum.FromInt64(99)))
	assert.Equal(t, "100000000000000000000000000", l.Snapshot().Power.String())

	err = l.SpendPower(big.Add(big))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "100000000000000000000000000", l.Snapshot().Power.String())
}

func TestInventory(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.AddResource("iron", 10))
	require.NoError(t, l.AddResource("iron", 5))
	require.NoError(t, l.RemoveResource("iron", 12))
	assert.Equal(t, int64(3), l.Snapshot().Inventory["iron"])

	err := l.RemoveResource("iron", 4)
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, int64(3), l.Snapshot().Inventory["iron"])

	require.NoError(t, l.RemoveResource("iron", 3))
	_, held := l.Snapshot().Inventory["iron"]
	assert.False(t, held, "zeroed entries are dropped")

	err = l.RemoveResource("mythril", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestRebirthCountValidation(t *testing.T) {
	l := newTestLedger(t)

	for _, count := range []int{0, -1, -100} {
		_, err := l.Rebirth(count)
		assert.ErrorIs(t, err, domain.ErrInvalidCount, "count %d", count)
	}
}

func TestRebirthUnaffordable(t *testing.T) {
	l := newTestLedger(t)

	// First rebirth costs 1000, default power is 100.
	before := l.Snapshot()
	_, err := l.Rebirth(1)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	after := l.Snapshot()
	assert.Equal(t, before.Power.String(), after.Power.String())
	assert.Equal(t, before.Rebirths, after.Rebirths)
}

func TestRebirthSingle(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.CreditPower(bignum.FromInt64(900)))

	receipt, err := l.Rebirth(1)
	require.NoError(t, err)

	assert.Equal(t, 1, receipt.Count)
	assert.Equal(t, "1000", receipt.CostPaid.String())
	assert.Equal(t, 1, receipt.NewRebirths)
	assert.Equal(t, "100", receipt.PowerBaseline.String())

	s := l.Snapshot()
	assert.Equal(t, 1, s.Rebirths)
	assert.Equal(t, "100", s.Power.String(), "power resets to baseline")
}

func TestRebirthBundlePricing(t *testing.T) {
	// At 3 rebirths the next single costs 2000, so a bundle of 5 is 10000.
	state := DefaultState()
	state.Rebirths = 3
	state.Power = bignum.FromInt64(10000)
	l := New(state, power.DefaultCurve())

	receipt, err := l.Rebirth(5)
	require.NoError(t, err)
	assert.Equal(t, "10000", receipt.CostPaid.String())
	assert.Equal(t, 8, receipt.NewRebirths)

	// One unit short must refuse and leave everything intact.
	state2 := DefaultState()
	state2.Rebirths = 3
	state2.Power = bignum.FromInt64(9999)
	l2 := New(state2, power.DefaultCurve())

	_, err = l2.Rebirth(5)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	s := l2.Snapshot()
	assert.Equal(t, 3, s.Rebirths)
	assert.Equal(t, "9999", s.Power.String())
}

func TestRebirthAtomicity(t *testing.T) {
	// Either all three mutations land or none of them do.
	for _, affordable := range []bool{true, false} {
		state := DefaultState()
		state.Rebirths = 2
		if affordable {
			state.Power = bignum.FromInt64(1500)
		} else {
			state.Power = bignum.FromInt64(1499)
		}
		l := New(state, power.DefaultCurve())
		before := l.Snapshot()

		receipt, err := l.Rebirth(1)
		after := l.Snapshot()

		if affordable {
			require.NoError(t, err)
			assert.Equal(t, before.Rebirths+1, after.Rebirths)
			assert.Equal(t, "100", after.Power.String())
			assert.Equal(t, "1500", receipt.CostPaid.String())
		} else {
			require.Error(t, err)
			assert.Equal(t, before.Rebirths, after.Rebirths)
			assert.Equal(t, before.Power.String(), after.Power.String())
		}
	}
}

func TestMaxAffordableRebirths(t *testing.T) {
	state := DefaultState()
	state.Power = bignum.FromInt64(2500)
	l := New(state, power.DefaultCurve())

	// From zero rebirths the first two cost 1000 each; the third costs
	// 1500 and would overshoot 2500.
	assert.Equal(t, 2, l.MaxAffordableRebirths())

	poor := New(DefaultState(), power.DefaultCurve())
	assert.Equal(t, 0, poor.MaxAffordableRebirths())
}

func TestSnapshotIsIsolated(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.AddResource("stone", 7))

	snap := l.Snapshot()
	snap.Inventory["stone"] = 999
	snap.Gold = 12345

	s := l.Snapshot()
	assert.Equal(t, int64(7), s.Inventory["stone"])
	assert.Equal(t, int64(0), s.Gold)
}
