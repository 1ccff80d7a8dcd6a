package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korvess/DeepMine_Go/internal/bignum"
)

func TestCostAt_DefaultCurve(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		rebirths int
		want     int64
	}{
		{0, 1000},
		{1, 1000},
		{3, 2000}, // 500*(3-1)+1000, the documented example segment
		{5, 3000},
		{6, 3500},
		{25, 32000},
		{26, 33500},
		{100, 403500},
		{101, 408500},
		{500, 8388500},
		{501, 8408500},
		{1000, 58308500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CostAt(tt.rebirths), "rebirths=%d", tt.rebirths)
	}
}

func TestCostAt_NegativeClampsToZero(t *testing.T) {
	c := DefaultCurve()
	assert.Equal(t, c.CostAt(0), c.CostAt(-5))
}

// The curve must be continuous: the value at the end of one segment equals
// the base cost of the next.
func TestDefaultCurve_ContinuousAtBoundaries(t *testing.T) {
	for i := 0; i < len(defaultCurve)-1; i++ {
		seg := defaultCurve[i]
		next := defaultCurve[i+1]
		require.Equal(t, seg.High, next.Low, "segments must be contiguous")

		endValue := seg.Slope*int64(seg.High-seg.Low) + seg.Base
		assert.Equal(t, next.Base, endValue, "discontinuity entering segment %d", i+1)
	}
}

func TestBundleCost(t *testing.T) {
	c := DefaultCurve()

	// Buying 5 rebirths at 3 current costs cost(3)*5 = 10000, not
	// cost(3)+cost(4)+...+cost(7).
	assert.Equal(t, "10000", c.BundleCost(3, 5).String())

	assert.Equal(t, "1000", c.BundleCost(0, 1).String())
	assert.True(t, c.BundleCost(3, 0).IsZero())
	assert.True(t, c.BundleCost(3, -1).IsZero())
}

func TestMaxAffordable(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		name      string
		rebirths  int
		available int64
		want      int
	}{
		{"nothing affordable", 0, 999, 0},
		{"exactly one", 0, 1000, 1},
		{"one plus change", 0, 1999, 1},
		// cost(0)+cost(1) = 2000, +cost(2) = 3500
		{"two", 0, 2000, 2},
		{"three", 0, 3500, 3},
		{"mid-curve", 3, 2000, 1}, // cost(3)=2000
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.MaxAffordable(tt.rebirths, bignum.FromInt64(tt.available))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxAffordable_IterationCeiling(t *testing.T) {
	// A degenerate zero-cost curve must stop at the safety bound instead
	// of looping.
	flat := NewCurve([]CostSegment{{Low: 0, High: 0, Slope: 0, Base: 0}})
	got := flat.MaxAffordable(0, bignum.FromInt64(1))
	assert.Equal(t, maxAffordableIterations, got)
}

func TestMaxAffordable_HugeBalance(t *testing.T) {
	huge, err := bignum.FromString("999999999999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, maxAffordableIterations, DefaultCurve().MaxAffordable(0, huge))
}
