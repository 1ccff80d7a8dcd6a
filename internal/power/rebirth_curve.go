package power

import (
	"math/big"

	"github.com/korvess/DeepMine_Go/internal/bignum"
)

// maxAffordableIterations bounds the greedy affordability scan. A curve
// segment with zero or negative slope would otherwise loop forever.
const maxAffordableIterations = 1000

// CostSegment is one linear piece of the rebirth cost curve:
// cost(x) = Slope*(x-Low) + Base for x in [Low, High). The last segment is
// open-ended (High ignored).
type CostSegment struct {
	Low   int
	High  int
	Slope int64
	Base  int64
}

// defaultCurve is continuous at every boundary: each segment's value at its
// High equals the next segment's Base.
var defaultCurve = []CostSegment{
	{Low: 0, High: 1, Slope: 0, Base: 1000},
	{Low: 1, High: 6, Slope: 500, Base: 1000},
	{Low: 6, High: 26, Slope: 1500, Base: 3500},
	{Low: 26, High: 101, Slope: 5000, Base: 33500},
	{Low: 101, High: 501, Slope: 20000, Base: 408500},
	{Low: 501, High: 0, Slope: 100000, Base: 8408500},
}

// Curve evaluates the piecewise-linear rebirth cost function.
type Curve struct {
	segments []CostSegment
}

// DefaultCurve returns the production rebirth cost curve.
func DefaultCurve() *Curve {
	return &Curve{segments: defaultCurve}
}

// NewCurve builds a curve from explicit segments, for tests and tuning
// experiments. Segments must be contiguous and ascending.
func NewCurve(segments []CostSegment) *Curve {
	return &Curve{segments: segments}
}

// CostAt returns the price of a single rebirth at the given current count.
// Negative counts price as zero rebirths.
func (c *Curve) CostAt(rebirths int) int64 {
	if rebirths < 0 {
		rebirths = 0
	}
	seg := c.segments[len(c.segments)-1]
	for _, s := range c.segments[:len(c.segments)-1] {
		if rebirths < s.High {
			seg = s
			break
		}
	}
	return seg.Slope*int64(rebirths-seg.Low) + seg.Base
}

// BundleCost prices buying count rebirths at once: the next single
// rebirth's price is used as the flat unit price for the whole bundle, not
// the sum of count individually-escalating prices. This keeps bundle cost
// predictable before the purchase moves the curve position.
func (c *Curve) BundleCost(rebirths, count int) bignum.BigNumber {
	if count < 1 {
		return bignum.Zero()
	}
	unit := big.NewInt(c.CostAt(rebirths))
	total := unit.Mul(unit, big.NewInt(int64(count)))
	n, _ := bignum.FromString(total.String())
	return n
}

// MaxAffordable reports how many rebirths could be bought one at a time
// with the available power, accumulating cost(current+k) greedily. Scans at
// most maxAffordableIterations steps.
func (c *Curve) MaxAffordable(rebirths int, available bignum.BigNumber) int {
	running := bignum.Zero()
	for k := 0; k < maxAffordableIterations; k++ {
		step := bignum.FromInt64(c.CostAt(rebirths + k))
		next := running.Add(step)
		if next.Cmp(available) > 0 {
			return k
		}
		running = next
	}
	return maxAffordableIterations
}
