// Package bignum implements the arbitrary-precision integer representation
// used for economy values that routinely exceed 2^53. Values are canonical
// decimal strings at rest and math/big integers in memory, so round trips
// through persistence are exact at any magnitude.
package bignum

import (
	"fmt"
	"math"
	"math/big"
	"regexp"

	"github.com/korvess/DeepMine_Go/internal/domain"
)

// MaxSafeFloat is the largest integer magnitude representable exactly in a
// float64 (2^53 - 1). FromFloat rejects inputs beyond it; formula outputs
// are clamped to it before crediting.
const MaxSafeFloat = float64(1<<53 - 1)

var canonicalPattern = regexp.MustCompile(`^-?\d+$`)

// BigNumber is an immutable arbitrary-precision integer. The zero value is 0
// and is safe to use.
type BigNumber struct {
	v *big.Int
}

// Zero returns the zero BigNumber.
func Zero() BigNumber {
	return BigNumber{}
}

// FromInt64 constructs a BigNumber from a native integer.
func FromInt64(n int64) BigNumber {
	return BigNumber{v: big.NewInt(n)}
}

// FromFloat constructs a BigNumber from a float, truncating toward zero.
// Valid only for |f| <= 2^53-1; callers holding values already known to
// exceed the safe range must use FromString instead.
func FromFloat(f float64) (BigNumber, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigNumber{}, fmt.Errorf("%w: %v", domain.ErrUnsafeFloat, f)
	}
	if math.Abs(f) > MaxSafeFloat {
		return BigNumber{}, fmt.Errorf("%w: %v", domain.ErrUnsafeFloat, f)
	}
	return BigNumber{v: big.NewInt(int64(math.Trunc(f)))}, nil
}

// FromString parses a canonical decimal string. An empty string or anything
// not matching ^-?\d+$ fails with domain.ErrMalformedNumericString. At the
// persistence boundary this failure is treated as data corruption and must
// propagate; it is never silently coerced to zero.
func FromString(s string) (BigNumber, error) {
	if !canonicalPattern.MatchString(s) {
		return BigNumber{}, fmt.Errorf("%w: %q", domain.ErrMalformedNumericString, s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigNumber{}, fmt.Errorf("%w: %q", domain.ErrMalformedNumericString, s)
	}
	return BigNumber{v: v}, nil
}

func (b BigNumber) val() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return b.v
}

// String returns the canonical decimal representation: no scientific
// notation, no separators, "-" prefix for negatives, "0" for zero.
// It is the exact inverse of FromString for canonical inputs.
func (b BigNumber) String() string {
	return b.val().String()
}

// Float64 returns a lossy float approximation. Beyond 2^53 precision is
// lost; use only for display and for formula inputs that already tolerate
// approximation. Magnitudes beyond float64 range saturate to +/-Inf.
func (b BigNumber) Float64() float64 {
	f, _ := new(big.Float).SetInt(b.val()).Float64()
	return f
}

// Add returns b + o.
func (b BigNumber) Add(o BigNumber) BigNumber {
	return BigNumber{v: new(big.Int).Add(b.val(), o.val())}
}

// Sub returns b - o, failing if the result would be negative. Progression
// values never go negative; callers must check affordability first.
func (b BigNumber) Sub(o BigNumber) (BigNumber, error) {
	r := new(big.Int).Sub(b.val(), o.val())
	if r.Sign() < 0 {
		return BigNumber{}, fmt.Errorf("%w: %s - %s", domain.ErrInsufficientFunds, b, o)
	}
	return BigNumber{v: r}, nil
}

// Cmp compares b and o, returning -1, 0 or 1.
func (b BigNumber) Cmp(o BigNumber) int {
	return b.val().Cmp(o.val())
}

// Sign returns -1, 0 or 1 depending on the sign of b.
func (b BigNumber) Sign() int {
	return b.val().Sign()
}

// IsZero reports whether b is zero.
func (b BigNumber) IsZero() bool {
	return b.val().Sign() == 0
}
