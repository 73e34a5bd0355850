package types

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// All USD values and share balances are stored as uint64 fixed-point numbers
// with 6 decimals (micro units). Percentages are expressed in basis points.
const (
	UsdDecimals = 6
	OneUsd      = uint64(1_000_000)

	// PercDenominator is the fixed denominator for composition percentages.
	PercDenominator = uint64(10_000)
)

// MulDiv returns a*b/denom using 256-bit intermediates so share pricing such
// as amount*totalShares/poolSnapshot cannot overflow uint64 on the way.
// Division truncates toward zero. denom must be non-zero.
func MulDiv(a, b, denom uint64) uint64 {
	x := new(uint256.Int).SetUint64(a)
	y := new(uint256.Int).SetUint64(b)
	d := new(uint256.Int).SetUint64(denom)
	x.Mul(x, y)
	x.Div(x, d)
	return x.Uint64()
}

// SafeAdd returns a+b and whether the sum fits in a uint64. Sums over
// caller-supplied amounts must reject on overflow instead of wrapping.
func SafeAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// PercOf returns value*percBp/10000.
func PercOf(value, percBp uint64) uint64 {
	return MulDiv(value, percBp, PercDenominator)
}

// WithinTolerance reports whether got is within toleranceBp basis points of
// want. Conversions through the external staking exchange rate accumulate
// rounding, so value reconstruction is checked approximately.
func WithinTolerance(want, got, toleranceBp uint64) bool {
	var diff uint64
	if got > want {
		diff = got - want
	} else {
		diff = want - got
	}
	return diff <= PercOf(want, toleranceBp)
}
