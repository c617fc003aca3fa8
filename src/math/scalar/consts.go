package scalar

import (
	"math/big"

	"lukechampine.com/uint128"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

var (
	MaxInt128  = Int128FromRaw(0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)
	MinInt128  = Int128FromRaw(0x8000000000000000, 0)
	MaxUint128 = Uint128{uint128.Max}

	zeroInt128 Int128

	oneInt128 = Int128From64(1)
	tenInt128 = Int128From64(10)

	maxBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	minBigInt128, _ = new(big.Int).SetString("-0x80000000000000000000000000000000", 0)
	maxBigInt128, _ = new(big.Int).SetString("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", 0)

	// minInt128AsUint128 is |MinInt128|, which only fits unsigned.
	minInt128AsUint128 = Uint128FromRaw(0x8000000000000000, 0)
)
