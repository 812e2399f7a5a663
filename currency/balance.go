// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// Balance - an amount of the native token
type Balance uint64

// MaxBalance - largest representable amount
const MaxBalance = Balance(math.MaxUint64)

// SaturatingAdd - sum clipped at MaxBalance
func (b Balance) SaturatingAdd(other Balance) Balance {
	sum, carry := bits.Add64(uint64(b), uint64(other), 0)
	if 0 != carry {
		return MaxBalance
	}
	return Balance(sum)
}

// SaturatingSub - difference clipped at zero
func (b Balance) SaturatingSub(other Balance) Balance {
	if other > b {
		return 0
	}
	return b - other
}

// SaturatingMul - product clipped at MaxBalance
func (b Balance) SaturatingMul(n uint64) Balance {
	hi, lo := bits.Mul64(uint64(b), n)
	if 0 != hi {
		return MaxBalance
	}
	return Balance(lo)
}

// Uint64 - convert to a number
func (b Balance) Uint64() uint64 {
	return uint64(b)
}

// String - decimal text
func (b Balance) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

// GoString - for debugging
func (b Balance) GoString() string {
	return fmt.Sprintf("<Balance:%d>", uint64(b))
}
