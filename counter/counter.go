// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free event counts
package counter

import (
	"sync/atomic"
)

// Counter - a count shared between goroutines
type Counter uint64

// Increment - count one more, returns the new total
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - count one less, returns the new total
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current total
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - nothing counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
