// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling of RPC requests
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bagstore/fault"
)

// take tokens, sleeping until they are available
func wait(limiter *rate.Limiter, tokens int) error {
	r := limiter.ReserveN(time.Now(), tokens)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Limit - one request costs one token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - a page request of count items, count must be in
// 1..maximumCount; an invalid count still costs one token
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count < 1 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter, count)
}

// LimitItems - a request carrying a list of items, one token per item
// up to the limiter's burst
//
// an empty list costs one token and passes
func LimitItems(limiter *rate.Limiter, items int, maximumItems int) error {
	if items > maximumItems {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	tokens := items
	if tokens < 1 {
		tokens = 1
	}
	if burst := limiter.Burst(); tokens > burst {
		tokens = burst
	}
	return wait(limiter, tokens)
}
