// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package picker

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/bagstore/bucket"
)

// Iterator - a finite stream of candidate bucket ids
type Iterator interface {
	Next() (bucket.StorageBucketId, bool)
}

// RandomIterator - ids derived from a repeatedly hashed seed
type RandomIterator struct {
	current   [32]byte
	remaining uint64
	limit     uint64
}

// NewRandomIterator - at most count ids, each below limit
//
// an empty seed or a zero limit yields nothing
func NewRandomIterator(seed []byte, count uint64, limit bucket.StorageBucketId) *RandomIterator {
	r := &RandomIterator{
		current:   sha3.Sum256(seed),
		remaining: count,
		limit:     uint64(limit),
	}
	if 0 == len(seed) || 0 == limit {
		r.remaining = 0
	}
	return r
}

// Next - the following id
func (r *RandomIterator) Next() (bucket.StorageBucketId, bool) {
	if 0 == r.remaining {
		return 0, false
	}
	r.remaining -= 1
	n := binary.BigEndian.Uint64(r.current[:8])
	r.current = sha3.Sum256(r.current[:])
	return bucket.StorageBucketId(n % r.limit), true
}

// SequentialIterator - ids 0 .. limit-1
type SequentialIterator struct {
	current uint64
	limit   uint64
}

// NewSequentialIterator - every id below limit in order
func NewSequentialIterator(limit bucket.StorageBucketId) *SequentialIterator {
	return &SequentialIterator{
		limit: uint64(limit),
	}
}

// Next - the following id
func (s *SequentialIterator) Next() (bucket.StorageBucketId, bool) {
	if s.current >= s.limit {
		return 0, false
	}
	id := s.current
	s.current += 1
	return bucket.StorageBucketId(id), true
}

// Chain - exhaust each iterator in turn
type Chain []Iterator

// Next - the following id
func (c *Chain) Next() (bucket.StorageBucketId, bool) {
	for 0 != len(*c) {
		if id, ok := (*c)[0].Next(); ok {
			return id, true
		}
		*c = (*c)[1:]
	}
	return 0, false
}
