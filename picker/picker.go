// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package picker

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/bagstore/bucket"
)

// Accepts - true if a bucket exists and takes new bags
type Accepts func(bucket.StorageBucketId) bool

// Picker - choose buckets for a new dynamic bag
type Picker struct {
	maxRandomIterationNumber uint64
}

// New - picker trying at most maxRandomIterationNumber random ids
// before falling back to a sequential scan
func New(maxRandomIterationNumber uint64) *Picker {
	return &Picker{
		maxRandomIterationNumber: maxRandomIterationNumber,
	}
}

// Pick - up to required distinct accepting buckets
//
// when fewer buckets accept new bags than are required the result is
// simply smaller; this is not an error
func (p *Picker) Pick(required uint64, nextBucketId bucket.StorageBucketId, seed []byte, accepts Accepts) bucket.IdSet {
	result := bucket.IdSet{}
	if 0 == required {
		return result
	}

	iterator := &Chain{
		NewRandomIterator(seed, p.maxRandomIterationNumber, nextBucketId),
		NewSequentialIterator(nextBucketId),
	}

	for uint64(len(result)) < required {
		id, ok := iterator.Next()
		if !ok {
			break
		}
		if result.Contains(id) {
			continue
		}
		if accepts(id) {
			result.Add(id)
		}
	}
	return result
}

// Randomness - source of per-operation seeds
type Randomness interface {
	Random(subject []byte) []byte
}

// SaltedRandomness - sha3(salt ++ subject), disabled by an empty salt
type SaltedRandomness struct {
	Salt []byte
}

// Random - seed for a subject, empty when disabled
func (s SaltedRandomness) Random(subject []byte) []byte {
	if 0 == len(s.Salt) {
		return nil
	}
	buffer := make([]byte, 0, len(s.Salt)+len(subject))
	buffer = append(buffer, s.Salt...)
	buffer = append(buffer, subject...)
	seed := sha3.Sum256(buffer)
	return seed[:]
}
