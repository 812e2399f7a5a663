// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bag

import (
	"sort"

	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/util"
)

// DistributionBucketId - distribution bucket identifier
type DistributionBucketId uint64

// Bag - a collection of objects and the buckets holding it
type Bag struct {
	Objects       Objects                `json:"objects"`
	StoredBy      bucket.IdSet           `json:"storedBy"`
	DistributedBy []DistributionBucketId `json:"distributedBy"`
	DeletionPrize currency.Balance       `json:"deletionPrize"`
}

// New - an empty bag
func New() *Bag {
	return &Bag{
		Objects:       Objects{},
		StoredBy:      bucket.IdSet{},
		DistributedBy: []DistributionBucketId{},
	}
}

// header is everything except the objects
func (b *Bag) packHeader() util.Packed {
	buffer := b.StoredBy.Pack(util.Packed{})
	buffer = buffer.AppendUint64(uint64(len(b.DistributedBy)))
	for _, id := range b.DistributedBy {
		buffer = buffer.AppendUint64(uint64(id))
	}
	return buffer.AppendUint64(b.DeletionPrize.Uint64())
}

func unpackHeader(record util.Packed) (*Bag, error) {
	u := record.Unpack()
	b := New()
	b.StoredBy = bucket.UnpackIdSet(u)
	n := u.Count()
	for i := uint64(0); i < n; i += 1 {
		b.DistributedBy = append(b.DistributedBy, DistributionBucketId(u.Uint64()))
	}
	sort.Slice(b.DistributedBy, func(i, j int) bool { return b.DistributedBy[i] < b.DistributedBy[j] })
	b.DeletionPrize = currency.Balance(u.Uint64())
	if err := u.Err(); nil != err {
		return nil, err
	}
	return b, nil
}
