// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bucket

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/storage"
	"github.com/bitmark-inc/bagstore/util"
)

// keys in the parameters pool
var (
	nextBucketIdKey  = []byte("next-storage-bucket-id")
	bucketsNumberKey = []byte("storage-buckets-number")
)

// Registry - storage buckets held in the state database
type Registry struct {
	pools *storage.Pools
}

// NewRegistry - registry over the pools of a state store
func NewRegistry(pools *storage.Pools) *Registry {
	return &Registry{
		pools: pools,
	}
}

// Get - read a bucket
func (r *Registry) Get(reader storage.Reader, id StorageBucketId) (*StorageBucket, error) {
	record := reader.Get(r.pools.StorageBuckets, util.Uint64ToKey(uint64(id)))
	if nil == record {
		return nil, fault.StorageBucketDoesntExist
	}
	b, err := Unpack(record)
	logger.PanicIfError("bucket.Registry.Get", err)
	return b, nil
}

// Exists - bucket presence
func (r *Registry) Exists(reader storage.Reader, id StorageBucketId) bool {
	return reader.Has(r.pools.StorageBuckets, util.Uint64ToKey(uint64(id)))
}

// Put - write a bucket
func (r *Registry) Put(trx storage.Transaction, id StorageBucketId, b *StorageBucket) {
	trx.Put(r.pools.StorageBuckets, util.Uint64ToKey(uint64(id)), b.Pack())
}

// Create - store a new bucket under the next sequential id
func (r *Registry) Create(trx storage.Transaction, b *StorageBucket) StorageBucketId {
	id := r.NextId(trx)
	r.Put(trx, id, b)
	trx.PutN(r.pools.Parameters, nextBucketIdKey, uint64(id)+1)
	trx.PutN(r.pools.Parameters, bucketsNumberKey, r.Number(trx)+1)
	return id
}

// Delete - remove a bucket, its id is never reused
func (r *Registry) Delete(trx storage.Transaction, id StorageBucketId) {
	trx.Delete(r.pools.StorageBuckets, util.Uint64ToKey(uint64(id)))
	n := r.Number(trx)
	if n > 0 {
		trx.PutN(r.pools.Parameters, bucketsNumberKey, n-1)
	}
}

// NextId - id the next created bucket will get
func (r *Registry) NextId(reader storage.Reader) StorageBucketId {
	n, _ := reader.GetN(r.pools.Parameters, nextBucketIdKey)
	return StorageBucketId(n)
}

// Number - count of existing buckets
func (r *Registry) Number(reader storage.Reader) uint64 {
	n, _ := reader.GetN(r.pools.Parameters, bucketsNumberKey)
	return n
}

// Entry - a bucket and its id
type Entry struct {
	Id     StorageBucketId `json:"id"`
	Bucket *StorageBucket  `json:"bucket"`
}

// List - committed buckets in id order starting from start
func (r *Registry) List(start StorageBucketId, count int) ([]Entry, error) {
	cursor := r.pools.StorageBuckets.NewFetchCursor().Seek(util.Uint64ToKey(uint64(start)))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}
	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		id, err := util.KeyToUint64(e.Key)
		if nil != err {
			return nil, err
		}
		b, err := Unpack(e.Value)
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{Id: StorageBucketId(id), Bucket: b})
	}
	return entries, nil
}
