// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bucket_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestRegistry(t *testing.T) {
	store, err := storage.NewMemory(storage.StateDatabase)
	require.Nil(t, err, "store")
	defer store.Close()

	r := bucket.NewRegistry(&store.Pool)

	trx, err := store.Begin()
	require.Nil(t, err, "begin")
	id0 := r.Create(trx, bucket.New(nil, true, 100, 1))
	id1 := r.Create(trx, bucket.New(nil, false, 200, 2))
	assert.Equal(t, bucket.StorageBucketId(0), id0, "first id")
	assert.Equal(t, bucket.StorageBucketId(1), id1, "second id")
	assert.Equal(t, uint64(2), r.Number(trx), "pending number")
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, uint64(2), r.Number(storage.Committed), "number")
	assert.Equal(t, bucket.StorageBucketId(2), r.NextId(storage.Committed), "next id")
	assert.True(t, r.Exists(storage.Committed, id1), "exists")

	b, err := r.Get(storage.Committed, id1)
	require.Nil(t, err, "get")
	assert.Equal(t, uint64(200), b.Voucher.SizeLimit, "stored voucher")

	_, err = r.Get(storage.Committed, 99)
	assert.Equal(t, fault.StorageBucketDoesntExist, err, "missing bucket")

	trx, err = store.Begin()
	require.Nil(t, err, "begin")
	b.Metadata = []byte("http://example.com")
	r.Put(trx, id1, b)
	r.Delete(trx, id0)
	require.Nil(t, trx.Commit(), "commit")

	assert.False(t, r.Exists(storage.Committed, id0), "deleted")
	assert.Equal(t, uint64(1), r.Number(storage.Committed), "number after delete")
	assert.Equal(t, bucket.StorageBucketId(2), r.NextId(storage.Committed), "ids not reused")

	entries, err := r.List(0, 10)
	require.Nil(t, err, "list")
	require.Equal(t, 1, len(entries), "entries")
	assert.Equal(t, id1, entries[0].Id, "listed id")
	assert.Equal(t, []byte("http://example.com"), entries[0].Bucket.Metadata, "listed metadata")
}
