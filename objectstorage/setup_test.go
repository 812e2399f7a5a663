// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/ledger"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/picker"
	"github.com/bitmark-inc/bagstore/storage"
	"github.com/bitmark-inc/bagstore/workinggroup"
)

const initialBalance = 10000

var (
	council   = bag.Static(bag.Council)
	storageWG = bag.Static(bag.WorkingGroupBag(bag.Storage))
	member7   = bag.Member(7)
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

type testEnv struct {
	t      *testing.T
	state  *storage.Store
	funds  *storage.Store
	ledger *ledger.Ledger
	group  *workinggroup.Group
	queue  *messagebus.Queue
	module *objectstorage.Module
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, objectstorage.DefaultParameters(), nil)
}

func newTestEnvWith(t *testing.T, parameters objectstorage.Parameters, randomness picker.Randomness) *testEnv {
	state, err := storage.NewMemory(storage.StateDatabase)
	require.Nil(t, err, "state store")
	funds, err := storage.NewMemory(storage.LedgerDatabase)
	require.Nil(t, err, "ledger store")

	l, err := ledger.New(funds, 0)
	require.Nil(t, err, "ledger")
	require.Nil(t, l.Deposit(fixtures.Alice, initialBalance), "fund alice")
	require.Nil(t, l.Deposit(fixtures.Bob, initialBalance), "fund bob")

	group := workinggroup.New(fixtures.Leader)
	group.Hire(fixtures.WorkerId1, fixtures.Worker1)
	group.Hire(fixtures.WorkerId2, fixtures.Worker2)

	queue := messagebus.New(100)

	m, err := objectstorage.New(parameters, state, l, group, randomness, queue)
	require.Nil(t, err, "module")

	return &testEnv{
		t:      t,
		state:  state,
		funds:  funds,
		ledger: l,
		group:  group,
		queue:  queue,
		module: m,
	}
}

func (e *testEnv) close() {
	e.state.Close()
	e.funds.Close()
}

// all events deposited since the last call
func (e *testEnv) events() []objectstorage.Event {
	list := []objectstorage.Event{}
	for {
		select {
		case m := <-e.queue.Chan():
			list = append(list, m.Item.(objectstorage.Event))
		default:
			return list
		}
	}
}

func (e *testEnv) lastEvent() objectstorage.Event {
	list := e.events()
	if 0 == len(list) {
		return nil
	}
	return list[len(list)-1]
}

// bucket operated by WorkerId1
func (e *testEnv) createBucket(sizeLimit uint64, objectsLimit uint64) bucket.StorageBucketId {
	worker := bucket.WorkerId(fixtures.WorkerId1)
	id, err := e.module.CreateStorageBucket(fixtures.Leader, &worker, true, sizeLimit, objectsLimit)
	require.Nil(e.t, err, "create bucket")
	err = e.module.AcceptStorageBucketInvitation(fixtures.Worker1, worker, id)
	require.Nil(e.t, err, "accept invitation")
	return id
}

func (e *testEnv) assign(id bag.Id, buckets ...bucket.StorageBucketId) {
	err := e.module.UpdateStorageBucketsForBag(fixtures.Leader, id, bucket.NewIdSet(buckets...), bucket.IdSet{})
	require.Nil(e.t, err, "assign buckets")
}

func (e *testEnv) bucket(id bucket.StorageBucketId) *bucket.StorageBucket {
	b, err := e.module.StorageBucket(id)
	require.Nil(e.t, err, "read bucket")
	return b
}

func (e *testEnv) bag(id bag.Id) *bag.Bag {
	b, err := e.module.Bag(id)
	require.Nil(e.t, err, "read bag")
	return b
}

func (e *testEnv) balance(a account.Account) currency.Balance {
	return e.ledger.UsableBalance(a)
}

func uploadParams(id bag.Id, sizes ...uint64) objectstorage.UploadParameters {
	list := make([]objectstorage.DataObjectCreationParameters, 0, len(sizes))
	for i, size := range sizes {
		list = append(list, objectstorage.DataObjectCreationParameters{
			Size:          size,
			IpfsContentId: []byte{'Q', 'm', byte('a' + i)},
		})
	}
	return objectstorage.UploadParameters{
		BagId:                        id,
		ObjectCreationList:           list,
		DeletionPrizeSourceAccountId: fixtures.Alice,
	}
}

func bucketWorker(n uint64) bucket.WorkerId {
	return bucket.WorkerId(n)
}
