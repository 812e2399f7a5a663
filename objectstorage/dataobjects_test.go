// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/picker"
	"github.com/bitmark-inc/bagstore/voucher"
)

func TestUploadUntilObjectLimit(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(100, 1)
	e.assign(council, b0)

	err := e.module.UploadDataObjects(uploadParams(council, 50))
	require.Nil(t, err, "first upload")

	expected := voucher.Voucher{SizeLimit: 100, ObjectsLimit: 1, SizeUsed: 50, ObjectsUsed: 1}
	assert.Equal(t, expected, e.bucket(b0).Voucher, "voucher after upload")

	event, ok := e.lastEvent().(objectstorage.DataObjectsUploaded)
	require.True(t, ok, "upload event")
	assert.Equal(t, []bag.DataObjectId{0}, event.DataObjectIds, "minted ids")
	assert.Equal(t, currency.Balance(10), event.DeletionPrize, "event prize")
	assert.Equal(t, expected, event.Vouchers[b0], "event voucher")

	aliceBefore := e.balance(fixtures.Alice)
	treasuryBefore := e.module.TreasuryBalance()
	settingsBefore := e.module.Settings()

	err = e.module.UploadDataObjects(uploadParams(council, 10))
	assert.Equal(t, fault.StorageBucketObjectNumberLimitReached, err, "second upload")

	assert.Equal(t, expected, e.bucket(b0).Voucher, "voucher unchanged")
	assert.Equal(t, 1, len(e.bag(council).Objects), "objects unchanged")
	assert.Equal(t, aliceBefore, e.balance(fixtures.Alice), "uploader balance unchanged")
	assert.Equal(t, treasuryBefore, e.module.TreasuryBalance(), "treasury unchanged")
	assert.Equal(t, settingsBefore, e.module.Settings(), "counters unchanged")
	assert.Equal(t, 0, len(e.events()), "no event on failure")
}

func TestUploadSizeLimit(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(100, 10)
	e.assign(council, b0)

	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 60)), "upload")
	err := e.module.UploadDataObjects(uploadParams(council, 41))
	assert.Equal(t, fault.StorageBucketObjectSizeLimitReached, err, "over size")
	assert.Nil(t, e.module.UploadDataObjects(uploadParams(council, 40)), "exact fit")
	assert.Equal(t, uint64(100), e.bucket(b0).Voucher.SizeUsed, "full")
}

func TestUploadPaysDeletionPrizeAndFee(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	e.assign(council, e.createBucket(1<<30, 100))

	require.Nil(t, e.module.UpdateDataSizeFee(fixtures.Leader, 2), "set fee")

	params := uploadParams(council, 1024*1024+1, 100)
	err := e.module.UploadDataObjects(params)
	assert.Equal(t, fault.DataSizeFeeChanged, err, "stale fee")

	params.ExpectedDataSizeFee = 2
	require.Nil(t, e.module.UploadDataObjects(params), "upload")

	// two prizes of 10, fee for two started megabytes
	assert.Equal(t, currency.Balance(initialBalance-20-4), e.balance(fixtures.Alice), "uploader balance")
	assert.Equal(t, currency.Balance(20), e.module.TreasuryBalance(), "treasury")

	b := e.bag(council)
	assert.Equal(t, currency.Balance(20), b.DeletionPrize, "bag prize")
	for _, o := range b.Objects {
		assert.False(t, o.Accepted, "pending")
		assert.Equal(t, currency.Balance(10), o.DeletionPrize, "object prize")
	}
}

func TestDataSizeFee(t *testing.T) {
	assert.Equal(t, currency.Balance(0), objectstorage.DataSizeFee(0, 5), "empty")
	assert.Equal(t, currency.Balance(5), objectstorage.DataSizeFee(1, 5), "one byte")
	assert.Equal(t, currency.Balance(5), objectstorage.DataSizeFee(1024*1024, 5), "one megabyte")
	assert.Equal(t, currency.Balance(10), objectstorage.DataSizeFee(1024*1024+1, 5), "just over")
	assert.Equal(t, currency.Balance(0), objectstorage.DataSizeFee(1024*1024, 0), "no fee")
}

func TestUploadValidation(t *testing.T) {
	parameters := objectstorage.DefaultParameters()
	parameters.MaxNumberOfDataObjectsPerBag = 2
	parameters.MaxDataObjectSize = 1000

	e := newTestEnvWith(t, parameters, nil)
	defer e.close()

	e.assign(council, e.createBucket(100000, 100))

	noSource := uploadParams(council, 10)
	noSource.DeletionPrizeSourceAccountId = account.Zero

	moduleSource := uploadParams(council, 10)
	moduleSource.DeletionPrizeSourceAccountId = e.module.ModuleAccount()

	emptyCid := uploadParams(council, 10)
	emptyCid.ObjectCreationList[0].IpfsContentId = nil

	poor := uploadParams(council, 10)
	poor.DeletionPrizeSourceAccountId = fixtures.Charlie

	testCases := []struct {
		name   string
		params objectstorage.UploadParameters
		err    error
	}{
		{"no objects", uploadParams(council), fault.NoObjectsOnUpload},
		{"zero source", noSource, fault.InvalidDeletionPrizeSourceAccount},
		{"module source", moduleSource, fault.InvalidDeletionPrizeSourceAccount},
		{"too many objects", uploadParams(council, 1, 2, 3), fault.DataObjectsPerBagLimitExceeded},
		{"zero size", uploadParams(council, 0), fault.ZeroObjectSize},
		{"too large", uploadParams(council, 1001), fault.MaxDataObjectSizeExceeded},
		{"empty content id", emptyCid, fault.EmptyContentId},
		{"no funds", poor, fault.InsufficientBalance},
		{"missing dynamic bag", uploadParams(member7.BagId(), 10), fault.DynamicBagDoesntExist},
	}

	for _, item := range testCases {
		assert.Equal(t, item.err, e.module.CanUploadDataObjects(item.params), "can: %s", item.name)
		assert.Equal(t, item.err, e.module.UploadDataObjects(item.params), "upload: %s", item.name)
	}

	assert.Equal(t, 0, len(e.bag(council).Objects), "nothing stored")
	assert.Equal(t, uint64(0), e.module.Settings().NextDataObjectId, "no ids minted")
	assert.Equal(t, currency.Balance(0), e.module.TreasuryBalance(), "treasury untouched")

	require.Nil(t, e.module.UpdateUploadingBlockedStatus(fixtures.Leader, true), "block")
	assert.Equal(t, fault.UploadingBlocked, e.module.UploadDataObjects(uploadParams(council, 10)), "blocked")
	require.Nil(t, e.module.UpdateUploadingBlockedStatus(fixtures.Leader, false), "unblock")
	assert.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10)), "unblocked")
}

func TestUploadBlacklisted(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	e.assign(council, b0)

	params := uploadParams(council, 10)
	cid := params.ObjectCreationList[0].IpfsContentId

	require.Nil(t, e.module.UpdateBlacklist(fixtures.Leader, nil, [][]byte{cid}), "blacklist")
	assert.True(t, e.module.IsBlacklisted(cid), "blacklisted")

	err := e.module.UploadDataObjects(params)
	assert.Equal(t, fault.DataObjectBlacklisted, err, "upload")

	assert.Equal(t, 0, len(e.bag(council).Objects), "no object")
	assert.Equal(t, uint64(0), e.module.Settings().NextDataObjectId, "no id minted")
	assert.Equal(t, voucher.Delta{}, e.bucket(b0).Voucher.Used(), "voucher unchanged")
}

func TestCanUploadMatchesUpload(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	e.assign(council, e.createBucket(100, 3))

	for i := 0; i < 5; i += 1 {
		params := uploadParams(council, 30)
		canErr := e.module.CanUploadDataObjects(params)
		err := e.module.UploadDataObjects(params)
		assert.Equal(t, canErr, err, "round %d", i)
	}
	assert.Equal(t, 3, len(e.bag(council).Objects), "objects stored")
}

func TestMoveDataObjects(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	b1 := e.createBucket(1000, 10)
	e.assign(council, b0)
	e.assign(storageWG, b1)

	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10, 20)), "upload")
	before, err := e.module.DataObject(council, 1)
	require.Nil(t, err, "object before")

	require.Nil(t, e.module.CanMoveDataObjects(council, storageWG, []bag.DataObjectId{1}), "can move")
	require.Nil(t, e.module.MoveDataObjects(council, storageWG, []bag.DataObjectId{1}), "move")

	src := e.bag(council)
	dest := e.bag(storageWG)
	assert.Equal(t, voucher.Delta{Objects: 1, Size: 10}, src.Objects.Delta(), "source totals")
	assert.Equal(t, voucher.Delta{Objects: 1, Size: 20}, dest.Objects.Delta(), "destination totals")
	assert.Equal(t, before, dest.Objects[1], "object unchanged")
	assert.Equal(t, src.Objects.DeletionPrize(), src.DeletionPrize, "source prize")
	assert.Equal(t, dest.Objects.DeletionPrize(), dest.DeletionPrize, "destination prize")

	assert.Equal(t, voucher.Delta{Objects: 1, Size: 10}, e.bucket(b0).Voucher.Used(), "source bucket")
	assert.Equal(t, voucher.Delta{Objects: 1, Size: 20}, e.bucket(b1).Voucher.Used(), "destination bucket")

	event, ok := e.lastEvent().(objectstorage.DataObjectsMoved)
	require.True(t, ok, "move event")
	assert.Equal(t, storageWG, event.DestBagId, "event destination")
}

func TestMoveBetweenBagsSharingBucket(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	e.assign(council, b0)
	e.assign(storageWG, b0)

	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10)), "upload")
	require.Nil(t, e.module.MoveDataObjects(council, storageWG, []bag.DataObjectId{0}), "move")

	assert.Equal(t, voucher.Delta{Objects: 1, Size: 10}, e.bucket(b0).Voucher.Used(), "shared bucket unchanged")
}

func TestMoveValidation(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	b1 := e.createBucket(15, 10)
	e.assign(council, b0)
	e.assign(storageWG, b1)
	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10, 20)), "upload")

	testCases := []struct {
		name string
		src  bag.Id
		dest bag.Id
		ids  []bag.DataObjectId
		err  error
	}{
		{"same bag", council, council, []bag.DataObjectId{0}, fault.SourceAndDestinationBagsAreEqual},
		{"no ids", council, storageWG, nil, fault.DataObjectIdCollectionIsEmpty},
		{"missing object", council, storageWG, []bag.DataObjectId{7}, fault.DataObjectDoesntExist},
		{"missing bag", council, member7.BagId(), []bag.DataObjectId{0}, fault.DynamicBagDoesntExist},
		{"no room", council, storageWG, []bag.DataObjectId{1}, fault.StorageBucketObjectSizeLimitReached},
	}
	for _, item := range testCases {
		assert.Equal(t, item.err, e.module.CanMoveDataObjects(item.src, item.dest, item.ids), "can: %s", item.name)
		assert.Equal(t, item.err, e.module.MoveDataObjects(item.src, item.dest, item.ids), "move: %s", item.name)
	}
	assert.Equal(t, 2, len(e.bag(council).Objects), "source unchanged")
}

func TestDeleteDataObjects(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	e.assign(council, b0)
	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10, 20)), "upload")

	assert.Equal(t, fault.DataObjectIdCollectionIsEmpty, e.module.DeleteDataObjects(fixtures.Bob, council, nil), "no ids")
	assert.Equal(t, fault.DataObjectDoesntExist, e.module.DeleteDataObjects(fixtures.Bob, council, []bag.DataObjectId{0, 5}), "missing id")

	bobBefore := e.balance(fixtures.Bob)
	require.Nil(t, e.module.CanDeleteDataObjects(council, []bag.DataObjectId{0}), "can delete")
	require.Nil(t, e.module.DeleteDataObjects(fixtures.Bob, council, []bag.DataObjectId{0, 0}), "delete")

	assert.Equal(t, bobBefore+10, e.balance(fixtures.Bob), "prize refunded")
	assert.Equal(t, currency.Balance(10), e.module.TreasuryBalance(), "treasury")

	b := e.bag(council)
	assert.Equal(t, []bag.DataObjectId{1}, b.Objects.Ids(), "remaining")
	assert.Equal(t, currency.Balance(10), b.DeletionPrize, "bag prize")
	assert.Equal(t, voucher.Delta{Objects: 1, Size: 20}, e.bucket(b0).Voucher.Used(), "voucher")

	event, ok := e.lastEvent().(objectstorage.DataObjectsDeleted)
	require.True(t, ok, "delete event")
	assert.Equal(t, []bag.DataObjectId{0}, event.DataObjectIds, "event ids")
}

func TestDeleteDataObjectsInsufficientTreasury(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	e.assign(council, e.createBucket(1000, 10))
	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10)), "upload")

	// drain the treasury outside the module
	err := e.ledger.Transfer(e.module.ModuleAccount(), fixtures.Charlie, 5, currency.AllowDeath)
	require.Nil(t, err, "drain")

	err = e.module.DeleteDataObjects(fixtures.Bob, council, []bag.DataObjectId{0})
	assert.Equal(t, fault.InsufficientTreasuryBalance, err, "delete")
	assert.Equal(t, 1, len(e.bag(council).Objects), "object kept")
}

func TestDynamicBagLifeCycle(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)

	require.Nil(t, e.module.CanCreateDynamicBag(member7), "can create")
	require.Nil(t, e.module.CreateDynamicBag(member7), "create")
	assert.Equal(t, fault.DynamicBagExists, e.module.CreateDynamicBag(member7), "create twice")

	created, ok := e.lastEvent().(objectstorage.DynamicBagCreated)
	require.True(t, ok, "create event")
	assert.Equal(t, bucket.NewIdSet(b0), created.StorageBuckets, "picked")
	assert.Equal(t, uint64(1), e.bucket(b0).AssignedBags, "assigned")

	require.Nil(t, e.module.UploadDataObjects(uploadParams(member7.BagId(), 10)), "upload")
	assert.Equal(t, currency.Balance(10), e.bag(member7.BagId()).DeletionPrize, "bag prize")

	treasuryBefore := e.module.TreasuryBalance()
	bobBefore := e.balance(fixtures.Bob)

	require.Nil(t, e.module.CanDeleteDynamicBag(member7), "can delete")
	require.Nil(t, e.module.DeleteDynamicBag(fixtures.Bob, member7), "delete")

	assert.Equal(t, treasuryBefore-10, e.module.TreasuryBalance(), "treasury paid out")
	assert.Equal(t, bobBefore+10, e.balance(fixtures.Bob), "payer received prize")

	_, err := e.module.Bag(member7.BagId())
	assert.Equal(t, fault.DynamicBagDoesntExist, err, "bag removed")
	_, err = e.module.DataObject(member7.BagId(), 0)
	assert.Equal(t, fault.DataObjectDoesntExist, err, "objects removed")

	b := e.bucket(b0)
	assert.Equal(t, voucher.Delta{}, b.Voucher.Used(), "voucher released")
	assert.Equal(t, uint64(0), b.AssignedBags, "unassigned")

	assert.Equal(t, fault.DynamicBagDoesntExist, e.module.DeleteDynamicBag(fixtures.Bob, member7), "delete twice")
}

func TestCreateDynamicBagUnderProvisioned(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	require.Nil(t, e.module.CreateDynamicBag(member7), "no buckets at all")
	assert.Equal(t, 0, len(e.bag(member7.BagId()).StoredBy), "nothing picked")

	b0 := e.createBucket(1000, 10)
	b1 := e.createBucket(1000, 10)
	require.Nil(t, e.module.UpdateStorageBucketStatus(fixtures.Worker1, fixtures.WorkerId1, b0, false), "stop accepting")

	channel := bag.Channel(3)
	require.Nil(t, e.module.CreateDynamicBag(channel), "create")
	stored := e.bag(channel.BagId()).StoredBy
	assert.Equal(t, []bucket.StorageBucketId{b1}, stored.Sorted(), "only accepting bucket")
}

func TestCreateDynamicBagPolicyAndLimit(t *testing.T) {
	e := newTestEnvWith(t, objectstorage.DefaultParameters(), picker.SaltedRandomness{Salt: []byte("block")})
	defer e.close()

	for i := 0; i < 12; i += 1 {
		e.createBucket(1000, 10)
	}

	require.Nil(t, e.module.CreateDynamicBag(member7), "member bag")
	assert.Equal(t, 5, len(e.bag(member7.BagId()).StoredBy), "default policy")

	err := e.module.UpdateNumberOfStorageBucketsInDynamicBagCreationPolicy(fixtures.Leader, bag.ChannelType, 10)
	require.Nil(t, err, "policy")
	assert.Equal(t, uint64(10), e.module.DynamicBagCreationPolicy(bag.ChannelType).NumberOfStorageBuckets, "policy stored")

	channel := bag.Channel(1)
	require.Nil(t, e.module.CreateDynamicBag(channel), "channel bag")
	assert.Equal(t, 7, len(e.bag(channel.BagId()).StoredBy), "capped by per bag limit")

	total := uint64(0)
	entries, err := e.module.StorageBuckets(0, 100)
	require.Nil(t, err, "list")
	for _, entry := range entries {
		total += entry.Bucket.AssignedBags
	}
	assert.Equal(t, uint64(12), total, "assignments")
}

func TestDeletionPrizeConservation(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	e.createBucket(10000, 100)
	channel := bag.Channel(9)
	require.Nil(t, e.module.CreateDynamicBag(member7), "member bag")
	require.Nil(t, e.module.CreateDynamicBag(channel), "channel bag")

	require.Nil(t, e.module.UploadDataObjects(uploadParams(member7.BagId(), 1, 2, 3)), "upload")
	require.Nil(t, e.module.MoveDataObjects(member7.BagId(), channel.BagId(), []bag.DataObjectId{0, 2}), "move")
	require.Nil(t, e.module.DeleteDataObjects(fixtures.Bob, channel.BagId(), []bag.DataObjectId{2}), "delete")
	require.Nil(t, e.module.UploadDataObjects(uploadParams(channel.BagId(), 4)), "upload again")

	total := currency.Balance(0)
	for _, id := range []bag.Id{member7.BagId(), channel.BagId()} {
		b := e.bag(id)
		assert.Equal(t, b.Objects.DeletionPrize(), b.DeletionPrize, "prize of %s", id)
		total += b.DeletionPrize
	}
	assert.Equal(t, e.module.TreasuryBalance(), total, "treasury holds every prize")
}

func TestCreateDynamicBagWithObjects(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	b1 := e.createBucket(1000, 10)
	e.events()

	params := uploadParams(member7.BagId(), 30, 20)
	require.Nil(t, e.module.CanCreateDynamicBagWithObjects(member7, params), "can create")
	_, err := e.module.Bag(member7.BagId())
	assert.Equal(t, fault.DynamicBagDoesntExist, err, "dry run created the bag")

	require.Nil(t, e.module.CreateDynamicBagWithObjects(member7, params), "create")

	events := e.events()
	require.Equal(t, 2, len(events), "events")
	created, ok := events[0].(objectstorage.DynamicBagCreated)
	require.True(t, ok, "create event")
	assert.Equal(t, bucket.NewIdSet(b0, b1), created.StorageBuckets, "picked")
	uploaded, ok := events[1].(objectstorage.DataObjectsUploaded)
	require.True(t, ok, "upload event")
	assert.Equal(t, []bag.DataObjectId{0, 1}, uploaded.DataObjectIds, "minted ids")
	assert.Equal(t, currency.Balance(20), uploaded.DeletionPrize, "event prize")

	b := e.bag(member7.BagId())
	assert.Equal(t, 2, len(b.Objects), "objects")
	assert.Equal(t, currency.Balance(20), b.DeletionPrize, "bag prize")
	assert.Equal(t, bucket.NewIdSet(b0, b1), b.StoredBy, "stored by")

	for _, id := range []bucket.StorageBucketId{b0, b1} {
		sb := e.bucket(id)
		assert.Equal(t, voucher.Delta{Objects: 2, Size: 50}, sb.Voucher.Used(), "voucher: %d", id)
		assert.Equal(t, uint64(1), sb.AssignedBags, "assigned: %d", id)
	}
	assert.Equal(t, currency.Balance(20), e.module.TreasuryBalance(), "treasury")
	assert.Equal(t, currency.Balance(initialBalance-20), e.balance(fixtures.Alice), "uploader balance")
	assert.Equal(t, uint64(2), e.module.Settings().NextDataObjectId, "next id")

	assert.Equal(t, fault.DynamicBagExists, e.module.CanCreateDynamicBagWithObjects(member7, params), "can create twice")
	assert.Equal(t, fault.DynamicBagExists, e.module.CreateDynamicBagWithObjects(member7, params), "create twice")
	assert.Equal(t, 0, len(e.events()), "no event on failure")
}

func TestCreateDynamicBagWithObjectsSkipsFullBuckets(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	small := e.createBucket(40, 10)
	few := e.createBucket(1000, 1)
	roomy := e.createBucket(1000, 10)
	e.events()

	channel := bag.Channel(3)
	require.Nil(t, e.module.CreateDynamicBagWithObjects(channel, uploadParams(channel.BagId(), 30, 20)), "create")

	assert.Equal(t, []bucket.StorageBucketId{roomy}, e.bag(channel.BagId()).StoredBy.Sorted(), "only bucket with room")
	for _, id := range []bucket.StorageBucketId{small, few} {
		sb := e.bucket(id)
		assert.Equal(t, voucher.Delta{}, sb.Voucher.Used(), "voucher: %d", id)
		assert.Equal(t, uint64(0), sb.AssignedBags, "assigned: %d", id)
	}
}

func TestCreateDynamicBagWithObjectsValidation(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	e.createBucket(1000, 10)
	e.events()

	blank := uploadParams(member7.BagId())
	mismatched := uploadParams(council, 10)
	zero := uploadParams(member7.BagId(), 0)
	poor := uploadParams(member7.BagId(), 10)
	poor.DeletionPrizeSourceAccountId = fixtures.Charlie

	items := []struct {
		name   string
		params objectstorage.UploadParameters
		err    error
	}{
		{"empty", blank, fault.NoObjectsOnUpload},
		{"other bag", mismatched, fault.InvalidBagId},
		{"zero size", zero, fault.ZeroObjectSize},
		{"balance", poor, fault.InsufficientBalance},
	}
	for _, item := range items {
		assert.Equal(t, item.err, e.module.CanCreateDynamicBagWithObjects(member7, item.params), "can: %s", item.name)
		assert.Equal(t, item.err, e.module.CreateDynamicBagWithObjects(member7, item.params), "create: %s", item.name)
	}

	_, err := e.module.Bag(member7.BagId())
	assert.Equal(t, fault.DynamicBagDoesntExist, err, "nothing created")
	assert.Equal(t, uint64(0), e.module.Settings().NextDataObjectId, "no ids minted")
	assert.Equal(t, currency.Balance(0), e.module.TreasuryBalance(), "treasury untouched")
	assert.Equal(t, 0, len(e.events()), "no event on failure")
}
