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
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/objectstorage"
)

func TestOperatorOrigin(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(100, 10)
	e.assign(council, b0)
	e.events()

	testCases := []struct {
		caller account.Account
		worker uint64
		err    error
	}{
		{account.Zero, fixtures.WorkerId1, fault.UnsignedOrigin},
		{fixtures.Leader, fixtures.WorkerId1, fault.InvalidWorkerOrigin},
		{fixtures.Worker2, fixtures.WorkerId1, fault.InvalidWorkerOrigin},
		{fixtures.Worker1, 99, fault.InvalidWorkerOrigin},
		{fixtures.Worker2, fixtures.WorkerId2, fault.InvalidStorageProvider},
	}
	for _, item := range testCases {
		c := item.caller
		w := bucketWorker(item.worker)
		assert.Equal(t, item.err, e.module.SetStorageOperatorMetadata(c, w, b0, []byte("m")), "metadata")
		assert.Equal(t, item.err, e.module.SetStorageBucketVoucherLimits(c, w, b0, 10, 10), "limits")
		assert.Equal(t, item.err, e.module.UpdateStorageBucketStatus(c, w, b0, false), "status")
		assert.Equal(t, item.err, e.module.AcceptPendingDataObjects(c, w, b0, council, []bag.DataObjectId{0}), "accept objects")
	}
	assert.Equal(t, 0, len(e.events()), "all rejected")
}

func TestSetStorageOperatorMetadata(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(100, 10)

	metadata := []byte(`{"endpoint":"https://sp1.example.com"}`)
	require.Nil(t, e.module.SetStorageOperatorMetadata(fixtures.Worker1, fixtures.WorkerId1, b0, metadata), "set")
	assert.Equal(t, metadata, e.bucket(b0).Metadata, "stored")

	event, ok := e.lastEvent().(objectstorage.StorageOperatorMetadataSet)
	require.True(t, ok, "event")
	assert.Equal(t, metadata, event.Metadata, "event metadata")

	assert.Equal(t, fault.StorageBucketDoesntExist, e.module.SetStorageOperatorMetadata(fixtures.Worker1, fixtures.WorkerId1, 7, metadata), "missing bucket")
}

func TestSetStorageBucketVoucherLimits(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	e.assign(council, b0)
	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 100, 200)), "upload")
	require.Nil(t, e.module.UpdateStorageBucketsVoucherMaxLimits(fixtures.Leader, 5000, 50), "max limits")

	testCases := []struct {
		name    string
		size    uint64
		objects uint64
		err     error
	}{
		{"size above max", 5001, 10, fault.VoucherMaxObjectSizeLimitExceeded},
		{"objects above max", 1000, 51, fault.VoucherMaxObjectNumberLimitExceeded},
		{"objects below usage", 1000, 1, fault.StorageBucketObjectNumberLimitReached},
		{"size below usage", 299, 10, fault.StorageBucketObjectSizeLimitReached},
		{"both below usage", 1, 1, fault.StorageBucketObjectNumberLimitReached},
	}
	for _, item := range testCases {
		err := e.module.SetStorageBucketVoucherLimits(fixtures.Worker1, fixtures.WorkerId1, b0, item.size, item.objects)
		assert.Equal(t, item.err, err, item.name)
	}

	require.Nil(t, e.module.SetStorageBucketVoucherLimits(fixtures.Worker1, fixtures.WorkerId1, b0, 300, 2), "exact usage")
	v := e.bucket(b0).Voucher
	assert.Equal(t, uint64(300), v.SizeLimit, "size limit")
	assert.Equal(t, uint64(2), v.ObjectsLimit, "objects limit")
	assert.Equal(t, uint64(300), v.SizeUsed, "size used")
	assert.Equal(t, uint64(2), v.ObjectsUsed, "objects used")

	assert.Equal(t, fault.StorageBucketObjectNumberLimitReached, e.module.UploadDataObjects(uploadParams(council, 1)), "bucket full")
}

func TestUpdateStorageBucketStatus(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(100, 10)
	require.Nil(t, e.module.UpdateStorageBucketStatus(fixtures.Worker1, fixtures.WorkerId1, b0, false), "stop")
	assert.False(t, e.bucket(b0).AcceptingNewBags, "stopped")

	event, ok := e.lastEvent().(objectstorage.StorageBucketStatusUpdated)
	require.True(t, ok, "event")
	assert.False(t, event.AcceptingNewBags, "event status")

	err := e.module.UpdateStorageBucketsForBag(fixtures.Leader, council, bucket.NewIdSet(b0), nil)
	assert.Equal(t, fault.StorageBucketDoesntAcceptNewBags, err, "closed to new bags")

	require.Nil(t, e.module.UpdateStorageBucketStatus(fixtures.Worker1, fixtures.WorkerId1, b0, true), "resume")
	e.assign(council, b0)
}

func TestAcceptPendingDataObjects(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	b0 := e.createBucket(1000, 10)
	b1 := e.createBucket(1000, 10)
	e.assign(council, b0)
	e.assign(storageWG, b1)
	require.Nil(t, e.module.UploadDataObjects(uploadParams(council, 10, 20)), "upload")
	require.Nil(t, e.module.UploadDataObjects(uploadParams(storageWG, 30)), "upload other bag")

	w := bucketWorker(fixtures.WorkerId1)
	assert.Equal(t, fault.StorageBucketIsNotBoundToBag, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b1, council, []bag.DataObjectId{0}), "unrelated bucket")
	assert.Equal(t, fault.DataObjectDoesntExist, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b0, council, []bag.DataObjectId{0, 2}), "object of another bag")
	assert.Equal(t, fault.DynamicBagDoesntExist, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b0, member7.BagId(), []bag.DataObjectId{0}), "missing bag")
	assert.Equal(t, fault.StorageBucketDoesntExist, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, 9, council, []bag.DataObjectId{0}), "missing bucket")

	e.events()
	assert.Equal(t, fault.DataObjectIdCollectionIsEmpty, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b0, council, []bag.DataObjectId{}), "empty ids")
	assert.Equal(t, fault.DataObjectIdCollectionIsEmpty, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b0, council, nil), "nil ids")
	assert.Equal(t, 0, len(e.events()), "refused accept left an event")

	o, err := e.module.DataObject(council, 0)
	require.Nil(t, err, "read")
	assert.False(t, o.Accepted, "still pending")

	require.Nil(t, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b0, council, []bag.DataObjectId{1, 0, 1}), "accept")

	for _, id := range []bag.DataObjectId{0, 1} {
		o, err := e.module.DataObject(council, id)
		require.Nil(t, err, "read %d", id)
		assert.True(t, o.Accepted, "accepted %d", id)
	}
	o, err = e.module.DataObject(storageWG, 2)
	require.Nil(t, err, "read other")
	assert.False(t, o.Accepted, "other bag untouched")

	event, ok := e.lastEvent().(objectstorage.PendingDataObjectsAccepted)
	require.True(t, ok, "event")
	assert.Equal(t, []bag.DataObjectId{0, 1}, event.DataObjectIds, "deduplicated ids")

	require.Nil(t, e.module.AcceptPendingDataObjects(fixtures.Worker1, w, b0, council, []bag.DataObjectId{0}), "accept again")
}

func TestEventNames(t *testing.T) {
	events := []objectstorage.Event{
		objectstorage.StorageBucketCreated{},
		objectstorage.DataObjectsUploaded{},
		objectstorage.DynamicBagDeleted{},
		objectstorage.NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated{},
	}
	expected := []string{
		"StorageBucketCreated",
		"DataObjectsUploaded",
		"DynamicBagDeleted",
		"NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated",
	}
	for i, e := range events {
		assert.Equal(t, expected[i], e.Name(), "event %d", i)
	}
}
