// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package buckets_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/rpc/buckets"
	"github.com/bitmark-inc/bagstore/rpc/mocks"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setup(t *testing.T) (*gomock.Controller, *mocks.MockBucketManager, *buckets.Buckets) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockBucketManager(ctl)
	return ctl, m, buckets.New(logger.New(fixtures.LogCategory), m)
}

func TestCreate(t *testing.T) {
	ctl, m, b := setup(t)
	defer ctl.Finish()

	w := bucket.WorkerId(fixtures.WorkerId1)
	gomock.InOrder(
		m.EXPECT().CreateStorageBucket(fixtures.Leader, &w, true, uint64(100), uint64(10)).Return(bucket.StorageBucketId(3), nil),
		m.EXPECT().CreateStorageBucket(fixtures.Alice, nil, false, uint64(0), uint64(0)).Return(bucket.StorageBucketId(0), fault.NotLeader),
	)

	var reply buckets.CreateReply
	err := b.Create(&buckets.CreateArguments{
		Caller:           fixtures.Leader,
		InviteWorker:     &w,
		AcceptingNewBags: true,
		SizeLimit:        100,
		ObjectsLimit:     10,
	}, &reply)
	assert.Nil(t, err, "wrong create")
	assert.Equal(t, bucket.StorageBucketId(3), reply.StorageBucketId, "wrong bucket id")

	var rejected buckets.CreateReply
	err = b.Create(&buckets.CreateArguments{Caller: fixtures.Alice}, &rejected)
	assert.Equal(t, fault.NotLeader, err, "wrong error")
	assert.Equal(t, bucket.StorageBucketId(0), rejected.StorageBucketId, "wrong bucket id")

	assert.Equal(t, fault.MissingParameters, b.Create(nil, &rejected), "nil arguments")
}

func TestLeaderOperations(t *testing.T) {
	ctl, m, b := setup(t)
	defer ctl.Finish()

	id := bucket.StorageBucketId(2)
	w := bucket.WorkerId(fixtures.WorkerId2)
	m.EXPECT().DeleteStorageBucket(fixtures.Leader, id).Return(fault.CannotDeleteNonEmptyStorageBucket).Times(1)
	m.EXPECT().InviteStorageBucketOperator(fixtures.Leader, id, w).Return(nil).Times(1)
	m.EXPECT().CancelStorageBucketOperatorInvite(fixtures.Leader, id).Return(nil).Times(1)
	m.EXPECT().RemoveStorageBucketOperator(fixtures.Leader, id).Return(fault.StorageProviderMustBeSet).Times(1)

	var reply buckets.Reply
	arguments := buckets.BucketArguments{Caller: fixtures.Leader, StorageBucketId: id}
	assert.Equal(t, fault.CannotDeleteNonEmptyStorageBucket, b.Delete(&arguments, &reply), "wrong delete")
	assert.Nil(t, b.Invite(&buckets.InviteArguments{Caller: fixtures.Leader, StorageBucketId: id, WorkerId: w}, &reply), "wrong invite")
	assert.Nil(t, b.CancelInvite(&arguments, &reply), "wrong cancel")
	assert.Equal(t, fault.StorageProviderMustBeSet, b.RemoveOperator(&arguments, &reply), "wrong remove")
}

func TestUpdateForBag(t *testing.T) {
	ctl, m, b := setup(t)
	defer ctl.Finish()

	council := bag.Static(bag.Council)
	m.EXPECT().UpdateStorageBucketsForBag(fixtures.Leader, council, bucket.NewIdSet(1, 2), bucket.IdSet{}).Return(nil).Times(1)

	var reply buckets.Reply
	err := b.UpdateForBag(&buckets.UpdateForBagArguments{
		Caller: fixtures.Leader,
		BagId:  council,
		Add:    bucket.NewIdSet(1, 2),
	}, &reply)
	assert.Nil(t, err, "wrong update")

	large := bucket.IdSet{}
	for i := 0; i < 201; i += 1 {
		large.Add(bucket.StorageBucketId(i))
	}
	err = b.UpdateForBag(&buckets.UpdateForBagArguments{Caller: fixtures.Leader, BagId: council, Add: large}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversized update reaches the module")
}

func TestOperatorOperations(t *testing.T) {
	ctl, m, b := setup(t)
	defer ctl.Finish()

	id := bucket.StorageBucketId(0)
	w := bucket.WorkerId(fixtures.WorkerId1)
	m.EXPECT().AcceptStorageBucketInvitation(fixtures.Worker1, w, id).Return(nil).Times(1)
	m.EXPECT().SetStorageOperatorMetadata(fixtures.Worker1, w, id, []byte("endpoint")).Return(nil).Times(1)
	m.EXPECT().SetStorageBucketVoucherLimits(fixtures.Worker1, w, id, uint64(50), uint64(5)).Return(fault.VoucherMaxObjectSizeLimitExceeded).Times(1)
	m.EXPECT().UpdateStorageBucketStatus(fixtures.Worker1, w, id, false).Return(nil).Times(1)

	operator := buckets.OperatorArguments{Caller: fixtures.Worker1, WorkerId: w, StorageBucketId: id}

	var reply buckets.Reply
	assert.Nil(t, b.AcceptInvitation(&operator, &reply), "wrong accept")
	assert.Nil(t, b.SetMetadata(&buckets.MetadataArguments{OperatorArguments: operator, Metadata: []byte("endpoint")}, &reply), "wrong metadata")

	err := b.SetVoucherLimits(&buckets.VoucherLimitsArguments{OperatorArguments: operator, SizeLimit: 50, ObjectsLimit: 5}, &reply)
	assert.Equal(t, fault.VoucherMaxObjectSizeLimitExceeded, err, "wrong voucher limits")

	assert.Nil(t, b.UpdateStatus(&buckets.StatusArguments{OperatorArguments: operator}, &reply), "wrong status")
}

func TestGet(t *testing.T) {
	ctl, m, b := setup(t)
	defer ctl.Finish()

	expected := bucket.New(nil, true, 10, 1)
	m.EXPECT().StorageBucket(bucket.StorageBucketId(1)).Return(expected, nil).Times(1)
	m.EXPECT().StorageBucket(bucket.StorageBucketId(9)).Return(nil, fault.StorageBucketDoesntExist).Times(1)

	var reply buckets.GetReply
	assert.Nil(t, b.Get(&buckets.GetArguments{StorageBucketId: 1}, &reply), "wrong get")
	assert.Equal(t, expected, reply.Bucket, "wrong bucket")

	var missing buckets.GetReply
	assert.Equal(t, fault.StorageBucketDoesntExist, b.Get(&buckets.GetArguments{StorageBucketId: 9}, &missing), "wrong error")
}

func TestList(t *testing.T) {
	ctl, m, b := setup(t)
	defer ctl.Finish()

	entries := []bucket.Entry{
		{Id: 4, Bucket: bucket.New(nil, true, 10, 1)},
		{Id: 7, Bucket: bucket.New(nil, false, 10, 1)},
	}
	m.EXPECT().StorageBuckets(bucket.StorageBucketId(4), 2).Return(entries, nil).Times(1)
	m.EXPECT().StorageBuckets(bucket.StorageBucketId(8), 2).Return([]bucket.Entry{}, nil).Times(1)

	var reply buckets.ListReply
	assert.Nil(t, b.List(&buckets.ListArguments{Start: 4, Count: 2}, &reply), "wrong list")
	assert.Equal(t, entries, reply.Buckets, "wrong buckets")
	assert.Equal(t, bucket.StorageBucketId(8), reply.Next, "wrong next")

	var end buckets.ListReply
	assert.Nil(t, b.List(&buckets.ListArguments{Start: 8, Count: 2}, &end), "wrong list at end")
	assert.Equal(t, 0, len(end.Buckets), "wrong buckets at end")
	assert.Equal(t, bucket.StorageBucketId(8), end.Next, "wrong next at end")

	assert.Equal(t, fault.InvalidCount, b.List(&buckets.ListArguments{Count: 0}, &end), "zero count")
	assert.Equal(t, fault.InvalidCount, b.List(&buckets.ListArguments{Count: 101}, &end), "large count")
}
