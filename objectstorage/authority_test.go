// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/ledger"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/storage"
	"github.com/bitmark-inc/bagstore/workinggroup/mocks"
)

func newAuthorityModule(t *testing.T, authority *mocks.MockAuthority) (*objectstorage.Module, func()) {
	state, err := storage.NewMemory(storage.StateDatabase)
	require.Nil(t, err, "state store")
	funds, err := storage.NewMemory(storage.LedgerDatabase)
	require.Nil(t, err, "ledger store")
	l, err := ledger.New(funds, 0)
	require.Nil(t, err, "ledger")

	m, err := objectstorage.New(objectstorage.DefaultParameters(), state, l, authority, nil, messagebus.New(10))
	require.Nil(t, err, "module")

	return m, func() {
		state.Close()
		funds.Close()
	}
}

func TestAuthorityConsulted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	m, cleanup := newAuthorityModule(t, authority)
	defer cleanup()

	worker := bucket.WorkerId(fixtures.WorkerId1)

	gomock.InOrder(
		authority.EXPECT().EnsureLeader(fixtures.Leader).Return(nil).Times(1),
		authority.EXPECT().EnsureWorkerExists(worker).Return(nil).Times(1),
		authority.EXPECT().EnsureWorker(fixtures.Worker1, worker).Return(nil).Times(1),
	)

	id, err := m.CreateStorageBucket(fixtures.Leader, &worker, true, 100, 10)
	assert.Nil(t, err, "wrong CreateStorageBucket")

	err = m.AcceptStorageBucketInvitation(fixtures.Worker1, worker, id)
	assert.Nil(t, err, "wrong AcceptStorageBucketInvitation")
}

func TestAuthorityRefuses(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	m, cleanup := newAuthorityModule(t, authority)
	defer cleanup()

	worker := bucket.WorkerId(fixtures.WorkerId2)

	authority.EXPECT().EnsureLeader(fixtures.Alice).Return(fault.NotLeader).Times(1)
	_, err := m.CreateStorageBucket(fixtures.Alice, nil, true, 100, 10)
	assert.Equal(t, fault.NotLeader, err, "non leader created a bucket")

	authority.EXPECT().EnsureLeader(fixtures.Leader).Return(nil).Times(1)
	authority.EXPECT().EnsureWorkerExists(worker).Return(fault.StorageProviderOperatorDoesntExist).Times(1)
	_, err = m.CreateStorageBucket(fixtures.Leader, &worker, true, 100, 10)
	assert.Equal(t, fault.StorageProviderOperatorDoesntExist, err, "invited an unknown worker")

	list, err := m.StorageBuckets(0, 10)
	assert.Nil(t, err, "wrong StorageBuckets")
	assert.Equal(t, 0, len(list), "refused calls created a bucket")
}

// unsigned callers never reach the authority
func TestAuthorityUnsigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := mocks.NewMockAuthority(ctl)
	m, cleanup := newAuthorityModule(t, authority)
	defer cleanup()

	_, err := m.CreateStorageBucket(account.Zero, nil, true, 100, 10)
	assert.Equal(t, fault.UnsignedOrigin, err, "unsigned caller accepted")

	err = m.AcceptStorageBucketInvitation(account.Zero, bucket.WorkerId(fixtures.WorkerId1), 0)
	assert.Equal(t, fault.UnsignedOrigin, err, "unsigned worker accepted")
}
