// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/storage"
)

// operations of storage providers, the caller must be the role
// account of worker

// AcceptStorageBucketInvitation - take over an invited bucket
func (m *Module) AcceptStorageBucketInvitation(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateBucket(caller, worker, id, "AcceptStorageBucketInvitation", func(trx storage.Transaction, b *bucket.StorageBucket) error {
		return b.Accept(worker)
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketInvitationAccepted{
		StorageBucketId: id,
		WorkerId:        worker,
	})
	return nil
}

// SetStorageOperatorMetadata - free form operator data
func (m *Module) SetStorageOperatorMetadata(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, metadata []byte) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateBucket(caller, worker, id, "SetStorageOperatorMetadata", func(trx storage.Transaction, b *bucket.StorageBucket) error {
		if err := b.EnsureOperator(worker); nil != err {
			return err
		}
		b.Metadata = append([]byte{}, metadata...)
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(StorageOperatorMetadataSet{
		StorageBucketId: id,
		WorkerId:        worker,
		Metadata:        metadata,
	})
	return nil
}

// SetStorageBucketVoucherLimits - new capacity of an operated bucket
//
// limits may not drop below current usage
func (m *Module) SetStorageBucketVoucherLimits(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, sizeLimit uint64, objectsLimit uint64) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateBucket(caller, worker, id, "SetStorageBucketVoucherLimits", func(trx storage.Transaction, b *bucket.StorageBucket) error {
		if err := b.EnsureOperator(worker); nil != err {
			return err
		}
		if sizeLimit > m.voucherMaxObjectsSizeLimit(trx) {
			return fault.VoucherMaxObjectSizeLimitExceeded
		}
		if objectsLimit > m.voucherMaxObjectsNumberLimit(trx) {
			return fault.VoucherMaxObjectNumberLimitExceeded
		}
		if objectsLimit < b.Voucher.ObjectsUsed {
			return fault.StorageBucketObjectNumberLimitReached
		}
		if sizeLimit < b.Voucher.SizeUsed {
			return fault.StorageBucketObjectSizeLimitReached
		}
		b.Voucher.SizeLimit = sizeLimit
		b.Voucher.ObjectsLimit = objectsLimit
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketVoucherLimitsSet{
		StorageBucketId: id,
		WorkerId:        worker,
		SizeLimit:       sizeLimit,
		ObjectsLimit:    objectsLimit,
	})
	return nil
}

// UpdateStorageBucketStatus - start or stop accepting new bags
func (m *Module) UpdateStorageBucketStatus(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, acceptingNewBags bool) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateBucket(caller, worker, id, "UpdateStorageBucketStatus", func(trx storage.Transaction, b *bucket.StorageBucket) error {
		if err := b.EnsureOperator(worker); nil != err {
			return err
		}
		b.AcceptingNewBags = acceptingNewBags
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketStatusUpdated{
		StorageBucketId:  id,
		WorkerId:         worker,
		AcceptingNewBags: acceptingNewBags,
	})
	return nil
}

// change one bucket on behalf of a worker
func (m *Module) updateBucket(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, operation string, change func(storage.Transaction, *bucket.StorageBucket) error) error {
	if err := m.ensureWorker(caller, worker); nil != err {
		return err
	}

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	b, err := m.buckets.Get(trx, id)
	if nil != err {
		return m.rejected(operation, err)
	}
	if err := change(trx, b); nil != err {
		return m.rejected(operation, err)
	}

	// MUTATION SAFE

	m.buckets.Put(trx, id, b)
	m.commit(trx, operation)
	return nil
}

// AcceptPendingDataObjects - confirm receipt of objects of a bag the
// bucket stores
func (m *Module) AcceptPendingDataObjects(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, bagId bag.Id, ids []bag.DataObjectId) error {
	m.Lock()
	defer m.Unlock()

	if err := m.ensureWorker(caller, worker); nil != err {
		return err
	}
	if 0 == len(ids) {
		return m.rejected("accept objects", fault.DataObjectIdCollectionIsEmpty)
	}

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	b, err := m.buckets.Get(trx, id)
	if nil != err {
		return m.rejected("accept objects", err)
	}
	if err := b.EnsureOperator(worker); nil != err {
		return m.rejected("accept objects", err)
	}
	storedBy, err := m.bags.GetStorageBucketIds(trx, bagId)
	if nil != err {
		return m.rejected("accept objects", err)
	}
	if !storedBy.Contains(id) {
		return m.rejected("accept objects", fault.StorageBucketIsNotBoundToBag)
	}
	ids = uniqueObjectIds(ids)
	for _, objectId := range ids {
		if _, err := m.bags.EnsureDataObjectExistence(trx, bagId, objectId); nil != err {
			return m.rejected("accept objects", err)
		}
	}

	// MUTATION SAFE

	for _, objectId := range ids {
		err := m.bags.AcceptDataObject(trx, bagId, objectId)
		logger.PanicIfError("objectstorage.AcceptPendingDataObjects", err)
	}
	m.commit(trx, "AcceptPendingDataObjects")

	m.deposit(PendingDataObjectsAccepted{
		StorageBucketId: id,
		WorkerId:        worker,
		BagId:           bagId,
		DataObjectIds:   ids,
	})
	return nil
}
