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
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/storage"
)

// operations of the storage working group leader

// CreateStorageBucket - new bucket, optionally inviting an operator
func (m *Module) CreateStorageBucket(caller account.Account, inviteWorker *bucket.WorkerId, acceptingNewBags bool, sizeLimit uint64, objectsLimit uint64) (bucket.StorageBucketId, error) {
	m.Lock()
	defer m.Unlock()

	if err := m.ensureLeader(caller); nil != err {
		return 0, err
	}

	trx, err := m.begin()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	if m.buckets.Number(trx) >= m.parameters.MaxStorageBucketNumber {
		return 0, m.rejected("create bucket", fault.MaxStorageBucketNumberLimitExceeded)
	}
	if sizeLimit > m.voucherMaxObjectsSizeLimit(trx) {
		return 0, m.rejected("create bucket", fault.VoucherMaxObjectSizeLimitExceeded)
	}
	if objectsLimit > m.voucherMaxObjectsNumberLimit(trx) {
		return 0, m.rejected("create bucket", fault.VoucherMaxObjectNumberLimitExceeded)
	}
	if nil != inviteWorker {
		if err := m.authority.EnsureWorkerExists(*inviteWorker); nil != err {
			return 0, m.rejected("create bucket", err)
		}
	}

	// MUTATION SAFE

	id := m.buckets.Create(trx, bucket.New(inviteWorker, acceptingNewBags, sizeLimit, objectsLimit))
	m.commit(trx, "CreateStorageBucket")

	m.deposit(StorageBucketCreated{
		StorageBucketId:  id,
		InviteWorker:     inviteWorker,
		AcceptingNewBags: acceptingNewBags,
		SizeLimit:        sizeLimit,
		ObjectsLimit:     objectsLimit,
	})
	return id, nil
}

// DeleteStorageBucket - remove an unused bucket without operator
func (m *Module) DeleteStorageBucket(caller account.Account, id bucket.StorageBucketId) error {
	m.Lock()
	defer m.Unlock()

	if err := m.ensureLeader(caller); nil != err {
		return err
	}

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	b, err := m.buckets.Get(trx, id)
	if nil != err {
		return m.rejected("delete bucket", err)
	}
	if err := b.EnsureDeletable(); nil != err {
		return m.rejected("delete bucket", err)
	}

	// MUTATION SAFE

	m.buckets.Delete(trx, id)
	m.commit(trx, "DeleteStorageBucket")

	m.deposit(StorageBucketDeleted{StorageBucketId: id})
	return nil
}

// UpdateStorageBucketsForBag - add and remove buckets storing a bag
//
// added buckets take on the bag's current content, removed buckets
// release it
func (m *Module) UpdateStorageBucketsForBag(caller account.Account, id bag.Id, add bucket.IdSet, remove bucket.IdSet) error {
	m.Lock()
	defer m.Unlock()

	if err := m.ensureLeader(caller); nil != err {
		return err
	}

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if 0 == len(add) && 0 == len(remove) {
		return m.rejected("update bag buckets", fault.StorageBucketIdCollectionsAreEmpty)
	}

	b, err := m.bags.GetBag(trx, id)
	if nil != err {
		return m.rejected("update bag buckets", err)
	}

	plan := m.newBucketPlan(trx)
	for _, bucketId := range add.Sorted() {
		sb, err := plan.get(bucketId)
		if nil != err {
			return m.rejected("update bag buckets", err)
		}
		if !sb.AcceptingNewBags {
			return m.rejected("update bag buckets", fault.StorageBucketDoesntAcceptNewBags)
		}
		if b.StoredBy.Contains(bucketId) {
			return m.rejected("update bag buckets", fault.StorageBucketIsBoundToBag)
		}
	}
	for _, bucketId := range remove.Sorted() {
		if _, err := plan.get(bucketId); nil != err {
			return m.rejected("update bag buckets", err)
		}
		if !b.StoredBy.Contains(bucketId) {
			return m.rejected("update bag buckets", fault.StorageBucketIsNotBoundToBag)
		}
	}

	newSize := uint64(len(b.StoredBy)) + uint64(len(add)) - uint64(len(remove))
	if newSize > m.storageBucketsPerBagLimit(trx) {
		return m.rejected("update bag buckets", fault.StorageBucketPerBagLimitExceeded)
	}

	delta := b.Objects.Delta()
	if err := plan.increase(add, delta); nil != err {
		return m.rejected("update bag buckets", err)
	}
	if err := plan.decrease(remove, delta); nil != err {
		return m.rejected("update bag buckets", err)
	}
	for bucketId := range add {
		plan.buckets[bucketId].AssignedBags += 1
	}
	for bucketId := range remove {
		sb := plan.buckets[bucketId]
		if sb.AssignedBags > 0 {
			sb.AssignedBags -= 1
		}
	}

	storedBy := b.StoredBy.Clone()
	for bucketId := range add {
		storedBy.Add(bucketId)
	}
	for bucketId := range remove {
		storedBy.Remove(bucketId)
	}

	// MUTATION SAFE

	err = m.bags.SetStorageBuckets(trx, id, storedBy)
	logger.PanicIfError("objectstorage.UpdateStorageBucketsForBag", err)
	plan.apply(trx)
	m.commit(trx, "UpdateStorageBucketsForBag")

	m.deposit(StorageBucketsUpdatedForBag{
		BagId:   id,
		Added:   add.Clone(),
		Removed: remove.Clone(),
	})
	return nil
}

// change the operator status of one bucket
func (m *Module) updateOperator(caller account.Account, id bucket.StorageBucketId, operation string, change func(*bucket.StorageBucket) error) error {
	if err := m.ensureLeader(caller); nil != err {
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
	if err := change(b); nil != err {
		return m.rejected(operation, err)
	}

	// MUTATION SAFE

	m.buckets.Put(trx, id, b)
	m.commit(trx, operation)
	return nil
}

// InviteStorageBucketOperator - offer a bucket to a worker
func (m *Module) InviteStorageBucketOperator(caller account.Account, id bucket.StorageBucketId, worker bucket.WorkerId) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateOperator(caller, id, "InviteStorageBucketOperator", func(b *bucket.StorageBucket) error {
		if err := m.authority.EnsureWorkerExists(worker); nil != err {
			return err
		}
		return b.Invite(worker)
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketOperatorInvited{
		StorageBucketId: id,
		WorkerId:        worker,
	})
	return nil
}

// CancelStorageBucketOperatorInvite - withdraw a pending invitation
func (m *Module) CancelStorageBucketOperatorInvite(caller account.Account, id bucket.StorageBucketId) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateOperator(caller, id, "CancelStorageBucketOperatorInvite", func(b *bucket.StorageBucket) error {
		return b.CancelInvite()
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketInvitationCancelled{StorageBucketId: id})
	return nil
}

// RemoveStorageBucketOperator - detach the accepted operator
func (m *Module) RemoveStorageBucketOperator(caller account.Account, id bucket.StorageBucketId) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateOperator(caller, id, "RemoveStorageBucketOperator", func(b *bucket.StorageBucket) error {
		return b.RemoveOperator()
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketOperatorRemoved{StorageBucketId: id})
	return nil
}

// write one setting
func (m *Module) updateSetting(caller account.Account, operation string, write func(storage.Transaction) error) error {
	if err := m.ensureLeader(caller); nil != err {
		return err
	}

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := write(trx); nil != err {
		return m.rejected(operation, err)
	}
	m.commit(trx, operation)
	return nil
}

// UpdateUploadingBlockedStatus - stop or resume all uploads
func (m *Module) UpdateUploadingBlockedStatus(caller account.Account, blocked bool) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateSetting(caller, "UpdateUploadingBlockedStatus", func(trx storage.Transaction) error {
		value := uint64(0)
		if blocked {
			value = 1
		}
		m.putSetting(trx, uploadingBlockedKey, value)
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(UploadingBlockStatusUpdated{Blocked: blocked})
	return nil
}

// UpdateDataSizeFee - set the per megabyte upload fee
func (m *Module) UpdateDataSizeFee(caller account.Account, fee currency.Balance) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateSetting(caller, "UpdateDataSizeFee", func(trx storage.Transaction) error {
		m.putSetting(trx, dataObjectPerMegabyteFeeKey, fee.Uint64())
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(DataObjectPerMegabyteFeeUpdated{Fee: fee})
	return nil
}

// UpdateStorageBucketsPerBagLimit - maximum buckets storing one bag
func (m *Module) UpdateStorageBucketsPerBagLimit(caller account.Account, limit uint64) error {
	m.Lock()
	defer m.Unlock()

	constraint := m.parameters.StorageBucketsPerBagValueConstraint
	err := m.updateSetting(caller, "UpdateStorageBucketsPerBagLimit", func(trx storage.Transaction) error {
		if limit < constraint.Min {
			return fault.StorageBucketsPerBagLimitTooLow
		}
		if limit > constraint.Max() {
			return fault.StorageBucketsPerBagLimitTooHigh
		}
		m.putSetting(trx, storageBucketsPerBagLimitKey, limit)
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketsPerBagLimitUpdated{Limit: limit})
	return nil
}

// UpdateStorageBucketsVoucherMaxLimits - ceilings for bucket vouchers
func (m *Module) UpdateStorageBucketsVoucherMaxLimits(caller account.Account, sizeLimit uint64, objectsLimit uint64) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateSetting(caller, "UpdateStorageBucketsVoucherMaxLimits", func(trx storage.Transaction) error {
		m.putSetting(trx, voucherMaxObjectsSizeLimitKey, sizeLimit)
		m.putSetting(trx, voucherMaxObjectsNumberLimitKey, objectsLimit)
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(StorageBucketsVoucherMaxLimitsUpdated{
		SizeLimit:    sizeLimit,
		ObjectsLimit: objectsLimit,
	})
	return nil
}

// UpdateNumberOfStorageBucketsInDynamicBagCreationPolicy - buckets
// picked for new bags of one type
func (m *Module) UpdateNumberOfStorageBucketsInDynamicBagCreationPolicy(caller account.Account, t bag.DynamicBagType, number uint64) error {
	m.Lock()
	defer m.Unlock()

	err := m.updateSetting(caller, "UpdateNumberOfStorageBucketsInDynamicBagCreationPolicy", func(trx storage.Transaction) error {
		m.putCreationPolicy(trx, t, DynamicBagCreationPolicy{NumberOfStorageBuckets: number})
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated{
		DynamicBagType:         t,
		NumberOfStorageBuckets: number,
	})
	return nil
}

// UpdateBlacklist - remove then add content ids
func (m *Module) UpdateBlacklist(caller account.Account, remove [][]byte, add [][]byte) error {
	m.Lock()
	defer m.Unlock()

	pool := m.store.Pool.Blacklist
	err := m.updateSetting(caller, "UpdateBlacklist", func(trx storage.Transaction) error {
		removed := make(map[string]struct{})
		for _, cid := range remove {
			if trx.Has(pool, cid) {
				removed[string(cid)] = struct{}{}
			}
		}
		added := make(map[string]struct{})
		for _, cid := range add {
			if 0 == len(cid) {
				return fault.EmptyContentId
			}
			_, wasRemoved := removed[string(cid)]
			if !trx.Has(pool, cid) || wasRemoved {
				added[string(cid)] = struct{}{}
			}
		}

		size := m.currentBlacklistSize(trx) - uint64(len(removed)) + uint64(len(added))
		if size > m.parameters.BlacklistSizeLimit {
			return fault.BlacklistSizeLimitExceeded
		}

		// MUTATION SAFE

		for cid := range removed {
			trx.Delete(pool, []byte(cid))
		}
		for cid := range added {
			trx.Put(pool, []byte(cid), []byte{})
		}
		m.putSetting(trx, currentBlacklistSizeKey, size)
		return nil
	})
	if nil != err {
		return err
	}

	m.deposit(BlacklistUpdated{
		Removed: remove,
		Added:   add,
	})
	return nil
}
