// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bag

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/storage"
	"github.com/bitmark-inc/bagstore/util"
)

// keys in the parameters pool
var nextObjectIdKey = []byte("next-data-object-id")

// Manager - bags held in the state database
//
// objects of a bag are read from committed data, so GetBag and the
// aggregates must be used before the first write of a transaction;
// point reads (headers, single objects) see pending writes
type Manager struct {
	pools *storage.Pools
}

// NewManager - manager over the pools of a state store
func NewManager(pools *storage.Pools) *Manager {
	return &Manager{
		pools: pools,
	}
}

func (m *Manager) headerPool(id Id) *storage.PoolHandle {
	if id.IsDynamic() {
		return m.pools.DynamicBags
	}
	return m.pools.StaticBags
}

func objectKey(id Id, objectId DataObjectId) []byte {
	return append(id.Key(), util.Uint64ToKey(uint64(objectId))...)
}

// static bags always exist, dynamic bags only once created
func (m *Manager) getHeader(reader storage.Reader, id Id) (*Bag, error) {
	record := reader.Get(m.headerPool(id), id.Key())
	if nil == record {
		if id.IsDynamic() {
			return nil, fault.DynamicBagDoesntExist
		}
		return New(), nil
	}
	b, err := unpackHeader(record)
	logger.PanicIfError("bag.Manager.getHeader", err)
	return b, nil
}

func (m *Manager) putHeader(trx storage.Transaction, id Id, b *Bag) {
	trx.Put(m.headerPool(id), id.Key(), b.packHeader())
}

// GetBag - a bag with all of its objects
func (m *Manager) GetBag(reader storage.Reader, id Id) (*Bag, error) {
	b, err := m.getHeader(reader, id)
	if nil != err {
		return nil, err
	}

	cursor := m.pools.DataObjects.NewPrefixCursor(id.Key())
	err = cursor.Map(func(key []byte, value []byte) error {
		objectId, err := util.KeyToUint64(key[KeyLength:])
		if nil != err {
			return err
		}
		o, err := UnpackDataObject(value)
		if nil != err {
			return err
		}
		b.Objects[DataObjectId(objectId)] = o
		return nil
	})
	logger.PanicIfError("bag.Manager.GetBag", err)
	return b, nil
}

// EnsureBagExists - fails only for dynamic bags not yet created
func (m *Manager) EnsureBagExists(reader storage.Reader, id Id) error {
	_, err := m.getHeader(reader, id)
	return err
}

// DynamicBagExists - presence of a dynamic bag
func (m *Manager) DynamicBagExists(reader storage.Reader, d DynamicBagId) bool {
	return reader.Has(m.pools.DynamicBags, d.BagId().Key())
}

// CreateDynamicBag - store an empty bag
func (m *Manager) CreateDynamicBag(trx storage.Transaction, d DynamicBagId, storedBy bucket.IdSet) {
	b := New()
	b.StoredBy = storedBy.Clone()
	m.putHeader(trx, d.BagId(), b)
}

// DeleteDynamicBag - remove the bag and the given objects of it
func (m *Manager) DeleteDynamicBag(trx storage.Transaction, d DynamicBagId, objects Objects) {
	id := d.BagId()
	for objectId := range objects {
		trx.Delete(m.pools.DataObjects, objectKey(id, objectId))
	}
	trx.Delete(m.pools.DynamicBags, id.Key())
}

// AppendDataObjects - add freshly minted objects
func (m *Manager) AppendDataObjects(trx storage.Transaction, id Id, objects Objects) {
	for objectId, o := range objects {
		trx.Put(m.pools.DataObjects, objectKey(id, objectId), o.Pack())
	}
}

// DeleteDataObject - remove one object
func (m *Manager) DeleteDataObject(trx storage.Transaction, id Id, objectId DataObjectId) {
	trx.Delete(m.pools.DataObjects, objectKey(id, objectId))
}

// AcceptDataObject - mark one object as accepted
func (m *Manager) AcceptDataObject(trx storage.Transaction, id Id, objectId DataObjectId) error {
	o, err := m.EnsureDataObjectExistence(trx, id, objectId)
	if nil != err {
		return err
	}
	o.Accepted = true
	trx.Put(m.pools.DataObjects, objectKey(id, objectId), o.Pack())
	return nil
}

// MoveDataObjects - re-key objects from src to dest, payload unchanged
func (m *Manager) MoveDataObjects(trx storage.Transaction, src Id, dest Id, objects Objects) {
	for objectId, o := range objects {
		trx.Delete(m.pools.DataObjects, objectKey(src, objectId))
		trx.Put(m.pools.DataObjects, objectKey(dest, objectId), o.Pack())
	}
}

// AddStorageBuckets - add to the stored by set
func (m *Manager) AddStorageBuckets(trx storage.Transaction, id Id, ids bucket.IdSet) error {
	b, err := m.getHeader(trx, id)
	if nil != err {
		return err
	}
	for bucketId := range ids {
		b.StoredBy.Add(bucketId)
	}
	m.putHeader(trx, id, b)
	return nil
}

// RemoveStorageBuckets - remove from the stored by set
func (m *Manager) RemoveStorageBuckets(trx storage.Transaction, id Id, ids bucket.IdSet) error {
	b, err := m.getHeader(trx, id)
	if nil != err {
		return err
	}
	for bucketId := range ids {
		b.StoredBy.Remove(bucketId)
	}
	m.putHeader(trx, id, b)
	return nil
}

// SetStorageBuckets - replace the stored by set
func (m *Manager) SetStorageBuckets(trx storage.Transaction, id Id, ids bucket.IdSet) error {
	b, err := m.getHeader(trx, id)
	if nil != err {
		return err
	}
	b.StoredBy = ids.Clone()
	m.putHeader(trx, id, b)
	return nil
}

// SetDeletionPrize - replace the aggregate deletion prize
func (m *Manager) SetDeletionPrize(trx storage.Transaction, id Id, prize currency.Balance) error {
	b, err := m.getHeader(trx, id)
	if nil != err {
		return err
	}
	b.DeletionPrize = prize
	m.putHeader(trx, id, b)
	return nil
}

// EnsureDataObjectExistence - read one object
func (m *Manager) EnsureDataObjectExistence(reader storage.Reader, id Id, objectId DataObjectId) (DataObject, error) {
	record := reader.Get(m.pools.DataObjects, objectKey(id, objectId))
	if nil == record {
		return DataObject{}, fault.DataObjectDoesntExist
	}
	o, err := UnpackDataObject(record)
	logger.PanicIfError("bag.Manager.EnsureDataObjectExistence", err)
	return o, nil
}

// GetStorageBucketIds - buckets storing a bag
func (m *Manager) GetStorageBucketIds(reader storage.Reader, id Id) (bucket.IdSet, error) {
	b, err := m.getHeader(reader, id)
	if nil != err {
		return nil, err
	}
	return b.StoredBy, nil
}

// GetDataObjectsTotalSize - sum of object sizes
func (m *Manager) GetDataObjectsTotalSize(reader storage.Reader, id Id) (uint64, error) {
	b, err := m.GetBag(reader, id)
	if nil != err {
		return 0, err
	}
	return b.Objects.Delta().Size, nil
}

// GetDataObjectsNumber - count of objects
func (m *Manager) GetDataObjectsNumber(reader storage.Reader, id Id) (uint64, error) {
	b, err := m.GetBag(reader, id)
	if nil != err {
		return 0, err
	}
	return uint64(len(b.Objects)), nil
}

// NextDataObjectId - id the next uploaded object will get
func (m *Manager) NextDataObjectId(reader storage.Reader) DataObjectId {
	n, _ := reader.GetN(m.pools.Parameters, nextObjectIdKey)
	return DataObjectId(n)
}

// SetNextDataObjectId - advance the object id counter
func (m *Manager) SetNextDataObjectId(trx storage.Transaction, next DataObjectId) {
	trx.PutN(m.pools.Parameters, nextObjectIdKey, uint64(next))
}
