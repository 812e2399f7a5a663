// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage

import (
	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/storage"
)

// read only views of committed state

// StorageBucket - one bucket
func (m *Module) StorageBucket(id bucket.StorageBucketId) (*bucket.StorageBucket, error) {
	m.Lock()
	defer m.Unlock()

	return m.buckets.Get(storage.Committed, id)
}

// StorageBuckets - up to count buckets from start in id order
func (m *Module) StorageBuckets(start bucket.StorageBucketId, count int) ([]bucket.Entry, error) {
	m.Lock()
	defer m.Unlock()

	return m.buckets.List(start, count)
}

// Bag - a bag with its objects
func (m *Module) Bag(id bag.Id) (*bag.Bag, error) {
	m.Lock()
	defer m.Unlock()

	return m.bags.GetBag(storage.Committed, id)
}

// DataObject - one object of a bag
func (m *Module) DataObject(id bag.Id, objectId bag.DataObjectId) (bag.DataObject, error) {
	m.Lock()
	defer m.Unlock()

	return m.bags.EnsureDataObjectExistence(storage.Committed, id, objectId)
}

// Parameters - the configured constants
func (m *Module) Parameters() Parameters {
	return m.parameters
}

// Settings - current values of the leader controlled settings
func (m *Module) Settings() Settings {
	m.Lock()
	defer m.Unlock()

	return m.readSettings(storage.Committed)
}

// IsBlacklisted - content id is rejected on upload
func (m *Module) IsBlacklisted(cid []byte) bool {
	m.Lock()
	defer m.Unlock()

	return storage.Committed.Has(m.store.Pool.Blacklist, cid)
}

// DynamicBagCreationPolicy - policy for new bags of one type
func (m *Module) DynamicBagCreationPolicy(t bag.DynamicBagType) DynamicBagCreationPolicy {
	m.Lock()
	defer m.Unlock()

	return m.creationPolicy(storage.Committed, t)
}

// ModuleAccount - sovereign account of the treasury
func (m *Module) ModuleAccount() account.Account {
	return m.treasury.ModuleAccountId()
}

// TreasuryBalance - funds held for deletion prizes
func (m *Module) TreasuryBalance() currency.Balance {
	return m.treasury.UsableBalance()
}
