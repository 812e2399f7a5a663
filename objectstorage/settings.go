// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage

import (
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/storage"
)

// keys in the parameters pool
var (
	uploadingBlockedKey             = []byte("uploading-blocked")
	dataObjectPerMegabyteFeeKey     = []byte("data-object-per-megabyte-fee")
	storageBucketsPerBagLimitKey    = []byte("storage-buckets-per-bag-limit")
	voucherMaxObjectsSizeLimitKey   = []byte("voucher-max-objects-size-limit")
	voucherMaxObjectsNumberLimitKey = []byte("voucher-max-objects-number-limit")
	currentBlacklistSizeKey         = []byte("current-blacklist-size")
)

// Settings - the current values of everything the leader can change
// plus the module counters
type Settings struct {
	UploadingBlocked             bool             `json:"uploadingBlocked"`
	DataObjectPerMegabyteFee     currency.Balance `json:"dataObjectPerMegabyteFee"`
	StorageBucketsPerBagLimit    uint64           `json:"storageBucketsPerBagLimit"`
	VoucherMaxObjectsSizeLimit   uint64           `json:"voucherMaxObjectsSizeLimit"`
	VoucherMaxObjectsNumberLimit uint64           `json:"voucherMaxObjectsNumberLimit"`
	CurrentBlacklistSize         uint64           `json:"currentBlacklistSize"`
	NextStorageBucketId          uint64           `json:"nextStorageBucketId"`
	NextDataObjectId             uint64           `json:"nextDataObjectId"`
	StorageBucketsNumber         uint64           `json:"storageBucketsNumber"`
}

// read a setting, falling back to its configured initial value
func getSetting(reader storage.Reader, pool *storage.PoolHandle, key []byte, initial uint64) uint64 {
	n, found := reader.GetN(pool, key)
	if !found {
		return initial
	}
	return n
}

func (m *Module) uploadingBlocked(reader storage.Reader) bool {
	return 0 != getSetting(reader, m.store.Pool.Parameters, uploadingBlockedKey, 0)
}

func (m *Module) dataObjectPerMegabyteFee(reader storage.Reader) currency.Balance {
	return currency.Balance(getSetting(reader, m.store.Pool.Parameters, dataObjectPerMegabyteFeeKey, m.parameters.DataObjectPerMegabyteFee.Uint64()))
}

func (m *Module) storageBucketsPerBagLimit(reader storage.Reader) uint64 {
	return getSetting(reader, m.store.Pool.Parameters, storageBucketsPerBagLimitKey, m.parameters.StorageBucketsPerBagLimit)
}

func (m *Module) voucherMaxObjectsSizeLimit(reader storage.Reader) uint64 {
	return getSetting(reader, m.store.Pool.Parameters, voucherMaxObjectsSizeLimitKey, m.parameters.VoucherMaxObjectsSizeLimit)
}

func (m *Module) voucherMaxObjectsNumberLimit(reader storage.Reader) uint64 {
	return getSetting(reader, m.store.Pool.Parameters, voucherMaxObjectsNumberLimitKey, m.parameters.VoucherMaxObjectsNumberLimit)
}

func (m *Module) currentBlacklistSize(reader storage.Reader) uint64 {
	return getSetting(reader, m.store.Pool.Parameters, currentBlacklistSizeKey, 0)
}

func (m *Module) putSetting(trx storage.Transaction, key []byte, value uint64) {
	trx.PutN(m.store.Pool.Parameters, key, value)
}

func (m *Module) readSettings(reader storage.Reader) Settings {
	return Settings{
		UploadingBlocked:             m.uploadingBlocked(reader),
		DataObjectPerMegabyteFee:     m.dataObjectPerMegabyteFee(reader),
		StorageBucketsPerBagLimit:    m.storageBucketsPerBagLimit(reader),
		VoucherMaxObjectsSizeLimit:   m.voucherMaxObjectsSizeLimit(reader),
		VoucherMaxObjectsNumberLimit: m.voucherMaxObjectsNumberLimit(reader),
		CurrentBlacklistSize:         m.currentBlacklistSize(reader),
		NextStorageBucketId:          uint64(m.buckets.NextId(reader)),
		NextDataObjectId:             uint64(m.bags.NextDataObjectId(reader)),
		StorageBucketsNumber:         m.buckets.Number(reader),
	}
}

// DynamicBagCreationPolicy - how many buckets a new dynamic bag gets
type DynamicBagCreationPolicy struct {
	NumberOfStorageBuckets uint64 `json:"numberOfStorageBuckets"`
}

func (m *Module) creationPolicy(reader storage.Reader, t bag.DynamicBagType) DynamicBagCreationPolicy {
	initial := m.parameters.DefaultMemberDynamicBagNumberOfStorageBuckets
	if bag.ChannelType == t {
		initial = m.parameters.DefaultChannelDynamicBagNumberOfStorageBuckets
	}
	return DynamicBagCreationPolicy{
		NumberOfStorageBuckets: getSetting(reader, m.store.Pool.CreationPolicies, policyKey(t), initial),
	}
}

func (m *Module) putCreationPolicy(trx storage.Transaction, t bag.DynamicBagType, policy DynamicBagCreationPolicy) {
	trx.PutN(m.store.Pool.CreationPolicies, policyKey(t), policy.NumberOfStorageBuckets)
}

func policyKey(t bag.DynamicBagType) []byte {
	return []byte{byte(t)}
}
