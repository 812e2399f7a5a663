// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage

import (
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
)

// ValueConstraint - allowed range [Min, Min+MaxMinDiff]
type ValueConstraint struct {
	Min        uint64 `gluamapper:"min" json:"min"`
	MaxMinDiff uint64 `gluamapper:"max_min_diff" json:"maxMinDiff"`
}

// Max - upper bound of the range
func (c ValueConstraint) Max() uint64 {
	max := c.Min + c.MaxMinDiff
	if max < c.Min {
		return ^uint64(0)
	}
	return max
}

// Parameters - fixed module constants and the initial values of the
// settings that the leader can change later
type Parameters struct {
	ModuleId string `gluamapper:"module_id" json:"moduleId"`

	MaxStorageBucketNumber                         uint64           `gluamapper:"max_storage_bucket_number" json:"maxStorageBucketNumber"`
	MaxNumberOfDataObjectsPerBag                   uint64           `gluamapper:"max_number_of_data_objects_per_bag" json:"maxNumberOfDataObjectsPerBag"`
	MaxDataObjectSize                              uint64           `gluamapper:"max_data_object_size" json:"maxDataObjectSize"`
	DataObjectDeletionPrize                        currency.Balance `gluamapper:"data_object_deletion_prize" json:"dataObjectDeletionPrize"`
	BlacklistSizeLimit                             uint64           `gluamapper:"blacklist_size_limit" json:"blacklistSizeLimit"`
	MaxRandomIterationNumber                       uint64           `gluamapper:"max_random_iteration_number" json:"maxRandomIterationNumber"`
	StorageBucketsPerBagValueConstraint            ValueConstraint  `gluamapper:"storage_buckets_per_bag_value_constraint" json:"storageBucketsPerBagValueConstraint"`
	DefaultMemberDynamicBagNumberOfStorageBuckets  uint64           `gluamapper:"default_member_dynamic_bag_number_of_storage_buckets" json:"defaultMemberDynamicBagNumberOfStorageBuckets"`
	DefaultChannelDynamicBagNumberOfStorageBuckets uint64           `gluamapper:"default_channel_dynamic_bag_number_of_storage_buckets" json:"defaultChannelDynamicBagNumberOfStorageBuckets"`

	// initial settings
	StorageBucketsPerBagLimit    uint64           `gluamapper:"storage_buckets_per_bag_limit" json:"storageBucketsPerBagLimit"`
	VoucherMaxObjectsSizeLimit   uint64           `gluamapper:"voucher_max_objects_size_limit" json:"voucherMaxObjectsSizeLimit"`
	VoucherMaxObjectsNumberLimit uint64           `gluamapper:"voucher_max_objects_number_limit" json:"voucherMaxObjectsNumberLimit"`
	DataObjectPerMegabyteFee     currency.Balance `gluamapper:"data_object_per_megabyte_fee" json:"dataObjectPerMegabyteFee"`
}

// DefaultParameters - values used when nothing is configured
func DefaultParameters() Parameters {
	return Parameters{
		ModuleId:                     "mstorage",
		MaxStorageBucketNumber:       20,
		MaxNumberOfDataObjectsPerBag: 1000,
		MaxDataObjectSize:            1 << 30,
		DataObjectDeletionPrize:      10,
		BlacklistSizeLimit:           1000,
		MaxRandomIterationNumber:     30,
		StorageBucketsPerBagValueConstraint: ValueConstraint{
			Min:        3,
			MaxMinDiff: 10,
		},
		DefaultMemberDynamicBagNumberOfStorageBuckets:  5,
		DefaultChannelDynamicBagNumberOfStorageBuckets: 5,

		StorageBucketsPerBagLimit:    7,
		VoucherMaxObjectsSizeLimit:   1 << 40,
		VoucherMaxObjectsNumberLimit: 1000000,
		DataObjectPerMegabyteFee:     0,
	}
}

// Validate - reject inconsistent parameters
func (p Parameters) Validate() error {
	if "" == p.ModuleId {
		return fault.MissingParameters
	}
	if 0 == p.MaxNumberOfDataObjectsPerBag || 0 == p.MaxDataObjectSize {
		return fault.MissingParameters
	}
	limit := p.StorageBucketsPerBagLimit
	if limit < p.StorageBucketsPerBagValueConstraint.Min {
		return fault.StorageBucketsPerBagLimitTooLow
	}
	if limit > p.StorageBucketsPerBagValueConstraint.Max() {
		return fault.StorageBucketsPerBagLimitTooHigh
	}
	return nil
}
