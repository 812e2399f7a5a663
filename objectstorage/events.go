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
	"github.com/bitmark-inc/bagstore/voucher"
)

// Event - one successful operation, exactly one is deposited per
// operation
type Event interface {
	Name() string
}

// StorageBucketCreated - create_storage_bucket
type StorageBucketCreated struct {
	StorageBucketId  bucket.StorageBucketId `json:"storageBucketId"`
	InviteWorker     *bucket.WorkerId       `json:"inviteWorker"`
	AcceptingNewBags bool                   `json:"acceptingNewBags"`
	SizeLimit        uint64                 `json:"sizeLimit"`
	ObjectsLimit     uint64                 `json:"objectsLimit"`
}

// StorageBucketDeleted - delete_storage_bucket
type StorageBucketDeleted struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// StorageBucketsUpdatedForBag - update_storage_buckets_for_bag
type StorageBucketsUpdatedForBag struct {
	BagId   bag.Id       `json:"bagId"`
	Added   bucket.IdSet `json:"added"`
	Removed bucket.IdSet `json:"removed"`
}

// StorageBucketOperatorInvited - invite_storage_bucket_operator
type StorageBucketOperatorInvited struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
}

// StorageBucketInvitationCancelled - cancel_storage_bucket_operator_invite
type StorageBucketInvitationCancelled struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// StorageBucketOperatorRemoved - remove_storage_bucket_operator
type StorageBucketOperatorRemoved struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// UploadingBlockStatusUpdated - update_uploading_blocked_status
type UploadingBlockStatusUpdated struct {
	Blocked bool `json:"blocked"`
}

// DataObjectPerMegabyteFeeUpdated - update_data_size_fee
type DataObjectPerMegabyteFeeUpdated struct {
	Fee currency.Balance `json:"fee"`
}

// StorageBucketsPerBagLimitUpdated - update_storage_buckets_per_bag_limit
type StorageBucketsPerBagLimitUpdated struct {
	Limit uint64 `json:"limit"`
}

// StorageBucketsVoucherMaxLimitsUpdated - update_storage_buckets_voucher_max_limits
type StorageBucketsVoucherMaxLimitsUpdated struct {
	SizeLimit    uint64 `json:"sizeLimit"`
	ObjectsLimit uint64 `json:"objectsLimit"`
}

// NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated - update_number_of_storage_buckets_in_dynamic_bag_creation_policy
type NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated struct {
	DynamicBagType         bag.DynamicBagType `json:"dynamicBagType"`
	NumberOfStorageBuckets uint64             `json:"numberOfStorageBuckets"`
}

// BlacklistUpdated - update_blacklist
type BlacklistUpdated struct {
	Removed [][]byte `json:"removed"`
	Added   [][]byte `json:"added"`
}

// StorageBucketInvitationAccepted - accept_storage_bucket_invitation
type StorageBucketInvitationAccepted struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
}

// StorageOperatorMetadataSet - set_storage_operator_metadata
type StorageOperatorMetadataSet struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
	Metadata        []byte                 `json:"metadata"`
}

// StorageBucketVoucherLimitsSet - set_storage_bucket_voucher_limits
type StorageBucketVoucherLimitsSet struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
	SizeLimit       uint64                 `json:"sizeLimit"`
	ObjectsLimit    uint64                 `json:"objectsLimit"`
}

// StorageBucketStatusUpdated - update_storage_bucket_status
type StorageBucketStatusUpdated struct {
	StorageBucketId  bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId         bucket.WorkerId        `json:"workerId"`
	AcceptingNewBags bool                   `json:"acceptingNewBags"`
}

// PendingDataObjectsAccepted - accept_pending_data_objects
type PendingDataObjectsAccepted struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
	BagId           bag.Id                 `json:"bagId"`
	DataObjectIds   []bag.DataObjectId     `json:"dataObjectIds"`
}

// DataObjectsUploaded - upload_data_objects
type DataObjectsUploaded struct {
	DataObjectIds []bag.DataObjectId                         `json:"dataObjectIds"`
	Parameters    UploadParameters                           `json:"parameters"`
	DeletionPrize currency.Balance                           `json:"deletionPrize"`
	Vouchers      map[bucket.StorageBucketId]voucher.Voucher `json:"vouchers"`
}

// DataObjectsMoved - move_data_objects
type DataObjectsMoved struct {
	SrcBagId      bag.Id             `json:"srcBagId"`
	DestBagId     bag.Id             `json:"destBagId"`
	DataObjectIds []bag.DataObjectId `json:"dataObjectIds"`
}

// DataObjectsDeleted - delete_data_objects
type DataObjectsDeleted struct {
	Payer         account.Account    `json:"payer"`
	BagId         bag.Id             `json:"bagId"`
	DataObjectIds []bag.DataObjectId `json:"dataObjectIds"`
}

// DynamicBagCreated - create_dynamic_bag
type DynamicBagCreated struct {
	DynamicBagId   bag.DynamicBagId `json:"dynamicBagId"`
	StorageBuckets bucket.IdSet     `json:"storageBuckets"`
}

// DynamicBagDeleted - delete_dynamic_bag
type DynamicBagDeleted struct {
	Payer        account.Account  `json:"payer"`
	DynamicBagId bag.DynamicBagId `json:"dynamicBagId"`
}

// Name - StorageBucketCreated
func (StorageBucketCreated) Name() string { return "StorageBucketCreated" }

// Name - StorageBucketDeleted
func (StorageBucketDeleted) Name() string { return "StorageBucketDeleted" }

// Name - StorageBucketsUpdatedForBag
func (StorageBucketsUpdatedForBag) Name() string { return "StorageBucketsUpdatedForBag" }

// Name - StorageBucketOperatorInvited
func (StorageBucketOperatorInvited) Name() string { return "StorageBucketOperatorInvited" }

// Name - StorageBucketInvitationCancelled
func (StorageBucketInvitationCancelled) Name() string { return "StorageBucketInvitationCancelled" }

// Name - StorageBucketOperatorRemoved
func (StorageBucketOperatorRemoved) Name() string { return "StorageBucketOperatorRemoved" }

// Name - UploadingBlockStatusUpdated
func (UploadingBlockStatusUpdated) Name() string { return "UploadingBlockStatusUpdated" }

// Name - DataObjectPerMegabyteFeeUpdated
func (DataObjectPerMegabyteFeeUpdated) Name() string { return "DataObjectPerMegabyteFeeUpdated" }

// Name - StorageBucketsPerBagLimitUpdated
func (StorageBucketsPerBagLimitUpdated) Name() string { return "StorageBucketsPerBagLimitUpdated" }

// Name - StorageBucketsVoucherMaxLimitsUpdated
func (StorageBucketsVoucherMaxLimitsUpdated) Name() string {
	return "StorageBucketsVoucherMaxLimitsUpdated"
}

// Name - NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated
func (NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated) Name() string {
	return "NumberOfStorageBucketsInDynamicBagCreationPolicyUpdated"
}

// Name - BlacklistUpdated
func (BlacklistUpdated) Name() string { return "BlacklistUpdated" }

// Name - StorageBucketInvitationAccepted
func (StorageBucketInvitationAccepted) Name() string { return "StorageBucketInvitationAccepted" }

// Name - StorageOperatorMetadataSet
func (StorageOperatorMetadataSet) Name() string { return "StorageOperatorMetadataSet" }

// Name - StorageBucketVoucherLimitsSet
func (StorageBucketVoucherLimitsSet) Name() string { return "StorageBucketVoucherLimitsSet" }

// Name - StorageBucketStatusUpdated
func (StorageBucketStatusUpdated) Name() string { return "StorageBucketStatusUpdated" }

// Name - PendingDataObjectsAccepted
func (PendingDataObjectsAccepted) Name() string { return "PendingDataObjectsAccepted" }

// Name - DataObjectsUploaded
func (DataObjectsUploaded) Name() string { return "DataObjectsUploaded" }

// Name - DataObjectsMoved
func (DataObjectsMoved) Name() string { return "DataObjectsMoved" }

// Name - DataObjectsDeleted
func (DataObjectsDeleted) Name() string { return "DataObjectsDeleted" }

// Name - DynamicBagCreated
func (DynamicBagCreated) Name() string { return "DynamicBagCreated" }

// Name - DynamicBagDeleted
func (DynamicBagDeleted) Name() string { return "DynamicBagDeleted" }
