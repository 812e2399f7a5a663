// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package buckets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/rpc/ratelimit"
)

const (
	rateLimitBuckets = 200
	rateBurstBuckets = 100

	maximumListCount = 100
	maximumBucketIds = 200
)

// BucketManager - storage bucket operations of the storage module
type BucketManager interface {
	CreateStorageBucket(caller account.Account, inviteWorker *bucket.WorkerId, acceptingNewBags bool, sizeLimit uint64, objectsLimit uint64) (bucket.StorageBucketId, error)
	DeleteStorageBucket(caller account.Account, id bucket.StorageBucketId) error
	UpdateStorageBucketsForBag(caller account.Account, id bag.Id, add bucket.IdSet, remove bucket.IdSet) error
	InviteStorageBucketOperator(caller account.Account, id bucket.StorageBucketId, worker bucket.WorkerId) error
	CancelStorageBucketOperatorInvite(caller account.Account, id bucket.StorageBucketId) error
	RemoveStorageBucketOperator(caller account.Account, id bucket.StorageBucketId) error

	AcceptStorageBucketInvitation(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId) error
	SetStorageOperatorMetadata(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, metadata []byte) error
	SetStorageBucketVoucherLimits(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, sizeLimit uint64, objectsLimit uint64) error
	UpdateStorageBucketStatus(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, acceptingNewBags bool) error

	StorageBucket(id bucket.StorageBucketId) (*bucket.StorageBucket, error)
	StorageBuckets(start bucket.StorageBucketId, count int) ([]bucket.Entry, error)
}

// Buckets - type for RPC calls
type Buckets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	manager BucketManager
}

// New - buckets service
func New(log *logger.L, manager BucketManager) *Buckets {
	return &Buckets{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBuckets, rateBurstBuckets),
		manager: manager,
	}
}

// Reply - empty result of a state changing request
type Reply struct{}

// ---

// CreateArguments - a new bucket
type CreateArguments struct {
	Caller           account.Account  `json:"caller"`
	InviteWorker     *bucket.WorkerId `json:"inviteWorker"`
	AcceptingNewBags bool             `json:"acceptingNewBags"`
	SizeLimit        uint64           `json:"sizeLimit"`
	ObjectsLimit     uint64           `json:"objectsLimit"`
}

// CreateReply - id of the new bucket
type CreateReply struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// Create - leader creates a bucket
func (buckets *Buckets) Create(arguments *CreateArguments, reply *CreateReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}

	id, err := buckets.manager.CreateStorageBucket(arguments.Caller, arguments.InviteWorker, arguments.AcceptingNewBags, arguments.SizeLimit, arguments.ObjectsLimit)
	if nil != err {
		return err
	}
	reply.StorageBucketId = id
	return nil
}

// BucketArguments - a leader request on one bucket
type BucketArguments struct {
	Caller          account.Account        `json:"caller"`
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// Delete - leader removes an unused bucket
func (buckets *Buckets) Delete(arguments *BucketArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.DeleteStorageBucket(arguments.Caller, arguments.StorageBucketId)
}

// InviteArguments - worker to invite
type InviteArguments struct {
	Caller          account.Account        `json:"caller"`
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
}

// Invite - leader invites an operator
func (buckets *Buckets) Invite(arguments *InviteArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.InviteStorageBucketOperator(arguments.Caller, arguments.StorageBucketId, arguments.WorkerId)
}

// CancelInvite - leader withdraws a pending invitation
func (buckets *Buckets) CancelInvite(arguments *BucketArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.CancelStorageBucketOperatorInvite(arguments.Caller, arguments.StorageBucketId)
}

// RemoveOperator - leader clears the operator of a bucket
func (buckets *Buckets) RemoveOperator(arguments *BucketArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.RemoveStorageBucketOperator(arguments.Caller, arguments.StorageBucketId)
}

// UpdateForBagArguments - bucket changes for a bag
type UpdateForBagArguments struct {
	Caller account.Account `json:"caller"`
	BagId  bag.Id          `json:"bagId"`
	Add    bucket.IdSet    `json:"add"`
	Remove bucket.IdSet    `json:"remove"`
}

// UpdateForBag - leader changes the buckets storing a bag
func (buckets *Buckets) UpdateForBag(arguments *UpdateForBagArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if len(arguments.Add)+len(arguments.Remove) > maximumBucketIds {
		return fault.InvalidCount
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}

	add := arguments.Add
	if nil == add {
		add = bucket.IdSet{}
	}
	remove := arguments.Remove
	if nil == remove {
		remove = bucket.IdSet{}
	}
	return buckets.manager.UpdateStorageBucketsForBag(arguments.Caller, arguments.BagId, add, remove)
}

// ---

// OperatorArguments - an operator request on one bucket
type OperatorArguments struct {
	Caller          account.Account        `json:"caller"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// AcceptInvitation - invited worker becomes the operator
func (buckets *Buckets) AcceptInvitation(arguments *OperatorArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.AcceptStorageBucketInvitation(arguments.Caller, arguments.WorkerId, arguments.StorageBucketId)
}

// MetadataArguments - operator metadata
type MetadataArguments struct {
	OperatorArguments
	Metadata []byte `json:"metadata"`
}

// SetMetadata - operator publishes metadata
func (buckets *Buckets) SetMetadata(arguments *MetadataArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.SetStorageOperatorMetadata(arguments.Caller, arguments.WorkerId, arguments.StorageBucketId, arguments.Metadata)
}

// VoucherLimitsArguments - new voucher limits
type VoucherLimitsArguments struct {
	OperatorArguments
	SizeLimit    uint64 `json:"sizeLimit"`
	ObjectsLimit uint64 `json:"objectsLimit"`
}

// SetVoucherLimits - operator changes the capacity of a bucket
func (buckets *Buckets) SetVoucherLimits(arguments *VoucherLimitsArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.SetStorageBucketVoucherLimits(arguments.Caller, arguments.WorkerId, arguments.StorageBucketId, arguments.SizeLimit, arguments.ObjectsLimit)
}

// StatusArguments - accepting new bags flag
type StatusArguments struct {
	OperatorArguments
	AcceptingNewBags bool `json:"acceptingNewBags"`
}

// UpdateStatus - operator opens or closes a bucket to new bags
func (buckets *Buckets) UpdateStatus(arguments *StatusArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}
	return buckets.manager.UpdateStorageBucketStatus(arguments.Caller, arguments.WorkerId, arguments.StorageBucketId, arguments.AcceptingNewBags)
}

// ---

// GetArguments - one bucket
type GetArguments struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
}

// GetReply - the bucket
type GetReply struct {
	Bucket *bucket.StorageBucket `json:"bucket"`
}

// Get - read one bucket
func (buckets *Buckets) Get(arguments *GetArguments, reply *GetReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(buckets.Limiter); nil != err {
		return err
	}

	b, err := buckets.manager.StorageBucket(arguments.StorageBucketId)
	if nil != err {
		return err
	}
	reply.Bucket = b
	return nil
}

// ListArguments - a page of buckets
type ListArguments struct {
	Start bucket.StorageBucketId `json:"start"`
	Count int                    `json:"count"`
}

// ListReply - buckets in id order and the start of the next page
type ListReply struct {
	Buckets []bucket.Entry         `json:"buckets"`
	Next    bucket.StorageBucketId `json:"next"`
}

// List - page through the buckets
func (buckets *Buckets) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(buckets.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	entries, err := buckets.manager.StorageBuckets(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Buckets = entries
	reply.Next = arguments.Start
	if n := len(entries); n > 0 {
		reply.Next = entries[n-1].Id + 1
	}
	return nil
}
