// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bags

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/ratelimit"
)

const (
	rateLimitBags = 200
	rateBurstBags = 100

	maximumObjectIds = 1000
)

// Storage - bag and object operations of the storage module
type Storage interface {
	objectstorage.DataObjectStorage

	AcceptPendingDataObjects(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId, bagId bag.Id, ids []bag.DataObjectId) error
	Bag(id bag.Id) (*bag.Bag, error)
	DataObject(id bag.Id, objectId bag.DataObjectId) (bag.DataObject, error)
}

// Bags - type for RPC calls
type Bags struct {
	Log     *logger.L
	Limiter *rate.Limiter
	storage Storage
}

// New - bags service
func New(log *logger.L, storage Storage) *Bags {
	return &Bags{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBags, rateBurstBags),
		storage: storage,
	}
}

// Reply - result of a state changing request
type Reply struct {
	DryRun bool `json:"dryRun"`
}

// ---

// UploadArguments - new objects for a bag
type UploadArguments struct {
	DryRun     bool                           `json:"dryRun"`
	Parameters objectstorage.UploadParameters `json:"parameters"`
}

// Upload - add objects to a bag, DryRun only validates
func (bags *Bags) Upload(arguments *UploadArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitItems(bags.Limiter, len(arguments.Parameters.ObjectCreationList), maximumObjectIds); nil != err {
		return err
	}

	bags.Log.Infof("upload: %s  objects: %d  dry run: %t", arguments.Parameters.BagId, len(arguments.Parameters.ObjectCreationList), arguments.DryRun)

	reply.DryRun = arguments.DryRun
	if arguments.DryRun {
		return bags.storage.CanUploadDataObjects(arguments.Parameters)
	}
	return bags.storage.UploadDataObjects(arguments.Parameters)
}

// ---

// MoveArguments - objects to move between bags
type MoveArguments struct {
	DryRun        bool               `json:"dryRun"`
	Src           bag.Id             `json:"src"`
	Dest          bag.Id             `json:"dest"`
	DataObjectIds []bag.DataObjectId `json:"dataObjectIds"`
}

// Move - transfer objects between bags
func (bags *Bags) Move(arguments *MoveArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitItems(bags.Limiter, len(arguments.DataObjectIds), maximumObjectIds); nil != err {
		return err
	}

	reply.DryRun = arguments.DryRun
	if arguments.DryRun {
		return bags.storage.CanMoveDataObjects(arguments.Src, arguments.Dest, arguments.DataObjectIds)
	}
	return bags.storage.MoveDataObjects(arguments.Src, arguments.Dest, arguments.DataObjectIds)
}

// ---

// DeleteObjectsArguments - objects to remove
type DeleteObjectsArguments struct {
	DryRun        bool               `json:"dryRun"`
	Payer         account.Account    `json:"payer"`
	BagId         bag.Id             `json:"bagId"`
	DataObjectIds []bag.DataObjectId `json:"dataObjectIds"`
}

// DeleteObjects - remove objects, the payer receives their deletion
// prizes
func (bags *Bags) DeleteObjects(arguments *DeleteObjectsArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitItems(bags.Limiter, len(arguments.DataObjectIds), maximumObjectIds); nil != err {
		return err
	}

	reply.DryRun = arguments.DryRun
	if arguments.DryRun {
		return bags.storage.CanDeleteDataObjects(arguments.BagId, arguments.DataObjectIds)
	}
	return bags.storage.DeleteDataObjects(arguments.Payer, arguments.BagId, arguments.DataObjectIds)
}

// ---

// DynamicArguments - create or delete a dynamic bag
type DynamicArguments struct {
	DryRun       bool             `json:"dryRun"`
	Payer        account.Account  `json:"payer"`
	DynamicBagId bag.DynamicBagId `json:"dynamicBagId"`
}

// CreateDynamic - new member or channel bag
func (bags *Bags) CreateDynamic(arguments *DynamicArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(bags.Limiter); nil != err {
		return err
	}

	reply.DryRun = arguments.DryRun
	if arguments.DryRun {
		return bags.storage.CanCreateDynamicBag(arguments.DynamicBagId)
	}
	return bags.storage.CreateDynamicBag(arguments.DynamicBagId)
}

// DynamicWithObjectsArguments - a dynamic bag and its first objects
type DynamicWithObjectsArguments struct {
	DryRun       bool                           `json:"dryRun"`
	DynamicBagId bag.DynamicBagId               `json:"dynamicBagId"`
	Parameters   objectstorage.UploadParameters `json:"parameters"`
}

// CreateDynamicWithObjects - new member or channel bag holding objects
func (bags *Bags) CreateDynamicWithObjects(arguments *DynamicWithObjectsArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitItems(bags.Limiter, len(arguments.Parameters.ObjectCreationList), maximumObjectIds); nil != err {
		return err
	}

	bags.Log.Infof("create: %s  objects: %d  dry run: %t", arguments.Parameters.BagId, len(arguments.Parameters.ObjectCreationList), arguments.DryRun)

	reply.DryRun = arguments.DryRun
	if arguments.DryRun {
		return bags.storage.CanCreateDynamicBagWithObjects(arguments.DynamicBagId, arguments.Parameters)
	}
	return bags.storage.CreateDynamicBagWithObjects(arguments.DynamicBagId, arguments.Parameters)
}

// DeleteDynamic - remove a member or channel bag with its objects
func (bags *Bags) DeleteDynamic(arguments *DynamicArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(bags.Limiter); nil != err {
		return err
	}

	reply.DryRun = arguments.DryRun
	if arguments.DryRun {
		return bags.storage.CanDeleteDynamicBag(arguments.DynamicBagId)
	}
	return bags.storage.DeleteDynamicBag(arguments.Payer, arguments.DynamicBagId)
}

// ---

// AcceptArguments - objects confirmed by a storage provider
type AcceptArguments struct {
	Caller          account.Account        `json:"caller"`
	WorkerId        bucket.WorkerId        `json:"workerId"`
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	BagId           bag.Id                 `json:"bagId"`
	DataObjectIds   []bag.DataObjectId     `json:"dataObjectIds"`
}

// AcceptPending - mark uploaded objects as accepted
func (bags *Bags) AcceptPending(arguments *AcceptArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitItems(bags.Limiter, len(arguments.DataObjectIds), maximumObjectIds); nil != err {
		return err
	}
	return bags.storage.AcceptPendingDataObjects(arguments.Caller, arguments.WorkerId, arguments.StorageBucketId, arguments.BagId, arguments.DataObjectIds)
}

// ---

// GetArguments - a bag
type GetArguments struct {
	BagId bag.Id `json:"bagId"`
}

// GetReply - the bag and its objects
type GetReply struct {
	Bag *bag.Bag `json:"bag"`
}

// Get - read a bag
func (bags *Bags) Get(arguments *GetArguments, reply *GetReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(bags.Limiter); nil != err {
		return err
	}

	b, err := bags.storage.Bag(arguments.BagId)
	if nil != err {
		return err
	}
	reply.Bag = b
	return nil
}

// ObjectArguments - one object of a bag
type ObjectArguments struct {
	BagId        bag.Id           `json:"bagId"`
	DataObjectId bag.DataObjectId `json:"dataObjectId"`
}

// ObjectReply - the object
type ObjectReply struct {
	DataObject bag.DataObject `json:"dataObject"`
}

// Object - read one object
func (bags *Bags) Object(arguments *ObjectArguments, reply *ObjectReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(bags.Limiter); nil != err {
		return err
	}

	o, err := bags.storage.DataObject(arguments.BagId, arguments.DataObjectId)
	if nil != err {
		return err
	}
	reply.DataObject = o
	return nil
}
