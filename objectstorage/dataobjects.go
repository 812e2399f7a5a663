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
	"github.com/bitmark-inc/bagstore/voucher"
)

// DataObjectStorage - object and dynamic bag operations used by other
// modules
//
// each Can* method reports the error its operation would return in
// the current state without changing anything
type DataObjectStorage interface {
	CanUploadDataObjects(params UploadParameters) error
	UploadDataObjects(params UploadParameters) error

	CanMoveDataObjects(src bag.Id, dest bag.Id, ids []bag.DataObjectId) error
	MoveDataObjects(src bag.Id, dest bag.Id, ids []bag.DataObjectId) error

	CanDeleteDataObjects(id bag.Id, ids []bag.DataObjectId) error
	DeleteDataObjects(payer account.Account, id bag.Id, ids []bag.DataObjectId) error

	CanCreateDynamicBag(d bag.DynamicBagId) error
	CreateDynamicBag(d bag.DynamicBagId) error

	CanCreateDynamicBagWithObjects(d bag.DynamicBagId, params UploadParameters) error
	CreateDynamicBagWithObjects(d bag.DynamicBagId, params UploadParameters) error

	CanDeleteDynamicBag(d bag.DynamicBagId) error
	DeleteDynamicBag(payer account.Account, d bag.DynamicBagId) error
}

// DataObjectCreationParameters - one object of an upload
type DataObjectCreationParameters struct {
	Size          uint64 `json:"size"`
	IpfsContentId []byte `json:"ipfsContentId"`
}

// UploadParameters - a batch of new objects for one bag
type UploadParameters struct {
	BagId                        bag.Id                         `json:"bagId"`
	ObjectCreationList           []DataObjectCreationParameters `json:"objectCreationList"`
	DeletionPrizeSourceAccountId account.Account                `json:"deletionPrizeSourceAccountId"`
	ExpectedDataSizeFee          currency.Balance               `json:"expectedDataSizeFee"`
}

const megabyte = 1024 * 1024

// DataSizeFee - per megabyte fee over the total size, rounded up
func DataSizeFee(totalSize uint64, perMegabyte currency.Balance) currency.Balance {
	megabytes := totalSize / megabyte
	if 0 != totalSize%megabyte {
		megabytes += 1
	}
	return perMegabyte.SaturatingMul(megabytes)
}

// upload

type uploadPlan struct {
	bagId         bag.Id
	header        *bag.Bag
	objects       bag.Objects
	ids           []bag.DataObjectId
	nextId        bag.DataObjectId
	deletionPrize currency.Balance
	fee           currency.Balance
	buckets       *bucketPlan
}

// checks that do not depend on the bag
func (m *Module) checkUploadParameters(reader storage.Reader, params UploadParameters) error {
	if m.uploadingBlocked(reader) {
		return fault.UploadingBlocked
	}
	if 0 == len(params.ObjectCreationList) {
		return fault.NoObjectsOnUpload
	}
	source := params.DeletionPrizeSourceAccountId
	if source.IsZero() || source == m.treasury.ModuleAccountId() {
		return fault.InvalidDeletionPrizeSourceAccount
	}
	if params.ExpectedDataSizeFee != m.dataObjectPerMegabyteFee(reader) {
		return fault.DataSizeFeeChanged
	}
	return nil
}

func (m *Module) validateUpload(reader storage.Reader, params UploadParameters) (*uploadPlan, error) {
	if err := m.checkUploadParameters(reader, params); nil != err {
		return nil, err
	}
	b, err := m.bags.GetBag(reader, params.BagId)
	if nil != err {
		return nil, err
	}
	plan, err := m.planObjects(reader, params, b)
	if nil != err {
		return nil, err
	}
	err = plan.buckets.increase(b.StoredBy, plan.objects.Delta())
	if nil != err {
		return nil, err
	}
	return plan, nil
}

// mint the new objects of params into bag b and check the uploader
// can pay for them, bucket vouchers are left to the caller
func (m *Module) planObjects(reader storage.Reader, params UploadParameters, b *bag.Bag) (*uploadPlan, error) {
	count := uint64(len(b.Objects)) + uint64(len(params.ObjectCreationList))
	if count > m.parameters.MaxNumberOfDataObjectsPerBag {
		return nil, fault.DataObjectsPerBagLimitExceeded
	}

	plan := &uploadPlan{
		bagId:   params.BagId,
		header:  b,
		objects: make(bag.Objects, len(params.ObjectCreationList)),
		ids:     make([]bag.DataObjectId, 0, len(params.ObjectCreationList)),
		buckets: m.newBucketPlan(reader),
	}

	next := m.bags.NextDataObjectId(reader)
	totalSize := uint64(0)
	for _, o := range params.ObjectCreationList {
		if 0 == o.Size {
			return nil, fault.ZeroObjectSize
		}
		if o.Size > m.parameters.MaxDataObjectSize {
			return nil, fault.MaxDataObjectSizeExceeded
		}
		if 0 == len(o.IpfsContentId) {
			return nil, fault.EmptyContentId
		}
		if reader.Has(m.store.Pool.Blacklist, o.IpfsContentId) {
			return nil, fault.DataObjectBlacklisted
		}
		plan.objects[next] = bag.DataObject{
			Accepted:      false,
			DeletionPrize: m.parameters.DataObjectDeletionPrize,
			Size:          o.Size,
			IpfsContentId: o.IpfsContentId,
		}
		plan.ids = append(plan.ids, next)
		next += 1
		totalSize += o.Size
		if totalSize < o.Size {
			totalSize = ^uint64(0)
		}
	}
	plan.nextId = next

	plan.deletionPrize = plan.objects.DeletionPrize()
	plan.fee = DataSizeFee(totalSize, m.dataObjectPerMegabyteFee(reader))
	source := params.DeletionPrizeSourceAccountId
	if m.currency.UsableBalance(source) < plan.deletionPrize.SaturatingAdd(plan.fee) {
		return nil, fault.InsufficientBalance
	}
	return plan, nil
}

// CanUploadDataObjects - dry run of UploadDataObjects
func (m *Module) CanUploadDataObjects(params UploadParameters) error {
	m.Lock()
	defer m.Unlock()

	_, err := m.validateUpload(storage.Committed, params)
	return err
}

// UploadDataObjects - add new objects to a bag
//
// the uploader pays the deletion prizes into the treasury and the
// data size fee is burned
func (m *Module) UploadDataObjects(params UploadParameters) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	plan, err := m.validateUpload(trx, params)
	if nil != err {
		return m.rejected("upload", err)
	}

	err = m.payForUpload(params, plan)
	if nil != err {
		return m.rejected("upload", err)
	}

	// MUTATION SAFE

	m.writeUpload(trx, plan)
	m.commit(trx, "UploadDataObjects")

	m.deposit(plan.uploaded(params))
	return nil
}

// deletion prizes go to the treasury and the fee is burned
func (m *Module) payForUpload(params UploadParameters, plan *uploadPlan) error {
	source := params.DeletionPrizeSourceAccountId
	err := m.treasury.Deposit(source, plan.deletionPrize)
	if nil != err {
		return err
	}
	if 0 != plan.fee {
		unpaid := m.currency.Slash(source, plan.fee)
		if 0 != unpaid {
			m.log.Warnf("upload: fee: %s  unpaid: %s  account: %s", plan.fee, unpaid, source)
		}
	}
	return nil
}

// the bag header must already be in trx
func (m *Module) writeUpload(trx storage.Transaction, plan *uploadPlan) {
	m.bags.AppendDataObjects(trx, plan.bagId, plan.objects)
	err := m.bags.SetDeletionPrize(trx, plan.bagId, plan.header.DeletionPrize.SaturatingAdd(plan.deletionPrize))
	logger.PanicIfError("objectstorage.writeUpload", err)
	m.bags.SetNextDataObjectId(trx, plan.nextId)
	plan.buckets.apply(trx)
}

func (plan *uploadPlan) uploaded(params UploadParameters) DataObjectsUploaded {
	return DataObjectsUploaded{
		DataObjectIds: plan.ids,
		Parameters:    params,
		DeletionPrize: plan.deletionPrize,
		Vouchers:      plan.buckets.vouchers(),
	}
}

// move

type movePlan struct {
	src     *bag.Bag
	dest    *bag.Bag
	ids     []bag.DataObjectId
	moved   bag.Objects
	buckets *bucketPlan
}

func (m *Module) validateMove(reader storage.Reader, src bag.Id, dest bag.Id, ids []bag.DataObjectId) (*movePlan, error) {
	if src == dest {
		return nil, fault.SourceAndDestinationBagsAreEqual
	}
	if 0 == len(ids) {
		return nil, fault.DataObjectIdCollectionIsEmpty
	}

	srcBag, err := m.bags.GetBag(reader, src)
	if nil != err {
		return nil, err
	}
	destBag, err := m.bags.GetBag(reader, dest)
	if nil != err {
		return nil, err
	}

	plan := &movePlan{
		src:     srcBag,
		dest:    destBag,
		ids:     uniqueObjectIds(ids),
		moved:   bag.Objects{},
		buckets: m.newBucketPlan(reader),
	}
	for _, id := range plan.ids {
		o, ok := srcBag.Objects[id]
		if !ok {
			return nil, fault.DataObjectDoesntExist
		}
		plan.moved[id] = o
	}

	count := uint64(len(destBag.Objects)) + uint64(len(plan.moved))
	if count > m.parameters.MaxNumberOfDataObjectsPerBag {
		return nil, fault.DataObjectsPerBagLimitExceeded
	}

	// a bucket storing both bags is unaffected
	srcOnly := bucket.IdSet{}
	for id := range srcBag.StoredBy {
		if !destBag.StoredBy.Contains(id) {
			srcOnly.Add(id)
		}
	}
	destOnly := bucket.IdSet{}
	for id := range destBag.StoredBy {
		if !srcBag.StoredBy.Contains(id) {
			destOnly.Add(id)
		}
	}

	delta := plan.moved.Delta()
	err = plan.buckets.increase(destOnly, delta)
	if nil != err {
		return nil, err
	}
	err = plan.buckets.decrease(srcOnly, delta)
	if nil != err {
		return nil, err
	}
	return plan, nil
}

// CanMoveDataObjects - dry run of MoveDataObjects
func (m *Module) CanMoveDataObjects(src bag.Id, dest bag.Id, ids []bag.DataObjectId) error {
	m.Lock()
	defer m.Unlock()

	_, err := m.validateMove(storage.Committed, src, dest, ids)
	return err
}

// MoveDataObjects - transfer objects between bags, the objects
// themselves are unchanged
func (m *Module) MoveDataObjects(src bag.Id, dest bag.Id, ids []bag.DataObjectId) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	plan, err := m.validateMove(trx, src, dest, ids)
	if nil != err {
		return m.rejected("move", err)
	}

	// MUTATION SAFE

	prize := plan.moved.DeletionPrize()
	m.bags.MoveDataObjects(trx, src, dest, plan.moved)
	err = m.bags.SetDeletionPrize(trx, src, plan.src.DeletionPrize.SaturatingSub(prize))
	logger.PanicIfError("objectstorage.MoveDataObjects", err)
	err = m.bags.SetDeletionPrize(trx, dest, plan.dest.DeletionPrize.SaturatingAdd(prize))
	logger.PanicIfError("objectstorage.MoveDataObjects", err)
	plan.buckets.apply(trx)
	m.commit(trx, "MoveDataObjects")

	m.deposit(DataObjectsMoved{
		SrcBagId:      src,
		DestBagId:     dest,
		DataObjectIds: plan.ids,
	})
	return nil
}

// delete objects

type deletePlan struct {
	header  *bag.Bag
	ids     []bag.DataObjectId
	removed bag.Objects
	prize   currency.Balance
	buckets *bucketPlan
}

func (m *Module) validateDelete(reader storage.Reader, id bag.Id, ids []bag.DataObjectId) (*deletePlan, error) {
	if 0 == len(ids) {
		return nil, fault.DataObjectIdCollectionIsEmpty
	}
	b, err := m.bags.GetBag(reader, id)
	if nil != err {
		return nil, err
	}

	plan := &deletePlan{
		header:  b,
		ids:     uniqueObjectIds(ids),
		removed: bag.Objects{},
		buckets: m.newBucketPlan(reader),
	}
	for _, objectId := range plan.ids {
		o, ok := b.Objects[objectId]
		if !ok {
			return nil, fault.DataObjectDoesntExist
		}
		plan.removed[objectId] = o
	}

	plan.prize = plan.removed.DeletionPrize()
	if m.treasury.UsableBalance() < plan.prize {
		return nil, fault.InsufficientTreasuryBalance
	}

	err = plan.buckets.decrease(b.StoredBy, plan.removed.Delta())
	if nil != err {
		return nil, err
	}
	return plan, nil
}

// CanDeleteDataObjects - dry run of DeleteDataObjects
func (m *Module) CanDeleteDataObjects(id bag.Id, ids []bag.DataObjectId) error {
	m.Lock()
	defer m.Unlock()

	_, err := m.validateDelete(storage.Committed, id, ids)
	return err
}

// DeleteDataObjects - remove objects and refund their deletion prizes
// to payer
func (m *Module) DeleteDataObjects(payer account.Account, id bag.Id, ids []bag.DataObjectId) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	plan, err := m.validateDelete(trx, id, ids)
	if nil != err {
		return m.rejected("delete", err)
	}

	if 0 != plan.prize {
		err = m.treasury.Withdraw(payer, plan.prize)
		if nil != err {
			return m.rejected("delete", err)
		}
	}

	// MUTATION SAFE

	for _, objectId := range plan.ids {
		m.bags.DeleteDataObject(trx, id, objectId)
	}
	err = m.bags.SetDeletionPrize(trx, id, plan.header.DeletionPrize.SaturatingSub(plan.prize))
	logger.PanicIfError("objectstorage.DeleteDataObjects", err)
	plan.buckets.apply(trx)
	m.commit(trx, "DeleteDataObjects")

	m.deposit(DataObjectsDeleted{
		Payer:         payer,
		BagId:         id,
		DataObjectIds: plan.ids,
	})
	return nil
}

// create dynamic bag

func (m *Module) validateCreateDynamicBag(reader storage.Reader, d bag.DynamicBagId) (bucket.IdSet, *bucketPlan, error) {
	if m.bags.DynamicBagExists(reader, d) {
		return nil, nil, fault.DynamicBagExists
	}

	required := m.creationPolicy(reader, d.Type).NumberOfStorageBuckets
	if limit := m.storageBucketsPerBagLimit(reader); required > limit {
		required = limit
	}

	accepts := func(id bucket.StorageBucketId) bool {
		b, err := m.buckets.Get(reader, id)
		return nil == err && b.AcceptingNewBags
	}
	seed := m.randomness.Random(d.BagId().Key())
	picked := m.picker.Pick(required, m.buckets.NextId(reader), seed, accepts)

	plan := m.newBucketPlan(reader)
	for _, id := range picked.Sorted() {
		b, err := plan.get(id)
		if nil != err {
			return nil, nil, err
		}
		b.AssignedBags += 1
	}
	return picked, plan, nil
}

// CanCreateDynamicBag - dry run of CreateDynamicBag
func (m *Module) CanCreateDynamicBag(d bag.DynamicBagId) error {
	m.Lock()
	defer m.Unlock()

	_, _, err := m.validateCreateDynamicBag(storage.Committed, d)
	return err
}

// CreateDynamicBag - create an empty bag stored by picked buckets
//
// fewer buckets than the creation policy asks for is not an error
func (m *Module) CreateDynamicBag(d bag.DynamicBagId) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	picked, plan, err := m.validateCreateDynamicBag(trx, d)
	if nil != err {
		return m.rejected("create dynamic bag", err)
	}

	// MUTATION SAFE

	m.bags.CreateDynamicBag(trx, d, picked)
	plan.apply(trx)
	m.commit(trx, "CreateDynamicBag")

	m.deposit(DynamicBagCreated{
		DynamicBagId:   d,
		StorageBuckets: picked,
	})
	return nil
}

// create dynamic bag with objects

// only buckets with room for the initial objects are picked and every
// picked bucket stores all of them
func (m *Module) validateCreateDynamicBagWithObjects(reader storage.Reader, d bag.DynamicBagId, params UploadParameters) (*uploadPlan, error) {
	if params.BagId != d.BagId() {
		return nil, fault.InvalidBagId
	}
	if m.bags.DynamicBagExists(reader, d) {
		return nil, fault.DynamicBagExists
	}
	if err := m.checkUploadParameters(reader, params); nil != err {
		return nil, err
	}

	plan, err := m.planObjects(reader, params, bag.New())
	if nil != err {
		return nil, err
	}
	delta := plan.objects.Delta()

	required := m.creationPolicy(reader, d.Type).NumberOfStorageBuckets
	if limit := m.storageBucketsPerBagLimit(reader); required > limit {
		required = limit
	}

	accepts := func(id bucket.StorageBucketId) bool {
		b, err := m.buckets.Get(reader, id)
		return nil == err && b.AcceptingNewBags && nil == voucher.Check(b.Voucher, delta)
	}
	seed := m.randomness.Random(d.BagId().Key())
	picked := m.picker.Pick(required, m.buckets.NextId(reader), seed, accepts)

	for _, id := range picked.Sorted() {
		b, err := plan.buckets.get(id)
		if nil != err {
			return nil, err
		}
		b.AssignedBags += 1
	}
	err = plan.buckets.increase(picked, delta)
	if nil != err {
		return nil, err
	}
	plan.header.StoredBy = picked
	return plan, nil
}

// CanCreateDynamicBagWithObjects - dry run of CreateDynamicBagWithObjects
func (m *Module) CanCreateDynamicBagWithObjects(d bag.DynamicBagId, params UploadParameters) error {
	m.Lock()
	defer m.Unlock()

	_, err := m.validateCreateDynamicBagWithObjects(storage.Committed, d, params)
	return err
}

// CreateDynamicBagWithObjects - create a dynamic bag and upload its
// first objects in one step, nothing is stored if either part fails
func (m *Module) CreateDynamicBagWithObjects(d bag.DynamicBagId, params UploadParameters) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	plan, err := m.validateCreateDynamicBagWithObjects(trx, d, params)
	if nil != err {
		return m.rejected("create dynamic bag with objects", err)
	}

	err = m.payForUpload(params, plan)
	if nil != err {
		return m.rejected("create dynamic bag with objects", err)
	}

	// MUTATION SAFE

	m.bags.CreateDynamicBag(trx, d, plan.header.StoredBy)
	m.writeUpload(trx, plan)
	m.commit(trx, "CreateDynamicBagWithObjects")

	m.deposit(DynamicBagCreated{
		DynamicBagId:   d,
		StorageBuckets: plan.header.StoredBy,
	})
	m.deposit(plan.uploaded(params))
	return nil
}

// delete dynamic bag

type deleteBagPlan struct {
	header  *bag.Bag
	buckets *bucketPlan
}

func (m *Module) validateDeleteDynamicBag(reader storage.Reader, d bag.DynamicBagId) (*deleteBagPlan, error) {
	b, err := m.bags.GetBag(reader, d.BagId())
	if nil != err {
		return nil, err
	}
	if m.treasury.UsableBalance() < b.DeletionPrize {
		return nil, fault.InsufficientTreasuryBalance
	}

	plan := &deleteBagPlan{
		header:  b,
		buckets: m.newBucketPlan(reader),
	}
	err = plan.buckets.decrease(b.StoredBy, b.Objects.Delta())
	if nil != err {
		return nil, err
	}
	for id := range b.StoredBy {
		sb, err := plan.buckets.get(id)
		if nil != err {
			return nil, err
		}
		if sb.AssignedBags > 0 {
			sb.AssignedBags -= 1
		}
	}
	return plan, nil
}

// CanDeleteDynamicBag - dry run of DeleteDynamicBag
func (m *Module) CanDeleteDynamicBag(d bag.DynamicBagId) error {
	m.Lock()
	defer m.Unlock()

	_, err := m.validateDeleteDynamicBag(storage.Committed, d)
	return err
}

// DeleteDynamicBag - remove a bag with all of its objects, the
// deletion prize goes to payer
func (m *Module) DeleteDynamicBag(payer account.Account, d bag.DynamicBagId) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	plan, err := m.validateDeleteDynamicBag(trx, d)
	if nil != err {
		return m.rejected("delete dynamic bag", err)
	}

	if 0 != plan.header.DeletionPrize {
		err = m.treasury.Withdraw(payer, plan.header.DeletionPrize)
		if nil != err {
			return m.rejected("delete dynamic bag", err)
		}
	}

	// MUTATION SAFE

	m.bags.DeleteDynamicBag(trx, d, plan.header.Objects)
	plan.buckets.apply(trx)
	m.commit(trx, "DeleteDynamicBag")

	m.deposit(DynamicBagDeleted{
		Payer:        payer,
		DynamicBagId: d,
	})
	return nil
}
