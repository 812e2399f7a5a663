// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectstorage

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/picker"
	"github.com/bitmark-inc/bagstore/storage"
	"github.com/bitmark-inc/bagstore/treasury"
	"github.com/bitmark-inc/bagstore/voucher"
	"github.com/bitmark-inc/bagstore/workinggroup"
)

// EventSource - the From of every queued event
const EventSource = "objectstorage"

// Module - the storage module
//
// every operation runs under the module lock inside one store
// transaction; all checks happen before the first write and a failed
// operation leaves no trace
type Module struct {
	sync.Mutex

	log        *logger.L
	parameters Parameters
	store      *storage.Store
	bags       *bag.Manager
	buckets    *bucket.Registry
	picker     *picker.Picker
	randomness picker.Randomness
	treasury   *treasury.Treasury
	currency   currency.Currency
	authority  workinggroup.Authority
	events     *messagebus.Queue
}

// New - module over a state store
//
// events may be nil, then events are only logged
func New(
	parameters Parameters,
	store *storage.Store,
	c currency.Currency,
	authority workinggroup.Authority,
	randomness picker.Randomness,
	events *messagebus.Queue,
) (*Module, error) {
	if err := parameters.Validate(); nil != err {
		return nil, err
	}
	if nil == store || storage.StateDatabase != store.Database() {
		return nil, fault.DatabaseIsNotSet
	}
	if nil == c || nil == authority {
		return nil, fault.MissingParameters
	}
	if nil == randomness {
		randomness = picker.SaltedRandomness{}
	}

	return &Module{
		log:        logger.New("objectstorage"),
		parameters: parameters,
		store:      store,
		bags:       bag.NewManager(&store.Pool),
		buckets:    bucket.NewRegistry(&store.Pool),
		picker:     picker.New(parameters.MaxRandomIterationNumber),
		randomness: randomness,
		treasury:   treasury.New(parameters.ModuleId, c),
		currency:   c,
		authority:  authority,
		events:     events,
	}, nil
}

// start a transaction, the caller must hold the module lock
func (m *Module) begin() (storage.Transaction, error) {
	return m.store.Begin()
}

// a failed batch write leaves the database unusable
func (m *Module) commit(trx storage.Transaction, operation string) {
	err := trx.Commit()
	logger.PanicIfError("objectstorage."+operation, err)
}

func (m *Module) deposit(e Event) {
	m.log.Infof("%s: %+v", e.Name(), e)
	if nil != m.events {
		if !m.events.Send(EventSource, e) {
			m.log.Warnf("event queue full, dropped: %s", e.Name())
		}
	}
}

func (m *Module) rejected(operation string, err error) error {
	m.log.Debugf("%s: rejected: %s", operation, err)
	return err
}

func ensureSigned(caller account.Account) error {
	if caller.IsZero() {
		return fault.UnsignedOrigin
	}
	return nil
}

func (m *Module) ensureLeader(caller account.Account) error {
	if err := ensureSigned(caller); nil != err {
		return err
	}
	return m.authority.EnsureLeader(caller)
}

func (m *Module) ensureWorker(caller account.Account, worker bucket.WorkerId) error {
	if err := ensureSigned(caller); nil != err {
		return err
	}
	return m.authority.EnsureWorker(caller, worker)
}

// sorted and without duplicates
func uniqueObjectIds(ids []bag.DataObjectId) []bag.DataObjectId {
	seen := make(map[bag.DataObjectId]struct{}, len(ids))
	result := make([]bag.DataObjectId, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// bucketPlan - pending bucket changes of one operation
//
// buckets are read once, changed in memory and written by apply
type bucketPlan struct {
	registry *bucket.Registry
	reader   storage.Reader
	buckets  map[bucket.StorageBucketId]*bucket.StorageBucket
}

func (m *Module) newBucketPlan(reader storage.Reader) *bucketPlan {
	return &bucketPlan{
		registry: m.buckets,
		reader:   reader,
		buckets:  make(map[bucket.StorageBucketId]*bucket.StorageBucket),
	}
}

func (p *bucketPlan) get(id bucket.StorageBucketId) (*bucket.StorageBucket, error) {
	if b, ok := p.buckets[id]; ok {
		return b, nil
	}
	b, err := p.registry.Get(p.reader, id)
	if nil != err {
		return nil, err
	}
	p.buckets[id] = b
	return b, nil
}

// increase - every bucket must have room for delta
func (p *bucketPlan) increase(ids bucket.IdSet, delta voucher.Delta) error {
	for _, id := range ids.Sorted() {
		b, err := p.get(id)
		if nil != err {
			return err
		}
		v, err := b.Voucher.Increase(delta)
		if nil != err {
			return err
		}
		b.Voucher = v
	}
	return nil
}

// decrease - a decrease beyond usage is an internal inconsistency
func (p *bucketPlan) decrease(ids bucket.IdSet, delta voucher.Delta) error {
	for _, id := range ids.Sorted() {
		b, err := p.get(id)
		if nil != err {
			return err
		}
		v, err := b.Voucher.Decrease(delta)
		if nil != err {
			return err
		}
		b.Voucher = v
	}
	return nil
}

func (p *bucketPlan) vouchers() map[bucket.StorageBucketId]voucher.Voucher {
	result := make(map[bucket.StorageBucketId]voucher.Voucher, len(p.buckets))
	for id, b := range p.buckets {
		result[id] = b.Voucher
	}
	return result
}

func (p *bucketPlan) apply(trx storage.Transaction) {
	for id, b := range p.buckets {
		p.registry.Put(trx, id, b)
	}
}
