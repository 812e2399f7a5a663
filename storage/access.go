// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/bagstore/fault"
)

// Access - batched access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - Access over a LevelDB database
type AccessData struct {
	sync.Mutex
	inUse    bool
	readOnly bool
	db       *leveldb.DB
	batch    *leveldb.Batch
	cache    Cache
}

func newDA(db *leveldb.DB, readOnly bool, cache Cache) *AccessData {
	return &AccessData{
		inUse:    false,
		readOnly: readOnly,
		db:       db,
		batch:    new(leveldb.Batch),
		cache:    cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if d.inUse {
		return fault.TransactionAlreadyInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	if nil == value {
		value = []byte{}
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// Commit - write the batch, the transaction stays in use until Abort
func (d *AccessData) Commit() error {
	if !d.inUse {
		return fault.TransactionNotInUse
	}
	return d.db.Write(d.batch, nil)
}

func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, found := d.getFromCache(key)
	if found {
		return val, nil
	}
	if d.cache.IsDeleted(string(key)) {
		return nil, leveldb.ErrNotFound
	}
	return d.getFromDB(key)
}

func (d *AccessData) getFromCache(key []byte) ([]byte, bool) {
	return d.cache.Get(string(key))
}

func (d *AccessData) getFromDB(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// Iterator - committed data only, pending writes are not visible
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, found := d.getFromCache(key)
	if found {
		return true, nil
	}
	if d.cache.IsDeleted(string(key)) {
		return false, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
