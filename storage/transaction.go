// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/bagstore/fault"
)

// Reader - point reads from pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - a batch of writes applied by a single Commit
//
// reads see the writes already made in the transaction; cursors only
// see committed data
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

// Committed - Reader for use outside of a transaction
var Committed Reader = committedReader{}

type committedReader struct{}

func (committedReader) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (committedReader) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (committedReader) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// TransactionImpl - a Transaction over one database Access
type TransactionImpl struct {
	dataAccess Access
	finished   bool
}

func newTransaction(dataAccess Access) *TransactionImpl {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write everything and release the transaction
func (t *TransactionImpl) Commit() error {
	if t.finished {
		return fault.TransactionNotInUse
	}
	err := t.dataAccess.Commit()
	t.finished = true
	t.dataAccess.Abort()
	return err
}

// Abort - discard pending writes, safe to call after Commit
func (t *TransactionImpl) Abort() {
	if t.finished {
		return
	}
	t.finished = true
	t.dataAccess.Abort()
}
