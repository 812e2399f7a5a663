// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/logger"
)

// names of the databases
const (
	StateDatabase  = "state"
	LedgerDatabase = "ledger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Parameters       *PoolHandle `prefix:"P" database:"state"`
	StaticBags       *PoolHandle `prefix:"S" database:"state"`
	DynamicBags      *PoolHandle `prefix:"D" database:"state"`
	DataObjects      *PoolHandle `prefix:"O" database:"state"`
	StorageBuckets   *PoolHandle `prefix:"K" database:"state"`
	Blacklist        *PoolHandle `prefix:"L" database:"state"`
	CreationPolicies *PoolHandle `prefix:"C" database:"state"`
	Balances         *PoolHandle `prefix:"A" database:"ledger"`
}

// Store - one open database and its pools
type Store struct {
	sync.Mutex
	Pool     Pools
	database string
	db       *leveldb.DB
	access   *AccessData
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

var currentVersion = map[string]int{
	StateDatabase:  0x100,
	LedgerDatabase: 0x100,
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open or create a database file
func Open(fileName string, database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, err
	}
	s, err := newStore(db, database, readOnly)
	if nil != err {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewMemory - a database that lives only in memory
func NewMemory(database string) (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	s, err := newStore(db, database, ReadWrite)
	if nil != err {
		db.Close()
		return nil, err
	}
	return s, nil
}

func newStore(db *leveldb.DB, database string, readOnly bool) (*Store, error) {
	expected, ok := currentVersion[database]
	if !ok {
		return nil, fmt.Errorf("invalid database: %q", database)
	}

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > expected {
		logger.Criticalf("%s database version: %d > current version: %d", database, version, expected)
		return nil, fmt.Errorf("%s database version: %d > current version: %d", database, version, expected)
	}
	if 0 == version {
		if readOnly {
			return nil, fault.NotAvailableInReadOnlyMode
		}
		// database was empty so tag as current version
		err = putVersion(db, expected)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		database: database,
		db:       db,
		access:   newDA(db, readOnly, newCache()),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		dbName := fieldInfo.Tag.Get("database")
		if _, ok := currentVersion[dbName]; !ok {
			return nil, fmt.Errorf("pool: %v has invalid database: %q", fieldInfo, dbName)
		}
		if dbName != database {
			continue
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return s, nil
}

// Begin - start the only write transaction of this store
func (s *Store) Begin() (Transaction, error) {
	if nil == s.db {
		return nil, fault.DatabaseIsNotSet
	}
	err := s.access.Begin()
	if nil != err {
		return nil, err
	}
	return newTransaction(s.access), nil
}

// Database - name of the database held
func (s *Store) Database() string {
	return s.database
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(version))

	return db.Put(versionKey, buffer, nil)
}
