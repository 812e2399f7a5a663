// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.  The database
// tag selects which of the two databases (state or ledger) a pool
// lives in; a Store only populates the pools of its own database.
//
// All writes go through a Transaction: a single LevelDB batch with a
// cache overlay so that values written earlier in the same
// transaction are visible to later reads.  Nothing reaches the
// database until Commit.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = big endian uint64 (8 bytes)
// 4. bag key      = class(1) ++ kind(1) ++ id (10 bytes total)
// 5. account      = 32 byte account
// 6. *others*     = varint packed records
//
// State:
//
//   P ++ name                  - module parameters and counters
//                                data: varint or flag
//   S ++ bag key               - static bag header (absent = empty bag)
//                                data: stored by ++ distributed by ++ deletion prize
//   D ++ bag key               - dynamic bag header
//                                data: stored by ++ distributed by ++ deletion prize
//   O ++ bag key ++ object id  - data objects of a bag
//                                data: accepted ++ deletion prize ++ size ++ content id
//   K ++ bucket id             - storage buckets
//                                data: operator status ++ worker ++ accepting ++ voucher ++ assigned bags ++ metadata
//   L ++ content id            - blacklisted content ids
//                                data: empty
//   C ++ dynamic bag type      - dynamic bag creation policies
//                                data: number of storage buckets
//
// Ledger:
//
//   A ++ account               - usable balance
//                                data: big endian uint64 (8 bytes)
package storage
