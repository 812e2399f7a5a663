// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/bitmark-inc/bagstore/fault"
)

// Packed - a byte record as written to the database
type Packed []byte

// AppendUint64 - append a Varint64 value
func (p Packed) AppendUint64(value uint64) Packed {
	return appendVarint64(p, value)
}

// AppendBool - append a boolean as a single byte
func (p Packed) AppendBool(flag bool) Packed {
	if flag {
		return append(p, 1)
	}
	return append(p, 0)
}

// AppendBytes - append a Varint64 count followed by the data
func (p Packed) AppendBytes(data []byte) Packed {
	p = p.AppendUint64(uint64(len(data)))
	return append(p, data...)
}

// Unpacker - sequential reader over a Packed record
//
// the first failure sticks, so a whole record can be read and the
// error checked once at the end
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// Unpack - start reading a record
func (p Packed) Unpack() *Unpacker {
	return &Unpacker{buffer: p}
}

// Uint64 - read the next Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += count
	return value
}

// Bool - read the next single byte flag
func (u *Unpacker) Bool() bool {
	if nil != u.err {
		return false
	}
	if u.n >= len(u.buffer) {
		u.err = fault.RecordTruncated
		return false
	}
	b := u.buffer[u.n]
	u.n += 1
	return 0 != b
}

// Bytes - read the next counted byte slice, the result is a copy
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)-u.n) < length {
		u.err = fault.RecordTruncated
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+int(length)])
	u.n += int(length)
	return data
}

// Count - read an element count that the rest of the record can hold
//
// every element occupies at least one byte
func (u *Unpacker) Count() uint64 {
	n := u.Uint64()
	if nil != u.err {
		return 0
	}
	if n > uint64(u.Remaining()) {
		u.err = fault.RecordTruncated
		return 0
	}
	return n
}

// Err - the first error encountered, if any
func (u *Unpacker) Err() error {
	return u.err
}

// Remaining - number of bytes not yet consumed
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Uint64ToKey - fixed width big endian key so that database order
// matches numeric order
func Uint64ToKey(value uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, value)
	return key
}

// KeyToUint64 - inverse of Uint64ToKey
func KeyToUint64(key []byte) (uint64, error) {
	if 8 != len(key) {
		return 0, fault.RecordTruncated
	}
	return binary.BigEndian.Uint64(key), nil
}
