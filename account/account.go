// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/util"
)

// miscellaneous constants
const (
	Length         = 32
	checksumLength = 4

	// prefix for sovereign module accounts
	modulePrefix = "modl"
)

// Account - an opaque 32 byte account identifier
type Account [Length]byte

// Zero - the empty account, never a valid source of funds
var Zero Account

// FromBytes - convert a raw byte slice to an account
func FromBytes(b []byte) (Account, error) {
	a := Account{}
	if Length != len(b) {
		return a, fault.InvalidAccountLength
	}
	copy(a[:], b)
	return a, nil
}

// FromBase58 - decode the text form: base58(bytes ++ checksum)
func FromBase58(s string) (Account, error) {
	a := Account{}
	decoded, err := util.FromBase58(s)
	if nil != err || 0 == len(decoded) {
		return a, fault.CannotDecodeAccount
	}
	if Length+checksumLength != len(decoded) {
		return a, fault.InvalidAccountLength
	}
	checksum := sha3.Sum256(decoded[:Length])
	if !bytes.Equal(checksum[:checksumLength], decoded[Length:]) {
		return a, fault.AccountChecksumMismatch
	}
	copy(a[:], decoded[:Length])
	return a, nil
}

// ModuleAccount - derive the sovereign account of a module
//
// the account is "modl" followed by the module identifier, zero
// filled, so the same identifier always yields the same account
func ModuleAccount(moduleId string) Account {
	a := Account{}
	n := copy(a[:], modulePrefix)
	copy(a[n:], moduleId)
	return a
}

// Bytes - raw bytes of the account
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the empty account
func (a Account) IsZero() bool {
	return a == Zero
}

// String - base58 text form with checksum
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// GoString - hex form for debugging
func (a Account) GoString() string {
	return "<account:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert account to text for JSON
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text from JSON to an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
