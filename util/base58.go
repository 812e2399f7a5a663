// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode bytes in the bitcoin base58 alphabet
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 - decode a base58 string
func FromBase58(s string) ([]byte, error) {
	return base58.Decode(s)
}
