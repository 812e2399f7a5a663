// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - longest encoding of a uint64
const Varint64MaximumBytes = 9

// the ninth byte carries the top 8 bits and has no continuation flag
const varint64Continued = Varint64MaximumBytes - 1

// ToVarint64 - little endian groups of 7 bits, high bit set while more
// bytes follow
func ToVarint64(value uint64) []byte {
	return appendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

func appendVarint64(buffer []byte, value uint64) []byte {
	for i := 0; i < varint64Continued; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// FromVarint64 - decoded value and the number of bytes it occupied,
// 0, 0 for a truncated buffer
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		if varint64Continued == i {
			return value | uint64(b)<<(7*varint64Continued), Varint64MaximumBytes
		}
		value |= uint64(b&0x7f) << uint(7*i)
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}
