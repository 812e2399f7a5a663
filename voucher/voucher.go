// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package voucher - capacity accounting for a storage bucket
package voucher

import (
	"fmt"

	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/util"
)

// Voucher - limits and current usage of a bucket
type Voucher struct {
	SizeLimit    uint64 `json:"sizeLimit"`
	ObjectsLimit uint64 `json:"objectsLimit"`
	SizeUsed     uint64 `json:"sizeUsed"`
	ObjectsUsed  uint64 `json:"objectsUsed"`
}

// Delta - a change in object count and total size
type Delta struct {
	Objects uint64 `json:"objects"`
	Size    uint64 `json:"size"`
}

// Operation - direction of an update
type Operation int

// update directions
const (
	Increase Operation = iota
	Decrease
)

// New - an unused voucher with the given limits
func New(sizeLimit uint64, objectsLimit uint64) Voucher {
	return Voucher{
		SizeLimit:    sizeLimit,
		ObjectsLimit: objectsLimit,
	}
}

// Add - combine two deltas, saturating
func (d Delta) Add(other Delta) Delta {
	return Delta{
		Objects: saturatingAdd(d.Objects, other.Objects),
		Size:    saturatingAdd(d.Size, other.Size),
	}
}

// IsZero - no change at all
func (d Delta) IsZero() bool {
	return 0 == d.Objects && 0 == d.Size
}

// Apply - saturating update of the used counters
func Apply(v Voucher, delta Delta, op Operation) Voucher {
	switch op {
	case Increase:
		v.ObjectsUsed = saturatingAdd(v.ObjectsUsed, delta.Objects)
		v.SizeUsed = saturatingAdd(v.SizeUsed, delta.Size)
	case Decrease:
		v.ObjectsUsed = saturatingSub(v.ObjectsUsed, delta.Objects)
		v.SizeUsed = saturatingSub(v.SizeUsed, delta.Size)
	}
	return v
}

// WouldOverflow - true if an increase by delta exceeds either limit
func WouldOverflow(v Voucher, delta Delta) bool {
	return nil != Check(v, delta)
}

// Check - verify an increase by delta stays within both limits
//
// the object count is checked first
func Check(v Voucher, delta Delta) error {
	objects, overflow := checkedAdd(v.ObjectsUsed, delta.Objects)
	if overflow || objects > v.ObjectsLimit {
		return fault.StorageBucketObjectNumberLimitReached
	}
	size, overflow := checkedAdd(v.SizeUsed, delta.Size)
	if overflow || size > v.SizeLimit {
		return fault.StorageBucketObjectSizeLimitReached
	}
	return nil
}

// Increase - checked increase
func (v Voucher) Increase(delta Delta) (Voucher, error) {
	if err := Check(v, delta); nil != err {
		return v, err
	}
	return Apply(v, delta, Increase), nil
}

// Decrease - checked decrease, fails rather than clamping at zero
func (v Voucher) Decrease(delta Delta) (Voucher, error) {
	if delta.Objects > v.ObjectsUsed || delta.Size > v.SizeUsed {
		return v, fault.VoucherUnderflow
	}
	return Apply(v, delta, Decrease), nil
}

// Used - the current usage as a delta from empty
func (v Voucher) Used() Delta {
	return Delta{
		Objects: v.ObjectsUsed,
		Size:    v.SizeUsed,
	}
}

// Pack - append the voucher to a record
func (v Voucher) Pack(buffer util.Packed) util.Packed {
	return buffer.
		AppendUint64(v.SizeLimit).
		AppendUint64(v.ObjectsLimit).
		AppendUint64(v.SizeUsed).
		AppendUint64(v.ObjectsUsed)
}

// Unpack - read a voucher from a record
func Unpack(u *util.Unpacker) Voucher {
	return Voucher{
		SizeLimit:    u.Uint64(),
		ObjectsLimit: u.Uint64(),
		SizeUsed:     u.Uint64(),
		ObjectsUsed:  u.Uint64(),
	}
}

// GoString - for debugging
func (v Voucher) GoString() string {
	return fmt.Sprintf("<Voucher objects: %d/%d  size: %d/%d>", v.ObjectsUsed, v.ObjectsLimit, v.SizeUsed, v.SizeLimit)
}

func checkedAdd(a uint64, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum < a
}

func saturatingAdd(a uint64, b uint64) uint64 {
	sum, overflow := checkedAdd(a, b)
	if overflow {
		return ^uint64(0)
	}
	return sum
}

func saturatingSub(a uint64, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
