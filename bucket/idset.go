// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bucket

import (
	"encoding/json"
	"sort"

	"github.com/bitmark-inc/bagstore/util"
)

// IdSet - ordered set of bucket ids
type IdSet map[StorageBucketId]struct{}

// NewIdSet - set from a list, duplicates collapse
func NewIdSet(ids ...StorageBucketId) IdSet {
	s := make(IdSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains - membership test
func (s IdSet) Contains(id StorageBucketId) bool {
	_, ok := s[id]
	return ok
}

// Add - insert one id
func (s IdSet) Add(id StorageBucketId) {
	s[id] = struct{}{}
}

// Remove - delete one id
func (s IdSet) Remove(id StorageBucketId) {
	delete(s, id)
}

// Clone - independent copy
func (s IdSet) Clone() IdSet {
	c := make(IdSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Sorted - ids in ascending order
func (s IdSet) Sorted() []StorageBucketId {
	ids := make([]StorageBucketId, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Pack - count followed by ascending ids
func (s IdSet) Pack(buffer util.Packed) util.Packed {
	buffer = buffer.AppendUint64(uint64(len(s)))
	for _, id := range s.Sorted() {
		buffer = buffer.AppendUint64(uint64(id))
	}
	return buffer
}

// UnpackIdSet - read a set written by Pack
func UnpackIdSet(u *util.Unpacker) IdSet {
	n := u.Count()
	s := make(IdSet, n)
	for i := uint64(0); i < n; i += 1 {
		s[StorageBucketId(u.Uint64())] = struct{}{}
	}
	return s
}

// MarshalJSON - ascending list
func (s IdSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON - from a list
func (s *IdSet) UnmarshalJSON(data []byte) error {
	ids := []StorageBucketId{}
	if err := json.Unmarshal(data, &ids); nil != err {
		return err
	}
	*s = NewIdSet(ids...)
	return nil
}
