// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bag

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bagstore/fault"
)

// MemberId - membership identifier
type MemberId uint64

// ChannelId - content channel identifier
type ChannelId uint64

// WorkingGroup - groups owning a static bag
type WorkingGroup uint8

// list of working groups
const (
	Forum WorkingGroup = iota
	Storage
	Content
	Membership
	Distribution
	Gateway
	Operations
	workingGroupLimit
)

var workingGroupNames = []string{
	"forum",
	"storage",
	"content",
	"membership",
	"distribution",
	"gateway",
	"operations",
}

// StaticBagId - Council or one working group
type StaticBagId uint8

// Council - the council bag
const Council StaticBagId = 0

// WorkingGroupBag - static bag of a working group
func WorkingGroupBag(group WorkingGroup) StaticBagId {
	return StaticBagId(1 + group)
}

// WorkingGroup - the group of a working group bag
func (s StaticBagId) WorkingGroup() (WorkingGroup, bool) {
	if Council == s {
		return 0, false
	}
	return WorkingGroup(s - 1), true
}

func (s StaticBagId) valid() bool {
	return s <= StaticBagId(workingGroupLimit)
}

// DynamicBagType - kinds of dynamic bags
type DynamicBagType uint8

// list of dynamic bag types
const (
	MemberType DynamicBagType = iota
	ChannelType
	dynamicBagTypeLimit
)

// DynamicBagTypes - all types, in order
var DynamicBagTypes = []DynamicBagType{MemberType, ChannelType}

// String - type name
func (t DynamicBagType) String() string {
	switch t {
	case MemberType:
		return "member"
	case ChannelType:
		return "channel"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseDynamicBagType - type from its name
func ParseDynamicBagType(s string) (DynamicBagType, error) {
	switch strings.ToLower(s) {
	case "member":
		return MemberType, nil
	case "channel":
		return ChannelType, nil
	default:
		return 0, fault.InvalidBagId
	}
}

// DynamicBagId - a member or channel bag
type DynamicBagId struct {
	Type DynamicBagType
	Id   uint64
}

// Member - dynamic bag of a member
func Member(id MemberId) DynamicBagId {
	return DynamicBagId{Type: MemberType, Id: uint64(id)}
}

// Channel - dynamic bag of a channel
func Channel(id ChannelId) DynamicBagId {
	return DynamicBagId{Type: ChannelType, Id: uint64(id)}
}

// Id - any bag
type Id struct {
	dynamic   bool
	staticId  StaticBagId
	dynamicId DynamicBagId
}

// Static - wrap a static bag id
func Static(s StaticBagId) Id {
	return Id{staticId: s}
}

// Dynamic - wrap a dynamic bag id
func Dynamic(d DynamicBagId) Id {
	return Id{dynamic: true, dynamicId: d}
}

// BagId - the general form of a dynamic bag id
func (d DynamicBagId) BagId() Id {
	return Dynamic(d)
}

// IsDynamic - true for member and channel bags
func (id Id) IsDynamic() bool {
	return id.dynamic
}

// StaticId - the static part, false for dynamic bags
func (id Id) StaticId() (StaticBagId, bool) {
	return id.staticId, !id.dynamic
}

// DynamicId - the dynamic part, false for static bags
func (id Id) DynamicId() (DynamicBagId, bool) {
	return id.dynamicId, id.dynamic
}

// key layout: class ++ kind ++ big endian id
const (
	KeyLength    = 10
	staticClass  = 0x00
	dynamicClass = 0x01
)

// Key - fixed length database key
func (id Id) Key() []byte {
	key := make([]byte, KeyLength)
	if id.dynamic {
		key[0] = dynamicClass
		key[1] = byte(id.dynamicId.Type)
		binary.BigEndian.PutUint64(key[2:], id.dynamicId.Id)
	} else {
		key[0] = staticClass
		key[1] = byte(id.staticId)
	}
	return key
}

// IdFromKey - inverse of Key
func IdFromKey(key []byte) (Id, error) {
	if KeyLength != len(key) {
		return Id{}, fault.InvalidBagId
	}
	n := binary.BigEndian.Uint64(key[2:])
	switch key[0] {
	case staticClass:
		s := StaticBagId(key[1])
		if !s.valid() || 0 != n {
			return Id{}, fault.InvalidBagId
		}
		return Static(s), nil
	case dynamicClass:
		t := DynamicBagType(key[1])
		if t >= dynamicBagTypeLimit {
			return Id{}, fault.InvalidBagId
		}
		return Dynamic(DynamicBagId{Type: t, Id: n}), nil
	default:
		return Id{}, fault.InvalidBagId
	}
}

// String - text form
//
//   static:council
//   static:wg:<group>
//   dynamic:member:<id>
//   dynamic:channel:<id>
func (id Id) String() string {
	if id.dynamic {
		return fmt.Sprintf("dynamic:%s:%d", id.dynamicId.Type, id.dynamicId.Id)
	}
	if group, ok := id.staticId.WorkingGroup(); ok && group < workingGroupLimit {
		return "static:wg:" + workingGroupNames[group]
	}
	return "static:council"
}

// String - text form of a dynamic bag id
func (d DynamicBagId) String() string {
	return d.BagId().String()
}

// ParseId - bag id from its text form
func ParseId(s string) (Id, error) {
	parts := strings.Split(strings.ToLower(s), ":")
	switch {
	case 2 == len(parts) && "static" == parts[0] && "council" == parts[1]:
		return Static(Council), nil

	case 3 == len(parts) && "static" == parts[0] && "wg" == parts[1]:
		for i, name := range workingGroupNames {
			if name == parts[2] {
				return Static(WorkingGroupBag(WorkingGroup(i))), nil
			}
		}

	case 3 == len(parts) && "dynamic" == parts[0]:
		t, err := ParseDynamicBagType(parts[1])
		if nil != err {
			return Id{}, err
		}
		n, err := strconv.ParseUint(parts[2], 10, 64)
		if nil != err {
			return Id{}, fault.InvalidBagId
		}
		return Dynamic(DynamicBagId{Type: t, Id: n}), nil
	}
	return Id{}, fault.InvalidBagId
}

// MarshalText - text form for JSON
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - parse text form from JSON
func (id *Id) UnmarshalText(s []byte) error {
	parsed, err := ParseId(string(s))
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText - text form for JSON
func (d DynamicBagId) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - only dynamic bag ids are accepted
func (d *DynamicBagId) UnmarshalText(s []byte) error {
	parsed, err := ParseId(string(s))
	if nil != err {
		return err
	}
	dynamicId, ok := parsed.DynamicId()
	if !ok {
		return fault.InvalidBagId
	}
	*d = dynamicId
	return nil
}

// MarshalText - type name for JSON
func (t DynamicBagType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText - type from its name
func (t *DynamicBagType) UnmarshalText(s []byte) error {
	parsed, err := ParseDynamicBagType(string(s))
	if nil != err {
		return err
	}
	*t = parsed
	return nil
}
