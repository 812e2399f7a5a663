// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bucket

import (
	"fmt"

	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/util"
	"github.com/bitmark-inc/bagstore/voucher"
)

// StorageBucketId - sequential bucket identifier, never reused
type StorageBucketId uint64

// WorkerId - storage working group worker
type WorkerId uint64

// OperatorStatus - who operates a bucket
type OperatorStatus uint64

// operator states
const (
	Missing              OperatorStatus = iota
	InvitedStorageWorker OperatorStatus = iota
	StorageWorker        OperatorStatus = iota
	operatorStatusLimit  OperatorStatus = iota
)

// StorageBucket - one storage provider's capacity
type StorageBucket struct {
	OperatorStatus   OperatorStatus  `json:"operatorStatus"`
	WorkerId         WorkerId        `json:"workerId"`
	AcceptingNewBags bool            `json:"acceptingNewBags"`
	Voucher          voucher.Voucher `json:"voucher"`
	Metadata         []byte          `json:"metadata"`
	AssignedBags     uint64          `json:"assignedBags"`
}

// New - a bucket with an optional invitation
func New(inviteWorker *WorkerId, acceptingNewBags bool, sizeLimit uint64, objectsLimit uint64) *StorageBucket {
	b := &StorageBucket{
		OperatorStatus:   Missing,
		AcceptingNewBags: acceptingNewBags,
		Voucher:          voucher.New(sizeLimit, objectsLimit),
	}
	if nil != inviteWorker {
		b.OperatorStatus = InvitedStorageWorker
		b.WorkerId = *inviteWorker
	}
	return b
}

// Invite - Missing -> InvitedStorageWorker(w)
func (b *StorageBucket) Invite(w WorkerId) error {
	switch b.OperatorStatus {
	case Missing:
	case InvitedStorageWorker:
		return fault.InvitedStorageProvider
	default:
		return fault.StorageProviderAlreadySet
	}
	b.OperatorStatus = InvitedStorageWorker
	b.WorkerId = w
	return nil
}

// CancelInvite - InvitedStorageWorker(w) -> Missing
func (b *StorageBucket) CancelInvite() error {
	if InvitedStorageWorker != b.OperatorStatus {
		return fault.NoStorageBucketInvitation
	}
	b.OperatorStatus = Missing
	b.WorkerId = 0
	return nil
}

// Accept - InvitedStorageWorker(w) -> StorageWorker(w), only for w
func (b *StorageBucket) Accept(w WorkerId) error {
	switch b.OperatorStatus {
	case Missing:
		return fault.NoStorageBucketInvitation
	case StorageWorker:
		return fault.StorageProviderAlreadySet
	}
	if b.WorkerId != w {
		return fault.DifferentStorageProviderInvited
	}
	b.OperatorStatus = StorageWorker
	return nil
}

// RemoveOperator - StorageWorker(w) -> Missing
func (b *StorageBucket) RemoveOperator() error {
	if StorageWorker != b.OperatorStatus {
		return fault.StorageProviderMustBeSet
	}
	b.OperatorStatus = Missing
	b.WorkerId = 0
	return nil
}

// EnsureOperator - w must be the accepted operator
func (b *StorageBucket) EnsureOperator(w WorkerId) error {
	if StorageWorker != b.OperatorStatus || b.WorkerId != w {
		return fault.InvalidStorageProvider
	}
	return nil
}

// EnsureDeletable - no operator, no objects and no bags
func (b *StorageBucket) EnsureDeletable() error {
	if Missing != b.OperatorStatus || 0 != b.Voucher.ObjectsUsed || 0 != b.AssignedBags {
		return fault.CannotDeleteNonEmptyStorageBucket
	}
	return nil
}

// Pack - convert a bucket to its database record
func (b *StorageBucket) Pack() util.Packed {
	buffer := util.Packed{}.
		AppendUint64(uint64(b.OperatorStatus)).
		AppendUint64(uint64(b.WorkerId)).
		AppendBool(b.AcceptingNewBags)
	buffer = b.Voucher.Pack(buffer)
	return buffer.
		AppendUint64(b.AssignedBags).
		AppendBytes(b.Metadata)
}

// Unpack - convert a database record to a bucket
func Unpack(record util.Packed) (*StorageBucket, error) {
	u := record.Unpack()
	b := &StorageBucket{
		OperatorStatus:   OperatorStatus(u.Uint64()),
		WorkerId:         WorkerId(u.Uint64()),
		AcceptingNewBags: u.Bool(),
		Voucher:          voucher.Unpack(u),
		AssignedBags:     u.Uint64(),
		Metadata:         u.Bytes(),
	}
	if err := u.Err(); nil != err {
		return nil, err
	}
	if b.OperatorStatus >= operatorStatusLimit {
		return nil, fault.RecordTruncated
	}
	return b, nil
}

// String - operator status text
func (s OperatorStatus) String() string {
	switch s {
	case Missing:
		return "missing"
	case InvitedStorageWorker:
		return "invited"
	case StorageWorker:
		return "storage-worker"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(s))
	}
}

// MarshalText - status as text for JSON
func (s OperatorStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - status from its text
func (s *OperatorStatus) UnmarshalText(text []byte) error {
	for status := Missing; status < operatorStatusLimit; status += 1 {
		if status.String() == string(text) {
			*s = status
			return nil
		}
	}
	return fault.InvalidOperatorStatus
}
