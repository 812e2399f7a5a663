// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bag

import (
	"sort"

	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/util"
	"github.com/bitmark-inc/bagstore/voucher"
)

// DataObjectId - sequential object identifier, never reused
type DataObjectId uint64

// DataObject - one stored unit of content
type DataObject struct {
	Accepted      bool             `json:"accepted"`
	DeletionPrize currency.Balance `json:"deletionPrize"`
	Size          uint64           `json:"size"`
	IpfsContentId []byte           `json:"ipfsContentId"`
}

// Pack - convert an object to its database record
func (o DataObject) Pack() util.Packed {
	return util.Packed{}.
		AppendBool(o.Accepted).
		AppendUint64(o.DeletionPrize.Uint64()).
		AppendUint64(o.Size).
		AppendBytes(o.IpfsContentId)
}

// UnpackDataObject - convert a database record to an object
func UnpackDataObject(record util.Packed) (DataObject, error) {
	u := record.Unpack()
	o := DataObject{
		Accepted:      u.Bool(),
		DeletionPrize: currency.Balance(u.Uint64()),
		Size:          u.Uint64(),
		IpfsContentId: u.Bytes(),
	}
	return o, u.Err()
}

// Objects - a set of objects by id
type Objects map[DataObjectId]DataObject

// Delta - count and total size
func (objects Objects) Delta() voucher.Delta {
	d := voucher.Delta{}
	for _, o := range objects {
		d = d.Add(voucher.Delta{Objects: 1, Size: o.Size})
	}
	return d
}

// DeletionPrize - sum of the deletion prizes
func (objects Objects) DeletionPrize() currency.Balance {
	total := currency.Balance(0)
	for _, o := range objects {
		total = total.SaturatingAdd(o.DeletionPrize)
	}
	return total
}

// Ids - ids in ascending order
func (objects Objects) Ids() []DataObjectId {
	ids := make([]DataObjectId, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
