// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/rpc/buckets"
)

// CreateBucketData - fields of a new bucket
type CreateBucketData struct {
	Caller           account.Account
	InviteWorker     *bucket.WorkerId
	AcceptingNewBags bool
	SizeLimit        uint64
	ObjectsLimit     uint64
}

// CreateBucket - leader creates a bucket, returns its id
func (c *Client) CreateBucket(data *CreateBucketData) (bucket.StorageBucketId, error) {
	arguments := buckets.CreateArguments{
		Caller:           data.Caller,
		InviteWorker:     data.InviteWorker,
		AcceptingNewBags: data.AcceptingNewBags,
		SizeLimit:        data.SizeLimit,
		ObjectsLimit:     data.ObjectsLimit,
	}
	var reply buckets.CreateReply
	if err := c.call("Buckets.Create", arguments, &reply); nil != err {
		return 0, err
	}
	return reply.StorageBucketId, nil
}

// DeleteBucket - leader removes an unused bucket
func (c *Client) DeleteBucket(caller account.Account, id bucket.StorageBucketId) error {
	arguments := buckets.BucketArguments{
		Caller:          caller,
		StorageBucketId: id,
	}
	var reply buckets.Reply
	return c.call("Buckets.Delete", arguments, &reply)
}

// Invite - leader invites a worker to operate a bucket
func (c *Client) Invite(caller account.Account, id bucket.StorageBucketId, worker bucket.WorkerId) error {
	arguments := buckets.InviteArguments{
		Caller:          caller,
		StorageBucketId: id,
		WorkerId:        worker,
	}
	var reply buckets.Reply
	return c.call("Buckets.Invite", arguments, &reply)
}

// AcceptInvitation - invited worker becomes the operator
func (c *Client) AcceptInvitation(caller account.Account, worker bucket.WorkerId, id bucket.StorageBucketId) error {
	arguments := buckets.OperatorArguments{
		Caller:          caller,
		WorkerId:        worker,
		StorageBucketId: id,
	}
	var reply buckets.Reply
	return c.call("Buckets.AcceptInvitation", arguments, &reply)
}

// UpdateBucketsForBag - leader changes the buckets storing a bag
func (c *Client) UpdateBucketsForBag(caller account.Account, id bag.Id, add bucket.IdSet, remove bucket.IdSet) error {
	arguments := buckets.UpdateForBagArguments{
		Caller: caller,
		BagId:  id,
		Add:    add,
		Remove: remove,
	}
	var reply buckets.Reply
	return c.call("Buckets.UpdateForBag", arguments, &reply)
}

// Bucket - read one bucket
func (c *Client) Bucket(id bucket.StorageBucketId) (*bucket.StorageBucket, error) {
	var reply buckets.GetReply
	if err := c.call("Buckets.Get", buckets.GetArguments{StorageBucketId: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Bucket, nil
}

// Buckets - one page of buckets
func (c *Client) Buckets(start bucket.StorageBucketId, count int) (*buckets.ListReply, error) {
	arguments := buckets.ListArguments{
		Start: start,
		Count: count,
	}
	var reply buckets.ListReply
	if err := c.call("Buckets.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
