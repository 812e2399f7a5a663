// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/command/bagstore-cli/rpccalls"
)

type bucketReply struct {
	StorageBucketId bucket.StorageBucketId `json:"storageBucketId"`
	Result          string                 `json:"result"`
}

func runBucket(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("bucket") {
		return ErrRequiredBucketId
	}
	id := bucket.StorageBucketId(c.Uint64("bucket"))

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Bucket(id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runBuckets(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Buckets(bucket.StorageBucketId(c.Uint64("start")), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runCreateBucket(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAccount(c.String("caller"))
	if nil != err {
		return err
	}

	data := &rpccalls.CreateBucketData{
		Caller:           caller,
		AcceptingNewBags: c.Bool("accepting"),
		SizeLimit:        c.Uint64("size-limit"),
		ObjectsLimit:     c.Uint64("objects-limit"),
	}
	if c.IsSet("invite") {
		worker := bucket.WorkerId(c.Uint64("invite"))
		data.InviteWorker = &worker
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := client.CreateBucket(data)
	if nil != err {
		return err
	}

	printJson(m.w, bucketReply{StorageBucketId: id, Result: "created"})
	return nil
}

func runDeleteBucket(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAccount(c.String("caller"))
	if nil != err {
		return err
	}
	if !c.IsSet("bucket") {
		return ErrRequiredBucketId
	}
	id := bucket.StorageBucketId(c.Uint64("bucket"))

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.DeleteBucket(caller, id)
	if nil != err {
		return err
	}

	printJson(m.w, bucketReply{StorageBucketId: id, Result: "deleted"})
	return nil
}

func runInvite(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, id, worker, err := bucketAndWorker(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.Invite(caller, id, worker)
	if nil != err {
		return err
	}

	printJson(m.w, bucketReply{StorageBucketId: id, Result: "invited"})
	return nil
}

func runAcceptInvitation(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, id, worker, err := bucketAndWorker(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.AcceptInvitation(caller, worker, id)
	if nil != err {
		return err
	}

	printJson(m.w, bucketReply{StorageBucketId: id, Result: "accepted"})
	return nil
}

func runUpdateBagBuckets(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAccount(c.String("caller"))
	if nil != err {
		return err
	}
	id, err := checkBagId(c.String("bag"))
	if nil != err {
		return err
	}
	add, err := checkBucketIds(c.String("add"))
	if nil != err {
		return err
	}
	remove, err := checkBucketIds(c.String("remove"))
	if nil != err {
		return err
	}
	if 0 == len(add) && 0 == len(remove) {
		return ErrNothingToUpdate
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.UpdateBucketsForBag(caller, id, add, remove)
	if nil != err {
		return err
	}

	printJson(m.w, resultReply{BagId: id, Result: "updated"})
	return nil
}

func bucketAndWorker(c *cli.Context) (caller account.Account, id bucket.StorageBucketId, worker bucket.WorkerId, err error) {
	caller, err = checkAccount(c.String("caller"))
	if nil != err {
		return
	}
	if !c.IsSet("bucket") {
		err = ErrRequiredBucketId
		return
	}
	if !c.IsSet("worker") {
		err = ErrRequiredWorkerId
		return
	}
	id = bucket.StorageBucketId(c.Uint64("bucket"))
	worker = bucket.WorkerId(c.Uint64("worker"))
	return
}
