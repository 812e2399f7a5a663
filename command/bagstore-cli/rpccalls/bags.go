// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/bags"
)

// Bag - a bag with its objects
func (c *Client) Bag(id bag.Id) (*bag.Bag, error) {
	var reply bags.GetReply
	if err := c.call("Bags.Get", bags.GetArguments{BagId: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Bag, nil
}

// DataObject - one object of a bag
func (c *Client) DataObject(id bag.Id, objectId bag.DataObjectId) (*bag.DataObject, error) {
	arguments := bags.ObjectArguments{
		BagId:        id,
		DataObjectId: objectId,
	}
	var reply bags.ObjectReply
	if err := c.call("Bags.Object", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply.DataObject, nil
}

// Upload - add objects to a bag
func (c *Client) Upload(dryRun bool, parameters objectstorage.UploadParameters) error {
	arguments := bags.UploadArguments{
		DryRun:     dryRun,
		Parameters: parameters,
	}
	var reply bags.Reply
	return c.call("Bags.Upload", arguments, &reply)
}

// Move - transfer objects between bags
func (c *Client) Move(dryRun bool, src bag.Id, dest bag.Id, ids []bag.DataObjectId) error {
	arguments := bags.MoveArguments{
		DryRun:        dryRun,
		Src:           src,
		Dest:          dest,
		DataObjectIds: ids,
	}
	var reply bags.Reply
	return c.call("Bags.Move", arguments, &reply)
}

// DeleteObjects - remove objects, prizes go to the payer
func (c *Client) DeleteObjects(dryRun bool, payer account.Account, id bag.Id, ids []bag.DataObjectId) error {
	arguments := bags.DeleteObjectsArguments{
		DryRun:        dryRun,
		Payer:         payer,
		BagId:         id,
		DataObjectIds: ids,
	}
	var reply bags.Reply
	return c.call("Bags.DeleteObjects", arguments, &reply)
}

// CreateDynamicBag - new member or channel bag
func (c *Client) CreateDynamicBag(dryRun bool, d bag.DynamicBagId) error {
	arguments := bags.DynamicArguments{
		DryRun:       dryRun,
		DynamicBagId: d,
	}
	var reply bags.Reply
	return c.call("Bags.CreateDynamic", arguments, &reply)
}

// CreateDynamicBagWithObjects - new member or channel bag with objects
func (c *Client) CreateDynamicBagWithObjects(dryRun bool, d bag.DynamicBagId, parameters objectstorage.UploadParameters) error {
	arguments := bags.DynamicWithObjectsArguments{
		DryRun:       dryRun,
		DynamicBagId: d,
		Parameters:   parameters,
	}
	var reply bags.Reply
	return c.call("Bags.CreateDynamicWithObjects", arguments, &reply)
}

// DeleteDynamicBag - remove a dynamic bag, prizes go to the payer
func (c *Client) DeleteDynamicBag(dryRun bool, payer account.Account, d bag.DynamicBagId) error {
	arguments := bags.DynamicArguments{
		DryRun:       dryRun,
		Payer:        payer,
		DynamicBagId: d,
	}
	var reply bags.Reply
	return c.call("Bags.DeleteDynamic", arguments, &reply)
}
