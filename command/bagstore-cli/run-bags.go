// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/objectstorage"
)

type resultReply struct {
	DryRun bool   `json:"dryRun"`
	BagId  bag.Id `json:"bagId"`
	Result string `json:"result"`
}

func runBag(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkBagId(c.String("bag"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Bag(id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runObject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkBagId(c.String("bag"))
	if nil != err {
		return err
	}
	objectId := bag.DataObjectId(c.Uint64("object"))

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DataObject(id, objectId)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runUpload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkBagId(c.String("bag"))
	if nil != err {
		return err
	}
	payer, err := checkAccount(c.String("payer"))
	if nil != err {
		return err
	}
	size := c.Uint64("size")
	if 0 == size {
		return ErrRequiredSize
	}
	cid := c.String("cid")
	if "" == cid {
		return ErrRequiredContentId
	}

	parameters := objectstorage.UploadParameters{
		BagId: id,
		ObjectCreationList: []objectstorage.DataObjectCreationParameters{
			{Size: size, IpfsContentId: []byte(cid)},
		},
		DeletionPrizeSourceAccountId: payer,
		ExpectedDataSizeFee:          currency.Balance(c.Uint64("fee")),
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.Upload(m.dryRun, parameters)
	if nil != err {
		return err
	}

	printJson(m.w, resultReply{DryRun: m.dryRun, BagId: id, Result: "uploaded"})
	return nil
}

func runCreateDynamicBag(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	d, err := checkDynamicBagId(c.String("bag"))
	if nil != err {
		return err
	}

	cid := c.String("cid")
	var parameters objectstorage.UploadParameters
	if "" != cid {
		payer, err := checkAccount(c.String("payer"))
		if nil != err {
			return err
		}
		size := c.Uint64("size")
		if 0 == size {
			return ErrRequiredSize
		}
		parameters = objectstorage.UploadParameters{
			BagId: d.BagId(),
			ObjectCreationList: []objectstorage.DataObjectCreationParameters{
				{Size: size, IpfsContentId: []byte(cid)},
			},
			DeletionPrizeSourceAccountId: payer,
			ExpectedDataSizeFee:          currency.Balance(c.Uint64("fee")),
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" == cid {
		err = client.CreateDynamicBag(m.dryRun, d)
	} else {
		err = client.CreateDynamicBagWithObjects(m.dryRun, d, parameters)
	}
	if nil != err {
		return err
	}

	printJson(m.w, resultReply{DryRun: m.dryRun, BagId: d.BagId(), Result: "created"})
	return nil
}

func runDeleteDynamicBag(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	d, err := checkDynamicBagId(c.String("bag"))
	if nil != err {
		return err
	}
	payer, err := checkAccount(c.String("payer"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.DeleteDynamicBag(m.dryRun, payer, d)
	if nil != err {
		return err
	}

	printJson(m.w, resultReply{DryRun: m.dryRun, BagId: d.BagId(), Result: "deleted"})
	return nil
}
