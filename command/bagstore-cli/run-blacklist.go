// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type blacklistReply struct {
	ContentId   string `json:"contentId,omitempty"`
	Blacklisted bool   `json:"blacklisted"`
	Added       int    `json:"added,omitempty"`
	Removed     int    `json:"removed,omitempty"`
}

func runBlacklist(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	add := contentIds(c.StringSlice("add"))
	remove := contentIds(c.StringSlice("remove"))
	cid := c.String("cid")

	if 0 == len(add) && 0 == len(remove) && "" == cid {
		return ErrRequiredContentId
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply := blacklistReply{}

	if 0 != len(add) || 0 != len(remove) {
		caller, err := checkAccount(c.String("caller"))
		if nil != err {
			return err
		}
		err = client.UpdateBlacklist(caller, remove, add)
		if nil != err {
			return err
		}
		reply.Added = len(add)
		reply.Removed = len(remove)
	}

	if "" != cid {
		blocked, err := client.IsBlacklisted([]byte(cid))
		if nil != err {
			return err
		}
		reply.ContentId = cid
		reply.Blacklisted = blocked
	}

	printJson(m.w, reply)
	return nil
}

func contentIds(items []string) [][]byte {
	ids := make([][]byte, 0, len(items))
	for _, s := range items {
		if "" != s {
			ids = append(ids, []byte(s))
		}
	}
	return ids
}
