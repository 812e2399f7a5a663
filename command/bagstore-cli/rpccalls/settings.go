// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/rpc/settings"
)

// Settings - current settings, constants and creation policies
func (c *Client) Settings() (*settings.GetReply, error) {
	var reply settings.GetReply
	if err := c.call("Settings.Get", settings.GetArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateBlacklist - leader removes then adds content ids
func (c *Client) UpdateBlacklist(caller account.Account, remove [][]byte, add [][]byte) error {
	arguments := settings.BlacklistArguments{
		Caller: caller,
		Remove: remove,
		Add:    add,
	}
	var reply settings.Reply
	return c.call("Settings.UpdateBlacklist", arguments, &reply)
}

// IsBlacklisted - check one content id
func (c *Client) IsBlacklisted(cid []byte) (bool, error) {
	var reply settings.BlacklistedReply
	if err := c.call("Settings.IsBlacklisted", settings.BlacklistedArguments{ContentId: cid}, &reply); nil != err {
		return false, err
	}
	return reply.Blacklisted, nil
}
