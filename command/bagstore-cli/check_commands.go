// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
)

var (
	ErrRequiredAccount   = fault.InvalidError("account is required")
	ErrRequiredBagId     = fault.InvalidError("bag id is required")
	ErrRequiredBucketId  = fault.InvalidError("bucket id is required")
	ErrRequiredConnect   = fault.InvalidError("connect is required")
	ErrRequiredContentId = fault.InvalidError("content id is required")
	ErrRequiredDynamic   = fault.InvalidError("a dynamic bag id is required")
	ErrRequiredSize      = fault.InvalidError("object size is required")
	ErrRequiredWorkerId  = fault.InvalidError("worker id is required")
	ErrNothingToUpdate   = fault.InvalidError("nothing to update")
)

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// account in base58 form is required
func checkAccount(s string) (account.Account, error) {
	if "" == s {
		return account.Account{}, ErrRequiredAccount
	}
	return account.FromBase58(s)
}

// bag id text form is required
func checkBagId(s string) (bag.Id, error) {
	if "" == s {
		return bag.Id{}, ErrRequiredBagId
	}
	return bag.ParseId(s)
}

// only member and channel bags
func checkDynamicBagId(s string) (bag.DynamicBagId, error) {
	id, err := checkBagId(s)
	if nil != err {
		return bag.DynamicBagId{}, err
	}
	d, ok := id.DynamicId()
	if !ok {
		return bag.DynamicBagId{}, ErrRequiredDynamic
	}
	return d, nil
}

// comma separated bucket ids, empty gives an empty set
func checkBucketIds(s string) (bucket.IdSet, error) {
	ids := bucket.NewIdSet()
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" == item {
			continue
		}
		n, err := strconv.ParseUint(item, 10, 64)
		if nil != err {
			return nil, err
		}
		ids.Add(bucket.StorageBucketId(n))
	}
	return ids, nil
}
