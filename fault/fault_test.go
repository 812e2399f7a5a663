// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/bagstore/fault"
)

var (
	ErrBalanceOne    = fault.BalanceError("balance one")
	ErrExistsOne     = fault.ExistsError("exists one")
	ErrInternalOne   = fault.InternalError("internal one")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrLimitOne      = fault.LimitError("limit one")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrStateOne      = fault.StateError("state one")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		balance    bool
		exists     bool
		internal   bool
		invalid    bool
		limit      bool
		notFound   bool
		permission bool
		process    bool
		state      bool
	}{
		{ErrBalanceOne, true, false, false, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false, false, false},
		{ErrInternalOne, false, false, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false, false, false, false},
		{ErrLimitOne, false, false, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, false, false, true, false, false, false},
		{ErrPermissionOne, false, false, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, false, false, true, false},
		{ErrStateOne, false, false, false, false, false, false, false, false, true},
		{fault.InsufficientTreasuryBalance, true, false, false, false, false, false, false, false, false},
		{fault.DynamicBagExists, false, true, false, false, false, false, false, false, false},
		{fault.VoucherUnderflow, false, false, true, false, false, false, false, false, false},
		{fault.UploadingBlocked, false, false, false, true, false, false, false, false, false},
		{fault.StorageBucketObjectSizeLimitReached, false, false, false, false, true, false, false, false, false},
		{fault.StorageBucketDoesntExist, false, false, false, false, false, true, false, false, false},
		{fault.NotLeader, false, false, false, false, false, false, true, false, false},
		{fault.RateLimiting, false, false, false, false, false, false, false, true, false},
		{fault.DifferentStorageProviderInvited, false, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrBalance(err) != e.balance {
			t.Errorf("%d: expected 'balance' == %v for err = %v", i, e.balance, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInternal(err) != e.internal {
			t.Errorf("%d: expected 'internal' == %v for err = %v", i, e.internal, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLimit(err) != e.limit {
			t.Errorf("%d: expected 'limit' == %v for err = %v", i, e.limit, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
	}
}

// errors are single instances so can be compared directly
func TestComparison(t *testing.T) {
	var err error = fault.EmptyContentId
	if err != fault.EmptyContentId {
		t.Errorf("instance comparison failed for: %v", err)
	}
	if err == fault.ZeroObjectSize {
		t.Errorf("different instances compared equal: %v", err)
	}
}
