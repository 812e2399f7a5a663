// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/workinggroup"
)

// Deposit - one genesis balance
type Deposit struct {
	Account account.Account
	Balance currency.Balance
}

// Group - the working group with its leader and hired workers
func (c *Configuration) Group() (*workinggroup.Group, error) {
	leader, err := account.FromBase58(c.WorkingGroup.Leader)
	if nil != err {
		return nil, fmt.Errorf("working group leader: %q  error: %s", c.WorkingGroup.Leader, err)
	}

	group := workinggroup.New(leader)
	seen := make(map[uint64]struct{})
	for _, w := range c.WorkingGroup.Workers {
		if _, ok := seen[w.Id]; ok {
			return nil, fmt.Errorf("worker: %d  hired twice", w.Id)
		}
		seen[w.Id] = struct{}{}

		role, err := account.FromBase58(w.Account)
		if nil != err {
			return nil, fmt.Errorf("worker: %d  account: %q  error: %s", w.Id, w.Account, err)
		}
		group.Hire(bucket.WorkerId(w.Id), role)
	}
	return group, nil
}

// Deposits - genesis balances in file order
func (c *Configuration) Deposits() ([]Deposit, error) {
	deposits := make([]Deposit, 0, len(c.Genesis))
	for _, g := range c.Genesis {
		a, err := account.FromBase58(g.Account)
		if nil != err {
			return nil, fmt.Errorf("genesis account: %q  error: %s", g.Account, err)
		}
		deposits = append(deposits, Deposit{
			Account: a,
			Balance: currency.Balance(g.Balance),
		})
	}
	return deposits, nil
}
