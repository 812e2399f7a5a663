// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasury - funds held by the module itself
package treasury

import (
	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
)

// Treasury - sovereign account holding deletion prizes
type Treasury struct {
	account  account.Account
	currency currency.Currency
}

// New - treasury of the module named by moduleId
func New(moduleId string, c currency.Currency) *Treasury {
	return &Treasury{
		account:  account.ModuleAccount(moduleId),
		currency: c,
	}
}

// ModuleAccountId - the derived sovereign account
func (t *Treasury) ModuleAccountId() account.Account {
	return t.account
}

// Deposit - move funds from src into the treasury
func (t *Treasury) Deposit(src account.Account, amount currency.Balance) error {
	return t.currency.Transfer(src, t.account, amount, currency.AllowDeath)
}

// Withdraw - pay funds out of the treasury to dest
func (t *Treasury) Withdraw(dest account.Account, amount currency.Balance) error {
	if t.UsableBalance() < amount {
		return fault.InsufficientTreasuryBalance
	}
	return t.currency.Transfer(t.account, dest, amount, currency.AllowDeath)
}

// UsableBalance - funds currently held
func (t *Treasury) UsableBalance() currency.Balance {
	return t.currency.UsableBalance(t.account)
}
