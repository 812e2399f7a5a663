// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/storage"
)

// Ledger - account balances kept in the ledger database
type Ledger struct {
	sync.Mutex
	log                *logger.L
	store              *storage.Store
	existentialDeposit currency.Balance
}

// New - create a ledger over a store opened on the ledger database
//
// a KeepAlive transfer may not leave the source with less than the
// existential deposit unless it empties the account completely
func New(store *storage.Store, existentialDeposit currency.Balance) (*Ledger, error) {
	if nil == store || nil == store.Pool.Balances {
		return nil, fault.DatabaseIsNotSet
	}
	return &Ledger{
		log:                logger.New("ledger"),
		store:              store,
		existentialDeposit: existentialDeposit,
	}, nil
}

// UsableBalance - current balance of an account
func (l *Ledger) UsableBalance(who account.Account) currency.Balance {
	l.Lock()
	defer l.Unlock()

	n, _ := l.store.Pool.Balances.GetN(who.Bytes())
	return currency.Balance(n)
}

// Transfer - move funds between accounts, all or nothing
func (l *Ledger) Transfer(from account.Account, to account.Account, amount currency.Balance, requirement currency.ExistenceRequirement) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	pool := l.store.Pool.Balances
	fromBalance, _ := trx.GetN(pool, from.Bytes())
	if currency.Balance(fromBalance) < amount {
		return fault.InsufficientBalance
	}
	remaining := currency.Balance(fromBalance) - amount
	if currency.KeepAlive == requirement && 0 != l.existentialDeposit && remaining < l.existentialDeposit {
		return fault.InsufficientBalance
	}
	if from == to || 0 == amount {
		return nil
	}

	toBalance, _ := trx.GetN(pool, to.Bytes())

	// MUTATION SAFE
	setBalance(trx, pool, from, remaining)
	setBalance(trx, pool, to, currency.Balance(toBalance).SaturatingAdd(amount))

	err = trx.Commit()
	logger.PanicIfError("ledger.Transfer", err)

	l.log.Debugf("transfer: %s  from: %s  to: %s", amount, from, to)
	return nil
}

// Slash - burn up to amount from an account
//
// returns the part of amount that could not be burned
func (l *Ledger) Slash(who account.Account, amount currency.Balance) currency.Balance {
	l.Lock()
	defer l.Unlock()

	trx, err := l.store.Begin()
	logger.PanicIfError("ledger.Slash begin", err)
	defer trx.Abort()

	pool := l.store.Pool.Balances
	n, _ := trx.GetN(pool, who.Bytes())
	balance := currency.Balance(n)

	taken := amount
	if taken > balance {
		taken = balance
	}
	setBalance(trx, pool, who, balance-taken)

	err = trx.Commit()
	logger.PanicIfError("ledger.Slash", err)

	l.log.Debugf("slash: %s  from: %s  unslashed: %s", taken, who, amount-taken)
	return amount - taken
}

// Deposit - create new funds in an account
func (l *Ledger) Deposit(who account.Account, amount currency.Balance) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	pool := l.store.Pool.Balances
	n, _ := trx.GetN(pool, who.Bytes())
	setBalance(trx, pool, who, currency.Balance(n).SaturatingAdd(amount))

	err = trx.Commit()
	logger.PanicIfError("ledger.Deposit", err)

	l.log.Infof("deposit: %s  to: %s", amount, who)
	return nil
}

// zero balances are removed
func setBalance(trx storage.Transaction, pool *storage.PoolHandle, who account.Account, balance currency.Balance) {
	if 0 == balance {
		trx.Delete(pool, who.Bytes())
		return
	}
	trx.PutN(pool, who.Bytes(), balance.Uint64())
}
