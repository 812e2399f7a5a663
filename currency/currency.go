// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/bagstore/account"
)

// ExistenceRequirement - whether a transfer may empty the source
type ExistenceRequirement int

// transfer modes
const (
	AllowDeath ExistenceRequirement = iota
	KeepAlive
)

// Currency - the external ledger capability
//
// Transfer fails with fault.InsufficientBalance and then has no
// effect.  Slash never fails, it burns what it can and returns the
// part of the amount that could not be taken.
type Currency interface {
	Transfer(from account.Account, to account.Account, amount Balance, requirement ExistenceRequirement) error
	UsableBalance(who account.Account) Balance
	Slash(who account.Account, amount Balance) Balance
}
