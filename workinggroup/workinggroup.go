// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workinggroup - storage working group authorisation
package workinggroup

import (
	"sync"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fault"
)

// Authority - checks on the identity of a caller
type Authority interface {
	EnsureLeader(caller account.Account) error
	EnsureWorker(caller account.Account, worker bucket.WorkerId) error
	EnsureWorkerExists(worker bucket.WorkerId) error
}

// Group - a working group with a fixed membership
type Group struct {
	sync.RWMutex
	leader  account.Account
	workers map[bucket.WorkerId]account.Account
}

// New - group with a leader and no workers
func New(leader account.Account) *Group {
	return &Group{
		leader:  leader,
		workers: make(map[bucket.WorkerId]account.Account),
	}
}

// Hire - add or replace a worker
func (g *Group) Hire(worker bucket.WorkerId, role account.Account) {
	g.Lock()
	g.workers[worker] = role
	g.Unlock()
}

// Fire - remove a worker
func (g *Group) Fire(worker bucket.WorkerId) {
	g.Lock()
	delete(g.workers, worker)
	g.Unlock()
}

// EnsureLeader - caller must be the leader
func (g *Group) EnsureLeader(caller account.Account) error {
	g.RLock()
	defer g.RUnlock()

	if g.leader.IsZero() || caller != g.leader {
		return fault.NotLeader
	}
	return nil
}

// EnsureWorker - caller must be the role account of worker
func (g *Group) EnsureWorker(caller account.Account, worker bucket.WorkerId) error {
	g.RLock()
	defer g.RUnlock()

	role, ok := g.workers[worker]
	if !ok || role != caller {
		return fault.InvalidWorkerOrigin
	}
	return nil
}

// EnsureWorkerExists - worker must be hired
func (g *Group) EnsureWorkerExists(worker bucket.WorkerId) error {
	g.RLock()
	defer g.RUnlock()

	if _, ok := g.workers[worker]; !ok {
		return fault.StorageProviderOperatorDoesntExist
	}
	return nil
}
