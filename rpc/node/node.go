// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/counter"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - module wide state reported by Info
type Status interface {
	Settings() objectstorage.Settings
	TreasuryBalance() currency.Balance
	ModuleAccount() account.Account
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	status  Status
	counter *counter.Counter
	events  *messagebus.Queue
}

// New - node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, status Status, events *messagebus.Queue) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		status:  status,
		counter: counter,
		events:  events,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version         string                 `json:"version"`
	Uptime          string                 `json:"uptime"`
	RPCs            uint64                 `json:"rpcs"`
	DroppedEvents   uint64                 `json:"droppedEvents"`
	ModuleAccount   account.Account        `json:"moduleAccount"`
	TreasuryBalance currency.Balance       `json:"treasuryBalance"`
	Settings        objectstorage.Settings `json:"settings"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.status {
		return fault.NotInitialised
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	if nil != node.events {
		reply.DroppedEvents = node.events.Dropped()
	}
	reply.ModuleAccount = node.status.ModuleAccount()
	reply.TreasuryBalance = node.status.TreasuryBalance()
	reply.Settings = node.status.Settings()
	return nil
}
