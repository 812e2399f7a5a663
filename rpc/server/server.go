// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/counter"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/bags"
	"github.com/bitmark-inc/bagstore/rpc/buckets"
	"github.com/bitmark-inc/bagstore/rpc/node"
	"github.com/bitmark-inc/bagstore/rpc/settings"
)

// Create - server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, module *objectstorage.Module, events *messagebus.Queue) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, rpcCount, module, events))
	_ = server.Register(bags.New(log, module))
	_ = server.Register(buckets.New(log, module))
	_ = server.Register(settings.New(log, module))

	return server
}
