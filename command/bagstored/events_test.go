// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bagstore/background"
	"github.com/bitmark-inc/bagstore/bucket"
	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestEventLoggerDrains(t *testing.T) {
	queue := messagebus.New(4)
	e := newEventLogger()

	p := background.Start(background.Processes{e}, queue)

	assert.True(t, queue.Send("storage", objectstorage.StorageBucketDeleted{StorageBucketId: bucket.StorageBucketId(3)}), "first send")
	assert.True(t, queue.Send("storage", "not an event"), "second send")

	deadline := time.Now().Add(2 * time.Second)
	for 0 != len(queue.Chan()) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	p.Stop()

	assert.Equal(t, 0, len(queue.Chan()), "queue not drained")
	assert.Equal(t, uint64(0), queue.Dropped(), "wrong dropped count")
}
