// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bagstore/background"
	"github.com/bitmark-inc/bagstore/messagebus"
)

type drain struct {
	sync.Mutex
	queue    *messagebus.Queue
	received []interface{}
	stopped  bool
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m := <-d.queue.Chan():
			d.Lock()
			d.received = append(d.received, m.Item)
			d.Unlock()
		}
	}
	d.Lock()
	d.stopped = true
	d.Unlock()
}

func (d *drain) count() int {
	d.Lock()
	defer d.Unlock()
	return len(d.received)
}

func TestBackground(t *testing.T) {
	d1 := &drain{queue: messagebus.New(10)}
	d2 := &drain{queue: messagebus.New(10)}

	p := background.Start(background.Processes{d1, d2}, nil)

	d1.queue.Send("test", "a")
	d1.queue.Send("test", "b")
	d2.queue.Send("test", "c")

	deadline := time.Now().Add(time.Second)
	for d1.count() < 2 || d2.count() < 1 {
		if time.Now().After(deadline) {
			t.Fatalf("messages not drained: %d %d", d1.count(), d2.count())
		}
		time.Sleep(time.Millisecond)
	}

	p.Stop()

	assert.True(t, d1.stopped, "first process stopped")
	assert.True(t, d2.stopped, "second process stopped")
	assert.Equal(t, []interface{}{"a", "b"}, d1.received, "first process items")

	// second stop is harmless
	p.Stop()
}
