// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
)

// writes each deposited event to the log
type eventLogger struct {
	log   *logger.L
	count uint64
}

func newEventLogger() *eventLogger {
	return &eventLogger{
		log: logger.New("events"),
	}
}

// Run - background.Process, args is the *messagebus.Queue to drain
func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	queue := args.(*messagebus.Queue)

	e.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case message := <-queue.Chan():
			e.record(message)
		}
	}
	e.log.Infof("stopped after: %d events  dropped: %d", e.count, queue.Dropped())
}

func (e *eventLogger) record(message messagebus.Message) {
	e.count += 1

	name := "unknown"
	if event, ok := message.Item.(objectstorage.Event); ok {
		name = event.Name()
	}

	text, err := json.Marshal(message.Item)
	if nil != err {
		e.log.Errorf("%s: %s  marshal error: %s", message.From, name, err)
		return
	}
	e.log.Infof("%s: %s %s", message.From, name, text)
}
