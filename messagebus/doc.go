// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a bounded queue carrying domain events from
// the storage module to whatever consumes them
//
// a sender never blocks: when the queue is full the message is
// dropped and counted
package messagebus
