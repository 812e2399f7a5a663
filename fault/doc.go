// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// every failure an operation can report belongs to exactly one class
// so callers can decide on capacity, existence, permission, state,
// balance or plain validation problems without knowing every instance
package fault
