// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package objectstorage - the storage module: buckets, bags, data
// objects and their deletion prizes
//
// operations fall into three groups:
//
//   leader       bucket life cycle, bag to bucket assignment, settings
//   operator     invitation acceptance, bucket status and limits,
//                acceptance of uploaded objects
//   DataObjectStorage
//                upload, move and delete of objects, creation and
//                deletion of dynamic bags
//
// each operation is all or nothing and deposits one event on success
package objectstorage
