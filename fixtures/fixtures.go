// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test set up
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
)

const (
	LogCategory = "testing"
)

// well known test accounts
var (
	Leader  = makeAccount(0x10)
	Alice   = makeAccount(0x20)
	Bob     = makeAccount(0x30)
	Charlie = makeAccount(0x40)
	Worker1 = makeAccount(0x50)
	Worker2 = makeAccount(0x60)
)

// test worker ids, operated by Worker1 and Worker2
const (
	WorkerId1 = 1
	WorkerId2 = 2
)

var dir string

func makeAccount(fill byte) account.Account {
	a := account.Account{}
	for i := range a {
		a[i] = fill
	}
	return a
}

// SetupTestLogger - log to a temporary directory
func SetupTestLogger() {
	var err error
	dir, err = ioutil.TempDir("", "bagstore-testing")
	if nil != err {
		panic(fmt.Sprintf("create log directory error: %s", err))
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	if "" == dir {
		return
	}
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
