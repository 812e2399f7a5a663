// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bagstore/command/bagstore-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runSettings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Settings()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
