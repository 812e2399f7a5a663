// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	verbose bool
	dryRun  bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "bagstore-cli"
	app.Usage = "query and drive a bagstored node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " bagstored RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " use a TLS connection",
		},
		cli.BoolFlag{
			Name:  "dry-run, n",
			Usage: " only check that the call would succeed",
		},
	}

	callerFlag := cli.StringFlag{
		Name:  "caller, a",
		Value: "",
		Usage: "*signing `ACCOUNT`",
	}
	bagFlag := cli.StringFlag{
		Name:  "bag, b",
		Value: "",
		Usage: "*bag `ID` [static:council|static:wg:NAME|dynamic:member:N|dynamic:channel:N]",
	}
	bucketFlag := cli.Uint64Flag{
		Name:  "bucket, s",
		Value: 0,
		Usage: "*storage bucket `ID`",
	}
	workerFlag := cli.Uint64Flag{
		Name:  "worker, w",
		Value: 0,
		Usage: "*storage worker `ID`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display bagstored info",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "settings",
			Usage:     "display runtime parameters and creation policies",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runSettings,
		},
		{
			Name:      "bag",
			Usage:     "display a bag",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{bagFlag},
			Action:    runBag,
		},
		{
			Name:      "object",
			Usage:     "display one data object of a bag",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				bagFlag,
				cli.Uint64Flag{
					Name:  "object, o",
					Value: 0,
					Usage: "*data object `ID`",
				},
			},
			Action: runObject,
		},
		{
			Name:      "bucket",
			Usage:     "display a storage bucket",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{bucketFlag},
			Action:    runBucket,
		},
		{
			Name:      "buckets",
			Usage:     "list storage buckets",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first bucket `ID`",
				},
				cli.IntFlag{
					Name:  "count, k",
					Value: 20,
					Usage: " maximum buckets to list `COUNT`",
				},
			},
			Action: runBuckets,
		},
		{
			Name:      "create-bucket",
			Usage:     "create a storage bucket (leader)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				callerFlag,
				cli.Uint64Flag{
					Name:  "invite, i",
					Value: 0,
					Usage: " invite worker `ID`",
				},
				cli.BoolFlag{
					Name:  "accepting, g",
					Usage: " accept new bags",
				},
				cli.Uint64Flag{
					Name:  "size-limit, z",
					Value: 0,
					Usage: " voucher size limit `BYTES`",
				},
				cli.Uint64Flag{
					Name:  "objects-limit, o",
					Value: 0,
					Usage: " voucher objects limit `COUNT`",
				},
			},
			Action: runCreateBucket,
		},
		{
			Name:      "delete-bucket",
			Usage:     "delete an empty storage bucket (leader)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{callerFlag, bucketFlag},
			Action:    runDeleteBucket,
		},
		{
			Name:      "invite",
			Usage:     "invite a worker to operate a bucket (leader)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{callerFlag, bucketFlag, workerFlag},
			Action:    runInvite,
		},
		{
			Name:      "accept-invitation",
			Usage:     "accept a bucket invitation (worker)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{callerFlag, bucketFlag, workerFlag},
			Action:    runAcceptInvitation,
		},
		{
			Name:      "update-bag-buckets",
			Usage:     "add and remove buckets storing a bag (leader)",
			ArgsUsage: "\n   (* = required, + = at least one)",
			Flags: []cli.Flag{
				callerFlag,
				bagFlag,
				cli.StringFlag{
					Name:  "add, d",
					Value: "",
					Usage: "+comma separated bucket `IDS` to add",
				},
				cli.StringFlag{
					Name:  "remove, r",
					Value: "",
					Usage: "+comma separated bucket `IDS` to remove",
				},
			},
			Action: runUpdateBagBuckets,
		},
		{
			Name:      "upload",
			Usage:     "register one data object in a bag",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				bagFlag,
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*deletion prize source `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "size, z",
					Value: 0,
					Usage: "*object size `BYTES`",
				},
				cli.StringFlag{
					Name:  "cid, i",
					Value: "",
					Usage: "*content id `CID`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " expected data size fee `AMOUNT`",
				},
			},
			Action: runUpload,
		},
		{
			Name:      "create-dynamic-bag",
			Usage:     "create a member or channel bag, optionally with one data object",
			ArgsUsage: "\n   (* = required, + = required with cid)",
			Flags: []cli.Flag{
				bagFlag,
				cli.StringFlag{
					Name:  "cid, i",
					Value: "",
					Usage: " initial object content id `CID`",
				},
				cli.Uint64Flag{
					Name:  "size, z",
					Value: 0,
					Usage: "+initial object size `BYTES`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "+deletion prize source `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " expected data size fee `AMOUNT`",
				},
			},
			Action:    runCreateDynamicBag,
		},
		{
			Name:      "delete-dynamic-bag",
			Usage:     "delete a member or channel bag and its objects",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				bagFlag,
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*deletion prize receiver `ACCOUNT`",
				},
			},
			Action: runDeleteDynamicBag,
		},
		{
			Name:      "blacklist",
			Usage:     "check or update the content id blacklist",
			ArgsUsage: "\n   (* = required, + = update requires caller)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "cid, i",
					Value: "",
					Usage: " content id to check `CID`",
				},
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "+signing `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "add, d",
					Usage: "+content id to add `CID`",
				},
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: "+content id to remove `CID`",
				},
			},
			Action: runBlacklist,
		},
		{
			Name:      "version",
			Usage:     "display bagstore-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		m := &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBool("tls"),
			verbose: c.GlobalBool("verbose"),
			dryRun:  c.GlobalBool("dry-run"),
			e:       e,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if _, err := checkConnect(m.connect); nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(e, "connect: %s\n", m.connect)
			fmt.Fprintf(e, "tls:     %t\n", m.useTLS)
			fmt.Fprintf(e, "dry run: %t\n", m.dryRun)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
