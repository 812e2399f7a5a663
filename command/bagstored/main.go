// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/background"
	"github.com/bitmark-inc/bagstore/configuration"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/ledger"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/picker"
	"github.com/bitmark-inc/bagstore/rpc"
	"github.com/bitmark-inc/bagstore/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("state database: %q", theConfiguration.Database.State)
	log.Infof("ledger database: %q", theConfiguration.Database.Ledger)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)

	// start the data storage
	log.Info("initialise storage")
	state, err := storage.Open(theConfiguration.Database.State, storage.StateDatabase, false)
	if nil != err {
		log.Criticalf("state storage open error: %s", err)
		exitwithstatus.Message("state storage open error: %s", err)
	}
	defer state.Close()

	ledgerStore, err := storage.Open(theConfiguration.Database.Ledger, storage.LedgerDatabase, false)
	if nil != err {
		log.Criticalf("ledger storage open error: %s", err)
		exitwithstatus.Message("ledger storage open error: %s", err)
	}
	defer ledgerStore.Close()

	log.Info("initialise ledger")
	balances, err := ledger.New(ledgerStore, currency.Balance(theConfiguration.ExistentialDeposit))
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	// these commands are allowed to access the databases
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration, balances) {
		return
	}

	group, err := theConfiguration.Group()
	if nil != err {
		log.Criticalf("working group error: %s", err)
		exitwithstatus.Message("working group error: %s", err)
	}

	events := messagebus.New(theConfiguration.EventQueueSize)

	log.Info("initialise object storage")
	module, err := objectstorage.New(
		theConfiguration.Storage,
		state,
		balances,
		group,
		picker.SaltedRandomness{Salt: []byte(theConfiguration.Salt)},
		events,
	)
	if nil != err {
		log.Criticalf("object storage initialise error: %s", err)
		exitwithstatus.Message("object storage initialise error: %s", err)
	}
	log.Infof("module account: %s", module.ModuleAccount())

	// drain the event queue into the log
	eventProcesses := background.Start(background.Processes{newEventLogger()}, events)
	defer eventProcesses.Stop()

	// start up the rpc background processes
	rpcProcesses, err := rpc.Start(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, module, events, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if nil != rpcProcesses {
		defer rpcProcesses.Stop()
	}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
