// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/listeners"
	"github.com/bitmark-inc/bagstore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultStateDatabase    = "state.leveldb"
	defaultLedgerDatabase   = "ledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "bagstored.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the two stores
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	State     string `gluamapper:"state" json:"state"`
	Ledger    string `gluamapper:"ledger" json:"ledger"`
}

// WorkerType - one hired storage worker
type WorkerType struct {
	Id      uint64 `gluamapper:"id" json:"id"`
	Account string `gluamapper:"account" json:"account"`
}

// WorkingGroupType - the storage working group
type WorkingGroupType struct {
	Leader  string       `gluamapper:"leader" json:"leader"`
	Workers []WorkerType `gluamapper:"workers" json:"workers"`
}

// GenesisType - initial balance of an account
type GenesisType struct {
	Account string `gluamapper:"account" json:"account"`
	Balance uint64 `gluamapper:"balance" json:"balance"`
}

// Configuration - everything the daemon reads from its file
type Configuration struct {
	DataDirectory      string                       `gluamapper:"data_directory" json:"data_directory"`
	PidFile            string                       `gluamapper:"pidfile" json:"pidfile"`
	Database           DatabaseType                 `gluamapper:"database" json:"database"`
	Salt               string                       `gluamapper:"salt" json:"salt"`
	ExistentialDeposit uint64                       `gluamapper:"existential_deposit" json:"existential_deposit"`
	EventQueueSize     int                          `gluamapper:"event_queue_size" json:"event_queue_size"`
	WorkingGroup       WorkingGroupType             `gluamapper:"working_group" json:"working_group"`
	Genesis            []GenesisType                `gluamapper:"genesis" json:"genesis"`
	Storage            objectstorage.Parameters     `gluamapper:"storage" json:"storage"`
	ClientRPC          listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC           listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging            logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		EventQueueSize: messagebus.DefaultQueueSize,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			State:     defaultStateDatabase,
			Ledger:    defaultLedgerDatabase,
		},

		Storage: objectstorage.DefaultParameters(),

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Storage.Validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// HTTPS always needs a certificate, client RPC is plain without one
	if 0 != len(options.HttpsRPC.Listen) {
		if "" == options.HttpsRPC.Certificate {
			options.HttpsRPC.Certificate = defaultCertificateFile
		}
		if "" == options.HttpsRPC.PrivateKey {
			options.HttpsRPC.PrivateKey = defaultKeyFile
		}
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.State, &options.Database.Directory},
		{&options.Database.Ledger, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	if options.Database.State == options.Database.Ledger {
		return nil, fmt.Errorf("Files: state and ledger share: %q", options.Database.State)
	}

	// done
	return options, nil
}
