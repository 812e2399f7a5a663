// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/background"
	"github.com/bitmark-inc/bagstore/counter"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/messagebus"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/certificate"
	"github.com/bitmark-inc/bagstore/rpc/handler"
	"github.com/bitmark-inc/bagstore/rpc/listeners"
	"github.com/bitmark-inc/bagstore/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// number of open client connections
var connectionCountRPC counter.Counter

// Start - bind the configured listeners and serve them in the
// background, nil if nothing is configured
func Start(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	module *objectstorage.Module,
	events *messagebus.Queue,
	version string,
) (*background.T, error) {

	if nil == module {
		return nil, fault.NotInitialised
	}

	log := logger.New("rpc")
	log.Info("starting…")

	processes := background.Processes{}

	if 0 == len(rpcConfiguration.Listen) {
		log.Infof("disable: %s", rpcName)
	} else {
		tlsConfig, err := loadCertificate(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
		if nil != err {
			return nil, err
		}

		rpcListener, err := listeners.NewRPC(
			rpcConfiguration,
			log,
			&connectionCountRPC,
			server.Create(log, version, &connectionCountRPC, module, events),
			tlsConfig,
		)
		if nil != err {
			return nil, err
		}
		processes = append(processes, rpcListener)
	}

	if 0 != len(httpsConfiguration.Listen) {
		tlsConfig, err := loadCertificate(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return nil, err
		}

		hdlr := handler.New(
			log,
			server.Create(log, version, &connectionCountRPC, module, events),
			time.Now(),
			version,
			httpsConfiguration.MaximumConnections,
			module,
		)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, tlsConfig, hdlr)
		if nil != err {
			return nil, err
		}
		processes = append(processes, httpsListener)
	} else {
		log.Infof("disable: %s", httpsName)
	}

	if 0 == len(processes) {
		return nil, nil
	}
	return background.Start(processes, nil), nil
}

// no certificate means a plain socket
func loadCertificate(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, error) {
	if "" == certificateFile && "" == keyFile {
		return nil, nil
	}
	tlsConfig, fingerprint, err := certificate.Load(log, name, certificateFile, keyFile)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fingerprint)
	return tlsConfig, nil
}
