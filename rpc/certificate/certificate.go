// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the RPC listener
package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - build a TLS configuration from PEM data and return the
// fingerprint of its leaf certificate
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read PEM certificate and key files then call Get
func Load(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFile, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s: read private key: %q  error: %s", name, keyFile, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// fingerprint - SHA3-256 of the DER certificate
//
//   openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
