// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/fixtures"
	"github.com/bitmark-inc/bagstore/rpc/certificate"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.Certificate()

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "junk", "junk")
	assert.NotNil(t, err, "junk accepted")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "bagstore-certificate")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	cer, key := fixtures.Certificate()
	cerFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	require.Nil(t, ioutil.WriteFile(cerFile, []byte(cer), 0600), "write certificate")
	require.Nil(t, ioutil.WriteFile(keyFile, []byte(key), 0600), "write key")

	log := logger.New(fixtures.LogCategory)
	_, fingerprint, err := certificate.Load(log, "test", cerFile, keyFile)
	require.Nil(t, err, "load")

	_, expected, _ := certificate.Get(log, "test", cer, key)
	assert.Equal(t, expected, fingerprint, "same fingerprint")

	_, _, err = certificate.Load(log, "test", filepath.Join(dir, "missing.crt"), keyFile)
	assert.True(t, os.IsNotExist(err), "missing file")
}
