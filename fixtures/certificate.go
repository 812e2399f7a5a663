// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/certgen"
)

// Certificate - self signed PEM certificate and key for 127.0.0.1
func Certificate() (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	certificate, key, err := certgen.NewTLSCertPair("bagstore testing", validUntil, true, []string{"127.0.0.1", "localhost"})
	if nil != err {
		panic(fmt.Sprintf("generate certificate error: %s", err))
	}
	return string(certificate), string(key)
}
