// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a bagstored
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	} else {
		conn, err = net.Dial("tcp", connect)
	}
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the bagstored connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call with optional tracing of the request and reply
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" arguments", arguments)
	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}
	c.printJson(method+" reply", reply)
	return nil
}

func (c *Client) printJson(title string, message interface{}) {

	if !c.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
