// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/counter"
	"github.com/bitmark-inc/bagstore/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// RPCListener - JSON RPC over plain or TLS sockets
type RPCListener struct {
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	listeners      []net.Listener
}

// NewRPC - bind every listen address, serving starts with Run
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (*RPCListener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses := make([]string, len(configuration.Listen))
	copy(addresses, configuration.Listen)

	// validate all listen addresses
	ipType, err := parseListenAddress(addresses, log)
	if nil != err {
		return nil, err
	}

	r := &RPCListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
	}

	for i, listen := range addresses {
		var l net.Listener
		if nil == tlsConfig {
			l, err = net.Listen(ipType[i], listen)
		} else {
			l, err = tls.Listen(ipType[i], listen, tlsConfig)
		}
		if nil != err {
			log.Errorf("rpc server listen: %s  error: %s", listen, err)
			r.close()
			return nil, err
		}
		log.Infof("listening RPC server: %s", l.Addr())
		r.listeners = append(r.listeners, l)
	}
	return r, nil
}

// Addresses - bound addresses, resolves port zero
func (r *RPCListener) Addresses() []string {
	addresses := make([]string, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// Run - serve until shutdown
func (r *RPCListener) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log
	log.Info("starting…")

	wg := sync.WaitGroup{}
	for _, l := range r.listeners {
		wg.Add(1)
		go func(l net.Listener) {
			doServeRPC(l, r.server, r.maxConnections, log, r.count)
			wg.Done()
		}(l)
	}

	<-shutdown
	r.close()
	wg.Wait()

	log.Info("stopped")
}

func (r *RPCListener) close() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc.server terminated: accept error: %s", err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	log.Info("RPC accept terminated")
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
