// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/rpc/handler"
)

const (
	httpsLogName     = "http_rpc"
	readWriteTimeout = 10 * time.Second
	keepAlivePeriod  = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// HTTPSListener - JSON RPC over HTTPS POST plus status pages
type HTTPSListener struct {
	log       *logger.L
	server    *http.Server
	listeners []net.Listener
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// NewHTTPS - bind every listen address, nil listener if none configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (*HTTPSListener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if nil == tlsConfig {
		log.Errorf("missing %s certificate", httpsLogName)
		return nil, fault.MissingParameters
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	mux := http.NewServeMux()
	mux.HandleFunc("/bagstore/rpc", hdlr.RPC)
	mux.HandleFunc("/bagstore/details", hdlr.Details)
	mux.HandleFunc("/", hdlr.Root)

	cfg := tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	h := &HTTPSListener{
		log: log,
		server: &http.Server{
			Handler:        mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
			TLSConfig:      cfg,
		},
	}

	addresses := make([]string, len(configuration.Listen))
	copy(addresses, configuration.Listen)
	ipType, err := parseListenAddress(addresses, log)
	if nil != err {
		return nil, err
	}

	for i, listen := range addresses {
		ln, err := net.Listen(ipType[i], listen)
		if nil != err {
			log.Errorf("%s listen: %s  error: %s", httpsLogName, listen, err)
			h.close()
			return nil, err
		}
		log.Infof("listening %s server: %s", httpsLogName, ln.Addr())
		h.listeners = append(h.listeners, ln)
	}

	return h, nil
}

// Addresses - bound addresses, resolves port zero
func (h *HTTPSListener) Addresses() []string {
	addresses := make([]string, len(h.listeners))
	for i, l := range h.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// Run - serve until shutdown
func (h *HTTPSListener) Run(args interface{}, shutdown <-chan struct{}) {
	log := h.log
	log.Info("starting…")

	wg := sync.WaitGroup{}
	for _, ln := range h.listeners {
		wg.Add(1)
		go func(ln net.Listener) {
			tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, h.server.TLSConfig)
			err := h.server.Serve(tlsListener)
			if http.ErrServerClosed != err {
				log.Errorf("%s serve error: %s", httpsLogName, err)
			}
			wg.Done()
		}(ln)
	}

	<-shutdown
	_ = h.server.Close()
	h.close()
	wg.Wait()

	log.Info("stopped")
}

func (h *HTTPSListener) close() {
	for _, ln := range h.listeners {
		_ = ln.Close()
	}
}
