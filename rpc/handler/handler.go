// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/counter"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/node"
)

// Handler - HTTP endpoints of the daemon
type Handler interface {
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Root(w http.ResponseWriter, r *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	count              counter.Counter
	status             node.Status
	allow              map[string][]*net.IPNet
}

// New - handler serving JSON RPC requests over HTTP POST
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
	status node.Status,
) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
		status:             status,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - networks permitted on each restricted path
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	if nil == r.Body {
		sendBadRequest(w)
		return
	}

	var out bytes.Buffer
	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: &out})
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Bytes())
}

// Details - node status for a GET from an allowed address
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.isAllowed("details", r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}
	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	type theReply struct {
		Version         string                 `json:"version"`
		Uptime          string                 `json:"uptime"`
		Connections     uint64                 `json:"connections"`
		ModuleAccount   account.Account        `json:"moduleAccount"`
		TreasuryBalance currency.Balance       `json:"treasuryBalance"`
		Settings        objectstorage.Settings `json:"settings"`
	}

	reply := theReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.count.Uint64(),
	}
	if nil != h.status {
		reply.ModuleAccount = h.status.ModuleAccount()
		reply.TreasuryBalance = h.status.TreasuryBalance()
		reply.Settings = h.status.Settings()
	}

	sendReply(w, reply)
}

func (h *handler) enter() bool {
	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		return false
	}
	return true
}

func (h *handler) isAllowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendBadRequest(w http.ResponseWriter) {
	sendError(w, "bad request", http.StatusBadRequest)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
