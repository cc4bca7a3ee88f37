// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deedledger/registryd/counter"
	"github.com/deedledger/registryd/registry"
	"github.com/deedledger/registryd/rpc/owner"
	"github.com/deedledger/registryd/rpc/registryapi"
	"github.com/deedledger/registryd/rpc/token"
)

// Create - make a server instance with all handlers registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, r *registry.Registry) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(token.New(log, r))
	_ = server.Register(owner.New(log, r))
	_ = server.Register(registryapi.New(log, start, version, rpcCount, r))

	return server
}
