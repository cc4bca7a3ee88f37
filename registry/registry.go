// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"
	"sync/atomic"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/eventbus"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/storage"
)

// Handles - the storage pools the registry operates on
type Handles struct {
	Owners            *storage.PoolHandle
	OwnerCount        *storage.PoolHandle
	OwnerList         *storage.PoolHandle
	OwnerTokenIndex   *storage.PoolHandle
	AllTokens         *storage.PoolHandle
	GlobalCount       *storage.PoolHandle
	TokenApprovals    *storage.PoolHandle
	OperatorApprovals *storage.PoolHandle
	Events            *storage.PoolHandle
}

// Registry - a single token ledger
//
// all mutating operations are serialised by the embedded lock; the
// receiver callback of a checked transfer runs while the callout flag
// is raised so that a re-entrant mutation attempt fails cleanly
// instead of deadlocking
type Registry struct {
	sync.Mutex

	log           *logger.L
	handles       Handles
	name          string
	symbol        string
	administrator address.Address

	// own lock so reads stay possible during a mutating operation
	providerLock sync.RWMutex
	provider     MetadataProvider
	uriCache     *cache.Cache

	receivers ReceiverFinder
	bus       *eventbus.Bus

	callout int32
}

const (
	uriCacheExpiry  = 5 * time.Minute
	uriCacheCleanup = 10 * time.Minute
)

// New - create a ledger bound to a set of storage pools
//
// the administrator is the only caller allowed to generate tokens and
// to change the metadata provider; receivers may be nil when no
// destination can carry a receive hook
func New(
	name string,
	symbol string,
	administrator address.Address,
	handles Handles,
	receivers ReceiverFinder,
	bus *eventbus.Bus,
) (*Registry, error) {

	if administrator.IsNil() {
		return nil, fault.NilAddress
	}
	if nil == bus {
		bus = eventbus.New()
	}

	r := &Registry{
		log:           logger.New("registry"),
		handles:       handles,
		name:          name,
		symbol:        symbol,
		administrator: administrator,
		uriCache:      cache.New(uriCacheExpiry, uriCacheCleanup),
		receivers:     receivers,
		bus:           bus,
	}
	return r, nil
}

// Name - the collection name
func (r *Registry) Name() string {
	return r.name
}

// Symbol - the collection symbol
func (r *Registry) Symbol() string {
	return r.symbol
}

// Administrator - the configured administrator address
func (r *Registry) Administrator() address.Address {
	return r.administrator
}

// Bus - the live notification feed
func (r *Registry) Bus() *eventbus.Bus {
	return r.bus
}

// begin a mutating operation
//
// returns the open database transaction; fails if called from inside
// a receiver callback of a transfer in progress
func (r *Registry) beginUpdate() (storage.Transaction, error) {
	if 1 == atomic.LoadInt32(&r.callout) {
		return nil, fault.LedgerIsBusy
	}
	r.Lock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		r.Unlock()
		return nil, err
	}
	return trx, nil
}

// release the lock taken by beginUpdate
func (r *Registry) endUpdate() {
	r.Unlock()
}
