// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registryapi

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/counter"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/registry"
	"github.com/deedledger/registryd/rpc/ratelimit"
)

// Registry - type for the RPC
type Registry struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Counter  *counter.Counter
	Registry *registry.Registry
}

const (
	// MaximumEventsCount - upper limit for one history call
	MaximumEventsCount = 100

	// MaximumListCount - upper limit for one global listing call
	MaximumListCount = 100

	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// New - create the registry RPC handler
func New(log *logger.L, start time.Time, version string, connections *counter.Counter, r *registry.Registry) *Registry {
	return &Registry{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Start:    start,
		Version:  version,
		Counter:  connections,
		Registry: r,
	}
}

// Registry info
// -------------

// InfoArguments - empty arguments for RPC
type InfoArguments struct{}

// InfoReply - result of info RPC
type InfoReply struct {
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Administrator address.Address `json:"administrator"`
	TotalSupply   uint64          `json:"totalSupply,string"`
	EventCount    uint64          `json:"eventCount,string"`
	Version       string          `json:"version"`
	Uptime        string          `json:"uptime"`
	Connections   uint64          `json:"connections"`
}

// Info - the ledger identity and serving state
func (r *Registry) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	reply.Name = r.Registry.Name()
	reply.Symbol = r.Registry.Symbol()
	reply.Administrator = r.Registry.Administrator()
	reply.TotalSupply = r.Registry.TotalSupply()
	reply.EventCount = r.Registry.EventCount()
	reply.Version = r.Version
	reply.Uptime = time.Since(r.Start).String()
	reply.Connections = r.Counter.Uint64()
	return nil
}

// Registry capability
// -------------------

// CapabilityArguments - arguments for RPC
type CapabilityArguments struct {
	Selector string `json:"selector"` // 8 hex digits
}

// CapabilityReply - result of capability RPC
type CapabilityReply struct {
	Selector  string `json:"selector"`
	Supported bool   `json:"supported"`
}

// Capability - capability discovery
func (r *Registry) Capability(arguments *CapabilityArguments, reply *CapabilityReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Registry.Capability: %+v", arguments)

	decoded, err := hex.DecodeString(arguments.Selector)
	if nil != err || 4 != len(decoded) {
		return fault.InvalidInterfaceSelector
	}

	var id registry.InterfaceID
	copy(id[:], decoded)

	reply.Selector = arguments.Selector
	reply.Supported = r.Registry.SupportsInterface(id)
	return nil
}

// Registry list
// -------------

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"` // first global position
	Count int    `json:"count"`        // number of records
}

// ListReply - result of global listing RPC
type ListReply struct {
	Next   uint64                 `json:"next,string"` // start value for the next call
	Tokens []registry.TokenRecord `json:"tokens"`
}

// List - page through all tokens in generation order
func (r *Registry) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	r.Log.Infof("Registry.List: %+v", arguments)

	records, err := r.Registry.ListTokens(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Tokens = records

	// always assign so a reused reply cannot carry a stale value
	reply.Next = 0
	if len(records) == arguments.Count {
		reply.Next = arguments.Start + uint64(len(records))
	}
	return nil
}

// Registry events
// ---------------

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"` // first event sequence
	Count int    `json:"count"`        // number of records
}

// EventsReply - result of event history RPC
type EventsReply struct {
	Next   uint64           `json:"next,string"` // start value for the next call
	Events []registry.Event `json:"events"`
}

// Events - page through the notification history
func (r *Registry) Events(arguments *EventsArguments, reply *EventsReply) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, MaximumEventsCount); nil != err {
		return err
	}

	r.Log.Infof("Registry.Events: %+v", arguments)

	events, err := r.Registry.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = events

	// always assign so a reused reply cannot carry a stale value
	reply.Next = arguments.Start
	if len(events) > 0 {
		reply.Next = events[len(events)-1].Sequence + 1
	}
	return nil
}
