// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync/atomic"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/tokenid"
)

// acknowledgement values a receiver hook must echo to accept a token
var (
	// current protocol: operator aware hook
	ReceiveMagic = [4]byte{0x15, 0x0b, 0x7a, 0x02}

	// first protocol revision: no operator parameter
	LegacyReceiveMagic = [4]byte{0xf0, 0xb9, 0xe5, 0xba}
)

// Receiver - hook consulted before a checked transfer is committed
//
// must return ReceiveMagic to accept; any other value, an error or a
// panic fails this shape and the legacy shape is retried when the
// destination also implements it
type Receiver interface {
	OnTokenReceived(operator address.Address, from address.Address, tokenId tokenid.TokenID, data []byte) ([4]byte, error)
}

// LegacyReceiver - hook shape of the first protocol revision
//
// consulted when the destination does not implement Receiver or when
// its Receiver invocation failed; must return LegacyReceiveMagic to
// accept. the transfer rolls back only after every implemented shape
// has failed
type LegacyReceiver interface {
	ReceivedToken(from address.Address, tokenId tokenid.TokenID, data []byte) ([4]byte, error)
}

// ReceiverFinder - resolve a destination address to its receive hook
//
// a nil result marks a plain account destination, which accepts
// unconditionally
type ReceiverFinder interface {
	ReceiverFor(destination address.Address) interface{}
}

// consult the destination's receive hook
//
// returns true when the destination accepted the token; the callout
// flag is raised for the duration of the hook so that a re-entrant
// mutation fails cleanly instead of deadlocking on the ledger lock
func (r *Registry) checkReceiver(
	operator address.Address,
	from address.Address,
	to address.Address,
	tokenId tokenid.TokenID,
	data []byte,
) bool {
	if nil == r.receivers {
		return true
	}
	hook := r.receivers.ReceiverFor(to)
	if nil == hook {
		return true
	}

	atomic.StoreInt32(&r.callout, 1)
	defer atomic.StoreInt32(&r.callout, 0)

	return r.invokeReceiver(hook, operator, from, tokenId, data)
}

// run the hook invocations, newest shape first
//
// a failing current shape is not final: the legacy shape is retried
// when implemented, and only a destination with no accepting shape
// rejects the token
func (r *Registry) invokeReceiver(
	hook interface{},
	operator address.Address,
	from address.Address,
	tokenId tokenid.TokenID,
	data []byte,
) bool {

	current, isCurrent := hook.(Receiver)
	legacy, isLegacy := hook.(LegacyReceiver)

	if isCurrent && r.invokeCurrentShape(current, operator, from, tokenId, data) {
		return true
	}

	if isLegacy {
		return r.invokeLegacyShape(legacy, from, tokenId, data)
	}

	if !isCurrent {
		// registered but with no recognisable hook shape
		r.log.Warnf("destination registered without a usable hook: %T", hook)
	}
	return false
}

// one current shape invocation with panic containment
func (r *Registry) invokeCurrentShape(
	receiver Receiver,
	operator address.Address,
	from address.Address,
	tokenId tokenid.TokenID,
	data []byte,
) (accepted bool) {

	defer func() {
		if reason := recover(); nil != reason {
			r.log.Warnf("receiver panic treated as failure: %v", reason)
			accepted = false
		}
	}()

	magic, err := receiver.OnTokenReceived(operator, from, tokenId, data)
	if nil != err {
		r.log.Warnf("receiver error: %s", err)
		return false
	}
	return ReceiveMagic == magic
}

// one legacy shape invocation with panic containment
func (r *Registry) invokeLegacyShape(
	receiver LegacyReceiver,
	from address.Address,
	tokenId tokenid.TokenID,
	data []byte,
) (accepted bool) {

	defer func() {
		if reason := recover(); nil != reason {
			r.log.Warnf("legacy receiver panic treated as failure: %v", reason)
			accepted = false
		}
	}()

	magic, err := receiver.ReceivedToken(from, tokenId, data)
	if nil != err {
		r.log.Warnf("legacy receiver error: %s", err)
		return false
	}
	return LegacyReceiveMagic == magic
}
