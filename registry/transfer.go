// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/storage"
	"github.com/deedledger/registryd/tokenid"
)

// Generate - create a token and assign its first owner
//
// restricted to the configured administrator; the token enters the
// global list at the next position so generation order is preserved
func (r *Registry) Generate(caller address.Address, tokenId tokenid.TokenID, beneficiary address.Address) error {
	if caller != r.administrator {
		return fault.NotRegistryAdministrator
	}
	if beneficiary.IsNil() {
		return fault.NilOwner
	}

	trx, err := r.beginUpdate()
	if nil != err {
		return err
	}
	defer r.endUpdate()

	if trx.Has(r.handles.Owners, tokenId[:]) {
		trx.Abort()
		return fault.TokenAlreadyExists
	}

	trx.Put(r.handles.Owners, tokenId[:], beneficiary.Bytes())
	addToHolder(trx, r.handles, beneficiary, tokenId)

	position, _ := trx.GetN(r.handles.GlobalCount, tokenCountKey)
	trx.Put(r.handles.AllTokens, storage.Uint64ToBytes(position), tokenId[:])
	trx.PutN(r.handles.GlobalCount, tokenCountKey, position+1)

	event := r.appendEvent(trx, TransferEvent{
		From:    address.Nil,
		To:      beneficiary,
		TokenId: tokenId,
	})

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	r.log.Infof("generate: token: %s  beneficiary: %s", tokenId, beneficiary)
	r.publish([]interface{}{event})
	return nil
}

// TransferFrom - move a token without consulting the destination
func (r *Registry) TransferFrom(
	caller address.Address,
	from address.Address,
	to address.Address,
	tokenId tokenid.TokenID,
) error {
	return r.transfer(caller, from, to, tokenId, nil, false)
}

// SafeTransferFrom - move a token only if the destination accepts it
//
// destinations without a receive hook accept unconditionally; a hook
// that does not echo the acknowledgement value rolls the whole
// transfer back
func (r *Registry) SafeTransferFrom(
	caller address.Address,
	from address.Address,
	to address.Address,
	tokenId tokenid.TokenID,
	data []byte,
) error {
	return r.transfer(caller, from, to, tokenId, data, true)
}

// the single transfer path
//
// authorization is checked first so a caller without standing cannot
// probe ownership details through the later error codes
func (r *Registry) transfer(
	caller address.Address,
	from address.Address,
	to address.Address,
	tokenId tokenid.TokenID,
	data []byte,
	checked bool,
) error {

	authorized, err := r.IsAuthorized(caller, tokenId)
	if nil != err {
		return err
	}
	if !authorized {
		return fault.TransferNotAuthorized
	}
	if to.IsNil() {
		return fault.TransferToNilAddress
	}

	trx, err := r.beginUpdate()
	if nil != err {
		return err
	}
	defer r.endUpdate()

	// the owner assertion is validated against the pending state so a
	// queued caller cannot act on a record it just lost
	owner := r.ownerInTransaction(trx, tokenId)
	if owner.IsNil() {
		trx.Abort()
		return fault.TokenDoesNotExist
	}
	if owner != from {
		trx.Abort()
		return fault.NotOwnerOfToken
	}

	// an approval can be revoked while this call waits for the lock,
	// so the authorization must also hold against the pending state
	if !r.authorizedInTransaction(trx, caller, owner, tokenId) {
		trx.Abort()
		return fault.TransferNotAuthorized
	}

	events := make([]interface{}, 0, 2)

	if event, cleared := r.clearApprovalForTransfer(trx, from, tokenId); cleared {
		events = append(events, event)
	}

	removeFromHolder(trx, r.handles, from, tokenId)
	addToHolder(trx, r.handles, to, tokenId)
	trx.Put(r.handles.Owners, tokenId[:], to.Bytes())

	events = append(events, r.appendEvent(trx, TransferEvent{
		From:    from,
		To:      to,
		TokenId: tokenId,
	}))

	// the hook observes the pending state; rejection discards it all
	if checked && !r.checkReceiver(caller, from, to, tokenId, data) {
		trx.Abort()
		return fault.TokenNotAccepted
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	r.log.Infof("transfer: from: %s  to: %s  token: %s", from, to, tokenId)
	r.publish(events)
	return nil
}

// authorization as seen through an open transaction
func (r *Registry) authorizedInTransaction(
	trx storage.Transaction,
	operator address.Address,
	owner address.Address,
	tokenId tokenid.TokenID,
) bool {
	if operator == owner {
		return true
	}

	approved := trx.Get(r.handles.TokenApprovals, tokenId[:])
	if nil != approved && string(approved) == string(operator.Bytes()) {
		return true
	}

	key := append(owner.Bytes(), operator.Bytes()...)
	return trx.Has(r.handles.OperatorApprovals, key)
}

// current owner as seen through an open transaction
func (r *Registry) ownerInTransaction(trx storage.Transaction, tokenId tokenid.TokenID) address.Address {
	packed := trx.Get(r.handles.Owners, tokenId[:])
	if nil == packed {
		return address.Nil
	}

	var owner address.Address
	if err := address.AddressFromBytes(&owner, packed); nil != err {
		fault.Panicf("ownerInTransaction: corrupt owner record for token: %s  error: %s", tokenId, err)
	}
	return owner
}
