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

// value stored for an active operator approval record
var operatorApprovalFlag = []byte{0x01}

// GetApproved - the address approved to move a single token
//
// the nil address when no approval is outstanding
func (r *Registry) GetApproved(tokenId tokenid.TokenID) (address.Address, error) {
	if !r.Exists(tokenId) {
		return address.Nil, fault.TokenDoesNotExist
	}

	packed := r.handles.TokenApprovals.Get(tokenId[:])
	if nil == packed {
		return address.Nil, nil
	}

	var approved address.Address
	if err := address.AddressFromBytes(&approved, packed); nil != err {
		fault.Panicf("GetApproved: corrupt approval record for token: %s  error: %s", tokenId, err)
	}
	return approved, nil
}

// IsApprovedForAll - check a blanket operator approval
func (r *Registry) IsApprovedForAll(operator address.Address, owner address.Address) bool {
	if operator.IsNil() || owner.IsNil() {
		return false
	}
	key := append(owner.Bytes(), operator.Bytes()...)
	return r.handles.OperatorApprovals.Has(key)
}

// IsAuthorized - check whether an operator may move a token
//
// true for the owner itself, for the single token approvee and for a
// blanket approved operator of the owner
func (r *Registry) IsAuthorized(operator address.Address, tokenId tokenid.TokenID) (bool, error) {
	if operator.IsNil() {
		return false, fault.NilOperator
	}

	owner := r.OwnerOf(tokenId)
	if owner.IsNil() {
		return false, fault.TokenDoesNotExist
	}

	if operator == owner {
		return true, nil
	}

	approved, err := r.GetApproved(tokenId)
	if nil != err {
		return false, err
	}
	if operator == approved {
		return true, nil
	}

	return r.IsApprovedForAll(operator, owner), nil
}

// Approve - set or clear the single token approval
//
// only the owner or a blanket approved operator of the owner may call;
// approving the already approved address is a silent success, all
// other changes overwrite the previous approvee
func (r *Registry) Approve(caller address.Address, operator address.Address, tokenId tokenid.TokenID) error {
	if caller.IsNil() {
		return fault.NilAddress
	}
	if operator.IsNil() {
		return fault.NilOperator
	}

	owner := r.OwnerOf(tokenId)
	if owner.IsNil() {
		return fault.TokenDoesNotExist
	}
	if operator == owner {
		return fault.SelfApproval
	}
	if caller != owner && !r.IsApprovedForAll(caller, owner) {
		return fault.TransferNotAuthorized
	}

	trx, err := r.beginUpdate()
	if nil != err {
		return err
	}
	defer r.endUpdate()

	current := trx.Get(r.handles.TokenApprovals, tokenId[:])
	if string(current) == string(operator.Bytes()) {
		trx.Abort()
		return nil
	}

	trx.Put(r.handles.TokenApprovals, tokenId[:], operator.Bytes())
	event := r.appendEvent(trx, ApprovalEvent{
		Owner:    owner,
		Approved: operator,
		TokenId:  tokenId,
	})

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	r.log.Infof("approve: owner: %s  operator: %s  token: %s", owner, operator, tokenId)
	r.publish([]interface{}{event})
	return nil
}

// ClearApproval - remove the single token approval
//
// only the owner or a blanket approved operator of the owner may call;
// fails if no approval is outstanding
func (r *Registry) ClearApproval(caller address.Address, tokenId tokenid.TokenID) error {
	if caller.IsNil() {
		return fault.NilAddress
	}

	owner := r.OwnerOf(tokenId)
	if owner.IsNil() {
		return fault.TokenDoesNotExist
	}
	if caller != owner && !r.IsApprovedForAll(caller, owner) {
		return fault.TransferNotAuthorized
	}

	trx, err := r.beginUpdate()
	if nil != err {
		return err
	}
	defer r.endUpdate()

	if !trx.Has(r.handles.TokenApprovals, tokenId[:]) {
		trx.Abort()
		return fault.ApprovalNotSet
	}

	trx.Delete(r.handles.TokenApprovals, tokenId[:])
	event := r.appendEvent(trx, ApprovalEvent{
		Owner:    owner,
		Approved: address.Nil,
		TokenId:  tokenId,
	})

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	r.log.Infof("clear approval: owner: %s  token: %s", owner, tokenId)
	r.publish([]interface{}{event})
	return nil
}

// SetApprovalForAll - grant or revoke a blanket operator approval
//
// the toggle is strict: granting an already granted approval or
// revoking an absent one fails instead of silently succeeding
func (r *Registry) SetApprovalForAll(caller address.Address, operator address.Address, authorized bool) error {
	if caller.IsNil() {
		return fault.NilAddress
	}
	if operator.IsNil() {
		return fault.NilOperator
	}
	if operator == caller {
		return fault.SelfApproval
	}

	trx, err := r.beginUpdate()
	if nil != err {
		return err
	}
	defer r.endUpdate()

	key := append(caller.Bytes(), operator.Bytes()...)
	present := trx.Has(r.handles.OperatorApprovals, key)

	if authorized {
		if present {
			trx.Abort()
			return fault.RedundantOperatorApproval
		}
		trx.Put(r.handles.OperatorApprovals, key, operatorApprovalFlag)
	} else {
		if !present {
			trx.Abort()
			return fault.OperatorApprovalNotSet
		}
		trx.Delete(r.handles.OperatorApprovals, key)
	}

	event := r.appendEvent(trx, ApprovalForAllEvent{
		Owner:      caller,
		Operator:   operator,
		Authorized: authorized,
	})

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	r.log.Infof("set operator: owner: %s  operator: %s  authorized: %t", caller, operator, authorized)
	r.publish([]interface{}{event})
	return nil
}

// clear an outstanding approval as part of a transfer
//
// runs inside the caller's transaction; no event when no approval was
// outstanding
func (r *Registry) clearApprovalForTransfer(
	trx storage.Transaction,
	owner address.Address,
	tokenId tokenid.TokenID,
) (interface{}, bool) {
	if !trx.Has(r.handles.TokenApprovals, tokenId[:]) {
		return nil, false
	}
	trx.Delete(r.handles.TokenApprovals, tokenId[:])
	event := r.appendEvent(trx, ApprovalEvent{
		Owner:    owner,
		Approved: address.Nil,
		TokenId:  tokenId,
	})
	return event, true
}
