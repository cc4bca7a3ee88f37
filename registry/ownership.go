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

// OwnerOf - the current owner of a token
//
// the nil address marks a token that was never generated
func (r *Registry) OwnerOf(tokenId tokenid.TokenID) address.Address {
	packed := r.handles.Owners.Get(tokenId[:])
	if nil == packed {
		return address.Nil
	}

	var owner address.Address
	if err := address.AddressFromBytes(&owner, packed); nil != err {
		fault.Panicf("OwnerOf: corrupt owner record for token: %s  error: %s", tokenId, err)
	}
	return owner
}

// Exists - check whether a token has been generated
func (r *Registry) Exists(tokenId tokenid.TokenID) bool {
	return r.handles.Owners.Has(tokenId[:])
}

// BalanceOf - number of tokens held by an owner
//
// the nil address holds nothing so its balance is zero
func (r *Registry) BalanceOf(owner address.Address) uint64 {
	if owner.IsNil() {
		return 0
	}
	count, _ := r.handles.OwnerCount.GetN(owner.Bytes())
	return count
}

// TokensOf - all tokens currently held by an owner
//
// list position order, which is not the order of acquisition
func (r *Registry) TokensOf(owner address.Address) ([]tokenid.TokenID, error) {
	if owner.IsNil() {
		return nil, fault.NilOwner
	}

	count, _ := r.handles.OwnerCount.GetN(owner.Bytes())

	tokenIds := make([]tokenid.TokenID, 0, count)
	for position := uint64(0); position < count; position += 1 {
		tokenId, err := r.tokenAtPosition(owner, position)
		if nil != err {
			return nil, err
		}
		tokenIds = append(tokenIds, tokenId)
	}
	return tokenIds, nil
}

// TokenOfOwnerByIndex - the token at a position of an owner's list
func (r *Registry) TokenOfOwnerByIndex(owner address.Address, index uint64) (tokenid.TokenID, error) {
	if owner.IsNil() {
		return tokenid.TokenID{}, fault.NilOwner
	}

	count, _ := r.handles.OwnerCount.GetN(owner.Bytes())
	if index >= count {
		return tokenid.TokenID{}, fault.IndexBeyondCount
	}
	return r.tokenAtPosition(owner, index)
}

// read one entry of an owner's holding list
func (r *Registry) tokenAtPosition(owner address.Address, position uint64) (tokenid.TokenID, error) {
	positionKey := append(owner.Bytes(), storage.Uint64ToBytes(position)...)
	packed := r.handles.OwnerList.Get(positionKey)
	if nil == packed {
		fault.Panicf("tokenAtPosition: missing list record for owner: %s  position: %d", owner, position)
	}

	var tokenId tokenid.TokenID
	if err := tokenid.TokenIDFromBytes(&tokenId, packed); nil != err {
		return tokenid.TokenID{}, err
	}
	return tokenId, nil
}

// TotalSupply - number of tokens ever generated
func (r *Registry) TotalSupply() uint64 {
	count, _ := r.handles.GlobalCount.GetN(tokenCountKey)
	return count
}

// TokenByIndex - the token at a position of the global list
//
// the global list is append only so positions are generation order
func (r *Registry) TokenByIndex(index uint64) (tokenid.TokenID, error) {
	count, _ := r.handles.GlobalCount.GetN(tokenCountKey)
	if index >= count {
		return tokenid.TokenID{}, fault.IndexBeyondCount
	}

	packed := r.handles.AllTokens.Get(storage.Uint64ToBytes(index))
	if nil == packed {
		fault.Panicf("TokenByIndex: missing global list record at position: %d", index)
	}

	var tokenId tokenid.TokenID
	if err := tokenid.TokenIDFromBytes(&tokenId, packed); nil != err {
		return tokenid.TokenID{}, err
	}
	return tokenId, nil
}

// TokenRecord - one token with its current owner, for listings
type TokenRecord struct {
	TokenId tokenid.TokenID `json:"tokenId"`
	Owner   address.Address `json:"owner"`
}

// ListTokens - page through the global token list in generation order
func (r *Registry) ListTokens(start uint64, count int) ([]TokenRecord, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	cursor := r.handles.AllTokens.NewFetchCursor().Seek(storage.Uint64ToBytes(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]TokenRecord, 0, len(elements))
	for _, element := range elements {
		record := TokenRecord{}
		if err := tokenid.TokenIDFromBytes(&record.TokenId, element.Value); nil != err {
			return nil, err
		}
		record.Owner = r.OwnerOf(record.TokenId)
		records = append(records, record)
	}
	return records, nil
}
