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

// holder list maintenance
//
// per owner the list pool holds a dense run of positions 0 .. count-1
// and the index pool maps each held token back to its position, so
// membership checks and removal are single record operations

// append a token to the end of an owner's holding list
func addToHolder(
	trx storage.Transaction,
	handles Handles,
	owner address.Address,
	tokenId tokenid.TokenID,
) {
	count, _ := trx.GetN(handles.OwnerCount, owner.Bytes())

	positionKey := append(owner.Bytes(), storage.Uint64ToBytes(count)...)
	trx.Put(handles.OwnerList, positionKey, tokenId[:])

	indexKey := append(owner.Bytes(), tokenId[:]...)
	trx.PutN(handles.OwnerTokenIndex, indexKey, count)

	trx.PutN(handles.OwnerCount, owner.Bytes(), count+1)
}

// remove a token from an owner's holding list
//
// the last list entry is swapped into the vacated position so the run
// of positions stays dense; relative order of the remaining tokens is
// not preserved
func removeFromHolder(
	trx storage.Transaction,
	handles Handles,
	owner address.Address,
	tokenId tokenid.TokenID,
) {
	indexKey := append(owner.Bytes(), tokenId[:]...)
	position, found := trx.GetN(handles.OwnerTokenIndex, indexKey)
	if !found {
		fault.Panicf("removeFromHolder: no index record for owner: %s  token: %s", owner, tokenId)
	}

	count, _ := trx.GetN(handles.OwnerCount, owner.Bytes())
	if 0 == count {
		fault.Panicf("removeFromHolder: zero count for owner: %s", owner)
	}
	lastPosition := count - 1

	lastKey := append(owner.Bytes(), storage.Uint64ToBytes(lastPosition)...)

	if position != lastPosition {
		lastTokenId := trx.Get(handles.OwnerList, lastKey)
		if nil == lastTokenId {
			fault.Panicf("removeFromHolder: missing list record for owner: %s  position: %d", owner, lastPosition)
		}

		positionKey := append(owner.Bytes(), storage.Uint64ToBytes(position)...)
		trx.Put(handles.OwnerList, positionKey, lastTokenId)

		movedIndexKey := append(owner.Bytes(), lastTokenId...)
		trx.PutN(handles.OwnerTokenIndex, movedIndexKey, position)
	}

	trx.Delete(handles.OwnerList, lastKey)
	trx.Delete(handles.OwnerTokenIndex, indexKey)

	if 0 == lastPosition {
		trx.Delete(handles.OwnerCount, owner.Bytes())
	} else {
		trx.PutN(handles.OwnerCount, owner.Bytes(), lastPosition)
	}
}
