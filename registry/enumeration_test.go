// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/tokenid"
)

func TestEnumerationBoundaries(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	_, err := r.TokenByIndex(0)
	assert.Equal(t, fault.IndexBeyondCount, err, "global index on empty ledger")
	assert.True(t, fault.IsErrOutOfRange(err), "error class")

	_, err = r.TokenOfOwnerByIndex(alice, 0)
	assert.Equal(t, fault.IndexBeyondCount, err, "owner index on empty holding")

	deeds := []tokenid.TokenID{
		makeToken("plot 60, old town"),
		makeToken("plot 61, old town"),
		makeToken("plot 62, old town"),
	}
	for _, deed := range deeds {
		mustGenerate(t, r, deed, alice)
	}

	// last valid positions
	last, err := r.TokenByIndex(2)
	assert.NoError(t, err, "last global index")
	assert.Equal(t, deeds[2], last, "last global entry")

	_, err = r.TokenByIndex(3)
	assert.Equal(t, fault.IndexBeyondCount, err, "global index one past the end")

	last, err = r.TokenOfOwnerByIndex(alice, 2)
	assert.NoError(t, err, "last owner index")
	assert.Equal(t, deeds[2], last, "last owner entry")

	_, err = r.TokenOfOwnerByIndex(alice, 3)
	assert.Equal(t, fault.IndexBeyondCount, err, "owner index one past the end")
}

func TestEnumerationNilOwner(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	assert.Equal(t, uint64(0), r.BalanceOf(address.Nil), "balance of nil owner")

	_, err := r.TokensOf(address.Nil)
	assert.Equal(t, fault.NilOwner, err, "tokens of nil owner")

	_, err = r.TokenOfOwnerByIndex(address.Nil, 0)
	assert.Equal(t, fault.NilOwner, err, "index of nil owner")
}

func TestGlobalListKeepsGenerationOrder(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deeds := []tokenid.TokenID{
		makeToken("plot 63, old town"),
		makeToken("plot 64, old town"),
		makeToken("plot 65, old town"),
	}
	mustGenerate(t, r, deeds[0], alice)
	mustGenerate(t, r, deeds[1], bob)
	mustGenerate(t, r, deeds[2], alice)

	// transfers do not disturb the global list
	err := r.TransferFrom(alice, alice, carol, deeds[0])
	assert.NoError(t, err, "transfer")

	for i, expected := range deeds {
		actual, err := r.TokenByIndex(uint64(i))
		assert.NoError(t, err, "global index %d", i)
		assert.Equal(t, expected, actual, "global entry %d", i)
	}

	records, err := r.ListTokens(0, 10)
	assert.NoError(t, err, "list tokens")
	assert.Equal(t, 3, len(records), "record count")
	assert.Equal(t, deeds[0], records[0].TokenId, "first record token")
	assert.Equal(t, carol, records[0].Owner, "first record owner")
	assert.Equal(t, bob, records[1].Owner, "second record owner")

	// paged continuation
	page, err := r.ListTokens(1, 1)
	assert.NoError(t, err, "paged list")
	assert.Equal(t, 1, len(page), "page size")
	assert.Equal(t, deeds[1], page[0].TokenId, "page entry")

	_, err = r.ListTokens(0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestHolderListSwapDelete(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deeds := []tokenid.TokenID{
		makeToken("plot 66, old town"),
		makeToken("plot 67, old town"),
		makeToken("plot 68, old town"),
	}
	for _, deed := range deeds {
		mustGenerate(t, r, deed, alice)
	}

	// removing a middle entry swaps the last entry into its place
	err := r.TransferFrom(alice, alice, bob, deeds[1])
	assert.NoError(t, err, "transfer middle entry")

	assert.Equal(t, uint64(2), r.BalanceOf(alice), "alice balance")

	tokens, err := r.TokensOf(alice)
	assert.NoError(t, err, "tokens of alice")
	assert.Equal(t, []tokenid.TokenID{deeds[0], deeds[2]}, tokens, "alice holdings after swap")

	// positions stay dense: 0 and 1 valid, 2 beyond count
	first, err := r.TokenOfOwnerByIndex(alice, 0)
	assert.NoError(t, err, "position 0")
	assert.Equal(t, deeds[0], first, "position 0 entry")

	second, err := r.TokenOfOwnerByIndex(alice, 1)
	assert.NoError(t, err, "position 1")
	assert.Equal(t, deeds[2], second, "position 1 entry")

	_, err = r.TokenOfOwnerByIndex(alice, 2)
	assert.Equal(t, fault.IndexBeyondCount, err, "position beyond count")
}

func TestHolderListDrainAndRefill(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deeds := []tokenid.TokenID{
		makeToken("plot 70, old town"),
		makeToken("plot 71, old town"),
	}
	for _, deed := range deeds {
		mustGenerate(t, r, deed, alice)
	}

	for _, deed := range deeds {
		err := r.TransferFrom(alice, alice, bob, deed)
		assert.NoError(t, err, "drain transfer")
	}
	assert.Equal(t, uint64(0), r.BalanceOf(alice), "alice balance after drain")

	tokens, err := r.TokensOf(alice)
	assert.NoError(t, err, "tokens of drained owner")
	assert.Equal(t, 0, len(tokens), "drained holding")

	// the list rebuilds cleanly after the count record was removed
	err = r.TransferFrom(bob, bob, alice, deeds[1])
	assert.NoError(t, err, "refill transfer")
	assert.Equal(t, uint64(1), r.BalanceOf(alice), "alice balance after refill")

	token, err := r.TokenOfOwnerByIndex(alice, 0)
	assert.NoError(t, err, "refilled position 0")
	assert.Equal(t, deeds[1], token, "refilled entry")
}
