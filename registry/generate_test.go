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
	"github.com/deedledger/registryd/registry"
)

func TestGenerate(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 17, north field")

	assert.False(t, r.Exists(deed), "token exists before generation")
	assert.Equal(t, address.Nil, r.OwnerOf(deed), "owner before generation")

	mustGenerate(t, r, deed, alice)

	assert.True(t, r.Exists(deed), "token missing after generation")
	assert.Equal(t, alice, r.OwnerOf(deed), "wrong owner after generation")
	assert.Equal(t, uint64(1), r.BalanceOf(alice), "wrong balance after generation")
	assert.Equal(t, uint64(1), r.TotalSupply(), "wrong total supply")

	indexed, err := r.TokenByIndex(0)
	assert.NoError(t, err, "token by index")
	assert.Equal(t, deed, indexed, "global list entry")
}

func TestGenerateRequiresAdministrator(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 18, north field")

	err := r.Generate(alice, deed, alice)
	assert.Equal(t, fault.NotRegistryAdministrator, err, "generate by non administrator")
	assert.True(t, fault.IsErrUnauthorized(err), "error class")
	assert.False(t, r.Exists(deed), "token created by unauthorized caller")
}

func TestGenerateRejectsNilBeneficiary(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 19, north field")

	err := r.Generate(administrator, deed, address.Nil)
	assert.Equal(t, fault.NilOwner, err, "generate to nil beneficiary")
	assert.True(t, fault.IsErrInvalid(err), "error class")
}

func TestGenerateRejectsDuplicate(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 20, north field")
	mustGenerate(t, r, deed, alice)

	err := r.Generate(administrator, deed, bob)
	assert.Equal(t, fault.TokenAlreadyExists, err, "duplicate generation")
	assert.True(t, fault.IsErrPrecondition(err), "error class")
	assert.Equal(t, alice, r.OwnerOf(deed), "owner changed by failed generation")
	assert.Equal(t, uint64(1), r.TotalSupply(), "supply changed by failed generation")
}

func TestGenerateEmitsTransferFromNil(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 21, north field")
	mustGenerate(t, r, deed, alice)

	events, err := r.Events(0, 10)
	assert.NoError(t, err, "event history")
	assert.Equal(t, 1, len(events), "event count")
	assert.Equal(t, uint64(0), events[0].Sequence, "event sequence")
	assert.Equal(t, registry.TransferEvent{
		From:    address.Nil,
		To:      alice,
		TokenId: deed,
	}, events[0].Item, "generation event payload")

	select {
	case message := <-r.Bus().Chan():
		assert.Equal(t, registry.TransferEvent{
			From:    address.Nil,
			To:      alice,
			TokenId: deed,
		}, message.Item, "live feed payload")
	default:
		t.Fatalf("no message on the live feed")
	}
}
