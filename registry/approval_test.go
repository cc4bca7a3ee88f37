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

func TestApprove(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 50, west field")
	mustGenerate(t, r, deed, alice)

	approved, err := r.GetApproved(deed)
	assert.NoError(t, err, "get approved")
	assert.Equal(t, address.Nil, approved, "initial approval")

	err = r.Approve(alice, bob, deed)
	assert.NoError(t, err, "approve bob")

	approved, err = r.GetApproved(deed)
	assert.NoError(t, err, "get approved")
	assert.Equal(t, bob, approved, "approval after approve")

	// later approval overwrites the previous one
	err = r.Approve(alice, carol, deed)
	assert.NoError(t, err, "approve carol")

	approved, err = r.GetApproved(deed)
	assert.NoError(t, err, "get approved")
	assert.Equal(t, carol, approved, "approval after overwrite")
}

func TestApproveRestrictions(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 51, west field")
	missing := makeToken("plot 51, west field, never generated")
	mustGenerate(t, r, deed, alice)

	err := r.Approve(bob, carol, deed)
	assert.Equal(t, fault.TransferNotAuthorized, err, "approve by stranger")

	err = r.Approve(alice, alice, deed)
	assert.Equal(t, fault.SelfApproval, err, "approve the owner")

	err = r.Approve(alice, address.Nil, deed)
	assert.Equal(t, fault.NilOperator, err, "approve the nil address")

	err = r.Approve(alice, bob, missing)
	assert.Equal(t, fault.TokenDoesNotExist, err, "approve a missing token")

	_, err = r.GetApproved(missing)
	assert.Equal(t, fault.TokenDoesNotExist, err, "get approved of a missing token")
}

func TestApproveIdenticalIsSilent(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 52, west field")
	mustGenerate(t, r, deed, alice)

	err := r.Approve(alice, bob, deed)
	assert.NoError(t, err, "first approve")
	eventsAfterFirst := r.EventCount()

	err = r.Approve(alice, bob, deed)
	assert.NoError(t, err, "identical approve")
	assert.Equal(t, eventsAfterFirst, r.EventCount(), "identical approve recorded an event")
}

func TestApproveByOperator(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 53, west field")
	mustGenerate(t, r, deed, alice)

	err := r.SetApprovalForAll(alice, bob, true)
	assert.NoError(t, err, "set operator")

	// a blanket approved operator may manage single approvals
	err = r.Approve(bob, carol, deed)
	assert.NoError(t, err, "approve by operator")

	approved, err := r.GetApproved(deed)
	assert.NoError(t, err, "get approved")
	assert.Equal(t, carol, approved, "approval set by operator")
}

func TestClearApproval(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 54, west field")
	mustGenerate(t, r, deed, alice)

	err := r.ClearApproval(alice, deed)
	assert.Equal(t, fault.ApprovalNotSet, err, "clear absent approval")

	err = r.Approve(alice, bob, deed)
	assert.NoError(t, err, "approve bob")

	err = r.ClearApproval(carol, deed)
	assert.Equal(t, fault.TransferNotAuthorized, err, "clear by stranger")

	err = r.ClearApproval(alice, deed)
	assert.NoError(t, err, "clear by owner")

	approved, err := r.GetApproved(deed)
	assert.NoError(t, err, "get approved")
	assert.Equal(t, address.Nil, approved, "approval after clear")
}

func TestSetApprovalForAllStrictToggle(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	assert.False(t, r.IsApprovedForAll(bob, alice), "initial operator state")

	err := r.SetApprovalForAll(alice, bob, true)
	assert.NoError(t, err, "grant")
	assert.True(t, r.IsApprovedForAll(bob, alice), "operator state after grant")

	err = r.SetApprovalForAll(alice, bob, true)
	assert.Equal(t, fault.RedundantOperatorApproval, err, "double grant")
	assert.True(t, fault.IsErrPrecondition(err), "error class")

	err = r.SetApprovalForAll(alice, bob, false)
	assert.NoError(t, err, "revoke")
	assert.False(t, r.IsApprovedForAll(bob, alice), "operator state after revoke")

	err = r.SetApprovalForAll(alice, bob, false)
	assert.Equal(t, fault.OperatorApprovalNotSet, err, "double revoke")
}

func TestSetApprovalForAllRestrictions(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	err := r.SetApprovalForAll(alice, alice, true)
	assert.Equal(t, fault.SelfApproval, err, "self as operator")

	err = r.SetApprovalForAll(alice, address.Nil, true)
	assert.Equal(t, fault.NilOperator, err, "nil operator")

	err = r.SetApprovalForAll(address.Nil, bob, true)
	assert.Equal(t, fault.NilAddress, err, "nil caller")
}

func TestOperatorApprovalIsPerOwner(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	err := r.SetApprovalForAll(alice, carol, true)
	assert.NoError(t, err, "grant for alice")

	assert.True(t, r.IsApprovedForAll(carol, alice), "carol for alice")
	assert.False(t, r.IsApprovedForAll(carol, bob), "carol for bob")
	assert.False(t, r.IsApprovedForAll(alice, carol), "inverted arguments")
}

func TestIsAuthorized(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	deed := makeToken("plot 55, west field")
	missing := makeToken("plot 55, west field, never generated")
	mustGenerate(t, r, deed, alice)

	authorized, err := r.IsAuthorized(alice, deed)
	assert.NoError(t, err, "owner check")
	assert.True(t, authorized, "owner is authorized")

	authorized, err = r.IsAuthorized(bob, deed)
	assert.NoError(t, err, "stranger check")
	assert.False(t, authorized, "stranger is authorized")

	_, err = r.IsAuthorized(address.Nil, deed)
	assert.Equal(t, fault.NilOperator, err, "nil operator check")

	_, err = r.IsAuthorized(alice, missing)
	assert.Equal(t, fault.TokenDoesNotExist, err, "missing token check")

	err = r.Approve(alice, bob, deed)
	assert.NoError(t, err, "approve bob")
	authorized, err = r.IsAuthorized(bob, deed)
	assert.NoError(t, err, "approvee check")
	assert.True(t, authorized, "approvee is authorized")

	err = r.SetApprovalForAll(alice, carol, true)
	assert.NoError(t, err, "set operator")
	authorized, err = r.IsAuthorized(carol, deed)
	assert.NoError(t, err, "operator check")
	assert.True(t, authorized, "operator is authorized")
}

func TestOperatorEventsRecorded(t *testing.T) {
	r := setup(t, nil)
	defer teardown(t)

	err := r.SetApprovalForAll(alice, bob, true)
	assert.NoError(t, err, "grant")
	err = r.SetApprovalForAll(alice, bob, false)
	assert.NoError(t, err, "revoke")

	events, err := r.Events(0, 10)
	assert.NoError(t, err, "event history")
	assert.Equal(t, 2, len(events), "event count")
	assert.Equal(t, registry.ApprovalForAllEvent{Owner: alice, Operator: bob, Authorized: true}, events[0].Item, "grant event")
	assert.Equal(t, registry.ApprovalForAllEvent{Owner: alice, Operator: bob, Authorized: false}, events[1].Item, "revoke event")
}
