// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/registry"
	"github.com/deedledger/registryd/rpc/ratelimit"
	"github.com/deedledger/registryd/tokenid"
)

// Owner - type for the RPC
type Owner struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Registry
}

const (
	// MaximumTokensCount - upper limit for one listing call
	MaximumTokensCount = 100

	rateLimitOwner = 200
	rateBurstOwner = 100
)

// New - create the owner RPC handler
func New(log *logger.L, r *registry.Registry) *Owner {
	return &Owner{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Registry: r,
	}
}

// Owner tokens
// ------------

// TokensArguments - arguments for RPC
type TokensArguments struct {
	Owner address.Address `json:"owner"`
	Start uint64          `json:"start,string"` // first list position
	Count int             `json:"count"`        // number of records
}

// TokensReply - result of owner listing RPC
type TokensReply struct {
	Next    uint64            `json:"next,string"` // start value for the next call
	Balance uint64            `json:"balance,string"`
	Tokens  []tokenid.TokenID `json:"tokens"`
}

// Tokens - list tokens held by an owner
//
// pages through the holding list by position; the order changes when
// the owner's holdings change between calls
func (owner *Owner) Tokens(arguments *TokensArguments, reply *TokensReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumTokensCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Tokens: %+v", arguments)

	balance := owner.Registry.BalanceOf(arguments.Owner)
	reply.Balance = balance
	reply.Tokens = make([]tokenid.TokenID, 0, arguments.Count)

	position := arguments.Start
	for ; position < balance && len(reply.Tokens) < arguments.Count; position += 1 {
		tokenId, err := owner.Registry.TokenOfOwnerByIndex(arguments.Owner, position)
		if nil != err {
			return err
		}
		reply.Tokens = append(reply.Tokens, tokenId)
	}

	if position < balance {
		reply.Next = position
	}
	return nil
}

// Owner authorization
// -------------------

// AuthorizedArguments - arguments for RPC
type AuthorizedArguments struct {
	Operator address.Address `json:"operator"`
	Owner    address.Address `json:"owner"`
	TokenId  tokenid.TokenID `json:"tokenId"`
	Blanket  bool            `json:"blanket"` // check the blanket approval, token id is ignored
}

// AuthorizedReply - result of authorization query RPC
type AuthorizedReply struct {
	Authorized bool `json:"authorized"`
}

// Authorized - check operator standing
func (owner *Owner) Authorized(arguments *AuthorizedArguments, reply *AuthorizedReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	owner.Log.Infof("Owner.Authorized: %+v", arguments)

	if arguments.Blanket {
		reply.Authorized = owner.Registry.IsApprovedForAll(arguments.Operator, arguments.Owner)
		return nil
	}

	authorized, err := owner.Registry.IsAuthorized(arguments.Operator, arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Authorized = authorized
	return nil
}

// Owner operator approval
// -----------------------

// OperatorArguments - arguments for RPC
type OperatorArguments struct {
	Caller     address.Address `json:"caller"`
	Operator   address.Address `json:"operator"`
	Authorized bool            `json:"authorized"`
}

// OperatorReply - result of operator approval RPC
type OperatorReply struct {
	Operator   address.Address `json:"operator"`
	Authorized bool            `json:"authorized"`
}

// SetOperator - grant or revoke a blanket operator approval
func (owner *Owner) SetOperator(arguments *OperatorArguments, reply *OperatorReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	owner.Log.Infof("Owner.SetOperator: %+v", arguments)

	err := owner.Registry.SetApprovalForAll(arguments.Caller, arguments.Operator, arguments.Authorized)
	if nil != err {
		return err
	}

	reply.Operator = arguments.Operator
	reply.Authorized = arguments.Authorized
	return nil
}
