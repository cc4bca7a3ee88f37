// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/registry"
	"github.com/deedledger/registryd/rpc/ratelimit"
	"github.com/deedledger/registryd/tokenid"
)

// Token - type for the RPC
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Registry
}

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// New - create the token RPC handler
func New(log *logger.L, r *registry.Registry) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		Registry: r,
	}
}

// Token get
// ---------

// GetArguments - arguments for RPC
type GetArguments struct {
	TokenId tokenid.TokenID `json:"tokenId"`
}

// GetReply - result of token get RPC
type GetReply struct {
	TokenId  tokenid.TokenID `json:"tokenId"`
	Exists   bool            `json:"exists"`
	Owner    address.Address `json:"owner"`
	Approved address.Address `json:"approved"`
	URI      string          `json:"uri"`
}

// Get - current state of one token
func (t *Token) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	log := t.Log
	log.Infof("Token.Get: %+v", arguments)

	reply.TokenId = arguments.TokenId
	reply.Exists = t.Registry.Exists(arguments.TokenId)
	if !reply.Exists {
		return nil
	}

	reply.Owner = t.Registry.OwnerOf(arguments.TokenId)

	approved, err := t.Registry.GetApproved(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Approved = approved

	uri, err := t.Registry.TokenURI(arguments.TokenId)
	if nil != err {
		// the token is still reported when its metadata gateway is down
		log.Warnf("Token.Get: uri error: %s", err)
	} else {
		reply.URI = uri
	}

	return nil
}

// Token generate
// --------------

// GenerateArguments - arguments for RPC
type GenerateArguments struct {
	Caller      address.Address `json:"caller"`
	TokenId     tokenid.TokenID `json:"tokenId"`
	Beneficiary address.Address `json:"beneficiary"`
}

// GenerateReply - result of token generation RPC
type GenerateReply struct {
	TokenId tokenid.TokenID `json:"tokenId"`
	Owner   address.Address `json:"owner"`
}

// Generate - create a token, restricted to the administrator
func (t *Token) Generate(arguments *GenerateArguments, reply *GenerateReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Generate: %+v", arguments)

	err := t.Registry.Generate(arguments.Caller, arguments.TokenId, arguments.Beneficiary)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Owner = arguments.Beneficiary
	return nil
}

// Token transfer
// --------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller  address.Address `json:"caller"`
	From    address.Address `json:"from"`
	To      address.Address `json:"to"`
	TokenId tokenid.TokenID `json:"tokenId"`
	Checked bool            `json:"checked"`
	Data    []byte          `json:"data"` // base64, only for checked transfers
}

// TransferReply - result of token transfer RPC
type TransferReply struct {
	TokenId tokenid.TokenID `json:"tokenId"`
	Owner   address.Address `json:"owner"`
}

// Transfer - move a token, optionally consulting the destination
func (t *Token) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Transfer: %+v", arguments)

	var err error
	if arguments.Checked {
		err = t.Registry.SafeTransferFrom(arguments.Caller, arguments.From, arguments.To, arguments.TokenId, arguments.Data)
	} else {
		err = t.Registry.TransferFrom(arguments.Caller, arguments.From, arguments.To, arguments.TokenId)
	}
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Owner = arguments.To
	return nil
}

// Token approval
// --------------

// ApproveArguments - arguments for RPC
type ApproveArguments struct {
	Caller   address.Address `json:"caller"`
	Operator address.Address `json:"operator"`
	TokenId  tokenid.TokenID `json:"tokenId"`
	Clear    bool            `json:"clear"` // remove instead of set, operator is ignored
}

// ApproveReply - result of token approval RPC
type ApproveReply struct {
	TokenId  tokenid.TokenID `json:"tokenId"`
	Approved address.Address `json:"approved"`
}

// Approve - set or clear the single token approval
func (t *Token) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Approve: %+v", arguments)

	if arguments.Clear {
		if err := t.Registry.ClearApproval(arguments.Caller, arguments.TokenId); nil != err {
			return err
		}
		reply.TokenId = arguments.TokenId
		reply.Approved = address.Nil
		return nil
	}

	if err := t.Registry.Approve(arguments.Caller, arguments.Operator, arguments.TokenId); nil != err {
		return err
	}
	reply.TokenId = arguments.TokenId
	reply.Approved = arguments.Operator
	return nil
}
