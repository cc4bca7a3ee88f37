// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/rpc/owner"
	"github.com/deedledger/registryd/tokenid"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner address.Address
	Start uint64
	Count int
}

// GetOwned - obtain list of owned tokens
func (client *Client) GetOwned(ownedConfig *OwnedData) (*owner.TokensReply, error) {

	ownedArgs := owner.TokensArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &owner.TokensReply{}
	err := client.client.Call("Owner.Tokens", ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}

// AuthorizedData - data for an authorization enquiry
type AuthorizedData struct {
	Operator address.Address
	Owner    address.Address
	TokenId  tokenid.TokenID
	Blanket  bool
}

// GetAuthorized - check if an operator may transfer
func (client *Client) GetAuthorized(authorizedConfig *AuthorizedData) (*owner.AuthorizedReply, error) {

	authorizedArgs := owner.AuthorizedArguments{
		Operator: authorizedConfig.Operator,
		Owner:    authorizedConfig.Owner,
		TokenId:  authorizedConfig.TokenId,
		Blanket:  authorizedConfig.Blanket,
	}

	client.printJson("Authorized Request", authorizedArgs)

	reply := &owner.AuthorizedReply{}
	err := client.client.Call("Owner.Authorized", authorizedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Authorized Reply", reply)

	return reply, nil
}

// OperatorData - data for an operator approval request
type OperatorData struct {
	Caller     address.Address
	Operator   address.Address
	Authorized bool
}

// SetOperator - grant or revoke a blanket operator approval
func (client *Client) SetOperator(operatorConfig *OperatorData) (*owner.OperatorReply, error) {

	operatorArgs := owner.OperatorArguments{
		Caller:     operatorConfig.Caller,
		Operator:   operatorConfig.Operator,
		Authorized: operatorConfig.Authorized,
	}

	client.printJson("Operator Request", operatorArgs)

	reply := &owner.OperatorReply{}
	err := client.client.Call("Owner.SetOperator", operatorArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Operator Reply", reply)

	return reply, nil
}
