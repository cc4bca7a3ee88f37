// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/rpc/token"
	"github.com/deedledger/registryd/tokenid"
)

// GetToken - fetch the current state of one token
func (client *Client) GetToken(tokenId tokenid.TokenID) (*token.GetReply, error) {

	getArgs := token.GetArguments{
		TokenId: tokenId,
	}

	client.printJson("Token Get Request", getArgs)

	reply := &token.GetReply{}
	err := client.client.Call("Token.Get", getArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Token Get Reply", reply)

	return reply, nil
}

// GenerateData - data for a generate request
type GenerateData struct {
	Caller      address.Address
	TokenId     tokenid.TokenID
	Beneficiary address.Address
}

// Generate - create a new token for a beneficiary
func (client *Client) Generate(generateConfig *GenerateData) (*token.GenerateReply, error) {

	generateArgs := token.GenerateArguments{
		Caller:      generateConfig.Caller,
		TokenId:     generateConfig.TokenId,
		Beneficiary: generateConfig.Beneficiary,
	}

	client.printJson("Generate Request", generateArgs)

	reply := &token.GenerateReply{}
	err := client.client.Call("Token.Generate", generateArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Generate Reply", reply)

	return reply, nil
}

// TransferData - data for a transfer request
type TransferData struct {
	Caller  address.Address
	From    address.Address
	To      address.Address
	TokenId tokenid.TokenID
	Checked bool
	Data    []byte
}

// Transfer - move a token to a new owner
func (client *Client) Transfer(transferConfig *TransferData) (*token.TransferReply, error) {

	transferArgs := token.TransferArguments{
		Caller:  transferConfig.Caller,
		From:    transferConfig.From,
		To:      transferConfig.To,
		TokenId: transferConfig.TokenId,
		Checked: transferConfig.Checked,
		Data:    transferConfig.Data,
	}

	client.printJson("Transfer Request", transferArgs)

	reply := &token.TransferReply{}
	err := client.client.Call("Token.Transfer", transferArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}

// ApproveData - data for an approval request
type ApproveData struct {
	Caller   address.Address
	Operator address.Address
	TokenId  tokenid.TokenID
	Clear    bool
}

// Approve - set or clear the single token approval
func (client *Client) Approve(approveConfig *ApproveData) (*token.ApproveReply, error) {

	approveArgs := token.ApproveArguments{
		Caller:   approveConfig.Caller,
		Operator: approveConfig.Operator,
		TokenId:  approveConfig.TokenId,
		Clear:    approveConfig.Clear,
	}

	client.printJson("Approve Request", approveArgs)

	reply := &token.ApproveReply{}
	err := client.client.Call("Token.Approve", approveArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Approve Reply", reply)

	return reply, nil
}
