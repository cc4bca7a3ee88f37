// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/command/registry-cli/rpccalls"
)

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAddress(c.String("caller"))
	if nil != err {
		return err
	}

	clear := c.Bool("clear")

	// operator is ignored when clearing
	operator := address.Nil
	if !clear {
		operator, err = checkAddress(c.String("operator"))
		if nil != err {
			return err
		}
	}

	tokenId, err := checkTokenId(c.String("token"), c.String("seed"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(&rpccalls.ApproveData{
		Caller:   caller,
		Operator: operator,
		TokenId:  tokenId,
		Clear:    clear,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
