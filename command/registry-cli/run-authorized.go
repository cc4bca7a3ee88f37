// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/deedledger/registryd/command/registry-cli/rpccalls"
	"github.com/deedledger/registryd/tokenid"
)

func runAuthorized(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	operator, err := checkAddress(c.String("operator"))
	if nil != err {
		return err
	}

	owner, err := checkOptionalAddress(c.String("owner"))
	if nil != err {
		return err
	}

	blanket := c.Bool("blanket")

	// token id is ignored for blanket checks
	tokenId := tokenid.TokenID{}
	if !blanket {
		tokenId, err = checkTokenId(c.String("token"), c.String("seed"))
		if nil != err {
			return err
		}
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAuthorized(&rpccalls.AuthorizedData{
		Operator: operator,
		Owner:    owner,
		TokenId:  tokenId,
		Blanket:  blanket,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
