// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/deedledger/registryd/command/registry-cli/rpccalls"
)

func runCapability(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	selector, err := checkSelector(c.String("selector"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCapability(selector)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
