// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "command line access to a registryd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connection, c",
			Value:  "",
			Usage:  "*registryd host/IP and port, `HOST:PORT`",
			EnvVar: "REGISTRYD_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display registryd status",
			Action: runInfo,
		},
		{
			Name:      "capability",
			Usage:     "check an interface capability selector",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "selector, s",
					Value: "",
					Usage: "*capability selector, 8 hex digits `HEX`",
				},
			},
			Action: runCapability,
		},
		{
			Name:      "token",
			Usage:     "display the state of one token",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "+token id, 64 hex digits `TOKEN`",
				},
				cli.StringFlag{
					Name:  "seed, d",
					Value: "",
					Usage: "+derive the token id from this seed record `STRING`",
				},
			},
			Action: runToken,
		},
		{
			Name:      "generate",
			Usage:     "create a new token, administrator only",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*administrator address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "+token id, 64 hex digits `TOKEN`",
				},
				cli.StringFlag{
					Name:  "seed, d",
					Value: "",
					Usage: "+derive the token id from this seed record `STRING`",
				},
				cli.StringFlag{
					Name:  "beneficiary, b",
					Value: "",
					Usage: "*address to receive the token `ADDRESS`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a token to another address",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*address performing the transfer `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*current owner address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*address to receive the token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "+token id, 64 hex digits `TOKEN`",
				},
				cli.StringFlag{
					Name:  "seed, d",
					Value: "",
					Usage: "+derive the token id from this seed record `STRING`",
				},
				cli.BoolFlag{
					Name:  "checked, k",
					Usage: " consult the destination receiver hook",
				},
				cli.StringFlag{
					Name:  "data, x",
					Value: "",
					Usage: " extra hex data for the receiver hook `HEX`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "set or clear the single token approval",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*owner or operator address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: " address to approve, required unless clearing `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "+token id, 64 hex digits `TOKEN`",
				},
				cli.StringFlag{
					Name:  "seed, d",
					Value: "",
					Usage: "+derive the token id from this seed record `STRING`",
				},
				cli.BoolFlag{
					Name:  "clear, z",
					Usage: " clear the approval instead of setting it",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "operator",
			Usage:     "grant or revoke a blanket operator approval",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, i",
					Value: "",
					Usage: "*owner address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator address `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "revoke, z",
					Usage: " revoke the approval instead of granting it",
				},
			},
			Action: runOperator,
		},
		{
			Name:      "authorized",
			Usage:     "check if an operator may transfer",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, w",
					Value: "",
					Usage: " owner address, only for blanket checks `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "+token id, 64 hex digits `TOKEN`",
				},
				cli.StringFlag{
					Name:  "seed, d",
					Value: "",
					Usage: "+derive the token id from this seed record `STRING`",
				},
				cli.BoolFlag{
					Name:  "blanket, b",
					Usage: " check the blanket approval, token id is ignored",
				},
			},
			Action: runAuthorized,
		},
		{
			Name:      "owned",
			Usage:     "list tokens owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner address `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "list",
			Usage:     "list the global token register",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "events",
			Usage:     "list the recorded event history",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:  "version",
			Usage: "display registry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// check the connection argument
	app.Before = func(c *cli.Context) error {

		// version command needs no connection
		if "version" == c.Args().Get(0) {
			return nil
		}

		connect, err := checkConnect(c.GlobalString("connection"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
