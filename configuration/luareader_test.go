// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deedledger/registryd/configuration"
)

type testRPCSection struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string         `gluamapper:"data_directory"`
	Name          string         `gluamapper:"name"`
	ClientRPC     testRPCSection `gluamapper:"client_rpc"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = arg[0] .. ".data"
M.name = "Deed Ledger"

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:3130",
        "[::1]:3130",
    },
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "registryd.conf")
	err = ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
	assert.NoError(t, err, "write configuration")

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.NoError(t, err, "parse configuration")

	assert.Equal(t, fileName+".data", config.DataDirectory, "arg[0] substitution")
	assert.Equal(t, "Deed Ledger", config.Name, "name")
	assert.Equal(t, uint64(50), config.ClientRPC.MaximumConnections, "maximum connections")
	assert.Equal(t, []string{"127.0.0.1:3130", "[::1]:3130"}, config.ClientRPC.Listen, "listen addresses")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("no-such-file.conf", &config)
	assert.Error(t, err, "missing file")
}
