// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/registry"
	"github.com/deedledger/registryd/storage"
	"github.com/deedledger/registryd/tokenid"
)

// test files
const (
	testingDirName   = "testing"
	databaseFileName = "test"
)

// well known test addresses
var (
	administrator = makeAddress(0x01)
	alice         = makeAddress(0x0a)
	bob           = makeAddress(0x0b)
	carol         = makeAddress(0x0c)
	vault         = makeAddress(0xd0) // destination with a receive hook
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialise error: %s", err))
	}

	rc := m.Run()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
	os.RemoveAll(databaseFileName + "-registry.leveldb")
}

// hook lookup table used as the receiver finder
type hookTable map[address.Address]interface{}

func (table hookTable) ReceiverFor(destination address.Address) interface{} {
	return table[destination]
}

// open a fresh database and build a ledger on it
func setup(t *testing.T, hooks hookTable) *registry.Registry {
	os.RemoveAll(databaseFileName + "-registry.leveldb")

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	r, err := registry.New(
		"Deed Ledger",
		"DEED",
		administrator,
		registry.Handles{
			Owners:            storage.Pool.Owners,
			OwnerCount:        storage.Pool.OwnerCount,
			OwnerList:         storage.Pool.OwnerList,
			OwnerTokenIndex:   storage.Pool.OwnerTokenIndex,
			AllTokens:         storage.Pool.AllTokens,
			GlobalCount:       storage.Pool.GlobalCount,
			TokenApprovals:    storage.Pool.TokenApprovals,
			OperatorApprovals: storage.Pool.OperatorApprovals,
			Events:            storage.Pool.Events,
		},
		hooks,
		nil,
	)
	if nil != err {
		t.Fatalf("registry create error: %s", err)
	}
	return r
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName + "-registry.leveldb")
}

// a distinct valid address from a seed byte
func makeAddress(seed byte) address.Address {
	var a address.Address
	for i := 0; i < address.Length; i += 1 {
		a[i] = seed ^ byte(i)
	}
	return a
}

// a token id from a deed description
func makeToken(description string) tokenid.TokenID {
	return tokenid.NewTokenID([]byte(description))
}

// generate a token or fail the test
func mustGenerate(t *testing.T, r *registry.Registry, tokenId tokenid.TokenID, beneficiary address.Address) {
	if err := r.Generate(administrator, tokenId, beneficiary); nil != err {
		t.Fatalf("generate error: %s", err)
	}
}
