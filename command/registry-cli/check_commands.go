// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/tokenid"
)

var (
	ErrRequiredAddress  = fault.InvalidError("address is required")
	ErrRequiredConnect  = fault.InvalidError("connection is required")
	ErrRequiredSelector = fault.InvalidError("selector is required")
	ErrRequiredTokenId  = fault.InvalidError("token id or seed is required")
	ErrTokenIdConflict  = fault.InvalidError("token id and seed cannot both be set")
)

// connection is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	// ensure a port is present
	if !strings.Contains(connect, ":") {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// a required Base58 address
func checkAddress(addressBase58 string) (address.Address, error) {
	if "" == addressBase58 {
		return address.Nil, ErrRequiredAddress
	}

	return address.AddressFromBase58(addressBase58)
}

// an optional Base58 address, blank maps to the nil address
func checkOptionalAddress(addressBase58 string) (address.Address, error) {
	if "" == addressBase58 {
		return address.Nil, nil
	}

	return address.AddressFromBase58(addressBase58)
}

// a token id from either 64 hex digits or a seed record
func checkTokenId(tokenHex string, seed string) (tokenid.TokenID, error) {
	if "" != tokenHex && "" != seed {
		return tokenid.TokenID{}, ErrTokenIdConflict
	}

	if "" != tokenHex {
		return tokenid.TokenIDFromHexString(tokenHex)
	}

	if "" != seed {
		return tokenid.NewTokenID([]byte(seed)), nil
	}

	return tokenid.TokenID{}, ErrRequiredTokenId
}

// optional hex encoded receiver hook data
func checkHexData(dataHex string) ([]byte, error) {
	if "" == dataHex {
		return nil, nil
	}

	return hex.DecodeString(dataHex)
}

// a required capability selector
func checkSelector(selector string) (string, error) {
	if "" == selector {
		return "", ErrRequiredSelector
	}

	return selector, nil
}
