// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/tokenid"
)

func TestCheckConnect(t *testing.T) {
	connect, err := checkConnect(" 127.0.0.1:2130 ")
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2130", connect)

	_, err = checkConnect("")
	assert.Equal(t, ErrRequiredConnect, err)

	_, err = checkConnect("localhost")
	assert.Equal(t, ErrRequiredConnect, err)
}

func TestCheckAddress(t *testing.T) {
	var a address.Address
	for i := 0; i < address.Length; i += 1 {
		a[i] = byte(i)
	}

	decoded, err := checkAddress(a.String())
	assert.NoError(t, err)
	assert.Equal(t, a, decoded)

	_, err = checkAddress("")
	assert.Equal(t, ErrRequiredAddress, err)

	optional, err := checkOptionalAddress("")
	assert.NoError(t, err)
	assert.Equal(t, address.Nil, optional)
}

func TestCheckTokenId(t *testing.T) {
	derived := tokenid.NewTokenID([]byte("deed one"))

	fromSeed, err := checkTokenId("", "deed one")
	assert.NoError(t, err)
	assert.Equal(t, derived, fromSeed)

	fromHex, err := checkTokenId(derived.String(), "")
	assert.NoError(t, err)
	assert.Equal(t, derived, fromHex)

	_, err = checkTokenId("", "")
	assert.Equal(t, ErrRequiredTokenId, err)

	_, err = checkTokenId(derived.String(), "deed one")
	assert.Equal(t, ErrTokenIdConflict, err)
}

func TestCheckHexData(t *testing.T) {
	data, err := checkHexData("0001ff")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xff}, data)

	data, err = checkHexData("")
	assert.NoError(t, err)
	assert.Nil(t, data)

	_, err = checkHexData("zz")
	assert.Error(t, err)
}
