// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenid_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deedledger/registryd/tokenid"
)

func TestScanFmt(t *testing.T) {

	stringTokenId := "2d1ef659b43d1a9d7c3b95972edf45aadc23f8ee5ad51b62d6e1a5b00f1cb47b"

	var id tokenid.TokenID
	n, err := fmt.Sscan(stringTokenId, &id)
	if nil != err {
		t.Fatalf("hex to token id error: %v", err)
	}
	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	s := fmt.Sprintf("%s", id)
	if s != stringTokenId {
		t.Errorf("string: token id = %s expected %s", s, stringTokenId)
	}
}

func TestNewTokenID(t *testing.T) {
	one := tokenid.NewTokenID([]byte("deed one"))
	two := tokenid.NewTokenID([]byte("deed two"))
	assert.NotEqual(t, one, two, "distinct seeds must yield distinct ids")

	again := tokenid.NewTokenID([]byte("deed one"))
	assert.Equal(t, one, again, "token id derivation must be deterministic")
}

func TestMarshalUnmarshalText(t *testing.T) {
	id := tokenid.NewTokenID([]byte("marshalling"))

	text, err := id.MarshalText()
	assert.Nil(t, err, "marshal text error")

	var back tokenid.TokenID
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal text error")
	assert.Equal(t, id, back, "text round trip changed the id")

	// short input must be rejected
	err = back.UnmarshalText(text[2:])
	assert.NotNil(t, err, "short text was accepted")
}

func TestJSON(t *testing.T) {
	id := tokenid.NewTokenID([]byte("json"))

	buffer, err := json.Marshal(id)
	assert.Nil(t, err, "json marshal error")

	var back tokenid.TokenID
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "json unmarshal error")
	assert.Equal(t, id, back, "json round trip changed the id")
}

func TestTokenIDFromBytes(t *testing.T) {
	id := tokenid.NewTokenID([]byte("bytes"))

	var back tokenid.TokenID
	err := tokenid.TokenIDFromBytes(&back, id[:])
	assert.Nil(t, err, "from bytes error")
	assert.Equal(t, id, back, "byte round trip changed the id")

	err = tokenid.TokenIDFromBytes(&back, id[:tokenid.Length-1])
	assert.NotNil(t, err, "truncated buffer was accepted")
}
