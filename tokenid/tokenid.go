// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenid

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/deedledger/registryd/fault"
)

// Length - number of bytes in a token id
const Length = 32

// TokenID - opaque 256 bit token identifier
//
// stored as a big endian byte array
// represented as big endian hex text for printing and JSON encoding
// to convert to bytes just use id[:]
type TokenID [Length]byte

// NewTokenID - derive a token id from an arbitrary seed record
func NewTokenID(record []byte) TokenID {
	return sha3.Sum256(record)
}

// String - convert a binary token id to a hex string for use by the fmt package (for %s)
func (tokenId TokenID) String() string {
	return hex.EncodeToString(tokenId[:])
}

// GoString - convert a binary token id to a hex string for use by the fmt package (for %#v)
func (tokenId TokenID) GoString() string {
	return "<token:" + hex.EncodeToString(tokenId[:]) + ">"
}

// Scan - convert a hex representation to a token id for use by the format package scan routines
func (tokenId *TokenID) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.WrongTokenIdLength
	}

	byteCount, err := hex.Decode(tokenId[:], token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.WrongTokenIdLength
	}
	return nil
}

// MarshalText - convert a token id to hex text
func (tokenId TokenID) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(tokenId))
	buffer := make([]byte, size)
	hex.Encode(buffer, tokenId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a token id
func (tokenId *TokenID) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.WrongTokenIdLength
	}
	byteCount, err := hex.Decode(tokenId[:], s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.WrongTokenIdLength
	}
	return nil
}

// TokenIDFromBytes - convert and validate a binary byte slice to a token id
func TokenIDFromBytes(tokenId *TokenID, buffer []byte) error {
	if Length != len(buffer) {
		return fault.WrongTokenIdLength
	}
	copy(tokenId[:], buffer)
	return nil
}

// TokenIDFromHexString - convert and validate a hex string to a token id
func TokenIDFromHexString(s string) (TokenID, error) {
	var tokenId TokenID
	err := tokenId.UnmarshalText([]byte(s))
	return tokenId, err
}
