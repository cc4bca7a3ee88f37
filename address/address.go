// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/deedledger/registryd/fault"
)

// miscellaneous constants
const (
	Length         = 20
	checksumLength = 4
)

// Address - a 20 byte account identifier
//
// represented as Base58 text with a 4 byte SHA3-256 checksum appended
// before encoding
type Address [Length]byte

// Nil - the reserved all zero address
//
// used only as an absence sentinel: "no owner" / "not approved";
// a successful operation never records it as an owner or approvee
var Nil = Address{}

// IsNil - check for the absence sentinel
func (address Address) IsNil() bool {
	return address == Nil
}

// Bytes - byte slice for packed structures
func (address Address) Bytes() []byte {
	return address[:]
}

// String - Base58 encoded address with checksum
func (address Address) String() string {
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, address[:]...)
	checksum := sha3.Sum256(address[:])
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + address.String() + ">"
}

// MarshalText - convert an address to Base58 text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert Base58 text into an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

// AddressFromBase58 - decode and validate a Base58 encoded address
func AddressFromBase58(addressBase58Encoded string) (Address, error) {
	var address Address

	decoded, err := base58.Decode(addressBase58Encoded)
	if nil != err {
		return address, fault.CannotDecodeAddress
	}
	if Length+checksumLength != len(decoded) {
		return address, fault.WrongAddressLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return address, fault.ChecksumMismatch
	}

	copy(address[:], decoded[:checksumStart])
	return address, nil
}

// AddressFromBytes - convert and validate a binary byte slice to an address
func AddressFromBytes(address *Address, buffer []byte) error {
	if Length != len(buffer) {
		return fault.WrongAddressLength
	}
	copy(address[:], buffer)
	return nil
}
