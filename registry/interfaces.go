// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

// InterfaceID - capability discovery selector
type InterfaceID [4]byte

// the capability selectors the ledger answers to
var (
	InterfaceRegistry    = InterfaceID{0x80, 0xac, 0x58, 0xcd} // ownership, approvals and transfers
	InterfaceMetadata    = InterfaceID{0x5b, 0x5e, 0x13, 0x9f} // name, symbol and token URIs
	InterfaceEnumeration = InterfaceID{0x78, 0x0e, 0x9d, 0x63} // supply and index access

	// reserved: must always be denied
	InterfaceInvalid = InterfaceID{0xff, 0xff, 0xff, 0xff}
)

// SupportsInterface - capability discovery
//
// the reserved all ones selector is denied unconditionally
func (r *Registry) SupportsInterface(id InterfaceID) bool {
	switch id {
	case InterfaceRegistry, InterfaceMetadata, InterfaceEnumeration:
		return true
	default:
		return false
	}
}
