// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the non-fungible token ledger
//
// tracks exclusive ownership of uniquely identified tokens, mediates
// authorized transfers and enumerates holdings
//
// every token has exactly one owner at all times; a transfer updates
// the owner record, both holder lists and the position index as one
// database transaction, and for the checked transfer variants the
// transaction is only committed after the destination's receiver hook
// accepted the token, so a rejection rolls the whole transfer back
package registry
