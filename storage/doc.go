// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database with prefixed key spaces
//
// Ownership:
//
//   O ⧺ tokenId             - current owner of a token
//                             data: owner address
//   N ⧺ owner               - count of tokens currently held (the balance)
//                             data: count
//   L ⧺ owner ⧺ position    - list of held tokens, positions are dense 0…count-1
//                             data: tokenId
//   D ⧺ owner ⧺ tokenId     - position in the list of held tokens, for swap delete after transfer
//                             data: position
//
// Global enumeration:
//
//   G ⧺ position            - every token ever generated, append only
//                             data: tokenId
//   C ⧺ 'N'                 - total count of generated tokens
//                             data: count
//
// Authorization:
//
//   A ⧺ tokenId             - single token approval (absent if none)
//                             data: approved address
//   P ⧺ owner ⧺ operator    - blanket operator approval (absent if none)
//                             data: 01
//
// Events:
//
//   E ⧺ sequence            - notification history, append only
//                             data: packed event record
//
// Testing:
//
//   Z ⧺ key                 - used by unit tests
package storage
