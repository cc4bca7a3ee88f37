// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line access to a running registryd
//
// e.g. to show the registry status:
//      (add -v flag to see JSON requests and responses)
//
//   registry-cli [-v] -c HOST:PORT info
package main
