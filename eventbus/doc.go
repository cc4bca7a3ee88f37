// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eventbus - in-process delivery of registry notifications
//
// a buffered queue between the ledger and any subscriber; the durable,
// ordered history lives in the storage Events pool, this bus is only
// the live feed
package eventbus
