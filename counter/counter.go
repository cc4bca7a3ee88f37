// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter safe for concurrent use
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.AddUint64((*uint64)(c), 0)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == atomic.AddUint64((*uint64)(c), 0)
}
