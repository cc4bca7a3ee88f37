// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eventbus

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - one queued notification
type Message struct {
	From string
	Item interface{}
}

// Bus - a single event queue
type Bus struct {
	queue chan Message
}

// New - create a bus with the default queue size
func New() *Bus {
	return NewSize(defaultQueueSize)
}

// NewSize - create a bus with a specific queue size
func NewSize(size int) *Bus {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Bus{
		queue: make(chan Message, size),
	}
}

// Send - queue a notification
//
// the sender is never blocked: if no subscriber is draining the queue
// the oldest message is discarded; durable history is in storage
func (bus *Bus) Send(from string, item interface{}) {
	m := Message{
		From: from,
		Item: item,
	}
	for {
		select {
		case bus.queue <- m:
			return
		default:
			select {
			case <-bus.queue:
			default:
			}
		}
	}
}

// Chan - channel to read from
func (bus *Bus) Chan() <-chan Message {
	return bus.queue
}
