// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/storage"
	"github.com/deedledger/registryd/tokenid"
)

// the event type flag byte
type eventType byte

// type codes for the flag byte
const (
	eventTransfer       eventType = iota // also covers generation: from is the nil sentinel
	eventApproval       eventType = iota
	eventApprovalForAll eventType = iota
	eventProviderChange eventType = iota
)

// TransferEvent - a token changed owner (generation when From is nil)
type TransferEvent struct {
	From    address.Address `json:"from"`
	To      address.Address `json:"to"`
	TokenId tokenid.TokenID `json:"tokenId"`
}

// ApprovalEvent - the single token approval changed (cleared when Approved is nil)
type ApprovalEvent struct {
	Owner    address.Address `json:"owner"`
	Approved address.Address `json:"approved"`
	TokenId  tokenid.TokenID `json:"tokenId"`
}

// ApprovalForAllEvent - a blanket operator approval was granted or revoked
type ApprovalForAllEvent struct {
	Owner      address.Address `json:"owner"`
	Operator   address.Address `json:"operator"`
	Authorized bool            `json:"authorized"`
}

// ProviderChangeEvent - the metadata provider was reconfigured
type ProviderChangeEvent struct {
	Administrator address.Address `json:"administrator"`
	Provider      string          `json:"provider"`
}

// Event - one sequenced entry of the notification history
type Event struct {
	Sequence uint64      `json:"sequence,string"`
	Item     interface{} `json:"item"`
}

// structure of the packed records
const (
	oneByteSize    = 1
	uint64ByteSize = 8

	transferPackLength       = oneByteSize + 2*address.Length + tokenid.Length
	approvalPackLength       = oneByteSize + 2*address.Length + tokenid.Length
	approvalForAllPackLength = oneByteSize + 2*address.Length + oneByteSize
	providerChangeMinLength  = oneByteSize + address.Length
)

// pack an event payload for the history pool
func packEvent(item interface{}) []byte {
	switch e := item.(type) {

	case TransferEvent:
		buffer := make([]byte, 0, transferPackLength)
		buffer = append(buffer, byte(eventTransfer))
		buffer = append(buffer, e.From.Bytes()...)
		buffer = append(buffer, e.To.Bytes()...)
		buffer = append(buffer, e.TokenId[:]...)
		return buffer

	case ApprovalEvent:
		buffer := make([]byte, 0, approvalPackLength)
		buffer = append(buffer, byte(eventApproval))
		buffer = append(buffer, e.Owner.Bytes()...)
		buffer = append(buffer, e.Approved.Bytes()...)
		buffer = append(buffer, e.TokenId[:]...)
		return buffer

	case ApprovalForAllEvent:
		buffer := make([]byte, 0, approvalForAllPackLength)
		buffer = append(buffer, byte(eventApprovalForAll))
		buffer = append(buffer, e.Owner.Bytes()...)
		buffer = append(buffer, e.Operator.Bytes()...)
		authorized := byte(0)
		if e.Authorized {
			authorized = 1
		}
		buffer = append(buffer, authorized)
		return buffer

	case ProviderChangeEvent:
		buffer := make([]byte, 0, providerChangeMinLength+len(e.Provider))
		buffer = append(buffer, byte(eventProviderChange))
		buffer = append(buffer, e.Administrator.Bytes()...)
		buffer = append(buffer, e.Provider...)
		return buffer

	default:
		fault.Panicf("packEvent: unsupported event: %+v", item)
		return nil
	}
}

// unpack a history record into its payload type
func unpackEvent(packed []byte) (interface{}, error) {
	if len(packed) < 1 {
		return nil, fault.NotPackedEvent
	}

	switch eventType(packed[0]) {

	case eventTransfer:
		if transferPackLength != len(packed) {
			return nil, fault.NotPackedEvent
		}
		e := TransferEvent{}
		n := oneByteSize
		_ = address.AddressFromBytes(&e.From, packed[n:n+address.Length])
		n += address.Length
		_ = address.AddressFromBytes(&e.To, packed[n:n+address.Length])
		n += address.Length
		_ = tokenid.TokenIDFromBytes(&e.TokenId, packed[n:])
		return e, nil

	case eventApproval:
		if approvalPackLength != len(packed) {
			return nil, fault.NotPackedEvent
		}
		e := ApprovalEvent{}
		n := oneByteSize
		_ = address.AddressFromBytes(&e.Owner, packed[n:n+address.Length])
		n += address.Length
		_ = address.AddressFromBytes(&e.Approved, packed[n:n+address.Length])
		n += address.Length
		_ = tokenid.TokenIDFromBytes(&e.TokenId, packed[n:])
		return e, nil

	case eventApprovalForAll:
		if approvalForAllPackLength != len(packed) {
			return nil, fault.NotPackedEvent
		}
		e := ApprovalForAllEvent{}
		n := oneByteSize
		_ = address.AddressFromBytes(&e.Owner, packed[n:n+address.Length])
		n += address.Length
		_ = address.AddressFromBytes(&e.Operator, packed[n:n+address.Length])
		n += address.Length
		e.Authorized = 1 == packed[n]
		return e, nil

	case eventProviderChange:
		if len(packed) < providerChangeMinLength {
			return nil, fault.NotPackedEvent
		}
		e := ProviderChangeEvent{}
		n := oneByteSize
		_ = address.AddressFromBytes(&e.Administrator, packed[n:n+address.Length])
		n += address.Length
		e.Provider = string(packed[n:])
		return e, nil

	default:
		return nil, fault.NotPackedEvent
	}
}

// global count pool keys
var (
	tokenCountKey = []byte{'N'}
	eventCountKey = []byte{'E'}
)

// append an event to the history inside the open transaction
//
// returns the payload so the caller can feed the live bus after commit
func (r *Registry) appendEvent(trx storage.Transaction, item interface{}) interface{} {
	sequence, _ := trx.GetN(r.handles.GlobalCount, eventCountKey)
	trx.Put(r.handles.Events, storage.Uint64ToBytes(sequence), packEvent(item))
	trx.PutN(r.handles.GlobalCount, eventCountKey, sequence+1)
	return item
}

// publish - push payloads to the live bus, called only after commit
func (r *Registry) publish(items []interface{}) {
	for _, item := range items {
		r.bus.Send("registry", item)
	}
}

// EventCount - number of recorded events
func (r *Registry) EventCount() uint64 {
	count, _ := r.handles.GlobalCount.GetN(eventCountKey)
	return count
}

// Events - page through the notification history
func (r *Registry) Events(start uint64, count int) ([]Event, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	cursor := r.handles.Events.NewFetchCursor().Seek(storage.Uint64ToBytes(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	events := make([]Event, 0, len(elements))
	for _, element := range elements {
		item, err := unpackEvent(element.Value)
		if nil != err {
			return nil, err
		}
		events = append(events, Event{
			Sequence: storage.BytesToUint64(element.Key),
			Item:     item,
		})
	}
	return events, nil
}
