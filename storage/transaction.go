// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - an all-or-nothing unit of database updates
//
// every mutation between Begin and Commit lands in one batch; Abort
// discards the batch so the database is untouched. reads through the
// transaction (and plain pool reads, which share the cache) observe
// the pending state.
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	dataAccess DataAccess
}

func newTransaction(dataAccess DataAccess) Transaction {
	return &transaction{
		dataAccess: dataAccess,
	}
}

func (t *transaction) Begin() error {
	return t.dataAccess.Begin()
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

func (t *transaction) Commit() error {
	return t.dataAccess.Commit()
}

func (t *transaction) Abort() {
	t.dataAccess.Abort()
}

func (t *transaction) InUse() bool {
	return t.dataAccess.InUse()
}

// Uint64ToBytes - big endian encoding used for all count records
func Uint64ToBytes(value uint64) []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}

// BytesToUint64 - big endian decoding used for all count records
func BytesToUint64(buffer []byte) uint64 {
	return binary.BigEndian.Uint64(buffer)
}
