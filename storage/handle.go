// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/deedledger/registryd/fault"
)

// PoolHandle - handle to a prefixed key space inside the database
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// internal put, called via an open transaction
func (p *PoolHandle) put(key []byte, value []byte) {
	if nil == p.dataAccess {
		fault.Panic("pool.put nil dataAccess")
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// internal putN, called via an open transaction
func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

// internal remove, called via an open transaction
func (p *PoolHandle) remove(key []byte) {
	if nil == p.dataAccess {
		fault.Panic("pool.remove nil dataAccess")
	}
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// pending writes of an open transaction are observed;
// returns nil if the record is not present
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if nil != err {
		return nil
	}
	return value
}

// GetN - read a record and decode the first 8 bytes as big endian uint64
//
// second return is false if the record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < uint64ByteSize {
		fault.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:uint64ByteSize])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.dataAccess {
		return false
	}
	value, err := p.dataAccess.Has(p.prefixKey(key))
	if nil != err {
		return false
	}
	return value
}

// LastElement - get the element with the highest key in the pool
func (p *PoolHandle) LastElement() (Element, bool) {
	if nil == p.dataAccess {
		return Element{}, false
	}

	iter := p.dataAccess.Iterator(p.maxRange())

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	fault.PanicIfError("pool.LastElement", err)
	return result, found
}
