// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deedledger/registryd/storage"
)

var poolElements = makeElements([]stringElement{
	{"key-one", "data-one"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func TestPoolGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	mustStore(t, pool, poolElements)

	for _, e := range poolElements {
		value := pool.Get(e.Key)
		assert.Equal(t, e.Value, value, "wrong value for key: %q", e.Key)
	}

	value := pool.Get([]byte("/nonexistent"))
	assert.Nil(t, value, "nonexistent key returned data")
}

func TestPoolHas(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	mustStore(t, pool, poolElements)

	assert.True(t, pool.Has([]byte("key-one")), "missing stored key")
	assert.False(t, pool.Has([]byte("/nonexistent")), "phantom key")
}

func TestPoolGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.PutN(pool, []byte("counter"), 1234567890)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	n, found := pool.GetN([]byte("counter"))
	assert.True(t, found, "counter record missing")
	assert.Equal(t, uint64(1234567890), n, "wrong counter value")

	n, found = pool.GetN([]byte("/nonexistent"))
	assert.False(t, found, "phantom counter record")
	assert.Equal(t, uint64(0), n, "phantom counter value")
}

func TestPoolLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	mustStore(t, pool, poolElements)

	last, found := pool.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte("key-two"), last.Key, "wrong last key")
	assert.Equal(t, []byte("data-two"), last.Value, "wrong last value")
}

func TestPoolSeparation(t *testing.T) {
	setup(t)
	defer teardown(t)

	// same key must not cross pool boundaries
	key := []byte("shared-key")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(storage.Pool.TestData, key, []byte("test-data"))
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.True(t, storage.Pool.TestData.Has(key), "missing record")
	assert.False(t, storage.Pool.Owners.Has(key), "record leaked into another pool")
}

func TestCursorFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	mustStore(t, pool, poolElements)

	cursor := pool.NewFetchCursor()

	// fetch in two parts to exercise cursor advance
	part, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(part), "wrong first fetch size")
	assert.Equal(t, []byte("key-one"), part[0].Key, "wrong ordering")
	assert.Equal(t, []byte("key-three"), part[1].Key, "wrong ordering")

	part, err = cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(part), "wrong second fetch size")
	assert.Equal(t, []byte("key-two"), part[0].Key, "wrong ordering")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	mustStore(t, pool, poolElements)

	seen := 0
	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		seen += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(poolElements), seen, "wrong element count")
}
