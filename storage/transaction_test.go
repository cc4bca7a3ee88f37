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

func TestTransactionDoubleBegin(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin error")
	defer trx.Abort()

	_, err = storage.NewDBTransaction()
	assert.NotNil(t, err, "second begin must fail while first is open")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	key := []byte("abort-key")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(pool, key, []byte("pending"))

	// pending write is visible inside the transaction
	assert.Equal(t, []byte("pending"), trx.Get(pool, key), "pending write invisible")

	trx.Abort()

	// nothing was committed
	assert.Nil(t, pool.Get(key), "aborted write leaked to database")

	// a new transaction is possible after abort
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort error")
	trx.Abort()
}

func TestTransactionPendingDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	key := []byte("delete-key")

	mustStore(t, pool, []storage.Element{{Key: key, Value: []byte("committed")}})

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Delete(pool, key)

	// a pending delete must mask the committed value
	assert.Nil(t, trx.Get(pool, key), "pending delete still readable")
	assert.False(t, trx.Has(pool, key), "pending delete still present")

	// plain pool reads share the same view
	assert.Nil(t, pool.Get(key), "pool read missed pending delete")

	trx.Abort()

	// after abort the committed value is back
	assert.Equal(t, []byte("committed"), pool.Get(key), "abort lost committed value")
}

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	key := []byte("commit-key")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(pool, key, []byte("durable"))
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, []byte("durable"), pool.Get(key), "committed value missing")

	// transaction is released after commit
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after commit error")
	trx.Abort()
}
