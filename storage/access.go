// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/deedledger/registryd/fault"
)

// DataAccess - batch access to the database
//
// writes accumulate in a batch and become durable only on Commit;
// Abort drops the batch and the cache so nothing is observable afterwards
type DataAccess interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type dataAccess struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDataAccess(db *leveldb.DB, cache Cache) DataAccess {
	return &dataAccess{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *dataAccess) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.DoubleTransactionAttempt
	}

	d.inUse = true
	return nil
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *dataAccess) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

func (d *dataAccess) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.inUse = false
	return err
}

func (d *dataAccess) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

func (d *dataAccess) Get(key []byte) ([]byte, error) {
	if val, op, found := d.cache.Get(string(key)); found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	if _, op, found := d.cache.Get(string(key)); found {
		return dbDelete != op, nil
	}
	return d.db.Has(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *dataAccess) InUse() bool {
	return d.inUse
}
