// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/notaryrelay/fault"
)

// Transaction - a set of writes applied atomically by Commit
//
// reads through the transaction see its own uncommitted writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse      bool
	dataAccess DataAccess
	batch      *leveldb.Batch
	cache      Cache
}

func newTransaction(access DataAccess) *transaction {
	return &transaction{
		inUse:      false,
		dataAccess: access,
		batch:      new(leveldb.Batch),
		cache:      newCache(),
	}
}

// Begin - claim the transaction
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbPut, string(k), value)
	t.batch.Put(k, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - value for key or nil if not found
func (t *transaction) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	k := handle.prefixKey(key)

	op, value, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil, nil
		}
		return value, nil
	}

	value, err := t.dataAccess.Get(k)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - decode a value as big endian uint64
func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := t.Get(handle, key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrNotRecordPack
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

func (t *transaction) Has(handle *PoolHandle, key []byte) (bool, error) {
	k := handle.prefixKey(key)

	op, _, found := t.cache.Get(string(k))
	if found {
		return dbPut == op, nil
	}
	return t.dataAccess.Has(k)
}

// Commit - write the whole batch and release the transaction
//
// on error nothing from the batch has been written
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	err := t.dataAccess.Write(t.batch)
	t.reset()
	return err
}

// Abort - discard all pending writes and release the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
