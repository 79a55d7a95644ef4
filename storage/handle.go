// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/notaryrelay/fault"
)

// PoolHandle - access to one prefixed key range
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// CompoundKey - join key parts with a zero byte separator
//
// parts are utf-8 identifiers so cannot contain the separator
func CompoundKey(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p) + 1
	}
	key := make([]byte, 0, n)
	for i, p := range parts {
		if 0 != i {
			key = append(key, 0x00)
		}
		key = append(key, p...)
	}
	return key
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read committed data for a key, nil if not found
//
// reads outside of a transaction do not see uncommitted writes
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p || nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a committed record and decode as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Criticalf("pool.GetN truncated record for: %x: %x", key, buffer)
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p || nil == p.dataAccess {
		return false
	}
	found, err := p.dataAccess.Has(p.prefixKey(key))
	fault.PanicIfError("pool.Has", err)
	return found
}
