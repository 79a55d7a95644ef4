// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/storage"
)

const (
	testingDirName = "testing"
)

func databaseName() string {
	return filepath.Join(testingDirName, "test.leveldb")
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseName(), storage.ReadWrite)
	require.NoError(t, err, "storage initialise")
}

// post test cleanup
func teardown() {
	storage.Finalise()
	removeFiles()
}

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseName(), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestCommitIsVisible(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)

	trx.Put(storage.Pool.TestData, []byte("key-one"), []byte("data-one"))
	trx.PutN(storage.Pool.TestData, []byte("key-two"), 42)

	assert.Nil(t, storage.Pool.TestData.Get([]byte("key-one")), "uncommitted write visible")

	err = trx.Commit()
	require.NoError(t, err)

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("key-one")))
	n, found := storage.Pool.TestData.GetN([]byte("key-two"))
	assert.True(t, found)
	assert.Equal(t, uint64(42), n)
	assert.False(t, trx.InUse(), "transaction not released")
}

func TestReadOwnWrites(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)
	defer trx.Abort()

	key := []byte("pending")

	value, err := trx.Get(storage.Pool.TestData, key)
	assert.NoError(t, err)
	assert.Nil(t, value, "value before put")

	trx.Put(storage.Pool.TestData, key, []byte("v1"))
	value, err = trx.Get(storage.Pool.TestData, key)
	assert.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	found, err := trx.Has(storage.Pool.TestData, key)
	assert.NoError(t, err)
	assert.True(t, found)

	trx.Delete(storage.Pool.TestData, key)
	value, err = trx.Get(storage.Pool.TestData, key)
	assert.NoError(t, err)
	assert.Nil(t, value, "value after delete")

	found, err = trx.Has(storage.Pool.TestData, key)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteCommittedKey(t *testing.T) {
	setup(t)
	defer teardown()

	key := []byte("doomed")

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)
	trx.Put(storage.Pool.TestData, key, []byte("x"))
	require.NoError(t, trx.Commit())

	trx, err = storage.NewDBTransaction()
	require.NoError(t, err)
	trx.Delete(storage.Pool.TestData, key)

	value, err := trx.Get(storage.Pool.TestData, key)
	assert.NoError(t, err)
	assert.Nil(t, value, "deleted key still readable in transaction")
	require.NoError(t, trx.Commit())

	assert.False(t, storage.Pool.TestData.Has(key))
}

func TestAbortDiscards(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)

	trx.Put(storage.Pool.TestData, []byte("abort-me"), []byte("x"))
	trx.Abort()

	assert.False(t, storage.Pool.TestData.Has([]byte("abort-me")))

	trx, err = storage.NewDBTransaction()
	require.NoError(t, err, "transaction not released by abort")

	value, err := trx.Get(storage.Pool.TestData, []byte("abort-me"))
	assert.NoError(t, err)
	assert.Nil(t, value, "aborted write leaked into next transaction")
	trx.Abort()
}

func TestSingleTransaction(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err)

	trx.Abort()
}

func TestPoolsAreSeparate(t *testing.T) {
	setup(t)
	defer teardown()

	key := storage.CompoundKey([]byte("account"), []byte("key"))

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)
	trx.Put(storage.Pool.Metadata, key, []byte("meta"))
	require.NoError(t, trx.Commit())

	assert.True(t, storage.Pool.Metadata.Has(key))
	assert.False(t, storage.Pool.Balances.Has(key))
	assert.False(t, storage.Pool.TestData.Has(key))
}

func TestCompoundKey(t *testing.T) {
	assert.Equal(t, []byte("a\x00b\x00c"), storage.CompoundKey([]byte("a"), []byte("b"), []byte("c")))
	assert.Equal(t, []byte("single"), storage.CompoundKey([]byte("single")))
	assert.NotEqual(t,
		storage.CompoundKey([]byte("ab"), []byte("c")),
		storage.CompoundKey([]byte("a"), []byte("bc")),
	)
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)
	for _, k := range []string{"key-a", "key-b", "key-c", "key-d", "key-e"} {
		trx.Put(storage.Pool.TestData, []byte(k), []byte("data-"+k))
	}
	require.NoError(t, trx.Commit())

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, []byte("key-a"), first[0].Key)
	assert.Equal(t, []byte("key-b"), first[1].Key)

	rest, err := cursor.Fetch(10)
	require.NoError(t, err)
	require.Len(t, rest, 3)
	assert.Equal(t, []byte("key-c"), rest[0].Key)
	assert.Equal(t, []byte("data-key-e"), rest[2].Value)

	none, err := cursor.Fetch(1)
	assert.NoError(t, err)
	assert.Len(t, none, 0)

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err)

	seeked, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-d")).Fetch(5)
	require.NoError(t, err)
	assert.Len(t, seeked, 2)

	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}
