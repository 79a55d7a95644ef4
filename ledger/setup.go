// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/storage"
)

// globals
type globalDataType struct {
	sync.Mutex
	log         *logger.L
	initialised bool
}

var globalData globalDataType

// Initialise - set up the storage backed ledger
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop accepting invocations
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Execute - run one contract invocation as a single atomic step
//
// invocations are serialised; the write set is committed only if fn
// succeeds, otherwise it is discarded and nothing becomes visible
func Execute(fn func(Ledger) error) error {
	return run(true, func(l *storedLedger) error {
		return fn(l)
	})
}

// Query - run read only access to ledger state
//
// any writes made by fn are discarded
func Query(fn func(Ledger) error) error {
	return run(false, func(l *storedLedger) error {
		return fn(l)
	})
}

// Credit - add opening funds for an owner
func Credit(assetAccount string, owner string, amount uint64) error {
	return run(true, func(l *storedLedger) error {
		return l.credit(assetAccount, owner, amount)
	})
}

// Balance - committed balance of an owner
func Balance(assetAccount string, owner string) (uint64, error) {
	balance := uint64(0)
	err := run(false, func(l *storedLedger) error {
		b, err := l.balance(assetAccount, owner)
		balance = b
		return err
	})
	return balance, err
}

func run(commit bool, fn func(*storedLedger) error) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	log := globalData.log

	trx, err := storage.NewDBTransaction()
	if nil != err {
		log.Errorf("begin transaction error: %s", err)
		return fault.ErrStorageFailure
	}

	// release the transaction if fn panics
	released := false
	defer func() {
		if !released {
			trx.Abort()
		}
	}()

	l := &storedLedger{
		log: log,
		trx: trx,
	}

	err = fn(l)
	if nil != err || !commit {
		trx.Abort()
		released = true
		return err
	}

	err = trx.Commit()
	released = true
	if nil != err {
		log.Criticalf("commit error: %s", err)
		return fault.ErrStorageFailure
	}
	return nil
}
