// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/storage"
)

// ledger state inside one storage transaction
type storedLedger struct {
	log *logger.L
	trx storage.Transaction
}

func metadataKey(account string, key string) []byte {
	return storage.CompoundKey([]byte(account), []byte(key))
}

func balanceKey(assetAccount string, owner string) []byte {
	return storage.CompoundKey([]byte(assetAccount), []byte(owner))
}

func issueKey(assetAccount string, referenceSeq uint64) []byte {
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, referenceSeq)
	return storage.CompoundKey([]byte(assetAccount), seq)
}

// GetMetadata - value stored under account and key
//
// second result is false if nothing is stored
func (l *storedLedger) GetMetadata(account string, key string) ([]byte, bool, error) {
	value, err := l.trx.Get(storage.Pool.Metadata, metadataKey(account, key))
	if nil != err {
		return nil, false, err
	}
	return value, nil != value, nil
}

// SetMetadata - store value under account and key
func (l *storedLedger) SetMetadata(account string, key string, value []byte) error {
	l.trx.Put(storage.Pool.Metadata, metadataKey(account, key), value)
	return nil
}

// Transfer - move amount between two owners of an asset account
func (l *storedLedger) Transfer(assetAccount string, from string, to string, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	fromBalance, err := l.balance(assetAccount, from)
	if nil != err {
		return err
	}
	if fromBalance < amount {
		return fault.ErrInsufficientFunds
	}
	l.trx.PutN(storage.Pool.Balances, balanceKey(assetAccount, from), fromBalance-amount)

	err = l.credit(assetAccount, to, amount)
	if nil != err {
		return err
	}

	l.log.Debugf("transfer: %s  %s → %s  amount: %d", assetAccount, from, to, amount)
	return nil
}

// Issue - mint amount to an owner, at most once per reference sequence
func (l *storedLedger) Issue(assetAccount string, to string, referenceSeq uint64, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	key := issueKey(assetAccount, referenceSeq)
	found, err := l.trx.Has(storage.Pool.Issues, key)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrAlreadyIssued
	}

	err = l.credit(assetAccount, to, amount)
	if nil != err {
		return err
	}
	l.trx.Put(storage.Pool.Issues, key, []byte(to))

	l.log.Debugf("issue: %s  seq: %d  to: %s  amount: %d", assetAccount, referenceSeq, to, amount)
	return nil
}

func (l *storedLedger) balance(assetAccount string, owner string) (uint64, error) {
	balance, _, err := l.trx.GetN(storage.Pool.Balances, balanceKey(assetAccount, owner))
	return balance, err
}

func (l *storedLedger) credit(assetAccount string, owner string, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	balance, err := l.balance(assetAccount, owner)
	if nil != err {
		return err
	}
	if balance+amount < balance {
		return fault.ErrInvalidAmount
	}
	l.trx.PutN(storage.Pool.Balances, balanceKey(assetAccount, owner), balance+amount)
	return nil
}
