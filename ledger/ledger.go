// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Ledger - the operations a contract may perform on ledger state
//
// all calls made inside one Execute belong to one atomic write set
type Ledger interface {
	GetMetadata(account string, key string) ([]byte, bool, error)
	SetMetadata(account string, key string, value []byte) error
	Transfer(assetAccount string, from string, to string, amount uint64) error
	Issue(assetAccount string, to string, referenceSeq uint64, amount uint64) error
}

// Context - identities supplied by the ledger with every invocation
type Context struct {
	Caller   string // identity of the account invoking the contract
	Contract string // address of the contract being invoked
}
