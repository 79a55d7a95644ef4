// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// All writes go through a Transaction which collects them in a single
// LevelDB batch; nothing is visible to readers outside the
// transaction until Commit, and Abort discards everything.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++      = concatenation of byte data
// 3. account = account or contract address as utf-8 bytes
// 4. seq     = big endian uint64 (8 bytes)
//
// Metadata:
//
//   M ++ account ++ 0x00 ++ key   - per account key/value metadata
//                                   data: packed record (see channel package)
//
// Balances:
//
//   B ++ asset ++ 0x00 ++ owner   - balance of owner on an asset account
//                                   data: big endian uint64
//
// Issues:
//
//   I ++ asset ++ 0x00 ++ seq     - marker of a completed issuance for a
//                                   relay sequence
//                                   data: big endian uint64 amount
//
// Testing:
//
//   Z ++ key                      - testing data
package storage
