// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the ledger facade seen by the relay contract
//
// the storage backed implementation keeps:
//
//   balances         B: asset ++ 0x00 ++ owner          → BigEndian(amount)
//   issue markers    I: asset ++ 0x00 ++ BigEndian(seq) → recipient
//   account metadata M: account ++ 0x00 ++ key          → value
//
// every invocation runs in one storage transaction
package ledger
