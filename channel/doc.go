// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package channel - relay channel and proposal records
//
// Every record is stored as ledger metadata in packed form:
//
//   Varint64(tag) ++ fields
//
// integers are Varint64, strings are Varint64(length) ++ utf-8 bytes
// and lists are Varint64(count) ++ entries.  A payload nested in a
// proposal is written inline including its own tag.
//
// Two payloads are the same only if their packed bytes are identical,
// which is how notary copies are cross checked on the inbound side.
package channel
