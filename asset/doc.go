// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - local transfers into a relay channel
//
// locking funds moves them from the sender to the channel contract and
// leaves a proof record on the asset account:
//
//   tx_<seq>   packed proof for each lock
//   proof_seq  BigEndian(last seq)
//
// the outbound channel only accepts a proposal backed by such a proof
package asset
