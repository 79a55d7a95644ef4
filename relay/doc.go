// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package relay - notary quorum relay contract
//
// one contract account holds an outbound channel towards a peer ledger
// and an inbound channel from it.
//
// outbound: a locked transfer becomes a proposal; notaries then vote
// the source side status; any disagreement or a unanimous fail
// refunds the sender, a unanimous success closes it.
//
// inbound: each notary submits its own copy of the payload; copies must
// agree byte for byte; at quorum the amount is issued to the recipient.
//
// votes are only accepted for the proposal at the head of a channel,
// so each channel completes strictly in sequence.  A fund movement is
// made before the metadata writes, and the caller runs everything
// inside ledger.Execute so a failure leaves no trace.
package relay
