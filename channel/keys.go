// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"strconv"
)

// metadata keys on the relay contract account
const (
	OutboundKey = "outbound_channel"
	InboundKey  = "inbound_channel"

	outboundProposalPrefix  = "outbound_proposal_"
	inboundProposalPrefix   = "inbound_proposal_"
	outboundReferencePrefix = "outbound_reference_"
)

// OutboundProposalKey - key of an outbound proposal
func OutboundProposalKey(seq uint64) string {
	return outboundProposalPrefix + strconv.FormatUint(seq, 10)
}

// InboundProposalKey - key of an inbound proposal
func InboundProposalKey(seq uint64) string {
	return inboundProposalPrefix + strconv.FormatUint(seq, 10)
}

// ReferenceKey - key of the duplicate submission index entry for a
// proof of funds recorded on an asset account
func ReferenceKey(assetAccount string, referenceSeq uint64) string {
	return outboundReferencePrefix + assetAccount + "_" + strconv.FormatUint(referenceSeq, 10)
}
