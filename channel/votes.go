// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/bitmark-inc/notaryrelay/quorum"
)

// Voter - notary identity
func (v OutboundVote) Voter() string { return v.Notary }

// Matches - outbound votes agree on the reported status
func (v OutboundVote) Matches(other quorum.Vote) bool {
	o, ok := other.(OutboundVote)
	return ok && o.Status == v.Status
}

// Voter - notary identity
func (v InboundVote) Voter() string { return v.Notary }

// Matches - inbound votes agree on every payload field
func (v InboundVote) Matches(other quorum.Vote) bool {
	o, ok := other.(InboundVote)
	return ok && o.Payload.Equal(v.Payload)
}

// Ballots - votes in evaluator form
func (p *OutboundProposal) Ballots() []quorum.Vote {
	votes := make([]quorum.Vote, 0, len(p.Votes))
	for _, v := range p.Votes {
		votes = append(votes, v)
	}
	return votes
}

// Ballots - votes in evaluator form
func (p *InboundProposal) Ballots() []quorum.Vote {
	votes := make([]quorum.Vote, 0, len(p.Votes))
	for _, v := range p.Votes {
		votes = append(votes, v)
	}
	return votes
}
