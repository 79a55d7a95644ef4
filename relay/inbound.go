// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
	"github.com/bitmark-inc/notaryrelay/quorum"
)

// SubmitInboundVote - record a notary's copy of a transfer payload
//
// the first copy creates the proposal; returns the proposal status
// after the vote
func (c *Contract) SubmitInboundVote(l ledger.Ledger, ctx ledger.Context, payload channel.Payload) (channel.Status, error) {
	inbound, err := getInbound(l, ctx.Contract)
	if nil != err {
		return 0, c.readFailure("inbound channel", err)
	}

	if !quorum.IsNotary(inbound.Notaries, ctx.Caller) {
		return 0, c.reject("inbound vote", fault.ErrNotAuthorised)
	}
	if err := payload.Check(); nil != err {
		return 0, c.reject("inbound vote", err)
	}
	if payload.ToChain != inbound.Chain || payload.ToChannel != inbound.Channel {
		c.log.Warnf("inbound vote: destination: %s/%s  expected: %s/%s", payload.ToChain, payload.ToChannel, inbound.Chain, inbound.Channel)
		return 0, fault.ErrEndpointMismatch
	}

	seq := payload.Seq
	if seq != inbound.CompleteSeq+1 {
		c.log.Warnf("inbound vote: seq: %d  expected: %d", seq, inbound.CompleteSeq+1)
		return 0, fault.ErrOutOfOrder
	}

	proposal, found, err := getInboundProposal(l, ctx.Contract, seq)
	if nil != err {
		return 0, c.storageFailure("read inbound proposal", err)
	}
	if found && 0 == len(proposal.Votes) {
		return 0, c.storageFailure("read inbound proposal", fault.ErrUnknownProposal)
	}

	vote := channel.InboundVote{
		Notary:  ctx.Caller,
		Payload: payload,
	}

	w := newWriteSet(ctx.Contract)

	if !found {
		proposal = &channel.InboundProposal{
			Status: channel.Initial,
			Votes:  []channel.InboundVote{vote},
		}
		w.set(channel.InboundProposalKey(seq), proposal.Pack())
		if seq > inbound.InitSeq {
			inbound.InitSeq = seq
			w.set(channel.InboundKey, inbound.Pack())
		}
		if err := w.apply(l); nil != err {
			return 0, c.storageFailure("write inbound proposal", err)
		}
		c.log.Infof("inbound proposal: %d  notary: %s  digest: %s", seq, ctx.Caller, payload.DigestString())
		return proposal.Status, nil
	}

	ballots := proposal.Ballots()
	if quorum.HasVoted(ballots, ctx.Caller) {
		return 0, c.reject("inbound vote", fault.ErrDuplicateVote)
	}

	decision := quorum.Evaluate(inbound.Notaries, ballots, vote)
	proposal.Votes = append(proposal.Votes, vote)

	c.log.Debugf("inbound vote: %d  notary: %s  votes: %d  decision: %s", seq, ctx.Caller, len(proposal.Votes), decision)

	switch decision {
	case quorum.Pending:
		proposal.Status = channel.Processing

	case quorum.Disagreed:
		c.log.Warnf("inbound vote: %d  notary: %s  payload mismatch: %s", seq, ctx.Caller, payload.DigestString())
		proposal.Status = channel.Fail

	case quorum.Agreed:
		p, ok := proposal.Payload()
		if !ok {
			return 0, c.storageFailure("inbound proposal payload", fault.ErrUnknownProposal)
		}
		if err := l.Issue(p.ToAsset, p.To, seq, p.Amount); nil != err {
			return 0, c.storageFailure("issue", err)
		}
		proposal.Status = channel.Success
	}

	w.set(channel.InboundProposalKey(seq), proposal.Pack())
	if proposal.Status.IsTerminal() {
		inbound.CompleteSeq = seq
		w.set(channel.InboundKey, inbound.Pack())
	}
	if err := w.apply(l); nil != err {
		return 0, c.storageFailure("write inbound vote", err)
	}

	if proposal.Status.IsTerminal() {
		c.log.Infof("inbound proposal: %d  decided: %s", seq, proposal.Status)
	}
	return proposal.Status, nil
}
