// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/notaryrelay/asset"
	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
	"github.com/bitmark-inc/notaryrelay/quorum"
)

// CreateOutboundProposal - queue a locked transfer for the notaries
//
// returns the allocated proposal sequence
func (c *Contract) CreateOutboundProposal(l ledger.Ledger, ctx ledger.Context, request TransferRequest) (uint64, error) {
	outbound, err := getOutbound(l, ctx.Contract)
	if nil != err {
		return 0, c.readFailure("outbound channel", err)
	}

	if !channel.FieldsFit(request.FromAsset, request.ToAsset, request.From, request.To) {
		return 0, c.reject("create", fault.ErrInvalidPayload)
	}

	_, found, err := getReference(l, ctx.Contract, request.FromAsset, request.ReferenceSeq)
	if nil != err {
		return 0, c.storageFailure("read reference", err)
	}
	if found {
		return 0, c.reject("create", fault.ErrDuplicateSubmission)
	}

	proof, err := asset.GetProof(l, request.FromAsset, request.ReferenceSeq)
	if fault.ErrProofNotFound == err {
		return 0, c.reject("create", fault.ErrUnverifiedSource)
	} else if nil != err {
		return 0, c.storageFailure("read proof", err)
	}
	if proof.Seq != request.ReferenceSeq ||
		proof.From != request.From ||
		proof.Recipient != request.To ||
		proof.Amount != request.Amount ||
		proof.Channel != ctx.Contract {
		return 0, c.reject("create", fault.ErrUnverifiedSource)
	}

	seq := outbound.InitSeq + 1
	proposal := &channel.OutboundProposal{
		Payload: channel.Payload{
			Seq:         seq,
			Amount:      request.Amount,
			From:        request.From,
			To:          request.To,
			FromAsset:   request.FromAsset,
			ToAsset:     request.ToAsset,
			FromChannel: outbound.FromChannel,
			ToChannel:   outbound.ToChannel,
			FromChain:   outbound.FromChain,
			ToChain:     outbound.ToChain,
		},
		Status: channel.Initial,
	}
	outbound.InitSeq = seq

	w := newWriteSet(ctx.Contract)
	w.set(channel.OutboundProposalKey(seq), proposal.Pack())
	w.set(channel.OutboundKey, outbound.Pack())
	w.setN(channel.ReferenceKey(request.FromAsset, request.ReferenceSeq), seq)
	if err := w.apply(l); nil != err {
		return 0, c.storageFailure("write proposal", err)
	}

	c.log.Infof("outbound proposal: %d  amount: %d  %s → %s  digest: %s", seq, request.Amount, request.From, request.To, proposal.Payload.DigestString())
	return seq, nil
}

// SubmitOutboundVote - record a notary's report of the source side outcome
//
// returns the proposal status after the vote
func (c *Contract) SubmitOutboundVote(l ledger.Ledger, ctx ledger.Context, seq uint64, status channel.Status) (channel.Status, error) {
	outbound, err := getOutbound(l, ctx.Contract)
	if nil != err {
		return 0, c.readFailure("outbound channel", err)
	}

	if !quorum.IsNotary(outbound.Notaries, ctx.Caller) {
		return 0, c.reject("outbound vote", fault.ErrNotAuthorised)
	}
	if seq != outbound.CompleteSeq+1 {
		c.log.Warnf("outbound vote: seq: %d  expected: %d", seq, outbound.CompleteSeq+1)
		return 0, fault.ErrOutOfOrder
	}

	proposal, found, err := getOutboundProposal(l, ctx.Contract, seq)
	if nil != err {
		return 0, c.storageFailure("read outbound proposal", err)
	}
	if !found {
		return 0, c.reject("outbound vote", fault.ErrUnknownProposal)
	}

	ballots := proposal.Ballots()
	if quorum.HasVoted(ballots, ctx.Caller) {
		return 0, c.reject("outbound vote", fault.ErrDuplicateVote)
	}

	vote := channel.OutboundVote{
		Notary: ctx.Caller,
		Status: status,
	}
	decision := quorum.Evaluate(outbound.Notaries, ballots, vote)
	proposal.Votes = append(proposal.Votes, vote)

	c.log.Debugf("outbound vote: %d  notary: %s  status: %s  votes: %d  decision: %s", seq, ctx.Caller, status, len(proposal.Votes), decision)

	refund := false
	switch decision {
	case quorum.Pending:
		proposal.Status = channel.Processing

	case quorum.Disagreed:
		proposal.Status = channel.Fail
		refund = true

	case quorum.Agreed:
		switch status {
		case channel.Fail:
			proposal.Status = channel.Fail
			refund = true
		case channel.Success:
			proposal.Status = channel.Success
		default:
			c.log.Warnf("outbound vote: %d  unanimous status: %d", seq, status)
			return 0, fault.ErrInvalidVoteValue
		}
	}

	if refund {
		p := proposal.Payload
		if err := l.Transfer(p.FromAsset, ctx.Contract, p.From, p.Amount); nil != err {
			return 0, c.storageFailure("refund", err)
		}
	}

	w := newWriteSet(ctx.Contract)
	w.set(channel.OutboundProposalKey(seq), proposal.Pack())
	if proposal.Status.IsTerminal() {
		outbound.CompleteSeq = seq
		w.set(channel.OutboundKey, outbound.Pack())
	}
	if err := w.apply(l); nil != err {
		return 0, c.storageFailure("write outbound vote", err)
	}

	if proposal.Status.IsTerminal() {
		c.log.Infof("outbound proposal: %d  decided: %s  refund: %t", seq, proposal.Status, refund)
	}
	return proposal.Status, nil
}

// pass not found errors through and hide anything else
func (c *Contract) readFailure(operation string, err error) error {
	if fault.IsErrNotFound(err) {
		return c.reject(operation, err)
	}
	return c.storageFailure(operation, err)
}

func (c *Contract) reject(operation string, err error) error {
	c.log.Warnf("%s: rejected: %s", operation, err)
	return err
}
