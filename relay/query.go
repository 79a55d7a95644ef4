// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

// Outbound - the outbound channel record
func (c *Contract) Outbound(l ledger.Ledger, contract string) (*channel.Outbound, error) {
	outbound, err := getOutbound(l, contract)
	if nil != err {
		return nil, c.readFailure("outbound channel", err)
	}
	return outbound, nil
}

// Inbound - the inbound channel record
func (c *Contract) Inbound(l ledger.Ledger, contract string) (*channel.Inbound, error) {
	inbound, err := getInbound(l, contract)
	if nil != err {
		return nil, c.readFailure("inbound channel", err)
	}
	return inbound, nil
}

// OutboundProposal - one outbound proposal
func (c *Contract) OutboundProposal(l ledger.Ledger, contract string, seq uint64) (*channel.OutboundProposal, error) {
	proposal, found, err := getOutboundProposal(l, contract, seq)
	if nil != err {
		return nil, c.storageFailure("read outbound proposal", err)
	}
	if !found {
		return nil, fault.ErrUnknownProposal
	}
	return proposal, nil
}

// InboundProposal - one inbound proposal
func (c *Contract) InboundProposal(l ledger.Ledger, contract string, seq uint64) (*channel.InboundProposal, error) {
	proposal, found, err := getInboundProposal(l, contract, seq)
	if nil != err {
		return nil, c.storageFailure("read inbound proposal", err)
	}
	if !found {
		return nil, fault.ErrUnknownProposal
	}
	return proposal, nil
}

// ReferenceSequence - proposal created from a proof reference
func (c *Contract) ReferenceSequence(l ledger.Ledger, contract string, assetAccount string, referenceSeq uint64) (uint64, error) {
	seq, found, err := getReference(l, contract, assetAccount, referenceSeq)
	if nil != err {
		return 0, c.storageFailure("read reference", err)
	}
	if !found {
		return 0, fault.ErrReferenceNotFound
	}
	return seq, nil
}
