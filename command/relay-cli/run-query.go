// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

type channelsReply struct {
	Contract string            `json:"contract"`
	Outbound *channel.Outbound `json:"outbound"`
	Inbound  *channel.Inbound  `json:"inbound"`
}

type outboundReply struct {
	Digest   string                    `json:"digest"`
	Status   string                    `json:"status"`
	Proposal *channel.OutboundProposal `json:"proposal"`
}

type inboundReply struct {
	Status   string                   `json:"status"`
	Proposal *channel.InboundProposal `json:"proposal"`
}

func runChannel(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return showChannels(m)
}

func runProposal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seq := c.Uint64("seq")
	switch direction := c.String("direction"); direction {
	case "outbound", "out", "o":
		return showOutboundProposal(m, seq)
	case "inbound", "in", "i":
		return showInboundProposal(m, seq)
	default:
		return fmt.Errorf("direction: %q can only be outbound/inbound", direction)
	}
}

func showChannels(m *metadata) error {
	reply := channelsReply{
		Contract: m.config.Contract,
	}
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		reply.Outbound, err = m.contract.Outbound(l, m.config.Contract)
		if nil != err {
			return err
		}
		reply.Inbound, err = m.contract.Inbound(l, m.config.Contract)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func showOutboundProposal(m *metadata, seq uint64) error {
	var proposal *channel.OutboundProposal
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		proposal, err = m.contract.OutboundProposal(l, m.config.Contract, seq)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, outboundReply{
		Digest:   proposal.Payload.DigestString(),
		Status:   proposal.Status.String(),
		Proposal: proposal,
	})
}

func showInboundProposal(m *metadata, seq uint64) error {
	var proposal *channel.InboundProposal
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		proposal, err = m.contract.InboundProposal(l, m.config.Contract, seq)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, inboundReply{
		Status:   proposal.Status.String(),
		Proposal: proposal,
	})
}
