// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

func runVoteOutbound(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, err := m.context()
	if nil != err {
		return err
	}

	seq := c.Uint64("seq")
	status, err := parseStatus(c.String("status"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "notary: %s\n", ctx.Caller)
		fmt.Fprintf(m.e, "seq: %d  status: %s\n", seq, status)
	}

	result := channel.Status(0)
	err = ledger.Execute(func(l ledger.Ledger) error {
		var err error
		result, err = m.contract.SubmitOutboundVote(l, ctx, seq, status)
		return err
	})
	if nil != err {
		return err
	}

	return printJson(m.w, statusReply{
		Seq:    seq,
		Status: result.String(),
	})
}

func runVoteInbound(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, err := m.context()
	if nil != err {
		return err
	}

	s := c.String("payload")
	if err := checkRequired("payload", s); nil != err {
		return err
	}

	payload := channel.Payload{}
	if err := json.Unmarshal([]byte(s), &payload); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "notary: %s\n", ctx.Caller)
		fmt.Fprintf(m.e, "seq: %d  digest: %s\n", payload.Seq, payload.DigestString())
	}

	result := channel.Status(0)
	err = ledger.Execute(func(l ledger.Ledger) error {
		var err error
		result, err = m.contract.SubmitInboundVote(l, ctx, payload)
		return err
	})
	if nil != err {
		return err
	}

	return printJson(m.w, statusReply{
		Seq:    payload.Seq,
		Status: result.String(),
	})
}
