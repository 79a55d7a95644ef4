// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/notaryrelay/asset"
	"github.com/bitmark-inc/notaryrelay/ledger"
	"github.com/bitmark-inc/notaryrelay/relay"
)

type balanceReply struct {
	Asset   string `json:"asset"`
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

func runCredit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetAccount := c.String("asset")
	if err := checkRequired("asset", assetAccount); nil != err {
		return err
	}
	owner, err := m.owner(c.String("owner"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if err := checkAmount(amount); nil != err {
		return err
	}

	if err := ledger.Credit(assetAccount, owner, amount); nil != err {
		return err
	}

	return printBalance(m, assetAccount, owner)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetAccount := c.String("asset")
	if err := checkRequired("asset", assetAccount); nil != err {
		return err
	}
	owner, err := m.owner(c.String("owner"))
	if nil != err {
		return err
	}

	return printBalance(m, assetAccount, owner)
}

func printBalance(m *metadata, assetAccount string, owner string) error {
	balance, err := ledger.Balance(assetAccount, owner)
	if nil != err {
		return err
	}
	return printJson(m.w, balanceReply{
		Asset:   assetAccount,
		Owner:   owner,
		Balance: balance,
	})
}

func runLock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, err := m.context()
	if nil != err {
		return err
	}

	assetAccount := c.String("asset")
	if err := checkRequired("asset", assetAccount); nil != err {
		return err
	}
	to := c.String("to")
	if err := checkRequired("to", to); nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if err := checkAmount(amount); nil != err {
		return err
	}

	seq := uint64(0)
	err = ledger.Execute(func(l ledger.Ledger) error {
		var err error
		seq, err = asset.Lock(l, assetAccount, ctx.Caller, ctx.Contract, to, amount)
		return err
	})
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "locked: %d from: %s into: %s\n", amount, ctx.Caller, ctx.Contract)
	}

	return printJson(m.w, struct {
		Asset        string `json:"asset"`
		ReferenceSeq uint64 `json:"referenceSeq"`
	}{
		Asset:        assetAccount,
		ReferenceSeq: seq,
	})
}

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, err := m.context()
	if nil != err {
		return err
	}

	request := relay.TransferRequest{
		FromAsset:    c.String("from-asset"),
		ToAsset:      c.String("to-asset"),
		Amount:       c.Uint64("amount"),
		From:         ctx.Caller,
		To:           c.String("to"),
		ReferenceSeq: c.Uint64("reference"),
	}

	for _, item := range [][2]string{
		{"from-asset", request.FromAsset},
		{"to-asset", request.ToAsset},
		{"to", request.To},
	} {
		if err := checkRequired(item[0], item[1]); nil != err {
			return err
		}
	}
	if err := checkAmount(request.Amount); nil != err {
		return err
	}

	seq := uint64(0)
	err = ledger.Execute(func(l ledger.Ledger) error {
		var err error
		seq, err = m.contract.CreateOutboundProposal(l, ctx, request)
		return err
	})
	if nil != err {
		return err
	}

	return showOutboundProposal(m, seq)
}
