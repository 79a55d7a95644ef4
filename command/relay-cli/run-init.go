// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/notaryrelay/ledger"
	"github.com/bitmark-inc/notaryrelay/relay"
)

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, err := m.context()
	if nil != err {
		return err
	}

	setup := relay.ChannelSetup{
		Notaries:    m.config.Notaries,
		Chain:       m.config.ChainID,
		PeerChannel: m.config.Peer.Channel,
		PeerChain:   m.config.Peer.ChainID,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "contract: %s\n", ctx.Contract)
		fmt.Fprintf(m.e, "chain: %s\n", setup.Chain)
		fmt.Fprintf(m.e, "peer: %s/%s\n", setup.PeerChain, setup.PeerChannel)
		fmt.Fprintf(m.e, "notaries: %v\n", setup.Notaries)
	}

	err = ledger.Execute(func(l ledger.Ledger) error {
		return m.contract.InitialiseChannels(l, ctx, setup)
	})
	if nil != err {
		return err
	}

	return showChannels(m)
}
