// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/notaryrelay/asset"
	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/ledger"
	"github.com/bitmark-inc/notaryrelay/relay"
	"github.com/bitmark-inc/notaryrelay/storage"
)

const (
	testingDirName = "testing"

	relayA = "relay-a"
	relayB = "relay-b"
	chainA = "CHAIN_A"
	chainB = "CHAIN_B"
	assetA = "asset-a"
	assetB = "asset-b"

	alice = "alice"
	bob   = "bob"
)

var threeNotaries = []string{"notary-1", "notary-2", "notary-3"}

// configure for testing
func setup(t *testing.T) *relay.Contract {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(filepath.Join(testingDirName, "test.leveldb"), storage.ReadWrite)
	require.NoError(t, err, "storage initialise")

	err = ledger.Initialise()
	require.NoError(t, err, "ledger initialise")

	return relay.New()
}

// post test cleanup
func teardown() {
	_ = ledger.Finalise()
	storage.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// both relay contracts live in the same test ledger under different
// accounts
func initialisePair(t *testing.T, c *relay.Contract, notaries []string) {
	err := ledger.Execute(func(l ledger.Ledger) error {
		return c.InitialiseChannels(l, ledger.Context{Caller: "admin", Contract: relayA}, relay.ChannelSetup{
			Notaries:    notaries,
			Chain:       chainA,
			PeerChannel: relayB,
			PeerChain:   chainB,
		})
	})
	require.NoError(t, err, "initialise: %s", relayA)

	err = ledger.Execute(func(l ledger.Ledger) error {
		return c.InitialiseChannels(l, ledger.Context{Caller: "admin", Contract: relayB}, relay.ChannelSetup{
			Notaries:    notaries,
			Chain:       chainB,
			PeerChannel: relayA,
			PeerChain:   chainA,
		})
	})
	require.NoError(t, err, "initialise: %s", relayB)
}

// lock funds from alice and create the outbound proposal
func send(t *testing.T, c *relay.Contract, amount uint64) uint64 {
	require.NoError(t, ledger.Credit(assetA, alice, amount), "credit")

	seq := uint64(0)
	err := ledger.Execute(func(l ledger.Ledger) error {
		ref, err := asset.Lock(l, assetA, alice, relayA, bob, amount)
		if nil != err {
			return err
		}
		seq, err = c.CreateOutboundProposal(l, ledger.Context{Caller: alice, Contract: relayA}, relay.TransferRequest{
			FromAsset:    assetA,
			ToAsset:      assetB,
			Amount:       amount,
			From:         alice,
			To:           bob,
			ReferenceSeq: ref,
		})
		return err
	})
	require.NoError(t, err, "send")
	return seq
}

func outboundVote(c *relay.Contract, notary string, seq uint64, status channel.Status) (channel.Status, error) {
	result := channel.Status(0)
	err := ledger.Execute(func(l ledger.Ledger) error {
		s, err := c.SubmitOutboundVote(l, ledger.Context{Caller: notary, Contract: relayA}, seq, status)
		result = s
		return err
	})
	return result, err
}

func inboundVote(c *relay.Contract, notary string, payload channel.Payload) (channel.Status, error) {
	result := channel.Status(0)
	err := ledger.Execute(func(l ledger.Ledger) error {
		s, err := c.SubmitInboundVote(l, ledger.Context{Caller: notary, Contract: relayB}, payload)
		result = s
		return err
	})
	return result, err
}

func getOutbound(t *testing.T, c *relay.Contract) *channel.Outbound {
	var outbound *channel.Outbound
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		outbound, err = c.Outbound(l, relayA)
		return err
	})
	require.NoError(t, err, "outbound")
	return outbound
}

func getInbound(t *testing.T, c *relay.Contract) *channel.Inbound {
	var inbound *channel.Inbound
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		inbound, err = c.Inbound(l, relayB)
		return err
	})
	require.NoError(t, err, "inbound")
	return inbound
}

func getOutboundProposal(t *testing.T, c *relay.Contract, seq uint64) *channel.OutboundProposal {
	var proposal *channel.OutboundProposal
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		proposal, err = c.OutboundProposal(l, relayA, seq)
		return err
	})
	require.NoError(t, err, "outbound proposal: %d", seq)
	return proposal
}

func getInboundProposal(t *testing.T, c *relay.Contract, seq uint64) *channel.InboundProposal {
	var proposal *channel.InboundProposal
	err := ledger.Query(func(l ledger.Ledger) error {
		var err error
		proposal, err = c.InboundProposal(l, relayB, seq)
		return err
	})
	require.NoError(t, err, "inbound proposal: %d", seq)
	return proposal
}

func balance(t *testing.T, assetAccount string, owner string) uint64 {
	b, err := ledger.Balance(assetAccount, owner)
	require.NoError(t, err, "balance")
	return b
}
