// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

// Contract - the relay contract entry points
//
// holds no state between calls; every result is a function of the
// persisted records and the call's arguments
type Contract struct {
	log *logger.L
}

// New - create a contract handle
func New() *Contract {
	return &Contract{
		log: logger.New("relay"),
	}
}

// ChannelSetup - parameters for creating the channel pair
type ChannelSetup struct {
	Notaries    []string `json:"notaries"`
	Chain       string   `json:"chain"`       // this ledger's chain id
	PeerChannel string   `json:"peerChannel"` // relay contract on the other ledger
	PeerChain   string   `json:"peerChain"`   // other ledger's chain id
}

// TransferRequest - a locked transfer to be carried to the peer ledger
type TransferRequest struct {
	FromAsset    string `json:"fromAsset"`
	ToAsset      string `json:"toAsset"`
	Amount       uint64 `json:"amount"`
	From         string `json:"from"`
	To           string `json:"to"`
	ReferenceSeq uint64 `json:"referenceSeq"` // proof sequence on the source asset account
}

// InitialiseChannels - create the outbound and inbound channel records
func (c *Contract) InitialiseChannels(l ledger.Ledger, ctx ledger.Context, setup ChannelSetup) error {
	if err := validateSetup(ctx, setup); nil != err {
		c.log.Warnf("initialise: %s", err)
		return err
	}

	for _, key := range []string{channel.OutboundKey, channel.InboundKey} {
		_, found, err := l.GetMetadata(ctx.Contract, key)
		if nil != err {
			return c.storageFailure("read channel", err)
		}
		if found {
			c.log.Warnf("initialise: %s: %s already exists", ctx.Contract, key)
			return fault.ErrAlreadyInitialised
		}
	}

	notaries := append([]string(nil), setup.Notaries...)

	outbound := &channel.Outbound{
		Notaries:    notaries,
		FromChannel: ctx.Contract,
		ToChannel:   setup.PeerChannel,
		FromChain:   setup.Chain,
		ToChain:     setup.PeerChain,
	}
	inbound := &channel.Inbound{
		Notaries:    notaries,
		Channel:     ctx.Contract,
		Chain:       setup.Chain,
		PeerChannel: setup.PeerChannel,
		PeerChain:   setup.PeerChain,
	}

	w := newWriteSet(ctx.Contract)
	w.set(channel.OutboundKey, outbound.Pack())
	w.set(channel.InboundKey, inbound.Pack())
	if err := w.apply(l); nil != err {
		return c.storageFailure("write channels", err)
	}

	c.log.Infof("initialised: %s  chain: %s  peer: %s/%s  notaries: %d", ctx.Contract, setup.Chain, setup.PeerChain, setup.PeerChannel, len(notaries))
	return nil
}

func validateSetup(ctx ledger.Context, setup ChannelSetup) error {
	if "" == ctx.Contract || "" == setup.Chain || "" == setup.PeerChannel || "" == setup.PeerChain {
		return fault.ErrInvalidChannelSetup
	}
	if 0 == len(setup.Notaries) || !channel.ListFits(setup.Notaries) {
		return fault.ErrInvalidChannelSetup
	}
	if !channel.FieldsFit(ctx.Contract, setup.Chain, setup.PeerChannel, setup.PeerChain) {
		return fault.ErrInvalidChannelSetup
	}
	seen := make(map[string]struct{}, len(setup.Notaries))
	for _, n := range setup.Notaries {
		if "" == n {
			return fault.ErrInvalidChannelSetup
		}
		if _, ok := seen[n]; ok {
			return fault.ErrInvalidChannelSetup
		}
		seen[n] = struct{}{}
	}
	return nil
}

// log the facade error and hide it behind the storage failure class
func (c *Contract) storageFailure(operation string, err error) error {
	c.log.Errorf("%s: error: %s", operation, err)
	return fault.ErrStorageFailure
}
