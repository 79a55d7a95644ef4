// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"encoding/binary"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

// metadata writes staged until every check and fund movement of a call
// has succeeded
type writeSet struct {
	account string
	keys    []string
	values  [][]byte
}

func newWriteSet(account string) *writeSet {
	return &writeSet{
		account: account,
	}
}

func (w *writeSet) set(key string, value []byte) {
	w.keys = append(w.keys, key)
	w.values = append(w.values, value)
}

func (w *writeSet) setN(key string, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	w.set(key, buffer)
}

// stop at the first failure, the enclosing invocation discards the rest
func (w *writeSet) apply(l ledger.Ledger) error {
	for i, key := range w.keys {
		if err := l.SetMetadata(w.account, key, w.values[i]); nil != err {
			return err
		}
	}
	return nil
}

// readers for the persisted records
//
// a facade error is returned as is; a record that cannot be decoded is
// reported with the record class error

func getOutbound(l ledger.Ledger, account string) (*channel.Outbound, error) {
	packed, found, err := l.GetMetadata(account, channel.OutboundKey)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrChannelNotFound
	}
	return channel.UnpackOutbound(packed)
}

func getInbound(l ledger.Ledger, account string) (*channel.Inbound, error) {
	packed, found, err := l.GetMetadata(account, channel.InboundKey)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrChannelNotFound
	}
	return channel.UnpackInbound(packed)
}

// second result false if no proposal is stored
func getOutboundProposal(l ledger.Ledger, account string, seq uint64) (*channel.OutboundProposal, bool, error) {
	packed, found, err := l.GetMetadata(account, channel.OutboundProposalKey(seq))
	if nil != err || !found {
		return nil, false, err
	}
	p, err := channel.UnpackOutboundProposal(packed)
	if nil != err {
		return nil, false, err
	}
	return p, true, nil
}

// second result false if no proposal is stored
func getInboundProposal(l ledger.Ledger, account string, seq uint64) (*channel.InboundProposal, bool, error) {
	packed, found, err := l.GetMetadata(account, channel.InboundProposalKey(seq))
	if nil != err || !found {
		return nil, false, err
	}
	p, err := channel.UnpackInboundProposal(packed)
	if nil != err {
		return nil, false, err
	}
	return p, true, nil
}

// second result false if no reference is stored
func getReference(l ledger.Ledger, account string, assetAccount string, referenceSeq uint64) (uint64, bool, error) {
	buffer, found, err := l.GetMetadata(account, channel.ReferenceKey(assetAccount, referenceSeq))
	if nil != err || !found {
		return 0, false, err
	}
	if 8 != len(buffer) {
		return 0, false, fault.ErrNotRecordPack
	}
	return binary.BigEndian.Uint64(buffer), true, nil
}
