// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

// metadata keys on an asset account
const (
	proofPrefix = "tx_"
	sequenceKey = "proof_seq"
)

// ProofKey - metadata key of a proof record
func ProofKey(seq uint64) string {
	return proofPrefix + strconv.FormatUint(seq, 10)
}

// Lock - move amount from sender to a channel contract and record the
// proof for later submission as an outbound proposal
//
// returns the proof sequence number
func Lock(l ledger.Ledger, assetAccount string, from string, channelAddress string, recipient string, amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fault.ErrInvalidAmount
	}
	if !channel.FieldsFit(from, channelAddress, recipient) {
		return 0, fault.ErrInvalidPayload
	}

	err := l.Transfer(assetAccount, from, channelAddress, amount)
	if nil != err {
		return 0, err
	}

	seq, err := lastSequence(l, assetAccount)
	if nil != err {
		return 0, err
	}
	seq += 1

	proof := &channel.Proof{
		Seq:       seq,
		From:      from,
		Channel:   channelAddress,
		Recipient: recipient,
		Amount:    amount,
	}

	err = l.SetMetadata(assetAccount, ProofKey(seq), proof.Pack())
	if nil != err {
		return 0, err
	}

	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, seq)
	err = l.SetMetadata(assetAccount, sequenceKey, buffer)
	if nil != err {
		return 0, err
	}

	return seq, nil
}

// GetProof - fetch a proof record
func GetProof(l ledger.Ledger, assetAccount string, seq uint64) (*channel.Proof, error) {
	packed, found, err := l.GetMetadata(assetAccount, ProofKey(seq))
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrProofNotFound
	}
	return channel.UnpackProof(packed)
}

func lastSequence(l ledger.Ledger, assetAccount string) (uint64, error) {
	buffer, found, err := l.GetMetadata(assetAccount, sequenceKey)
	if nil != err || !found {
		return 0, err
	}
	if 8 != len(buffer) {
		return 0, fault.ErrNotRecordPack
	}
	return binary.BigEndian.Uint64(buffer), nil
}
