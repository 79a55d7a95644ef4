// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// TagType - type code for packed records
// this is encoded a Varint64 at start of "Packed"
type TagType uint64

// enumerate the record types
const (
	NullTag             = TagType(iota) // not a record
	OutboundTag         = TagType(iota) // outbound channel
	InboundTag          = TagType(iota) // inbound channel
	OutboundProposalTag = TagType(iota) // proposal on the source ledger
	InboundProposalTag  = TagType(iota) // proposal on the destination ledger
	PayloadTag          = TagType(iota) // transfer descriptor
	ProofTag            = TagType(iota) // proof of funds on an asset account
)

// Status - execution state of a proposal
type Status uint64

// proposal states, values are part of the stored format
const (
	Initial    Status = 1
	Processing Status = 2
	Fail       Status = 3
	Success    Status = 4
)

// IsTerminal - true once a proposal is decided
func (s Status) IsTerminal() bool {
	return Fail == s || Success == s
}

func (s Status) String() string {
	switch s {
	case Initial:
		return "initial"
	case Processing:
		return "processing"
	case Fail:
		return "fail"
	case Success:
		return "success"
	default:
		return "invalid"
	}
}

// Payload - the immutable transfer descriptor
type Payload struct {
	Seq         uint64 `json:"seq"`
	Amount      uint64 `json:"amount"`
	From        string `json:"from"`
	To          string `json:"to"`
	FromAsset   string `json:"fromAsset"`
	ToAsset     string `json:"toAsset"`
	FromChannel string `json:"fromChannel"`
	ToChannel   string `json:"toChannel"`
	FromChain   string `json:"fromChain"`
	ToChain     string `json:"toChain"`
}

// Outbound - channel record on the source ledger
type Outbound struct {
	InitSeq     uint64   `json:"initSeq"`
	CompleteSeq uint64   `json:"completeSeq"`
	Notaries    []string `json:"notaries"`
	FromChannel string   `json:"fromChannel"`
	ToChannel   string   `json:"toChannel"`
	FromChain   string   `json:"fromChain"`
	ToChain     string   `json:"toChain"`
}

// Inbound - channel record on the destination ledger
type Inbound struct {
	InitSeq     uint64   `json:"initSeq"`
	CompleteSeq uint64   `json:"completeSeq"`
	Notaries    []string `json:"notaries"`
	Channel     string   `json:"channel"`
	Chain       string   `json:"chain"`
	PeerChannel string   `json:"peerChannel"`
	PeerChain   string   `json:"peerChain"`
}

// OutboundVote - a notary's report of the source side outcome
type OutboundVote struct {
	Notary string `json:"notary"`
	Status Status `json:"status"`
}

// OutboundProposal - one transfer leaving the source ledger
type OutboundProposal struct {
	Payload Payload        `json:"payload"`
	Status  Status         `json:"status"`
	Votes   []OutboundVote `json:"votes"`
}

// InboundVote - a notary's full copy of the payload it observed
type InboundVote struct {
	Notary  string  `json:"notary"`
	Payload Payload `json:"payload"`
}

// InboundProposal - one transfer arriving on the destination ledger
type InboundProposal struct {
	Status Status        `json:"status"`
	Votes  []InboundVote `json:"votes"`
}

// Proof - record of funds locked into a channel by a local transfer
type Proof struct {
	Seq       uint64 `json:"seq"`
	From      string `json:"from"`
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

// Equal - byte for byte comparison of the packed forms
func (p Payload) Equal(other Payload) bool {
	return string(p.Pack()) == string(other.Pack())
}

// Digest - SHA3-256 of the packed payload
func (p Payload) Digest() [32]byte {
	return sha3.Sum256(p.Pack())
}

// DigestString - hex digest for logs and display
func (p Payload) DigestString() string {
	d := p.Digest()
	return hex.EncodeToString(d[:])
}

// Payload - the first submitted copy, which created the proposal
func (p *InboundProposal) Payload() (Payload, bool) {
	if 0 == len(p.Votes) {
		return Payload{}, false
	}
	return p.Votes[0].Payload, true
}
