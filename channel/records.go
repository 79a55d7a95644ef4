// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/bitmark-inc/notaryrelay/fault"
)

// Pack - Payload
func (p Payload) Pack() Packed {
	return p.appendTo(nil)
}

func (p Payload) appendTo(buffer Packed) Packed {
	buffer = buffer.appendUint64(uint64(PayloadTag))
	buffer = buffer.appendUint64(p.Seq)
	buffer = buffer.appendUint64(p.Amount)
	buffer = buffer.appendString(p.From)
	buffer = buffer.appendString(p.To)
	buffer = buffer.appendString(p.FromAsset)
	buffer = buffer.appendString(p.ToAsset)
	buffer = buffer.appendString(p.FromChannel)
	buffer = buffer.appendString(p.ToChannel)
	buffer = buffer.appendString(p.FromChain)
	return buffer.appendString(p.ToChain)
}

// Pack - Outbound
func (c *Outbound) Pack() Packed {
	buffer := Packed{}.appendUint64(uint64(OutboundTag))
	buffer = buffer.appendUint64(c.InitSeq)
	buffer = buffer.appendUint64(c.CompleteSeq)
	buffer = appendList(buffer, c.Notaries)
	buffer = buffer.appendString(c.FromChannel)
	buffer = buffer.appendString(c.ToChannel)
	buffer = buffer.appendString(c.FromChain)
	return buffer.appendString(c.ToChain)
}

// Pack - Inbound
func (c *Inbound) Pack() Packed {
	buffer := Packed{}.appendUint64(uint64(InboundTag))
	buffer = buffer.appendUint64(c.InitSeq)
	buffer = buffer.appendUint64(c.CompleteSeq)
	buffer = appendList(buffer, c.Notaries)
	buffer = buffer.appendString(c.Channel)
	buffer = buffer.appendString(c.Chain)
	buffer = buffer.appendString(c.PeerChannel)
	return buffer.appendString(c.PeerChain)
}

// Pack - OutboundProposal
func (p *OutboundProposal) Pack() Packed {
	buffer := Packed{}.appendUint64(uint64(OutboundProposalTag))
	buffer = p.Payload.appendTo(buffer)
	buffer = buffer.appendUint64(uint64(p.Status))
	buffer = buffer.appendUint64(uint64(len(p.Votes)))
	for _, v := range p.Votes {
		buffer = buffer.appendString(v.Notary)
		buffer = buffer.appendUint64(uint64(v.Status))
	}
	return buffer
}

// Pack - InboundProposal
func (p *InboundProposal) Pack() Packed {
	buffer := Packed{}.appendUint64(uint64(InboundProposalTag))
	buffer = buffer.appendUint64(uint64(p.Status))
	buffer = buffer.appendUint64(uint64(len(p.Votes)))
	for _, v := range p.Votes {
		buffer = buffer.appendString(v.Notary)
		buffer = v.Payload.appendTo(buffer)
	}
	return buffer
}

// Pack - Proof
func (p *Proof) Pack() Packed {
	buffer := Packed{}.appendUint64(uint64(ProofTag))
	buffer = buffer.appendUint64(p.Seq)
	buffer = buffer.appendString(p.From)
	buffer = buffer.appendString(p.Channel)
	buffer = buffer.appendString(p.Recipient)
	return buffer.appendUint64(p.Amount)
}

func appendList(buffer Packed, items []string) Packed {
	buffer = buffer.appendUint64(uint64(len(items)))
	for _, s := range items {
		buffer = buffer.appendString(s)
	}
	return buffer
}

// UnpackPayload - decode a packed Payload
func UnpackPayload(record Packed) (Payload, error) {
	u := newUnpacker(record)
	p := u.payload()
	if err := u.finish(); nil != err {
		return Payload{}, err
	}
	return p, nil
}

// UnpackOutbound - decode a packed Outbound channel
func UnpackOutbound(record Packed) (*Outbound, error) {
	u := newUnpacker(record)
	u.tag(OutboundTag)
	c := &Outbound{
		InitSeq:     u.uint64(),
		CompleteSeq: u.uint64(),
		Notaries:    u.list(),
		FromChannel: u.string(),
		ToChannel:   u.string(),
		FromChain:   u.string(),
		ToChain:     u.string(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return c, nil
}

// UnpackInbound - decode a packed Inbound channel
func UnpackInbound(record Packed) (*Inbound, error) {
	u := newUnpacker(record)
	u.tag(InboundTag)
	c := &Inbound{
		InitSeq:     u.uint64(),
		CompleteSeq: u.uint64(),
		Notaries:    u.list(),
		Channel:     u.string(),
		Chain:       u.string(),
		PeerChannel: u.string(),
		PeerChain:   u.string(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return c, nil
}

// UnpackOutboundProposal - decode a packed OutboundProposal
func UnpackOutboundProposal(record Packed) (*OutboundProposal, error) {
	u := newUnpacker(record)
	u.tag(OutboundProposalTag)
	p := &OutboundProposal{
		Payload: u.payload(),
		Status:  Status(u.uint64()),
	}
	count := u.count()
	for i := 0; i < count; i += 1 {
		p.Votes = append(p.Votes, OutboundVote{
			Notary: u.string(),
			Status: Status(u.uint64()),
		})
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return p, nil
}

// UnpackInboundProposal - decode a packed InboundProposal
func UnpackInboundProposal(record Packed) (*InboundProposal, error) {
	u := newUnpacker(record)
	u.tag(InboundProposalTag)
	p := &InboundProposal{
		Status: Status(u.uint64()),
	}
	count := u.count()
	for i := 0; i < count; i += 1 {
		p.Votes = append(p.Votes, InboundVote{
			Notary:  u.string(),
			Payload: u.payload(),
		})
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return p, nil
}

// UnpackProof - decode a packed Proof
func UnpackProof(record Packed) (*Proof, error) {
	u := newUnpacker(record)
	u.tag(ProofTag)
	p := &Proof{
		Seq:       u.uint64(),
		From:      u.string(),
		Channel:   u.string(),
		Recipient: u.string(),
		Amount:    u.uint64(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return p, nil
}

func (u *unpacker) payload() Payload {
	u.tag(PayloadTag)
	return Payload{
		Seq:         u.uint64(),
		Amount:      u.uint64(),
		From:        u.string(),
		To:          u.string(),
		FromAsset:   u.string(),
		ToAsset:     u.string(),
		FromChannel: u.string(),
		ToChannel:   u.string(),
		FromChain:   u.string(),
		ToChain:     u.string(),
	}
}

// number of entries in a following list
func (u *unpacker) count() int {
	n := u.uint64()
	if nil == u.err && n > MaxListLength {
		u.err = fault.ErrNotRecordPack
	}
	if nil != u.err {
		return 0
	}
	return int(n)
}

func (u *unpacker) list() []string {
	count := u.count()
	if 0 == count {
		return nil
	}
	items := make([]string, 0, count)
	for i := 0; i < count; i += 1 {
		items = append(items, u.string())
	}
	return items
}

// Unpack - decode any packed record by its leading tag
func Unpack(record Packed) (interface{}, error) {
	u := newUnpacker(record)
	tag := TagType(u.uint64())
	if nil != u.err {
		return nil, u.err
	}
	switch tag {
	case OutboundTag:
		return UnpackOutbound(record)
	case InboundTag:
		return UnpackInbound(record)
	case OutboundProposalTag:
		return UnpackOutboundProposal(record)
	case InboundProposalTag:
		return UnpackInboundProposal(record)
	case PayloadTag:
		return UnpackPayload(record)
	case ProofTag:
		return UnpackProof(record)
	default:
		return nil, fault.ErrNotRecordPack
	}
}
