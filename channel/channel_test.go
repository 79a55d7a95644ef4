// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/quorum"
)

var testPayload = channel.Payload{
	Seq:         3,
	Amount:      100,
	From:        "a0012ea403227b861289ed5fcedd30e51e85ef7397ebc6",
	To:          "a001d5c7b4bba5f4e1a2c5b98b2c5d4b0d0f1f4f4e4f6b",
	FromAsset:   "asset-a",
	ToAsset:     "asset-b",
	FromChannel: "relay-a",
	ToChannel:   "relay-b",
	FromChain:   "CHAIN_20190528_A",
	ToChain:     "CHAIN_20190528_B",
}

func TestPayloadPack(t *testing.T) {
	packed := testPayload.Pack()
	assert.Equal(t, byte(channel.PayloadTag), packed[0], "tag")

	p, err := channel.UnpackPayload(packed)
	require.NoError(t, err)
	assert.Equal(t, testPayload, p)
}

func TestPayloadEqual(t *testing.T) {
	other := testPayload
	assert.True(t, testPayload.Equal(other))
	assert.Equal(t, testPayload.Digest(), other.Digest())

	other.Amount = 101
	assert.False(t, testPayload.Equal(other), "amount differs")
	assert.NotEqual(t, testPayload.DigestString(), other.DigestString())

	// field boundaries are part of the packed form
	a := channel.Payload{From: "ab", To: "c"}
	b := channel.Payload{From: "a", To: "bc"}
	assert.False(t, a.Equal(b))
}

func TestOutboundPack(t *testing.T) {
	c := &channel.Outbound{
		InitSeq:     300,
		CompleteSeq: 299,
		Notaries:    []string{"notary-1", "notary-2", "notary-3"},
		FromChannel: "relay-a",
		ToChannel:   "relay-b",
		FromChain:   "CHAIN_20190528_A",
		ToChain:     "CHAIN_20190528_B",
	}

	u, err := channel.UnpackOutbound(c.Pack())
	require.NoError(t, err)
	assert.Equal(t, c, u)

	_, err = channel.UnpackInbound(c.Pack())
	assert.Equal(t, fault.ErrNotRecordPack, err, "wrong tag accepted")
}

func TestInboundPack(t *testing.T) {
	c := &channel.Inbound{
		InitSeq:     1,
		CompleteSeq: 0,
		Notaries:    []string{"notary-1"},
		Channel:     "relay-b",
		Chain:       "CHAIN_20190528_B",
		PeerChannel: "relay-a",
		PeerChain:   "CHAIN_20190528_A",
	}

	u, err := channel.UnpackInbound(c.Pack())
	require.NoError(t, err)
	assert.Equal(t, c, u)
}

func TestOutboundProposalPack(t *testing.T) {
	p := &channel.OutboundProposal{
		Payload: testPayload,
		Status:  channel.Initial,
	}

	u, err := channel.UnpackOutboundProposal(p.Pack())
	require.NoError(t, err)
	assert.Equal(t, p, u, "no votes")

	p.Status = channel.Processing
	p.Votes = []channel.OutboundVote{
		{Notary: "notary-1", Status: channel.Success},
		{Notary: "notary-2", Status: channel.Fail},
	}

	u, err = channel.UnpackOutboundProposal(p.Pack())
	require.NoError(t, err)
	assert.Equal(t, p, u, "with votes")
	assert.True(t, quorum.HasVoted(u.Ballots(), "notary-2"))
	assert.False(t, quorum.HasVoted(u.Ballots(), "notary-3"))
}

func TestInboundProposalPack(t *testing.T) {
	other := testPayload
	other.Amount = 101

	p := &channel.InboundProposal{
		Status: channel.Fail,
		Votes: []channel.InboundVote{
			{Notary: "notary-1", Payload: testPayload},
			{Notary: "notary-2", Payload: other},
		},
	}

	u, err := channel.UnpackInboundProposal(p.Pack())
	require.NoError(t, err)
	assert.Equal(t, p, u)

	first, ok := u.Payload()
	assert.True(t, ok)
	assert.Equal(t, testPayload, first)

	_, ok = (&channel.InboundProposal{}).Payload()
	assert.False(t, ok)
}

func TestUnpackDamaged(t *testing.T) {
	packed := (&channel.OutboundProposal{
		Payload: testPayload,
		Status:  channel.Processing,
		Votes:   []channel.OutboundVote{{Notary: "notary-1", Status: channel.Success}},
	}).Pack()

	for i := 0; i < len(packed); i += 1 {
		_, err := channel.UnpackOutboundProposal(packed[:i])
		assert.Equal(t, fault.ErrNotRecordPack, err, "truncated at: %d", i)
	}

	_, err := channel.UnpackOutboundProposal(append(packed, 0x00))
	assert.Equal(t, fault.ErrRecordTrailingData, err)

	_, err = channel.UnpackOutbound(nil)
	assert.Equal(t, fault.ErrNotRecordPack, err, "empty record")
}

func TestLargeValues(t *testing.T) {
	p := testPayload
	p.Seq = ^uint64(0)
	p.Amount = 1 << 63

	u, err := channel.UnpackPayload(p.Pack())
	require.NoError(t, err)
	assert.Equal(t, p, u)
}

// fields at the limit round trip; one byte over fails Check and cannot be unpacked
func TestFieldLimits(t *testing.T) {
	p := testPayload
	p.From = strings.Repeat("x", channel.MaxFieldLength)
	require.NoError(t, p.Check())

	u, err := channel.UnpackPayload(p.Pack())
	require.NoError(t, err)
	assert.Equal(t, p, u)

	for i := 0; i < 8; i += 1 {
		q := testPayload
		fields := []*string{&q.From, &q.To, &q.FromAsset, &q.ToAsset, &q.FromChannel, &q.ToChannel, &q.FromChain, &q.ToChain}
		*fields[i] = strings.Repeat("y", channel.MaxFieldLength+1)
		assert.Equal(t, fault.ErrInvalidPayload, q.Check(), "field: %d", i)

		_, err := channel.UnpackPayload(q.Pack())
		assert.Equal(t, fault.ErrNotRecordPack, err, "field: %d", i)
	}
}

func TestListLimits(t *testing.T) {
	items := make([]string, channel.MaxListLength)
	for i := range items {
		items[i] = "n"
	}
	assert.True(t, channel.ListFits(items))

	c := &channel.Outbound{Notaries: items}
	_, err := channel.UnpackOutbound(c.Pack())
	assert.NoError(t, err)

	c.Notaries = append(items, "n")
	assert.False(t, channel.ListFits(c.Notaries))
	_, err = channel.UnpackOutbound(c.Pack())
	assert.Equal(t, fault.ErrNotRecordPack, err)

	assert.False(t, channel.ListFits([]string{strings.Repeat("z", channel.MaxFieldLength+1)}))
	assert.True(t, channel.FieldsFit())
}

func TestStatus(t *testing.T) {
	assert.False(t, channel.Initial.IsTerminal())
	assert.False(t, channel.Processing.IsTerminal())
	assert.True(t, channel.Fail.IsTerminal())
	assert.True(t, channel.Success.IsTerminal())

	assert.Equal(t, "success", channel.Success.String())
	assert.Equal(t, "invalid", channel.Status(9).String())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "outbound_proposal_12", channel.OutboundProposalKey(12))
	assert.Equal(t, "inbound_proposal_1", channel.InboundProposalKey(1))
	assert.Equal(t, "outbound_reference_asset-a_7", channel.ReferenceKey("asset-a", 7))
}

func TestBallots(t *testing.T) {
	p := &channel.OutboundProposal{
		Votes: []channel.OutboundVote{
			{Notary: "notary-1", Status: channel.Success},
		},
	}
	ballots := p.Ballots()
	assert.Equal(t, 1, len(ballots))
	assert.Equal(t, "notary-1", ballots[0].Voter())
	assert.True(t, ballots[0].Matches(channel.OutboundVote{Notary: "notary-2", Status: channel.Success}))
	assert.False(t, ballots[0].Matches(channel.OutboundVote{Notary: "notary-2", Status: channel.Fail}))
	assert.False(t, ballots[0].Matches(channel.InboundVote{Notary: "notary-2"}), "direction mixed")

	other := testPayload
	other.To = "someone else"
	q := &channel.InboundProposal{
		Votes: []channel.InboundVote{
			{Notary: "notary-1", Payload: testPayload},
		},
	}
	inbound := q.Ballots()
	assert.True(t, inbound[0].Matches(channel.InboundVote{Notary: "notary-3", Payload: testPayload}))
	assert.False(t, inbound[0].Matches(channel.InboundVote{Notary: "notary-3", Payload: other}))
}

func TestProofPack(t *testing.T) {
	p := &channel.Proof{
		Seq:       7,
		From:      "alice",
		Channel:   "relay-a",
		Recipient: "bob",
		Amount:    250,
	}

	u, err := channel.UnpackProof(p.Pack())
	require.NoError(t, err)
	assert.Equal(t, p, u)

	_, err = channel.UnpackProof(testPayload.Pack())
	assert.Equal(t, fault.ErrNotRecordPack, err)
}

func TestUnpackAny(t *testing.T) {
	records := []interface{}{
		testPayload,
		&channel.Outbound{InitSeq: 2, CompleteSeq: 1, Notaries: []string{"n1"}},
		&channel.Inbound{Channel: "relay-b"},
		&channel.OutboundProposal{Payload: testPayload, Status: channel.Success},
		&channel.InboundProposal{Status: channel.Initial},
		&channel.Proof{Seq: 1, Amount: 3},
	}

	for i, r := range records {
		packer, ok := r.(interface{ Pack() channel.Packed })
		require.True(t, ok, "%d: packer", i)

		u, err := channel.Unpack(packer.Pack())
		require.NoError(t, err, "%d: unpack", i)
		assert.Equal(t, r, u, "%d: record", i)
	}

	_, err := channel.Unpack(channel.Packed{0x7f})
	assert.Equal(t, fault.ErrNotRecordPack, err, "unknown tag")
}
