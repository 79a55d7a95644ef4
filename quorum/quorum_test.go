// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quorum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/notaryrelay/quorum"
)

type testVote struct {
	voter string
	value int
}

func (v testVote) Voter() string { return v.voter }

func (v testVote) Matches(other quorum.Vote) bool {
	o, ok := other.(testVote)
	return ok && o.value == v.value
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		notaries  int
		threshold int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 4},
		{6, 4},
		{7, 5},
		{10, 7},
		{11, 8},
		{21, 15},
	}

	for i, item := range tests {
		assert.Equal(t, item.threshold, quorum.Threshold(item.notaries), "%d: notaries: %d", i, item.notaries)
	}
}

func TestThresholdIsNotCeiling(t *testing.T) {
	// ceil(6 × 0.7) = 5 but half up rounding gives 4
	assert.Equal(t, 4, quorum.Threshold(6))
}

func TestIsNotary(t *testing.T) {
	notaries := []string{"n1", "n2", "n3"}
	assert.True(t, quorum.IsNotary(notaries, "n2"))
	assert.False(t, quorum.IsNotary(notaries, "n4"))
	assert.False(t, quorum.IsNotary(nil, "n1"))
}

func TestHasVoted(t *testing.T) {
	votes := []quorum.Vote{testVote{"n1", 1}, testVote{"n3", 1}}
	assert.True(t, quorum.HasVoted(votes, "n3"))
	assert.False(t, quorum.HasVoted(votes, "n2"))
	assert.False(t, quorum.HasVoted(nil, "n2"))
}

func TestEvaluate(t *testing.T) {
	three := []string{"n1", "n2", "n3"}
	five := []string{"n1", "n2", "n3", "n4", "n5"}

	tests := []struct {
		notaries []string
		votes    []quorum.Vote
		incoming quorum.Vote
		decision quorum.Decision
	}{
		{three, nil, testVote{"n1", 1}, quorum.Pending},
		{three, []quorum.Vote{testVote{"n1", 1}}, testVote{"n2", 1}, quorum.Agreed},
		{three, []quorum.Vote{testVote{"n1", 1}}, testVote{"n2", 2}, quorum.Disagreed},
		{five, []quorum.Vote{testVote{"n1", 1}, testVote{"n2", 1}}, testVote{"n3", 1}, quorum.Pending},
		{five, []quorum.Vote{testVote{"n1", 1}, testVote{"n2", 1}, testVote{"n3", 1}}, testVote{"n4", 1}, quorum.Agreed},
		{five, []quorum.Vote{testVote{"n1", 1}, testVote{"n2", 1}, testVote{"n3", 1}}, testVote{"n4", 3}, quorum.Disagreed},
		{[]string{"n1", "n2"}, nil, testVote{"n1", 1}, quorum.Agreed},
	}

	for i, item := range tests {
		d := quorum.Evaluate(item.notaries, item.votes, item.incoming)
		assert.Equal(t, item.decision, d, "%d: decision: %s", i, d)
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "pending", quorum.Pending.String())
	assert.Equal(t, "agreed", quorum.Agreed.String())
	assert.Equal(t, "disagreed", quorum.Disagreed.String())
	assert.Equal(t, "*unknown*", quorum.Decision(7).String())
}
