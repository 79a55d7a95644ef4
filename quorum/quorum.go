// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quorum

import (
	"math"
)

// VoteRate - fraction of the notary list needed to decide a proposal
//
// shared by both channel directions
const VoteRate = 0.7

// Decision - outcome of adding one vote to a proposal
type Decision int

// possible decisions
const (
	Pending   Decision = iota // below threshold, proposal stays open
	Agreed                    // threshold reached with all votes matching
	Disagreed                 // some earlier vote does not match
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Agreed:
		return "agreed"
	case Disagreed:
		return "disagreed"
	default:
		return "*unknown*"
	}
}

// Vote - one notary submission as seen by the evaluator
type Vote interface {
	Voter() string
	Matches(Vote) bool
}

// Threshold - number of votes required for n notaries
//
// rounds half up: floor(n × VoteRate + 0.5), so 2 → 1 and 3 → 2
func Threshold(n int) int {
	return int(math.Floor(float64(n)*VoteRate + 0.5))
}

// IsNotary - true if identity is in the notary list
func IsNotary(notaries []string, identity string) bool {
	for _, n := range notaries {
		if identity == n {
			return true
		}
	}
	return false
}

// HasVoted - true if identity already has a vote
func HasVoted(votes []Vote, identity string) bool {
	for _, v := range votes {
		if identity == v.Voter() {
			return true
		}
	}
	return false
}

// Evaluate - decide a proposal after appending incoming to votes
//
// any single mismatch is conclusive regardless of vote count,
// otherwise the proposal is agreed once the vote count including the
// incoming vote reaches the threshold for the notary list
func Evaluate(notaries []string, votes []Vote, incoming Vote) Decision {
	for _, v := range votes {
		if !v.Matches(incoming) {
			return Disagreed
		}
	}
	if len(votes)+1 < Threshold(len(notaries)) {
		return Pending
	}
	return Agreed
}
