// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/bitmark-inc/notaryrelay/fault"
)

// limits enforced when unpacking; anything written must stay inside them
const (
	MaxFieldLength = 8192 // bytes in any single length prefixed field
	MaxListLength  = 1024 // entries in any packed list
)

// FieldsFit - true if every string fits in a packed field
func FieldsFit(fields ...string) bool {
	for _, s := range fields {
		if len(s) > MaxFieldLength {
			return false
		}
	}
	return true
}

// ListFits - true if the list and each of its entries can be packed
func ListFits(items []string) bool {
	return len(items) <= MaxListLength && FieldsFit(items...)
}

// Check - reject a payload that would pack into an unreadable record
func (p Payload) Check() error {
	if !FieldsFit(p.From, p.To, p.FromAsset, p.ToAsset, p.FromChannel, p.ToChannel, p.FromChain, p.ToChain) {
		return fault.ErrInvalidPayload
	}
	return nil
}
