// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/fault"
	"github.com/bitmark-inc/notaryrelay/ledger"
)

// common errors - keep in alphabetic order
var (
	ErrMissingIdentity = fault.InvalidError("identity is required")
	ErrUnknownStatus   = fault.InvalidError("status must be success or fail")
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// the ledger context for a command run by the global identity
func (m *metadata) context() (ledger.Context, error) {
	if "" == m.identity {
		return ledger.Context{}, ErrMissingIdentity
	}
	return ledger.Context{
		Caller:   m.identity,
		Contract: m.config.Contract,
	}, nil
}

// owner option or the global identity
func (m *metadata) owner(name string) (string, error) {
	if "" != name {
		return name, nil
	}
	if "" == m.identity {
		return "", ErrMissingIdentity
	}
	return m.identity, nil
}

func parseStatus(s string) (channel.Status, error) {
	switch strings.ToLower(s) {
	case "success", "ok":
		return channel.Success, nil
	case "fail", "failed":
		return channel.Fail, nil
	default:
		return 0, ErrUnknownStatus
	}
}

func checkRequired(name string, value string) error {
	if "" == value {
		return fmt.Errorf("missing --%s option", name)
	}
	return nil
}

func checkAmount(amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	return nil
}

type statusReply struct {
	Seq    uint64 `json:"seq"`
	Status string `json:"status"`
}
