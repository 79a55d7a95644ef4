// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/notaryrelay/channel"
	"github.com/bitmark-inc/notaryrelay/storage"
)

const defaultCount = 20

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "database", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "pool", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "prefix", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'x'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "decode", HasArg: getoptions.NO_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["help"]) > 0 || 1 != len(options["database"]) || 0 != len(arguments) {
		usage(program)
		return
	}

	tag := ""
	if 1 == len(options["pool"]) {
		tag = options["pool"][0]
	} else {
		listPools()
		return
	}

	count := defaultCount
	if 1 == len(options["count"]) {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count <= 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	prefix := []byte(nil)
	if 1 == len(options["prefix"]) {
		prefix, err = hex.DecodeString(options["prefix"][0])
		if nil != err {
			exitwithstatus.Message("%s: invalid hex prefix: %q  error: %s", program, options["prefix"][0], err)
		}
	}

	decode := len(options["decode"]) > 0

	err = storage.Initialise(options["database"][0], storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer storage.Finalise()

	p := findPool(tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewFetchCursor().Seek(prefix)
	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: fetch error: %s", program, err)
	}

	for i, e := range data {
		if !bytes.HasPrefix(e.Key, prefix) {
			break
		}
		fmt.Printf("%d: Key: %x\n", i, e.Key)
		fmt.Printf("%d: Val: %x\n", i, e.Value)
		if decode {
			printDecoded(i, e)
		}
	}
}

func usage(program string) {
	fmt.Printf("usage: %s --database=DIR [--pool=TAG [--prefix=HEX] [--count=N] [--decode]]\n", program)
	listPools()
}

// print all available tags
func listPools() {
	poolType := reflect.TypeOf(storage.Pool)

	fmt.Printf(" tags:\n")
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
	}
}

// locate the pool handle with a matching prefix tag
func findPool(tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag == fieldInfo.Tag.Get("prefix") {
			p, _ := poolValue.Field(i).Interface().(*storage.PoolHandle)
			return p
		}
	}
	return nil
}

// metadata keys are account ++ 0x00 ++ name and values are packed records
func printDecoded(i int, e storage.Element) {
	parts := bytes.SplitN(e.Key, []byte{0x00}, 2)
	if 2 == len(parts) {
		fmt.Printf("%d: Account: %s  Name: %s\n", i, parts[0], parts[1])
	}

	record, err := channel.Unpack(e.Value)
	if nil != err {
		return
	}
	b, err := json.MarshalIndent(record, "", "  ")
	if nil != err {
		return
	}
	fmt.Printf("%d: Record: %s\n", i, b)
}
