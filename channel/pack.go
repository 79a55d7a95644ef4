// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/bitmark-inc/notaryrelay/fault"
)

// Packed - packed records are just a byte slice
type Packed []byte

// maximum bytes in a Varint64
const varint64MaximumBytes = 9

// append a Varint64 to buffer
//
// structure: seven bits per byte, least significant group first, top
// bit set if more bytes follow; the ninth byte carries a full eight
// bits so any uint64 fits
func (buffer Packed) appendUint64(value uint64) Packed {
	for i := 0; i < varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// append a string prefixed by Varint64(length)
func (buffer Packed) appendString(s string) Packed {
	buffer = buffer.appendUint64(uint64(len(s)))
	return append(buffer, s...)
}

// sequential reader over a packed record
//
// the first failure is sticky and all later reads return zero values
type unpacker struct {
	record Packed
	n      int
	err    error
}

func newUnpacker(record Packed) *unpacker {
	return &unpacker{record: record}
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value := uint64(0)
	shift := uint(0)
	for count := 0; count < varint64MaximumBytes; count += 1 {
		if u.n >= len(u.record) {
			u.err = fault.ErrNotRecordPack
			return 0
		}
		b := uint64(u.record[u.n])
		u.n += 1
		if varint64MaximumBytes-1 == count {
			return value | b<<shift
		}
		value |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return value
		}
		shift += 7
	}
	return value
}

func (u *unpacker) bytes() []byte {
	length := u.uint64()
	if nil != u.err {
		return nil
	}
	if length > MaxFieldLength || u.n+int(length) > len(u.record) {
		u.err = fault.ErrNotRecordPack
		return nil
	}
	data := make([]byte, length)
	copy(data, u.record[u.n:u.n+int(length)])
	u.n += int(length)
	return data
}

func (u *unpacker) string() string {
	return string(u.bytes())
}

// expect a specific tag at the current position
func (u *unpacker) tag(expected TagType) {
	if TagType(u.uint64()) != expected && nil == u.err {
		u.err = fault.ErrNotRecordPack
	}
}

// the record must be fully consumed
func (u *unpacker) finish() error {
	if nil != u.err {
		return u.err
	}
	if u.n != len(u.record) {
		return fault.ErrRecordTrailingData
	}
	return nil
}
