// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/util"
)

// accumulate the fields of a record behind its tag
type packer struct {
	buffer []byte
	err    error
}

func newPacker(key Key) *packer {
	buffer := make([]byte, 1, key.Size())
	buffer[0] = byte(key)
	return &packer{
		buffer: buffer,
	}
}

func (p *packer) appendAddress(a address.Address) {
	p.buffer = append(p.buffer, a[:]...)
}

func (p *packer) appendUint8(n uint8) {
	p.buffer = append(p.buffer, n)
}

func (p *packer) appendUint16(n uint16) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, n)
	p.buffer = append(p.buffer, b...)
}

func (p *packer) appendUint64(n uint64) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	p.buffer = append(p.buffer, b...)
}

func (p *packer) appendBool(flag bool) {
	if flag {
		p.buffer = append(p.buffer, 1)
	} else {
		p.buffer = append(p.buffer, 0)
	}
}

func (p *packer) appendCount(n int, maximum int) {
	if n > maximum {
		p.fail(fault.InvalidCount)
		return
	}
	p.buffer = util.AppendVarint64(p.buffer, uint64(n))
}

func (p *packer) appendString(s string, maximum int) {
	if len(s) > maximum || !utf8.ValidString(s) {
		p.fail(fault.StringTooLong)
		return
	}
	p.buffer = util.AppendVarint64(p.buffer, uint64(len(s)))
	p.buffer = append(p.buffer, s...)
}

// keep only the first error
func (p *packer) fail(err error) {
	if nil == p.err {
		p.err = err
	}
}

// pad to the fixed size of the record type
func (p *packer) finish() (Packed, error) {
	if nil != p.err {
		return nil, p.err
	}
	size := Key(p.buffer[0]).Size()
	if len(p.buffer) > size {
		return nil, fault.RecordLength
	}
	padded := make([]byte, size)
	copy(padded, p.buffer)
	return padded, nil
}

// read fields in sequence; after the first error every read returns a
// zero value and the error is kept
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func newUnpacker(record Packed) *unpacker {
	return &unpacker{
		buffer: record,
		n:      1, // skip tag
	}
}

func (u *unpacker) take(count int) []byte {
	if nil != u.err {
		return nil
	}
	if u.n+count > len(u.buffer) {
		u.err = fault.RecordLength
		return nil
	}
	b := u.buffer[u.n : u.n+count]
	u.n += count
	return b
}

func (u *unpacker) address() address.Address {
	a := address.Address{}
	if b := u.take(address.Length); nil != b {
		copy(a[:], b)
	}
	return a
}

func (u *unpacker) uint8() uint8 {
	if b := u.take(1); nil != b {
		return b[0]
	}
	return 0
}

func (u *unpacker) uint16() uint16 {
	if b := u.take(2); nil != b {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

func (u *unpacker) uint64() uint64 {
	if b := u.take(8); nil != b {
		return binary.BigEndian.Uint64(b)
	}
	return 0
}

func (u *unpacker) bool() bool {
	return 0 != u.uint8()
}

func (u *unpacker) count(maximum int) int {
	if nil != u.err {
		return 0
	}
	n, used := util.BoundedVarint64(u.buffer[u.n:], maximum)
	if 0 == used {
		u.err = fault.InvalidCount
		return 0
	}
	u.n += used
	return n
}

func (u *unpacker) string(maximum int) string {
	n := u.count(maximum)
	if nil != u.err {
		if fault.InvalidCount == u.err {
			u.err = fault.StringTooLong
		}
		return ""
	}
	b := u.take(n)
	if nil == b {
		return ""
	}
	if !utf8.Valid(b) {
		u.err = fault.StringTooLong
		return ""
	}
	return string(b)
}
