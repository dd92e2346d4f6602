// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append a value to a buffer in Varint64 form
//
// the first eight bytes carry seven bits each, low bits first, with
// the top bit set while more bytes follow; a ninth byte carries the
// remaining eight bits whole
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes && value >= 0x80; i += 1 {
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// Varint64 - decode a Varint64 from the start of a buffer
//
// also returns the number of bytes used, which is zero if the buffer
// is truncated
func Varint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		shift := 7 * uint(i)
		if Varint64MaximumBytes-1 == i {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}

// BoundedVarint64 - decode a count in the range 0..maximum
//
// returns 0, 0 for a truncated buffer or a value out of range
func BoundedVarint64(buffer []byte, maximum int) (int, int) {
	if maximum < 0 {
		return 0, 0
	}
	value, used := Varint64(buffer)
	if 0 == used || value > uint64(maximum) {
		return 0, 0
	}
	return int(value), used
}
