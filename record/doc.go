// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed size record layouts
//
// Every record starts with a one byte tag (Key) followed by its
// fields in the order of the Go structure:
//
//   address     - 32 bytes
//   integers    - big endian, 1, 2 or 8 bytes
//   booleans    - 1 byte, 0x00 or 0x01
//   strings     - Varint64(length) ++ UTF-8 bytes, length clipped to a maximum
//   lists       - Varint64(count) ++ elements, count clipped to a maximum
//
// The packed data is zero padded to the fixed size of its record type
// and a record whose length is not exactly that size is rejected.
package record
