// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/fractiond/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - public identifier of a record or a program
//
// represented as base58 text for printing and JSON
type Address [Length]byte

// System - the all-zero address owning every empty record
//
// also used as the "public/none" sentinel where an optional record is
// not supplied
var System = Address{}

// New - create an address from a byte slice
func New(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.InvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode base58 text into an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.CannotDecodeAddress
	}
	return New(buffer)
}

// Bytes - copy of the address as a byte slice
func (a Address) Bytes() []byte {
	result := make([]byte, Length)
	copy(result, a[:])
	return result
}

// IsSystem - true for the all-zero address
func (a Address) IsSystem() bool {
	return a == System
}

// Equal - compare with a byte slice
func (a Address) Equal(buffer []byte) bool {
	return bytes.Equal(a[:], buffer)
}

// String - base58 for the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - tagged base58 for the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + base58.Encode(a[:]) + ">"
}

// MarshalText - base58 for JSON encoding
func (a Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(a[:])), nil
}

// UnmarshalText - base58 from JSON encoding
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
