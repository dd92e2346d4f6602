// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"github.com/bitmark-inc/fractiond/address"
)

// Capability - proof that the holder can reproduce the full seed list
// of a derived address, which acts in place of that address's signature
//
// the zero value is not valid
type Capability struct {
	program address.Address
	signer  address.Address
	valid   bool
}

// Authorize - create a capability from a complete seed list (bump included)
func Authorize(program address.Address, seeds ...[]byte) (Capability, error) {
	signer, err := Create(program, seeds...)
	if nil != err {
		return Capability{}, err
	}
	return Capability{
		program: program,
		signer:  signer,
		valid:   true,
	}, nil
}

// FindAndAuthorize - find the canonical bump for the seeds and
// authorize with it
func FindAndAuthorize(program address.Address, seeds ...[]byte) (Capability, uint8, error) {
	_, bump, err := Find(program, seeds...)
	if nil != err {
		return Capability{}, 0, err
	}
	c, err := Authorize(program, WithBump(seeds, bump)...)
	return c, bump, err
}

// IsValid - false for the zero value
func (c Capability) IsValid() bool {
	return c.valid
}

// Program - the program the address is derived under
func (c Capability) Program() address.Address {
	return c.program
}

// Signer - the derived address this capability acts for
func (c Capability) Signer() address.Address {
	return c.signer
}

// Allows - true if the capability acts for the given address
func (c Capability) Allows(a address.Address) bool {
	return c.valid && c.signer == a
}
