// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"go.dedis.ch/kyber/v3/group/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/fault"
)

// seed limits
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

var marker = []byte("ProgramDerivedAddress")

var suite = edwards25519.NewBlakeSHA256Ed25519()

// IsOnCurve - true if the bytes decode as an ed25519 point
func IsOnCurve(buffer []byte) bool {
	return nil == suite.Point().UnmarshalBinary(buffer)
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return fault.TooManySeeds
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return fault.SeedTooLong
		}
	}
	return nil
}

// Create - derive the address for an exact seed list
//
// the seed list must already include the bump if one is used
func Create(program address.Address, seeds ...[]byte) (address.Address, error) {
	if err := checkSeeds(seeds); nil != err {
		return address.Address{}, err
	}

	h := sha3.New256()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write(program[:])
	h.Write(marker)

	result := address.Address{}
	copy(result[:], h.Sum(nil))

	if IsOnCurve(result[:]) {
		return address.Address{}, fault.InvalidSeeds
	}
	return result, nil
}

// Find - search for the canonical derived address and its bump
//
// the seed list must not include a bump
func Find(program address.Address, seeds ...[]byte) (address.Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return address.Address{}, 0, fault.TooManySeeds
	}

	bumped := make([][]byte, len(seeds)+1)
	copy(bumped, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		bumped[len(seeds)] = []byte{uint8(bump)}
		a, err := Create(program, bumped...)
		if fault.InvalidSeeds == err {
			continue
		}
		if nil != err {
			return address.Address{}, 0, err
		}
		return a, uint8(bump), nil
	}
	return address.Address{}, 0, fault.NoViableBump
}

// Verify - check a supplied address against its canonical derivation
// and return the bump
func Verify(candidate address.Address, program address.Address, seeds ...[]byte) (uint8, error) {
	expected, bump, err := Find(program, seeds...)
	if nil != err {
		return 0, err
	}
	if expected != candidate {
		return 0, fault.DerivedAddressMismatch
	}
	return bump, nil
}

// WithBump - append the bump to a seed list without modifying it
func WithBump(seeds [][]byte, bump uint8) [][]byte {
	result := make([][]byte, len(seeds), len(seeds)+1)
	copy(result, seeds)
	return append(result, []byte{bump})
}
