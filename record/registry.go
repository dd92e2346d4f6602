// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/fractiond/address"
)

// Store - global registry of the programs a campaign may deal with
type Store struct {
	Public               bool            `json:"public"`
	TokenProgram         address.Address `json:"tokenProgram"`
	TokenVaultProgram    address.Address `json:"tokenVaultProgram"`
	TokenMetadataProgram address.Address `json:"tokenMetadataProgram"`
}

// Pack - store record
func (store *Store) Pack() (Packed, error) {
	p := newPacker(StoreV1)
	p.appendBool(store.Public)
	p.appendAddress(store.TokenProgram)
	p.appendAddress(store.TokenVaultProgram)
	p.appendAddress(store.TokenMetadataProgram)
	return p.finish()
}

func (u *unpacker) store() *Store {
	return &Store{
		Public:               u.bool(),
		TokenProgram:         u.address(),
		TokenVaultProgram:    u.address(),
		TokenMetadataProgram: u.address(),
	}
}

// WhitelistedCreator - creator approved by a store
type WhitelistedCreator struct {
	Address   address.Address `json:"address"`
	Activated bool            `json:"activated"`
}

// Pack - whitelisted creator record
func (creator *WhitelistedCreator) Pack() (Packed, error) {
	p := newPacker(WhitelistedCreatorV1)
	p.appendAddress(creator.Address)
	p.appendBool(creator.Activated)
	return p.finish()
}

func (u *unpacker) whitelistedCreator() *WhitelistedCreator {
	return &WhitelistedCreator{
		Address:   u.address(),
		Activated: u.bool(),
	}
}
