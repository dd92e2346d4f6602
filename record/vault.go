// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/fractiond/address"
)

// VaultState - lifecycle of a vault as seen by the vault program
type VaultState uint8

// vault states
const (
	VaultInactive    VaultState = 0
	VaultActive      VaultState = 1
	VaultCombined    VaultState = 2
	VaultDeactivated VaultState = 3
)

// Vault - deposit vault for a campaign, owned by the vault program
type Vault struct {
	Authority      address.Address `json:"authority"`
	FractionMint   address.Address `json:"fractionMint"`
	TokenTypeCount uint8           `json:"tokenTypeCount"`
	State          VaultState      `json:"state"`
}

// Pack - vault record
func (vault *Vault) Pack() (Packed, error) {
	p := newPacker(VaultV1)
	p.appendAddress(vault.Authority)
	p.appendAddress(vault.FractionMint)
	p.appendUint8(vault.TokenTypeCount)
	p.appendUint8(uint8(vault.State))
	return p.finish()
}

func (u *unpacker) vault() *Vault {
	return &Vault{
		Authority:      u.address(),
		FractionMint:   u.address(),
		TokenTypeCount: u.uint8(),
		State:          VaultState(u.uint8()),
	}
}

// SafetyDepositBox - one slot inside a vault
type SafetyDepositBox struct {
	Vault     address.Address `json:"vault"`
	TokenMint address.Address `json:"tokenMint"`
	Store     address.Address `json:"store"`
	Order     uint8           `json:"order"`
}

// Pack - safety deposit box record
func (box *SafetyDepositBox) Pack() (Packed, error) {
	p := newPacker(SafetyDepositBoxV1)
	p.appendAddress(box.Vault)
	p.appendAddress(box.TokenMint)
	p.appendAddress(box.Store)
	p.appendUint8(box.Order)
	return p.finish()
}

func (u *unpacker) safetyDepositBox() *SafetyDepositBox {
	return &SafetyDepositBox{
		Vault:     u.address(),
		TokenMint: u.address(),
		Store:     u.address(),
		Order:     u.uint8(),
	}
}
