// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/fractiond/address"
)

// Mint - token mint, owned by the token program
type Mint struct {
	MintAuthority address.Address `json:"mintAuthority"`
	Supply        uint64          `json:"supply,string"`
	Decimals      uint8           `json:"decimals"`
	IsInitialised bool            `json:"isInitialised"`
}

// Pack - mint record
func (mint *Mint) Pack() (Packed, error) {
	p := newPacker(MintV1)
	p.appendAddress(mint.MintAuthority)
	p.appendUint64(mint.Supply)
	p.appendUint8(mint.Decimals)
	p.appendBool(mint.IsInitialised)
	return p.finish()
}

func (u *unpacker) mint() *Mint {
	return &Mint{
		MintAuthority: u.address(),
		Supply:        u.uint64(),
		Decimals:      u.uint8(),
		IsInitialised: u.bool(),
	}
}

// TokenAccountState - state of a token store
type TokenAccountState uint8

// token account states
const (
	TokenAccountUninitialised TokenAccountState = 0
	TokenAccountInitialised   TokenAccountState = 1
	TokenAccountFrozen        TokenAccountState = 2
)

// TokenAccount - a token store holding an amount of one mint
type TokenAccount struct {
	Mint   address.Address   `json:"mint"`
	Owner  address.Address   `json:"owner"`
	Amount uint64            `json:"amount,string"`
	State  TokenAccountState `json:"state"`
}

// IsInitialised - true once the token program has set the account up
func (account *TokenAccount) IsInitialised() bool {
	return TokenAccountUninitialised != account.State
}

// Pack - token account record
func (account *TokenAccount) Pack() (Packed, error) {
	p := newPacker(TokenAccountV1)
	p.appendAddress(account.Mint)
	p.appendAddress(account.Owner)
	p.appendUint64(account.Amount)
	p.appendUint8(uint8(account.State))
	return p.finish()
}

func (u *unpacker) tokenAccount() *TokenAccount {
	return &TokenAccount{
		Mint:   u.address(),
		Owner:  u.address(),
		Amount: u.uint64(),
		State:  TokenAccountState(u.uint8()),
	}
}
