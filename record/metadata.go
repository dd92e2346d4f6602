// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/fractiond/address"
)

// field limits
const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxURILength    = 200
	MaxCreators     = 5
)

// Creator - one creator listed on an asset
type Creator struct {
	Address  address.Address `json:"address"`
	Verified bool            `json:"verified"`
	Share    uint8           `json:"share"`
}

// Metadata - descriptor of a deposited asset, owned by the metadata program
type Metadata struct {
	UpdateAuthority      address.Address `json:"updateAuthority"`
	Mint                 address.Address `json:"mint"`
	Name                 string          `json:"name"`
	Symbol               string          `json:"symbol"`
	URI                  string          `json:"uri"`
	SellerFeeBasisPoints uint16          `json:"sellerFeeBasisPoints"`
	Creators             []Creator       `json:"creators"`
	PrimarySaleHappened  bool            `json:"primarySaleHappened"`
	IsMutable            bool            `json:"isMutable"`
}

// Pack - metadata record
func (metadata *Metadata) Pack() (Packed, error) {
	p := newPacker(MetadataV1)
	p.appendAddress(metadata.UpdateAuthority)
	p.appendAddress(metadata.Mint)
	p.appendString(metadata.Name, MaxNameLength)
	p.appendString(metadata.Symbol, MaxSymbolLength)
	p.appendString(metadata.URI, MaxURILength)
	p.appendUint16(metadata.SellerFeeBasisPoints)
	p.appendCount(len(metadata.Creators), MaxCreators)
	for _, c := range metadata.Creators {
		p.appendAddress(c.Address)
		p.appendBool(c.Verified)
		p.appendUint8(c.Share)
	}
	p.appendBool(metadata.PrimarySaleHappened)
	p.appendBool(metadata.IsMutable)
	return p.finish()
}

func (u *unpacker) metadata() *Metadata {
	metadata := &Metadata{
		UpdateAuthority:      u.address(),
		Mint:                 u.address(),
		Name:                 u.string(MaxNameLength),
		Symbol:               u.string(MaxSymbolLength),
		URI:                  u.string(MaxURILength),
		SellerFeeBasisPoints: u.uint16(),
	}

	n := u.count(MaxCreators)
	if n > 0 {
		metadata.Creators = make([]Creator, n)
		for i := range metadata.Creators {
			metadata.Creators[i] = Creator{
				Address:  u.address(),
				Verified: u.bool(),
				Share:    u.uint8(),
			}
		}
	}

	metadata.PrimarySaleHappened = u.bool()
	metadata.IsMutable = u.bool()
	return metadata
}

// MasterEdition - edition record proving a unique asset
type MasterEdition struct {
	Supply    uint64  `json:"supply,string"`
	MaxSupply *uint64 `json:"maxSupply,omitempty"`
}

// Pack - master edition record
func (edition *MasterEdition) Pack() (Packed, error) {
	p := newPacker(MasterEditionV2)
	p.appendUint64(edition.Supply)
	if nil == edition.MaxSupply {
		p.appendBool(false)
		p.appendUint64(0)
	} else {
		p.appendBool(true)
		p.appendUint64(*edition.MaxSupply)
	}
	return p.finish()
}

func (u *unpacker) masterEdition() *MasterEdition {
	edition := &MasterEdition{
		Supply: u.uint64(),
	}
	hasMaximum := u.bool()
	maximum := u.uint64()
	if hasMaximum {
		edition.MaxSupply = &maximum
	}
	return edition
}
