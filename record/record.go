// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/fractiond/fault"
)

// Key - the discriminant tag at the start of every record
type Key uint8

// record tags
const (
	Uninitialised             Key = 0
	CampaignManagerV1         Key = 1
	SafetyDepositConfigV1     Key = 2
	OriginalAuthorityLookupV1 Key = 3
	StoreV1                   Key = 4
	WhitelistedCreatorV1      Key = 5
	VaultV1                   Key = 6
	SafetyDepositBoxV1        Key = 7
	MetadataV1                Key = 8
	MasterEditionV2           Key = 9
	MintV1                    Key = 10
	TokenAccountV1            Key = 11
)

// fixed record sizes
const (
	CampaignManagerSize     = 1 + 32 + 32 + 32 + 1 + 8
	SafetyDepositConfigSize = 1 + 32 + 8 + 1
	MaxAuthorityLookupSize  = 1 + 32 + 200
	StoreSize               = 1 + 1 + 32 + 32 + 32
	WhitelistedCreatorSize  = 1 + 32 + 1
	VaultSize               = 1 + 32 + 32 + 1 + 1
	SafetyDepositBoxSize    = 1 + 32 + 32 + 32 + 1
	MetadataSize            = 512
	MasterEditionSize       = 1 + 8 + 1 + 8
	MintSize                = 1 + 32 + 8 + 1 + 1
	TokenAccountSize        = 1 + 32 + 32 + 8 + 1
)

// Packed - packed record bytes
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// names and sizes of the known tags
var tags = map[Key]struct {
	name string
	size int
}{
	CampaignManagerV1:         {"CampaignManagerV1", CampaignManagerSize},
	SafetyDepositConfigV1:     {"SafetyDepositConfigV1", SafetyDepositConfigSize},
	OriginalAuthorityLookupV1: {"OriginalAuthorityLookupV1", MaxAuthorityLookupSize},
	StoreV1:                   {"StoreV1", StoreSize},
	WhitelistedCreatorV1:      {"WhitelistedCreatorV1", WhitelistedCreatorSize},
	VaultV1:                   {"VaultV1", VaultSize},
	SafetyDepositBoxV1:        {"SafetyDepositBoxV1", SafetyDepositBoxSize},
	MetadataV1:                {"MetadataV1", MetadataSize},
	MasterEditionV2:           {"MasterEditionV2", MasterEditionSize},
	MintV1:                    {"MintV1", MintSize},
	TokenAccountV1:            {"TokenAccountV1", TokenAccountSize},
}

// String - name of the tag
func (key Key) String() string {
	if t, ok := tags[key]; ok {
		return t.name
	}
	return "Uninitialised"
}

// Size - packed size of the tag's record, zero if unknown
func (key Key) Size() int {
	return tags[key].size
}

// Key - the tag of a packed record
func (record Packed) Key() Key {
	if 0 == len(record) {
		return Uninitialised
	}
	return Key(record[0])
}

// Unpack - turn a byte slice into a record
//
// the slice must be exactly the size of its record type
func (record Packed) Unpack() (Record, error) {
	if 0 == len(record) {
		return nil, fault.Uninitialized
	}

	key := record.Key()
	t, ok := tags[key]
	if !ok {
		return nil, fault.UnknownRecord
	}
	if t.size != len(record) {
		return nil, fault.RecordLength
	}

	u := newUnpacker(record)

	var r Record
	switch key {

	case CampaignManagerV1:
		r = u.campaignManager()

	case SafetyDepositConfigV1:
		r = u.safetyDepositConfig()

	case OriginalAuthorityLookupV1:
		r = u.originalAuthorityLookup()

	case StoreV1:
		r = u.store()

	case WhitelistedCreatorV1:
		r = u.whitelistedCreator()

	case VaultV1:
		r = u.vault()

	case SafetyDepositBoxV1:
		r = u.safetyDepositBox()

	case MetadataV1:
		r = u.metadata()

	case MasterEditionV2:
		r = u.masterEdition()

	case MintV1:
		r = u.mint()

	case TokenAccountV1:
		r = u.tokenAccount()

	default:
		return nil, fault.UnknownRecord
	}

	if nil != u.err {
		return nil, u.err
	}
	return r, nil
}

// RecordName - name of the record type
func RecordName(r Record) (string, bool) {
	switch r.(type) {
	case *CampaignManager:
		return CampaignManagerV1.String(), true
	case *SafetyDepositConfig:
		return SafetyDepositConfigV1.String(), true
	case *OriginalAuthorityLookup:
		return OriginalAuthorityLookupV1.String(), true
	case *Store:
		return StoreV1.String(), true
	case *WhitelistedCreator:
		return WhitelistedCreatorV1.String(), true
	case *Vault:
		return VaultV1.String(), true
	case *SafetyDepositBox:
		return SafetyDepositBoxV1.String(), true
	case *Metadata:
		return MetadataV1.String(), true
	case *MasterEdition:
		return MasterEditionV2.String(), true
	case *Mint:
		return MintV1.String(), true
	case *TokenAccount:
		return TokenAccountV1.String(), true
	default:
		return "*unknown*", false
	}
}
