// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/fault"
)

// CampaignStatus - progress of a fractionalisation campaign
//
// the only transition is Initialized -> Validated
type CampaignStatus uint8

// campaign states
const (
	Initialized CampaignStatus = 0
	Validated   CampaignStatus = 1
)

var campaignStatusNames = map[CampaignStatus]string{
	Initialized: "initialized",
	Validated:   "validated",
}

// String - name of the status
func (status CampaignStatus) String() string {
	if s, ok := campaignStatusNames[status]; ok {
		return s
	}
	return "*unknown*"
}

// MarshalText - status name for JSON
func (status CampaignStatus) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}

// UnmarshalText - status from its name
func (status *CampaignStatus) UnmarshalText(s []byte) error {
	for k, v := range campaignStatusNames {
		if v == string(s) {
			*status = k
			return nil
		}
	}
	return fault.InvalidRecordType
}

// CampaignManager - one fractionalisation campaign
type CampaignManager struct {
	Store          address.Address `json:"store"`
	Authority      address.Address `json:"authority"`
	Vault          address.Address `json:"vault"`
	Status         CampaignStatus  `json:"status"`
	ValidatedCount uint64          `json:"validatedCount,string"`
}

// Pack - campaign manager record
func (campaign *CampaignManager) Pack() (Packed, error) {
	p := newPacker(CampaignManagerV1)
	p.appendAddress(campaign.Store)
	p.appendAddress(campaign.Authority)
	p.appendAddress(campaign.Vault)
	p.appendUint8(uint8(campaign.Status))
	p.appendUint64(campaign.ValidatedCount)
	return p.finish()
}

func (u *unpacker) campaignManager() *CampaignManager {
	return &CampaignManager{
		Store:          u.address(),
		Authority:      u.address(),
		Vault:          u.address(),
		Status:         CampaignStatus(u.uint8()),
		ValidatedCount: u.uint64(),
	}
}

// AssetClass - how a safety deposit box's asset is fractionalised
//
// closed set: UniqueEdition transfers custody of the metadata
// authority, FungibleToken only cross checks the mint
type AssetClass uint8

// asset classes
const (
	UniqueEdition AssetClass = 0
	FungibleToken AssetClass = 1
)

var assetClassNames = map[AssetClass]string{
	UniqueEdition: "unique-edition",
	FungibleToken: "fungible-token",
}

// IsValid - true for a member of the closed set
func (class AssetClass) IsValid() bool {
	_, ok := assetClassNames[class]
	return ok
}

// String - name of the class
func (class AssetClass) String() string {
	if s, ok := assetClassNames[class]; ok {
		return s
	}
	return "*unknown*"
}

// MarshalText - class name for JSON
func (class AssetClass) MarshalText() ([]byte, error) {
	if !class.IsValid() {
		return nil, fault.InvalidAssetClass
	}
	return []byte(class.String()), nil
}

// UnmarshalText - class from its name
func (class *AssetClass) UnmarshalText(s []byte) error {
	c, err := AssetClassFromString(string(s))
	if nil != err {
		return err
	}
	*class = c
	return nil
}

// AssetClassFromString - class from its name
func AssetClassFromString(s string) (AssetClass, error) {
	for k, v := range assetClassNames {
		if v == s {
			return k, nil
		}
	}
	return 0, fault.InvalidAssetClass
}

// SafetyDepositConfig - outcome of validating one box, created once
type SafetyDepositConfig struct {
	CampaignManager address.Address `json:"campaignManager"`
	Order           uint64          `json:"order,string"`
	AssetClass      AssetClass      `json:"assetClass"`
}

// Pack - safety deposit config record
func (config *SafetyDepositConfig) Pack() (Packed, error) {
	if !config.AssetClass.IsValid() {
		return nil, fault.InvalidAssetClass
	}
	p := newPacker(SafetyDepositConfigV1)
	p.appendAddress(config.CampaignManager)
	p.appendUint64(config.Order)
	p.appendUint8(uint8(config.AssetClass))
	return p.finish()
}

func (u *unpacker) safetyDepositConfig() *SafetyDepositConfig {
	config := &SafetyDepositConfig{
		CampaignManager: u.address(),
		Order:           u.uint64(),
		AssetClass:      AssetClass(u.uint8()),
	}
	if nil == u.err && !config.AssetClass.IsValid() {
		u.err = fault.InvalidAssetClass
	}
	return config
}

// OriginalAuthorityLookup - metadata update authority before custody
// was transferred to a campaign
type OriginalAuthorityLookup struct {
	OriginalAuthority address.Address `json:"originalAuthority"`
}

// Pack - lookup record padded to the maximum lookup size
func (lookup *OriginalAuthorityLookup) Pack() (Packed, error) {
	p := newPacker(OriginalAuthorityLookupV1)
	p.appendAddress(lookup.OriginalAuthority)
	return p.finish()
}

func (u *unpacker) originalAuthorityLookup() *OriginalAuthorityLookup {
	return &OriginalAuthorityLookup{
		OriginalAuthority: u.address(),
	}
}
