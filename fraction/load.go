// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

import (
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/record"
)

// views and decoded records for one invocation
//
// the store is held by value and handed to every check as a snapshot
type snapshot struct {
	campaignView   ledger.View
	boxView        ledger.View
	metadataView   ledger.View
	storeView      ledger.View
	vaultView      ledger.View
	mintView       ledger.View
	tokenStoreView ledger.View
	editionView    ledger.View
	lookupView     ledger.View
	whitelistView  ledger.View

	campaign *record.CampaignManager
	box      *record.SafetyDepositBox
	metadata *record.Metadata
	store    record.Store
	vault    *record.Vault
}

// read every account once and decode the records all checks need
func load(l *ledger.Ledger, accounts *Accounts) (*snapshot, error) {
	s := &snapshot{
		campaignView:   l.Account(accounts.CampaignManager),
		boxView:        l.Account(accounts.SafetyDepositBox),
		metadataView:   l.Account(accounts.Metadata),
		storeView:      l.Account(accounts.Store),
		vaultView:      l.Account(accounts.Vault),
		mintView:       l.Account(accounts.Mint),
		tokenStoreView: l.Account(accounts.SafetyDepositTokenStore),
		editionView:    l.Account(accounts.Edition),
		lookupView:     l.Account(accounts.OriginalAuthorityLookup),
		whitelistView:  l.Account(accounts.WhitelistedCreator),
	}

	var err error
	if s.campaign, err = loadCampaignManager(s.campaignView); nil != err {
		return nil, err
	}
	if s.box, err = loadSafetyDepositBox(s.boxView); nil != err {
		return nil, err
	}
	if s.metadata, err = loadMetadata(s.metadataView); nil != err {
		return nil, err
	}
	store, err := loadStore(s.storeView)
	if nil != err {
		return nil, err
	}
	s.store = *store
	if s.vault, err = loadVault(s.vaultView); nil != err {
		return nil, err
	}
	return s, nil
}

// decode a non-empty account that must carry the given tag
func unpackAs(v ledger.View, key record.Key) (record.Record, error) {
	if v.IsEmpty() {
		return nil, fault.Uninitialized
	}
	if record.Packed(v.Data()).Key() != key {
		return nil, fault.InvalidRecordType
	}
	return v.Unpack()
}

func loadCampaignManager(v ledger.View) (*record.CampaignManager, error) {
	r, err := unpackAs(v, record.CampaignManagerV1)
	if nil != err {
		return nil, err
	}
	if c, ok := r.(*record.CampaignManager); ok {
		return c, nil
	}
	return nil, fault.InvalidRecordType
}

func loadSafetyDepositBox(v ledger.View) (*record.SafetyDepositBox, error) {
	r, err := unpackAs(v, record.SafetyDepositBoxV1)
	if nil != err {
		return nil, err
	}
	if b, ok := r.(*record.SafetyDepositBox); ok {
		return b, nil
	}
	return nil, fault.InvalidRecordType
}

func loadMetadata(v ledger.View) (*record.Metadata, error) {
	r, err := unpackAs(v, record.MetadataV1)
	if nil != err {
		return nil, err
	}
	if m, ok := r.(*record.Metadata); ok {
		return m, nil
	}
	return nil, fault.InvalidRecordType
}

func loadStore(v ledger.View) (*record.Store, error) {
	r, err := unpackAs(v, record.StoreV1)
	if nil != err {
		return nil, err
	}
	if s, ok := r.(*record.Store); ok {
		return s, nil
	}
	return nil, fault.InvalidRecordType
}

func loadVault(v ledger.View) (*record.Vault, error) {
	r, err := unpackAs(v, record.VaultV1)
	if nil != err {
		return nil, err
	}
	if vault, ok := r.(*record.Vault); ok {
		return vault, nil
	}
	return nil, fault.InvalidRecordType
}

func loadWhitelistedCreator(v ledger.View) (*record.WhitelistedCreator, error) {
	r, err := unpackAs(v, record.WhitelistedCreatorV1)
	if nil != err {
		return nil, err
	}
	if w, ok := r.(*record.WhitelistedCreator); ok {
		return w, nil
	}
	return nil, fault.InvalidRecordType
}

// any failure to read an initialised mint is reported as InvalidMint
func loadMint(v ledger.View) (*record.Mint, error) {
	r, err := unpackAs(v, record.MintV1)
	if nil != err {
		return nil, fault.InvalidMint
	}
	m, ok := r.(*record.Mint)
	if !ok || !m.IsInitialised {
		return nil, fault.InvalidMint
	}
	return m, nil
}

// the token store must be an initialised token account
func loadTokenStore(v ledger.View) (*record.TokenAccount, error) {
	r, err := unpackAs(v, record.TokenAccountV1)
	if nil != err {
		return nil, err
	}
	a, ok := r.(*record.TokenAccount)
	if !ok {
		return nil, fault.InvalidRecordType
	}
	if !a.IsInitialised() {
		return nil, fault.Uninitialized
	}
	return a, nil
}
