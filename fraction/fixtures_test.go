// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction_test

import (
	"testing"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fixtures"
	"github.com/bitmark-inc/fractiond/fraction"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/record"
	"github.com/bitmark-inc/fractiond/storage"
)

var (
	program         = address.Address{0x70, 0x01}
	tokenProgram    = address.Address{0x70, 0x02}
	vaultProgram    = address.Address{0x70, 0x03}
	metadataProgram = address.Address{0x70, 0x04}
	stranger        = address.Address{0x70, 0xff}

	authority    = address.Address{0x50, 0x01}
	payer        = address.Address{0x50, 0x02}
	creator      = address.Address{0x50, 0x03}
	storeKey     = address.Address{0x60, 0x01}
	campaignKey  = address.Address{0x60, 0x02}
	vaultKey     = address.Address{0x60, 0x03}
	fractionMint = address.Address{0x60, 0x04}
)

// one fully consistent campaign with its vault and boxes
type campaignFixture struct {
	t         *testing.T
	store     *record.Store
	campaign  *record.CampaignManager
	vault     *record.Vault
	whitelist address.Address
	boxes     []*boxFixture
}

type boxFixture struct {
	accounts          fraction.Accounts
	config            fraction.Config
	originalAuthority address.Address
	box               *record.SafetyDepositBox
	metadata          *record.Metadata
	mint              *record.Mint
	tokenStore        *record.TokenAccount
}

func setupTest(t *testing.T) func() {
	fixtures.SetupTestLogger()
	teardownDatabase := fixtures.SetupTestDatabase(t)
	return func() {
		teardownDatabase()
		fixtures.TeardownTestLogger()
	}
}

func find(t *testing.T, owner address.Address, seeds [][]byte) address.Address {
	a, _, err := derivation.Find(owner, seeds...)
	if nil != err {
		t.Fatalf("derivation error: %s", err)
	}
	return a
}

// build and commit a campaign with one box per asset class given
func newCampaign(t *testing.T, public bool, classes ...record.AssetClass) *campaignFixture {
	f := &campaignFixture{
		t: t,
		store: &record.Store{
			Public:               public,
			TokenProgram:         tokenProgram,
			TokenVaultProgram:    vaultProgram,
			TokenMetadataProgram: metadataProgram,
		},
		campaign: &record.CampaignManager{
			Store:     storeKey,
			Authority: authority,
			Vault:     vaultKey,
			Status:    record.Initialized,
		},
		vault: &record.Vault{
			Authority:      campaignKey,
			FractionMint:   fractionMint,
			TokenTypeCount: uint8(len(classes)),
			State:          record.VaultActive,
		},
		whitelist: address.System,
	}

	f.put(storeKey, program, f.store)
	f.put(campaignKey, program, f.campaign)
	f.put(vaultKey, vaultProgram, f.vault)

	if !public {
		f.whitelist = find(t, program, fraction.WhitelistSeeds(program, storeKey, creator))
		f.put(f.whitelist, program, &record.WhitelistedCreator{
			Address:   creator,
			Activated: true,
		})
	}

	for i, class := range classes {
		f.boxes = append(f.boxes, f.newBox(uint8(i), class))
	}
	return f
}

func (f *campaignFixture) newBox(order uint8, class record.AssetClass) *boxFixture {
	t := f.t

	mint := address.Address{0x80, order}
	metadata := address.Address{0x81, order}
	tokenStore := address.Address{0x82, order}
	original := address.Address{0x83, order}

	boxKey := find(t, vaultProgram, fraction.BoxSeeds(vaultKey, mint))

	b := &boxFixture{
		accounts: fraction.Accounts{
			SafetyDepositConfig:     find(t, program, fraction.ConfigSeeds(program, campaignKey, boxKey)),
			CampaignManager:         campaignKey,
			Metadata:                metadata,
			OriginalAuthorityLookup: find(t, program, fraction.LookupSeeds(vaultKey, metadata)),
			WhitelistedCreator:      f.whitelist,
			Store:                   storeKey,
			SafetyDepositBox:        boxKey,
			SafetyDepositTokenStore: tokenStore,
			Mint:                    mint,
			Edition:                 find(t, metadataProgram, fraction.EditionSeeds(metadataProgram, mint)),
			Vault:                   vaultKey,
			Authority:               authority,
			MetadataAuthority:       original,
			Payer:                   payer,
			TokenMetadataProgram:    metadataProgram,
			Signers:                 []address.Address{authority, original, payer},
		},
		config: fraction.Config{
			Order:      uint64(order),
			AssetClass: class,
		},
		originalAuthority: original,
		box: &record.SafetyDepositBox{
			Vault:     vaultKey,
			TokenMint: mint,
			Store:     tokenStore,
			Order:     order,
		},
		metadata: &record.Metadata{
			UpdateAuthority: original,
			Mint:            mint,
			Name:            "asset",
			Symbol:          "AST",
			URI:             "https://example.com/asset.json",
			Creators: []record.Creator{
				{Address: creator, Verified: true, Share: 100},
			},
			IsMutable: true,
		},
		mint: &record.Mint{
			MintAuthority: original,
			Supply:        1,
			IsInitialised: true,
		},
		tokenStore: &record.TokenAccount{
			Mint:   mint,
			Owner:  vaultKey,
			Amount: 1,
			State:  record.TokenAccountInitialised,
		},
	}

	f.put(boxKey, vaultProgram, b.box)
	f.put(metadata, metadataProgram, b.metadata)
	f.put(mint, tokenProgram, b.mint)
	f.put(tokenStore, tokenProgram, b.tokenStore)
	if record.UniqueEdition == class {
		f.put(b.accounts.Edition, metadataProgram, &record.MasterEdition{Supply: 0})
	}
	return b
}

// store one record in its own committed transaction
func (f *campaignFixture) put(key address.Address, owner address.Address, r record.Record) {
	packed, err := r.Pack()
	if nil != err {
		f.t.Fatalf("pack error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		f.t.Fatalf("transaction error: %s", err)
	}
	err = ledger.New(trx, storage.Pool.Accounts).Put(ledger.Account{
		Key:   key,
		Owner: owner,
		Data:  packed,
	})
	if nil != err {
		trx.Abort()
		f.t.Fatalf("put error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		f.t.Fatalf("commit error: %s", err)
	}
}

func newProcessor(custodian fraction.Custodian) *fraction.Processor {
	return fraction.New(program, storage.Pool.Accounts, custodian)
}

// committed view of an account
func view(t *testing.T, key address.Address) ledger.View {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trx.Abort()
	return ledger.New(trx, storage.Pool.Accounts).Account(key)
}

func unpack(t *testing.T, key address.Address) record.Record {
	r, err := view(t, key).Unpack()
	if nil != err {
		t.Fatalf("unpack: %s  error: %s", key, err)
	}
	return r
}

func campaignState(t *testing.T) *record.CampaignManager {
	return unpack(t, campaignKey).(*record.CampaignManager)
}

// every committed account
func everything() []storage.Element {
	return storage.Pool.Accounts.Elements()
}
