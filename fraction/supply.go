// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

import (
	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/ownership"
	"github.com/bitmark-inc/fractiond/record"
)

// everything a supply branch may read or use
type supplyContext struct {
	program    address.Address
	store      record.Store
	snapshot   *snapshot
	accounts   *Accounts
	tokenStore *record.TokenAccount
	edition    address.Address
	signer     address.Address       // campaign signing address
	campaign   derivation.Capability // signs for the campaign manager
	ledger     *ledger.Ledger
	custodian  Custodian
}

// one branch per asset class
type supplyBranch interface {
	check(c *supplyContext) error
}

type uniqueEdition struct{}
type fungibleToken struct{}

var supplyBranches = map[record.AssetClass]supplyBranch{
	record.UniqueEdition: uniqueEdition{},
	record.FungibleToken: fungibleToken{},
}

// checks that depend on the asset class, including the custody
// transfer of a unique edition
func (p *Processor) checkSupply(l *ledger.Ledger, store record.Store, s *snapshot, accounts *Accounts, class record.AssetClass) error {
	branch, ok := supplyBranches[class]
	if !ok {
		return fault.InvalidAssetClass
	}

	tokenStore, err := loadTokenStore(s.tokenStoreView)
	if nil != err {
		return err
	}

	edition, _, err := derivation.Find(store.TokenMetadataProgram, EditionSeeds(store.TokenMetadataProgram, s.metadata.Mint)...)
	if nil != err {
		return err
	}

	seeds := CampaignSigningSeeds(s.campaign.Vault)
	campaignSigner, bump, err := derivation.Find(p.program, seeds...)
	if nil != err {
		return err
	}
	signer, err := derivation.Authorize(p.program, derivation.WithBump(seeds, bump)...)
	if nil != err {
		return err
	}
	p.log.Debugf("edition: %s  campaign signer: %s  bump: %d", edition, campaignSigner, bump)

	return branch.check(&supplyContext{
		program:    p.program,
		store:      store,
		snapshot:   s,
		accounts:   accounts,
		tokenStore: tokenStore,
		edition:    edition,
		signer:     campaignSigner,
		campaign:   signer,
		ledger:     l,
		custodian:  p.custodian,
	})
}

// the metadata authority hands custody to the campaign manager and
// its previous value is kept in a lookup record
func (uniqueEdition) check(c *supplyContext) error {
	s := c.snapshot
	accounts := c.accounts

	if s.metadata.UpdateAuthority != accounts.MetadataAuthority {
		return fault.UpdateAuthorityIncorrect
	}
	if !accounts.IsSigner(accounts.MetadataAuthority) {
		return fault.UpdateAuthorityIsNotSigner
	}

	if s.box.TokenMint != s.metadata.Mint {
		return fault.MetadataMismatch
	}
	if c.edition != accounts.Edition {
		return fault.InvalidEditionAddress
	}

	if 1 != c.tokenStore.Amount {
		return fault.StoreIsEmpty
	}

	lookupSigner, _, err := derivation.FindAndAuthorize(c.program, LookupSeeds(s.campaign.Vault, accounts.Metadata)...)
	if nil != err {
		return err
	}
	if lookupSigner.Signer() != accounts.OriginalAuthorityLookup {
		return fault.OriginalAuthorityLookupKeyMismatch
	}

	if err := payerSigned(accounts); nil != err {
		return err
	}
	h, err := c.ledger.Allocate(accounts.OriginalAuthorityLookup, c.program, record.MaxAuthorityLookupSize, lookupSigner)
	if nil != err {
		return err
	}

	lookup := &record.OriginalAuthorityLookup{
		OriginalAuthority: accounts.MetadataAuthority,
	}

	transfer := ownership.Transfer{
		Program:           c.store.TokenMetadataProgram,
		Requester:         c.program,
		Signer:            c.signer,
		Metadata:          accounts.Metadata,
		Authority:         accounts.MetadataAuthority,
		AuthorityIsSigner: accounts.IsSigner(accounts.MetadataAuthority),
		NewAuthority:      accounts.CampaignManager,
	}
	err = c.custodian.TransferAuthority(c.ledger, transfer, c.campaign)
	if nil != err {
		return err
	}

	packed, err := lookup.Pack()
	if nil != err {
		return err
	}
	return h.Save(packed)
}

// only the mint is cross checked
func (fungibleToken) check(c *supplyContext) error {
	if c.snapshot.box.TokenMint != c.snapshot.metadata.Mint {
		return fault.MetadataMismatch
	}
	return nil
}
