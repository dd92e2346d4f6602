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
	"github.com/bitmark-inc/fractiond/record"
)

func assertOwnedBy(v ledger.View, owner address.Address) error {
	if v.Owner() != owner {
		return fault.OwnerMismatch
	}
	return nil
}

// cross check the whole record graph before anything is written
//
// the checks run in a fixed order and the first failure is returned
func checkCommon(program address.Address, store record.Store, s *snapshot, accounts *Accounts, class record.AssetClass) error {

	// is it a real mint?
	if _, err := loadMint(s.mintView); nil != err {
		return err
	}

	if s.vault.Authority != accounts.CampaignManager {
		return fault.VaultAuthorityMismatch
	}

	if err := assertOwnedBy(s.campaignView, program); nil != err {
		return err
	}
	if err := assertOwnedBy(s.metadataView, store.TokenMetadataProgram); nil != err {
		return err
	}
	if !s.lookupView.IsEmpty() {
		return fault.AlreadyInitialized
	}

	if !accounts.WhitelistedCreator.IsSystem() {
		if s.whitelistView.IsEmpty() {
			return fault.Uninitialized
		}
		if err := assertOwnedBy(s.whitelistView, program); nil != err {
			return err
		}
	}

	if err := assertOwnedBy(s.storeView, program); nil != err {
		return err
	}
	if err := assertOwnedBy(s.boxView, store.TokenVaultProgram); nil != err {
		return err
	}
	if err := assertOwnedBy(s.tokenStoreView, store.TokenProgram); nil != err {
		return err
	}
	if s.mintView.Owner() != store.TokenProgram {
		return fault.TokenProgramMismatch
	}

	if record.FungibleToken != class {
		if err := assertOwnedBy(s.editionView, store.TokenMetadataProgram); nil != err {
			return err
		}
	}
	if err := assertOwnedBy(s.vaultView, store.TokenVaultProgram); nil != err {
		return err
	}

	if accounts.TokenMetadataProgram != store.TokenMetadataProgram {
		return fault.TokenMetadataMismatch
	}

	if s.campaign.Authority != accounts.Authority {
		return fault.AuthorityMismatch
	}
	if !accounts.IsSigner(accounts.Authority) {
		return fault.AuthorityIsNotSigner
	}

	if err := checkVaultPairing(store, s, accounts); nil != err {
		return err
	}

	if err := checkCreators(program, store, s, accounts); nil != err {
		return err
	}

	if s.campaign.Store != accounts.Store {
		return fault.StoreMismatch
	}

	if s.box.TokenMint != accounts.Mint {
		return fault.MintMismatch
	}

	if accounts.TokenMetadataProgram != store.TokenMetadataProgram {
		return fault.TokenMetadataProgramMismatch
	}

	// only mints of the registered token program can be moved by it
	if s.mintView.Owner() != store.TokenProgram {
		return fault.TokenProgramMismatch
	}

	return nil
}

// the box must belong to the campaign's vault: the campaign names the
// vault and the box address derives from the vault and its mint
func checkVaultPairing(store record.Store, s *snapshot, accounts *Accounts) error {
	if s.campaign.Vault != accounts.Vault {
		return fault.CampaignVaultMismatch
	}
	if s.box.Vault != accounts.Vault {
		return fault.SafetyDepositBoxVaultMismatch
	}
	_, err := derivation.Verify(accounts.SafetyDepositBox, store.TokenVaultProgram, BoxSeeds(accounts.Vault, s.box.TokenMint)...)
	if nil != err {
		return fault.SafetyDepositBoxVaultMismatch
	}
	return nil
}
