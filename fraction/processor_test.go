// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/fraction"
	"github.com/bitmark-inc/fractiond/fraction/mocks"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/ownership"
	"github.com/bitmark-inc/fractiond/record"
)

func TestValidateUniqueEdition(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, false, record.UniqueEdition)
	b := f.boxes[0]

	err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Nil(t, err, "validate error")

	lookupView := view(t, b.accounts.OriginalAuthorityLookup)
	assert.Equal(t, program, lookupView.Owner(), "wrong lookup owner")
	assert.Equal(t, record.MaxAuthorityLookupSize, lookupView.Size(), "wrong lookup size")
	lookup := unpack(t, b.accounts.OriginalAuthorityLookup).(*record.OriginalAuthorityLookup)
	assert.Equal(t, b.originalAuthority, lookup.OriginalAuthority, "wrong original authority")

	metadata := unpack(t, b.accounts.Metadata).(*record.Metadata)
	assert.Equal(t, campaignKey, metadata.UpdateAuthority, "authority not transferred")

	configView := view(t, b.accounts.SafetyDepositConfig)
	assert.Equal(t, program, configView.Owner(), "wrong config owner")
	assert.Equal(t, record.SafetyDepositConfigSize, configView.Size(), "wrong config size")
	config := unpack(t, b.accounts.SafetyDepositConfig).(*record.SafetyDepositConfig)
	expected := &record.SafetyDepositConfig{
		CampaignManager: campaignKey,
		Order:           0,
		AssetClass:      record.UniqueEdition,
	}
	assert.Equal(t, expected, config, "wrong config")

	campaign := campaignState(t)
	assert.Equal(t, uint64(1), campaign.ValidatedCount, "wrong count")
	assert.Equal(t, record.Validated, campaign.Status, "wrong status")
}

func TestValidateReplay(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, false, record.UniqueEdition, record.FungibleToken)
	p := newProcessor(ownership.New())

	for _, b := range f.boxes {
		err := p.ValidateSafetyDepositBox(&b.accounts, b.config)
		assert.Nil(t, err, "first validate error")

		before := everything()
		err = p.ValidateSafetyDepositBox(&b.accounts, b.config)
		assert.Equal(t, fault.AlreadyValidated, err, "replay accepted")
		assert.True(t, fault.IsErrExists(err), "replay is not an exists error")
		assert.Equal(t, before, everything(), "replay changed state")
	}
}

func TestValidateAnyOrder(t *testing.T) {
	classes := []record.AssetClass{
		record.UniqueEdition,
		record.FungibleToken,
		record.UniqueEdition,
	}
	orders := [][]int{
		{0, 1, 2},
		{2, 0, 1},
		{1, 2, 0},
		{2, 1, 0},
	}

	for _, order := range orders {
		t.Run(fmt.Sprintf("%v", order), func(t *testing.T) {
			teardown := setupTest(t)
			defer teardown()

			f := newCampaign(t, false, classes...)
			p := newProcessor(ownership.New())

			for n, i := range order {
				b := f.boxes[i]
				err := p.ValidateSafetyDepositBox(&b.accounts, b.config)
				if !assert.Nil(t, err, "box: %d  validate error", i) {
					return
				}

				campaign := campaignState(t)
				assert.Equal(t, uint64(n+1), campaign.ValidatedCount, "box: %d  wrong count", i)
				if n+1 < len(order) {
					assert.Equal(t, record.Initialized, campaign.Status, "box: %d  validated early", i)
				} else {
					assert.Equal(t, record.Validated, campaign.Status, "box: %d  not validated", i)
				}
			}
		})
	}
}

func TestValidateFungibleLeavesAuthority(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no custody transfer is expected
	custodian := mocks.NewMockCustodian(ctl)

	f := newCampaign(t, false, record.FungibleToken)
	b := f.boxes[0]

	err := newProcessor(custodian).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Nil(t, err, "validate error")

	assert.True(t, view(t, b.accounts.OriginalAuthorityLookup).IsEmpty(), "lookup created")

	metadata := unpack(t, b.accounts.Metadata).(*record.Metadata)
	assert.Equal(t, b.originalAuthority, metadata.UpdateAuthority, "authority changed")

	config := unpack(t, b.accounts.SafetyDepositConfig).(*record.SafetyDepositConfig)
	assert.Equal(t, record.FungibleToken, config.AssetClass, "wrong class")
}

func TestValidateCustodyTransferRequest(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newCampaign(t, false, record.UniqueEdition)
	b := f.boxes[0]

	signer, _, err := derivation.FindAndAuthorize(program, fraction.CampaignSigningSeeds(vaultKey)...)
	if nil != err {
		t.Fatalf("authorize error: %s", err)
	}

	expected := ownership.Transfer{
		Program:           metadataProgram,
		Requester:         program,
		Signer:            find(t, program, fraction.CampaignSigningSeeds(vaultKey)),
		Metadata:          b.accounts.Metadata,
		Authority:         b.originalAuthority,
		AuthorityIsSigner: true,
		NewAuthority:      campaignKey,
	}

	custodian := mocks.NewMockCustodian(ctl)
	custodian.EXPECT().
		TransferAuthority(gomock.Any(), expected, signer).
		Return(nil).
		Times(1)

	err = newProcessor(custodian).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Nil(t, err, "validate error")

	assert.False(t, view(t, b.accounts.OriginalAuthorityLookup).IsEmpty(), "lookup not created")
}

func TestValidateCustodyFailureWritesNothing(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	custodian := mocks.NewMockCustodian(ctl)
	custodian.EXPECT().
		TransferAuthority(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fault.UpdateAuthorityIncorrect).
		Times(1)

	f := newCampaign(t, false, record.UniqueEdition)
	b := f.boxes[0]

	before := everything()
	err := newProcessor(custodian).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Equal(t, fault.UpdateAuthorityIncorrect, err, "custody error not returned")
	assert.Equal(t, before, everything(), "state changed")
}

// custodian that fails by panicking part way through a validation
type panickingCustodian struct{}

func (panickingCustodian) TransferAuthority(*ledger.Ledger, ownership.Transfer, derivation.Capability) error {
	panic("custodian failure")
}

func TestValidateCustodyPanicWritesNothing(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, false, record.UniqueEdition)
	b := f.boxes[0]

	before := everything()
	assert.PanicsWithValue(t, "custodian failure", func() {
		_ = newProcessor(panickingCustodian{}).ValidateSafetyDepositBox(&b.accounts, b.config)
	}, "panic not propagated")
	assert.Equal(t, before, everything(), "state changed")
	assert.True(t, view(t, b.accounts.OriginalAuthorityLookup).IsEmpty(), "lookup left behind")

	// the transaction was released and nothing blocks a retry
	err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Nil(t, err, "retry error")
	assert.Equal(t, record.Validated, campaignState(t).Status, "retry did not validate")
}

func TestValidatePayerCheckedAtAllocation(t *testing.T) {
	for _, class := range []record.AssetClass{record.UniqueEdition, record.FungibleToken} {
		t.Run(class.String(), func(t *testing.T) {
			teardown := setupTest(t)
			defer teardown()

			f := newCampaign(t, false, class)
			b := f.boxes[0]
			b.accounts.Signers = []address.Address{authority, b.originalAuthority}

			// earlier failures are reported before the payer
			b.accounts.Authority = stranger
			err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
			assert.Equal(t, fault.AuthorityMismatch, err, "wrong error")
			b.accounts.Authority = authority

			if record.FungibleToken == class {
				b.config.Order = 7
				err = newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
				assert.Equal(t, fault.OrderMismatch, err, "wrong error")
			}

			before := everything()
			b.config.Order = 0
			err = newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
			assert.Equal(t, fault.PayerIsNotSigner, err, "unsigned payer accepted")
			assert.Equal(t, before, everything(), "state changed")
		})
	}
}

func TestValidateOrderMismatch(t *testing.T) {
	for _, class := range []record.AssetClass{record.UniqueEdition, record.FungibleToken} {
		t.Run(class.String(), func(t *testing.T) {
			teardown := setupTest(t)
			defer teardown()

			f := newCampaign(t, false, class)
			b := f.boxes[0]
			b.config.Order = 7

			before := everything()
			err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
			assert.Equal(t, fault.OrderMismatch, err, "wrong error")
			assert.True(t, fault.IsErrReference(err), "order mismatch is not a reference error")
			assert.Equal(t, before, everything(), "state changed")
		})
	}
}

func TestDerivationIsPure(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, false, record.UniqueEdition)
	b := f.boxes[0]

	err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Nil(t, err, "validate error")

	configKey, _, err := derivation.Find(program, fraction.ConfigSeeds(program, campaignKey, b.accounts.SafetyDepositBox)...)
	assert.Nil(t, err, "config derivation error")
	assert.Equal(t, b.accounts.SafetyDepositConfig, configKey, "config address differs")
	assert.False(t, view(t, configKey).IsEmpty(), "no config at derived address")

	lookupKey, _, err := derivation.Find(program, fraction.LookupSeeds(vaultKey, b.accounts.Metadata)...)
	assert.Nil(t, err, "lookup derivation error")
	assert.Equal(t, b.accounts.OriginalAuthorityLookup, lookupKey, "lookup address differs")
	assert.False(t, view(t, lookupKey).IsEmpty(), "no lookup at derived address")
}

func TestTwoBoxScenario(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, false, record.UniqueEdition, record.FungibleToken)
	p := newProcessor(ownership.New())

	unique := f.boxes[0]
	err := p.ValidateSafetyDepositBox(&unique.accounts, unique.config)
	assert.Nil(t, err, "unique edition error")

	campaign := campaignState(t)
	assert.Equal(t, uint64(1), campaign.ValidatedCount, "wrong count after first box")
	assert.Equal(t, record.Initialized, campaign.Status, "wrong status after first box")

	fungible := f.boxes[1]
	err = p.ValidateSafetyDepositBox(&fungible.accounts, fungible.config)
	assert.Nil(t, err, "fungible token error")

	campaign = campaignState(t)
	assert.Equal(t, uint64(2), campaign.ValidatedCount, "wrong count after second box")
	assert.Equal(t, record.Validated, campaign.Status, "wrong status after second box")
}

func TestPublicStoreScenario(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, true, record.FungibleToken, record.FungibleToken)
	p := newProcessor(ownership.New())

	b := f.boxes[0]
	assert.Equal(t, address.System, b.accounts.WhitelistedCreator, "whitelist is set")

	err := p.ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Nil(t, err, "public store rejected")

	b = f.boxes[1]
	b.metadata.Creators = append(b.metadata.Creators, record.Creator{Address: stranger, Verified: false})
	f.put(b.accounts.Metadata, metadataProgram, b.metadata)

	err = p.ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Equal(t, fault.CreatorHasNotVerifiedMetadata, err, "unverified creator accepted")
}

func TestMintOwnerScenario(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	f := newCampaign(t, false, record.UniqueEdition)
	b := f.boxes[0]
	f.put(b.accounts.Mint, stranger, b.mint)

	before := everything()
	err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
	assert.Equal(t, fault.TokenProgramMismatch, err, "wrong error")
	assert.True(t, fault.IsErrOwner(err), "not an owner error")
	assert.Equal(t, before, everything(), "state changed")
}

func TestValidateRejections(t *testing.T) {
	items := []struct {
		name   string
		public bool
		class  record.AssetClass
		change func(f *campaignFixture, b *boxFixture)
		err    error
	}{
		{
			name:   "asset class",
			change: func(f *campaignFixture, b *boxFixture) { b.config.AssetClass = 9 },
			err:    fault.InvalidAssetClass,
		},
		{
			name:   "payer",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.Signers = b.accounts.Signers[:2] },
			err:    fault.PayerIsNotSigner,
		},
		{
			name:   "missing campaign",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.CampaignManager = stranger },
			err:    fault.Uninitialized,
		},
		{
			name:   "campaign is not a campaign",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.CampaignManager = vaultKey },
			err:    fault.InvalidRecordType,
		},
		{
			name: "mint not initialised",
			change: func(f *campaignFixture, b *boxFixture) {
				b.mint.IsInitialised = false
				f.put(b.accounts.Mint, tokenProgram, b.mint)
			},
			err: fault.InvalidMint,
		},
		{
			name: "vault authority",
			change: func(f *campaignFixture, b *boxFixture) {
				f.vault.Authority = stranger
				f.put(vaultKey, vaultProgram, f.vault)
			},
			err: fault.VaultAuthorityMismatch,
		},
		{
			name:   "campaign owner",
			change: func(f *campaignFixture, b *boxFixture) { f.put(campaignKey, stranger, f.campaign) },
			err:    fault.OwnerMismatch,
		},
		{
			name:   "metadata owner",
			change: func(f *campaignFixture, b *boxFixture) { f.put(b.accounts.Metadata, stranger, b.metadata) },
			err:    fault.OwnerMismatch,
		},
		{
			name: "lookup exists",
			change: func(f *campaignFixture, b *boxFixture) {
				f.put(b.accounts.OriginalAuthorityLookup, program, &record.OriginalAuthorityLookup{})
			},
			err: fault.AlreadyInitialized,
		},
		{
			name:   "missing whitelist",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.WhitelistedCreator = stranger },
			err:    fault.Uninitialized,
		},
		{
			name: "whitelist owner",
			change: func(f *campaignFixture, b *boxFixture) {
				f.put(f.whitelist, stranger, &record.WhitelistedCreator{Address: creator, Activated: true})
			},
			err: fault.OwnerMismatch,
		},
		{
			name:   "store owner",
			change: func(f *campaignFixture, b *boxFixture) { f.put(storeKey, stranger, f.store) },
			err:    fault.OwnerMismatch,
		},
		{
			name:   "box owner",
			change: func(f *campaignFixture, b *boxFixture) { f.put(b.accounts.SafetyDepositBox, stranger, b.box) },
			err:    fault.OwnerMismatch,
		},
		{
			name: "token store owner",
			change: func(f *campaignFixture, b *boxFixture) {
				f.put(b.accounts.SafetyDepositTokenStore, stranger, b.tokenStore)
			},
			err: fault.OwnerMismatch,
		},
		{
			name: "edition owner",
			change: func(f *campaignFixture, b *boxFixture) {
				f.put(b.accounts.Edition, stranger, &record.MasterEdition{})
			},
			err: fault.OwnerMismatch,
		},
		{
			name:  "edition owner ignored for fungible token",
			class: record.FungibleToken,
			change: func(f *campaignFixture, b *boxFixture) {
				f.put(b.accounts.Edition, stranger, &record.MasterEdition{})
			},
			err: nil,
		},
		{
			name:   "vault owner",
			change: func(f *campaignFixture, b *boxFixture) { f.put(vaultKey, stranger, f.vault) },
			err:    fault.OwnerMismatch,
		},
		{
			name:   "metadata program",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.TokenMetadataProgram = stranger },
			err:    fault.TokenMetadataMismatch,
		},
		{
			name:   "authority",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.Authority = stranger },
			err:    fault.AuthorityMismatch,
		},
		{
			name:   "authority signature",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.Signers = b.accounts.Signers[1:] },
			err:    fault.AuthorityIsNotSigner,
		},
		{
			name: "campaign vault",
			change: func(f *campaignFixture, b *boxFixture) {
				f.campaign.Vault = stranger
				f.put(campaignKey, program, f.campaign)
			},
			err: fault.CampaignVaultMismatch,
		},
		{
			name: "box of another vault",
			change: func(f *campaignFixture, b *boxFixture) {
				b.box.Vault = stranger
				f.put(b.accounts.SafetyDepositBox, vaultProgram, b.box)
			},
			err: fault.SafetyDepositBoxVaultMismatch,
		},
		{
			name: "box address not derived",
			change: func(f *campaignFixture, b *boxFixture) {
				b.accounts.SafetyDepositBox = address.Address{0x90}
				f.put(b.accounts.SafetyDepositBox, vaultProgram, b.box)
			},
			err: fault.SafetyDepositBoxVaultMismatch,
		},
		{
			name: "whitelist inactive",
			change: func(f *campaignFixture, b *boxFixture) {
				f.put(f.whitelist, program, &record.WhitelistedCreator{Address: creator, Activated: false})
			},
			err: fault.WhitelistedCreatorInactive,
		},
		{
			name: "creator not whitelisted",
			change: func(f *campaignFixture, b *boxFixture) {
				b.metadata.Creators[0].Address = stranger
				f.put(b.accounts.Metadata, metadataProgram, b.metadata)
			},
			err: fault.NoValidCreator,
		},
		{
			name: "no creators",
			change: func(f *campaignFixture, b *boxFixture) {
				b.metadata.Creators = nil
				f.put(b.accounts.Metadata, metadataProgram, b.metadata)
			},
			err: fault.NoValidCreator,
		},
		{
			name: "unverified whitelisted creator",
			change: func(f *campaignFixture, b *boxFixture) {
				b.metadata.Creators[0].Verified = false
				f.put(b.accounts.Metadata, metadataProgram, b.metadata)
			},
			err: fault.CreatorHasNotVerifiedMetadata,
		},
		{
			name:   "store",
			public: true,
			change: func(f *campaignFixture, b *boxFixture) {
				b.accounts.Store = address.Address{0x91}
				f.put(b.accounts.Store, program, f.store)
			},
			err: fault.StoreMismatch,
		},
		{
			name: "mint",
			change: func(f *campaignFixture, b *boxFixture) {
				b.accounts.Mint = address.Address{0x92}
				f.put(b.accounts.Mint, tokenProgram, b.mint)
			},
			err: fault.MintMismatch,
		},
		{
			name: "token store not initialised",
			change: func(f *campaignFixture, b *boxFixture) {
				b.tokenStore.State = record.TokenAccountUninitialised
				f.put(b.accounts.SafetyDepositTokenStore, tokenProgram, b.tokenStore)
			},
			err: fault.Uninitialized,
		},
		{
			name:   "metadata authority",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.MetadataAuthority = authority },
			err:    fault.UpdateAuthorityIncorrect,
		},
		{
			name: "metadata authority signature",
			change: func(f *campaignFixture, b *boxFixture) {
				b.accounts.Signers = []address.Address{authority, payer}
			},
			err: fault.UpdateAuthorityIsNotSigner,
		},
		{
			name: "metadata of another mint",
			change: func(f *campaignFixture, b *boxFixture) {
				b.metadata.Mint = stranger
				f.put(b.accounts.Metadata, metadataProgram, b.metadata)
			},
			err: fault.MetadataMismatch,
		},
		{
			name:  "metadata of another mint for fungible token",
			class: record.FungibleToken,
			change: func(f *campaignFixture, b *boxFixture) {
				b.metadata.Mint = stranger
				f.put(b.accounts.Metadata, metadataProgram, b.metadata)
			},
			err: fault.MetadataMismatch,
		},
		{
			name:   "edition address",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.Edition = address.Address{0x93} },
			err:    fault.OwnerMismatch,
		},
		{
			name: "edition address owned by metadata program",
			change: func(f *campaignFixture, b *boxFixture) {
				b.accounts.Edition = address.Address{0x93}
				f.put(b.accounts.Edition, metadataProgram, &record.MasterEdition{})
			},
			err: fault.InvalidEditionAddress,
		},
		{
			name: "empty token store",
			change: func(f *campaignFixture, b *boxFixture) {
				b.tokenStore.Amount = 0
				f.put(b.accounts.SafetyDepositTokenStore, tokenProgram, b.tokenStore)
			},
			err: fault.StoreIsEmpty,
		},
		{
			name:   "lookup address",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.OriginalAuthorityLookup = address.Address{0x94} },
			err:    fault.OriginalAuthorityLookupKeyMismatch,
		},
		{
			name:   "config address",
			change: func(f *campaignFixture, b *boxFixture) { b.accounts.SafetyDepositConfig = address.Address{0x95} },
			err:    fault.DerivedAddressMismatch,
		},
		{
			name: "counter overflow",
			change: func(f *campaignFixture, b *boxFixture) {
				f.campaign.ValidatedCount = math.MaxUint64
				f.put(campaignKey, program, f.campaign)
			},
			err: fault.NumericalOverflow,
		},
		{
			name: "counter beyond declared count",
			change: func(f *campaignFixture, b *boxFixture) {
				f.campaign.ValidatedCount = 1
				f.put(campaignKey, program, f.campaign)
			},
			err: fault.ValidatedCountExceeded,
		},
	}

	for _, item := range items {
		t.Run(item.name, func(t *testing.T) {
			teardown := setupTest(t)
			defer teardown()

			f := newCampaign(t, item.public, item.class)
			b := f.boxes[0]
			item.change(f, b)

			before := everything()
			err := newProcessor(ownership.New()).ValidateSafetyDepositBox(&b.accounts, b.config)
			assert.Equal(t, item.err, err, "wrong error")
			if nil != item.err {
				assert.Equal(t, before, everything(), "state changed")
			}
		})
	}
}
