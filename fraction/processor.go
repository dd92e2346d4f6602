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
	"github.com/bitmark-inc/fractiond/storage"
	"github.com/bitmark-inc/logger"
)

// Custodian - changes the update authority of a metadata record
type Custodian interface {
	TransferAuthority(*ledger.Ledger, ownership.Transfer, derivation.Capability) error
}

// Accounts - the addresses taking part in validating one box
type Accounts struct {
	SafetyDepositConfig     address.Address   `json:"safetyDepositConfig"`
	CampaignManager         address.Address   `json:"campaignManager"`
	Metadata                address.Address   `json:"metadata"`
	OriginalAuthorityLookup address.Address   `json:"originalAuthorityLookup"`
	WhitelistedCreator      address.Address   `json:"whitelistedCreator"` // system address if none
	Store                   address.Address   `json:"store"`
	SafetyDepositBox        address.Address   `json:"safetyDepositBox"`
	SafetyDepositTokenStore address.Address   `json:"safetyDepositTokenStore"`
	Mint                    address.Address   `json:"mint"`
	Edition                 address.Address   `json:"edition"`
	Vault                   address.Address   `json:"vault"`
	Authority               address.Address   `json:"authority"`
	MetadataAuthority       address.Address   `json:"metadataAuthority"`
	Payer                   address.Address   `json:"payer"`
	TokenMetadataProgram    address.Address   `json:"tokenMetadataProgram"`
	Signers                 []address.Address `json:"signers"`
}

// IsSigner - true if the address signed the request
func (accounts *Accounts) IsSigner(a address.Address) bool {
	for _, s := range accounts.Signers {
		if s == a {
			return true
		}
	}
	return false
}

// Processor - validates safety deposit boxes for one program
type Processor struct {
	program   address.Address
	pool      *storage.PoolHandle
	custodian Custodian
	log       *logger.L
}

// New - processor acting as the given program over an account pool
func New(program address.Address, pool *storage.PoolHandle, custodian Custodian) *Processor {
	return &Processor{
		program:   program,
		pool:      pool,
		custodian: custodian,
		log:       logger.New("fraction"),
	}
}

// Program - the identity the processor acts as
func (p *Processor) Program() address.Address {
	return p.program
}

// ValidateSafetyDepositBox - validate one box and record it against
// its campaign
//
// either every write is committed or, on any error, none is
func (p *Processor) ValidateSafetyDepositBox(accounts *Accounts, config Config) (err error) {
	if !config.AssetClass.IsValid() {
		return fault.InvalidAssetClass
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	ok := false
	defer func() {
		if !ok {
			trx.Abort()
			if nil == err {
				p.log.Criticalf("box: %s  aborted without result", accounts.SafetyDepositBox)
			} else {
				p.log.Warnf("box: %s  rejected: %s", accounts.SafetyDepositBox, err)
			}
			return
		}
		err = trx.Commit()
		if nil != err {
			p.log.Errorf("box: %s  commit error: %s", accounts.SafetyDepositBox, err)
			return
		}
		p.log.Infof("box: %s  order: %d  class: %s  validated for campaign: %s", accounts.SafetyDepositBox, config.Order, config.AssetClass, accounts.CampaignManager)
	}()

	l := ledger.New(trx, p.pool)

	// replay guard
	if !l.Account(accounts.SafetyDepositConfig).IsEmpty() {
		return fault.AlreadyValidated
	}

	s, err := load(l, accounts)
	if nil != err {
		return err
	}

	err = checkCommon(p.program, s.store, s, accounts, config.AssetClass)
	if nil != err {
		return err
	}

	err = p.checkSupply(l, s.store, s, accounts, config.AssetClass)
	if nil != err {
		return err
	}

	err = p.advance(l, s, accounts, config)
	if nil != err {
		return err
	}

	err = p.writeConfig(l, accounts, config)
	if nil != err {
		return err
	}

	ok = true // commit
	return nil
}

// the payer funds every account the program allocates
func payerSigned(accounts *Accounts) error {
	if !accounts.IsSigner(accounts.Payer) {
		return fault.PayerIsNotSigner
	}
	return nil
}
