// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

import (
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/record"
)

// Config - the caller's claim about one box
type Config struct {
	Order      uint64            `json:"order"`
	AssetClass record.AssetClass `json:"assetClass"`
}

// create the config record that marks the box as validated
func (p *Processor) writeConfig(l *ledger.Ledger, accounts *Accounts, config Config) error {
	if !l.Account(accounts.SafetyDepositConfig).IsEmpty() {
		return fault.AlreadyValidated
	}

	seeds := ConfigSeeds(p.program, accounts.CampaignManager, accounts.SafetyDepositBox)
	bump, err := derivation.Verify(accounts.SafetyDepositConfig, p.program, seeds...)
	if nil != err {
		return err
	}

	signer, err := derivation.Authorize(p.program, derivation.WithBump(seeds, bump)...)
	if nil != err {
		return err
	}

	if err := payerSigned(accounts); nil != err {
		return err
	}
	h, err := l.Allocate(accounts.SafetyDepositConfig, p.program, record.SafetyDepositConfigSize, signer)
	if nil != err {
		return err
	}

	safetyDepositConfig := &record.SafetyDepositConfig{
		CampaignManager: accounts.CampaignManager,
		Order:           config.Order,
		AssetClass:      config.AssetClass,
	}
	packed, err := safetyDepositConfig.Pack()
	if nil != err {
		return err
	}
	return h.Save(packed)
}
