// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

import (
	"math/bits"

	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/record"
)

// count the box against the campaign and mark the campaign validated
// when the vault's declared count is reached
//
// status only moves from Initialized to Validated
func (p *Processor) advance(l *ledger.Ledger, s *snapshot, accounts *Accounts, config Config) error {
	if config.Order != uint64(s.box.Order) {
		return fault.OrderMismatch
	}

	h, err := l.Writable(accounts.CampaignManager, p.program)
	if nil != err {
		return err
	}

	count, carry := bits.Add64(s.campaign.ValidatedCount, 1, 0)
	if 0 != carry {
		return fault.NumericalOverflow
	}
	declared := uint64(s.vault.TokenTypeCount)
	if count > declared {
		return fault.ValidatedCountExceeded
	}

	campaign := *s.campaign
	campaign.ValidatedCount = count
	if count == declared && record.Validated != campaign.Status {
		campaign.Status = record.Validated
		p.log.Infof("campaign: %s  validated all %d boxes", accounts.CampaignManager, declared)
	}

	packed, err := campaign.Pack()
	if nil != err {
		return err
	}
	return h.Save(packed)
}
