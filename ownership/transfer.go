// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sync"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/record"
	"github.com/bitmark-inc/logger"
)

// to ensure synchronised ownership updates
var toLock sync.Mutex

// Transfer - move the update authority of one metadata record
type Transfer struct {
	Program           address.Address // metadata program that owns the record
	Requester         address.Address // program asking for the transfer
	Signer            address.Address // address derived by the requester that must sign
	Metadata          address.Address
	Authority         address.Address // current update authority
	AuthorityIsSigner bool
	NewAuthority      address.Address
}

// Custodian - performs authority changes on behalf of the metadata program
type Custodian struct {
	log *logger.L
}

// New - create a custodian with its own log channel
func New() *Custodian {
	return &Custodian{
		log: logger.New("ownership"),
	}
}

// TransferAuthority - replace the update authority of a metadata record
//
// the caller must hold the capability for the expected signer, derived
// under the requesting program, and the current authority must have
// signed
func (c *Custodian) TransferAuthority(l *ledger.Ledger, transfer Transfer, signer derivation.Capability) error {

	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	if !signer.IsValid() || signer.Program() != transfer.Requester {
		return fault.InvalidCapability
	}
	if !signer.Allows(transfer.Signer) {
		return fault.DerivedAddressMismatch
	}

	h, err := l.Writable(transfer.Metadata, transfer.Program)
	if nil != err {
		return err
	}

	r, err := h.View().Unpack()
	if nil != err {
		return err
	}
	metadata, ok := r.(*record.Metadata)
	if !ok {
		return fault.InvalidRecordType
	}

	if metadata.UpdateAuthority != transfer.Authority {
		return fault.UpdateAuthorityIncorrect
	}
	if !transfer.AuthorityIsSigner {
		return fault.UpdateAuthorityIsNotSigner
	}

	metadata.UpdateAuthority = transfer.NewAuthority
	packed, err := metadata.Pack()
	if nil != err {
		return err
	}

	err = h.Save(packed)
	if nil != err {
		return err
	}

	c.log.Infof("metadata: %s  authority: %s -> %s  signed by: %s", transfer.Metadata, transfer.Authority, transfer.NewAuthority, signer.Signer())
	return nil
}
