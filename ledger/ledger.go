// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/storage"
)

// Ledger - accounts read and written through one transaction
type Ledger struct {
	trx  storage.Transaction
	pool *storage.PoolHandle
}

// New - ledger over an open transaction
func New(trx storage.Transaction, pool *storage.PoolHandle) *Ledger {
	return &Ledger{
		trx:  trx,
		pool: pool,
	}
}

// Account - read-only view of an account
//
// staged writes of the current transaction are visible
func (l *Ledger) Account(key address.Address) View {
	stored := l.trx.Get(l.pool, key[:])
	if nil == stored {
		return View{
			key:   key,
			owner: address.System,
		}
	}
	if len(stored) < address.Length {
		fault.Corrupt("ledger.Account: truncated account: %s  length: %d", key, len(stored))
	}

	owner, err := address.New(stored[:address.Length])
	fault.CorruptIfError("ledger.Account", err)

	data := make([]byte, len(stored)-address.Length)
	copy(data, stored[address.Length:])

	return View{
		key:   key,
		owner: owner,
		data:  data,
	}
}

// Writable - handle for the owning program to rewrite an existing
// account in place
func (l *Ledger) Writable(key address.Address, program address.Address) (*Handle, error) {
	v := l.Account(key)
	if v.IsEmpty() {
		return nil, fault.Uninitialized
	}
	if v.owner != program {
		return nil, fault.OwnerMismatch
	}
	return &Handle{
		ledger: l,
		key:    key,
		owner:  v.owner,
		size:   v.Size(),
	}, nil
}

// Allocate - create a zero-filled account of a fixed size
//
// the capability must be for the new address itself and be derived
// under the owning program
func (l *Ledger) Allocate(key address.Address, owner address.Address, size int, signer derivation.Capability) (*Handle, error) {
	if !signer.IsValid() || signer.Program() != owner {
		return nil, fault.InvalidCapability
	}
	if !signer.Allows(key) {
		return nil, fault.DerivedAddressMismatch
	}
	if size <= 0 {
		return nil, fault.RecordLength
	}
	if !l.Account(key).IsEmpty() {
		return nil, fault.AlreadyInitialized
	}

	h := &Handle{
		ledger: l,
		key:    key,
		owner:  owner,
		size:   size,
	}
	h.put(make([]byte, size))
	return h, nil
}

// Put - store an account unconditionally
//
// only for loading accounts that other programs own
func (l *Ledger) Put(account Account) error {
	if !l.trx.InUse() {
		return fault.TransactionIsNotBegun
	}
	if 0 == len(account.Data) {
		return fault.RecordLength
	}
	l.trx.Put(l.pool, account.Key[:], encode(account.Owner, account.Data))
	return nil
}

func encode(owner address.Address, data []byte) []byte {
	buffer := make([]byte, 0, address.Length+len(data))
	buffer = append(buffer, owner[:]...)
	return append(buffer, data...)
}
