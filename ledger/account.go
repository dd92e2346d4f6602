// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/record"
)

// Account - one addressed record and its owning program
type Account struct {
	Key   address.Address `json:"key"`
	Owner address.Address `json:"owner"`
	Data  []byte          `json:"data"`
}

// View - read-only copy of an account
type View struct {
	key   address.Address
	owner address.Address
	data  []byte
}

// Key - address of the account
func (v View) Key() address.Address {
	return v.key
}

// Owner - the program that may write the account
func (v View) Owner() address.Address {
	return v.owner
}

// IsEmpty - true if nothing has been stored
func (v View) IsEmpty() bool {
	return 0 == len(v.data)
}

// Size - length of the stored data
func (v View) Size() int {
	return len(v.data)
}

// Data - a copy of the stored data
func (v View) Data() []byte {
	data := make([]byte, len(v.data))
	copy(data, v.data)
	return data
}

// Unpack - decode the stored record
func (v View) Unpack() (record.Record, error) {
	return record.Packed(v.data).Unpack()
}

// Account - plain copy for display
func (v View) Account() Account {
	return Account{
		Key:   v.key,
		Owner: v.owner,
		Data:  v.Data(),
	}
}
