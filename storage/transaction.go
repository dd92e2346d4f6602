// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing group of writes
type Transaction interface {
	Begin() error
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - transaction over a single data access
type TransactionData struct {
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		dataAccess: access,
	}
}

// Begin - start the transaction
func (t *TransactionData) Begin() error {
	return t.dataAccess.Begin()
}

// Put - stage a write, only valid inside the transaction
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	if !t.dataAccess.InUse() {
		logger.Panicf("transaction.Put: %s", fault.TransactionIsNotBegun)
	}
	handle.put(key, value)
}

// Get - read through the staged writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// Has - check through the staged writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write everything staged
func (t *TransactionData) Commit() error {
	return t.dataAccess.Commit()
}

// Abort - discard everything staged
func (t *TransactionData) Abort() {
	t.dataAccess.Abort()
}

// InUse - true while the transaction is open
func (t *TransactionData) InUse() bool {
	return t.dataAccess.InUse()
}
