// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - addressed accounts over the storage transaction
//
// every account is stored in the accounts pool as:
//
//   owner ++ data
//
// where owner is the address of the only program allowed to change
// the data.  An account that is not stored, or has no data, is empty
// and owned by the system address.
//
// Reads return a View, a copy that cannot be written back.  Writes go
// through a Handle, which is only issued to the owning program or to
// the holder of a derivation.Capability for a new account.
package ledger
