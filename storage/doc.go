// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk account store
//
// maintain separate pools of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single Transaction: puts are staged in a
// LevelDB batch and mirrored in an in-memory overlay so that reads
// inside the transaction observe them.  Commit writes the batch
// atomically, Abort discards it.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. address = 32 byte account address
// 4. owner   = 32 byte address of the owning program
//
// Accounts:
//
//   A ++ address               - account store
//                                data: owner ++ record data
//
// Testing:
//   Z ++ key                   - testing data
package storage
