// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fraction - validate one safety deposit box of a
// fractionalised vault
//
// A campaign manager owns a vault of safety deposit boxes.  Each box
// is validated exactly once: the record graph around it is cross
// checked, the custody of a unique edition's metadata is handed to the
// campaign manager, the campaign's validated count is advanced, and a
// safety deposit config record is created to mark the box as done.
//
// Processing order:
//
//   replay guard       - config slot must be empty
//   load               - campaign, box, metadata, store, vault
//   common checks      - fifteen ordered cross record checks
//   supply checks      - one branch per asset class
//   order check        - config order against box order
//   progress           - count and status of the campaign
//   config             - create the config record
//
// Everything runs inside one storage transaction: any error aborts it
// and leaves no trace.
//
// Derived addresses (all under this program unless noted):
//
//   config         - "metaplex" ++ program ++ campaign ++ box
//   lookup         - "metaplex" ++ vault ++ metadata
//   campaign       - "metaplex" ++ vault             (signing only)
//   whitelist      - "metaplex" ++ program ++ store ++ creator
//   box            - "vault" ++ vault ++ mint         (vault program)
//   edition        - "metadata" ++ metadata program ++ mint ++ "edition"
//                                                     (metadata program)
package fraction
