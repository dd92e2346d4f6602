// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic program addresses
//
// A derived address is a SHA3-256 digest of a list of seeds, the
// owning program and a fixed marker.  Digests that decode as a point
// on the ed25519 curve are rejected, so no private key can exist for
// a derived address.  A trailing one byte "bump" seed is searched
// downwards from 255 until an off-curve digest is found.
//
// Knowing the full seed list (including the bump) is the only way to
// act as a derived address; Authorize turns such a seed list into a
// Capability which the ledger and the custody transfer accept in
// place of a signature.
package derivation
