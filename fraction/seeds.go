// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

import (
	"github.com/bitmark-inc/fractiond/address"
)

// seed prefixes
const (
	Prefix         = "metaplex"
	VaultPrefix    = "vault"
	MetadataPrefix = "metadata"
	EditionSuffix  = "edition"
)

// ConfigSeeds - safety deposit config of one box
func ConfigSeeds(program address.Address, campaign address.Address, box address.Address) [][]byte {
	return [][]byte{[]byte(Prefix), program.Bytes(), campaign.Bytes(), box.Bytes()}
}

// LookupSeeds - original authority lookup of one metadata in a vault
func LookupSeeds(vault address.Address, metadata address.Address) [][]byte {
	return [][]byte{[]byte(Prefix), vault.Bytes(), metadata.Bytes()}
}

// CampaignSigningSeeds - signer acting for the campaign of a vault
func CampaignSigningSeeds(vault address.Address) [][]byte {
	return [][]byte{[]byte(Prefix), vault.Bytes()}
}

// WhitelistSeeds - whitelisted creator entry of a store
func WhitelistSeeds(program address.Address, store address.Address, creator address.Address) [][]byte {
	return [][]byte{[]byte(Prefix), program.Bytes(), store.Bytes(), creator.Bytes()}
}

// BoxSeeds - safety deposit box of a vault, under the vault program
func BoxSeeds(vault address.Address, mint address.Address) [][]byte {
	return [][]byte{[]byte(VaultPrefix), vault.Bytes(), mint.Bytes()}
}

// EditionSeeds - master edition of a mint, under the metadata program
func EditionSeeds(metadataProgram address.Address, mint address.Address) [][]byte {
	return [][]byte{[]byte(MetadataPrefix), metadataProgram.Bytes(), mint.Bytes(), []byte(EditionSuffix)}
}
