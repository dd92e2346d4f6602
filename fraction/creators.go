// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fraction

import (
	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fault"
	"github.com/bitmark-inc/fractiond/record"
)

// a public store accepts any asset whose listed creators have all
// verified; otherwise one verified creator must hold an activated
// whitelist entry derived for this store
func checkCreators(program address.Address, store record.Store, s *snapshot, accounts *Accounts) error {
	creators := s.metadata.Creators

	if store.Public {
		for _, c := range creators {
			if !c.Verified {
				return fault.CreatorHasNotVerifiedMetadata
			}
		}
		return nil
	}

	if 0 == len(creators) {
		return fault.NoValidCreator
	}

	whitelisted, err := loadWhitelistedCreator(s.whitelistView)
	if nil != err {
		return fault.NoValidCreator
	}
	if !whitelisted.Activated {
		return fault.WhitelistedCreatorInactive
	}

	found := false
	for _, c := range creators {
		if !c.Verified {
			return fault.CreatorHasNotVerifiedMetadata
		}
		if found || c.Address != whitelisted.Address {
			continue
		}
		key, _, err := derivation.Find(program, WhitelistSeeds(program, accounts.Store, c.Address)...)
		if nil == err && key == accounts.WhitelistedCreator {
			found = true
		}
	}
	if !found {
		return fault.NoValidCreator
	}
	return nil
}
