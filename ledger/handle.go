// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/fault"
)

// Handle - write access to one account, fixed to its allocated size
type Handle struct {
	ledger *Ledger
	key    address.Address
	owner  address.Address
	size   int
}

// Key - address of the account
func (h *Handle) Key() address.Address {
	return h.key
}

// View - current contents
func (h *Handle) View() View {
	return h.ledger.Account(h.key)
}

// Save - replace the whole data of the account
func (h *Handle) Save(data []byte) error {
	if len(data) != h.size {
		return fault.RecordLength
	}
	h.put(data)
	return nil
}

func (h *Handle) put(data []byte) {
	h.ledger.trx.Put(h.ledger.pool, h.key[:], encode(h.owner, data))
}
