// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/configuration"
	"github.com/bitmark-inc/fractiond/fraction"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/record"
)

// record constructors by tag name
var recordTypes = map[string]func() record.Record{
	record.CampaignManagerV1.String():         func() record.Record { return new(record.CampaignManager) },
	record.SafetyDepositConfigV1.String():     func() record.Record { return new(record.SafetyDepositConfig) },
	record.OriginalAuthorityLookupV1.String(): func() record.Record { return new(record.OriginalAuthorityLookup) },
	record.StoreV1.String():                   func() record.Record { return new(record.Store) },
	record.WhitelistedCreatorV1.String():      func() record.Record { return new(record.WhitelistedCreator) },
	record.VaultV1.String():                   func() record.Record { return new(record.Vault) },
	record.SafetyDepositBoxV1.String():        func() record.Record { return new(record.SafetyDepositBox) },
	record.MetadataV1.String():                func() record.Record { return new(record.Metadata) },
	record.MasterEditionV2.String():           func() record.Record { return new(record.MasterEdition) },
	record.MintV1.String():                    func() record.Record { return new(record.Mint) },
	record.TokenAccountV1.String():            func() record.Record { return new(record.TokenAccount) },
}

type fixtureAccount struct {
	Key    address.Address `json:"key"`
	Owner  address.Address `json:"owner"`
	Record string          `json:"record"`
	Data   json.RawMessage `json:"data"`
}

type fixtureFile struct {
	Accounts []fixtureAccount `json:"accounts"`
}

// request - one safety deposit box validation
type request struct {
	Accounts fraction.Accounts `json:"accounts"`
	Config   fraction.Config   `json:"config"`
}

// readFixture - packed accounts from a Lua fixture file
func readFixture(fileName string) ([]ledger.Account, error) {
	fixture := fixtureFile{}
	err := readLuaFile(fileName, &fixture)
	if nil != err {
		return nil, err
	}

	accounts := make([]ledger.Account, 0, len(fixture.Accounts))
	for i, f := range fixture.Accounts {
		newRecord, ok := recordTypes[f.Record]
		if !ok {
			return nil, fmt.Errorf("account[%d]: %s  unknown record: %q", i+1, f.Key, f.Record)
		}
		r := newRecord()
		if 0 != len(f.Data) {
			err := json.Unmarshal(f.Data, r)
			if nil != err {
				return nil, fmt.Errorf("account[%d]: %s  error: %s", i+1, f.Key, err)
			}
		}
		packed, err := r.Pack()
		if nil != err {
			return nil, fmt.Errorf("account[%d]: %s  pack error: %s", i+1, f.Key, err)
		}
		accounts = append(accounts, ledger.Account{
			Key:   f.Key,
			Owner: f.Owner,
			Data:  packed,
		})
	}
	return accounts, nil
}

// readRequest - validation request from a Lua file
func readRequest(fileName string) (*request, error) {
	r := &request{}
	err := readLuaFile(fileName, r)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// execute a Lua file and decode the returned table through its JSON
// form so the text forms of addresses and names are used
func readLuaFile(fileName string, result interface{}) error {
	contents := make(map[string]interface{})
	err := configuration.ParseConfigurationFile(fileName, &contents)
	if nil != err {
		return err
	}
	buffer, err := json.Marshal(normalise(contents))
	if nil != err {
		return err
	}
	return json.Unmarshal(buffer, result)
}

// convert Lua tables into values that JSON can encode
func normalise(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[fmt.Sprint(key)] = normalise(item)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[key] = normalise(item)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(v))
		for i, item := range v {
			a[i] = normalise(item)
		}
		return a
	default:
		return v
	}
}
