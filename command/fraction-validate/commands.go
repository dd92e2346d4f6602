// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/derivation"
	"github.com/bitmark-inc/fractiond/fraction"
	"github.com/bitmark-inc/fractiond/ledger"
	"github.com/bitmark-inc/fractiond/ownership"
	"github.com/bitmark-inc/fractiond/record"
	"github.com/bitmark-inc/fractiond/storage"
)

// setup command handler
//
// commands that cannot access any internal database or states or
// the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  programs                   (p)      - show the configured program identities\n\n")

		fmt.Printf("  derive KIND ADDRESS...     (d)      - print a derived address and its bump seed\n")
		fmt.Printf("                                        config CAMPAIGN BOX\n")
		fmt.Printf("                                        lookup VAULT METADATA\n")
		fmt.Printf("                                        campaign-signer VAULT\n")
		fmt.Printf("                                        whitelist STORE CREATOR\n")
		fmt.Printf("                                        box VAULT MINT\n")
		fmt.Printf("                                        edition MINT\n\n")

		fmt.Printf("  show ADDRESS               (s)      - print one account as JSON\n\n")
		fmt.Printf("  list                       (l)      - print every account as JSON\n\n")
		fmt.Printf("  load FILE                           - store the accounts of a Lua fixture file\n\n")
		fmt.Printf("  validate FILE                       - validate the safety deposit box request of a Lua file\n\n")

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration commands
//
// these do not access the database
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "programs", "p":
		printJson("programs", options.Programs)

	case "derive", "d":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing derivation kind")
		}
		derived, err := derive(options, arguments[0], arguments[1:])
		if nil != err {
			exitwithstatus.Message("derive: %s  error: %s", arguments[0], err)
		}
		printJson("", derived)

	default:
		return false
	}

	return true
}

func isReadOnlyCommand(command string) bool {
	switch command {
	case "show", "s", "list", "l":
		return true
	default:
		return false
	}
}

// commands that need the database
func processDataCommand(log *logger.L, arguments []string, options *Configuration, verbose bool) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "show", "s":
		if 1 != len(arguments) {
			exitwithstatus.Message("show requires exactly one address")
		}
		key, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
		}
		withLedger(func(l *ledger.Ledger) {
			printJson("", describe(l.Account(key)))
		})

	case "list", "l":
		withLedger(func(l *ledger.Ledger) {
			accounts := make([]accountDescription, 0, 16)
			for _, element := range storage.Pool.Accounts.Elements() {
				key, err := address.New(element.Key)
				if nil != err {
					log.Warnf("skip key: %x  error: %s", element.Key, err)
					continue
				}
				accounts = append(accounts, describe(l.Account(key)))
			}
			printJson("", accounts)
		})

	case "load":
		if 1 != len(arguments) {
			exitwithstatus.Message("load requires a fixture file")
		}
		accounts, err := loadFixture(arguments[0])
		if nil != err {
			exitwithstatus.Message("fixture: %q  error: %s", arguments[0], err)
		}
		log.Infof("loaded: %d accounts from: %q", len(accounts), arguments[0])
		for _, account := range accounts {
			printVerbose(verbose, "stored", account)
		}

	case "validate":
		if 1 != len(arguments) {
			exitwithstatus.Message("validate requires a request file")
		}
		request, err := validateRequest(options.program, arguments[0])
		if nil != request {
			printVerbose(verbose, "request", request)
		}
		if nil != err {
			exitwithstatus.Message("request: %q  validate error: %s", arguments[0], err)
		}
		withLedger(func(l *ledger.Ledger) {
			printJson("validated", describe(l.Account(request.Accounts.SafetyDepositConfig)))
		})

	default:
		return false
	}

	return true
}

// run a read only action inside the database transaction
func withLedger(action func(*ledger.Ledger)) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		exitwithstatus.Message("transaction error: %s", err)
	}
	defer trx.Abort()

	action(ledger.New(trx, storage.Pool.Accounts))
}

// read a fixture file and store its accounts
func loadFixture(fileName string) ([]ledger.Account, error) {
	accounts, err := readFixture(fileName)
	if nil != err {
		return nil, err
	}
	err = storeAccounts(accounts)
	if nil != err {
		return nil, err
	}
	return accounts, nil
}

// read a request file and validate its box
func validateRequest(program address.Address, fileName string) (*request, error) {
	r, err := readRequest(fileName)
	if nil != err {
		return nil, err
	}
	processor := fraction.New(program, storage.Pool.Accounts, ownership.New())
	err = processor.ValidateSafetyDepositBox(&r.Accounts, r.Config)
	return r, err
}

// write all fixture accounts in one transaction
func storeAccounts(accounts []ledger.Account) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	l := ledger.New(trx, storage.Pool.Accounts)
	for _, account := range accounts {
		err := l.Put(account)
		if nil != err {
			trx.Abort()
			return err
		}
	}
	return trx.Commit()
}

type derivedAddress struct {
	Kind    string          `json:"kind"`
	Program address.Address `json:"program"`
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// find the canonical derived address of a kind
func derive(options *Configuration, kind string, arguments []string) (*derivedAddress, error) {

	addresses := make([]address.Address, len(arguments))
	for i, s := range arguments {
		a, err := address.FromBase58(s)
		if nil != err {
			return nil, err
		}
		addresses[i] = a
	}

	need := func(n int) error {
		if n != len(addresses) {
			return fmt.Errorf("%s requires %d addresses, %d were given", kind, n, len(addresses))
		}
		return nil
	}

	program := options.program
	var seeds [][]byte

	switch kind {
	case "config":
		if err := need(2); nil != err {
			return nil, err
		}
		seeds = fraction.ConfigSeeds(program, addresses[0], addresses[1])

	case "lookup":
		if err := need(2); nil != err {
			return nil, err
		}
		seeds = fraction.LookupSeeds(addresses[0], addresses[1])

	case "campaign-signer":
		if err := need(1); nil != err {
			return nil, err
		}
		seeds = fraction.CampaignSigningSeeds(addresses[0])

	case "whitelist":
		if err := need(2); nil != err {
			return nil, err
		}
		seeds = fraction.WhitelistSeeds(program, addresses[0], addresses[1])

	case "box":
		if err := need(2); nil != err {
			return nil, err
		}
		program = options.vaultProgram
		seeds = fraction.BoxSeeds(addresses[0], addresses[1])

	case "edition":
		if err := need(1); nil != err {
			return nil, err
		}
		program = options.metaProgram
		seeds = fraction.EditionSeeds(program, addresses[0])

	default:
		return nil, fmt.Errorf("unknown kind: %q", kind)
	}

	derived, bump, err := derivation.Find(program, seeds...)
	if nil != err {
		return nil, err
	}

	return &derivedAddress{
		Kind:    kind,
		Program: program,
		Address: derived,
		Bump:    bump,
	}, nil
}

type accountDescription struct {
	Key    address.Address `json:"key"`
	Owner  address.Address `json:"owner"`
	Size   int             `json:"size"`
	Type   string          `json:"type,omitempty"`
	Record record.Record   `json:"record,omitempty"`
	Data   string          `json:"data,omitempty"`
}

// decode an account for display, raw hex if it is not a known record
func describe(v ledger.View) accountDescription {
	d := accountDescription{
		Key:   v.Key(),
		Owner: v.Owner(),
		Size:  v.Size(),
	}
	if v.IsEmpty() {
		return d
	}
	r, err := v.Unpack()
	if nil != err {
		d.Data = hex.EncodeToString(v.Data())
		return d
	}
	d.Type, _ = record.RecordName(r)
	d.Record = r
	return d
}
