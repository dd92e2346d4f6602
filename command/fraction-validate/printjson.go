// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// write an indented JSON block to stdout, under a title if one is given
func printJson(title string, message interface{}) {
	if "" != title {
		fmt.Printf("%s:\n", title)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(message); nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}
}

// only print with --verbose
func printVerbose(verbose bool, title string, message interface{}) {
	if verbose {
		printJson(title, message)
	}
}
