// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/fractiond/fault"
)

// Lua keys are used exactly as written, matched against the
// "gluamapper" field tags
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua file and map the table it
// returns onto config, which must be a pointer
//
// fields absent from the table keep their current values, so config
// can be pre-loaded with defaults
//
// the script sees arg[0] as its own file name and arg[1] as the
// directory containing it
func ParseConfigurationFile(fileName string, config interface{}) error {
	if "" == fileName {
		return fault.MissingConfiguration
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.RawSetInt(0, lua.LString(fileName))
	arg.RawSetInt(1, lua.LString(filepath.Dir(fileName)))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.MissingConfiguration
	}
	return mapper.Map(table, config)
}
