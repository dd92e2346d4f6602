// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua files for settings and operator input
//
// A file is an ordinary Lua chunk with the standard libraries open
// (so os.getenv and io.open can supply values) that must return one
// table.  The command reads its configuration this way, and also the
// account fixtures and validation requests it is given.
package configuration
