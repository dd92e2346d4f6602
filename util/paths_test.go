// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/fractiond/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "file.log", "/data/file.log"},
		{"/data", "log/file.log", "/data/log/file.log"},
		{"/data/", "./x/../file", "/data/file"},
		{"/data", "/var/log/file.log", "/var/log/file.log"},
		{"/data", "/var//log/../file.log", "/var/file.log"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		if actual != item.expected {
			t.Errorf("%d: EnsureAbsolute(%q, %q) -> %q  expected: %q", i, item.directory, item.path, actual, item.expected)
		}
	}
}
