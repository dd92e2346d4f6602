// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/fractiond/storage"
	"github.com/bitmark-inc/logger"
)

const (
	LogCategory = "testing"
)

var logDirectory string

// SetupTestLogger - start logging to a temporary directory, only
// critical messages are written
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", LogCategory)
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles(logDirectory)
}

// SetupTestDatabase - open an empty account database in a temporary
// directory, returning its teardown
func SetupTestDatabase(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "database")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		removeFiles(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	return func() {
		storage.Finalise()
		removeFiles(dir)
	}
}

func removeFiles(dir string) {
	if "" == dir {
		return
	}
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
