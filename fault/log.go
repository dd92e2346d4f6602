// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before a corruption panic
var log *logger.L

// Initialise - open the PANIC log channel
func Initialise() error {
	if nil != log {
		return AlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return InvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the PANIC log channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Corrupt - log the caller's location and a formatted message, then
// panic; used when stored data cannot be trusted
func Corrupt(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	critical(message)
	panic(message)
}

// CorruptIfError - Corrupt when err is not nil
func CorruptIfError(message string, err error) {
	if nil == err {
		return
	}
	critical(fmt.Sprintf("%s failed with error: %v", message, err))
	panic(err)
}

// works before Initialise, so tests without a logger still see it
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
	time.Sleep(100 * time.Millisecond) // to allow logging output
}
