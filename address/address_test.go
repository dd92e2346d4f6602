// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fractiond/address"
	"github.com/bitmark-inc/fractiond/fault"
)

func TestSystemAddress(t *testing.T) {
	assert.True(t, address.System.IsSystem(), "zero address is not system")
	assert.Equal(t, "11111111111111111111111111111111", address.System.String(), "wrong system text")

	a := address.Address{1}
	assert.False(t, a.IsSystem(), "non-zero address is system")
}

func TestBase58RoundTrip(t *testing.T) {
	a := address.Address{}
	for i := range a {
		a[i] = byte(i * 7)
	}

	decoded, err := address.FromBase58(a.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, a, decoded, "wrong decoded address")
	assert.Equal(t, "<address:"+a.String()+">", fmt.Sprintf("%#v", a), "wrong go string")
}

func TestFromBase58Errors(t *testing.T) {
	_, err := address.FromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAddress, err, "wrong error for bad alphabet")

	_, err = address.FromBase58("2NEpo7TZRRrLZSi2U")
	assert.Equal(t, fault.InvalidAddressLength, err, "wrong error for short address")
}

func TestNew(t *testing.T) {
	_, err := address.New([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAddressLength, err, "wrong error")

	buffer := make([]byte, address.Length)
	buffer[31] = 9
	a, err := address.New(buffer)
	assert.Nil(t, err, "new error")
	assert.True(t, a.Equal(buffer), "not equal to source")

	b := a.Bytes()
	b[0] = 1
	assert.Equal(t, byte(0), a[0], "bytes is not a copy")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Key address.Address `json:"key"`
	}
	h := holder{Key: address.Address{0xfe, 0x01}}

	b, err := json.Marshal(h)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"key":"`+h.Key.String()+`"}`, string(b), "wrong JSON")

	var back holder
	err = json.Unmarshal(b, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, h, back, "wrong unmarshalled value")
}
