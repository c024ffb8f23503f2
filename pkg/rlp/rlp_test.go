// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rlp

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeUintZero(t *testing.T) {
	assert.Equal(t, "80", hex.EncodeToString(EncodeUint(0)))
}

func TestEncodeUintSmall(t *testing.T) {
	// a single byte below 0x80 is its own encoding
	assert.Equal(t, "01", hex.EncodeToString(EncodeUint(1)))
	assert.Equal(t, "7f", hex.EncodeToString(EncodeUint(0x7f)))
}

func TestEncodeUintMultiByte(t *testing.T) {
	assert.Equal(t, "820400", hex.EncodeToString(EncodeUint(0x0400)))
}

func TestEncodeBytesShort(t *testing.T) {
	assert.Equal(t, "83646f67", hex.EncodeToString(EncodeBytes([]byte("dog"))))
}

func TestEncodeBytesLong(t *testing.T) {
	long := make([]byte, 56)
	for i := range long {
		long[i] = 'a'
	}
	encoded := EncodeBytes(long)
	// 56 bytes needs the long-string form: 0xb8 (0xb7+1 length-of-length byte), then length, then data
	assert.Equal(t, byte(0xb8), encoded[0])
	assert.Equal(t, byte(56), encoded[1])
	assert.Len(t, encoded, 58)
}

func TestEncodeListForCreate(t *testing.T) {
	addr, _ := hex.DecodeString("6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	list := EncodeList(EncodeBytes(addr), EncodeUint(0))
	// list header: 0xc0 + payload length (21-byte string element + 1-byte nonce-zero element)
	assert.Equal(t, byte(0xc0+21+1), list[0])
}
