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

package ethtypes

import (
	"testing"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/stretchr/testify/assert"
)

func TestChecksumEIP55(t *testing.T) {
	a, err := ParseAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	assert.NoError(t, err)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", a.ToChecksum(nil))
}

func TestChecksumEIP1191(t *testing.T) {
	a, err := ParseAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	assert.NoError(t, err)
	chainID := int64(1)
	assert.Equal(t, "0xD8Da6bf26964Af9d7EEd9e03e53415d37AA96045", a.ToChecksum(&chainID))
}

func TestChecksumIdempotent(t *testing.T) {
	const canonical = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	a, err := ParseChecksummed(canonical, nil)
	assert.NoError(t, err)
	assert.Equal(t, canonical, a.ToChecksum(nil))
}

func TestChecksumRejectsFlippedCase(t *testing.T) {
	const canonical = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	flipped := []byte(canonical)
	flipped[2] = 'D' // 'd' -> 'D', flipping a correctly-lowercase letter
	_, err := ParseChecksummed(string(flipped), nil)
	assert.True(t, abierrors.Is(err, abierrors.KindInvalidChecksum))
}

func TestChecksumRequiresPrefix(t *testing.T) {
	_, err := ParseChecksummed("d8dA6BF26964aF9D7eEd9e03E53415D37aA96045", nil)
	assert.True(t, abierrors.Is(err, abierrors.KindInvalidHex))
}

func TestCreate2(t *testing.T) {
	var sender Address
	var salt Word
	initCodeHash := Keccak256([]byte{0x00})
	addr := Create2(sender, salt, initCodeHash)
	assert.Equal(t, "0x4D1A2e2bB4F88F0250f26Ffff098B0b30B26BF38", addr.ToChecksum(nil))
}

func TestCreate(t *testing.T) {
	sender, err := ParseAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	assert.NoError(t, err)

	addr0 := Create(sender, 0)
	assert.Equal(t, "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d", addr0.HexLower())

	addr1 := Create(sender, 1)
	assert.Equal(t, "0x343c43a37d37dff08ae8c4a11544c718abb4fcf8", addr1.HexLower())
}

func TestFromWordRoundtrip(t *testing.T) {
	a, _ := ParseAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	w := a.IntoWord()
	for i := 0; i < 12; i++ {
		assert.Equal(t, byte(0), w[i])
	}
	assert.Equal(t, a, AddressFromWord(w))
}
