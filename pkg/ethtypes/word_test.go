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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordFromHexRejectsWrongLength(t *testing.T) {
	_, err := WordFromHex("0x1234")
	assert.Error(t, err)
}

func TestWordRoundtripUnsigned(t *testing.T) {
	v := big.NewInt(123456789)
	w, err := WordFromBigIntUnsigned(v)
	assert.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(w.BigIntUnsigned()))
}

func TestWordSignedNegativeRoundtrip(t *testing.T) {
	v := big.NewInt(-42)
	w, err := WordFromBigIntSigned(v)
	assert.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(w.BigIntSigned()))
	// high bytes should be 0xff (sign extension)
	assert.Equal(t, byte(0xff), w[0])
}

func TestWordSignedPositiveRoundtrip(t *testing.T) {
	v := big.NewInt(42)
	w, err := WordFromBigIntSigned(v)
	assert.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(w.BigIntSigned()))
	assert.Equal(t, byte(0x00), w[0])
}

func TestUint256Roundtrip(t *testing.T) {
	v := big.NewInt(1000000000000000000)
	w, err := WordFromBigIntUnsigned(v)
	assert.NoError(t, err)
	u := w.Uint256()
	assert.Equal(t, w, WordFromUint256(u))
}
