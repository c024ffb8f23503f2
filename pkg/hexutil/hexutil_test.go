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

package hexutil

import (
	"testing"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/stretchr/testify/assert"
)

func TestDecodeWithAndWithoutPrefix(t *testing.T) {
	b1, err := Decode("0xdeadbeef")
	assert.NoError(t, err)
	b2, err := Decode("deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestDecodeFixedMismatch(t *testing.T) {
	_, err := DecodeFixed("0x1234", 4)
	assert.True(t, abierrors.Is(err, abierrors.KindInvalidLength))
}

func TestDecodeInvalidHex(t *testing.T) {
	_, err := Decode("0xzz")
	assert.True(t, abierrors.Is(err, abierrors.KindFromHexError))
}

func TestEncodeToSliceAppends(t *testing.T) {
	out := []byte("prefix:")
	out = EncodeToSlice([]byte{0xab, 0xcd}, out)
	assert.Equal(t, "prefix:abcd", string(out))
}

func TestWith0x(t *testing.T) {
	assert.Equal(t, "0xab", With0x("ab"))
	assert.Equal(t, "0xab", With0x("0xab"))
}
