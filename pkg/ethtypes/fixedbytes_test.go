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

func TestFixedBytesWidthMismatch(t *testing.T) {
	_, err := NewFixedBytes(4, []byte{1, 2, 3})
	assert.True(t, abierrors.Is(err, abierrors.KindInvalidLength))
}

func TestFixedBytesIntoWord(t *testing.T) {
	fb, err := NewFixedBytes(2, []byte{0xab, 0xcd})
	assert.NoError(t, err)
	w := fb.IntoWord()
	assert.Equal(t, byte(0xab), w[0])
	assert.Equal(t, byte(0xcd), w[1])
	assert.Equal(t, byte(0), w[2])
}

func TestFixedBytesFromHex(t *testing.T) {
	fb, err := FixedBytesFromHex("0xaabb", 2)
	assert.NoError(t, err)
	assert.Equal(t, "aabb", fb.Hex())
}
