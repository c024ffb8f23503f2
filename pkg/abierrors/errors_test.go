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

package abierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferOverrunKind(t *testing.T) {
	err := BufferOverrun(32, 10)
	assert.True(t, Is(err, KindBufferOverrun))
	assert.False(t, Is(err, KindOverflow))
	assert.Contains(t, err.Error(), "wanted 32 bytes, got 10")
}

func TestWrappedFromHexUnwraps(t *testing.T) {
	inner := fmt.Errorf("odd length hex string")
	err := FromHexError(inner)
	assert.True(t, Is(err, KindFromHexError))
	assert.True(t, errors.Is(err, inner))
}

func TestTypeCheckFail(t *testing.T) {
	err := TypeCheckFail("uint8", "0x0100")
	assert.True(t, Is(err, KindTypeCheckFail))
	assert.Contains(t, err.Error(), "uint8")
}
