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

package abi

import (
	"math/big"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
)

// DecodeRevert recognises the two built-in failures (Panic(uint256),
// Revert(string)) from returned call data, and returns the human-facing
// reason - the direct dual of Function.EncodeCallData for the failure
// path.
func DecodeRevert(data []byte) (reason string, code *big.Int, err error) {
	if len(data) < 4 {
		return "", nil, abierrors.BufferOverrun(4, len(data))
	}
	var sel [4]byte
	copy(sel[:], data[:4])

	switch sel {
	case RevertError.Selector():
		values, err := RevertError.DecodeData(data[4:], true)
		if err != nil {
			return "", nil, err
		}
		return values[0].(string), nil, nil
	case PanicError.Selector():
		values, err := PanicError.DecodeData(data[4:], true)
		if err != nil {
			return "", nil, err
		}
		return "", values[0].(*big.Int), nil
	default:
		return "", nil, abierrors.UnknownSelector(sel)
	}
}
