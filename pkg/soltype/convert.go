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

package soltype

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/kaleido-io/evmabi/pkg/abierrors"
)

// toBigInt normalises the handful of numeric shapes a caller reasonably
// passes in - plain big.Int, uint256.Int, and native Go integer types -
// down to a single *big.Int.
func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case big.Int:
		return &v, nil
	case *uint256.Int:
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	default:
		return nil, abierrors.Other("cannot interpret %T as an integer value", value)
	}
}
