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

import "golang.org/x/crypto/sha3"

// Keccak256 is the pre-NIST Keccak-256 variant Ethereum uses throughout -
// for selectors, addresses, and EIP-712 hashes. It differs from standard
// SHA-3 in its padding, which is why we reach for golang.org/x/crypto/sha3's
// NewLegacyKeccak256 rather than the stdlib's sha3.New256 doppelganger.
func Keccak256(data ...[]byte) Word {
	hash := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hash.Write(d)
	}
	var w Word
	hash.Sum(w[:0])
	return w
}
