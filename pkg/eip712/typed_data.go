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

package eip712

import "github.com/kaleido-io/evmabi/pkg/ethtypes"

// eip191Prefix is the fixed byte pair every EIP-712 signing hash starts
// with: version byte 0x01 ("structured data"), per EIP-191.
var eip191Prefix = []byte{0x19, 0x01}

// SigningHash is keccak256(0x1901 ‖ domainSeparator ‖ hashStruct(message)).
func SigningHash(domainSeparator, messageHash ethtypes.Word) ethtypes.Word {
	return ethtypes.Keccak256(eip191Prefix, domainSeparator[:], messageHash[:])
}

// TypedData is the full envelope a wallet's eth_signTypedData_v4 consumes:
// a primary struct type, its message values, and a domain, built on top of
// the encodeType/typeHash/hashStruct/domainSeparator primitives instead of
// a raw JSON map tree.
type TypedData struct {
	Domain      Domain
	PrimaryType *StructDef
	Message     Values
}

// SigningHash computes the final 32-byte digest a wallet signs.
func (td *TypedData) SigningHash() (ethtypes.Word, error) {
	domainSep, err := td.Domain.Separator()
	if err != nil {
		return ethtypes.Word{}, err
	}
	msgHash, err := td.PrimaryType.HashStruct(td.Message)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return SigningHash(domainSep, msgHash), nil
}
