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

import (
	"math/big"

	"github.com/kaleido-io/evmabi/pkg/ethtypes"
	"github.com/kaleido-io/evmabi/pkg/soltype"
)

// Domain is the EIP712Domain struct. Its typeString contains only the
// fields actually present, in the canonical order below; a nil pointer
// field means "not present", not "zero value present".
type Domain struct {
	Name              *string
	Version           *string
	ChainID           *big.Int
	VerifyingContract *ethtypes.Address
	Salt              *ethtypes.Word
}

// structDef builds the EIP712Domain StructDef containing only Domain's
// present fields, and its matching Values.
func (d Domain) structDef() (*StructDef, Values) {
	var members []Member
	values := Values{}

	if d.Name != nil {
		members = append(members, ValueMember("name", soltype.String))
		values["name"] = *d.Name
	}
	if d.Version != nil {
		members = append(members, ValueMember("version", soltype.String))
		values["version"] = *d.Version
	}
	if d.ChainID != nil {
		members = append(members, ValueMember("chainId", soltype.Uint256))
		values["chainId"] = d.ChainID
	}
	if d.VerifyingContract != nil {
		members = append(members, ValueMember("verifyingContract", soltype.Address))
		values["verifyingContract"] = *d.VerifyingContract
	}
	if d.Salt != nil {
		members = append(members, ValueMember("salt", soltype.FixedBytes(32)))
		salt, _ := ethtypes.FixedBytesFromWord(*d.Salt, 32)
		values["salt"] = salt
	}

	return NewStruct("EIP712Domain", members...), values
}

// Separator computes the EIP712 domain separator hashStruct(EIP712Domain).
func (d Domain) Separator() (ethtypes.Word, error) {
	sd, values := d.structDef()
	return sd.HashStruct(values)
}
