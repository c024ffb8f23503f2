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
	"testing"

	"github.com/kaleido-io/evmabi/pkg/ethtypes"
	"github.com/kaleido-io/evmabi/pkg/soltype"
	"github.com/stretchr/testify/assert"
)

func mustAddress(t *testing.T, s string) ethtypes.Address {
	t.Helper()
	a, err := ethtypes.ParseAddress(s)
	assert.NoError(t, err)
	return a
}

func personStruct() *StructDef {
	return NewStruct("Person",
		ValueMember("name", soltype.String),
		ValueMember("wallet", soltype.Address),
	)
}

func mailStruct(person *StructDef) *StructDef {
	return NewStruct("Mail",
		StructMember("from", person),
		StructMember("to", person),
		ValueMember("contents", soltype.String),
	)
}

// The canonical EIP-712 "Mail" example; the three hashes below are its
// published reference test vectors.
func TestEIP712MailExample(t *testing.T) {
	person := personStruct()
	mail := mailStruct(person)

	name := "Ether Mail"
	version := "1"
	chainID := big.NewInt(1)
	verifyingContract := mustAddress(t, "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC")
	domain := Domain{Name: &name, Version: &version, ChainID: chainID, VerifyingContract: &verifyingContract}

	domainSep, err := domain.Separator()
	assert.NoError(t, err)
	assert.Equal(t, "f2cee375fa42b42143804025fc449deafd50cc031ca257e0b194a650a912090f", domainSep.Hex())

	from := Values{"name": "Cow", "wallet": mustAddress(t, "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826")}
	to := Values{"name": "Bob", "wallet": mustAddress(t, "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB")}
	message := Values{"from": from, "to": to, "contents": "Hello, Bob!"}

	msgHash, err := mail.HashStruct(message)
	assert.NoError(t, err)
	assert.Equal(t, "c52c0ee5d84264471806290a3f2c4cecfc5490626bf912d01f240d7a274b371e", msgHash.Hex())

	td := &TypedData{Domain: domain, PrimaryType: mail, Message: message}
	signHash, err := td.SigningHash()
	assert.NoError(t, err)
	assert.Equal(t, "be609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd", signHash.Hex())
}

func TestEncodeTypeOrdering(t *testing.T) {
	person := personStruct()
	mail := mailStruct(person)
	assert.Equal(t,
		"Mail(Person from,Person to,string contents)Person(string name,address wallet)",
		mail.EncodeType())
}

// Open Question #2 (DESIGN.md): a struct referencing both Foo and Foo[]
// must collapse to a single Foo dependency.
func TestStructArrayReferenceCollapsesToSingleDependency(t *testing.T) {
	person := personStruct()
	group := NewStruct("Group",
		StructMember("leader", person),
		StructArrayMember("members", person),
	)
	encoded := group.EncodeType()
	assert.Equal(t,
		"Group(Person leader,Person[] members)Person(string name,address wallet)",
		encoded)
}
