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

// Package soltype binds every Solidity contract ABI type to a Go host
// representation and to a pkg/abitoken token shape. A SolType value
// carries no data of its own - it is a named, reusable descriptor - except
// each SolType also knows how to tokenize/detokenize/validate/pack itself
// rather than deferring to a separate encode/decode switch.
//
// Go has no value (const) generics, so the width of uintN/intN cannot be a
// true Go type parameter. Each width is instead a distinct runtime value of
// UintType/IntType, obtained by naming it explicitly (soltype.Uint(64), or
// one of the pre-declared Uint256/Int256/... singletons) rather than
// inferred from a Go host type (see DESIGN.md).
package soltype

import (
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// SolType is the descriptor every concrete Solidity type implements.
type SolType interface {
	// SolName is the canonical Solidity type string, e.g. "uint256[]",
	// "(bool,bytes)[2]".
	SolName() string

	// EncodedSize returns (byteWidth, true) for a fully static type, or
	// (0, false) if the type is dynamic.
	EncodedSize() (int, bool)

	// Shape is the runtime schema the decoder walks to read a token of
	// this type back out of a byte buffer.
	Shape() *abitoken.Shape

	// Tokenize converts a host value into its token-tree representation.
	Tokenize(value interface{}) (abitoken.Token, error)

	// Detokenize is Tokenize's inverse.
	Detokenize(token abitoken.Token) (interface{}, error)

	// ValidToken implements this type's slice of the decoder's
	// validate=true pass.
	ValidToken(token abitoken.Token) bool

	// EIP712DataWord computes the 32-byte word EIP-712 encodeData uses for
	// this value: the tokenized word itself for value types, keccak256 of
	// the bytes for dynamic bytes/string, keccak256 of the concatenated
	// per-element data words for arrays/tuples.
	EIP712DataWord(value interface{}) (ethtypes.Word, error)

	// EncodePackedTo appends this value's Solidity abi.encodePacked
	// representation to out and returns the extended slice.
	EncodePackedTo(value interface{}, out []byte) ([]byte, error)
}
