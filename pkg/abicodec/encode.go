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

// Package abicodec implements the ABI v2 two-phase head/tail encoder and
// the offset-following, bounds-checked decoder, operating purely on
// pkg/abitoken token trees and shapes. It has no knowledge of Solidity
// type names or host-language values - that binding lives in pkg/soltype.
package abicodec

import "github.com/kaleido-io/evmabi/pkg/abitoken"

// EncodeSequence treats tokens as the top-level object directly (not
// wrapped as a tuple). See DESIGN.md Open Question #3: this and
// EncodeParams are the same byte layout, differing only in call-site
// intent.
func EncodeSequence(tokens []abitoken.Token) []byte {
	return abitoken.EncodeSequenceTokens(tokens)
}

// EncodeParams is the function-argument reading of EncodeSequence: tokens
// are always the fields of the call's argument tuple.
func EncodeParams(tokens []abitoken.Token) []byte {
	return abitoken.EncodeSequenceTokens(tokens)
}

// Encode places a single token in a 1-element sequence before encoding it,
// which (for a dynamic token) adds one more offset-indirection level than
// calling token.Encode() directly would - the top-level value always gets
// its own head slot.
func Encode(token abitoken.Token) []byte {
	return abitoken.EncodeSequenceTokens([]abitoken.Token{token})
}
