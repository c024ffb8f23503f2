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

package abitoken

// EncodeSequenceTokens lays out a token list per the ABI v2 two-phase
// head/tail algorithm:
//
//  1. every element's head size is 32 (dynamic, an offset) or
//     head_words(t)*32 (static, its own bytes inline)
//  2. static elements write their full encoding directly into the head
//  3. dynamic elements write a big-endian offset - relative to the start
//     of THIS sequence, never the outer buffer - then append their own
//     full encoding to the tail
//
// This single function backs every entry point: a fixed-seq token's own
// Encode(), a dynamic-seq token's body, and the top-level
// encode_sequence/encode_params/encode functions in pkg/abicodec.
func EncodeSequenceTokens(tokens []Token) []byte {
	headLen := 0
	for _, t := range tokens {
		if t.IsDynamic() {
			headLen += 32
		} else {
			headLen += t.HeadWords() * 32
		}
	}

	head := make([]byte, 0, headLen)
	var tail []byte
	for _, t := range tokens {
		if t.IsDynamic() {
			offset := headLen + len(tail)
			head = append(head, encodeOffset(offset)...)
			tail = append(tail, t.Encode()...)
		} else {
			head = append(head, t.Encode()...)
		}
	}
	return append(head, tail...)
}

func encodeOffset(offset int) []byte {
	b := make([]byte, 32)
	v := uint64(offset)
	for i := 0; i < 8; i++ {
		b[31-i] = byte(v >> (8 * i))
	}
	return b
}
