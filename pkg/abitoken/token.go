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

// Package abitoken holds the tagged-union wire-level token tree that sits
// between Solidity type descriptors (pkg/soltype) and the raw byte layout
// (pkg/abicodec). A Token knows only how to lay itself out - it carries no
// knowledge of the Solidity type it came from.
package abitoken

import (
	"math/big"

	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// Token is one of the four ABI v2 wire-level variants. Every variant knows
// whether it is dynamic (head is a 32-byte offset into a tail region) or
// static (head inlines all its bytes), and its head-word count.
//
// Encode is the token's full standalone encoding: for a static token this
// is exactly its head bytes (a static subtree has no tail of its own); for
// a dynamic token this is what gets appended to the enclosing tail region
// when this token is referenced by an offset.
type Token interface {
	IsDynamic() bool
	HeadWords() int
	Encode() []byte
}

// WordToken is a single 32-byte word: every statically-sized elementary
// type, and the outer (offset) representation of any dynamic reference.
type WordToken struct {
	Value ethtypes.Word
}

func (WordToken) IsDynamic() bool { return false }
func (WordToken) HeadWords() int  { return 1 }
func (t WordToken) Encode() []byte {
	b := make([]byte, 32)
	copy(b, t.Value[:])
	return b
}

// FixedSeqToken is a fixed-arity ordered sequence of inner tokens, used for
// T[N] and for tuples whose shapes are statically known. It is dynamic iff
// any child is dynamic.
type FixedSeqToken struct {
	Children []Token
}

func (t FixedSeqToken) IsDynamic() bool {
	for _, c := range t.Children {
		if c.IsDynamic() {
			return true
		}
	}
	return false
}

func (t FixedSeqToken) HeadWords() int {
	if t.IsDynamic() {
		return 1
	}
	words := 0
	for _, c := range t.Children {
		words += c.HeadWords()
	}
	return words
}

// Encode recurses through the same two-phase head/tail algorithm as the
// top-level encoder. When every child is static this degenerates to a
// plain concatenation (no tail bytes produced): a static subtree inlines
// fully in the head.
func (t FixedSeqToken) Encode() []byte {
	return EncodeSequenceTokens(t.Children)
}

// DynamicSeqToken is a runtime-sized ordered sequence of inner tokens, for
// T[]. Always dynamic, regardless of whether its elements are.
type DynamicSeqToken struct {
	Children []Token
}

func (DynamicSeqToken) IsDynamic() bool { return true }
func (DynamicSeqToken) HeadWords() int  { return 1 }

func (t DynamicSeqToken) Encode() []byte {
	out := lengthWord(len(t.Children))
	return append(out, EncodeSequenceTokens(t.Children)...)
}

// PackedSeqToken is a runtime-sized byte buffer, for bytes and string.
// Always dynamic.
type PackedSeqToken struct {
	Data []byte
}

func (PackedSeqToken) IsDynamic() bool { return true }
func (PackedSeqToken) HeadWords() int  { return 1 }

func (t PackedSeqToken) Encode() []byte {
	out := lengthWord(len(t.Data))
	out = append(out, t.Data...)
	if pad := (32 - len(t.Data)%32) % 32; pad != 0 {
		out = append(out, make([]byte, pad)...)
	}
	return out
}

func lengthWord(n int) []byte {
	w, _ := ethtypes.WordFromBigIntUnsigned(big.NewInt(int64(n)))
	b := make([]byte, 32)
	copy(b, w[:])
	return b
}
