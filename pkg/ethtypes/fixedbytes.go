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

import (
	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/hexutil"
)

// FixedBytes is an N-byte immutable block, the foundation for every
// Solidity bytesN type (N in 1..32). Go has no const-generic array length,
// so unlike Word (always 32) and Address (always 20) - which get their own
// concrete array types for zero-overhead use as map keys and buffers -
// FixedBytes carries its declared width N at runtime, the same way the
// ABI type model parameterises "bytesN" by a suffix rather than a distinct
// Go type per width.
type FixedBytes struct {
	n    int
	data [32]byte
}

// NewFixedBytes constructs a FixedBytes of width n from raw bytes, which
// must be exactly n bytes long.
func NewFixedBytes(n int, raw []byte) (FixedBytes, error) {
	if n < 1 || n > 32 {
		return FixedBytes{}, abierrors.Other("fixed bytes width must be between 1 and 32, got %d", n)
	}
	if len(raw) != n {
		return FixedBytes{}, abierrors.InvalidLength(n, len(raw))
	}
	fb := FixedBytes{n: n}
	copy(fb.data[:], raw)
	return fb, nil
}

// FixedBytesFromWord takes the first n bytes of a word (w[0:n]), the
// right-padded layout bytesN uses; unlike AddressFromWord, which takes the
// last 20 bytes.
func FixedBytesFromWord(w Word, n int) (FixedBytes, error) {
	return NewFixedBytes(n, w[0:n])
}

// N is the declared width.
func (f FixedBytes) N() int { return f.n }

// Bytes returns the n significant bytes.
func (f FixedBytes) Bytes() []byte {
	return f.data[0:f.n]
}

// IntoWord right-pads the block with zeros to fill a word, the layout
// bytesN uses in both ABI heads and EIP-712 data words.
func (f FixedBytes) IntoWord() Word {
	var w Word
	copy(w[:], f.data[0:f.n])
	return w
}

func (f FixedBytes) Hex() string {
	return hexutil.Encode(f.Bytes())
}

func (f FixedBytes) String() string {
	return "0x" + f.Hex()
}

// FixedBytesFromHex parses a hex string (optional "0x" prefix) expecting
// exactly n bytes.
func FixedBytesFromHex(s string, n int) (FixedBytes, error) {
	b, err := hexutil.DecodeFixed(s, n)
	if err != nil {
		return FixedBytes{}, err
	}
	return NewFixedBytes(n, b)
}
