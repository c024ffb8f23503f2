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

// Package ethtypes models the atomic on-chain primitives everything else in
// this module is built from: the 32-byte Word, small FixedBytes blocks, and
// the 20-byte Address. None of these types do any ABI-level work - they are
// opaque byte containers with hex and big-integer conversions, the
// foundation the codec and type-model packages build on.
package ethtypes

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/hexutil"
)

// Word is the atomic 32-byte unit of ABI encoding. It is treated as opaque
// bytes except where numerically interpreted by a SolType.
type Word [32]byte

// ZeroWord is the all-zero word, used as the left-padding source for
// fixed-width values shorter than 32 bytes.
var ZeroWord Word

// WordFromHex parses a hex string (optional "0x" prefix) into a Word,
// rejecting anything that is not exactly 32 bytes.
func WordFromHex(s string) (Word, error) {
	b, err := hexutil.DecodeFixed(s, 32)
	if err != nil {
		return Word{}, err
	}
	var w Word
	copy(w[:], b)
	return w, nil
}

// Hex renders the word as lowercase hex with no prefix.
func (w Word) Hex() string {
	return hexutil.Encode(w[:])
}

func (w Word) String() string {
	return "0x" + w.Hex()
}

// Slice takes w[start:end].
func (w Word) Slice(start, end int) []byte {
	return w[start:end]
}

// BigIntUnsigned reinterprets the word as an unsigned big-endian integer.
func (w Word) BigIntUnsigned() *big.Int {
	return new(big.Int).SetBytes(w[:])
}

// BigIntSigned reinterprets the word as a two's-complement signed integer.
func (w Word) BigIntSigned() *big.Int {
	return ParseInt256TwosComplement(w[:])
}

// Uint256 reinterprets the word as an unsigned 256-bit integer using the
// allocation-light holiman/uint256 representation, matching the "no
// per-element allocation for static types" rule on the decode hot path.
func (w Word) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(w[:])
}

// WordFromUint256 writes a uint256.Int into word form.
func WordFromUint256(v *uint256.Int) Word {
	return Word(v.Bytes32())
}

// WordFromBigIntUnsigned left-pads an unsigned big.Int into a word. Returns
// Overflow if the value does not fit in 256 bits.
func WordFromBigIntUnsigned(v *big.Int) (Word, error) {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return Word{}, abierrors.Overflow("value does not fit in 256 bits")
	}
	var w Word
	v.FillBytes(w[:])
	return w, nil
}

// WordFromBigIntSigned encodes a signed big.Int as a two's-complement word,
// sign-extended to 256 bits.
func WordFromBigIntSigned(v *big.Int) (Word, error) {
	if v.Cmp(oneThen255Zeros) >= 0 || new(big.Int).Neg(v).Cmp(oneThen255Zeros) > 0 {
		return Word{}, abierrors.Overflow("value does not fit in a signed 256-bit integer")
	}
	var w Word
	b := SerializeInt256TwosComplement(v)
	copy(w[:], b)
	return w, nil
}

var (
	singleBit             = big.NewInt(1)
	oneMoreThanMaxUint256 = new(big.Int).Lsh(singleBit, 256)
	fullBits256           = new(big.Int).Sub(oneMoreThanMaxUint256, big.NewInt(1))
	oneThen255Zeros       = new(big.Int).Lsh(singleBit, 255)
)

// SerializeInt256TwosComplement renders i (which may be negative) as the
// 32-byte two's-complement big-endian encoding ABI uses for signed integers.
func SerializeInt256TwosComplement(i *big.Int) []byte {
	// Go has no native two's-complement serializer, but AND-ing against the
	// all-ones 256-bit mask yields the positive integer whose bit pattern
	// is the two's-complement representation we want.
	tc := new(big.Int).And(i, fullBits256)
	b := make([]byte, 32)
	return tc.FillBytes(b)
}

// ParseInt256TwosComplement is the inverse of SerializeInt256TwosComplement.
func ParseInt256TwosComplement(b []byte) *big.Int {
	i := new(big.Int).SetBytes(b)
	if i.Cmp(oneThen255Zeros) < 0 {
		return i
	}
	i.Sub(i, oneMoreThanMaxUint256)
	return i
}
