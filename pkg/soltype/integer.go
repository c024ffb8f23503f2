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

package soltype

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// UintType is the "uintN" family, N in 8..256 step 8. Width is a runtime
// field rather than a Go type parameter - see the package doc comment.
type UintType struct{ Bits int }

// IntType is the "intN" family.
type IntType struct{ Bits int }

var (
	uintCache = map[int]*UintType{}
	intCache  = map[int]*IntType{}
)

// Uint names the uintN descriptor for the given width, validating that it
// is a legal ABI width (8..256, multiple of 8). Repeated calls with the
// same width return the same descriptor instance.
func Uint(bits int) *UintType {
	if t, ok := uintCache[bits]; ok {
		return t
	}
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("invalid uint width %d", bits))
	}
	t := &UintType{Bits: bits}
	uintCache[bits] = t
	return t
}

// Int names the intN descriptor for the given width.
func Int(bits int) *IntType {
	if t, ok := intCache[bits]; ok {
		return t
	}
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("invalid int width %d", bits))
	}
	t := &IntType{Bits: bits}
	intCache[bits] = t
	return t
}

// Common widths, named so callers rarely need to call Uint/Int directly.
var (
	Uint8   = Uint(8)
	Uint64  = Uint(64)
	Uint160 = Uint(160)
	Uint256 = Uint(256)
	Int8    = Int(8)
	Int64   = Int(64)
	Int256  = Int(256)
)

func (t *UintType) SolName() string          { return fmt.Sprintf("uint%d", t.Bits) }
func (t *UintType) EncodedSize() (int, bool) { return 32, true }
func (t *UintType) Shape() *abitoken.Shape   { return abitoken.WordShape(t.ValidToken) }

func (t *UintType) Tokenize(value interface{}) (abitoken.Token, error) {
	// uint256 is by far the most common width, and holiman/uint256 is the
	// native representation the rest of the module carries it in - route
	// straight to a Word without a big.Int round-trip.
	if t.Bits == 256 {
		if w, ok, err := uint256Word(value); ok {
			return abitoken.WordToken{Value: w}, err
		}
	}
	v, err := toBigInt(value)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 || v.BitLen() > t.Bits {
		return nil, abierrors.Overflow(fmt.Sprintf("value does not fit in uint%d", t.Bits))
	}
	w, err := ethtypes.WordFromBigIntUnsigned(v)
	if err != nil {
		return nil, err
	}
	return abitoken.WordToken{Value: w}, nil
}

// uint256Word special-cases a *uint256.Int/uint256.Int input: reports
// ok=false for anything else so the caller falls back to the general
// big.Int path.
func uint256Word(value interface{}) (w ethtypes.Word, ok bool, err error) {
	switch v := value.(type) {
	case *uint256.Int:
		return ethtypes.WordFromUint256(v), true, nil
	case uint256.Int:
		return ethtypes.WordFromUint256(&v), true, nil
	default:
		return ethtypes.Word{}, false, nil
	}
}

func (t *UintType) Detokenize(token abitoken.Token) (interface{}, error) {
	w, err := wordOf(token)
	if err != nil {
		return nil, err
	}
	return w.BigIntUnsigned(), nil
}

func (t *UintType) ValidToken(token abitoken.Token) bool {
	w, err := wordOf(token)
	if err != nil {
		return false
	}
	highBytes := (256 - t.Bits) / 8
	for i := 0; i < highBytes; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return true
}

func (t *UintType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	tok, err := t.Tokenize(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return wordOf(tok)
}

func (t *UintType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	v, err := toBigInt(value)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 || v.BitLen() > t.Bits {
		return nil, abierrors.Overflow(fmt.Sprintf("value does not fit in uint%d", t.Bits))
	}
	nbytes := t.Bits / 8
	b := make([]byte, nbytes)
	v.FillBytes(b)
	return append(out, b...), nil
}

func (t *IntType) SolName() string          { return fmt.Sprintf("int%d", t.Bits) }
func (t *IntType) EncodedSize() (int, bool) { return 32, true }
func (t *IntType) Shape() *abitoken.Shape   { return abitoken.WordShape(t.ValidToken) }

func (t *IntType) Tokenize(value interface{}) (abitoken.Token, error) {
	// At full width, a uint256.Int's raw byte pattern already is the
	// two's-complement encoding int256 uses on the wire - no big.Int needed.
	if t.Bits == 256 {
		if w, ok, err := uint256Word(value); ok {
			return abitoken.WordToken{Value: w}, err
		}
	}
	v, err := toBigInt(value)
	if err != nil {
		return nil, err
	}
	if !fitsSignedBits(v, t.Bits) {
		return nil, abierrors.Overflow(fmt.Sprintf("value does not fit in int%d", t.Bits))
	}
	w, err := ethtypes.WordFromBigIntSigned(v)
	if err != nil {
		return nil, err
	}
	return abitoken.WordToken{Value: w}, nil
}

func (t *IntType) Detokenize(token abitoken.Token) (interface{}, error) {
	w, err := wordOf(token)
	if err != nil {
		return nil, err
	}
	return w.BigIntSigned(), nil
}

func (t *IntType) ValidToken(token abitoken.Token) bool {
	w, err := wordOf(token)
	if err != nil {
		return false
	}
	nbytes := t.Bits / 8
	signByteIdx := 32 - nbytes
	signSet := w[signByteIdx]&0x80 != 0
	fill := byte(0x00)
	if signSet {
		fill = 0xff
	}
	for i := 0; i < signByteIdx; i++ {
		if w[i] != fill {
			return false
		}
	}
	return true
}

func (t *IntType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	tok, err := t.Tokenize(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return wordOf(tok)
}

func (t *IntType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	v, err := toBigInt(value)
	if err != nil {
		return nil, err
	}
	if !fitsSignedBits(v, t.Bits) {
		return nil, abierrors.Overflow(fmt.Sprintf("value does not fit in int%d", t.Bits))
	}
	nbytes := t.Bits / 8
	full := make([]byte, 32)
	w, err := ethtypes.WordFromBigIntSigned(v)
	if err != nil {
		return nil, err
	}
	copy(full, w[:])
	return append(out, full[32-nbytes:]...), nil
}

func fitsSignedBits(v *big.Int, bits int) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	negLimit := new(big.Int).Neg(limit)
	maxVal := new(big.Int).Sub(limit, big.NewInt(1))
	return v.Cmp(negLimit) >= 0 && v.Cmp(maxVal) <= 0
}
