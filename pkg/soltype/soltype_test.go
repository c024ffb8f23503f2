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
	"math/big"
	"testing"

	"github.com/kaleido-io/evmabi/pkg/abicodec"
	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
)

func roundtrip(t *testing.T, typ SolType, value interface{}) interface{} {
	t.Helper()
	tok, err := typ.Tokenize(value)
	assert.NoError(t, err)
	encoded := abicodec.Encode(tok)
	decoded, err := abicodec.Decode(encoded, typ.Shape(), true)
	assert.NoError(t, err)
	out, err := typ.Detokenize(decoded)
	assert.NoError(t, err)
	return out
}

func TestBoolRoundtrip(t *testing.T) {
	assert.Equal(t, true, roundtrip(t, Bool, true))
	assert.Equal(t, false, roundtrip(t, Bool, false))
}

func TestUint256RoundtripAndOverflow(t *testing.T) {
	v := big.NewInt(1234567)
	got := roundtrip(t, Uint256, v)
	assert.Equal(t, 0, v.Cmp(got.(*big.Int)))

	_, err := Uint8.Tokenize(big.NewInt(256))
	assert.True(t, abierrors.Is(err, abierrors.KindOverflow))
}

func TestIntNegativeRoundtrip(t *testing.T) {
	v := big.NewInt(-12345)
	got := roundtrip(t, Int256, v)
	assert.Equal(t, 0, v.Cmp(got.(*big.Int)))
}

func TestAddressRoundtrip(t *testing.T) {
	a, err := ethtypes.ParseAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	assert.NoError(t, err)
	got := roundtrip(t, Address, a)
	assert.Equal(t, a, got.(ethtypes.Address))
}

func TestStringValidatesUTF8(t *testing.T) {
	tok, err := String.Tokenize("hello")
	assert.NoError(t, err)
	assert.True(t, String.ValidToken(tok))

	invalid := abitoken.PackedSeqToken{Data: []byte{0xff, 0xfe, 0xfd}}
	assert.False(t, String.ValidToken(invalid))
}

func TestBytesNPacking(t *testing.T) {
	fb, err := ethtypes.NewFixedBytes(4, []byte{1, 2, 3, 4})
	assert.NoError(t, err)
	packed, err := FixedBytes(4).EncodePackedTo(fb, nil)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, packed)
}

func TestDynamicArrayOfUint256Roundtrip(t *testing.T) {
	arrType := Array(Uint256)
	values := []interface{}{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	got := roundtrip(t, arrType, values)
	gotSlice := got.([]interface{})
	assert.Len(t, gotSlice, 3)
	for i, v := range gotSlice {
		assert.Equal(t, 0, values[i].(*big.Int).Cmp(v.(*big.Int)))
	}
}

func TestFixedArrayOfBoolS1(t *testing.T) {
	arrType := FixedArray(Bool, 2)
	tok, err := arrType.Tokenize([]interface{}{true, false})
	assert.NoError(t, err)
	encoded := abicodec.Encode(tok)
	assert.Equal(t, 64, len(encoded))
}

func TestTupleRoundtrip(t *testing.T) {
	tupType := Tuple(Field{Name: "to", Type: Address}, Field{Name: "amount", Type: Uint256})
	a, _ := ethtypes.ParseAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	values := []interface{}{a, big.NewInt(42)}
	got := roundtrip(t, tupType, values)
	gotSlice := got.([]interface{})
	assert.Equal(t, a, gotSlice[0].(ethtypes.Address))
	assert.Equal(t, 0, big.NewInt(42).Cmp(gotSlice[1].(*big.Int)))
}

func TestEncodeParamsBytesUint256(t *testing.T) {
	tupType := Tuple(Field{Name: "data", Type: Bytes}, Field{Name: "n", Type: Uint256})
	tok, err := tupType.Tokenize([]interface{}{[]byte("hello"), big.NewInt(42)})
	assert.NoError(t, err)
	fst := tok.(abitoken.FixedSeqToken)
	out := abicodec.EncodeParams(fst.Children)
	assert.Equal(t, 128, len(out))
}
