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
	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

type boolType struct{}

// Bool is the "bool" Solidity type.
var Bool SolType = boolType{}

func (boolType) SolName() string        { return "bool" }
func (boolType) EncodedSize() (int, bool) { return 32, true }
func (boolType) Shape() *abitoken.Shape { return abitoken.WordShape(validBoolToken) }

func (boolType) Tokenize(value interface{}) (abitoken.Token, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, abierrors.Other("expected bool, got %T", value)
	}
	var w ethtypes.Word
	if b {
		w[31] = 1
	}
	return abitoken.WordToken{Value: w}, nil
}

func (boolType) Detokenize(token abitoken.Token) (interface{}, error) {
	w, err := wordOf(token)
	if err != nil {
		return nil, err
	}
	return w[31] == 1, nil
}

func (boolType) ValidToken(token abitoken.Token) bool {
	return validBoolToken(token)
}

func validBoolToken(token abitoken.Token) bool {
	w, err := wordOf(token)
	if err != nil {
		return false
	}
	for i := 0; i < 31; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return w[31] == 0 || w[31] == 1
}

func (t boolType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	tok, err := t.Tokenize(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return wordOf(tok)
}

func (boolType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, abierrors.Other("expected bool, got %T", value)
	}
	if b {
		return append(out, 1), nil
	}
	return append(out, 0), nil
}

type addressType struct{}

// Address is the "address" Solidity type.
var Address SolType = addressType{}

func (addressType) SolName() string        { return "address" }
func (addressType) EncodedSize() (int, bool) { return 32, true }
func (addressType) Shape() *abitoken.Shape { return abitoken.WordShape(validAddressToken) }

func (addressType) Tokenize(value interface{}) (abitoken.Token, error) {
	a, ok := value.(ethtypes.Address)
	if !ok {
		return nil, abierrors.Other("expected ethtypes.Address, got %T", value)
	}
	return abitoken.WordToken{Value: a.IntoWord()}, nil
}

func (addressType) Detokenize(token abitoken.Token) (interface{}, error) {
	w, err := wordOf(token)
	if err != nil {
		return nil, err
	}
	return ethtypes.AddressFromWord(w), nil
}

func (addressType) ValidToken(token abitoken.Token) bool {
	return validAddressToken(token)
}

func validAddressToken(token abitoken.Token) bool {
	w, err := wordOf(token)
	if err != nil {
		return false
	}
	for i := 0; i < 12; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return true
}

func (t addressType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	tok, err := t.Tokenize(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return wordOf(tok)
}

func (addressType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	a, ok := value.(ethtypes.Address)
	if !ok {
		return nil, abierrors.Other("expected ethtypes.Address, got %T", value)
	}
	return append(out, a[:]...), nil
}

// Function is the Solidity "function" type: a 24-byte selector+address
// value right-padded to a word, modelled here as a raw 24-byte value since
// a function pointer has no further structure of its own in this library.
type functionType struct{}

var Function SolType = functionType{}

func (functionType) SolName() string        { return "function" }
func (functionType) EncodedSize() (int, bool) { return 32, true }
func (functionType) Shape() *abitoken.Shape { return abitoken.WordShape(validFunctionToken) }

func (functionType) Tokenize(value interface{}) (abitoken.Token, error) {
	b, ok := value.([24]byte)
	if !ok {
		return nil, abierrors.Other("expected [24]byte, got %T", value)
	}
	var w ethtypes.Word
	copy(w[:24], b[:])
	return abitoken.WordToken{Value: w}, nil
}

func (functionType) Detokenize(token abitoken.Token) (interface{}, error) {
	w, err := wordOf(token)
	if err != nil {
		return nil, err
	}
	var b [24]byte
	copy(b[:], w[:24])
	return b, nil
}

func (functionType) ValidToken(token abitoken.Token) bool {
	return validFunctionToken(token)
}

func validFunctionToken(token abitoken.Token) bool {
	w, err := wordOf(token)
	if err != nil {
		return false
	}
	for i := 24; i < 32; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return true
}

func (t functionType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	tok, err := t.Tokenize(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return wordOf(tok)
}

func (functionType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	b, ok := value.([24]byte)
	if !ok {
		return nil, abierrors.Other("expected [24]byte, got %T", value)
	}
	return append(out, b[:]...), nil
}

func wordOf(token abitoken.Token) (ethtypes.Word, error) {
	wt, ok := token.(abitoken.WordToken)
	if !ok {
		return ethtypes.Word{}, abierrors.Other("expected a word token, got %T", token)
	}
	return wt.Value, nil
}
