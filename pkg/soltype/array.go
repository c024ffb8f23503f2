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

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// DynamicArrayType is "T[]": a runtime-sized, homogeneous sequence. Always
// dynamic, regardless of whether Elem is.
type DynamicArrayType struct{ Elem SolType }

// Array names a T[] descriptor.
func Array(elem SolType) *DynamicArrayType { return &DynamicArrayType{Elem: elem} }

func (t *DynamicArrayType) SolName() string          { return t.Elem.SolName() + "[]" }
func (t *DynamicArrayType) EncodedSize() (int, bool) { return 0, false }
func (t *DynamicArrayType) Shape() *abitoken.Shape {
	return abitoken.DynamicArrayShape(t.Elem.Shape())
}

func (t *DynamicArrayType) Tokenize(value interface{}) (abitoken.Token, error) {
	elems, ok := value.([]interface{})
	if !ok {
		return nil, abierrors.Other("expected []interface{}, got %T", value)
	}
	children := make([]abitoken.Token, len(elems))
	for i, e := range elems {
		tok, err := t.Elem.Tokenize(e)
		if err != nil {
			return nil, err
		}
		children[i] = tok
	}
	return abitoken.DynamicSeqToken{Children: children}, nil
}

func (t *DynamicArrayType) Detokenize(token abitoken.Token) (interface{}, error) {
	dt, ok := token.(abitoken.DynamicSeqToken)
	if !ok {
		return nil, abierrors.Other("expected a dynamic-sequence token, got %T", token)
	}
	out := make([]interface{}, len(dt.Children))
	for i, c := range dt.Children {
		v, err := t.Elem.Detokenize(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *DynamicArrayType) ValidToken(token abitoken.Token) bool {
	dt, ok := token.(abitoken.DynamicSeqToken)
	if !ok {
		return false
	}
	for _, c := range dt.Children {
		if !t.Elem.ValidToken(c) {
			return false
		}
	}
	return true
}

func (t *DynamicArrayType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	elems, ok := value.([]interface{})
	if !ok {
		return ethtypes.Word{}, abierrors.Other("expected []interface{}, got %T", value)
	}
	var concatenated []byte
	for _, e := range elems {
		w, err := t.Elem.EIP712DataWord(e)
		if err != nil {
			return ethtypes.Word{}, err
		}
		concatenated = append(concatenated, w[:]...)
	}
	return ethtypes.Keccak256(concatenated), nil
}

func (t *DynamicArrayType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	elems, ok := value.([]interface{})
	if !ok {
		return nil, abierrors.Other("expected []interface{}, got %T", value)
	}
	if _, static := t.Elem.EncodedSize(); !static {
		return nil, abierrors.Other("abi.encodePacked does not support arrays of dynamic element type %s", t.Elem.SolName())
	}
	for _, e := range elems {
		elemBuf, err := t.Elem.EncodePackedTo(e, nil)
		if err != nil {
			return nil, err
		}
		if len(elemBuf) > 32 {
			return nil, abierrors.Other("packed array element wider than 32 bytes")
		}
		padded := make([]byte, 32)
		copy(padded[32-len(elemBuf):], elemBuf)
		out = append(out, padded...)
	}
	return out, nil
}

// FixedArrayType is "T[N]": a fixed-arity, homogeneous sequence, static iff
// Elem is static.
type FixedArrayType struct {
	Elem SolType
	N    int
}

// FixedArray names a T[N] descriptor.
func FixedArray(elem SolType, n int) *FixedArrayType { return &FixedArrayType{Elem: elem, N: n} }

func (t *FixedArrayType) SolName() string { return fmt.Sprintf("%s[%d]", t.Elem.SolName(), t.N) }

func (t *FixedArrayType) EncodedSize() (int, bool) {
	elemSize, static := t.Elem.EncodedSize()
	if !static {
		return 0, false
	}
	return elemSize * t.N, true
}

func (t *FixedArrayType) Shape() *abitoken.Shape {
	return abitoken.FixedArrayShape(t.Elem.Shape(), t.N)
}

func (t *FixedArrayType) checkArity(n int) error {
	if n != t.N {
		return abierrors.InvalidLength(t.N, n)
	}
	return nil
}

func (t *FixedArrayType) Tokenize(value interface{}) (abitoken.Token, error) {
	elems, ok := value.([]interface{})
	if !ok {
		return nil, abierrors.Other("expected []interface{}, got %T", value)
	}
	if err := t.checkArity(len(elems)); err != nil {
		return nil, err
	}
	children := make([]abitoken.Token, len(elems))
	for i, e := range elems {
		tok, err := t.Elem.Tokenize(e)
		if err != nil {
			return nil, err
		}
		children[i] = tok
	}
	return abitoken.FixedSeqToken{Children: children}, nil
}

func (t *FixedArrayType) Detokenize(token abitoken.Token) (interface{}, error) {
	ft, ok := token.(abitoken.FixedSeqToken)
	if !ok {
		return nil, abierrors.Other("expected a fixed-sequence token, got %T", token)
	}
	if err := t.checkArity(len(ft.Children)); err != nil {
		return nil, err
	}
	out := make([]interface{}, len(ft.Children))
	for i, c := range ft.Children {
		v, err := t.Elem.Detokenize(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *FixedArrayType) ValidToken(token abitoken.Token) bool {
	ft, ok := token.(abitoken.FixedSeqToken)
	if !ok || len(ft.Children) != t.N {
		return false
	}
	for _, c := range ft.Children {
		if !t.Elem.ValidToken(c) {
			return false
		}
	}
	return true
}

func (t *FixedArrayType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	elems, ok := value.([]interface{})
	if !ok {
		return ethtypes.Word{}, abierrors.Other("expected []interface{}, got %T", value)
	}
	if err := t.checkArity(len(elems)); err != nil {
		return ethtypes.Word{}, err
	}
	var concatenated []byte
	for _, e := range elems {
		w, err := t.Elem.EIP712DataWord(e)
		if err != nil {
			return ethtypes.Word{}, err
		}
		concatenated = append(concatenated, w[:]...)
	}
	return ethtypes.Keccak256(concatenated), nil
}

func (t *FixedArrayType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	elems, ok := value.([]interface{})
	if !ok {
		return nil, abierrors.Other("expected []interface{}, got %T", value)
	}
	if err := t.checkArity(len(elems)); err != nil {
		return nil, err
	}
	if _, static := t.Elem.EncodedSize(); !static {
		return nil, abierrors.Other("abi.encodePacked does not support arrays of dynamic element type %s", t.Elem.SolName())
	}
	for _, e := range elems {
		elemBuf, err := t.Elem.EncodePackedTo(e, nil)
		if err != nil {
			return nil, err
		}
		if len(elemBuf) > 32 {
			return nil, abierrors.Other("packed array element wider than 32 bytes")
		}
		padded := make([]byte, 32)
		copy(padded[32-len(elemBuf):], elemBuf)
		out = append(out, padded...)
	}
	return out, nil
}
