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
	"strings"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// Field is one named member of a Tuple - named because real ABI JSON and
// EIP-712 struct definitions both carry field names alongside positional
// types, even though the anonymous "(T1,...,Tk)" Solidity type string
// drops them.
type Field struct {
	Name string
	Type SolType
}

// TupleType is an anonymous "(T1,...,Tk)" - the structural building block
// both plain tuples and (via pkg/eip712) named structs are built from. A
// TupleType carries no type name or typeHash of its own; that is added by
// the struct layer.
type TupleType struct{ Fields []Field }

// Tuple names a tuple descriptor from its fields, in order.
func Tuple(fields ...Field) *TupleType { return &TupleType{Fields: fields} }

func (t *TupleType) SolName() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Type.SolName()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (t *TupleType) EncodedSize() (int, bool) {
	total := 0
	for _, f := range t.Fields {
		size, static := f.Type.EncodedSize()
		if !static {
			return 0, false
		}
		total += size
	}
	return total, true
}

func (t *TupleType) Shape() *abitoken.Shape {
	children := make([]*abitoken.Shape, len(t.Fields))
	for i, f := range t.Fields {
		children[i] = f.Type.Shape()
	}
	return abitoken.TupleShape(children...)
}

func (t *TupleType) values(value interface{}) ([]interface{}, error) {
	vals, ok := value.([]interface{})
	if !ok {
		return nil, abierrors.Other("expected []interface{} positional tuple values, got %T", value)
	}
	if len(vals) != len(t.Fields) {
		return nil, abierrors.InvalidLength(len(t.Fields), len(vals))
	}
	return vals, nil
}

func (t *TupleType) Tokenize(value interface{}) (abitoken.Token, error) {
	vals, err := t.values(value)
	if err != nil {
		return nil, err
	}
	children := make([]abitoken.Token, len(t.Fields))
	for i, f := range t.Fields {
		tok, err := f.Type.Tokenize(vals[i])
		if err != nil {
			return nil, err
		}
		children[i] = tok
	}
	return abitoken.FixedSeqToken{Children: children}, nil
}

func (t *TupleType) Detokenize(token abitoken.Token) (interface{}, error) {
	ft, ok := token.(abitoken.FixedSeqToken)
	if !ok || len(ft.Children) != len(t.Fields) {
		return nil, abierrors.Other("expected a %d-field fixed-sequence token", len(t.Fields))
	}
	out := make([]interface{}, len(t.Fields))
	for i, f := range t.Fields {
		v, err := f.Type.Detokenize(ft.Children[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *TupleType) ValidToken(token abitoken.Token) bool {
	ft, ok := token.(abitoken.FixedSeqToken)
	if !ok || len(ft.Children) != len(t.Fields) {
		return false
	}
	for i, f := range t.Fields {
		if !f.Type.ValidToken(ft.Children[i]) {
			return false
		}
	}
	return true
}

// EIP712DataWord is keccak256 of the concatenated per-field data words - no
// typeHash prefix. A named struct's own data word (as opposed to a bare
// tuple's) prepends typeHash; that layering lives in pkg/eip712, built on
// top of this (see DESIGN.md).
func (t *TupleType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	vals, err := t.values(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	var concatenated []byte
	for i, f := range t.Fields {
		w, err := f.Type.EIP712DataWord(vals[i])
		if err != nil {
			return ethtypes.Word{}, err
		}
		concatenated = append(concatenated, w[:]...)
	}
	return ethtypes.Keccak256(concatenated), nil
}

func (t *TupleType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	vals, err := t.values(value)
	if err != nil {
		return nil, err
	}
	for i, f := range t.Fields {
		out, err = f.Type.EncodePackedTo(vals[i], out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
