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

// Package abi is the outermost layer: function/error/event descriptors,
// 4-byte selectors, calldata encode/decode, event topic encoding and log
// decoding, and JSON-ABI-fragment parsing. Mirrors the classic
// Entry/Parameter/ComponentType layering found in Ethereum ABI tooling,
// rebuilt over pkg/soltype rather than a separate component-type tree.
package abi

import (
	"strings"

	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/soltype"
)

// Parameter is one function/error/event argument: a name, a resolved
// SolType, and (for events only) whether it is indexed.
type Parameter struct {
	Name    string
	Type    soltype.SolType
	Indexed bool
}

func signatureTypes(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.SolName()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func paramShapes(params []Parameter) []*abitoken.Shape {
	shapes := make([]*abitoken.Shape, len(params))
	for i, p := range params {
		shapes[i] = p.Type.Shape()
	}
	return shapes
}

func tokenizeParams(params []Parameter, values []interface{}) ([]abitoken.Token, error) {
	tuple := tupleOf(params)
	tok, err := tuple.Tokenize(values)
	if err != nil {
		return nil, err
	}
	return tok.(abitoken.FixedSeqToken).Children, nil
}

func detokenizeParams(params []Parameter, tokens []abitoken.Token) ([]interface{}, error) {
	tuple := tupleOf(params)
	v, err := tuple.Detokenize(abitoken.FixedSeqToken{Children: tokens})
	if err != nil {
		return nil, err
	}
	return v.([]interface{}), nil
}

func tupleOf(params []Parameter) *soltype.TupleType {
	fields := make([]soltype.Field, len(params))
	for i, p := range params {
		fields[i] = soltype.Field{Name: p.Name, Type: p.Type}
	}
	return soltype.Tuple(fields...)
}
