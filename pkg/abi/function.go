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

package abi

import (
	"github.com/kaleido-io/evmabi/pkg/abicodec"
	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// Function is a contract method descriptor: a name and an argument tuple,
// carrying a constant 4-byte selector.
type Function struct {
	Name   string
	Inputs []Parameter
	Output []Parameter
}

// Signature is the canonical "name(type1,type2,...)" string selectors hash.
func (f *Function) Signature() string {
	return f.Name + signatureTypes(f.Inputs)
}

// Selector is the first 4 bytes of keccak256(signature).
func (f *Function) Selector() [4]byte {
	return selectorOf(f.Signature())
}

func selectorOf(signature string) [4]byte {
	h := ethtypes.Keccak256([]byte(signature))
	var sel [4]byte
	copy(sel[:], h[:4])
	return sel
}

// EncodeCallData builds "selector ‖ encode_params(inputs)", the direct
// end-to-end path from Go values to calldata.
func (f *Function) EncodeCallData(values []interface{}) ([]byte, error) {
	tokens, err := tokenizeParams(f.Inputs, values)
	if err != nil {
		return nil, err
	}
	sel := f.Selector()
	out := make([]byte, 0, 4+32*len(tokens))
	out = append(out, sel[:]...)
	out = append(out, abicodec.EncodeParams(tokens)...)
	return out, nil
}

// DecodeCallData verifies the leading selector and decodes the remaining
// bytes as this function's input tuple.
func (f *Function) DecodeCallData(data []byte, validate bool) ([]interface{}, error) {
	if len(data) < 4 {
		return nil, abierrors.BufferOverrun(4, len(data))
	}
	var got [4]byte
	copy(got[:], data[:4])
	want := f.Selector()
	if got != want {
		return nil, abierrors.UnknownSelector(got)
	}
	tokens, err := abicodec.DecodeParams(data[4:], paramShapes(f.Inputs), validate)
	if err != nil {
		return nil, err
	}
	return detokenizeParams(f.Inputs, tokens)
}

// DecodeOutput decodes raw return data (no selector prefix) against this
// function's output tuple.
func (f *Function) DecodeOutput(data []byte, validate bool) ([]interface{}, error) {
	tokens, err := abicodec.DecodeParams(data, paramShapes(f.Output), validate)
	if err != nil {
		return nil, err
	}
	return detokenizeParams(f.Output, tokens)
}
