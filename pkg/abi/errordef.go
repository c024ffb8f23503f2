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
	"github.com/kaleido-io/evmabi/pkg/soltype"
)

// ErrorDef is a custom Solidity error descriptor ("error InsufficientBalance
// (uint256 available, uint256 required)"). Named ErrorDef, not Error, to
// avoid colliding with the builtin error interface.
type ErrorDef struct {
	Name   string
	Inputs []Parameter
}

func (e *ErrorDef) Signature() string { return e.Name + signatureTypes(e.Inputs) }
func (e *ErrorDef) Selector() [4]byte { return selectorOf(e.Signature()) }

// DecodeData decodes a revert payload's trailing bytes (after the 4-byte
// selector) against this error's input tuple.
func (e *ErrorDef) DecodeData(data []byte, validate bool) ([]interface{}, error) {
	tokens, err := abicodec.DecodeParams(data, paramShapes(e.Inputs), validate)
	if err != nil {
		return nil, err
	}
	return detokenizeParams(e.Inputs, tokens)
}

// The two well-known built-in Solidity failures, modeled as ordinary
// ErrorDef values.
var (
	// PanicError is Panic(uint256), selector 0x4e487b71.
	PanicError = &ErrorDef{Name: "Panic", Inputs: []Parameter{{Name: "code", Type: soltype.Uint256}}}

	// RevertError is Revert(string), selector 0x08c379a0.
	RevertError = &ErrorDef{Name: "Revert", Inputs: []Parameter{{Name: "reason", Type: soltype.String}}}
)
