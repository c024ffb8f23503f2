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
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

// Event pairs a topic list (up to four indexed parameters, topic 0 being
// the signature hash unless anonymous) with a data tuple of non-indexed
// parameters.
type Event struct {
	Name      string
	Inputs    []Parameter // indexed and non-indexed, in declared order
	Anonymous bool
}

// Signature uses the canonical names of ALL parameters, indexed and
// non-indexed alike, in source order.
func (e *Event) Signature() string {
	return e.Name + signatureTypes(e.Inputs)
}

// SignatureHash is keccak256(signature).
func (e *Event) SignatureHash() ethtypes.Word {
	return ethtypes.Keccak256([]byte(e.Signature()))
}

func (e *Event) indexedParams() []Parameter {
	var out []Parameter
	for _, p := range e.Inputs {
		if p.Indexed {
			out = append(out, p)
		}
	}
	return out
}

func (e *Event) nonIndexedParams() []Parameter {
	var out []Parameter
	for _, p := range e.Inputs {
		if !p.Indexed {
			out = append(out, p)
		}
	}
	return out
}

// isValueShaped reports whether a shape's wire form is a single word - the
// boundary the Solidity event ABI draws between "value types (<=32
// bytes): the padded word form" and "reference types: keccak256 of the
// ABI-encoded value" for indexed parameter topic encoding.
func isValueShaped(shape *abitoken.Shape) bool {
	return shape.Kind == abitoken.ShapeWord
}

// Topics computes the topic list for values supplied in the order of
// e.indexedParams(). Topic 0 is the signature hash unless the event is
// anonymous.
func (e *Event) Topics(indexedValues []interface{}) ([]ethtypes.Word, error) {
	params := e.indexedParams()
	if len(indexedValues) != len(params) {
		return nil, abierrors.InvalidLength(len(params), len(indexedValues))
	}
	topics := make([]ethtypes.Word, 0, len(params)+1)
	if !e.Anonymous {
		topics = append(topics, e.SignatureHash())
	}
	for i, p := range params {
		if isValueShaped(p.Type.Shape()) {
			tok, err := p.Type.Tokenize(indexedValues[i])
			if err != nil {
				return nil, err
			}
			wt := tok.(abitoken.WordToken)
			topics = append(topics, wt.Value)
		} else {
			w, err := p.Type.EIP712DataWord(indexedValues[i])
			if err != nil {
				return nil, err
			}
			topics = append(topics, w)
		}
	}
	return topics, nil
}

// EncodeData ABI-encodes the non-indexed parameters together as a single
// tuple, for the log's data field.
func (e *Event) EncodeData(nonIndexedValues []interface{}) ([]byte, error) {
	params := e.nonIndexedParams()
	tokens, err := tokenizeParams(params, nonIndexedValues)
	if err != nil {
		return nil, err
	}
	return abicodec.EncodeParams(tokens), nil
}

// DecodedLog is the result of DecodeLog: non-indexed values decode fully;
// indexed reference-type values (bytes, string, arrays, tuples) can only
// be recovered as their keccak256 hash, since that is all a topic holds.
type DecodedLog struct {
	Indexed       map[string]interface{}
	IndexedHashes map[string]ethtypes.Word
	NonIndexed    map[string]interface{}
}

// DecodeLog is the dual of Topics/EncodeData: given the raw topics and
// data of an on-chain log, recover as much of the original value set as
// the wire format allows.
func (e *Event) DecodeLog(topics []ethtypes.Word, data []byte, validate bool) (*DecodedLog, error) {
	params := e.indexedParams()
	firstTopic := 0
	if !e.Anonymous {
		firstTopic = 1
	}
	if len(topics) != firstTopic+len(params) {
		return nil, abierrors.InvalidLength(firstTopic+len(params), len(topics))
	}

	result := &DecodedLog{
		Indexed:       map[string]interface{}{},
		IndexedHashes: map[string]ethtypes.Word{},
		NonIndexed:    map[string]interface{}{},
	}
	for i, p := range params {
		topic := topics[firstTopic+i]
		if isValueShaped(p.Type.Shape()) {
			v, err := p.Type.Detokenize(abitoken.WordToken{Value: topic})
			if err != nil {
				return nil, err
			}
			result.Indexed[p.Name] = v
		} else {
			result.IndexedHashes[p.Name] = topic
		}
	}

	nonIndexed := e.nonIndexedParams()
	tokens, err := abicodec.DecodeParams(data, paramShapes(nonIndexed), validate)
	if err != nil {
		return nil, err
	}
	values, err := detokenizeParams(nonIndexed, tokens)
	if err != nil {
		return nil, err
	}
	for i, p := range nonIndexed {
		result.NonIndexed[p.Name] = values[i]
	}
	return result, nil
}
