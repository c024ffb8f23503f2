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
	"unicode/utf8"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

type bytesType struct{}

// Bytes is the dynamic "bytes" Solidity type.
var Bytes SolType = bytesType{}

func (bytesType) SolName() string          { return "bytes" }
func (bytesType) EncodedSize() (int, bool) { return 0, false }
func (bytesType) Shape() *abitoken.Shape   { return abitoken.PackedShape(nil) }

func (bytesType) Tokenize(value interface{}) (abitoken.Token, error) {
	b, ok := value.([]byte)
	if !ok {
		return nil, abierrors.Other("expected []byte, got %T", value)
	}
	return abitoken.PackedSeqToken{Data: b}, nil
}

func (bytesType) Detokenize(token abitoken.Token) (interface{}, error) {
	pt, ok := token.(abitoken.PackedSeqToken)
	if !ok {
		return nil, abierrors.Other("expected a packed-sequence token, got %T", token)
	}
	return pt.Data, nil
}

func (bytesType) ValidToken(abitoken.Token) bool { return true }

func (bytesType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	b, ok := value.([]byte)
	if !ok {
		return ethtypes.Word{}, abierrors.Other("expected []byte, got %T", value)
	}
	return ethtypes.Keccak256(b), nil
}

func (bytesType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	b, ok := value.([]byte)
	if !ok {
		return nil, abierrors.Other("expected []byte, got %T", value)
	}
	return append(out, b...), nil
}

type stringType struct{}

// String is the dynamic "string" Solidity type.
var String SolType = stringType{}

func (stringType) SolName() string          { return "string" }
func (stringType) EncodedSize() (int, bool) { return 0, false }
func (stringType) Shape() *abitoken.Shape   { return abitoken.PackedShape(validUTF8Token) }

func (stringType) Tokenize(value interface{}) (abitoken.Token, error) {
	s, ok := value.(string)
	if !ok {
		return nil, abierrors.Other("expected string, got %T", value)
	}
	return abitoken.PackedSeqToken{Data: []byte(s)}, nil
}

func (stringType) Detokenize(token abitoken.Token) (interface{}, error) {
	pt, ok := token.(abitoken.PackedSeqToken)
	if !ok {
		return nil, abierrors.Other("expected a packed-sequence token, got %T", token)
	}
	// UTF-8 well-formedness is ValidToken's job, gated by the decoder's
	// validate flag. Detokenize always returns the bytes, well-formed or not.
	return string(pt.Data), nil
}

func (stringType) ValidToken(token abitoken.Token) bool {
	return validUTF8Token(token)
}

func validUTF8Token(token abitoken.Token) bool {
	pt, ok := token.(abitoken.PackedSeqToken)
	if !ok {
		return false
	}
	return utf8.Valid(pt.Data)
}

func (stringType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	s, ok := value.(string)
	if !ok {
		return ethtypes.Word{}, abierrors.Other("expected string, got %T", value)
	}
	return ethtypes.Keccak256([]byte(s)), nil
}

func (stringType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, abierrors.Other("expected string, got %T", value)
	}
	return append(out, []byte(s)...), nil
}
