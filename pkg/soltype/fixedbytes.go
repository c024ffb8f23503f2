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

// FixedBytesType is the "bytesN" family, N in 1..32.
type FixedBytesType struct{ N int }

var fixedBytesCache = map[int]*FixedBytesType{}

// FixedBytes names the bytesN descriptor for the given width.
func FixedBytes(n int) *FixedBytesType {
	if t, ok := fixedBytesCache[n]; ok {
		return t
	}
	if n < 1 || n > 32 {
		panic(fmt.Sprintf("invalid bytesN width %d", n))
	}
	t := &FixedBytesType{N: n}
	fixedBytesCache[n] = t
	return t
}

var (
	Bytes32 = FixedBytes(32)
	Bytes4  = FixedBytes(4)
)

func (t *FixedBytesType) SolName() string          { return fmt.Sprintf("bytes%d", t.N) }
func (t *FixedBytesType) EncodedSize() (int, bool) { return 32, true }
func (t *FixedBytesType) Shape() *abitoken.Shape   { return abitoken.WordShape(t.ValidToken) }

func (t *FixedBytesType) Tokenize(value interface{}) (abitoken.Token, error) {
	fb, err := t.coerce(value)
	if err != nil {
		return nil, err
	}
	return abitoken.WordToken{Value: fb.IntoWord()}, nil
}

func (t *FixedBytesType) coerce(value interface{}) (ethtypes.FixedBytes, error) {
	switch v := value.(type) {
	case ethtypes.FixedBytes:
		if v.N() != t.N {
			return ethtypes.FixedBytes{}, abierrors.InvalidLength(t.N, v.N())
		}
		return v, nil
	case []byte:
		return ethtypes.NewFixedBytes(t.N, v)
	default:
		return ethtypes.FixedBytes{}, abierrors.Other("expected FixedBytes or []byte, got %T", value)
	}
}

func (t *FixedBytesType) Detokenize(token abitoken.Token) (interface{}, error) {
	w, err := wordOf(token)
	if err != nil {
		return nil, err
	}
	return ethtypes.FixedBytesFromWord(w, t.N)
}

func (t *FixedBytesType) ValidToken(token abitoken.Token) bool {
	w, err := wordOf(token)
	if err != nil {
		return false
	}
	for i := t.N; i < 32; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return true
}

func (t *FixedBytesType) EIP712DataWord(value interface{}) (ethtypes.Word, error) {
	tok, err := t.Tokenize(value)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return wordOf(tok)
}

func (t *FixedBytesType) EncodePackedTo(value interface{}, out []byte) ([]byte, error) {
	fb, err := t.coerce(value)
	if err != nil {
		return nil, err
	}
	return append(out, fb.Bytes()...), nil
}
