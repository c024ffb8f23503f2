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

// Package hexutil is the hex codec collaborator described by the ABI
// encoding core: decode accepts an optional "0x" prefix, encode always
// lower-cases and never adds one unless asked. It has no knowledge of
// words, addresses, or ABI types - those packages build on it.
package hexutil

import (
	"encoding/hex"
	"strings"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
)

// Decode parses a hex string, tolerating an optional "0x"/"0X" prefix.
func Decode(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, abierrors.FromHexError(err)
	}
	return b, nil
}

// DecodeFixed parses a hex string and requires the result to be exactly
// want bytes long.
func DecodeFixed(s string, want int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, abierrors.InvalidLength(want, len(b))
	}
	return b, nil
}

// Encode lower-cases b into hex with no prefix.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeToSlice appends the lower-case hex encoding of b into out, growing
// it if necessary, and returns the updated slice - this mirrors the
// allocation-amortising contract the codec's hot paths rely on.
func EncodeToSlice(b []byte, out []byte) []byte {
	want := len(out) + hex.EncodedLen(len(b))
	if cap(out) < want {
		grown := make([]byte, len(out), want)
		copy(grown, out)
		out = grown
	}
	out = out[:want]
	hex.Encode(out[want-hex.EncodedLen(len(b)):], b)
	return out
}

// With0x prefixes s with "0x" if it does not already have one.
func With0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
