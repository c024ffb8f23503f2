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

// Package rlp implements the minimal subset of Ethereum's Recursive Length
// Prefix encoding required to derive a CREATE contract address: a list
// header, and a variable-length big-endian integer encoding for the nonce.
package rlp

import "math/big"

const (
	/**
	 * [0x80] If a string is 0-55 bytes long, the RLP encoding consists of a single byte with value
	 * 0x80 plus the length of the string followed by the string. The range of the first byte is
	 * thus [0x80, 0xb7].
	 */
	shortString byte = 0x80

	/**
	 * [0xc0] If the total payload of a list (i.e. the combined length of all its items) is 0-55
	 * bytes long, the RLP encoding consists of a single byte with value 0xc0 plus the length of the
	 * list followed by the concatenation of the RLP encodings of the items. The range of the first
	 * byte is thus [0xc0, 0xf7].
	 */
	shortList byte = 0xc0

	/**
	 * [0x37] == (longList-shortList) == (longString-shortString)
	 * which means we can add it to either short offset, to get the long offset
	 */
	shortToLong byte = 0x37
)

// EncodeBytes RLP-encodes a single byte string.
func EncodeBytes(in []byte) []byte {
	return encode(in, false)
}

// EncodeUint RLP-encodes a non-negative integer using the minimal big-endian
// byte representation (no leading zero byte), per the RLP "string" rules -
// this is how nonces and other integers are embedded in an RLP list.
func EncodeUint(v uint64) []byte {
	return EncodeBytes(minimalBigEndian(new(big.Int).SetUint64(v)))
}

// EncodeList RLP-encodes a list of pre-encoded RLP elements (such as the
// output of EncodeBytes/EncodeUint), wrapping them in a list header.
func EncodeList(items ...[]byte) []byte {
	var payload []byte
	for _, it := range items {
		payload = append(payload, it...)
	}
	return encode(payload, true)
}

func encode(in []byte, isList bool) []byte {
	shortOffset := shortString
	if isList {
		shortOffset = shortList
	}
	if len(in) == 1 && !isList && in[0] <= 0x7f {
		// A single byte below 0x80 is its own RLP encoding
		return in
	}
	if len(in) <= 55 {
		out := make([]byte, len(in)+1)
		out[0] = shortOffset + byte(len(in))
		copy(out[1:], in)
		return out
	}
	lenBytes := minimalBigEndian(new(big.Int).SetInt64(int64(len(in))))
	out := make([]byte, 1+len(lenBytes)+len(in))
	out[0] = shortOffset + shortToLong + byte(len(lenBytes))
	copy(out[1:], lenBytes)
	copy(out[1+len(lenBytes):], in)
	return out
}

// minimalBigEndian returns the big-endian bytes of v with no leading zero
// byte. A zero value encodes as an empty slice, matching RLP's rule that
// integer zero is the empty string.
func minimalBigEndian(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{}
	}
	return v.Bytes()
}
