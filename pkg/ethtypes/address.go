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

package ethtypes

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abilog"
	"github.com/kaleido-io/evmabi/pkg/hexutil"
	"github.com/kaleido-io/evmabi/pkg/rlp"
)

// Address is a 20-byte Ethereum account/contract identifier. Its checksum
// rendering (EIP-55, optionally EIP-1191 chain-id-parameterised) is a pure
// function of the 20 bytes, so Address carries no other state.
type Address [20]byte

// AddressFromWord takes w[12:32], the ABI head layout for address always
// left-pads with 12 zero bytes.
func AddressFromWord(w Word) Address {
	var a Address
	copy(a[:], w[12:32])
	return a
}

// IntoWord left-pads the address with 12 zero bytes.
func (a Address) IntoWord() Word {
	var w Word
	copy(w[12:32], a[:])
	return w
}

// ParseAddress accepts a hex string with or without "0x" prefix, without
// checksum validation (use ParseChecksummed to enforce EIP-55/1191).
func ParseAddress(s string) (Address, error) {
	b, err := hexutil.DecodeFixed(s, 20)
	if err != nil {
		return Address{}, err
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// HexLower renders the address as "0x" + 40 lowercase hex characters, with
// no checksum casing.
func (a Address) HexLower() string {
	return "0x" + hexutil.Encode(a[:])
}

func (a Address) String() string {
	return a.ToChecksum(nil)
}

// ToChecksum renders the EIP-55 mixed-case checksum form of the address. If
// chainID is non-nil, the EIP-1191 chain-id-parameterised variant is used
// instead.
//
// Algorithm (EIP-55 / EIP-1191):
//  1. hex-encode the 20 bytes lowercase into a 40-character buffer
//  2. hash either the 40-char lowercase hex (EIP-55), or the decimal ASCII
//     of chainID concatenated with the "0x"-prefixed 42-char lowercase form
//     (EIP-1191)
//  3. uppercase each hex digit of step 1 whose corresponding nibble of the
//     hash (taking hash_hex[i] >= '8') is set
func (a Address) ToChecksum(chainID *int64) string {
	buf := make([]byte, 42)
	a.ToChecksumRaw(buf, chainID)
	return string(buf)
}

func (a Address) toChecksumHashInput(chainID *int64) []byte {
	lower := hexutil.Encode(a[:])
	if chainID == nil {
		return []byte(lower)
	}
	return []byte(strconv.FormatInt(*chainID, 10) + "0x" + lower)
}

// ToChecksumRaw writes the 42-byte "0x"-prefixed checksum form into a
// caller-supplied buffer. The hex digits, hash input and hash hex are still
// built in temporary allocations; only the result avoids a new string. buf
// must be exactly 42 bytes - this is a programmer error, not a recoverable
// failure, so it panics like a slice-bounds violation would.
func (a Address) ToChecksumRaw(buf []byte, chainID *int64) {
	if len(buf) != 42 {
		panic("ToChecksumRaw requires a 42-byte buffer")
	}
	buf[0], buf[1] = '0', 'x'
	copy(buf[2:], hexutil.Encode(a[:]))

	hashInput := a.toChecksumHashInput(chainID)
	hashHex := hexutil.Encode(Keccak256(hashInput)[:])
	for i := 0; i < 40; i++ {
		nibble, _ := strconv.ParseInt(string(hashHex[i]), 16, 64)
		if nibble >= 8 {
			buf[2+i] = byte(unicode.ToUpper(rune(buf[2+i])))
		} else {
			buf[2+i] = byte(unicode.ToLower(rune(buf[2+i])))
		}
	}
}

// ParseChecksummed parses a "0x"-prefixed checksummed address string,
// recomputing the canonical checksum and comparing it byte-for-byte with
// the input. Hex-level faults surface as InvalidHex (missing prefix),
// FromHexError (non-hex characters) or InvalidLength (wrong length); a
// checksum mismatch surfaces
// separately as InvalidChecksum, since client UX typically treats the two
// differently (the latter is user-correctable, the former is not).
func ParseChecksummed(s string, chainID *int64) (Address, error) {
	if !strings.HasPrefix(s, "0x") {
		return Address{}, abierrors.InvalidHex("checksummed address must have a 0x prefix")
	}
	a, err := ParseAddress(s)
	if err != nil {
		return Address{}, err
	}
	if want := a.ToChecksum(chainID); want != s {
		abilog.ChecksumMismatch(s, want)
		return Address{}, abierrors.InvalidChecksum()
	}
	return a, nil
}

// Create derives the address of a contract deployed via the CREATE opcode
// from the sender address and its account nonce:
// keccak256(rlp([sender, nonce]))[12:32].
func Create(sender Address, nonce uint64) Address {
	encoded := rlp.EncodeList(rlp.EncodeBytes(sender[:]), rlp.EncodeUint(nonce))
	return AddressFromWord(Keccak256(encoded))
}

// Create2 derives the address of a contract deployed via CREATE2 from the
// sender, a salt, and the keccak256 hash of the contract's init code:
// keccak256(0xff ‖ sender ‖ salt ‖ initCodeHash)[12:32].
func Create2(sender Address, salt Word, initCodeHash Word) Address {
	return AddressFromWord(Keccak256([]byte{0xff}, sender[:], salt[:], initCodeHash[:]))
}

// Create2FromCode is the Create2 convenience that hashes the raw init code
// first, rather than requiring the caller to hash it themselves.
func Create2FromCode(sender Address, salt Word, initCode []byte) Address {
	return Create2(sender, salt, Keccak256(initCode))
}
