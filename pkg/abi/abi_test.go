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
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleido-io/evmabi/pkg/abicodec"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
	"github.com/kaleido-io/evmabi/pkg/soltype"
)

func mustAddr(t *testing.T, s string) ethtypes.Address {
	a, err := ethtypes.ParseAddress(s)
	require.NoError(t, err)
	return a
}

// TestFunctionSelectorWellKnown exercises S6: transfer(address,uint256) is
// the standard ERC20 method, with a selector recognised across the entire
// ecosystem.
func TestFunctionSelectorWellKnown(t *testing.T) {
	f := &Function{
		Name: "transfer",
		Inputs: []Parameter{
			{Name: "to", Type: soltype.Address},
			{Name: "value", Type: soltype.Uint256},
		},
		Output: []Parameter{{Name: "", Type: soltype.Bool}},
	}
	assert.Equal(t, "transfer(address,uint256)", f.Signature())
	sel := f.Selector()
	assert.Equal(t, "a9059cbb", hex.EncodeToString(sel[:]))
}

// TestTransferEventSignatureHash exercises S6's event half: the ERC20
// Transfer log topic0, recognised across the entire ecosystem.
func TestTransferEventSignatureHash(t *testing.T) {
	e := &Event{
		Name: "Transfer",
		Inputs: []Parameter{
			{Name: "from", Type: soltype.Address, Indexed: true},
			{Name: "to", Type: soltype.Address, Indexed: true},
			{Name: "value", Type: soltype.Uint256},
		},
	}
	assert.Equal(t, "Transfer(address,address,uint256)", e.Signature())
	h := e.SignatureHash()
	assert.Equal(t, "ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", hex.EncodeToString(h[:]))
}

func TestBuiltinErrorSelectors(t *testing.T) {
	assert.Equal(t, "Panic(uint256)", PanicError.Signature())
	sel := PanicError.Selector()
	assert.Equal(t, "4e487b71", hex.EncodeToString(sel[:]))

	assert.Equal(t, "Revert(string)", RevertError.Signature())
	sel = RevertError.Selector()
	assert.Equal(t, "08c379a0", hex.EncodeToString(sel[:]))
}

func TestFunctionEncodeDecodeCallDataRoundtrip(t *testing.T) {
	f := &Function{
		Name: "transfer",
		Inputs: []Parameter{
			{Name: "to", Type: soltype.Address},
			{Name: "value", Type: soltype.Uint256},
		},
	}
	to := mustAddr(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e")
	data, err := f.EncodeCallData([]interface{}{to, big.NewInt(1000)})
	require.NoError(t, err)
	require.Len(t, data, 4+64)

	values, err := f.DecodeCallData(data, true)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, to, values[0])
	assert.Equal(t, big.NewInt(1000), values[1])
}

func TestFunctionDecodeCallDataWrongSelector(t *testing.T) {
	f := &Function{Name: "transfer", Inputs: []Parameter{{Name: "to", Type: soltype.Address}}}
	bogus := []byte{0xde, 0xad, 0xbe, 0xef}
	bogus = append(bogus, make([]byte, 32)...)
	_, err := f.DecodeCallData(bogus, true)
	assert.Error(t, err)
}

func TestEventTopicsAndDecodeLogRoundtrip(t *testing.T) {
	e := &Event{
		Name: "Transfer",
		Inputs: []Parameter{
			{Name: "from", Type: soltype.Address, Indexed: true},
			{Name: "to", Type: soltype.Address, Indexed: true},
			{Name: "value", Type: soltype.Uint256},
		},
	}
	from := mustAddr(t, "0x0000000000000000000000000000000000000001")
	to := mustAddr(t, "0x0000000000000000000000000000000000000002")

	topics, err := e.Topics([]interface{}{from, to})
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, e.SignatureHash(), topics[0])

	data, err := e.EncodeData([]interface{}{big.NewInt(42)})
	require.NoError(t, err)
	require.Len(t, data, 32)

	decoded, err := e.DecodeLog(topics, data, true)
	require.NoError(t, err)
	assert.Equal(t, from, decoded.Indexed["from"])
	assert.Equal(t, to, decoded.Indexed["to"])
	assert.Equal(t, big.NewInt(42), decoded.NonIndexed["value"])
}

// TestAnonymousEventHasNoSignatureTopic exercises §8.8's property: an
// anonymous event's topic count is exactly the indexed parameter count,
// with no leading signature-hash topic.
func TestAnonymousEventHasNoSignatureTopic(t *testing.T) {
	e := &Event{
		Name:      "Ping",
		Inputs:    []Parameter{{Name: "from", Type: soltype.Address, Indexed: true}},
		Anonymous: true,
	}
	from := mustAddr(t, "0x0000000000000000000000000000000000000003")
	topics, err := e.Topics([]interface{}{from})
	require.NoError(t, err)
	assert.Len(t, topics, 1)
}

func TestEventTopicForDynamicIndexedParamIsHash(t *testing.T) {
	e := &Event{
		Name: "Note",
		Inputs: []Parameter{
			{Name: "tag", Type: soltype.String, Indexed: true},
		},
	}
	topics, err := e.Topics([]interface{}{"hello"})
	require.NoError(t, err)
	require.Len(t, topics, 2)
	want := ethtypes.Keccak256([]byte("hello"))
	assert.Equal(t, want, topics[1])
}

func TestDecodeRevertRoundtrip(t *testing.T) {
	sel := RevertError.Selector()
	payload, err := tokenizeParams(RevertError.Inputs, []interface{}{"insufficient balance"})
	require.NoError(t, err)
	data := append(sel[:], abicodec.EncodeParams(payload)...)

	reason, code, err := DecodeRevert(data)
	require.NoError(t, err)
	assert.Equal(t, "insufficient balance", reason)
	assert.Nil(t, code)
}

func TestDecodeRevertPanicRoundtrip(t *testing.T) {
	sel := PanicError.Selector()
	payload, err := tokenizeParams(PanicError.Inputs, []interface{}{big.NewInt(0x11)})
	require.NoError(t, err)
	data := append(sel[:], abicodec.EncodeParams(payload)...)

	reason, code, err := DecodeRevert(data)
	require.NoError(t, err)
	assert.Equal(t, "", reason)
	assert.Equal(t, big.NewInt(0x11), code)
}

func TestDecodeRevertUnknownSelector(t *testing.T) {
	_, _, err := DecodeRevert([]byte{0x01, 0x02, 0x03, 0x04})
	assert.Error(t, err)
}

const sampleJSONABI = `[
  {"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
  {"type":"error","name":"InsufficientBalance","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]},
  {"type":"function","name":"batch","inputs":[{"name":"items","type":"tuple[]","components":[{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"}]}],"outputs":[]}
]`

func TestParseJSONABI(t *testing.T) {
	parsed, err := ParseJSONABI([]byte(sampleJSONABI))
	require.NoError(t, err)

	xfer, ok := parsed.Functions["transfer"]
	require.True(t, ok)
	assert.Equal(t, "transfer(address,uint256)", xfer.Signature())

	ev, ok := parsed.Events["Transfer"]
	require.True(t, ok)
	assert.Equal(t, "Transfer(address,address,uint256)", ev.Signature())
	assert.True(t, ev.Inputs[0].Indexed)
	assert.False(t, ev.Inputs[2].Indexed)

	errDef, ok := parsed.Errors["InsufficientBalance"]
	require.True(t, ok)
	assert.Equal(t, "InsufficientBalance(uint256,uint256)", errDef.Signature())

	batch, ok := parsed.Functions["batch"]
	require.True(t, ok)
	assert.Equal(t, "batch((uint256,uint256)[])", batch.Signature())
}

func TestParseTypeNestedArrayDims(t *testing.T) {
	ty, err := parseType("uint256[2][]", nil)
	require.NoError(t, err)
	assert.Equal(t, "uint256[2][]", ty.SolName())
}

// TestFunctionDecodeCallDataInvalidUTF8String exercises the validate=false
// best-effort decode path: invalid UTF-8 bytes in a string argument decode
// without error, and the same calldata is rejected when validate=true.
func TestFunctionDecodeCallDataInvalidUTF8String(t *testing.T) {
	f := &Function{
		Name:   "setNote",
		Inputs: []Parameter{{Name: "note", Type: soltype.String}},
	}
	invalid := string([]byte{0x68, 0x69, 0xff, 0xfe})
	data, err := f.EncodeCallData([]interface{}{invalid})
	require.NoError(t, err)

	values, err := f.DecodeCallData(data, false)
	require.NoError(t, err)
	assert.Equal(t, invalid, values[0])

	_, err = f.DecodeCallData(data, true)
	assert.Error(t, err)
}
