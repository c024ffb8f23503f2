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
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/soltype"
)

// JSONParameter mirrors one entry of a JSON ABI fragment's "inputs"/
// "outputs" array. Components is only populated for "tuple" and
// "tuple[]"-family types.
type JSONParameter struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Indexed    bool            `json:"indexed,omitempty"`
	Components []JSONParameter `json:"components,omitempty"`
}

// JSONEntry is one top-level element of a Solidity JSON ABI array.
type JSONEntry struct {
	Type            string          `json:"type"`
	Name            string          `json:"name,omitempty"`
	Inputs          []JSONParameter `json:"inputs,omitempty"`
	Outputs         []JSONParameter `json:"outputs,omitempty"`
	Anonymous       bool            `json:"anonymous,omitempty"`
	StateMutability string          `json:"stateMutability,omitempty"`
}

// ABI is a parsed contract interface, keyed by name for direct lookup.
// Overloaded names collide in these maps - this covers the common case of
// non-overloaded fragments.
type ABI struct {
	Functions map[string]*Function
	Events    map[string]*Event
	Errors    map[string]*ErrorDef
}

// ParseJSONABI parses a standard Solidity JSON ABI document into Function,
// Event and ErrorDef descriptors.
func ParseJSONABI(data []byte) (*ABI, error) {
	var entries []JSONEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, abierrors.Other("invalid JSON ABI: %s", err)
	}

	out := &ABI{
		Functions: map[string]*Function{},
		Events:    map[string]*Event{},
		Errors:    map[string]*ErrorDef{},
	}
	for _, e := range entries {
		switch e.Type {
		case "function", "":
			inputs, err := parseParameters(e.Inputs)
			if err != nil {
				return nil, err
			}
			outputs, err := parseParameters(e.Outputs)
			if err != nil {
				return nil, err
			}
			out.Functions[e.Name] = &Function{Name: e.Name, Inputs: inputs, Output: outputs}
		case "event":
			inputs, err := parseParameters(e.Inputs)
			if err != nil {
				return nil, err
			}
			out.Events[e.Name] = &Event{Name: e.Name, Inputs: inputs, Anonymous: e.Anonymous}
		case "error":
			inputs, err := parseParameters(e.Inputs)
			if err != nil {
				return nil, err
			}
			out.Errors[e.Name] = &ErrorDef{Name: e.Name, Inputs: inputs}
		case "constructor", "receive", "fallback":
			// no selector, nothing for this library to resolve by name
		default:
			return nil, abierrors.Other("unrecognised JSON ABI entry type %q", e.Type)
		}
	}
	return out, nil
}

func parseParameters(in []JSONParameter) ([]Parameter, error) {
	out := make([]Parameter, len(in))
	for i, p := range in {
		t, err := parseType(p.Type, p.Components)
		if err != nil {
			return nil, err
		}
		out[i] = Parameter{Name: p.Name, Type: t, Indexed: p.Indexed}
	}
	return out, nil
}

// parseType resolves a JSON ABI type string - "uint256", "bytes32[3][]",
// "tuple", "tuple[2]" - into a soltype.SolType, peeling array-suffix
// bracket groups off the right one at a time and wrapping the base type
// progressively.
func parseType(typeStr string, components []JSONParameter) (soltype.SolType, error) {
	base, dims, err := splitArrayDims(typeStr)
	if err != nil {
		return nil, err
	}

	var elem soltype.SolType
	if base == "tuple" {
		elem, err = parseTuple(components)
	} else {
		elem, err = parseBaseType(base)
	}
	if err != nil {
		return nil, err
	}

	// dims is in written order (e.g. "T[2][]" -> ["2", ""]), and in
	// Solidity the leftmost bracket group is the innermost dimension
	// ("T[2][]" is a dynamic array of T[2]); wrap left to right so the
	// final type's SolName reproduces the original string.
	for i := 0; i < len(dims); i++ {
		if dims[i] == "" {
			elem = soltype.Array(elem)
		} else {
			n, err := strconv.Atoi(dims[i])
			if err != nil {
				return nil, abierrors.Other("invalid array length in type %q", typeStr)
			}
			elem = soltype.FixedArray(elem, n)
		}
	}
	return elem, nil
}

// splitArrayDims splits "uint256[2][]" into ("uint256", ["2", ""]).
func splitArrayDims(typeStr string) (base string, dims []string, err error) {
	base = typeStr
	for strings.HasSuffix(base, "]") {
		open := strings.LastIndexByte(base, '[')
		if open < 0 {
			return "", nil, abierrors.Other("unbalanced array brackets in type %q", typeStr)
		}
		dims = append(dims, base[open+1:len(base)-1])
		base = base[:open]
	}
	// dims was appended rightmost bracket group first; reverse it to match
	// the written order.
	for i, j := 0, len(dims)-1; i < j; i, j = i+1, j-1 {
		dims[i], dims[j] = dims[j], dims[i]
	}
	return base, dims, nil
}

func parseTuple(components []JSONParameter) (*soltype.TupleType, error) {
	fields := make([]soltype.Field, len(components))
	for i, c := range components {
		t, err := parseType(c.Type, c.Components)
		if err != nil {
			return nil, err
		}
		fields[i] = soltype.Field{Name: c.Name, Type: t}
	}
	return soltype.Tuple(fields...), nil
}

func parseBaseType(base string) (soltype.SolType, error) {
	switch {
	case base == "bool":
		return soltype.Bool, nil
	case base == "address":
		return soltype.Address, nil
	case base == "string":
		return soltype.String, nil
	case base == "bytes":
		return soltype.Bytes, nil
	case base == "function":
		return soltype.Function, nil
	case strings.HasPrefix(base, "uint"):
		n, err := widthOf(base, "uint")
		if err != nil {
			return nil, err
		}
		return soltype.Uint(n), nil
	case strings.HasPrefix(base, "int"):
		n, err := widthOf(base, "int")
		if err != nil {
			return nil, err
		}
		return soltype.Int(n), nil
	case strings.HasPrefix(base, "bytes"):
		n, err := strconv.Atoi(base[len("bytes"):])
		if err != nil {
			return nil, abierrors.Other("invalid fixed-bytes type %q", base)
		}
		return soltype.FixedBytes(n), nil
	default:
		return nil, abierrors.Other("unrecognised ABI type %q", base)
	}
}

// widthOf extracts the N in "uintN"/"intN", defaulting to 256 for the bare
// "uint"/"int" spelling.
func widthOf(base, prefix string) (int, error) {
	rest := base[len(prefix):]
	if rest == "" {
		return 256, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, abierrors.Other("invalid width in type %q", base)
	}
	return n, nil
}
