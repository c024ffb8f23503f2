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

// Package eip712 implements structured-data hashing for signing
// (encodeType, typeHash, encodeData, hashStruct, domainSeparator, the
// 0x1901-prefixed signing hash), building on pkg/soltype for every member
// that isn't itself a reference to another struct.
//
// Follows the conventional EIP-712 tooling shape (a type-dependency walk
// collected and sorted alphabetically by name before encodeType runs) but
// built atop this module's SolType model instead of a raw
// map[string]interface{} JSON tree, with struct member values typed as Go
// values rather than deserialized JSON.
package eip712

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
	"github.com/kaleido-io/evmabi/pkg/soltype"
)

// Member is one field of a StructDef. Exactly one of Value or Ref is set:
// Value for anything soltype already models (value types, bytes/string,
// arrays of those), Ref when the field's declared type names another
// struct (TypeName carries the declared name, with an array suffix for
// "Person[]"/"Person[2]" member declarations).
type Member struct {
	Name     string
	TypeName string
	Value    soltype.SolType
	Ref      *StructDef
	// ArrayLen is -1 for a scalar struct reference, 0 for Person[], N>0 for
	// Person[N]. Unused when Ref is nil.
	ArrayLen int
}

// ValueMember declares a plain value-type field.
func ValueMember(name string, t soltype.SolType) Member {
	return Member{Name: name, TypeName: t.SolName(), Value: t}
}

// StructMember declares a field whose value is another struct.
func StructMember(name string, ref *StructDef) Member {
	return Member{Name: name, TypeName: ref.Name, Ref: ref, ArrayLen: -1}
}

// StructArrayMember declares a field holding a dynamic array of another
// struct's values ("Person[]").
func StructArrayMember(name string, ref *StructDef) Member {
	return Member{Name: name, TypeName: ref.Name + "[]", Ref: ref, ArrayLen: 0}
}

// StructFixedArrayMember declares a field holding a fixed-size array of
// another struct's values ("Person[2]").
func StructFixedArrayMember(name string, ref *StructDef, n int) Member {
	return Member{Name: name, TypeName: fmt.Sprintf("%s[%d]", ref.Name, n), Ref: ref, ArrayLen: n}
}

// StructDef is a named struct type - the EIP-712 analogue of
// soltype.TupleType, carrying a name (for typeHash) and field names (for
// encodeType) that an anonymous tuple doesn't need.
type StructDef struct {
	Name    string
	Members []Member
}

// NewStruct declares a named struct type from its members, in declaration
// order (encodeType preserves member order; only the *dependency* list is
// sorted).
func NewStruct(name string, members ...Member) *StructDef {
	return &StructDef{Name: name, Members: members}
}

func (s *StructDef) header() string {
	parts := make([]string, len(s.Members))
	for i, m := range s.Members {
		parts[i] = m.TypeName + " " + m.Name
	}
	return s.Name + "(" + strings.Join(parts, ",") + ")"
}

// dependencies walks every member, collecting every transitively
// referenced struct (deduplicated by name, excluding s itself). An array
// reference and a scalar reference to the same struct collapse to one
// dependency entry.
func (s *StructDef) dependencies() []*StructDef {
	seen := map[string]*StructDef{}
	var walk func(sd *StructDef)
	walk = func(sd *StructDef) {
		for _, m := range sd.Members {
			if m.Ref == nil {
				continue
			}
			if _, ok := seen[m.Ref.Name]; ok {
				continue
			}
			seen[m.Ref.Name] = m.Ref
			walk(m.Ref)
		}
	}
	walk(s)
	delete(seen, s.Name)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*StructDef, len(names))
	for i, n := range names {
		out[i] = seen[n]
	}
	return out
}

// EncodeType is EIP-712's encodeType(S): the primary type's header
// followed by every transitively-referenced struct's header, sorted
// alphabetically by name, each exactly once.
func (s *StructDef) EncodeType() string {
	var b strings.Builder
	b.WriteString(s.header())
	for _, dep := range s.dependencies() {
		b.WriteString(dep.header())
	}
	return b.String()
}

// TypeHash is keccak256(encodeType(S)).
func (s *StructDef) TypeHash() ethtypes.Word {
	return ethtypes.Keccak256([]byte(s.EncodeType()))
}

// Values is the value set for one struct instance, keyed by member name.
type Values map[string]interface{}

// EncodeData is typeHash(S) ‖ word(f1) ‖ word(f2) ‖ ….
func (s *StructDef) EncodeData(values Values) ([]byte, error) {
	out := make([]byte, 0, 32*(len(s.Members)+1))
	th := s.TypeHash()
	out = append(out, th[:]...)
	for _, m := range s.Members {
		w, err := s.memberDataWord(m, values[m.Name])
		if err != nil {
			return nil, err
		}
		out = append(out, w[:]...)
	}
	return out, nil
}

// HashStruct is keccak256(encodeData(S)).
func (s *StructDef) HashStruct(values Values) (ethtypes.Word, error) {
	data, err := s.EncodeData(values)
	if err != nil {
		return ethtypes.Word{}, err
	}
	return ethtypes.Keccak256(data), nil
}

func (s *StructDef) memberDataWord(m Member, value interface{}) (ethtypes.Word, error) {
	if m.Ref == nil {
		return m.Value.EIP712DataWord(value)
	}
	if m.ArrayLen < 0 {
		nested, ok := value.(Values)
		if !ok {
			return ethtypes.Word{}, abierrors.Other("field %q expects eip712.Values for struct %s", m.Name, m.Ref.Name)
		}
		return m.Ref.HashStruct(nested)
	}
	elems, ok := value.([]Values)
	if !ok {
		return ethtypes.Word{}, abierrors.Other("field %q expects []eip712.Values for struct array %s", m.Name, m.Ref.Name)
	}
	if m.ArrayLen > 0 && len(elems) != m.ArrayLen {
		return ethtypes.Word{}, abierrors.InvalidLength(m.ArrayLen, len(elems))
	}
	concatenated := make([]byte, 0, 32*len(elems))
	for _, e := range elems {
		w, err := m.Ref.HashStruct(e)
		if err != nil {
			return ethtypes.Word{}, err
		}
		concatenated = append(concatenated, w[:]...)
	}
	return ethtypes.Keccak256(concatenated), nil
}
