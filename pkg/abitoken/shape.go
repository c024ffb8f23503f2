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

package abitoken

// ShapeKind tags the four token variants a Shape can describe.
type ShapeKind int

const (
	ShapeWord ShapeKind = iota
	ShapeFixedSeq
	ShapeDynamicSeq
	ShapePacked
)

// Shape is the runtime schema object the decoder needs to know how to turn
// raw bytes back into a Token tree: a tagged-variant token tree paired
// with a runtime schema object, since Go has no compile-time trait-
// associated-type erasure to do this for free. soltype.SolType
// implementations build a Shape describing their own layout and
// optionally attach a Validate hook implementing their own validity rule.
type Shape struct {
	Kind ShapeKind

	// FixedSeq: one Shape per child, in order (tuples are heterogeneous so
	// every child gets its own Shape; T[N] arrays just repeat the same one).
	Children []*Shape

	// Validate, if non-nil, is invoked by the decoder when validate=true
	// after a token of this Shape is constructed. It implements the
	// type-specific half of this type's token-validity rule.
	Validate func(Token) bool
}

func WordShape(validate func(Token) bool) *Shape {
	return &Shape{Kind: ShapeWord, Validate: validate}
}

func PackedShape(validate func(Token) bool) *Shape {
	return &Shape{Kind: ShapePacked, Validate: validate}
}

func TupleShape(children ...*Shape) *Shape {
	return &Shape{Kind: ShapeFixedSeq, Children: children}
}

// FixedArrayShape repeats elem n times - a homogeneous FixedSeq.
func FixedArrayShape(elem *Shape, n int) *Shape {
	children := make([]*Shape, n)
	for i := range children {
		children[i] = elem
	}
	return &Shape{Kind: ShapeFixedSeq, Children: children}
}

// DynamicArrayShape describes T[]; Children holds exactly the one element
// shape, repeated by the decoder once the runtime length is known.
func DynamicArrayShape(elem *Shape) *Shape {
	return &Shape{Kind: ShapeDynamicSeq, Children: []*Shape{elem}}
}

// IsDynamic mirrors Token.IsDynamic but at the schema level, needed by the
// decoder before any token exists yet.
func (s *Shape) IsDynamic() bool {
	switch s.Kind {
	case ShapeWord:
		return false
	case ShapeDynamicSeq, ShapePacked:
		return true
	case ShapeFixedSeq:
		for _, c := range s.Children {
			if c.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HeadWords mirrors Token.HeadWords at the schema level.
func (s *Shape) HeadWords() int {
	if s.IsDynamic() {
		return 1
	}
	if s.Kind != ShapeFixedSeq {
		return 1
	}
	words := 0
	for _, c := range s.Children {
		words += c.HeadWords()
	}
	return words
}
