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

package abicodec

import (
	"fmt"
	"math/big"

	"github.com/kaleido-io/evmabi/pkg/abierrors"
	"github.com/kaleido-io/evmabi/pkg/abilog"
	"github.com/kaleido-io/evmabi/pkg/abitoken"
	"github.com/kaleido-io/evmabi/pkg/ethtypes"
)

const maxDecodeInt = int(^uint(0) >> 1)

// decoder is the stateful reader: a buffer, a validate flag, and
// (implicitly, threaded through every call) the root offset of whichever
// sequence is currently being read. The root travels as a plain parameter
// rather than mutable state because forking a child reader at a dynamic
// offset establishes a brand new root for everything nested inside it -
// getting this wrong is the single most common decoder bug.
type decoder struct {
	buf      []byte
	validate bool
}

// DecodeSequence reads a token per shape, in order, from the head region
// starting at buffer offset 0 (the root of the whole buffer).
func DecodeSequence(buf []byte, shapes []*abitoken.Shape, validate bool) ([]abitoken.Token, error) {
	d := &decoder{buf: buf, validate: validate}
	tokens, _, err := d.decodeSequenceAt(0, 0, shapes)
	if err != nil {
		abilog.DecodeFailure("DecodeSequence", buf, 0, err)
	}
	return tokens, err
}

// DecodeParams is DecodeSequence under the function-argument reading:
// conceptually distinct call sites, identical byte layout.
func DecodeParams(buf []byte, shapes []*abitoken.Shape, validate bool) ([]abitoken.Token, error) {
	return DecodeSequence(buf, shapes, validate)
}

// Decode reads a single token that was written via Encode: the buffer
// contains a 1-element sequence.
func Decode(buf []byte, shape *abitoken.Shape, validate bool) (abitoken.Token, error) {
	tokens, err := DecodeSequence(buf, []*abitoken.Shape{shape}, validate)
	if err != nil {
		return nil, err
	}
	return tokens[0], nil
}

func (d *decoder) decodeSequenceAt(headStart, root int, shapes []*abitoken.Shape) ([]abitoken.Token, int, error) {
	cursor := headStart
	tokens := make([]abitoken.Token, len(shapes))
	for i, s := range shapes {
		var tok abitoken.Token
		var err error
		if s.IsDynamic() {
			offset, oerr := d.readUintField(cursor)
			if oerr != nil {
				return nil, 0, oerr
			}
			tok, err = d.decodeDynamicAt(root+offset, s)
			cursor += 32
		} else {
			switch s.Kind {
			case abitoken.ShapeWord:
				w, werr := d.readWord(cursor)
				if werr != nil {
					return nil, 0, werr
				}
				tok = abitoken.WordToken{Value: w}
				cursor += 32
			case abitoken.ShapeFixedSeq:
				var children []abitoken.Token
				children, cursor, err = d.decodeSequenceAt(cursor, root, s.Children)
				tok = abitoken.FixedSeqToken{Children: children}
			default:
				err = abierrors.Other("static shape with non-word, non-tuple kind")
			}
		}
		if err != nil {
			return nil, 0, err
		}
		if d.validate && s.Validate != nil && !s.Validate(tok) {
			return nil, 0, abierrors.TypeCheckFail(shapeKindName(s.Kind), tokenRepr(tok))
		}
		tokens[i] = tok
	}
	return tokens, cursor, nil
}

func (d *decoder) decodeDynamicAt(target int, s *abitoken.Shape) (abitoken.Token, error) {
	switch s.Kind {
	case abitoken.ShapeFixedSeq:
		children, _, err := d.decodeSequenceAt(target, target, s.Children)
		if err != nil {
			return nil, err
		}
		return abitoken.FixedSeqToken{Children: children}, nil
	case abitoken.ShapeDynamicSeq:
		length, err := d.readUintField(target)
		if err != nil {
			return nil, err
		}
		elem := s.Children[0]
		elemShapes := make([]*abitoken.Shape, length)
		for i := range elemShapes {
			elemShapes[i] = elem
		}
		children, _, err := d.decodeSequenceAt(target+32, target+32, elemShapes)
		if err != nil {
			return nil, err
		}
		return abitoken.DynamicSeqToken{Children: children}, nil
	case abitoken.ShapePacked:
		length, err := d.readUintField(target)
		if err != nil {
			return nil, err
		}
		start := target + 32
		if start+length > len(d.buf) || start+length < start {
			return nil, abierrors.BufferOverrun(start+length, len(d.buf))
		}
		data := make([]byte, length)
		copy(data, d.buf[start:start+length])
		return abitoken.PackedSeqToken{Data: data}, nil
	default:
		return nil, abierrors.Other("dynamic shape with word kind")
	}
}

func (d *decoder) readWord(pos int) (ethtypes.Word, error) {
	if pos < 0 || pos+32 > len(d.buf) {
		return ethtypes.Word{}, abierrors.BufferOverrun(pos+32, len(d.buf))
	}
	var w ethtypes.Word
	copy(w[:], d.buf[pos:pos+32])
	return w, nil
}

// readUintField reads a 32-byte field interpreted as an offset or a
// length: the high 24 bytes must be zero (otherwise the value cannot fit
// architectural int) and the low 8 bytes must fit a (signed, non-negative)
// Go int.
func (d *decoder) readUintField(pos int) (int, error) {
	w, err := d.readWord(pos)
	if err != nil {
		return 0, err
	}
	for _, b := range w[:24] {
		if b != 0 {
			return 0, abierrors.Overflow("offset/length exceeds architectural maximum")
		}
	}
	v := new(big.Int).SetBytes(w[24:32])
	if !v.IsInt64() || v.Int64() < 0 || v.Int64() > int64(maxDecodeInt) {
		return 0, abierrors.Overflow("offset/length exceeds architectural maximum")
	}
	return int(v.Int64()), nil
}

// shapeKindName names the wire-level kind that failed Validate, for the
// TypeCheckFail diagnostic - the decoder works at the Shape level and has
// no SolType name to report at this point.
func shapeKindName(k abitoken.ShapeKind) string {
	switch k {
	case abitoken.ShapeWord:
		return "word"
	case abitoken.ShapeFixedSeq:
		return "fixedSeq"
	case abitoken.ShapeDynamicSeq:
		return "dynamicSeq"
	case abitoken.ShapePacked:
		return "packed"
	default:
		return "unknown"
	}
}

// tokenRepr renders the failing token's raw bytes for the TypeCheckFail
// diagnostic.
func tokenRepr(tok abitoken.Token) string {
	switch t := tok.(type) {
	case abitoken.WordToken:
		return fmt.Sprintf("%x", t.Value)
	case abitoken.PackedSeqToken:
		return fmt.Sprintf("%x", t.Data)
	default:
		return fmt.Sprintf("%v", tok)
	}
}
