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

// Package abierrors is the single failure taxonomy shared by every package
// in this module - hex/word parsing, address checksums, ABI encode/decode,
// and EIP-712 hashing all fail through the same tagged error type so callers
// can dispatch on Kind with errors.Is/errors.As rather than string matching.
package abierrors

import (
	"errors"
	"fmt"
)

// Kind tags the category of failure. It is deliberately a closed set - new
// failure modes are added here, not invented ad-hoc at call sites.
type Kind string

const (
	KindInvalidHex      Kind = "InvalidHex"
	KindInvalidLength   Kind = "InvalidLength"
	KindInvalidChecksum Kind = "InvalidChecksum"
	KindBufferOverrun   Kind = "BufferOverrun"
	KindOverflow        Kind = "Overflow"
	KindTypeCheckFail   Kind = "TypeCheckFail"
	KindUnknownSelector Kind = "UnknownSelector"
	KindInvalidUTF8     Kind = "InvalidUtf8"
	KindFromHexError    Kind = "FromHexError"
	KindOther           Kind = "Other"
)

// Error is the concrete error type returned by every fallible operation in
// this module. Only the fields relevant to Kind are populated.
type Error struct {
	Kind Kind

	// KindBufferOverrun, KindInvalidLength
	Want, Got int

	// KindTypeCheckFail
	ExpectedName string
	TokenRepr    string

	// KindUnknownSelector
	Selector [4]byte

	Message string
	Wrapped error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBufferOverrun:
		return fmt.Sprintf("buffer overrun: wanted %d bytes, got %d", e.Want, e.Got)
	case KindTypeCheckFail:
		return fmt.Sprintf("type check failed for %s: %s", e.ExpectedName, e.TokenRepr)
	case KindUnknownSelector:
		return fmt.Sprintf("unknown selector 0x%x", e.Selector)
	case KindFromHexError:
		return fmt.Sprintf("invalid hex: %s", e.Wrapped)
	case KindOther:
		return e.Message
	default:
		if e.Message != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Message)
		}
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is lets errors.Is(err, &abierrors.Error{Kind: abierrors.KindX}) style
// comparisons match by kind alone, matching how callers actually want to
// branch on failures.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func InvalidHex(msg string) error {
	return &Error{Kind: KindInvalidHex, Message: msg}
}

func InvalidLength(want, got int) error {
	return &Error{Kind: KindInvalidLength, Want: want, Got: got,
		Message: fmt.Sprintf("expected %d bytes, got %d", want, got)}
}

func InvalidChecksum() error {
	return &Error{Kind: KindInvalidChecksum, Message: "address checksum mismatch"}
}

func BufferOverrun(want, got int) error {
	return &Error{Kind: KindBufferOverrun, Want: want, Got: got}
}

func Overflow(msg string) error {
	return &Error{Kind: KindOverflow, Message: msg}
}

func TypeCheckFail(expectedName, tokenRepr string) error {
	return &Error{Kind: KindTypeCheckFail, ExpectedName: expectedName, TokenRepr: tokenRepr}
}

func UnknownSelector(selector [4]byte) error {
	return &Error{Kind: KindUnknownSelector, Selector: selector}
}

func InvalidUTF8() error {
	return &Error{Kind: KindInvalidUTF8, Message: "invalid UTF-8 data"}
}

func FromHexError(err error) error {
	return &Error{Kind: KindFromHexError, Wrapped: err}
}

func Other(format string, args ...interface{}) error {
	return &Error{Kind: KindOther, Message: fmt.Sprintf(format, args...)}
}

// Is is a package-level convenience matching the sentinel-kind pattern used
// throughout the codec and token packages: abierrors.Is(err, abierrors.KindOverflow).
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
