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

// Package abilog is this library's sole logging surface: trace-level
// diagnostics for decode failures and checksum mismatches, gated behind
// logrus.IsLevelEnabled so the (potentially large) hex dumps are never
// formatted on a hot decode path unless trace logging is actually on.
package abilog

import (
	"encoding/hex"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "abi")

// DecodeFailure traces the buffer state around a failed decode, for
// diagnosing malformed calldata/log data without tying this library to any
// particular caller's logging setup.
func DecodeFailure(context string, buf []byte, offset int, err error) {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	log.Tracef("%s: decode failed at offset %d (buf len %d): %s", context, offset, len(buf), err)
	log.Tracef("%s: buffer: %s", context, hex.EncodeToString(buf))
}

// ChecksumMismatch traces an address that failed EIP-55/1191 checksum
// validation, without returning the full derivation in the error itself.
func ChecksumMismatch(got, want string) {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	log.Tracef("address checksum mismatch: got %s want %s", got, want)
}
