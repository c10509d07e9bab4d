// Copyright 2025 The Shall Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package digests provides the value type for computed hash digests.
//
// A Digest carries the algorithm name alongside the raw digest bytes and is
// effectively immutable: fields are unexported and constructors and accessors
// copy the underlying data defensively.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest represents a computed digest for one algorithm.
type Digest struct {
	algorithm string // canonical name of the algorithm
	value     []byte // raw digest bytes
}

// NewDigest creates a Digest for the given algorithm name and raw value.
// The value slice is copied so later mutation by the caller cannot affect
// the returned Digest.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the canonical name of the algorithm that produced this
// digest (e.g. "sha256").
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest bytes,
// two characters per byte.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns "algorithm:hexvalue", e.g. "sha256:ba7816...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm name and the
// same value. The value comparison is constant-time.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}
