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

// Package hashing defines the set of digest algorithms shall can compute
// and the canonical order in which they are evaluated.
package hashing

import "fmt"

// Algorithm identifies one of the supported digest algorithms.
type Algorithm int

const (
	// SHA1 is the SHA-1 algorithm (20-byte digests).
	SHA1 Algorithm = iota
	// SHA256 is the SHA-256 algorithm (32-byte digests).
	SHA256
	// SHA512 is the SHA-512 algorithm (64-byte digests).
	SHA512
	// MD5 is the MD5 checksum algorithm (16-byte digests).
	MD5
)

// CanonicalOrder returns all supported algorithms in the fixed order used
// for reporting: SHA1, SHA256, SHA512, MD5. Every multi-algorithm run
// evaluates algorithms in exactly this order.
func CanonicalOrder() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA512, MD5}
}

// Name returns the lowercase canonical name of the algorithm, which is also
// the key under which its engine is registered.
func (a Algorithm) Name() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	case MD5:
		return "md5"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Label returns the uppercase label used in report rows.
func (a Algorithm) Label() string {
	switch a {
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	case MD5:
		return "MD5"
	default:
		return "UNKNOWN"
	}
}

// DigestSize returns the size in bytes of digests produced by the algorithm.
func (a Algorithm) DigestSize() int {
	switch a {
	case SHA1:
		return 20
	case SHA256:
		return 32
	case SHA512:
		return 64
	case MD5:
		return 16
	default:
		return 0
	}
}

// String implements fmt.Stringer using the canonical lowercase name.
func (a Algorithm) String() string {
	return a.Name()
}
