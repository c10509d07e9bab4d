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

// Package hashengines defines the interfaces for digest computation and a
// registry of named engine factories.
//
// Engines are trusted primitives: once bytes have been read successfully,
// computing their digest cannot fail.
package hashengines

import (
	"github.com/nytalvi/shall/pkg/hashing/digests"
)

// HashEngine is the core interface for computing a digest.
type HashEngine interface {
	// Compute finalizes the hash computation and returns the resulting
	// digest. Returns an error only if the engine itself is misconfigured.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm (e.g. "sha1").
	// This name is transferred to the Algorithm field of the Digest
	// returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It must match the Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is implemented by engines that accept data incrementally.
//
// It is kept separate from HashEngine so one-shot engines remain possible.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for incremental
// hashing, composed from the two smaller interfaces.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
