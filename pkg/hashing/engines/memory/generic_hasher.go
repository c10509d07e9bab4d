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

// Package memory provides in-memory hash engines backed by the standard
// library crypto packages.
package memory

import (
	"hash"

	"github.com/nytalvi/shall/pkg/hashing/digests"
	hashengines "github.com/nytalvi/shall/pkg/hashing/engines"
)

// Ensure GenericHashEngine implements StreamingHashEngine at compile time.
var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc is a function that creates a new hash.Hash instance.
type HashFactoryFunc func() hash.Hash

// GenericHashEngine is a reusable wrapper around any hash.Hash
// implementation, avoiding per-algorithm duplication between the MD5, SHA1,
// SHA256 and SHA512 engines.
type GenericHashEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericHashEngine creates a generic hash engine.
//
//   - name: canonical name of the algorithm (e.g. "sha256")
//   - size: size of the digest in bytes
//   - factory: creates fresh hash.Hash instances
//   - initialData: optional data written into the hash immediately
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) *GenericHashEngine {
	engine := &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       factory(),
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per the interface contract.
		_, _ = engine.h.Write(initialData)
	}

	return engine
}

// Update appends additional bytes to the data being hashed.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with initial data.
func (e *GenericHashEngine) Reset(data []byte) {
	e.h = e.factory()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a digests.Digest.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the canonical name of the algorithm.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the size, in bytes, of digests produced by this engine.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
