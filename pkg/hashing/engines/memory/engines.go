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

package memory

import (
	"crypto/md5" //nolint:gosec // MD5 is an advertised checksum algorithm, not used for security.
	"crypto/sha1" //nolint:gosec // same as above for SHA-1
	"crypto/sha256"
	"crypto/sha512"

	hashengines "github.com/nytalvi/shall/pkg/hashing/engines"
)

// NewMD5Engine constructs an MD5 engine, optionally seeded with data.
func NewMD5Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("md5", md5.Size, md5.New, initialData)
}

// NewSHA1Engine constructs a SHA-1 engine, optionally seeded with data.
func NewSHA1Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha1", sha1.Size, sha1.New, initialData)
}

// NewSHA256Engine constructs a SHA-256 engine, optionally seeded with data.
func NewSHA256Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha256", sha256.Size, sha256.New, initialData)
}

// NewSHA512Engine constructs a SHA-512 engine, optionally seeded with data.
func NewSHA512Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha512", sha512.Size, sha512.New, initialData)
}

func init() {
	hashengines.MustRegister("md5", func() (hashengines.StreamingHashEngine, error) {
		return NewMD5Engine(nil), nil
	})
	hashengines.MustRegister("sha1", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA1Engine(nil), nil
	})
	hashengines.MustRegister("sha256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA256Engine(nil), nil
	})
	hashengines.MustRegister("sha512", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA512Engine(nil), nil
	})
}
