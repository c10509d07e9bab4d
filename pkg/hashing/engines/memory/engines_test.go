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
	"testing"

	hashengines "github.com/nytalvi/shall/pkg/hashing/engines"
)

// Compile-time check that every engine satisfies StreamingHashEngine.
var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

func TestEngines_KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		engine  hashengines.StreamingHashEngine
		input   string
		wantHex string
	}{
		{
			name:    "md5 abc",
			engine:  NewMD5Engine(nil),
			input:   "abc",
			wantHex: "900150983cd24fb0d6963f7d28e17f72",
		},
		{
			name:    "md5 empty",
			engine:  NewMD5Engine(nil),
			input:   "",
			wantHex: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:    "sha1 abc",
			engine:  NewSHA1Engine(nil),
			input:   "abc",
			wantHex: "a9993e364706816aba3e25717850c26c9cd0d89d",
		},
		{
			name:    "sha256 abc",
			engine:  NewSHA256Engine(nil),
			input:   "abc",
			wantHex: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:   "sha512 abc",
			engine: NewSHA512Engine(nil),
			input:  "abc",
			wantHex: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.engine.Update([]byte(tt.input))

			d, err := tt.engine.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got := d.Hex(); got != tt.wantHex {
				t.Errorf("Compute().Hex() = %q, want %q", got, tt.wantHex)
			}
		})
	}
}

func TestEngines_DigestSizes(t *testing.T) {
	tests := []struct {
		engine   hashengines.StreamingHashEngine
		wantName string
		wantSize int
	}{
		{NewMD5Engine(nil), "md5", 16},
		{NewSHA1Engine(nil), "sha1", 20},
		{NewSHA256Engine(nil), "sha256", 32},
		{NewSHA512Engine(nil), "sha512", 64},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if got := tt.engine.DigestName(); got != tt.wantName {
				t.Errorf("DigestName() = %q, want %q", got, tt.wantName)
			}
			if got := tt.engine.DigestSize(); got != tt.wantSize {
				t.Errorf("DigestSize() = %d, want %d", got, tt.wantSize)
			}

			tt.engine.Update([]byte("anything"))
			d, err := tt.engine.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if d.Size() != tt.wantSize {
				t.Errorf("Compute().Size() = %d, want %d", d.Size(), tt.wantSize)
			}
			if d.Algorithm() != tt.wantName {
				t.Errorf("Compute().Algorithm() = %q, want %q", d.Algorithm(), tt.wantName)
			}
		})
	}
}

func TestGenericHashEngine_Determinism(t *testing.T) {
	first := NewSHA256Engine([]byte("same bytes"))
	second := NewSHA256Engine([]byte("same bytes"))

	d1, err := first.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	d2, err := second.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !d1.Equal(d2) {
		t.Errorf("same input produced different digests: %s vs %s", d1, d2)
	}
}

func TestGenericHashEngine_ResetAndRecompute(t *testing.T) {
	const want = "900150983cd24fb0d6963f7d28e17f72"

	h := NewMD5Engine(nil)
	h.Update([]byte("junk"))
	h.Reset(nil)
	h.Update([]byte("abc"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != want {
		t.Errorf("Compute() after Reset = %q, want %q", got, want)
	}
}

func TestGenericHashEngine_InitialDataMatchesUpdate(t *testing.T) {
	seeded := NewSHA1Engine([]byte("abc"))
	updated := NewSHA1Engine(nil)
	updated.Update([]byte("abc"))

	d1, err := seeded.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	d2, err := updated.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !d1.Equal(d2) {
		t.Errorf("seeded and updated engines disagree: %s vs %s", d1, d2)
	}
}
