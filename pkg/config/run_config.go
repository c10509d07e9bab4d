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

// Package config holds the immutable per-invocation configuration: the
// input source, the user's algorithm flags, and the selection rules that
// derive the effective algorithm set from them.
package config

import (
	"github.com/nytalvi/shall/pkg/hashing"
)

// AlgorithmFlags records which algorithm flags the user set. Only membership
// matters; the order algorithms run in is always the canonical order.
type AlgorithmFlags struct {
	SHA1   bool
	SHA256 bool
	SHA512 bool
	MD5    bool
}

// Has reports whether the flag for the given algorithm is set.
func (f AlgorithmFlags) Has(a hashing.Algorithm) bool {
	switch a {
	case hashing.SHA1:
		return f.SHA1
	case hashing.SHA256:
		return f.SHA256
	case hashing.SHA512:
		return f.SHA512
	case hashing.MD5:
		return f.MD5
	default:
		return false
	}
}

// Count returns how many algorithm flags are set.
func (f AlgorithmFlags) Count() int {
	count := 0
	for _, a := range hashing.CanonicalOrder() {
		if f.Has(a) {
			count++
		}
	}
	return count
}

// Selected returns the flagged algorithms in canonical order.
func (f AlgorithmFlags) Selected() []hashing.Algorithm {
	var selected []hashing.Algorithm
	for _, a := range hashing.CanonicalOrder() {
		if f.Has(a) {
			selected = append(selected, a)
		}
	}
	return selected
}

// RunConfig is the immutable configuration for one invocation. It is
// constructed once from the resolved command line and passed explicitly to
// the engine; there is no mutable global state.
type RunConfig struct {
	source  InputSource
	flags   AlgorithmFlags
	verbose bool
}

// NewRunConfig builds a RunConfig from an input source, the user's algorithm
// flags, and the verbose setting.
func NewRunConfig(source InputSource, flags AlgorithmFlags, verbose bool) RunConfig {
	return RunConfig{
		source:  source,
		flags:   flags,
		verbose: verbose,
	}
}

// Source returns the active input source.
func (c RunConfig) Source() InputSource {
	return c.source
}

// Flags returns the user's algorithm flags.
func (c RunConfig) Flags() AlgorithmFlags {
	return c.flags
}

// Verbose reports whether advisory progress notices should be emitted.
func (c RunConfig) Verbose() bool {
	return c.verbose
}

// EffectiveAlgorithms derives the set of algorithms that will actually run,
// in canonical order (SHA1, SHA256, SHA512, MD5).
//
// Outside directory mode, an empty flag set means "show all": all four
// algorithms run. Otherwise exactly the flagged subset runs.
//
// In directory mode exactly one algorithm flag must be set; any other count
// returns a *ValidationError. This check runs before any I/O is attempted.
func (c RunConfig) EffectiveAlgorithms() ([]hashing.Algorithm, error) {
	if c.source.Kind() == SourceDirectory {
		if c.flags.Count() != 1 {
			return nil, NewValidationError("exactly one hash type required when hashing a directory")
		}
		return c.flags.Selected(), nil
	}

	selected := c.flags.Selected()

	if len(selected) == 0 {
		return hashing.CanonicalOrder(), nil
	}
	return selected, nil
}
