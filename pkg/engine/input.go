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

package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/nytalvi/shall/pkg/config"
	"github.com/nytalvi/shall/pkg/logging"
)

// Resolver obtains the byte payload for the single-input modes: literal
// string, file, and stdin. Directory sources are handled by the
// DirectoryProcessor, never by the Resolver.
//
// The whole payload is read into memory; reads block until complete and
// there is no cancellation or timeout.
type Resolver struct {
	stdin  io.Reader
	logger logging.Logger
}

// NewResolver creates a Resolver reading stdin from os.Stdin.
func NewResolver(logger logging.Logger) *Resolver {
	return NewResolverWithStdin(os.Stdin, logger)
}

// NewResolverWithStdin creates a Resolver with an explicit stdin reader.
// Tests use this to supply canned input.
func NewResolverWithStdin(stdin io.Reader, logger logging.Logger) *Resolver {
	return &Resolver{
		stdin:  stdin,
		logger: logging.EnsureLogger(logger),
	}
}

// Resolve returns the raw bytes for the given source.
//
// Literal sources never fail. File and stdin sources fail with a *IOError
// when the read fails. The progress notices are advisory debug output and
// do not affect the returned payload.
func (r *Resolver) Resolve(source config.InputSource) ([]byte, error) {
	switch source.Kind() {
	case config.SourceLiteral:
		return []byte(source.Literal()), nil

	case config.SourceFile:
		r.logger.Debug("reading from file: %s", source.Path())
		data, err := os.ReadFile(source.Path())
		if err != nil {
			return nil, newIOError("read file", source.Path(), err)
		}
		return data, nil

	case config.SourceStdin:
		r.logger.Debug("reading from stdin...")
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, newIOError("read stdin", "", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("source kind %q is not resolvable to a single payload", source.Kind())
	}
}
