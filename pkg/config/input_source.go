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

package config

import "fmt"

// SourceKind discriminates the variants of InputSource.
type SourceKind int

const (
	// SourceLiteral hashes a literal string supplied on the command line.
	SourceLiteral SourceKind = iota
	// SourceFile hashes the full contents of a single file.
	SourceFile
	// SourceStdin hashes everything read from standard input until EOF.
	SourceStdin
	// SourceDirectory hashes every regular file directly inside a directory.
	SourceDirectory
)

// String returns a human-readable name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceLiteral:
		return "literal"
	case SourceFile:
		return "file"
	case SourceStdin:
		return "stdin"
	case SourceDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// InputSource is a tagged variant describing where input bytes come from.
// Exactly one variant is active per invocation. Values are immutable; use
// the constructors below.
type InputSource struct {
	kind    SourceKind
	literal string // only for SourceLiteral
	path    string // only for SourceFile and SourceDirectory
}

// LiteralSource returns an InputSource hashing the given string.
func LiteralSource(s string) InputSource {
	return InputSource{kind: SourceLiteral, literal: s}
}

// FileSource returns an InputSource hashing the file at path.
func FileSource(path string) InputSource {
	return InputSource{kind: SourceFile, path: path}
}

// StdinSource returns an InputSource hashing standard input.
func StdinSource() InputSource {
	return InputSource{kind: SourceStdin}
}

// DirectorySource returns an InputSource hashing every regular file directly
// inside the directory at path (non-recursive).
func DirectorySource(path string) InputSource {
	return InputSource{kind: SourceDirectory, path: path}
}

// Kind returns the active variant.
func (s InputSource) Kind() SourceKind {
	return s.kind
}

// Literal returns the literal string for SourceLiteral sources. It is empty
// for every other kind.
func (s InputSource) Literal() string {
	return s.literal
}

// Path returns the file or directory path for SourceFile and SourceDirectory
// sources. It is empty for every other kind.
func (s InputSource) Path() string {
	return s.path
}

// String returns a short description of the source for diagnostics.
func (s InputSource) String() string {
	switch s.kind {
	case SourceLiteral:
		return fmt.Sprintf("literal(%d bytes)", len(s.literal))
	case SourceFile, SourceDirectory:
		return fmt.Sprintf("%s(%s)", s.kind, s.path)
	default:
		return s.kind.String()
	}
}
