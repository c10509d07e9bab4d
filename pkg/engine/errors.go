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
	"errors"
	"fmt"
	"io/fs"
)

// IOErrorKind categorizes an I/O failure for programmatic handling.
type IOErrorKind int

const (
	// KindOther is an unclassified OS error.
	KindOther IOErrorKind = iota
	// KindNotFound means the file or directory does not exist.
	KindNotFound
	// KindPermission means the file or directory could not be accessed.
	KindPermission
)

// String returns a human-readable name for the error kind.
func (k IOErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// IOError is a structured error for a failed read of the input payload, a
// directory listing, or a file within a directory. Every IOError is fatal:
// the remaining pipeline is aborted and the process exits non-zero. Nothing
// is retried or downgraded to a partial result.
type IOError struct {
	// Kind categorizes the failure.
	Kind IOErrorKind
	// Op names the operation that failed (e.g. "read file").
	Op string
	// Path is the file or directory involved, if any.
	Path string
	// Cause is the underlying OS error.
	Cause error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error.
func (e *IOError) ExitCode() int {
	return 1
}

// newIOError wraps an OS error, classifying its kind from the error chain.
func newIOError(op, path string, cause error) *IOError {
	kind := KindOther
	switch {
	case errors.Is(cause, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(cause, fs.ErrPermission):
		kind = KindPermission
	}

	return &IOError{
		Kind:  kind,
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}
