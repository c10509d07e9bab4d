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
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/nytalvi/shall/pkg/hashing"
	"github.com/nytalvi/shall/pkg/logging"
	"github.com/nytalvi/shall/pkg/report"
)

// unknownSubject replaces a file name that cannot be decoded as UTF-8.
const unknownSubject = "unknown"

// DirectoryProcessor hashes every regular file directly inside a directory
// with a single algorithm. Enumeration is non-recursive: subdirectory
// entries are skipped entirely, never descended into.
//
// Entries are processed in name order (os.ReadDir sorts them), so output is
// deterministic for a given directory state. Files are handled one at a
// time; each payload is released once its digest has been reported.
type DirectoryProcessor struct {
	reporter *report.Reporter
	logger   logging.Logger
}

// NewDirectoryProcessor creates a DirectoryProcessor reporting through
// reporter.
func NewDirectoryProcessor(reporter *report.Reporter, logger logging.Logger) *DirectoryProcessor {
	return &DirectoryProcessor{
		reporter: reporter,
		logger:   logging.EnsureLogger(logger),
	}
}

// Process hashes each regular file in dir with algorithm, reporting one
// result per file as it is produced.
//
// Any read failure aborts the whole operation with a *IOError. Rows already
// reported for earlier files stay on the output, but no further files are
// processed and no summary follows. There is deliberately no
// continue-on-error mode.
func (p *DirectoryProcessor) Process(dir string, algorithm hashing.Algorithm) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return newIOError("read directory", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Skip directories, including symlinks that resolve to one.
		if entry.IsDir() {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			continue
		}

		p.logger.Debug("hashing %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return newIOError("read file", path, err)
		}

		subject := entry.Name()
		if !utf8.ValidString(subject) {
			subject = unknownSubject
		}

		result, err := hashOnce(algorithm, data, subject)
		if err != nil {
			return err
		}
		p.reporter.Report(result)
	}

	return nil
}
