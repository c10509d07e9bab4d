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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nytalvi/shall/pkg/config"
	"github.com/nytalvi/shall/pkg/hashing"
	"github.com/nytalvi/shall/pkg/report"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestProcess_OneRowPerFileSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "abc")
	writeFile(t, dir, "a.txt", "")
	writeFile(t, dir, "c.txt", "abc")

	var buf bytes.Buffer
	p := NewDirectoryProcessor(report.NewWithWriter(&buf, false), silentLogger())

	if err := p.Process(dir, hashing.MD5); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := []string{
		"MD5      | a.txt | d41d8cd98f00b204e9800998ecf8427e",
		"MD5      | b.txt | 900150983cd24fb0d6963f7d28e17f72",
		"MD5      | c.txt | 900150983cd24fb0d6963f7d28e17f72",
	}

	got := rows(&buf)
	if len(got) != len(want) {
		t.Fatalf("Process() produced %d rows, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProcess_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "abc")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o750); err != nil {
		t.Fatal(err)
	}
	// A file inside the subdirectory must not appear: no recursion.
	writeFile(t, filepath.Join(dir, "nested"), "inner.txt", "abc")

	var buf bytes.Buffer
	p := NewDirectoryProcessor(report.NewWithWriter(&buf, false), silentLogger())

	if err := p.Process(dir, hashing.SHA1); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	got := rows(&buf)
	if len(got) != 1 {
		t.Fatalf("Process() produced %d rows, want 1:\n%s", len(got), buf.String())
	}
	if want := "SHA1     | file.txt | a9993e364706816aba3e25717850c26c9cd0d89d"; got[0] != want {
		t.Errorf("row = %q, want %q", got[0], want)
	}
}

func TestProcess_UndecodableNameBecomesUnknown(t *testing.T) {
	dir := t.TempDir()

	// A name that is not valid UTF-8. Some filesystems refuse such names
	// outright; that is not what this test is about.
	badName := string([]byte{0xff, 0xfe}) + ".bin"
	if err := os.WriteFile(filepath.Join(dir, badName), []byte("abc"), 0o600); err != nil {
		t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
	}

	var buf bytes.Buffer
	p := NewDirectoryProcessor(report.NewWithWriter(&buf, false), silentLogger())

	if err := p.Process(dir, hashing.MD5); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	got := rows(&buf)
	if len(got) != 1 {
		t.Fatalf("Process() produced %d rows, want 1:\n%s", len(got), buf.String())
	}
	if want := "MD5      | unknown | 900150983cd24fb0d6963f7d28e17f72"; got[0] != want {
		t.Errorf("row = %q, want %q", got[0], want)
	}
}

func TestProcess_FileReadFailureAbortsAfterEarlierRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "abc")
	// A dangling symlink sorts between the two readable files and fails
	// when read, so processing must stop before reaching c.txt.
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "b.link")); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}
	writeFile(t, dir, "c.txt", "abc")

	var buf bytes.Buffer
	p := NewDirectoryProcessor(report.NewWithWriter(&buf, false), silentLogger())

	err := p.Process(dir, hashing.MD5)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Process() error = %v, want *IOError", err)
	}

	// Rows produced before the failing entry stay printed; nothing after
	// it is processed and no summary follows.
	got := rows(&buf)
	if len(got) != 1 {
		t.Fatalf("Process() produced %d rows, want 1:\n%s", len(got), buf.String())
	}
	if want := "MD5      | a.txt | 900150983cd24fb0d6963f7d28e17f72"; got[0] != want {
		t.Errorf("row = %q, want %q", got[0], want)
	}
}

func TestProcess_MissingDirectory(t *testing.T) {
	var buf bytes.Buffer
	p := NewDirectoryProcessor(report.NewWithWriter(&buf, false), silentLogger())

	err := p.Process(filepath.Join(t.TempDir(), "missing"), hashing.SHA256)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Process() error = %v, want *IOError", err)
	}
	if ioErr.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", ioErr.Kind, KindNotFound)
	}
	if buf.Len() != 0 {
		t.Errorf("Process() printed rows despite enumeration failure:\n%s", buf.String())
	}
}

func TestRun_DirectoryMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "only.bin", "abc")

	eng, buf := newTestEngine()
	cfg := config.NewRunConfig(config.DirectorySource(dir), config.AlgorithmFlags{SHA256: true}, false)

	if err := eng.Run(cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := rows(buf)
	if len(got) != 1 {
		t.Fatalf("Run() produced %d rows, want 1", len(got))
	}
	if want := "SHA256   | only.bin | ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"; got[0] != want {
		t.Errorf("row = %q, want %q", got[0], want)
	}
}
