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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nytalvi/shall/pkg/config"
	"github.com/nytalvi/shall/pkg/logging"
)

func silentLogger() logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{Level: logging.LevelSilent})
}

func TestResolver_Literal(t *testing.T) {
	r := NewResolver(silentLogger())

	got, err := r.Resolve(config.LiteralSource("héllo"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "héllo"; string(got) != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolver_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")
	if err := os.WriteFile(path, []byte("file contents"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(silentLogger())
	got, err := r.Resolve(config.FileSource(path))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "file contents"; string(got) != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolver_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	r := NewResolver(silentLogger())
	_, err := r.Resolve(config.FileSource(path))
	if err == nil {
		t.Fatal("Resolve() succeeded for missing file, want error")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
	if ioErr.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", ioErr.Kind, KindNotFound)
	}
	if ioErr.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", ioErr.ExitCode())
	}
}

func TestResolver_Stdin(t *testing.T) {
	r := NewResolverWithStdin(strings.NewReader("piped in"), silentLogger())

	got, err := r.Resolve(config.StdinSource())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "piped in"; string(got) != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

// failingReader always errors, standing in for a broken stdin pipe.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("pipe burst")
}

func TestResolver_StdinReadFailure(t *testing.T) {
	r := NewResolverWithStdin(failingReader{}, silentLogger())

	_, err := r.Resolve(config.StdinSource())
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
	if ioErr.Kind != KindOther {
		t.Errorf("Kind = %v, want %v", ioErr.Kind, KindOther)
	}
}

func TestResolver_DirectoryNotResolvable(t *testing.T) {
	r := NewResolver(silentLogger())

	if _, err := r.Resolve(config.DirectorySource("dir")); err == nil {
		t.Error("Resolve() of a directory source succeeded, want error")
	}
}
