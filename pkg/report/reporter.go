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

// Package report renders digest results as human-readable rows.
//
// Each result becomes one line of the form
//
//	LABEL    | SUBJECT | HEXDIGEST
//
// with a fixed-width algorithm label, a "-" placeholder when there is no
// subject, and the digest in lowercase hex. Rows are colored only when
// stdout is a terminal, so piped output stays byte-stable.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nytalvi/shall/pkg/hashing"
	"github.com/nytalvi/shall/pkg/hashing/digests"
)

// labelWidth is the fixed width of the algorithm label column. Wide enough
// for the longest label ("SHA256"/"SHA512") plus the padding the original
// row layout used.
const labelWidth = 8

// noSubject is the placeholder rendered when a result has no subject.
const noSubject = "-"

// Result is one digest outcome: which algorithm ran, what it ran against
// (empty for single-input mode), and the digest it produced. Results are
// created once per (algorithm, input-unit) pair and handed to the Reporter
// immediately; they are never persisted.
type Result struct {
	// Algorithm is the algorithm that produced the digest.
	Algorithm hashing.Algorithm
	// Subject names the hashed unit (a file base name in directory mode).
	// Empty means the single anonymous input.
	Subject string
	// Digest is the computed digest.
	Digest digests.Digest
}

// Reporter writes result rows to an output stream.
type Reporter struct {
	out    io.Writer
	styled bool

	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
}

// New returns a Reporter writing to stdout. Rows are styled only when
// stdout is a terminal.
func New() *Reporter {
	return NewWithWriter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// NewWithWriter returns a Reporter writing to w. Styling is applied only
// when styled is true; tests and piped output should pass false.
func NewWithWriter(w io.Writer, styled bool) *Reporter {
	return &Reporter{
		out:    w,
		styled: styled,

		// Blue bold label, cyan subject and digest, matching the row
		// coloring shall has always used.
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		valueStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Report renders one result row. Output is written line by line as results
// are produced; there is no buffering of the full result set. Write errors
// are not handled here, matching the fatal-on-stdout-failure error model.
func (r *Reporter) Report(res Result) {
	subject := res.Subject
	if subject == "" {
		subject = noSubject
	}

	// Pad before styling so ANSI escape codes do not distort the column.
	label := fmt.Sprintf("%-*s", labelWidth, res.Algorithm.Label())
	hexDigest := res.Digest.Hex()

	if r.styled {
		label = r.labelStyle.Render(label)
		subject = r.valueStyle.Render(subject)
		hexDigest = r.valueStyle.Render(hexDigest)
	}

	fmt.Fprintf(r.out, "%s | %s | %s\n", label, subject, hexDigest)
}
