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

// Package engine orchestrates a shall invocation: it derives the effective
// algorithm set, resolves the input payload (or walks a directory), runs
// each digest engine, and streams labeled results to the reporter.
//
// Execution is a single synchronous pipeline. Errors abort the remainder of
// the run immediately; rows already reported stay reported.
package engine

import (
	"github.com/nytalvi/shall/pkg/config"
	"github.com/nytalvi/shall/pkg/hashing"
	hashengines "github.com/nytalvi/shall/pkg/hashing/engines"
	"github.com/nytalvi/shall/pkg/logging"
	"github.com/nytalvi/shall/pkg/report"

	// Register the stdlib-backed engines.
	_ "github.com/nytalvi/shall/pkg/hashing/engines/memory"
)

// Engine runs one configured invocation end to end.
type Engine struct {
	resolver  *Resolver
	processor *DirectoryProcessor
	reporter  *report.Reporter
	logger    logging.Logger
}

// New creates an Engine that reports through reporter and logs advisory
// notices through logger.
func New(reporter *report.Reporter, logger logging.Logger) *Engine {
	logger = logging.EnsureLogger(logger)
	return &Engine{
		resolver:  NewResolver(logger),
		processor: NewDirectoryProcessor(reporter, logger),
		reporter:  reporter,
		logger:    logger,
	}
}

// SetResolver replaces the input resolver. Tests use this to inject a
// resolver with canned stdin.
func (e *Engine) SetResolver(r *Resolver) {
	e.resolver = r
}

// Run executes the pipeline described by cfg.
//
// The effective algorithm set is derived first, so directory-mode validation
// failures surface before any I/O. Single-input modes then resolve the
// payload once and hash it with every selected algorithm in canonical order;
// directory mode delegates to the DirectoryProcessor with the single
// selected algorithm.
func (e *Engine) Run(cfg config.RunConfig) error {
	algorithms, err := cfg.EffectiveAlgorithms()
	if err != nil {
		return err
	}

	if cfg.Source().Kind() == config.SourceDirectory {
		return e.processor.Process(cfg.Source().Path(), algorithms[0])
	}

	data, err := e.resolver.Resolve(cfg.Source())
	if err != nil {
		return err
	}
	e.logger.Debug("input size: %d bytes", len(data))

	// Each algorithm is attempted independently once selected; no result
	// short-circuits the ones after it.
	for _, algorithm := range algorithms {
		e.logger.Debug("calculating %s...", algorithm.Label())

		result, err := hashOnce(algorithm, data, "")
		if err != nil {
			return err
		}
		e.reporter.Report(result)
	}

	return nil
}

// hashOnce computes one digest over data with the given algorithm and wraps
// it into a result carrying the optional subject.
func hashOnce(algorithm hashing.Algorithm, data []byte, subject string) (report.Result, error) {
	he, err := hashengines.Create(algorithm.Name())
	if err != nil {
		return report.Result{}, err
	}

	he.Update(data)
	digest, err := he.Compute()
	if err != nil {
		return report.Result{}, err
	}

	return report.Result{
		Algorithm: algorithm,
		Subject:   subject,
		Digest:    digest,
	}, nil
}
