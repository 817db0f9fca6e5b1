// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/bufbuild/stubcompile/internal/ctxlog"
)

// DefaultFilename is the name of the configuration file looked up in the
// working directory when none is given.
const DefaultFilename = "stubgen.hcl"

// DefaultTimeout is the per test case timeout used when none is configured.
const DefaultTimeout = 5 * time.Second

// Config is the decoded configuration file.
type Config struct {
	Languages      []string    `hcl:"languages,optional"`
	ImportPaths    []string    `hcl:"import_paths,optional"`
	LogLevel       string      `hcl:"log_level,optional"`
	LogFormat      string      `hcl:"log_format,optional"`
	MaxParallelism int         `hcl:"max_parallelism,optional"`
	Test           *TestConfig `hcl:"test,block"`
}

// TestConfig configures the solution test runner.
type TestConfig struct {
	Cases   string   `hcl:"cases,optional"`
	Timeout string   `hcl:"timeout,optional"`
	Run     []string `hcl:"run,optional"`
}

// TimeoutDuration returns the parsed timeout, or DefaultTimeout if none is
// set. Load has already validated it.
func (t *TestConfig) TimeoutDuration() time.Duration {
	if t == nil || t.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// Load reads and decodes the configuration file at path. Environment
// variables are visible to expressions through env.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding config file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(path, src, environ())
	if err != nil {
		return nil, err
	}

	logger.Debug("Successfully decoded config file.", "path", path, "languages", cfg.Languages)
	return cfg, nil
}

// Parse decodes an HCL configuration held in memory. The env map is exposed
// to expressions as the env object.
func Parse(filename string, src []byte, env map[string]string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %s", filename, diags.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.MaxParallelism < 0 {
		errs = append(errs, fmt.Errorf("max_parallelism must not be negative, got %d", c.MaxParallelism))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn or error, got %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.Test != nil && c.Test.Timeout != "" {
		d, err := time.ParseDuration(c.Test.Timeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("test timeout: %w", err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("test timeout must be positive, got %s", d))
		}
	}
	return errors.Join(errs...)
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}
	envVal := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		envVal = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}

func environ() map[string]string {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
