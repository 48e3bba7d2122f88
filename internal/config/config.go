/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the sample's ambient settings.
//
// Sources, highest priority first:
//
//  1. Command-line flags
//  2. Environment variables prefixed with SAMPLE_ (dashes become underscores)
//  3. An optional YAML config file given by --config
//  4. Default values
//
// None of the settings change what the driver sums or displays, and a bad
// setting never stops a run: Load falls back to the default for it.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/llm-d/sample-module/internal/logging"
	"github.com/llm-d/sample-module/pkg/newmath"
)

// Configuration keys, also used as flag names.
const (
	ConfigFileKey     = "config"
	LogLevelKey       = "log-level"
	OverflowPolicyKey = "overflow-policy"
	MetricsFileKey    = "metrics-file"
	ReportFileKey     = "report-file"

	// EnvPrefix is prepended to upper-cased keys when reading the environment.
	EnvPrefix = "SAMPLE"

	DefaultLogLevel       = "info"
	DefaultOverflowPolicy = "wrap"
)

// Config holds the resolved settings for one run.
type Config struct {
	// LogLevel is one of error, info, debug, trace
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`

	// OverflowPolicy selects how summation treats int overflow: wrap or checked
	OverflowPolicy string `mapstructure:"overflow-policy" yaml:"overflow-policy"`

	// MetricsFile, when set, receives a Prometheus text dump after the run
	MetricsFile string `mapstructure:"metrics-file" yaml:"metrics-file"`

	// ReportFile, when set, receives a YAML report of the run
	ReportFile string `mapstructure:"report-file" yaml:"report-file"`
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Path to an optional YAML config file")
	fs.String(LogLevelKey, DefaultLogLevel, "Log verbosity: error, info, debug or trace")
	fs.String(OverflowPolicyKey, DefaultOverflowPolicy, "Summation overflow policy: wrap or checked")
	fs.String(MetricsFileKey, "", "Write Prometheus metrics in text format to this file after the run")
	fs.String(ReportFileKey, "", "Write a YAML run report to this file")
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{LogLevel: DefaultLogLevel, OverflowPolicy: DefaultOverflowPolicy}
}

// Load resolves a Config from the flags in fs, the environment and the optional config file.
//
// The returned Config is always usable. A source that cannot be read is skipped and
// an invalid value is replaced by its default; every such problem is reported in the
// returned error.
func Load(fs *pflag.FlagSet) (*Config, error) {
	var errs []error

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(OverflowPolicyKey, DefaultOverflowPolicy)
	v.SetDefault(MetricsFileKey, "")
	v.SetDefault(ReportFileKey, "")

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			errs = append(errs, fmt.Errorf("failed to bind flags: %w", err))
		}
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			errs = append(errs, fmt.Errorf("failed to read config file %s: %w", path, err))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		errs = append(errs, fmt.Errorf("failed to decode config: %w", err))
		cfg = Defaults()
	}
	errs = append(errs, cfg.sanitize()...)
	return cfg, errors.Join(errs...)
}

// sanitize resets every invalid field to its default and returns one error per reset.
func (c *Config) sanitize() []error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid %s, using %q: %w", LogLevelKey, DefaultLogLevel, err))
		c.LogLevel = DefaultLogLevel
	}
	if _, err := newmath.ParseOverflowPolicy(c.OverflowPolicy); err != nil {
		errs = append(errs, fmt.Errorf("invalid %s, using %q: %w", OverflowPolicyKey, DefaultOverflowPolicy, err))
		c.OverflowPolicy = DefaultOverflowPolicy
	}
	if c.MetricsFile != "" && c.MetricsFile == c.ReportFile {
		errs = append(errs, fmt.Errorf("%s and %s must differ, both are %q; skipping the report", MetricsFileKey, ReportFileKey, c.MetricsFile))
		c.ReportFile = ""
	}
	return errs
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", LogLevelKey, err)
	}
	if _, err := newmath.ParseOverflowPolicy(c.OverflowPolicy); err != nil {
		return fmt.Errorf("invalid %s: %w", OverflowPolicyKey, err)
	}
	if c.MetricsFile != "" && c.MetricsFile == c.ReportFile {
		return fmt.Errorf("%s and %s must differ, both are %q", MetricsFileKey, ReportFileKey, c.MetricsFile)
	}
	return nil
}

// Policy returns the parsed overflow policy. It assumes Validate has passed.
func (c *Config) Policy() newmath.OverflowPolicy {
	policy, _ := newmath.ParseOverflowPolicy(c.OverflowPolicy)
	return policy
}
