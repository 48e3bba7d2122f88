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

package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/llm-d/sample-module/internal/config"
	"github.com/llm-d/sample-module/internal/driver"
	"github.com/llm-d/sample-module/internal/logging"
	"github.com/llm-d/sample-module/internal/metrics"
)

// loggerFactory builds the command's logger from the configured level.
type loggerFactory func(level string) (logr.Logger, error)

// loggedError marks an error the command has already logged.
type loggedError struct {
	error
}

func (e loggedError) Unwrap() error {
	return e.error
}

func newRootCommand() *cobra.Command {
	return newCommand(logging.NewLogger)
}

// newCommand builds the root command. Flags are parsed inside RunE so that no
// argument, including -h and malformed flags, can keep the sums from being shown.
func newCommand(newLogger loggerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample [args...]",
		Short: "Sum two fixed sequences and show the results",
		Long: `sample sums [1 2 3 4 5] and [55 66 77 88 99] and writes both sums to
standard output, one per line. Arguments are accepted and ignored; the flags
below only tune logging, the overflow policy and optional side outputs, and
invalid values fall back to their defaults.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			fs.ParseErrorsWhitelist.UnknownFlags = true
			parseErr := fs.Parse(args)

			cfg, cfgErr := config.Load(fs)
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "sample: %v\n", err)
				logger = logr.Discard()
			}
			if parseErr != nil {
				logger.Info("Ignoring unparsable arguments", "error", parseErr.Error())
			}
			if cfgErr != nil {
				logger.Info("Ignoring invalid configuration, using defaults", "error", cfgErr.Error())
			}

			if err := run(cmd, cfg, logger, fs.Args()); err != nil {
				logger.Error(err, "Run failed")
				return loggedError{err}
			}
			return nil
		},
	}
	config.AddFlags(cmd.Flags())
	cmd.Flags().BoolP("help", "h", false, "Ignored")
	_ = cmd.Flags().MarkHidden("help")
	return cmd
}

// run executes the driver. Only a failure to show the sums is returned; side
// outputs that cannot be written are logged and skipped.
func run(cmd *cobra.Command, cfg *config.Config, logger logr.Logger, args []string) error {
	if len(args) > 0 {
		logger.V(logging.DEBUG).Info("Ignoring arguments", "args", args)
	}

	d, err := driver.New(driver.Options{
		Policy: cfg.Policy(),
		Out:    cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	rep, runErr := d.Run(logr.NewContext(cmd.Context(), logger))

	// side outputs describe failed runs too
	if cfg.ReportFile != "" {
		if err := rep.WriteFile(cfg.ReportFile); err != nil {
			logger.Info("Skipping run report", "path", cfg.ReportFile, "error", err.Error())
		}
	}
	if cfg.MetricsFile != "" {
		if err := writeMetrics(cfg.MetricsFile, d.Metrics()); err != nil {
			logger.Info("Skipping metrics dump", "path", cfg.MetricsFile, "error", err.Error())
		}
	}
	return runErr
}

func writeMetrics(path string, recorder *metrics.Recorder) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close metrics file: %w", cerr)
		}
	}()
	return metrics.WriteText(f, recorder.Gatherer())
}
