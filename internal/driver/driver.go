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

package driver

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"

	"github.com/llm-d/sample-module/internal/logging"
	"github.com/llm-d/sample-module/internal/metrics"
	"github.com/llm-d/sample-module/internal/report"
	"github.com/llm-d/sample-module/pkg/newmath"
	"github.com/llm-d/sample-module/pkg/show"
)

// Options configures a Driver. Zero values select the defaults.
type Options struct {
	// Policy is the summation overflow policy, WrapPolicy by default
	Policy newmath.OverflowPolicy

	// Out receives the displayed numbers, os.Stdout when nil
	Out io.Writer

	// Metrics records operations, a fresh recorder when nil
	Metrics *metrics.Recorder

	// Clock times operations, the real clock when nil
	Clock clock.PassiveClock
}

// Driver owns one summation utility and one display utility.
type Driver struct {
	policy  newmath.OverflowPolicy
	summer  newmath.Summer
	display *show.Show
	metrics *metrics.Recorder
	clock   clock.PassiveClock
}

// New creates a Driver from opts.
func New(opts Options) (*Driver, error) {
	summer, err := newmath.NewSummer(opts.Policy)
	if err != nil {
		return nil, err
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewRecorder()
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	return &Driver{
		policy:  opts.Policy,
		summer:  summer,
		display: show.New(opts.Out),
		metrics: opts.Metrics,
		clock:   opts.Clock,
	}, nil
}

// Metrics returns the recorder the driver reports to.
func (d *Driver) Metrics() *metrics.Recorder {
	return d.metrics
}

// Run sums both fixed sequences and displays the two results.
// The report covers every step attempted, including a failing one.
func (d *Driver) Run(ctx context.Context) (*report.Report, error) {
	logger := logr.FromContextOrDiscard(ctx)
	rep := &report.Report{OverflowPolicy: d.policy.String()}

	first, err := d.sum(logger, rep, 1, 2, 3, 4, 5)
	if err != nil {
		return rep, err
	}
	second, err := d.sum(logger, rep, 55, 66, 77, 88, 99)
	if err != nil {
		return rep, err
	}

	if err := d.show(logger, rep, first, second); err != nil {
		return rep, err
	}
	logger.Info("Run completed", "results", rep.Displayed)
	return rep, nil
}

func (d *Driver) sum(logger logr.Logger, rep *report.Report, numbers ...int) (int, error) {
	start := d.clock.Now()
	result, err := d.summer.Sum(numbers...)
	elapsed := d.clock.Since(start)

	d.metrics.ObserveOperation(metrics.OperationSum, elapsed, err)
	op := report.Operation{
		Name:    metrics.OperationSum,
		Inputs:  slices.Clone(numbers),
		Seconds: elapsed.Seconds(),
	}
	if err != nil {
		op.Error = err.Error()
		rep.Add(op)
		return 0, fmt.Errorf("failed to sum %v: %w", numbers, err)
	}
	op.Result = ptr.To(result)
	rep.Add(op)

	logger.V(logging.DEBUG).Info("Summed numbers", "inputs", numbers, "result", result, "elapsed", elapsed)
	return result, nil
}

func (d *Driver) show(logger logr.Logger, rep *report.Report, numbers ...int) error {
	start := d.clock.Now()
	err := d.display.ShowNumbers(numbers...)
	elapsed := d.clock.Since(start)

	d.metrics.ObserveOperation(metrics.OperationShow, elapsed, err)
	op := report.Operation{
		Name:    metrics.OperationShow,
		Inputs:  slices.Clone(numbers),
		Seconds: elapsed.Seconds(),
	}
	if err != nil {
		op.Error = err.Error()
		rep.Add(op)
		return err
	}
	rep.Add(op)
	rep.Displayed = slices.Clone(numbers)
	d.metrics.AddShown(len(numbers))

	logger.V(logging.TRACE).Info("Displayed numbers", "count", len(numbers), "elapsed", elapsed)
	return nil
}
