package driver

import (
	"bytes"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	testingclock "k8s.io/utils/clock/testing"
	"k8s.io/utils/ptr"

	"github.com/llm-d/sample-module/internal/metrics"
	"github.com/llm-d/sample-module/internal/report"
	"github.com/llm-d/sample-module/pkg/newmath"
)

// steppingClock advances by step on every Now call.
type steppingClock struct {
	*testingclock.FakePassiveClock
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	now := c.FakePassiveClock.Now()
	c.SetTime(now.Add(c.step))
	return now
}

func (c *steppingClock) Since(t time.Time) time.Duration {
	return c.FakePassiveClock.Now().Sub(t)
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) {
	return 0, errors.New("write on closed stream")
}

var _ = Describe("Driver", func() {
	var (
		out      *bytes.Buffer
		recorder *metrics.Recorder
		clk      *steppingClock
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		recorder = metrics.NewRecorder()
		clk = &steppingClock{
			FakePassiveClock: testingclock.NewFakePassiveClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			step:             time.Millisecond,
		}
	})

	Context("with the default policy", func() {
		It("should display both sums in order", func() {
			d, err := New(Options{Out: out, Metrics: recorder, Clock: clk})
			Expect(err).NotTo(HaveOccurred())

			rep, err := d.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("15\n385\n"))
			Expect(rep.Displayed).To(Equal([]int{15, 385}))
			Expect(rep.OverflowPolicy).To(Equal("wrap"))
		})

		It("should report every operation with its timing", func() {
			d, err := New(Options{Out: out, Metrics: recorder, Clock: clk})
			Expect(err).NotTo(HaveOccurred())

			rep, err := d.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Operations).To(Equal([]report.Operation{
				{Name: "sum", Inputs: []int{1, 2, 3, 4, 5}, Result: ptr.To(15), Seconds: 0.001},
				{Name: "sum", Inputs: []int{55, 66, 77, 88, 99}, Result: ptr.To(385), Seconds: 0.001},
				{Name: "show", Inputs: []int{15, 385}, Seconds: 0.001},
			}))
		})

		It("should record metrics for each operation", func() {
			d, err := New(Options{Out: out, Metrics: recorder, Clock: clk})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Metrics()).To(BeIdenticalTo(recorder))

			_, err = d.Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(metrics.WriteText(&buf, recorder.Gatherer())).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`sample_operations_total{operation="sum",outcome="success"} 2`))
			Expect(buf.String()).To(ContainSubstring(`sample_operations_total{operation="show",outcome="success"} 1`))
			Expect(buf.String()).To(ContainSubstring("sample_numbers_shown_total 2"))
		})

		It("should produce the same output on every run", func() {
			d, err := New(Options{Out: out})
			Expect(err).NotTo(HaveOccurred())
			_, err = d.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = d.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("15\n385\n15\n385\n"))
		})
	})

	Context("with the checked policy", func() {
		It("should display the same results", func() {
			d, err := New(Options{Policy: newmath.CheckedPolicy, Out: out, Metrics: recorder, Clock: clk})
			Expect(err).NotTo(HaveOccurred())

			rep, err := d.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("15\n385\n"))
			Expect(rep.OverflowPolicy).To(Equal("checked"))
		})
	})

	Context("with an unknown policy", func() {
		It("should fail to construct", func() {
			_, err := New(Options{Policy: newmath.OverflowPolicy(42)})
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when the output stream fails", func() {
		It("should return the error and record the failed display", func() {
			d, err := New(Options{Out: closedWriter{}, Metrics: recorder, Clock: clk})
			Expect(err).NotTo(HaveOccurred())

			rep, err := d.Run(ctx)
			Expect(err).To(MatchError(ContainSubstring("closed stream")))
			Expect(rep.Operations).To(HaveLen(3))
			Expect(rep.Operations[2].Error).NotTo(BeEmpty())
			Expect(rep.Displayed).To(BeEmpty())

			var buf bytes.Buffer
			Expect(metrics.WriteText(&buf, recorder.Gatherer())).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`sample_operations_total{operation="show",outcome="error"} 1`))
			Expect(buf.String()).To(ContainSubstring("sample_numbers_shown_total 0"))
		})
	})
})
