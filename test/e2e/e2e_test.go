/*
Copyright 2025.

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

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

const runTimeout = 30 * time.Second

func runSample(args ...string) *gexec.Session {
	cmd := exec.Command(sampleBinary, args...)
	session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
	Expect(err).NotTo(HaveOccurred())
	Eventually(session, runTimeout).Should(gexec.Exit())
	return session
}

var _ = Describe("sample binary", func() {
	It("should print 15 and 385 and exit successfully", func() {
		session := runSample()
		Expect(session.ExitCode()).To(Equal(0))
		Expect(string(session.Out.Contents())).To(Equal("15\n385\n"))
	})

	It("should keep logs off standard output", func() {
		session := runSample("--log-level", "trace")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(string(session.Out.Contents())).To(Equal("15\n385\n"))
		Expect(string(session.Err.Contents())).To(ContainSubstring("Run completed"))
	})

	It("should ignore arguments", func() {
		session := runSample("one", "two", "--unknown", "-x")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(string(session.Out.Contents())).To(Equal("15\n385\n"))
	})

	It("should fall back to defaults on invalid configuration", func() {
		session := runSample("--log-level", "shout", "--overflow-policy", "bogus")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(string(session.Out.Contents())).To(Equal("15\n385\n"))
		Expect(string(session.Err.Contents())).To(ContainSubstring("using defaults"))
	})

	It("should treat help flags as ordinary arguments", func() {
		for _, flag := range []string{"-h", "--help"} {
			session := runSample(flag)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(Equal("15\n385\n"))
		}
	})

	It("should write the metrics dump", func() {
		path := filepath.Join(GinkgoT().TempDir(), "metrics.prom")
		session := runSample("--metrics-file", path)
		Expect(session.ExitCode()).To(Equal(0))

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`sample_operation_duration_seconds_count{operation="show"} 1`))
	})
})
