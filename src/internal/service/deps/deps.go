// Package deps verifies the external metadata tooling the discovery
// scripts shell out to, and remediates a miss with a one-shot installer
// invocation. The contract is intentionally loose: no re-check after the
// install, and installer failures are logged, never propagated.
package deps

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/creack/pty"
)

// The two libraries the metadata tooling needs. Import names differ from
// the installer package names, hence two lists.
var (
	requiredImports  = []string{"google.cloud.bigquery", "yaml"}
	requiredPackages = []string{"google-cloud-bigquery", "pyyaml"}
)

type Checker struct {
	imports  []string
	packages []string
	logger   *log.Logger

	// Seams for tests; default to the real exec-based runners.
	check   func(name string, args ...string) error
	install func(name string, args ...string) error
}

func New(logger *log.Logger) *Checker {
	c := &Checker{
		imports:  requiredImports,
		packages: requiredPackages,
		logger:   logger,
	}
	c.check = func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}
	c.install = func(name string, args ...string) error {
		return runStreaming(os.Stdout, name, args...)
	}
	return c
}

// Ensure checks that both libraries import cleanly and, if not, runs the
// installer with both package names. It never fails the caller.
func (c *Checker) Ensure() {
	if c.available() {
		c.logger.Debug("Metadata tooling present", "libraries", c.imports)
		return
	}

	c.logger.Warn("Metadata tooling missing, installing", "packages", c.packages)
	args := append([]string{"install", "--quiet"}, c.packages...)
	if err := c.install("pip3", args...); err != nil {
		c.logger.Warn("Installer failed, continuing anyway", "err", err)
	}
}

func (c *Checker) available() bool {
	stmt := "import " + strings.Join(c.imports, ", ")
	return c.check("python3", "-c", stmt) == nil
}

// runStreaming runs the command under a pty so installers that buffer
// their progress output when not attached to a terminal still stream it
// live. Falls back to a plain pipe when no pty can be allocated.
func runStreaming(w io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		plain := exec.Command(name, args...)
		plain.Stdout = w
		plain.Stderr = w
		return plain.Run()
	}
	defer ptmx.Close()

	// The copy ends with an EIO when the child closes its side; that is
	// the normal pty teardown, so only the wait result matters.
	_, _ = io.Copy(w, ptmx)
	return cmd.Wait()
}
