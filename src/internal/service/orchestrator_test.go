package service

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
)

type noopChecker struct {
	called bool
}

func (c *noopChecker) Ensure() { c.called = true }

func newTestOrchestrator() (*Orchestrator, *noopChecker) {
	o := CreateOrchestrator(&domain.Context{Config: domain.DefaultConfig()})
	o.logger = log.New(io.Discard)
	checker := &noopChecker{}
	o.checker = checker
	return o, checker
}

// chdir is t.Chdir for Go toolchains older than 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func mustBeDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}

func TestRunAbortsWithoutConfig(t *testing.T) {
	chdir(t, t.TempDir())

	o, checker := newTestOrchestrator()
	launched := 0
	o.launch = func(context.Context, domain.Config) error {
		launched++
		return nil
	}

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if launched != 0 {
		t.Fatal("launcher invoked despite missing config.yaml")
	}
	if !checker.called {
		t.Fatal("dependency check skipped")
	}

	// The directory tree is in place even on the aborted path, and a
	// second run over it is still clean.
	for _, dir := range domain.RuntimeDirs {
		mustBeDir(t, dir)
	}
	if _, err := os.Stat("logs/bootstrap.log"); err != nil {
		t.Fatalf("bootstrap log not written: %v", err)
	}
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run second time: %v", err)
	}
}

func TestRunLaunchesOnceWithConfig(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(domain.ConfigPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	o, _ := newTestOrchestrator()
	launched := 0
	var gotCfg domain.Config
	o.launch = func(_ context.Context, cfg domain.Config) error {
		launched++
		gotCfg = cfg
		return nil
	}

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if launched != 1 {
		t.Fatalf("launcher invoked %d times, want 1", launched)
	}
	if gotCfg.Host != domain.DefaultHost || gotCfg.Port != domain.DefaultPort {
		t.Fatalf("unexpected launch config: %+v", gotCfg)
	}
}

func TestRunAppliesConfigOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(domain.ConfigPath, []byte("port: \"9100\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	o, _ := newTestOrchestrator()
	var gotCfg domain.Config
	o.launch = func(_ context.Context, cfg domain.Config) error {
		gotCfg = cfg
		return nil
	}

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gotCfg.Port != "9100" {
		t.Fatalf("port override lost: %+v", gotCfg)
	}
}

func TestRunPropagatesLaunchFailure(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(domain.ConfigPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	o, _ := newTestOrchestrator()
	launchErr := errors.New("bind failed")
	o.launch = func(context.Context, domain.Config) error { return launchErr }

	if err := o.Run(context.Background()); !errors.Is(err, launchErr) {
		t.Fatalf("Run = %v, want %v", err, launchErr)
	}
}
