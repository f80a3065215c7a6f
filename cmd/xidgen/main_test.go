// Package main tests for the xidgen CLI entry point.
package main

import (
	"os/exec"
	"strings"
	"testing"
)

// TestMain_BuildVerification verifies the binary builds successfully.
// This is a smoke test to ensure the package compiles without errors.
func TestMain_BuildVerification(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("go", "build", "-o", "/dev/null", ".")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build main package: %v", err)
	}
}

// TestMain_UsageOnNoArguments verifies the usage line and non-zero exit
// when invoked without the two positional arguments.
func TestMain_UsageOnNoArguments(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("go", "run", ".")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected non-zero exit, output: %s", out)
	}

	if !strings.Contains(string(out), "Usage: xidgen") {
		t.Errorf("expected usage line, got: %s", out)
	}
}
